package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/svgoverlay/internal/overlay"
)

// Prune removes exported files in the output directory whose identifier is
// not in the keep list. Only files with the export extension are considered;
// the overlay markup file and anything else is left alone.
func (e *Engine) Prune(ctx context.Context, req *PruneRequest) (*PruneResult, error) {
	if req == nil || req.OutputDir == "" {
		return nil, fmt.Errorf("%w: output directory is required", ErrInvalidRequest)
	}

	keepSet := make(map[string]bool, len(req.Keep))
	for _, id := range req.Keep {
		keepSet[id] = true
	}

	entries, err := e.fs.ReadDir(req.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	result := &PruneResult{Removed: []string{}, DryRun: req.DryRun}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != overlay.ExportExt {
			continue
		}
		if keepSet[strings.TrimSuffix(name, overlay.ExportExt)] {
			continue
		}
		result.Removed = append(result.Removed, filepath.Join(req.OutputDir, name))
	}

	if req.DryRun {
		return result, nil
	}

	for _, path := range result.Removed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.fs.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return result, nil
}
