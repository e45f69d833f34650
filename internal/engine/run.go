package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieljhkim/svgoverlay/internal/clock"
	"github.com/danieljhkim/svgoverlay/internal/config"
	"github.com/danieljhkim/svgoverlay/internal/export"
	"github.com/danieljhkim/svgoverlay/internal/overlay"
	"github.com/danieljhkim/svgoverlay/internal/svgdoc"
)

// Run generates the overlay directory for one document.
//
// Layers are processed strictly in document order; a layer without a label
// is skipped before any work is done for it. Parse failures abort the run
// before anything is written.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if req == nil || req.InputPath == "" {
		return nil, fmt.Errorf("%w: input path is required", ErrInvalidRequest)
	}

	policy := req.OnExportFailure
	if policy == "" {
		policy = config.PolicyContinue
	}
	if _, err := config.ParsePolicy(string(policy)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Verify && e.verifier == nil {
		return nil, fmt.Errorf("%w: verification requested without a verifier", ErrInvalidRequest)
	}

	start := e.clock.Now()

	doc, err := svgdoc.Load(req.InputPath)
	if err != nil {
		return nil, err
	}

	outputDir := overlay.OutputDir(req.InputPath)
	if err := e.fs.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	fmt.Fprintln(e.log, outputDir)

	result := &RunResult{
		OutputDir: outputDir,
		TexPath:   overlay.TexPath(outputDir),
		Layers:    []LayerResult{},
	}

	texFile, err := e.fs.Create(result.TexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", result.TexPath, err)
	}
	closed := false
	defer func() {
		if !closed {
			_ = texFile.Close()
		}
	}()

	w, err := overlay.NewWriter(texFile)
	if err != nil {
		return nil, err
	}

	var keep []string
	for _, layer := range svgdoc.Groups(doc) {
		label, _ := layer.Label()
		if label == "" {
			result.Unlabeled++
			continue
		}

		lr := LayerResult{
			ID:         layer.ID(),
			Label:      label,
			RevealSpec: overlay.ExtractRevealSpec(label),
			ExitCode:   -1,
		}
		fmt.Fprintf(e.log, "layer id='%s' label='%s' overlay_spec='%s'\n", lr.ID, lr.Label, lr.RevealSpec)

		if err := e.fs.ValidateIdentifier(lr.ID); err != nil {
			lr.Error = err.Error()
			result.Layers = append(result.Layers, lr)
			result.Warnings = append(result.Warnings, fmt.Sprintf("layer %q skipped: %v", label, err))
			continue
		}
		keep = append(keep, lr.ID)

		lr.ExportPath = overlay.ExportPath(outputDir, lr.ID)
		e.exportLayer(ctx, req, doc.Path, &lr)

		if !lr.Exported {
			result.Warnings = append(result.Warnings, fmt.Sprintf("layer %s: %s", lr.ID, lr.Error))
			switch policy {
			case config.PolicyAbort:
				return nil, fmt.Errorf("%w: layer %s: %s", ErrExportFailed, lr.ID, lr.Error)
			case config.PolicySkip:
				result.Layers = append(result.Layers, lr)
				continue
			}
		}

		block := overlay.Block{
			ID:         lr.ID,
			Label:      lr.Label,
			RevealSpec: lr.RevealSpec,
			Image:      overlay.ImageHandle(outputDir, lr.ID),
		}
		if err := w.WriteBlock(block); err != nil {
			return nil, err
		}
		lr.Emitted = true
		result.Layers = append(result.Layers, lr)
	}

	closed = true
	if err := texFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", result.TexPath, err)
	}

	if req.Prune || req.PruneDryRun {
		pruned, err := e.Prune(ctx, &PruneRequest{
			OutputDir: outputDir,
			Keep:      keep,
			DryRun:    req.PruneDryRun,
		})
		if err != nil {
			return nil, err
		}
		result.Pruned = pruned.Removed
		result.PruneDryRun = pruned.DryRun
	}

	result.Duration = clock.Since(e.clock, start)
	return result, nil
}

// exportLayer runs the exporter for lr and records the outcome on it.
func (e *Engine) exportLayer(ctx context.Context, req *RunRequest, source string, lr *LayerResult) {
	exportCtx := ctx
	if req.ExportTimeout > 0 {
		var cancel context.CancelFunc
		exportCtx, cancel = context.WithTimeout(ctx, req.ExportTimeout)
		defer cancel()
	}

	res := e.exporter.Export(exportCtx, export.Request{
		Source: source,
		ID:     lr.ID,
		Dest:   lr.ExportPath,
	})
	lr.ExitCode = res.ExitCode
	lr.Command = res.Command
	if !res.OK() {
		lr.Error = res.Message()
		if errors.Is(exportCtx.Err(), context.DeadlineExceeded) {
			lr.Error = fmt.Sprintf("timed out after %s: %s", req.ExportTimeout, lr.Error)
		}
		return
	}

	if req.Verify {
		pages, err := e.verifier.Verify(lr.ExportPath)
		if err != nil {
			lr.Error = err.Error()
			return
		}
		lr.Pages = pages
	}
	lr.Exported = true
}
