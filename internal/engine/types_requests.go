package engine

import (
	"time"

	"github.com/danieljhkim/svgoverlay/internal/config"
)

// RunRequest represents a request to generate overlays for one document.
type RunRequest struct {
	// InputPath is the path of the layered SVG document
	InputPath string

	// OnExportFailure decides what happens after a failed export
	// (default: continue)
	OnExportFailure config.ExportFailurePolicy

	// ExportTimeout bounds each export; zero means no timeout
	ExportTimeout time.Duration

	// Verify checks every exported file with the PDF verifier
	Verify bool

	// Prune removes exported files that no current layer references
	Prune bool

	// PruneDryRun reports stale exported files without removing them
	PruneDryRun bool
}

// PruneRequest represents a request to remove stale exported files.
type PruneRequest struct {
	// OutputDir is the directory holding the exported files
	OutputDir string

	// Keep lists the identifiers whose exports are current
	Keep []string

	// DryRun only reports what would be removed
	DryRun bool
}
