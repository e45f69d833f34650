// Package engine provides the core logic for svgoverlay runs.
//
// The engine sits between the CLI and the lower-level packages. A run
// loads the document, resolves the output directory, exports every
// labeled layer through the configured Exporter, and writes the overlay
// markup file block by block in document order.
//
// Key components:
//   - Engine: orchestrates a run and owns its collaborators
//   - Run: the per-layer export and markup pipeline
//   - Prune: optional removal of exported files no layer references
package engine

import (
	"io"

	"github.com/danieljhkim/svgoverlay/internal/clock"
	"github.com/danieljhkim/svgoverlay/internal/export"
	"github.com/danieljhkim/svgoverlay/internal/fsops"
	"github.com/danieljhkim/svgoverlay/internal/pdfcheck"
)

// Engine orchestrates svgoverlay runs.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	exporter export.Exporter
	verifier pdfcheck.Verifier
	clock    clock.Clock
	log      io.Writer
}

// New creates a new Engine with the given dependencies. Diagnostic lines
// are written to log; a nil log discards them.
func New(
	fs fsops.FS,
	exporter export.Exporter,
	verifier pdfcheck.Verifier,
	clk clock.Clock,
	log io.Writer,
) *Engine {
	if log == nil {
		log = io.Discard
	}
	return &Engine{
		fs:       fs,
		exporter: exporter,
		verifier: verifier,
		clock:    clk,
		log:      log,
	}
}
