package cli

import (
	"encoding/json"
	"io"

	"github.com/danieljhkim/svgoverlay/internal/clock"
	"github.com/danieljhkim/svgoverlay/internal/config"
	"github.com/danieljhkim/svgoverlay/internal/engine"
	"github.com/danieljhkim/svgoverlay/internal/export"
	"github.com/danieljhkim/svgoverlay/internal/fsops"
	"github.com/danieljhkim/svgoverlay/internal/pdfcheck"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(settings *config.Settings, log io.Writer) *engine.Engine {
	fs := fsops.NewRealFS()
	exporter := export.NewInkscapeExporter(settings.Inkscape, settings.DPI)
	verifier := pdfcheck.NewPDFVerifier()
	clk := &clock.RealClock{}

	return engine.New(fs, exporter, verifier, clk, log)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
