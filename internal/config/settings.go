// Package config resolves svgoverlay settings.
//
// Settings come from defaults, overridden by environment variables, and
// finally by command-line flags applied in the cli package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// EnvInkscape overrides the export binary.
	EnvInkscape = "SVGOVERLAY_INKSCAPE"

	// EnvDPI overrides the export resolution.
	EnvDPI = "SVGOVERLAY_DPI"

	defaultInkscape = "inkscape"
	defaultDPI      = 200
)

// ExportFailurePolicy decides what happens to a layer whose export failed.
type ExportFailurePolicy string

const (
	// PolicyContinue records a warning and still emits the layer's block.
	PolicyContinue ExportFailurePolicy = "continue"

	// PolicySkip records a warning and omits the layer's block.
	PolicySkip ExportFailurePolicy = "skip"

	// PolicyAbort stops the run at the first failed export.
	PolicyAbort ExportFailurePolicy = "abort"
)

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (ExportFailurePolicy, error) {
	switch p := ExportFailurePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyContinue, PolicySkip, PolicyAbort:
		return p, nil
	default:
		return "", fmt.Errorf("invalid export failure policy %q (want continue, skip, or abort)", s)
	}
}

// Settings contains everything a run needs besides the input path.
type Settings struct {
	// Inkscape is the export binary (default: inkscape)
	Inkscape string

	// DPI is the export resolution (default: 200)
	DPI int

	// OnExportFailure is the export failure policy (default: continue)
	OnExportFailure ExportFailurePolicy

	// ExportTimeout bounds each export; zero means no timeout.
	ExportTimeout time.Duration

	// Verify enables PDF verification of exported files.
	Verify bool

	// Prune removes stale exported files after the run.
	Prune bool

	// PruneDryRun lists stale exported files without removing them.
	PruneDryRun bool
}

// DefaultSettings returns the default settings.
// Settings can be overridden with environment variables:
// - SVGOVERLAY_INKSCAPE: export binary
// - SVGOVERLAY_DPI: export resolution
func DefaultSettings() (*Settings, error) {
	s := &Settings{
		Inkscape:        defaultInkscape,
		DPI:             defaultDPI,
		OnExportFailure: PolicyContinue,
	}

	if bin := os.Getenv(EnvInkscape); bin != "" {
		s.Inkscape = bin
	}

	if raw := os.Getenv(EnvDPI); raw != "" {
		dpi, err := strconv.Atoi(raw)
		if err != nil || dpi <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", EnvDPI, raw)
		}
		s.DPI = dpi
	}

	return s, nil
}

// Validate checks settings after flags have been applied.
func (s *Settings) Validate() error {
	if s.Inkscape == "" {
		return fmt.Errorf("export binary must not be empty")
	}
	if s.DPI <= 0 {
		return fmt.Errorf("invalid dpi %d: must be positive", s.DPI)
	}
	if _, err := ParsePolicy(string(s.OnExportFailure)); err != nil {
		return err
	}
	if s.ExportTimeout < 0 {
		return fmt.Errorf("invalid export timeout %s: must not be negative", s.ExportTimeout)
	}
	return nil
}
