package engine

import "time"

// LayerResult describes what happened to one labeled layer.
type LayerResult struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	RevealSpec string `json:"reveal_spec"`

	// ExportPath is the destination of the exported file
	ExportPath string `json:"export_path,omitempty"`

	// Exported is true when the export (and verification, if enabled) succeeded
	Exported bool `json:"exported"`

	// Pages is the verified page count, zero when not verified
	Pages int `json:"pages,omitempty"`

	// Emitted is true when a markup block was written for the layer
	Emitted bool `json:"emitted"`

	// ExitCode is the export process status
	ExitCode int `json:"exit_code"`

	// Command is the export invocation, binary first
	Command []string `json:"command,omitempty"`

	// Error describes the export or validation failure, if any
	Error string `json:"error,omitempty"`
}

// RunResult contains the result of a run.
type RunResult struct {
	// OutputDir is the derived output directory
	OutputDir string `json:"output_dir"`

	// TexPath is the generated overlay markup file
	TexPath string `json:"tex_path"`

	// Layers lists every labeled layer in document order
	Layers []LayerResult `json:"layers"`

	// Unlabeled is the number of groups skipped for lacking a label
	Unlabeled int `json:"unlabeled"`

	// Warnings collects per-layer problems that did not stop the run
	Warnings []string `json:"warnings,omitempty"`

	// Pruned lists stale exported files removed (or, in a dry run, found)
	// after the run
	Pruned []string `json:"pruned,omitempty"`

	// PruneDryRun indicates Pruned was only reported, not removed
	PruneDryRun bool `json:"prune_dry_run,omitempty"`

	// Duration is the wall time of the run
	Duration time.Duration `json:"duration"`
}

// Emitted returns the number of markup blocks written.
func (r *RunResult) Emitted() int {
	n := 0
	for _, l := range r.Layers {
		if l.Emitted {
			n++
		}
	}
	return n
}

// Failed returns the layers whose export failed.
func (r *RunResult) Failed() []LayerResult {
	var failed []LayerResult
	for _, l := range r.Layers {
		if !l.Exported {
			failed = append(failed, l)
		}
	}
	return failed
}

// PruneResult contains the result of a prune operation.
type PruneResult struct {
	// Removed lists the stale files that were (or would be) removed
	Removed []string `json:"removed"`

	// DryRun indicates whether this was a dry run
	DryRun bool `json:"dry_run"`
}
