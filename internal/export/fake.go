package export

import (
	"context"
	"fmt"
	"os"
)

// FakeExporter implements Exporter with predetermined results for testing.
type FakeExporter struct {
	// Requests records every call in order.
	Requests []Request

	// Content is written to Dest on success when non-nil.
	Content []byte

	failures map[string]Result
}

// NewFakeExporter creates a new FakeExporter that writes content on success.
func NewFakeExporter(content []byte) *FakeExporter {
	return &FakeExporter{
		Content:  content,
		failures: make(map[string]Result),
	}
}

// FailOn makes exports of id fail with the given exit code and stderr.
func (f *FakeExporter) FailOn(id string, exitCode int, stderr string) {
	f.failures[id] = Result{
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      fmt.Errorf("exit status %d", exitCode),
	}
}

// IDs returns the exported identifiers in call order.
func (f *FakeExporter) IDs() []string {
	ids := make([]string, len(f.Requests))
	for i, r := range f.Requests {
		ids[i] = r.ID
	}
	return ids
}

// Export records req and returns the configured result.
func (f *FakeExporter) Export(ctx context.Context, req Request) Result {
	f.Requests = append(f.Requests, req)
	command := []string{"fake-export", req.Source, req.ID, req.Dest}

	if res, ok := f.failures[req.ID]; ok {
		res.Command = command
		return res
	}
	if f.Content != nil {
		if err := os.WriteFile(req.Dest, f.Content, 0644); err != nil {
			return Result{Command: command, ExitCode: 1, Err: err}
		}
	}
	return Result{Command: command}
}
