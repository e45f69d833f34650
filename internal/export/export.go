// Package export renders single layers of a document through an external
// vector tool.
//
// Exporter is the seam between the overlay engine and the tool. The real
// implementation shells out to Inkscape; FakeExporter records calls and
// returns predetermined results for tests.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultDPI is the export resolution used when none is configured.
	DefaultDPI = 200

	// DefaultWaitDelay bounds how long Export waits for the tool's output
	// pipes after the process has exited or been killed.
	DefaultWaitDelay = 5 * time.Second
)

// Request selects one layer of a document for isolated rendering.
type Request struct {
	// Source is the path of the document.
	Source string

	// ID is the identifier of the element to export.
	ID string

	// Dest is the destination file path.
	Dest string
}

// Result reports the outcome of one export invocation.
type Result struct {
	// Command is the full argument vector that was run.
	Command []string `json:"command,omitempty"`

	// ExitCode is the process exit status, or -1 when it never ran.
	ExitCode int `json:"exit_code"`

	// Stderr is the captured error stream.
	Stderr string `json:"stderr,omitempty"`

	// Err is set when the process could not be started or exited nonzero.
	Err error `json:"-"`
}

// OK reports whether the export succeeded.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Message describes the failure, including a trimmed stderr excerpt.
func (r Result) Message() string {
	if r.OK() {
		return ""
	}
	msg := "export failed"
	if r.Err != nil {
		msg = r.Err.Error()
	}
	if stderr := strings.TrimSpace(r.Stderr); stderr != "" {
		msg += ": " + lastLine(stderr)
	}
	return msg
}

// Exporter renders one layer to a file.
type Exporter interface {
	Export(ctx context.Context, req Request) Result
}

// InkscapeExporter implements Exporter by running the inkscape binary.
type InkscapeExporter struct {
	// Binary is the executable name or path.
	Binary string

	// DPI is the export resolution.
	DPI int

	// WaitDelay is passed to exec.Cmd.WaitDelay.
	WaitDelay time.Duration
}

// NewInkscapeExporter creates a new InkscapeExporter.
func NewInkscapeExporter(binary string, dpi int) *InkscapeExporter {
	if binary == "" {
		binary = "inkscape"
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &InkscapeExporter{Binary: binary, DPI: dpi, WaitDelay: DefaultWaitDelay}
}

// Args returns the argument vector for req, binary first.
func (e *InkscapeExporter) Args(req Request) []string {
	return []string{
		e.Binary,
		req.Source,
		"--export-dpi=" + strconv.Itoa(e.DPI),
		"-C",
		"-i",
		req.ID,
		"-j",
		"--export-filename=" + req.Dest,
	}
}

// Export runs inkscape and waits for it to exit.
func (e *InkscapeExporter) Export(ctx context.Context, req Request) Result {
	args := e.Args(req)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.WaitDelay = e.WaitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	res := Result{Command: args, ExitCode: -1}
	err := cmd.Run()
	res.Stderr = stderr.String()
	if err == nil {
		res.ExitCode = 0
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	}
	res.Err = fmt.Errorf("%s %s: %w", e.Binary, req.ID, err)
	return res
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
