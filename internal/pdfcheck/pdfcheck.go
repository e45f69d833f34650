// Package pdfcheck verifies that exported layer files are readable PDFs.
package pdfcheck

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoPages indicates the file parsed but contains no pages.
var ErrNoPages = errors.New("pdf has no pages")

// Verifier checks an exported file.
type Verifier interface {
	// Verify returns the page count of the file at path.
	Verify(path string) (int, error)
}

func init() {
	api.DisableConfigDir()
}

// PDFVerifier implements Verifier with pdfcpu in relaxed validation mode.
type PDFVerifier struct {
	conf *model.Configuration
}

// NewPDFVerifier creates a new PDFVerifier.
func NewPDFVerifier() *PDFVerifier {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return &PDFVerifier{conf: cfg}
}

// Verify validates the file and counts its pages.
func (v *PDFVerifier) Verify(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("exported file missing: %w", err)
	}

	if err := api.ValidateFile(path, v.conf); err != nil {
		return 0, fmt.Errorf("invalid pdf %s: %w", path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages of %s: %w", path, err)
	}
	if pages == 0 {
		return 0, fmt.Errorf("%s: %w", path, ErrNoPages)
	}
	return pages, nil
}

// FakeVerifier implements Verifier with predetermined errors for testing.
type FakeVerifier struct {
	// Checked records every verified path in order.
	Checked []string

	errs map[string]error
}

// NewFakeVerifier creates a FakeVerifier that accepts everything.
func NewFakeVerifier() *FakeVerifier {
	return &FakeVerifier{errs: make(map[string]error)}
}

// Reject makes Verify fail for path.
func (f *FakeVerifier) Reject(path string, err error) {
	f.errs[path] = err
}

// Verify records path and returns one page unless rejected.
func (f *FakeVerifier) Verify(path string) (int, error) {
	f.Checked = append(f.Checked, path)
	if err, ok := f.errs[path]; ok {
		return 0, err
	}
	return 1, nil
}
