package overlay

import (
	"path/filepath"
	"strings"
)

const (
	// TexFileName is the name of the generated markup file.
	TexFileName = "overlay.tex"

	// ExportExt is the extension of exported layer files.
	ExportExt = ".pdf"
)

// OutputDir returns <parent-dir-of-input>/<stem-of-input>, where stem is
// the file name without its final extension.
func OutputDir(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// dotfiles such as ".slides" keep their full name
		stem = base
	}
	return filepath.Join(filepath.Dir(inputPath), stem)
}

// TexPath returns the path of the markup file inside outputDir.
func TexPath(outputDir string) string {
	return filepath.Join(outputDir, TexFileName)
}

// ImageHandle returns the extension-less path referenced by the markup.
func ImageHandle(outputDir, id string) string {
	return filepath.Join(outputDir, id)
}

// ExportPath returns the destination of the exported layer file.
func ExportPath(outputDir, id string) string {
	return ImageHandle(outputDir, id) + ExportExt
}
