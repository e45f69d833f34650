// Package fsops provides the filesystem operations used by svgoverlay.
//
// All writes to the output directory go through the FS interface, which
// also validates layer identifiers before they are turned into file names.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Create opens path for writing, truncating any existing content.
	Create(path string) (io.WriteCloser, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Remove removes a file or empty directory.
	Remove(path string) error

	// ValidateIdentifier validates an identifier for use as a file stem.
	ValidateIdentifier(id string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Create opens path for writing, truncating any existing content.
func (fs *RealFS) Create(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	return &syncFile{File: f}, nil
}

// ReadDir lists the entries of a directory.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Remove removes a file or empty directory.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// ValidateIdentifier validates a layer identifier for use as a file stem.
// Returns an error if the identifier is empty, contains path separators,
// or is a traversal component.
func (fs *RealFS) ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("invalid identifier: empty")
	}

	if strings.Contains(id, string(filepath.Separator)) || strings.Contains(id, "/") || strings.Contains(id, "\\") {
		return fmt.Errorf("invalid identifier %q: must not contain path separators", id)
	}

	if id == "." || id == ".." {
		return fmt.Errorf("invalid identifier %q: path traversal not allowed", id)
	}

	return nil
}

// syncFile flushes file contents to disk before closing.
type syncFile struct {
	*os.File
}

func (f *syncFile) Close() error {
	if err := f.File.Sync(); err != nil {
		_ = f.File.Close()
		return fmt.Errorf("failed to sync %s: %w", f.Name(), err)
	}
	return f.File.Close()
}
