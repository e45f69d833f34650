package overlay

import (
	"fmt"
	"io"
)

// Header is the first line of every overlay file, written without a
// trailing newline. Each block starts with its own newline.
const Header = "%overlays!"

const blockTemplate = `
  %%%% Layer "%s"
  \pgfdeclareimage[height=0.9\textheight]{%s}{%s}
  \begin{textblock}{1}(0.1,0)
    \pgfuseimage<%s>{%s}
  \end{textblock}
`

// Block describes the markup emitted for one layer.
type Block struct {
	ID         string
	Label      string
	RevealSpec string

	// Image is the image path without extension.
	Image string
}

// Writer emits overlay markup to an underlying stream.
type Writer struct {
	w io.Writer
}

// NewWriter writes the header to w and returns a Writer for the blocks.
func NewWriter(w io.Writer) (*Writer, error) {
	if _, err := io.WriteString(w, Header); err != nil {
		return nil, fmt.Errorf("failed to write overlay header: %w", err)
	}
	return &Writer{w: w}, nil
}

// WriteBlock appends the markup for one layer.
func (ow *Writer) WriteBlock(b Block) error {
	if _, err := fmt.Fprintf(ow.w, blockTemplate, b.Label, b.ID, b.Image, b.RevealSpec, b.ID); err != nil {
		return fmt.Errorf("failed to write block for layer %s: %w", b.ID, err)
	}
	return nil
}
