// Package overlay derives reveal specifications and output paths for
// layers, and writes the overlay markup consumed by beamer documents.
package overlay

import "strings"

// DefaultRevealSpec shows a layer from the current step onward.
const DefaultRevealSpec = "+-"

// ExtractRevealSpec returns the text between the first '<' in label and
// the first '>' after it. Labels without such a pair yield DefaultRevealSpec.
// The result is passed through verbatim.
func ExtractRevealSpec(label string) string {
	open := strings.IndexByte(label, '<')
	if open < 0 {
		return DefaultRevealSpec
	}
	rest := label[open+1:]
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return DefaultRevealSpec
	}
	return rest[:end]
}
