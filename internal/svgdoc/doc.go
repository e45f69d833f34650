// Package svgdoc loads layered SVG documents and exposes their group
// elements as layers.
//
// Only the parts of the document the overlay generator consumes are kept:
// every svg:g element in document order, with its id and inkscape:label.
// Namespace URIs live here and nowhere else.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	// SVGNamespace is the default namespace of group elements.
	SVGNamespace = "http://www.w3.org/2000/svg"

	// InkscapeNamespace qualifies the label annotation.
	InkscapeNamespace = "http://www.inkscape.org/namespaces/inkscape"

	groupTag  = "g"
	labelAttr = "label"
	idAttr    = "id"

	xmlNamespace = "http://www.w3.org/XML/1998/namespace"
	xmlnsPrefix  = "xmlns"
)

// ErrParse indicates the input is missing, unreadable, or not well-formed.
var ErrParse = errors.New("failed to parse document")

// Document is a loaded layered image. It is read-only.
type Document struct {
	// Path is the path the document was loaded from.
	Path string

	groups []Layer
}

// Load parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer func() {
		_ = f.Close()
	}()

	doc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse reads a document from r.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	depth := 0
	seenRoot := false

	// scopes[i] holds the namespace URIs declared by the i-th open element.
	var scopes []map[string]bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if seenRoot {
					return nil, fmt.Errorf("%w: junk after document element", ErrParse)
				}
				seenRoot = true
			}
			depth++
			scopes = append(scopes, declaredNamespaces(t))
			if err := checkBound(t, scopes); err != nil {
				return nil, err
			}
			if t.Name.Space == SVGNamespace && t.Name.Local == groupTag {
				doc.groups = append(doc.groups, newLayer(t))
			}
		case xml.EndElement:
			depth--
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				if seenRoot {
					return nil, fmt.Errorf("%w: junk after document element", ErrParse)
				}
				return nil, fmt.Errorf("%w: text before document element", ErrParse)
			}
		}
	}

	if !seenRoot {
		return nil, fmt.Errorf("%w: no element found", ErrParse)
	}
	return doc, nil
}

// declaredNamespaces collects the namespace URIs declared on el.
func declaredNamespaces(el xml.StartElement) map[string]bool {
	var uris map[string]bool
	for _, attr := range el.Attr {
		isDecl := attr.Name.Space == xmlnsPrefix ||
			(attr.Name.Space == "" && attr.Name.Local == xmlnsPrefix)
		if !isDecl || attr.Value == "" {
			continue
		}
		if uris == nil {
			uris = make(map[string]bool)
		}
		uris[attr.Value] = true
	}
	return uris
}

// checkBound rejects element and attribute names whose prefix was never
// declared. The decoder leaves such prefixes untranslated in Name.Space.
func checkBound(el xml.StartElement, scopes []map[string]bool) error {
	bound := func(space string) bool {
		if space == "" || space == xmlNamespace {
			return true
		}
		for i := len(scopes) - 1; i >= 0; i-- {
			if scopes[i][space] {
				return true
			}
		}
		return false
	}

	if !bound(el.Name.Space) {
		return fmt.Errorf("%w: unbound prefix %q on element %s", ErrParse, el.Name.Space, el.Name.Local)
	}
	for _, attr := range el.Attr {
		if attr.Name.Space == xmlnsPrefix {
			continue
		}
		if !bound(attr.Name.Space) {
			return fmt.Errorf("%w: unbound prefix %q on attribute %s", ErrParse, attr.Name.Space, attr.Name.Local)
		}
	}
	return nil
}

// Groups returns every group element of doc in depth-first pre-order.
func Groups(doc *Document) []Layer {
	if doc == nil {
		return nil
	}
	out := make([]Layer, len(doc.groups))
	copy(out, doc.groups)
	return out
}
