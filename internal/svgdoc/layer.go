package svgdoc

import "encoding/xml"

// Layer is a view of one group element.
type Layer struct {
	id       string
	label    string
	hasLabel bool
}

func newLayer(el xml.StartElement) Layer {
	var l Layer
	for _, attr := range el.Attr {
		switch {
		case attr.Name.Space == "" && attr.Name.Local == idAttr:
			l.id = attr.Value
		case attr.Name.Space == InkscapeNamespace && attr.Name.Local == labelAttr:
			l.label, l.hasLabel = attr.Value, true
		}
	}
	return l
}

// ID returns the element identifier, or "" when absent.
func (l Layer) ID() string {
	return l.id
}

// Label returns the inkscape:label annotation and whether it is present.
func (l Layer) Label() (string, bool) {
	return l.label, l.hasLabel
}
