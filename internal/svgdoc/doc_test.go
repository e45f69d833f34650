package svgdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const layeredSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg"
     xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
  <g id="layer1" inkscape:label="Background">
    <rect width="10" height="10"/>
    <g id="nested" inkscape:label="Step &lt;2-&gt; detail"/>
  </g>
  <g id="layer2"/>
  <g id="layer3" inkscape:label=""/>
  <g id="layer4" inkscape:label="Final &lt;3&gt;"/>
</svg>`

func TestParse_GroupsInPreOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(layeredSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	groups := Groups(doc)
	wantIDs := []string{"layer1", "nested", "layer2", "layer3", "layer4"}
	if len(groups) != len(wantIDs) {
		t.Fatalf("expected %d groups, got %d", len(wantIDs), len(groups))
	}
	for i, want := range wantIDs {
		if groups[i].ID() != want {
			t.Errorf("group %d: expected id %q, got %q", i, want, groups[i].ID())
		}
	}
}

func TestLayer_Label(t *testing.T) {
	doc, err := Parse(strings.NewReader(layeredSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	groups := Groups(doc)

	tests := []struct {
		index    int
		label    string
		hasLabel bool
	}{
		{0, "Background", true},
		{1, "Step <2-> detail", true},
		{2, "", false},
		{3, "", true},
		{4, "Final <3>", true},
	}

	for _, tt := range tests {
		label, ok := groups[tt.index].Label()
		if label != tt.label || ok != tt.hasLabel {
			t.Errorf("group %d: Label() = (%q, %v), want (%q, %v)", tt.index, label, ok, tt.label, tt.hasLabel)
		}
	}
}

func TestParse_NamespaceMismatch(t *testing.T) {
	input := `<svg xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
  <g id="a" inkscape:label="A"/>
</svg>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := len(Groups(doc)); got != 0 {
		t.Errorf("expected no groups outside the svg namespace, got %d", got)
	}
}

func TestParse_LabelRequiresInkscapeNamespace(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg"><g id="a" label="A"/></svg>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	groups := Groups(doc)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if _, ok := groups[0].Label(); ok {
		t.Error("un-namespaced label attribute should not count as a label")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   \n"},
		{"unclosed element", `<svg xmlns="http://www.w3.org/2000/svg"><g id="a">`},
		{"mismatched tags", `<svg><g></svg></g>`},
		{"junk after root", `<svg></svg><svg></svg>`},
		{"text after root", `<svg></svg>trailing`},
		{"not xml", "this is not a document"},
		{"text before root", `junk<svg xmlns="http://www.w3.org/2000/svg"><g/></svg>`},
		{"unbound attribute prefix", `<svg xmlns="http://www.w3.org/2000/svg"><g id="a" foo:label="x"/></svg>`},
		{"unbound element prefix", `<svg xmlns="http://www.w3.org/2000/svg"><x:g/></svg>`},
		{"prefix declared on sibling only", `<svg xmlns="http://www.w3.org/2000/svg">` +
			`<g xmlns:foo="urn:foo" foo:a="1"/><g foo:a="2"/></svg>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParse_BoundPrefixes(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" xml:lang="en">
  <g xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" id="a" inkscape:label="A">
    <g id="b" inkscape:label="B"/>
  </g>
</svg>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	groups := Groups(doc)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if label, ok := groups[1].Label(); !ok || label != "B" {
		t.Errorf("inherited prefix should resolve, got (%q, %v)", label, ok)
	}
}

func TestParse_DeclaredCharset(t *testing.T) {
	// Label carries a Latin-1 encoded e-acute.
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:inkscape=\"http://www.inkscape.org/namespaces/inkscape\">" +
		"<g id=\"a\" inkscape:label=\"Caf\xe9\"/></svg>"

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	groups := Groups(doc)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if label, _ := groups[0].Label(); label != "Café" {
		t.Errorf("expected label %q, got %q", "Café", label)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.svg"))
		if !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	})

	t.Run("records path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slides.svg")
		if err := os.WriteFile(path, []byte(layeredSVG), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		doc, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if doc.Path != path {
			t.Errorf("expected path %q, got %q", path, doc.Path)
		}
		if len(Groups(doc)) != 5 {
			t.Errorf("expected 5 groups, got %d", len(Groups(doc)))
		}
	})
}
