package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/svgoverlay/internal/clock"
	"github.com/danieljhkim/svgoverlay/internal/export"
	"github.com/danieljhkim/svgoverlay/internal/fsops"
	"github.com/danieljhkim/svgoverlay/internal/pdfcheck"
)

const deckSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg"
     xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
  <g id="layerC" inkscape:label="Background"/>
  <g id="unlabeled"/>
  <g id="layerA" inkscape:label="Step &lt;2-4&gt; intro"/>
  <g id="empty" inkscape:label=""/>
  <g id="layerB" inkscape:label="weird &lt;unterminated"/>
</svg>`

// testEnv bundles an engine wired to fakes and a temp working directory.
type testEnv struct {
	dir      string
	exporter *export.FakeExporter
	verifier *pdfcheck.FakeVerifier
	log      *bytes.Buffer
	engine   *Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		dir:      t.TempDir(),
		exporter: export.NewFakeExporter([]byte("%PDF-1.4 fake")),
		verifier: pdfcheck.NewFakeVerifier(),
		log:      &bytes.Buffer{},
	}
	clk := clock.NewFakeClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), time.Second)
	env.engine = New(fsops.NewRealFS(), env.exporter, env.verifier, clk, env.log)
	return env
}

// writeInput writes an SVG document under the env directory and returns its path.
func (env *testEnv) writeInput(t *testing.T, rel, content string) string {
	t.Helper()

	path := filepath.Join(env.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create input dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// deadlineExporter records whether each export context carries a deadline.
type deadlineExporter struct {
	calls           int
	withoutDeadline int
}

func (d *deadlineExporter) Export(ctx context.Context, req export.Request) export.Result {
	d.calls++
	if _, ok := ctx.Deadline(); !ok {
		d.withoutDeadline++
	}
	return export.Result{}
}
