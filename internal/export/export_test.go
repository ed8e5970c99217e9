package export

import (
	"bytes"
	"context"
	"errors"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/detail"
	"github.com/ziadkadry99/layermap/internal/progress"
	"github.com/ziadkadry99/layermap/internal/qr"
	"github.com/ziadkadry99/layermap/internal/web"
)

func newExporter(t *testing.T, out string, assets *web.Assets) *Exporter {
	t.Helper()
	r, err := web.NewRenderer(catalog.Default(), detail.NewHighlighter(""), web.RenderOptions{PublicURL: qr.DefaultURL})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return &Exporter{Renderer: r, Assets: assets, PublicURL: qr.DefaultURL, OutputDir: out}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestExportWritesEveryState(t *testing.T) {
	out := t.TempDir()
	var log bytes.Buffer
	e := newExporter(t, out, nil)
	e.Reporter = &progress.CIReporter{Writer: &log, Label: "Exporting site"}

	n, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	// index + 7 ids x 2 nav states + qr.html + qr.png + diagram.svg
	if n != 1+14+3 {
		t.Errorf("files = %d, want 18", n)
	}

	for _, id := range catalog.IDs() {
		for _, name := range []string{string(id) + ".html", string(id) + "-nav.html"} {
			if _, err := os.Stat(filepath.Join(out, name)); err != nil {
				t.Errorf("missing %s", name)
			}
		}
	}
	for _, name := range []string{"index.html", "qr.html", "qr.png", "diagram.svg"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s", name)
		}
	}
	if !strings.Contains(log.String(), "[18/18] diagram.svg") {
		t.Errorf("progress log = %q", log.String())
	}
}

var hrefPattern = regexp.MustCompile(`href="([^"]+)"`)

func TestExportedLinksFollowStateMachine(t *testing.T) {
	out := t.TempDir()
	if _, err := newExporter(t, out, nil).Export(context.Background()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	page := readFile(t, filepath.Join(out, "backend-model-nav.html"))
	if !strings.Contains(page, `class="nav-open"`) {
		t.Error("nav page should render with the panel open")
	}
	// selecting from an open panel lands on the closed page of the new id
	if !strings.Contains(page, `href="frontend-view.html"`) {
		t.Error("select link should target the nav-closed page")
	}
	if strings.Contains(page, "/select/") || strings.Contains(page, "<script>") {
		t.Error("static pages must not depend on the server")
	}

	// every local link resolves to a written file
	for _, m := range hrefPattern.FindAllStringSubmatch(page, -1) {
		href := html.UnescapeString(m[1])
		if strings.HasPrefix(href, "http") {
			continue
		}
		if _, err := os.Stat(filepath.Join(out, href)); err != nil {
			t.Errorf("dangling link %q", href)
		}
	}
}

func TestExportedPageShowsSectionVerbatim(t *testing.T) {
	out := t.TempDir()
	if _, err := newExporter(t, out, nil).Export(context.Background()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	s, _ := catalog.Default().Get(catalog.BackendPersistence)
	page := readFile(t, filepath.Join(out, "backend-persistence.html"))
	text := html.UnescapeString(regexp.MustCompile(`<[^>]*>`).ReplaceAllString(page, ""))
	if !strings.Contains(text, s.Description) || !strings.Contains(text, s.CodeExample) {
		t.Error("exported page altered the section content")
	}
	if !strings.Contains(page, `src="assets/memes/persistence-gandalf-crud.png"`) {
		t.Error("illustration should point into the assets folder")
	}
}

func TestExportCopiesAllowedAssets(t *testing.T) {
	src := t.TempDir()
	os.MkdirAll(filepath.Join(src, "memes"), 0755)
	os.WriteFile(filepath.Join(src, "memes", "view.png"), []byte("img"), 0644)
	os.WriteFile(filepath.Join(src, "notes.txt"), []byte("private"), 0644)
	assets, err := web.NewAssets(src, nil)
	if err != nil {
		t.Fatalf("NewAssets: %v", err)
	}

	out := t.TempDir()
	if _, err := newExporter(t, out, assets).Export(context.Background()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got := readFile(t, filepath.Join(out, "assets", "memes", "view.png")); got != "img" {
		t.Errorf("copied asset = %q", got)
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "notes.txt")); err == nil {
		t.Error("filtered file was copied")
	}
}

func TestExportHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := newExporter(t, t.TempDir(), nil).Export(ctx)
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Errorf("Export = %d, %v", n, err)
	}
}

func TestExportRequiresOutputDir(t *testing.T) {
	if _, err := newExporter(t, "", nil).Export(context.Background()); err == nil {
		t.Error("expected an error")
	}
}
