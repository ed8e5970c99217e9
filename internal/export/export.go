// Package export writes LayerMap as a static site. Every reachable
// selection state gets its own page, so the site works without a server.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/progress"
	"github.com/ziadkadry99/layermap/internal/qr"
	"github.com/ziadkadry99/layermap/internal/shell"
	"github.com/ziadkadry99/layermap/internal/web"
)

// Exporter converts the catalog into a static HTML site.
type Exporter struct {
	Renderer  *web.Renderer
	Assets    *web.Assets // optional
	PublicURL string
	OutputDir string
	Initial   catalog.SectionID
	Reporter  progress.Reporter
	Logger    *zap.Logger
}

// file is one output produced by the export.
type file struct {
	name  string
	write func(w io.Writer) error
}

// Export writes the site and returns the number of files written.
func (e *Exporter) Export(ctx context.Context) (int, error) {
	if e.OutputDir == "" {
		return 0, fmt.Errorf("output directory is required")
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	files, err := e.plan()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	reporter.Start(len(files))
	defer reporter.Finish()

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := e.writeFile(f); err != nil {
			return i, err
		}
		logger.Debug("exported file", zap.String("name", f.name))
		reporter.Update(i+1, f.name)
	}
	return len(files), nil
}

// plan lists every file in write order.
func (e *Exporter) plan() ([]file, error) {
	links := web.StaticLinks{}
	home := shell.New(e.Initial)

	var files []file
	files = append(files, file{"index.html", func(w io.Writer) error {
		return e.Renderer.Main(w, home, links, false)
	}})
	for _, st := range web.States(e.Renderer.Catalog()) {
		files = append(files, file{web.PageName(st), func(w io.Writer) error {
			return e.Renderer.Main(w, st, links, false)
		}})
	}
	files = append(files,
		file{"qr.html", func(w io.Writer) error {
			return e.Renderer.QR(w, home, links)
		}},
		file{"qr.png", func(w io.Writer) error {
			png, err := qr.PNG(e.PublicURL, qr.DefaultSize)
			if err != nil {
				return err
			}
			_, err = w.Write(png)
			return err
		}},
		file{"diagram.svg", func(w io.Writer) error {
			return e.Renderer.DiagramSVG(w, home, links)
		}},
	)

	assets, err := e.Assets.List()
	if err != nil {
		return nil, err
	}
	for _, name := range assets {
		files = append(files, file{filepath.ToSlash(filepath.Join("assets", name)), func(w io.Writer) error {
			src, err := e.Assets.Open(name)
			if err != nil {
				return err
			}
			defer src.Close()
			_, err = io.Copy(w, src)
			return err
		}})
	}
	return files, nil
}

func (e *Exporter) writeFile(f file) error {
	var buf bytes.Buffer
	if err := f.write(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", f.name, err)
	}
	dst := filepath.Join(e.OutputDir, filepath.FromSlash(f.name))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", f.name, err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.name, err)
	}
	return nil
}
