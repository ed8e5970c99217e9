package web

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// DefaultAssetPatterns lists what the assets directory may serve when no
// patterns are configured.
var DefaultAssetPatterns = []string{"**/*.png", "**/*.jpg", "**/*.jpeg", "**/*.gif", "**/*.svg", "**/*.webp", "**/*.ico"}

// Assets serves files from a directory, restricted to a set of doublestar
// patterns. A zero Assets serves nothing.
type Assets struct {
	fsys     fs.FS
	patterns []string
}

// NewAssets creates an asset filter over dir. Invalid patterns are
// reported up front.
func NewAssets(dir string, patterns []string) (*Assets, error) {
	if len(patterns) == 0 {
		patterns = DefaultAssetPatterns
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid asset pattern %q", p)
		}
	}
	a := &Assets{patterns: patterns}
	if dir != "" {
		a.fsys = os.DirFS(dir)
	}
	return a, nil
}

// Allowed reports whether name matches one of the patterns.
func (a *Assets) Allowed(name string) bool {
	if a == nil || a.fsys == nil || !fs.ValidPath(name) {
		return false
	}
	return lo.SomeBy(a.patterns, func(p string) bool {
		ok, _ := doublestar.Match(p, name)
		return ok
	})
}

// List returns every allowed file under the assets directory, sorted.
func (a *Assets) List() ([]string, error) {
	if a == nil || a.fsys == nil {
		return nil, nil
	}
	var out []string
	for _, p := range a.patterns {
		matches, err := doublestar.Glob(a.fsys, p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("listing assets for %q: %w", p, err)
		}
		out = append(out, matches...)
	}
	out = lo.Uniq(out)
	sort.Strings(out)
	return out, nil
}

// Open opens an allowed asset.
func (a *Assets) Open(name string) (fs.File, error) {
	if !a.Allowed(name) {
		return nil, fs.ErrNotExist
	}
	return a.fsys.Open(name)
}

func (a *Assets) serve(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if !a.Allowed(name) {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, a.fsys, name)
}
