package detail

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Highlighter renders code samples as syntax-highlighted HTML. Results are
// cached per sample since the catalog is fixed.
type Highlighter struct {
	md    goldmark.Markdown
	mu    sync.Mutex
	cache map[codeKey]template.HTML
}

type codeKey struct {
	code, language string
}

// NewHighlighter creates a Highlighter using the given chroma style name.
func NewHighlighter(style string) *Highlighter {
	if style == "" {
		style = "monokai"
	}
	return &Highlighter{
		md: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
		),
		cache: make(map[codeKey]template.HTML),
	}
}

// Code returns the highlighted HTML for code. The code text itself is never
// changed; if highlighting fails the code is returned escaped inside a plain
// pre/code block.
func (h *Highlighter) Code(code, language string) template.HTML {
	key := codeKey{code, language}
	h.mu.Lock()
	out, ok := h.cache[key]
	h.mu.Unlock()
	if ok {
		return out
	}

	out, err := h.render(code, language)
	if err != nil {
		return Plain(code, language)
	}

	h.mu.Lock()
	h.cache[key] = out
	h.mu.Unlock()
	return out
}

func (h *Highlighter) render(code, language string) (template.HTML, error) {
	fence := Fence(code)
	src := fence + language + "\n" + code + "\n" + fence + "\n"

	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s sample: %w", language, err)
	}
	return template.HTML(buf.String()), nil
}

// Plain renders code escaped, without highlighting.
func Plain(code, language string) template.HTML {
	return template.HTML(fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
		html.EscapeString(language), html.EscapeString(code)))
}
