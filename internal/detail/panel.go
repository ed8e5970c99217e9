// Package detail builds the content panel for the active section. The same
// Panel feeds the web templates, the static export, the terminal browser
// and the MCP tools.
package detail

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/extras"
	"github.com/ziadkadry99/layermap/internal/palette"
)

// NotFoundMessage is shown in place of a panel for unknown ids.
const NotFoundMessage = "Sección no encontrada"

// Panel is the rendered-ready view of one section.
type Panel struct {
	ID    catalog.SectionID `json:"id" yaml:"id"`
	Found bool              `json:"found" yaml:"found"`

	Title          string           `json:"title,omitempty" yaml:"title,omitempty"`
	Category       catalog.Category `json:"category,omitempty" yaml:"category,omitempty"`
	CategoryLabel  string           `json:"category_label,omitempty" yaml:"category_label,omitempty"`
	Description    string           `json:"description,omitempty" yaml:"description,omitempty"`
	Responsibility string           `json:"responsibility,omitempty" yaml:"responsibility,omitempty"`
	CodeExample    string           `json:"code_example,omitempty" yaml:"code_example,omitempty"`
	Language       string           `json:"language,omitempty" yaml:"language,omitempty"`

	Style        palette.Style       `json:"style" yaml:"style"`
	Illustration extras.Illustration `json:"illustration" yaml:"illustration"`
	Practices    []string            `json:"practices,omitempty" yaml:"practices,omitempty"`
}

var upper = cases.Upper(language.Spanish)

// Build resolves id against cat. Unknown ids produce a panel with Found
// false whose title is NotFoundMessage; Build never fails.
func Build(cat *catalog.Catalog, id catalog.SectionID) Panel {
	s, ok := cat.Get(id)
	if !ok {
		return Panel{
			ID:    id,
			Title: NotFoundMessage,
			Style: palette.DefaultStyle,
		}
	}
	return Panel{
		ID:             s.ID,
		Found:          true,
		Title:          s.Title,
		Category:       s.Category,
		CategoryLabel:  upper.String(string(s.Category)),
		Description:    s.Description,
		Responsibility: s.Responsibility,
		CodeExample:    s.CodeExample,
		Language:       s.Language,
		Style:          palette.StyleFor(s.Color),
		Illustration:   extras.IllustrationFor(s.ID),
		Practices:      extras.PracticesFor(s.ID),
	}
}

// Markdown renders the panel as a Markdown document. imageBase resolves
// relative illustration paths; pass "" to leave them as stored.
func Markdown(p Panel, imageBase string) string {
	var b strings.Builder
	if !p.Found {
		fmt.Fprintf(&b, "# %s\n\n`%s`\n", NotFoundMessage, p.ID)
		return b.String()
	}

	fmt.Fprintf(&b, "# %s\n\n**%s**\n\n%s\n\n", p.Title, p.CategoryLabel, p.Description)
	fmt.Fprintf(&b, "## Responsabilidades\n\n%s\n\n", p.Responsibility)

	b.WriteString("## Principios clave\n\n")
	for _, practice := range p.Practices {
		fmt.Fprintf(&b, "- %s\n", practice)
	}
	b.WriteString("\n")

	fence := Fence(p.CodeExample)
	fmt.Fprintf(&b, "## Ejemplo de código\n\n%s%s\n%s\n%s\n\n", fence, p.Language, p.CodeExample, fence)

	ill := p.Illustration
	fmt.Fprintf(&b, "## %s\n\n%s\n\n![%s](%s)\n", ill.Title, ill.Subtitle, ill.Alt, ill.Src(imageBase))
	return b.String()
}

// Fence returns a backtick fence longer than any backtick run in code, so
// the code can be embedded in Markdown without being altered.
func Fence(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}
