package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/detail"
	"github.com/ziadkadry99/layermap/internal/diagram"
	"github.com/ziadkadry99/layermap/internal/navigation"
	"github.com/ziadkadry99/layermap/internal/shell"
)

// RenderOptions configures page rendering.
type RenderOptions struct {
	PublicURL string
	// LogoPath is relative to the assets root. Empty uses the built-in icon.
	LogoPath string
	Layout   diagram.Layout
}

// Renderer turns a SelectionState into HTML. It holds no per-visitor data
// and is safe for concurrent use.
type Renderer struct {
	cat    *catalog.Catalog
	hl     *detail.Highlighter
	opts   RenderOptions
	tmpl   *template.Template
	titles map[catalog.SectionID]string
}

// NewRenderer parses the page templates.
func NewRenderer(cat *catalog.Catalog, hl *detail.Highlighter, opts RenderOptions) (*Renderer, error) {
	tmpl, err := template.New("layermap").Funcs(funcs).Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	if opts.Layout.Nodes == nil {
		opts.Layout = diagram.Default()
	}
	titles := make(map[catalog.SectionID]string, cat.Len())
	for _, s := range cat.All() {
		titles[s.ID] = s.Title
	}
	return &Renderer{cat: cat, hl: hl, opts: opts, tmpl: tmpl, titles: titles}, nil
}

type navItem struct {
	navigation.ItemView
	Href string
}

type navGroup struct {
	navigation.GroupView
	Items []navItem
}

type mainView struct {
	Live   bool
	State  shell.State
	Panel  detail.Panel
	Groups []navGroup

	Code     template.HTML
	Diagram  template.HTML
	ImageSrc string
	LogoSrc  string

	ToggleHref string
	CloseHref  string
	QRHref     string

	Styles template.CSS
	Script template.JS
}

type qrView struct {
	PublicURL string
	QRSrc     string
	BackHref  string
	LogoSrc   string
	Styles    template.CSS
}

// Fragments are the independently replaceable regions of the main view.
type Fragments struct {
	Sidebar string `json:"sidebar"`
	Header  string `json:"header"`
	Diagram string `json:"diagram"`
	Detail  string `json:"detail"`
}

func (r *Renderer) view(st shell.State, links Links, live bool) mainView {
	panel := detail.Build(r.cat, st.ActiveID)

	var groups []navGroup
	for _, g := range navigation.View(st.ActiveID) {
		ng := navGroup{GroupView: g}
		for _, item := range g.Items {
			ng.Items = append(ng.Items, navItem{ItemView: item, Href: links.Intent(st, item.Intent)})
		}
		groups = append(groups, ng)
	}

	v := mainView{
		Live:       live,
		State:      st,
		Panel:      panel,
		Groups:     groups,
		Diagram:    template.HTML(r.diagramMarkup(st, links)),
		ToggleHref: links.Intent(st, shell.ToggleNav()),
		CloseHref:  links.Intent(st, shell.CloseNav()),
		QRHref:     links.Screen(st, shell.ScreenMain.Next()),
		LogoSrc:    r.logo(links),
		Styles:     template.CSS(styles),
		Script:     template.JS(liveScript),
	}
	if panel.Found {
		v.Code = r.hl.Code(panel.CodeExample, panel.Language)
		v.ImageSrc = panel.Illustration.Src(links.Asset(""))
	}
	return v
}

func (r *Renderer) logo(links Links) string {
	if r.opts.LogoPath == "" {
		return ""
	}
	return links.Asset(r.opts.LogoPath)
}

func (r *Renderer) diagramOptions(st shell.State, links Links) diagram.Options {
	return diagram.Options{
		Active: st.ActiveID,
		Titles: r.titles,
		Href: func(id catalog.SectionID) string {
			return links.Intent(st, shell.Select(id, shell.SourceDiagram))
		},
	}
}

func (r *Renderer) diagramMarkup(st shell.State, links Links) []byte {
	return diagram.Markup(r.opts.Layout, r.diagramOptions(st, links))
}

// Main writes the full main view for st.
func (r *Renderer) Main(w io.Writer, st shell.State, links Links, live bool) error {
	if err := r.tmpl.ExecuteTemplate(w, "main", r.view(st, links, live)); err != nil {
		return fmt.Errorf("rendering main view: %w", err)
	}
	return nil
}

// Fragments renders each region of the main view for st on its own.
func (r *Renderer) Fragments(st shell.State, links Links) (Fragments, error) {
	v := r.view(st, links, true)
	var f Fragments
	for _, part := range []struct {
		name string
		dst  *string
	}{
		{"sidebar", &f.Sidebar},
		{"header", &f.Header},
		{"diagram", &f.Diagram},
		{"detail", &f.Detail},
	} {
		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, part.name, v); err != nil {
			return Fragments{}, fmt.Errorf("rendering %s fragment: %w", part.name, err)
		}
		*part.dst = buf.String()
	}
	return f, nil
}

// Title is the document title for st.
func (r *Renderer) Title(st shell.State) string {
	return "LayerMap - " + detail.Build(r.cat, st.ActiveID).Title
}

// QR writes the QR code screen.
func (r *Renderer) QR(w io.Writer, st shell.State, links Links) error {
	v := qrView{
		PublicURL: r.opts.PublicURL,
		QRSrc:     links.QRImage(),
		BackHref:  links.Screen(st, shell.ScreenQR.Next()),
		LogoSrc:   r.logo(links),
		Styles:    template.CSS(styles),
	}
	if err := r.tmpl.ExecuteTemplate(w, "qr", v); err != nil {
		return fmt.Errorf("rendering qr view: %w", err)
	}
	return nil
}

// DiagramSVG writes the diagram for st as a standalone SVG document.
func (r *Renderer) DiagramSVG(w io.Writer, st shell.State, links Links) error {
	return diagram.Render(w, r.opts.Layout, r.diagramOptions(st, links))
}

// Catalog returns the catalog the renderer draws from.
func (r *Renderer) Catalog() *catalog.Catalog { return r.cat }
