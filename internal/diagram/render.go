package diagram

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/samber/lo"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/palette"
	"github.com/ziadkadry99/layermap/internal/shell"
)

// HrefFunc returns the link target a node navigates to.
type HrefFunc func(id catalog.SectionID) string

// Options control a single render.
type Options struct {
	Canvas Canvas
	Active catalog.SectionID
	Href   HrefFunc
	// Titles maps ids to the tooltip shown on hover. Missing ids fall back
	// to the node name.
	Titles map[catalog.SectionID]string
}

// Render writes the layout as a standalone SVG document.
func Render(w io.Writer, l Layout, opts Options) error {
	var buf bytes.Buffer
	draw(&buf, l, opts)
	_, err := w.Write(buf.Bytes())
	return err
}

// Markup returns the SVG element without the XML declaration, for
// embedding in an HTML page.
func Markup(l Layout, opts Options) []byte {
	var buf bytes.Buffer
	draw(&buf, l, opts)
	b := buf.Bytes()
	if i := bytes.Index(b, []byte("<svg")); i > 0 {
		b = b[i:]
	}
	return b
}

func draw(w io.Writer, l Layout, opts Options) {
	c := opts.Canvas
	if c.Width == 0 || c.Height == 0 {
		c = DefaultCanvas
	}
	href := opts.Href
	if href == nil {
		href = func(id catalog.SectionID) string { return "/select/" + string(id) + "?from=diagram" }
	}

	canvas := svg.New(w)
	cw, ch := round(c.Width), round(c.Height)
	canvas.Startview(cw, ch, 0, 0, cw, ch)
	canvas.Title("Diagrama de capas")

	colors := lo.Uniq(lo.Map(l.Edges, func(e Edge, _ int) palette.Tag { return e.Color }))
	canvas.Def()
	for _, tag := range colors {
		canvas.Marker(markerID(tag), 10, 4, 10, 8, `orient="auto"`, `markerUnits="strokeWidth"`)
		canvas.Polygon([]int{0, 10, 0}, []int{0, 4, 8}, "fill:"+palette.StyleFor(tag).Accent)
		canvas.MarkerEnd()
	}
	canvas.DefEnd()

	drawHeadings(canvas, c)

	canvas.Group(`class="edges"`)
	for i, seg := range l.Segments(c) {
		drawEdge(canvas, l.Edges[i], seg)
	}
	canvas.Gend()

	canvas.Group(`class="nodes"`)
	for _, n := range l.Nodes {
		title := opts.Titles[n.ID]
		if title == "" {
			title = n.Name
		}
		drawNode(canvas, c, n, n.ID == opts.Active, href(n.ID), title)
	}
	canvas.Gend()

	canvas.End()
}

func drawHeadings(canvas *svg.SVG, c Canvas) {
	for _, h := range []struct {
		label string
		x     float64
		tag   palette.Tag
	}{
		{"Frontend", 25, palette.Yellow},
		{"Backend", 75, palette.Blue},
	} {
		p := c.Project(Point{X: h.x, Y: 12})
		canvas.Text(round(p.X), round(p.Y), h.label,
			`text-anchor="middle"`,
			"font-size:18px;font-weight:700;letter-spacing:2px;fill:"+palette.StyleFor(h.tag).Accent)
	}
}

func drawEdge(canvas *svg.SVG, e Edge, seg Segment) {
	stroke := palette.StyleFor(e.Color).Accent
	width := 2
	if e.Thick {
		width = 3
	}
	canvas.Line(round(seg.Start.X), round(seg.Start.Y), round(seg.End.X), round(seg.End.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%d", stroke, width),
		fmt.Sprintf(`marker-end="url(#%s)"`, markerID(e.Color)))

	if e.Label == "" {
		return
	}
	mx, my := round(seg.Mid.X), round(seg.Mid.Y)
	pw, ph := round(seg.Plate.Width), round(seg.Plate.Height)
	canvas.Gtransform(fmt.Sprintf("rotate(%.2f %d %d)", seg.Angle, mx, my))
	canvas.Roundrect(mx-pw/2, my-ph/2, pw, ph, 4, 4,
		fmt.Sprintf("fill:#ffffff;stroke:%s;stroke-width:1", stroke))
	canvas.Text(mx, my, e.Label,
		`text-anchor="middle"`, `dominant-baseline="central"`,
		"font-size:16px;font-weight:700;fill:"+stroke)
	canvas.Gend()
}

func drawNode(canvas *svg.SVG, c Canvas, n Node, active bool, href, title string) {
	style := palette.StyleFor(n.Color)
	p := c.Project(n.Pos)
	cx, cy := round(p.X), round(p.Y)
	x, y := cx-boxWidth/2, cy-boxHeight/2
	intent := shell.Select(n.ID, shell.SourceDiagram)

	canvas.Link(html.EscapeString(href), html.EscapeString(title))
	canvas.Group(
		`class="node"`,
		fmt.Sprintf(`data-intent=%q`, intent.Kind),
		fmt.Sprintf(`data-id=%q`, html.EscapeString(string(intent.ID))),
		fmt.Sprintf(`data-source=%q`, intent.Source),
	)
	canvas.Title(title)
	if active {
		canvas.Gtransform(fmt.Sprintf("translate(%d %d) scale(1.1) translate(%d %d)", cx, cy, -cx, -cy))
		canvas.Roundrect(x-4, y-4, boxWidth+8, boxHeight+8, 12, 12,
			"fill:none;stroke:"+style.Accent+";stroke-width:2")
	}
	border := 2
	if active {
		border = 3
	}
	canvas.Roundrect(x, y, boxWidth, boxHeight, 8, 8,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", style.Background, style.Border, border))
	canvas.Text(cx, cy, n.Name,
		`text-anchor="middle"`, `dominant-baseline="central"`,
		"font-size:16px;font-weight:600;fill:"+style.Text)
	if active {
		canvas.Gend()
	}
	canvas.Gend()
	canvas.LinkEnd()
}

func markerID(tag palette.Tag) string {
	return "arrowhead-" + string(tag)
}

func round(f float64) int {
	return int(math.Round(f))
}
