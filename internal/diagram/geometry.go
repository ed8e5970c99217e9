package diagram

import (
	"math"
	"unicode/utf8"
)

// Canvas maps percentage coordinates onto SVG user units.
type Canvas struct {
	Width, Height float64
}

// DefaultCanvas matches the 400px-high map of the web view at a 5:2 ratio.
var DefaultCanvas = Canvas{Width: 1000, Height: 400}

// Box dimensions in canvas units.
const (
	boxWidth  = 130
	boxHeight = 44
)

// Label plate metrics in canvas units, sized for 16px bold text.
const (
	labelCharWidth = 10
	labelPadding   = 16
	labelHeight    = 24
)

// parallelGap separates two edges that join the same pair of points in
// opposite directions.
const parallelGap = 6

// Vec is a position in canvas units.
type Vec struct {
	X, Y float64
}

// Project converts a percentage point into canvas units.
func (c Canvas) Project(p Point) Vec {
	return Vec{X: p.X * c.Width / 100, Y: p.Y * c.Height / 100}
}

// Midpoint returns the percentage point halfway along the edge.
func (e Edge) Midpoint() Point {
	return Point{X: (e.From.X + e.To.X) / 2, Y: (e.From.Y + e.To.Y) / 2}
}

// Angle returns the direction of the edge in degrees, atan2(dy, dx).
func (e Edge) Angle() float64 {
	return degrees(math.Atan2(e.To.Y-e.From.Y, e.To.X-e.From.X))
}

// reversed reports whether o runs along e in the opposite direction.
func (e Edge) reversed(o Edge) bool {
	return e.From == o.To && e.To == o.From
}

// Segment is an edge resolved into canvas units, ready to draw.
type Segment struct {
	Start, End Vec
	Mid        Vec
	Angle      float64 // degrees, in canvas space
	Plate      Plate   // zero when the edge has no label
}

// Plate is the background rectangle behind an edge label, centred on Mid
// before rotation.
type Plate struct {
	Width, Height float64
}

// PlateFor sizes a label plate for text.
func PlateFor(label string) Plate {
	if label == "" {
		return Plate{}
	}
	return Plate{
		Width:  float64(utf8.RuneCountInString(label)*labelCharWidth + labelPadding),
		Height: labelHeight,
	}
}

// Segments resolves every edge of the layout on canvas c. Endpoints that
// sit on a node are pulled back to the box border so arrowheads stay
// visible, and opposed edges between the same two points are offset to
// either side of the centre line.
func (l Layout) Segments(c Canvas) []Segment {
	out := make([]Segment, 0, len(l.Edges))
	for i, e := range l.Edges {
		start, end := c.Project(e.From), c.Project(e.To)

		for j, o := range l.Edges {
			if i != j && e.reversed(o) {
				start, end = offset(start, end, parallelGap)
				break
			}
		}

		from, to := start, end
		if _, ok := l.NodeAt(e.From); ok {
			start = clipToBox(to, from)
		}
		if _, ok := l.NodeAt(e.To); ok {
			end = clipToBox(from, to)
		}

		out = append(out, Segment{
			Start: start,
			End:   end,
			Mid:   Vec{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2},
			Angle: degrees(math.Atan2(end.Y-start.Y, end.X-start.X)),
			Plate: PlateFor(e.Label),
		})
	}
	return out
}

// clipToBox moves target back along the line from origin until it lies on
// the border of the box centred at target.
func clipToBox(origin, target Vec) Vec {
	dx, dy := target.X-origin.X, target.Y-origin.Y
	if dx == 0 && dy == 0 {
		return target
	}
	t := math.Inf(1)
	if dx != 0 {
		t = math.Min(t, (boxWidth/2)/math.Abs(dx))
	}
	if dy != 0 {
		t = math.Min(t, (boxHeight/2)/math.Abs(dy))
	}
	if t >= 1 {
		return target
	}
	return Vec{X: target.X - dx*t, Y: target.Y - dy*t}
}

// offset shifts a segment sideways by d units, to the right of its
// direction of travel.
func offset(a, b Vec, d float64) (Vec, Vec) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return a, b
	}
	nx, ny := -dy/length*d, dx/length*d
	return Vec{a.X + nx, a.Y + ny}, Vec{b.X + nx, b.Y + ny}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
