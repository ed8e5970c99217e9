package diagram

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/palette"
)

// Point is a position expressed as percentages of the diagram canvas, so
// the layout does not depend on the rendered size.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// InBounds reports whether both coordinates lie in [0,100].
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// Node is a clickable layer box.
type Node struct {
	ID    catalog.SectionID `json:"id"`
	Name  string            `json:"name"`
	Color palette.Tag       `json:"color"`
	Pos   Point             `json:"position"`
}

// Edge is a directed connector drawn from one position to another.
type Edge struct {
	From  Point       `json:"from"`
	To    Point       `json:"to"`
	Color palette.Tag `json:"color"`
	Thick bool        `json:"thick,omitempty"`
	Label string      `json:"label,omitempty"`
}

// Layout is the full set of boxes and connectors.
type Layout struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Frontend boxes sit in a column on the left, backend boxes on the right
// with model and persistence side by side.
var (
	posFrontModel      = Point{25, 30}
	posFrontView       = Point{25, 50}
	posFrontController = Point{25, 70}
	posBackController  = Point{75, 30}
	posBackService     = Point{75, 50}
	posBackModel       = Point{65, 70}
	posBackPersistence = Point{85, 70}
)

// Default returns the LayerMap architecture diagram.
func Default() Layout {
	return Layout{
		Nodes: []Node{
			{ID: catalog.FrontendModel, Name: "Model", Color: palette.Yellow, Pos: posFrontModel},
			{ID: catalog.FrontendView, Name: "View", Color: palette.Cyan, Pos: posFrontView},
			{ID: catalog.FrontendController, Name: "Controller", Color: palette.Pink, Pos: posFrontController},
			{ID: catalog.BackendController, Name: "Controller", Color: palette.Blue, Pos: posBackController},
			{ID: catalog.BackendService, Name: "Service", Color: palette.Green, Pos: posBackService},
			{ID: catalog.BackendModel, Name: "Model", Color: palette.Orange, Pos: posBackModel},
			{ID: catalog.BackendPersistence, Name: "Persistence", Color: palette.Red, Pos: posBackPersistence},
		},
		Edges: []Edge{
			// frontend MVC cycle
			{From: posFrontView, To: posFrontController, Color: palette.Pink},
			{From: posFrontController, To: posFrontModel, Color: palette.Pink},
			{From: posFrontModel, To: posFrontView, Color: palette.Yellow},

			{From: posFrontController, To: posBackController, Color: palette.Indigo, Thick: true, Label: "DTOs"},

			{From: posBackController, To: posBackService, Color: palette.Blue},
			{From: posBackService, To: posBackModel, Color: palette.Green},
			{From: posBackService, To: posBackPersistence, Color: palette.Green},

			// model and persistence talk both ways
			{From: posBackModel, To: posBackPersistence, Color: palette.Orange},
			{From: posBackPersistence, To: posBackModel, Color: palette.Orange},
		},
	}
}

// NodeAt returns the node positioned exactly at p.
func (l Layout) NodeAt(p Point) (Node, bool) {
	for _, n := range l.Nodes {
		if n.Pos == p {
			return n, true
		}
	}
	return Node{}, false
}

// Node returns the node for a section id.
func (l Layout) Node(id catalog.SectionID) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Validate checks that every node resolves to a catalog section, that ids
// are not repeated, and that every coordinate is inside the canvas.
func (l Layout) Validate(cat *catalog.Catalog) error {
	var errs []error
	seen := make(map[catalog.SectionID]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		if _, ok := cat.Get(n.ID); !ok {
			errs = append(errs, fmt.Errorf("diagram node %q does not resolve to a section", n.ID))
		}
		if seen[n.ID] {
			errs = append(errs, fmt.Errorf("diagram node %q appears twice", n.ID))
		}
		seen[n.ID] = true
		if !n.Pos.InBounds() {
			errs = append(errs, fmt.Errorf("diagram node %q is outside the canvas: %+v", n.ID, n.Pos))
		}
	}
	for i, e := range l.Edges {
		if !e.From.InBounds() || !e.To.InBounds() {
			errs = append(errs, fmt.Errorf("diagram edge %d is outside the canvas: %+v -> %+v", i, e.From, e.To))
		}
		if e.From == e.To {
			errs = append(errs, fmt.Errorf("diagram edge %d has zero length", i))
		}
	}
	return errors.Join(errs...)
}
