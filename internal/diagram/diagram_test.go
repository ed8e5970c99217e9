package diagram

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/palette"
)

func TestDefaultLayoutResolves(t *testing.T) {
	l := Default()
	if err := l.Validate(catalog.Default()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(l.Nodes) != 7 {
		t.Errorf("nodes = %d, want 7", len(l.Nodes))
	}
	if len(l.Edges) != 9 {
		t.Errorf("edges = %d, want 9", len(l.Edges))
	}
	for _, id := range catalog.IDs() {
		if _, ok := l.Node(id); !ok {
			t.Errorf("no node for %q", id)
		}
	}
}

func TestEdgesJoinNodes(t *testing.T) {
	l := Default()
	for i, e := range l.Edges {
		if _, ok := l.NodeAt(e.From); !ok {
			t.Errorf("edge %d starts at %+v, not on a node", i, e.From)
		}
		if _, ok := l.NodeAt(e.To); !ok {
			t.Errorf("edge %d ends at %+v, not on a node", i, e.To)
		}
	}
}

func TestValidateRejectsBadLayouts(t *testing.T) {
	cat := catalog.Default()
	tests := []struct {
		name   string
		layout Layout
	}{
		{"unknown id", Layout{Nodes: []Node{{ID: "backend-cache", Pos: Point{10, 10}}}}},
		{"duplicate id", Layout{Nodes: []Node{
			{ID: catalog.FrontendModel, Pos: Point{10, 10}},
			{ID: catalog.FrontendModel, Pos: Point{20, 10}},
		}}},
		{"node off canvas", Layout{Nodes: []Node{{ID: catalog.FrontendModel, Pos: Point{101, 10}}}}},
		{"edge off canvas", Layout{Edges: []Edge{{From: Point{10, 10}, To: Point{10, -1}}}}},
		{"zero length edge", Layout{Edges: []Edge{{From: Point{10, 10}, To: Point{10, 10}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.layout.Validate(cat); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMidpointAndAngle(t *testing.T) {
	tests := []struct {
		edge      Edge
		mid       Point
		wantAngle float64
	}{
		{Edge{From: Point{25, 50}, To: Point{25, 70}}, Point{25, 60}, 90},
		{Edge{From: Point{65, 70}, To: Point{85, 70}}, Point{75, 70}, 0},
		{Edge{From: Point{85, 70}, To: Point{65, 70}}, Point{75, 70}, 180},
		{Edge{From: Point{25, 70}, To: Point{75, 30}}, Point{50, 50}, math.Atan2(-40, 50) * 180 / math.Pi},
	}
	for _, tt := range tests {
		if got := tt.edge.Midpoint(); got != tt.mid {
			t.Errorf("Midpoint(%+v) = %+v, want %+v", tt.edge, got, tt.mid)
		}
		if got := tt.edge.Angle(); math.Abs(got-tt.wantAngle) > 1e-9 {
			t.Errorf("Angle(%+v) = %v, want %v", tt.edge, got, tt.wantAngle)
		}
	}
}

func TestSegmentsStopAtBoxBorder(t *testing.T) {
	l := Layout{
		Nodes: []Node{
			{ID: catalog.FrontendView, Pos: Point{25, 50}},
			{ID: catalog.FrontendController, Pos: Point{25, 70}},
		},
		Edges: []Edge{{From: Point{25, 50}, To: Point{25, 70}}},
	}
	seg := l.Segments(DefaultCanvas)[0]
	// centres are at y=200 and y=280, boxes are 44 high
	if math.Abs(seg.Start.Y-222) > 1e-9 || math.Abs(seg.End.Y-258) > 1e-9 {
		t.Errorf("segment = %+v, want y 222 -> 258", seg)
	}
	if seg.Start.X != 250 || seg.End.X != 250 {
		t.Errorf("vertical segment drifted: %+v", seg)
	}
	if seg.Angle != 90 {
		t.Errorf("angle = %v", seg.Angle)
	}
}

func TestOpposedEdgesAreOffset(t *testing.T) {
	l := Default()
	segs := l.Segments(DefaultCanvas)
	var there, back *Segment
	for i, e := range l.Edges {
		if e.From == posBackModel && e.To == posBackPersistence {
			there = &segs[i]
		}
		if e.From == posBackPersistence && e.To == posBackModel {
			back = &segs[i]
		}
	}
	if there == nil || back == nil {
		t.Fatal("model/persistence edges missing")
	}
	if there.Start.Y == back.Start.Y {
		t.Errorf("opposed edges overlap at y=%v", there.Start.Y)
	}
	if math.Abs(there.Start.Y-back.Start.Y) != 2*parallelGap {
		t.Errorf("gap = %v, want %v", math.Abs(there.Start.Y-back.Start.Y), 2*parallelGap)
	}
}

func TestPlateFitsLabel(t *testing.T) {
	if p := PlateFor(""); p != (Plate{}) {
		t.Errorf("empty label plate = %+v", p)
	}
	short, long := PlateFor("DTOs"), PlateFor("Data Transfer Objects")
	if short.Width <= 0 || long.Width <= short.Width {
		t.Errorf("plates not sized by length: %+v %+v", short, long)
	}
	if PlateFor("ñandú").Width != PlateFor("nandu").Width {
		t.Error("plate width should count runes, not bytes")
	}
}

func TestRenderMarksActiveNode(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Default(), Options{Active: catalog.BackendService})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("standalone render should carry the XML declaration")
	}
	if strings.Count(out, "scale(1.1)") != 1 {
		t.Errorf("expected exactly one emphasised node")
	}
	if !strings.Contains(out, `/select/backend-service?from=diagram`) {
		t.Error("default href missing")
	}
	if !strings.Contains(out, ">DTOs<") {
		t.Error("DTO label missing")
	}
	if !strings.Contains(out, `rotate(`) {
		t.Error("label should be rotated along its edge")
	}
	for _, tag := range []palette.Tag{palette.Pink, palette.Indigo, palette.Orange} {
		if !strings.Contains(out, `id="arrowhead-`+string(tag)+`"`) {
			t.Errorf("missing marker for %s", tag)
		}
	}
}

func TestMarkupIsEmbeddable(t *testing.T) {
	out := Markup(Default(), Options{
		Href:   func(id catalog.SectionID) string { return string(id) + ".html" },
		Titles: map[catalog.SectionID]string{catalog.BackendModel: "Backend Model"},
	})
	if !bytes.HasPrefix(out, []byte("<svg")) {
		t.Errorf("markup starts with %q", out[:min(len(out), 20)])
	}
	if !bytes.Contains(out, []byte(`backend-model.html`)) {
		t.Error("custom href not applied")
	}
	if !bytes.Contains(out, []byte("<title>Backend Model</title>")) {
		t.Error("title override not applied")
	}
	if bytes.Count(out, []byte(`data-source="diagram"`)) != 7 {
		t.Error("every node should carry a diagram-sourced intent")
	}
}
