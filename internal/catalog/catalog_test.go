package catalog

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/layermap/internal/palette"
)

func TestDefaultGetEveryID(t *testing.T) {
	c := Default()
	if c.Len() != 7 {
		t.Fatalf("expected 7 sections, got %d", c.Len())
	}
	for _, id := range IDs() {
		s, ok := c.Get(id)
		if !ok {
			t.Errorf("Get(%q) not found", id)
			continue
		}
		if s.ID != id {
			t.Errorf("Get(%q).ID = %q", id, s.ID)
		}
		if s.Title == "" || s.Description == "" || s.Responsibility == "" {
			t.Errorf("section %q has empty display text", id)
		}
		if s.CodeExample == "" {
			t.Errorf("section %q has no code example", id)
		}
		if !palette.Known(s.Color) {
			t.Errorf("section %q uses colour %q outside the palette", id, s.Color)
		}
	}
}

func TestGetUnknownID(t *testing.T) {
	c := Default()
	for _, raw := range []string{"", "frontend", "backend-repository", "FRONTEND-MODEL"} {
		if _, ok := c.Get(SectionID(raw)); ok {
			t.Errorf("Get(%q) should not be found", raw)
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"frontend-model", true},
		{"backend-persistence", true},
		{"backend-repository", false},
		{"", false},
	}
	for _, tt := range tests {
		id, ok := ParseID(tt.in)
		if ok != tt.want {
			t.Errorf("ParseID(%q) ok = %v, want %v", tt.in, ok, tt.want)
		}
		if string(id) != tt.in {
			t.Errorf("ParseID(%q) id = %q", tt.in, id)
		}
	}
}

func TestCategories(t *testing.T) {
	c := Default()
	front := c.ByCategory(Frontend)
	back := c.ByCategory(Backend)
	if len(front) != 3 {
		t.Errorf("expected 3 frontend sections, got %d", len(front))
	}
	if len(back) != 4 {
		t.Errorf("expected 4 backend sections, got %d", len(back))
	}
	for _, s := range front {
		if !strings.HasPrefix(string(s.ID), "frontend-") {
			t.Errorf("frontend group contains %q", s.ID)
		}
	}
}

func TestAllPreservesOrder(t *testing.T) {
	all := Default().All()
	ids := IDs()
	for i, s := range all {
		if s.ID != ids[i] {
			t.Errorf("All()[%d] = %q, want %q", i, s.ID, ids[i])
		}
	}
	all[0].Title = "mutated"
	if s, _ := Default().Get(FrontendModel); s.Title == "mutated" {
		t.Error("All must not expose internal storage")
	}
}

func TestCodeExamplesAreVerbatim(t *testing.T) {
	c := Default()
	s, _ := c.Get(BackendModel)
	if !strings.Contains(s.CodeExample, `"^[A-Za-z0-9+_.-]+@([A-Za-z0-9.-]+\.[A-Za-z]{2,})$"`) {
		t.Error("backend-model example lost its regex escapes")
	}
	if strings.HasSuffix(s.CodeExample, "\n") {
		t.Error("trailing newline should be trimmed")
	}
	fm, _ := c.Get(FrontendModel)
	if !strings.HasPrefix(fm.CodeExample, "// UserModel.js") {
		t.Errorf("unexpected frontend-model example start: %q", fm.CodeExample[:20])
	}
	if fm.Language != "javascript" || s.Language != "java" {
		t.Error("unexpected languages")
	}
}

func TestNewRejectsInconsistentData(t *testing.T) {
	valid := builtin()

	t.Run("duplicate", func(t *testing.T) {
		sections := append(append([]Section{}, valid...), valid[0])
		if _, err := New(sections); err == nil || !strings.Contains(err.Error(), "duplicate") {
			t.Errorf("expected duplicate error, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := New(valid[1:]); err == nil || !strings.Contains(err.Error(), "missing") {
			t.Errorf("expected missing error, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		extra := Section{ID: "backend-cache", Category: Backend}
		sections := append(append([]Section{}, valid...), extra)
		if _, err := New(sections); err == nil || !strings.Contains(err.Error(), "unknown id") {
			t.Errorf("expected unknown id error, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		sections := append([]Section{}, valid...)
		sections[2].Category = "middleware"
		if _, err := New(sections); err == nil || !strings.Contains(err.Error(), "category") {
			t.Errorf("expected category error, got %v", err)
		}
	})
}
