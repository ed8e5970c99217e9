package palette

import "testing"

func TestStyleForKnownTags(t *testing.T) {
	for _, tag := range Tags() {
		s := StyleFor(tag)
		if s == DefaultStyle {
			t.Errorf("StyleFor(%q) returned the default style", tag)
		}
		if s.Background == "" || s.Border == "" || s.Text == "" || s.Accent == "" {
			t.Errorf("StyleFor(%q) has empty fields: %+v", tag, s)
		}
	}
}

func TestStyleForUnknownTag(t *testing.T) {
	tests := []Tag{"", "magenta", "BLUE", "text-blue-600"}
	for _, tag := range tests {
		s := StyleFor(tag)
		if s != DefaultStyle {
			t.Errorf("StyleFor(%q) = %+v, want default", tag, s)
		}
		if s.Background == "" || s.Accent == "" {
			t.Errorf("default style must not be empty: %+v", s)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known(Indigo) {
		t.Error("indigo should be known")
	}
	if Known("gray") {
		t.Error("gray should not be known")
	}
}

func TestTagsIsACopy(t *testing.T) {
	tags := Tags()
	if len(tags) != 9 {
		t.Fatalf("expected 9 tags, got %d", len(tags))
	}
	tags[0] = "mutated"
	if Tags()[0] != Blue {
		t.Error("Tags should return a fresh slice")
	}
}
