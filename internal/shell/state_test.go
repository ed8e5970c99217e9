package shell

import (
	"testing"

	"github.com/ziadkadry99/layermap/internal/catalog"
)

func TestNewDefaults(t *testing.T) {
	s := New("")
	if s.ActiveID != catalog.FrontendModel {
		t.Errorf("default active id = %q, want %q", s.ActiveID, catalog.FrontendModel)
	}
	if s.NavOpen {
		t.Error("nav panel should start closed")
	}
	if got := New(catalog.BackendModel).ActiveID; got != catalog.BackendModel {
		t.Errorf("New(backend-model).ActiveID = %q", got)
	}
}

func TestSelectSetsActiveID(t *testing.T) {
	for _, id := range catalog.IDs() {
		s := Apply(New(""), Select(id, SourceNav))
		if s.ActiveID != id {
			t.Errorf("select(%q) left active id %q", id, s.ActiveID)
		}
	}
}

func TestSelectIsIndependentOfSource(t *testing.T) {
	starts := []State{
		{ActiveID: catalog.FrontendModel},
		{ActiveID: catalog.FrontendModel, NavOpen: true},
		{ActiveID: catalog.BackendService, NavOpen: true},
	}
	for _, start := range starts {
		for _, id := range catalog.IDs() {
			viaNav := Apply(start, Select(id, SourceNav))
			viaDiagram := Apply(start, Select(id, SourceDiagram))
			if viaNav != viaDiagram {
				t.Errorf("from %+v select(%q): nav %+v != diagram %+v", start, id, viaNav, viaDiagram)
			}
		}
	}
}

func TestSelectClosesNavPanel(t *testing.T) {
	open := State{ActiveID: catalog.FrontendModel, NavOpen: true}
	if got := Apply(open, Select(catalog.BackendModel, SourceNav)); got.NavOpen {
		t.Error("select should close an open nav panel")
	}
	closed := State{ActiveID: catalog.FrontendModel}
	if got := Apply(closed, Select(catalog.BackendModel, SourceDiagram)); got.NavOpen {
		t.Error("select should leave a closed nav panel closed")
	}
}

func TestSelectSameIDIsIdempotent(t *testing.T) {
	s := State{ActiveID: catalog.BackendService}
	once := Apply(s, Select(catalog.BackendService, SourceNav))
	twice := Apply(once, Select(catalog.BackendService, SourceNav))
	if once != s || twice != s {
		t.Errorf("re-selecting the active id changed state: %+v %+v", once, twice)
	}
}

func TestNavIntentsKeepActiveID(t *testing.T) {
	s := State{ActiveID: catalog.BackendController}

	s = Apply(s, OpenNav())
	if !s.NavOpen || s.ActiveID != catalog.BackendController {
		t.Errorf("open: %+v", s)
	}
	s = Apply(s, ToggleNav())
	if s.NavOpen || s.ActiveID != catalog.BackendController {
		t.Errorf("toggle: %+v", s)
	}
	s = Apply(s, ToggleNav())
	if !s.NavOpen {
		t.Errorf("second toggle should reopen: %+v", s)
	}
	s = Apply(s, CloseNav())
	if s.NavOpen || s.ActiveID != catalog.BackendController {
		t.Errorf("close: %+v", s)
	}
}

func TestOpenNavThenSelect(t *testing.T) {
	s := New("")
	s = Apply(s, OpenNav())
	if !s.NavOpen {
		t.Fatal("nav panel should be open")
	}
	s = Apply(s, Select(catalog.BackendPersistence, SourceNav))
	if s.NavOpen {
		t.Error("nav panel should close after selecting")
	}
	if s.ActiveID != catalog.BackendPersistence {
		t.Errorf("active id = %q", s.ActiveID)
	}
}

func TestMalformedIntents(t *testing.T) {
	s := State{ActiveID: catalog.FrontendView, NavOpen: true}
	if got := Apply(s, Intent{Kind: KindSelect}); got != s {
		t.Errorf("select without id changed state: %+v", got)
	}
	if got := Apply(s, Intent{Kind: "zoom"}); got != s {
		t.Errorf("unknown intent changed state: %+v", got)
	}

	tests := []struct {
		intent  Intent
		wantErr bool
	}{
		{Select(catalog.FrontendView, SourceAPI), false},
		{Intent{Kind: KindSelect}, true},
		{OpenNav(), false},
		{ToggleNav(), false},
		{Intent{Kind: "zoom"}, true},
	}
	for _, tt := range tests {
		err := tt.intent.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) err = %v, wantErr %v", tt.intent, err, tt.wantErr)
		}
	}
}

func TestUnknownIDIsStillSelectable(t *testing.T) {
	s := Apply(New(""), Select("backend-cache", SourceAPI))
	if s.ActiveID != "backend-cache" {
		t.Errorf("active id = %q", s.ActiveID)
	}
}

func TestScreens(t *testing.T) {
	if ScreenMain.Next() != ScreenQR || ScreenQR.Next() != ScreenMain {
		t.Error("screens should link to each other")
	}
	if ScreenMain.Path() != "/" || ScreenQR.Path() != "/qr" {
		t.Error("unexpected screen paths")
	}
}
