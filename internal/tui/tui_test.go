package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/detail"
)

func newModel(t *testing.T, initial catalog.SectionID) Model {
	t.Helper()
	return New(catalog.Default(), Options{Initial: initial, Style: "notty"})
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestInitialSelection(t *testing.T) {
	m := newModel(t, "")
	if m.State().ActiveID != catalog.FrontendModel {
		t.Errorf("ActiveID = %q, want frontend-model", m.State().ActiveID)
	}
	if m.Cursor() != catalog.FrontendModel {
		t.Errorf("Cursor = %q", m.Cursor())
	}
	if m.State().NavOpen {
		t.Error("nav should start closed")
	}
}

func TestCursorMovesWithoutSelecting(t *testing.T) {
	m := send(newModel(t, ""),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if m.Cursor() != catalog.FrontendController {
		t.Errorf("Cursor = %q, want frontend-controller", m.Cursor())
	}
	if m.State().ActiveID != catalog.FrontendModel {
		t.Error("moving the cursor must not change the selection")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != catalog.FrontendModel {
		t.Errorf("cursor should stop at the first item, got %q", m.Cursor())
	}
}

func TestEnterSelectsAndClosesNav(t *testing.T) {
	m := send(newModel(t, ""),
		tea.WindowSizeMsg{Width: 60, Height: 30},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	if !m.Narrow() || !m.State().NavOpen {
		t.Fatal("tab should open the nav panel on a narrow terminal")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().ActiveID != catalog.FrontendView {
		t.Errorf("ActiveID = %q, want frontend-view", m.State().ActiveID)
	}
	if m.State().NavOpen {
		t.Error("selecting should close the nav panel")
	}
}

func TestArrowsScrollWhenSidebarHidden(t *testing.T) {
	m := send(newModel(t, catalog.FrontendController), tea.WindowSizeMsg{Width: 60, Height: 8})
	if m.viewport.TotalLineCount() <= m.viewport.Height {
		t.Fatalf("detail pane too short to scroll: %d lines", m.viewport.TotalLineCount())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.Cursor() != catalog.FrontendController {
		t.Errorf("hidden cursor moved to %q", m.Cursor())
	}
	if m.viewport.YOffset != 2 {
		t.Errorf("YOffset = %d, want 2", m.viewport.YOffset)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.viewport.YOffset != 1 {
		t.Errorf("YOffset = %d after up, want 1", m.viewport.YOffset)
	}

	// with the panel open the arrows drive the cursor again
	m = send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() == catalog.FrontendController {
		t.Error("open panel should move the cursor")
	}
}

func TestRendererKeptAcrossNavToggle(t *testing.T) {
	m := send(newModel(t, ""), tea.WindowSizeMsg{Width: 60, Height: 30})
	r := m.renderer
	m = send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.renderer != r {
		t.Error("nav toggle should not rebuild the renderer at the same width")
	}

	m = send(m, tea.WindowSizeMsg{Width: 140, Height: 30})
	if m.renderer == r {
		t.Error("new width should rebuild the renderer")
	}
}

func TestNumberKeysSelect(t *testing.T) {
	m := send(newModel(t, ""), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	if m.State().ActiveID != catalog.BackendService {
		t.Errorf("ActiveID = %q, want backend-service", m.State().ActiveID)
	}
	if m.Cursor() != catalog.BackendService {
		t.Errorf("cursor should follow the selection, got %q", m.Cursor())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	if m.State().ActiveID != catalog.BackendService {
		t.Error("out of range number should be ignored")
	}
}

func TestEscClosesNav(t *testing.T) {
	m := send(newModel(t, ""), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().NavOpen {
		t.Error("esc should close the nav panel")
	}
}

func TestQuit(t *testing.T) {
	next, cmd := newModel(t, "").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMarkdownShowsSectionAndConnections(t *testing.T) {
	m := newModel(t, catalog.FrontendController)
	md := m.Markdown()
	s, _ := catalog.Default().Get(catalog.FrontendController)
	if !strings.Contains(md, s.Description) || !strings.Contains(md, s.CodeExample) {
		t.Error("markdown should carry the section verbatim")
	}
	if !strings.Contains(md, "Frontend Controller → Backend Controller (DTOs)") {
		t.Errorf("missing DTO connection in:\n%s", md)
	}
}

func TestUnknownSectionShowsPlaceholder(t *testing.T) {
	m := newModel(t, catalog.SectionID("nope"))
	if !strings.Contains(m.Markdown(), detail.NotFoundMessage) {
		t.Error("unknown id should render the placeholder")
	}
	if !strings.Contains(m.View(), detail.NotFoundMessage) {
		t.Error("header should name the placeholder")
	}
}

func TestViewLayout(t *testing.T) {
	wide := send(newModel(t, ""), tea.WindowSizeMsg{Width: 140, Height: 40})
	if v := wide.View(); !strings.Contains(v, "Backend") || !strings.Contains(v, "Persistence") {
		t.Error("wide terminal should always show the sidebar")
	}

	narrow := send(newModel(t, ""), tea.WindowSizeMsg{Width: 60, Height: 40})
	if strings.Contains(narrow.View(), "Persistence") {
		t.Error("narrow terminal should hide the sidebar until toggled")
	}
	narrow = send(narrow, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(narrow.View(), "Persistence") {
		t.Error("toggled sidebar should list every section")
	}
}
