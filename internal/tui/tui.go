// Package tui is the terminal LayerMap browser: a sidebar of sections and
// a scrollable detail pane, driven by the same selection state as the web
// views.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/detail"
	"github.com/ziadkadry99/layermap/internal/diagram"
	"github.com/ziadkadry99/layermap/internal/navigation"
	"github.com/ziadkadry99/layermap/internal/shell"
)

// NarrowWidth is the terminal width below which the sidebar collapses
// into a toggleable panel.
const NarrowWidth = 100

const sidebarWidth = 26

// Options configures the terminal browser.
type Options struct {
	Initial catalog.SectionID
	// Style is a glamour style name or path. Empty picks one from the
	// terminal background.
	Style string
}

// Model is the bubbletea model of the browser.
type Model struct {
	cat      *catalog.Catalog
	layout   diagram.Layout
	items    []navigation.MenuItem
	state    shell.State
	cursor   int
	style    string
	renderer *glamour.TermRenderer
	wrap     int
	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

// New returns a browser positioned on opts.Initial.
func New(cat *catalog.Catalog, opts Options) Model {
	m := Model{
		cat:      cat,
		layout:   diagram.Default(),
		items:    navigation.Items(),
		state:    shell.New(opts.Initial),
		style:    opts.Style,
		viewport: viewport.New(80, 20),
		width:    NarrowWidth,
		height:   24,
	}
	m.cursor = m.indexOf(m.state.ActiveID)
	m.resize()
	return m
}

// State returns the current selection state.
func (m Model) State() shell.State { return m.state }

// Cursor returns the id under the sidebar cursor.
func (m Model) Cursor() catalog.SectionID { return m.items[m.cursor].ID }

// Narrow reports whether the sidebar is collapsed behind the nav toggle.
func (m Model) Narrow() bool { return m.width < NarrowWidth }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.apply(shell.ToggleNav())
			return m, nil
		case "esc":
			m.apply(shell.CloseNav())
			return m, nil
		case "up", "k":
			if !m.sidebarVisible() {
				break // scrolls the detail pane
			}
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if !m.sidebarVisible() {
				break
			}
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "enter", " ":
			m.apply(shell.Select(m.Cursor(), shell.SourceKeyboard))
			return m, nil
		}
		if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			if i := int(r[0] - '1'); i < len(m.items) {
				m.cursor = i
				m.apply(shell.Select(m.items[i].ID, shell.SourceKeyboard))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) apply(in shell.Intent) {
	prev := m.state
	m.state = shell.Apply(m.state, in)
	if m.state.NavOpen != prev.NavOpen {
		m.resize()
	}
	if m.state.ActiveID != prev.ActiveID {
		m.cursor = m.indexOf(m.state.ActiveID)
		m.refresh()
		m.viewport.GotoTop()
	}
}

func (m Model) indexOf(id catalog.SectionID) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return 0
}

func (m Model) sidebarVisible() bool {
	return !m.Narrow() || m.state.NavOpen
}

// resize fits the viewport and word wrap to the terminal.
func (m *Model) resize() {
	w := m.width
	if m.sidebarVisible() && !m.Narrow() {
		w -= sidebarWidth + 1
	}
	m.viewport.Width = max(w, 20)
	m.viewport.Height = max(m.height-3, 3) // header and footer

	wrap := max(m.viewport.Width-2, 20)
	if m.renderer != nil && wrap == m.wrap {
		return
	}
	m.wrap = wrap
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if m.style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(m.style))
	}
	// Without a renderer the pane shows the raw markdown.
	m.renderer, _ = glamour.NewTermRenderer(opts...)
	m.refresh()
}

// refresh re-renders the detail pane for the active section.
func (m *Model) refresh() {
	md := m.Markdown()
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			md = out
		}
	}
	m.viewport.SetContent(md)
}

// Markdown returns the detail document of the active section, followed by
// its connections in the layer diagram.
func (m Model) Markdown() string {
	panel := detail.Build(m.cat, m.state.ActiveID)
	md := detail.Markdown(panel, "")
	if conns := m.connections(); len(conns) > 0 {
		md += "\n## Conexiones\n\n"
		for _, c := range conns {
			md += "- " + c + "\n"
		}
	}
	return md
}

func (m Model) connections() []string {
	var out []string
	for _, e := range m.layout.Edges {
		from, okFrom := m.layout.NodeAt(e.From)
		to, okTo := m.layout.NodeAt(e.To)
		if !okFrom || !okTo {
			continue
		}
		if from.ID != m.state.ActiveID && to.ID != m.state.ActiveID {
			continue
		}
		line := fmt.Sprintf("%s → %s", m.title(from.ID), m.title(to.ID))
		if e.Label != "" {
			line += fmt.Sprintf(" (%s)", e.Label)
		}
		out = append(out, line)
	}
	return out
}

func (m Model) title(id catalog.SectionID) string {
	if s, ok := m.cat.Get(id); ok {
		return s.Title
	}
	if n, ok := m.layout.Node(id); ok {
		return n.Name
	}
	return string(id)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	groupStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	sideStyle   = lipgloss.NewStyle().
			Width(sidebarWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			Padding(0, 1)
)

var groupIcons = map[navigation.Icon]string{
	navigation.IconGlobe:  "◍",
	navigation.IconServer: "▤",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := m.header()
	footer := footerStyle.Render("↑/↓ mover · enter seleccionar · tab menú · q salir")

	var body string
	switch {
	case m.Narrow() && m.state.NavOpen:
		body = sideStyle.UnsetBorderRight().Width(m.width).Render(m.sidebar())
	case m.Narrow():
		body = m.viewport.View()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, sideStyle.Render(m.sidebar()), m.viewport.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) header() string {
	panel := detail.Build(m.cat, m.state.ActiveID)
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(panel.Style.Accent)).Render("●")
	toggle := "☰"
	if m.state.NavOpen {
		toggle = "✕"
	}
	title := "LayerMap"
	if m.Narrow() {
		title = toggle + " " + title
	}
	return headerStyle.Render(fmt.Sprintf("%s  Sección actual: %s %s", title, dot, panel.Title))
}

func (m Model) sidebar() string {
	var b strings.Builder
	i := 0
	for _, g := range navigation.View(m.state.ActiveID) {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Style.Text)).Render(groupIcons[g.Icon] + " " + g.Label)
		b.WriteString(groupStyle.Render(label))
		b.WriteString("\n")
		for _, item := range g.Items {
			pointer := "  "
			if i == m.cursor {
				pointer = "> "
			}
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Style.Accent)).Render("●")
			name := item.Title
			if item.Active {
				name = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(item.Style.Text)).Render(name)
			}
			fmt.Fprintf(&b, "%s%d %s %s\n", pointer, i+1, dot, name)
			i++
		}
	}
	return b.String()
}

// Run starts the browser on the current terminal.
func Run(cat *catalog.Catalog, opts Options) error {
	p := tea.NewProgram(New(cat, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
