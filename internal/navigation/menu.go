package navigation

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/palette"
	"github.com/ziadkadry99/layermap/internal/shell"
)

// Icon names a sidebar glyph. The web view maps it to inline SVG and the
// terminal view to a unicode symbol.
type Icon string

const (
	IconGlobe  Icon = "globe"
	IconServer Icon = "server"
)

// MenuItem is one selectable sidebar entry.
type MenuItem struct {
	ID    catalog.SectionID
	Title string
	Color palette.Tag
}

// MenuGroup is a labelled block of sidebar entries.
type MenuGroup struct {
	Label string
	Icon  Icon
	Color palette.Tag
	Items []MenuItem
}

var groups = []MenuGroup{
	{
		Label: "Frontend",
		Icon:  IconGlobe,
		Color: palette.Yellow,
		Items: []MenuItem{
			{ID: catalog.FrontendModel, Title: "Model", Color: palette.Yellow},
			{ID: catalog.FrontendView, Title: "View", Color: palette.Cyan},
			{ID: catalog.FrontendController, Title: "Controller", Color: palette.Pink},
		},
	},
	{
		Label: "Backend",
		Icon:  IconServer,
		Color: palette.Blue,
		Items: []MenuItem{
			{ID: catalog.BackendController, Title: "Controller", Color: palette.Blue},
			{ID: catalog.BackendService, Title: "Service", Color: palette.Green},
			{ID: catalog.BackendModel, Title: "Model", Color: palette.Orange},
			{ID: catalog.BackendPersistence, Title: "Persistence", Color: palette.Red},
		},
	},
}

// Groups returns the sidebar descriptor in display order.
func Groups() []MenuGroup {
	out := make([]MenuGroup, len(groups))
	for i, g := range groups {
		g.Items = append([]MenuItem(nil), g.Items...)
		out[i] = g
	}
	return out
}

// Items returns every menu item in display order, across groups.
func Items() []MenuItem {
	var out []MenuItem
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// Validate checks that every menu item resolves to a catalog section.
func Validate(cat *catalog.Catalog) error {
	var errs []error
	for _, g := range groups {
		for _, item := range g.Items {
			if _, ok := cat.Get(item.ID); !ok {
				errs = append(errs, fmt.Errorf("menu group %q: item %q does not resolve to a section", g.Label, item.ID))
			}
		}
	}
	return errors.Join(errs...)
}

// ItemView is a menu item prepared for rendering.
type ItemView struct {
	MenuItem
	Style  palette.Style
	Active bool
	Intent shell.Intent
}

// GroupView is a menu group prepared for rendering.
type GroupView struct {
	Label string
	Icon  Icon
	Style palette.Style
	Items []ItemView
}

// View marks the item matching activeID as active and attaches the select
// intent each item emits.
func View(activeID catalog.SectionID) []GroupView {
	out := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		gv := GroupView{Label: g.Label, Icon: g.Icon, Style: palette.StyleFor(g.Color)}
		for _, item := range g.Items {
			gv.Items = append(gv.Items, ItemView{
				MenuItem: item,
				Style:    palette.StyleFor(item.Color),
				Active:   item.ID == activeID,
				Intent:   shell.Select(item.ID, shell.SourceNav),
			})
		}
		out = append(out, gv)
	}
	return out
}
