package web

import (
	"net/url"
	"path"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/shell"
)

// Links decides where each interactive element points. The live server
// routes intents through handlers; the static export points straight at
// the page for the resulting state.
type Links interface {
	// Intent returns the href that applies in to the current state.
	Intent(cur shell.State, in shell.Intent) string
	// Screen returns the href of a top-level screen.
	Screen(cur shell.State, s shell.Screen) string
	// Asset returns the URL of a file under the assets root.
	Asset(name string) string
	// QRImage returns the URL of the QR code image.
	QRImage() string
}

// ServerLinks points at the live HTTP routes.
type ServerLinks struct{}

func (ServerLinks) Intent(_ shell.State, in shell.Intent) string {
	switch in.Kind {
	case shell.KindSelect:
		u := url.URL{Path: "/select/" + url.PathEscape(string(in.ID))}
		if in.Source != "" {
			u.RawQuery = url.Values{"from": {string(in.Source)}}.Encode()
		}
		return u.String()
	case shell.KindOpenNav:
		return "/nav/open"
	case shell.KindCloseNav:
		return "/nav/close"
	case shell.KindToggleNav:
		return "/nav/toggle"
	}
	return "/"
}

func (ServerLinks) Screen(_ shell.State, s shell.Screen) string { return s.Path() }

func (ServerLinks) Asset(name string) string { return path.Join("/assets", name) }

func (ServerLinks) QRImage() string { return "/qr.png" }

// StaticLinks points at the files written by the static export. Every
// reachable state has its own page, so an intent resolves to the page of
// the state it produces.
type StaticLinks struct{}

func (StaticLinks) Intent(cur shell.State, in shell.Intent) string {
	return PageName(shell.Apply(cur, in))
}

func (StaticLinks) Screen(cur shell.State, s shell.Screen) string {
	if s == shell.ScreenQR {
		return "qr.html"
	}
	return PageName(cur)
}

func (StaticLinks) Asset(name string) string { return path.Join("assets", name) }

func (StaticLinks) QRImage() string { return "qr.png" }

// PageName is the static file holding the page for st.
func PageName(st shell.State) string {
	name := string(st.ActiveID)
	if name == "" {
		name = string(shell.DefaultSectionID)
	}
	if st.NavOpen {
		name += "-nav"
	}
	return name + ".html"
}

// States enumerates every state reachable from the menu and diagram: each
// catalog id with the nav panel open and closed.
func States(cat *catalog.Catalog) []shell.State {
	var out []shell.State
	for _, s := range cat.All() {
		out = append(out,
			shell.State{ActiveID: s.ID},
			shell.State{ActiveID: s.ID, NavOpen: true},
		)
	}
	return out
}
