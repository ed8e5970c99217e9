// Package shell owns the selection model shared by every LayerMap view.
//
// Views never mutate State. They emit Intents, and the owner of the state
// (an HTTP session, a live connection, a terminal program) runs them through
// Apply and re-renders from the result.
package shell

import (
	"fmt"

	"github.com/ziadkadry99/layermap/internal/catalog"
)

// DefaultSectionID is the section shown when a view is first mounted.
const DefaultSectionID = catalog.FrontendModel

// State is the selection state of one mounted main view.
type State struct {
	ActiveID catalog.SectionID `json:"active_id"`
	NavOpen  bool              `json:"nav_open"` // mobile navigation panel
}

// New returns the state of a freshly mounted view. An empty id selects
// DefaultSectionID.
func New(initial catalog.SectionID) State {
	if initial == "" {
		initial = DefaultSectionID
	}
	return State{ActiveID: initial}
}

// Kind is the type of a user intent.
type Kind string

const (
	KindSelect    Kind = "select"
	KindOpenNav   Kind = "open_nav"
	KindCloseNav  Kind = "close_nav"
	KindToggleNav Kind = "toggle_nav"
)

// Source records which component emitted an intent. It is informational
// only and never changes the outcome of Apply.
type Source string

const (
	SourceNav      Source = "nav"
	SourceDiagram  Source = "diagram"
	SourceKeyboard Source = "keyboard"
	SourceAPI      Source = "api"
)

// Intent is a request from a view to change the selection state.
type Intent struct {
	Kind   Kind              `json:"type"`
	ID     catalog.SectionID `json:"id,omitempty"`
	Source Source            `json:"source,omitempty"`
}

// Select builds a select intent.
func Select(id catalog.SectionID, src Source) Intent {
	return Intent{Kind: KindSelect, ID: id, Source: src}
}

// OpenNav, CloseNav and ToggleNav build navigation panel intents.
func OpenNav() Intent   { return Intent{Kind: KindOpenNav} }
func CloseNav() Intent  { return Intent{Kind: KindCloseNav} }
func ToggleNav() Intent { return Intent{Kind: KindToggleNav} }

// Validate reports whether the intent is well formed. Select intents must
// carry an id; whether that id exists in the catalog is left to the detail
// panel, which renders a placeholder for unknown ids.
func (i Intent) Validate() error {
	switch i.Kind {
	case KindSelect:
		if i.ID == "" {
			return fmt.Errorf("select intent requires an id")
		}
	case KindOpenNav, KindCloseNav, KindToggleNav:
	default:
		return fmt.Errorf("unknown intent %q", i.Kind)
	}
	return nil
}

// Apply returns the state that results from handling intent. Selecting an
// id always closes the navigation panel; selecting the active id again is
// allowed. Navigation panel intents leave ActiveID alone. Malformed intents
// leave the state unchanged.
func Apply(s State, intent Intent) State {
	switch intent.Kind {
	case KindSelect:
		if intent.ID == "" {
			return s
		}
		s.ActiveID = intent.ID
		s.NavOpen = false
	case KindOpenNav:
		s.NavOpen = true
	case KindCloseNav:
		s.NavOpen = false
	case KindToggleNav:
		s.NavOpen = !s.NavOpen
	}
	return s
}
