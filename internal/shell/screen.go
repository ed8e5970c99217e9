package shell

// Screen is one of the two top-level views. Moving between them happens only
// through explicit links; no selection state travels with the move.
type Screen string

const (
	ScreenMain Screen = "main"
	ScreenQR   Screen = "qr"
)

// Path returns the route of a screen.
func (s Screen) Path() string {
	if s == ScreenQR {
		return "/qr"
	}
	return "/"
}

// Next returns the screen reached by the single outgoing link of s.
func (s Screen) Next() Screen {
	if s == ScreenMain {
		return ScreenQR
	}
	return ScreenMain
}
