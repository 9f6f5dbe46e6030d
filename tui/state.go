// Package tui renders the TrendSpotter navigation bar and command palette in the terminal.
package tui

// focus is the navbar control the cursor rests on while the palette is closed.
type focus int

const (
	searchFocus focus = iota
	notificationsFocus
	settingsFocus
	profileFocus
)

var focusOrder = []focus{searchFocus, notificationsFocus, settingsFocus, profileFocus}

func (f focus) next(delta int) focus {
	n := len(focusOrder)
	return focusOrder[((int(f)+delta)%n+n)%n]
}
