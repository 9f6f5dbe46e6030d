package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap holds the bindings and picks the help entries for the current mode.
type statefulKeymap struct {
	paletteOpen bool

	quit, forceQuit,
	toggle, openSearch,
	confirm, dismiss, back,
	up, down,
	nextButton, prevButton,
	showHelp key.Binding
}

func (k *statefulKeymap) setPaletteOpen(open bool) {
	k.paletteOpen = open
}

func newStatefulKeymap(chordKey string) *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		// Only for help: the chord itself is handled by the palette through the keyboard bus.
		toggle: key.NewBinding(
			key.WithKeys("ctrl+"+chordKey, "alt+"+chordKey),
			key.WithHelp(fmt.Sprintf("ctrl+%s", chordKey), "search"),
		),
		openSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		nextButton: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next"),
		),
		prevButton: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	if k.paletteOpen {
		short := []key.Binding{k.up, k.down, k.confirm, k.dismiss}
		return short, append(short, k.toggle, k.forceQuit)
	}

	short := []key.Binding{k.toggle, k.nextButton, k.confirm, k.back, k.showHelp}
	return short, []key.Binding{k.toggle, k.openSearch, k.nextButton, k.prevButton, k.confirm, k.back, k.quit, k.showHelp}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
