// Package palette implements the command palette controller.
//
// The controller owns the open/closed state of the search overlay, listens
// for the ctrl/meta+K chord on the keyboard bus while mounted, filters the
// catalog for the overlay, and turns a selection into a notification and a
// navigation.
package palette

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/keyboard"
	"github.com/trendspotter/trendspotter/log"
	"github.com/trendspotter/trendspotter/match"
)

// Navigator performs navigation to a target. The controller does not validate targets.
type Navigator interface {
	Navigate(target string)
}

// Notifier shows a transient message. Fire and forget.
type Notifier interface {
	Notify(message string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// State is the overlay visibility.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// DefaultChordKey is pressed together with ctrl or meta to toggle the palette.
const DefaultChordKey = "k"

// Options wires a Controller to its collaborators.
type Options struct {
	Catalog   *catalog.Catalog
	Matcher   match.Matcher
	Navigator Navigator
	Notifier  Notifier

	// Bus defaults to keyboard.Global().
	Bus *keyboard.Bus
	// ChordKey defaults to DefaultChordKey.
	ChordKey string
	// OpenOnMount opens the palette when Mount is called.
	OpenOnMount bool
}

// Controller is the command palette state machine. It is not safe for
// concurrent use; every method is expected to run on the UI event loop.
type Controller struct {
	catalog     *catalog.Catalog
	matcher     match.Matcher
	navigator   Navigator
	notifier    Notifier
	bus         *keyboard.Bus
	chordKey    string
	openOnMount bool

	state State
	sub   *keyboard.Subscription
}

// New builds a closed, unmounted controller.
func New(opts Options) *Controller {
	c := &Controller{
		catalog:     opts.Catalog,
		matcher:     opts.Matcher,
		navigator:   opts.Navigator,
		notifier:    opts.Notifier,
		bus:         opts.Bus,
		chordKey:    opts.ChordKey,
		openOnMount: opts.OpenOnMount,
		state:       Closed,
	}

	if c.catalog == nil {
		c.catalog = catalog.Builtin()
	}
	if c.matcher == nil {
		c.matcher = match.MustNew(match.Substring, false)
	}
	if c.navigator == nil {
		c.navigator = NavigatorFunc(func(string) {})
	}
	if c.notifier == nil {
		c.notifier = NotifierFunc(func(string) {})
	}
	if c.bus == nil {
		c.bus = keyboard.Global()
	}
	if c.chordKey == "" {
		c.chordKey = DefaultChordKey
	}

	return c
}

// FromConfig builds a controller whose matching and chord follow the palette.* settings.
func FromConfig(cat *catalog.Catalog, navigator Navigator, notifier Notifier) (*Controller, error) {
	m, err := match.New(viper.GetString(key.PaletteMatchMode), viper.GetBool(key.PaletteCaseSensitive))
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	return New(Options{
		Catalog:     cat,
		Matcher:     m,
		Navigator:   navigator,
		Notifier:    notifier,
		ChordKey:    viper.GetString(key.PaletteChordKey),
		OpenOnMount: viper.GetBool(key.PaletteOpenOnMount),
	}), nil
}

// Catalog is the catalog the controller filters.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// ChordKey is the key that toggles the palette with ctrl or meta.
func (c *Controller) ChordKey() string {
	return c.chordKey
}

// State returns the current visibility.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the overlay is visible.
func (c *Controller) IsOpen() bool {
	return c.state == Open
}

func (c *Controller) set(s State, reason string) {
	if c.state != s {
		log.Debug("palette state changed", log.Fields{"from": c.state.String(), "to": s.String(), "reason": reason})
	}
	c.state = s
}

// Toggle inverts the visibility exactly once.
func (c *Controller) Toggle() {
	if c.IsOpen() {
		c.set(Closed, "toggle")
	} else {
		c.set(Open, "toggle")
	}
}

// RequestOpen opens the palette regardless of its current state.
func (c *Controller) RequestOpen() {
	c.set(Open, "request")
}

// SetOpen is the overlay's open-change callback (escape, click outside).
func (c *Controller) SetOpen(open bool) {
	if open {
		c.set(Open, "overlay")
	} else {
		c.set(Closed, "overlay")
	}
}

// Select closes the palette, announces the entry, then navigates to it, in that order.
func (c *Controller) Select(entry catalog.Entry) {
	c.set(Closed, "select")
	c.notifier.Notify(entry.Label)
	log.Debug("palette navigate", log.Fields{"label": entry.Label, "target": entry.Target})
	c.navigator.Navigate(entry.Target)
}

// Filter returns the catalog entries matching query, grouped by category.
// Surrounding whitespace in the query is ignored.
func (c *Controller) Filter(query string) catalog.Result {
	return c.catalog.Filter(c.matcher, strings.TrimSpace(query))
}

// Mount subscribes the chord listener. Mounting twice keeps a single subscription.
func (c *Controller) Mount() {
	if c.sub != nil {
		return
	}
	c.sub = c.bus.Subscribe(c.handleKey)

	if c.openOnMount {
		c.set(Open, "mount")
	}
}

// Unmount releases the chord listener; afterwards the chord has no effect.
func (c *Controller) Unmount() {
	c.sub.Release()
	c.sub = nil
}

// Mounted reports whether the chord listener is active.
func (c *Controller) Mounted() bool {
	return c.sub != nil
}

func (c *Controller) handleKey(e *keyboard.Event) {
	if !e.Chord(c.chordKey) {
		return
	}
	e.PreventDefault()
	c.Toggle()
}
