// Package keyboard is the process-wide key listener.
//
// Components subscribe when they mount and release the subscription when
// they unmount; a released listener is never called again.
package keyboard

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Event is a single key press.
type Event struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool

	prevented bool
}

// PreventDefault stops the host from applying its own handling of the key.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener claimed the event.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// Chord reports whether the event is key pressed together with ctrl or meta.
func (e *Event) Chord(key string) bool {
	return strings.EqualFold(e.Key, key) && (e.Ctrl || e.Meta)
}

// Listener handles dispatched events.
type Listener func(*Event)

// Bus fans key events out to its listeners in subscription order.
type Bus struct {
	mu        sync.Mutex
	next      uint64
	listeners map[uint64]Listener
	order     []uint64
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[uint64]Listener)}
}

var global = NewBus()

// Global returns the bus shared by the whole process.
func Global() *Bus {
	return global
}

// Subscribe registers l until the returned subscription is released.
func (b *Bus) Subscribe(l Listener) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.listeners[id] = l
	b.order = append(b.order, id)

	return &Subscription{bus: b, id: id}
}

// Dispatch delivers e to every active listener.
func (b *Bus) Dispatch(e *Event) {
	b.mu.Lock()
	active := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		active = append(active, b.listeners[id])
	}
	b.mu.Unlock()

	for _, l := range active {
		l(e)
	}
}

// Len is the number of active listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.listeners[id]; !ok {
		return
	}
	delete(b.listeners, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Subscription is a live registration on a Bus.
type Subscription struct {
	bus  *Bus
	id   uint64
	once sync.Once
}

// Release removes the listener. Calling it again does nothing.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}

// FromTea converts a bubbletea key message. Terminals deliver the Command
// and Meta keys as Alt, so Alt is reported as Meta.
func FromTea(msg tea.KeyMsg) *Event {
	e := &Event{}
	name := msg.String()

	if rest, ok := strings.CutPrefix(name, "alt+"); ok && rest != "" {
		e.Meta = true
		name = rest
	}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok && rest != "" {
		e.Ctrl = true
		name = rest
	}
	if msg.Type == tea.KeyRunes {
		lower := strings.ToLower(name)
		e.Shift = lower != name
		name = lower
	}

	e.Key = name
	return e
}
