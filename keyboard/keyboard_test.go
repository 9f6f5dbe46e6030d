package keyboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBus(t *testing.T) {
	Convey("Given a bus with two listeners", t, func() {
		bus := NewBus()
		var calls []string

		first := bus.Subscribe(func(e *Event) { calls = append(calls, "first:"+e.Key) })
		second := bus.Subscribe(func(e *Event) { calls = append(calls, "second:"+e.Key) })
		So(bus.Len(), ShouldEqual, 2)

		Convey("Dispatch reaches both in subscription order", func() {
			bus.Dispatch(&Event{Key: "k"})
			So(calls, ShouldResemble, []string{"first:k", "second:k"})
		})

		Convey("A released listener is never called again", func() {
			first.Release()
			bus.Dispatch(&Event{Key: "x"})
			So(calls, ShouldResemble, []string{"second:x"})
			So(bus.Len(), ShouldEqual, 1)

			Convey("And releasing twice is harmless", func() {
				first.Release()
				So(bus.Len(), ShouldEqual, 1)
			})
		})

		Convey("Releasing everything leaves no listener behind", func() {
			first.Release()
			second.Release()
			So(bus.Len(), ShouldEqual, 0)
			bus.Dispatch(&Event{Key: "k", Ctrl: true})
			So(calls, ShouldBeEmpty)
		})
	})

	Convey("A nil subscription can be released", t, func() {
		var s *Subscription
		So(func() { s.Release() }, ShouldNotPanic)
	})
}

func TestEvent(t *testing.T) {
	Convey("Chord requires ctrl or meta", t, func() {
		So((&Event{Key: "k", Ctrl: true}).Chord("k"), ShouldBeTrue)
		So((&Event{Key: "k", Meta: true}).Chord("k"), ShouldBeTrue)
		So((&Event{Key: "k"}).Chord("k"), ShouldBeFalse)
		So((&Event{Key: "j", Ctrl: true}).Chord("k"), ShouldBeFalse)
	})

	Convey("PreventDefault is sticky", t, func() {
		e := &Event{Key: "k"}
		So(e.DefaultPrevented(), ShouldBeFalse)
		e.PreventDefault()
		So(e.DefaultPrevented(), ShouldBeTrue)
	})
}

func TestFromTea(t *testing.T) {
	Convey("Converting bubbletea keys", t, func() {
		Convey("ctrl+k", func() {
			e := FromTea(tea.KeyMsg{Type: tea.KeyCtrlK})
			So(e.Key, ShouldEqual, "k")
			So(e.Ctrl, ShouldBeTrue)
			So(e.Meta, ShouldBeFalse)
		})

		Convey("alt+k is reported as meta", func() {
			e := FromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}, Alt: true})
			So(e.Key, ShouldEqual, "k")
			So(e.Meta, ShouldBeTrue)
			So(e.Chord("k"), ShouldBeTrue)
		})

		Convey("plain letters carry shift", func() {
			e := FromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'K'}})
			So(e.Key, ShouldEqual, "k")
			So(e.Shift, ShouldBeTrue)
			So(e.Chord("k"), ShouldBeFalse)
		})

		Convey("named keys keep their names", func() {
			So(FromTea(tea.KeyMsg{Type: tea.KeyEnter}).Key, ShouldEqual, "enter")
			So(FromTea(tea.KeyMsg{Type: tea.KeyTab}).Key, ShouldEqual, "tab")
			So(FromTea(tea.KeyMsg{Type: tea.KeyEsc}).Key, ShouldEqual, "esc")
		})
	})
}
