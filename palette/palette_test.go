package palette

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/keyboard"
	"github.com/trendspotter/trendspotter/match"
)

type recorder struct {
	events []string
	ctrl   *Controller
}

func (r *recorder) Navigate(target string) {
	r.events = append(r.events, "navigate:"+target+":"+r.ctrl.State().String())
}

func (r *recorder) Notify(message string) {
	r.events = append(r.events, "notify:"+message+":"+r.ctrl.State().String())
}

func newController(bus *keyboard.Bus) (*Controller, *recorder) {
	b := catalog.Builtin()
	trends, _ := b.Category(catalog.Trends)
	hashtags, _ := b.Category(catalog.Hashtags)

	rec := &recorder{}
	c := New(Options{
		Catalog:   catalog.MustNew([]catalog.Category{trends, hashtags}),
		Matcher:   match.MustNew(match.Substring, false),
		Navigator: rec,
		Notifier:  rec,
		Bus:       bus,
	})
	rec.ctrl = c
	return c, rec
}

func chord() *keyboard.Event {
	return &keyboard.Event{Key: "k", Ctrl: true}
}

func TestStateMachine(t *testing.T) {
	Convey("Given a new controller", t, func() {
		c, _ := newController(keyboard.NewBus())

		Convey("It starts closed", func() {
			So(c.IsOpen(), ShouldBeFalse)
			So(c.State(), ShouldEqual, Closed)
		})

		Convey("Toggle flips the state each time", func() {
			c.Toggle()
			So(c.IsOpen(), ShouldBeTrue)
			c.Toggle()
			So(c.IsOpen(), ShouldBeFalse)
		})

		Convey("RequestOpen always ends open", func() {
			c.RequestOpen()
			So(c.IsOpen(), ShouldBeTrue)
			c.RequestOpen()
			So(c.IsOpen(), ShouldBeTrue)
		})

		Convey("SetOpen follows the overlay", func() {
			c.SetOpen(true)
			So(c.IsOpen(), ShouldBeTrue)
			c.SetOpen(false)
			So(c.IsOpen(), ShouldBeFalse)
		})
	})
}

func TestSelect(t *testing.T) {
	Convey("Given an open controller", t, func() {
		c, rec := newController(keyboard.NewBus())
		c.RequestOpen()
		entry := catalog.Entry{Label: "#AIRevolution", Target: "/hashtags/airevolution"}

		Convey("Select closes, then notifies, then navigates", func() {
			c.Select(entry)

			So(c.IsOpen(), ShouldBeFalse)
			So(rec.events, ShouldResemble, []string{
				"notify:#AIRevolution:closed",
				"navigate:/hashtags/airevolution:closed",
			})
		})
	})

	Convey("Select leaves the palette closed whatever the prior state", t, func() {
		for _, open := range []bool{true, false} {
			c, _ := newController(keyboard.NewBus())
			c.SetOpen(open)
			c.Select(catalog.Entry{Label: "x", Target: "/x"})
			So(c.IsOpen(), ShouldBeFalse)
		}
	})

	Convey("Select does not validate the target", t, func() {
		c, rec := newController(keyboard.NewBus())
		c.Select(catalog.Entry{Label: "broken", Target: "::not a url::"})
		So(rec.events[1], ShouldEqual, "navigate:::not a url:::closed")
	})
}

func TestChord(t *testing.T) {
	Convey("Given a mounted controller", t, func() {
		bus := keyboard.NewBus()
		c, _ := newController(bus)
		c.Mount()
		Reset(c.Unmount)

		Convey("Ctrl+K while closed opens and prevents the default", func() {
			e := chord()
			bus.Dispatch(e)
			So(c.IsOpen(), ShouldBeTrue)
			So(e.DefaultPrevented(), ShouldBeTrue)
		})

		Convey("Meta+K toggles as well", func() {
			bus.Dispatch(&keyboard.Event{Key: "k", Meta: true})
			So(c.IsOpen(), ShouldBeTrue)
		})

		Convey("Repeated chords alternate strictly", func() {
			for i := 1; i <= 6; i++ {
				bus.Dispatch(chord())
				So(c.IsOpen(), ShouldEqual, i%2 == 1)
			}
		})

		Convey("Other keys are left alone", func() {
			for _, e := range []*keyboard.Event{{Key: "k"}, {Key: "j", Ctrl: true}, {Key: "k", Shift: true}} {
				bus.Dispatch(e)
				So(e.DefaultPrevented(), ShouldBeFalse)
			}
			So(c.IsOpen(), ShouldBeFalse)
		})

		Convey("Mounting twice keeps a single listener", func() {
			c.Mount()
			So(bus.Len(), ShouldEqual, 1)
			bus.Dispatch(chord())
			So(c.IsOpen(), ShouldBeTrue)
		})

		Convey("After unmount the chord changes nothing", func() {
			c.Unmount()
			So(c.Mounted(), ShouldBeFalse)
			So(bus.Len(), ShouldEqual, 0)

			e := chord()
			bus.Dispatch(e)
			So(c.IsOpen(), ShouldBeFalse)
			So(e.DefaultPrevented(), ShouldBeFalse)

			Convey("And remounting restores exactly one listener", func() {
				c.Mount()
				So(bus.Len(), ShouldEqual, 1)
				bus.Dispatch(chord())
				So(c.IsOpen(), ShouldBeTrue)
			})
		})
	})

	Convey("Given a custom chord key", t, func() {
		bus := keyboard.NewBus()
		c := New(Options{Bus: bus, ChordKey: "p"})
		c.Mount()
		defer c.Unmount()

		bus.Dispatch(chord())
		So(c.IsOpen(), ShouldBeFalse)
		bus.Dispatch(&keyboard.Event{Key: "p", Ctrl: true})
		So(c.IsOpen(), ShouldBeTrue)
	})

	Convey("Given open on mount", t, func() {
		c := New(Options{Bus: keyboard.NewBus(), OpenOnMount: true})
		So(c.IsOpen(), ShouldBeFalse)
		c.Mount()
		defer c.Unmount()
		So(c.IsOpen(), ShouldBeTrue)
	})
}

func TestFilter(t *testing.T) {
	Convey("Given the Trends and Hashtags catalog", t, func() {
		c, _ := newController(keyboard.NewBus())

		Convey("Query ai yields one entry per category", func() {
			r := c.Filter("ai")
			So(r.Len(), ShouldEqual, 2)
			So(r.Groups[0].Items, ShouldResemble, []catalog.Entry{{Label: "AI Content Creation", Target: "/trends/ai-content-creation"}})
			So(r.Groups[1].Items, ShouldResemble, []catalog.Entry{{Label: "#AIRevolution", Target: "/hashtags/airevolution"}})
		})

		Convey("Query AI matches the same entries", func() {
			So(c.Filter("AI"), ShouldResemble, catalog.Result{Query: "AI", Groups: c.Filter("ai").Groups})
		})

		Convey("No match shows the empty state", func() {
			So(c.Filter("zzz-no-match").Empty(), ShouldBeTrue)
		})

		Convey("Surrounding whitespace is ignored", func() {
			So(c.Filter("  ai ").Len(), ShouldEqual, 2)
		})
	})
}

func TestSurface(t *testing.T) {
	Convey("Given the overlay surface", t, func() {
		c, rec := newController(keyboard.NewBus())
		c.RequestOpen()
		s := c.Surface("ai")

		So(s.IsOpen, ShouldBeTrue)
		So(s.Results.Len(), ShouldEqual, 2)

		Convey("OnOpenChange closes the controller", func() {
			s.OnOpenChange(false)
			So(c.IsOpen(), ShouldBeFalse)
		})

		Convey("OnSelect runs the selection", func() {
			s.OnSelect(s.Results.Hits()[0].Entry)
			So(c.IsOpen(), ShouldBeFalse)
			So(rec.events, ShouldHaveLength, 2)
		})
	})
}

func TestFromConfig(t *testing.T) {
	Convey("Given fuzzy matching in the config", t, func() {
		viper.Set(key.PaletteMatchMode, match.Fuzzy)
		viper.Set(key.PaletteChordKey, "p")
		defer viper.Set(key.PaletteMatchMode, match.Substring)
		defer viper.Set(key.PaletteChordKey, DefaultChordKey)

		c, err := FromConfig(catalog.Builtin(), nil, nil)
		So(err, ShouldBeNil)
		So(c.ChordKey(), ShouldEqual, "p")
		So(c.Filter("acc").Len(), ShouldBeGreaterThanOrEqualTo, 1)
	})

	Convey("Given an unknown match mode", t, func() {
		viper.Set(key.PaletteMatchMode, "regex")
		defer viper.Set(key.PaletteMatchMode, match.Substring)

		_, err := FromConfig(catalog.Builtin(), nil, nil)
		So(err, ShouldNotBeNil)
	})
}
