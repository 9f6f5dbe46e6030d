package match

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given the substring mode", t, func() {
		m := MustNew(Substring, false)

		Convey("It ignores case", func() {
			So(m.Match("ai", "AI Content Creation"), ShouldBeTrue)
			So(m.Match("AI", "#AIRevolution"), ShouldBeTrue)
			So(m.Match("ai", "Sustainable Brands"), ShouldBeTrue) // sust-ai-nable
		})

		Convey("It rejects labels without the query", func() {
			So(m.Match("ai", "#TechTrends"), ShouldBeFalse)
			So(m.Match("zzz-no-match", "Creator Economy"), ShouldBeFalse)
		})

		Convey("An empty query matches everything", func() {
			So(m.Match("", "anything"), ShouldBeTrue)
		})
	})

	Convey("Given case sensitivity is on", t, func() {
		m := MustNew(Substring, true)
		So(m.Match("AI", "AI Content Creation"), ShouldBeTrue)
		So(m.Match("ai", "AI Content Creation"), ShouldBeFalse)
	})

	Convey("Given the prefix mode", t, func() {
		m := MustNew(Prefix, false)
		So(m.Match("#ai", "#AIRevolution"), ShouldBeTrue)
		So(m.Match("content", "AI Content Creation"), ShouldBeFalse)
	})

	Convey("Given the word mode", t, func() {
		m := MustNew(Word, false)
		So(m.Match("content", "AI Content Creation"), ShouldBeTrue)
		So(m.Match("ai", "#AIRevolution"), ShouldBeTrue)
		So(m.Match("ontent", "AI Content Creation"), ShouldBeFalse)
	})

	Convey("Given the fuzzy mode", t, func() {
		m := MustNew(Fuzzy, false)
		So(m.Match("acc", "AI Content Creation"), ShouldBeTrue)
		So(m.Match("tt", "#TechTrends"), ShouldBeTrue)
		So(m.Match("xyz", "#TechTrends"), ShouldBeFalse)

		Convey("And case sensitivity is on", func() {
			m := MustNew(Fuzzy, true)
			So(m.Match("ACC", "AI Content Creation"), ShouldBeTrue)
			So(m.Match("acc", "AI Content Creation"), ShouldBeFalse)
		})
	})

	Convey("Given an unknown mode", t, func() {
		_, err := New("regex", false)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "regex")
		So(func() { MustNew("regex", false) }, ShouldPanic)
	})

	Convey("Modes lists every accepted value", t, func() {
		for _, mode := range Modes() {
			_, err := New(mode, false)
			So(err, ShouldBeNil)
		}
	})
}
