package toast

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a toast model", t, func() {
		m := New(time.Millisecond)

		Convey("It shows nothing initially", func() {
			So(m.Message(), ShouldBeEmpty)
			So(m.View("body"), ShouldEqual, "body")
		})

		Convey("Show displays the message and schedules its expiry", func() {
			cmd := m.Show("#AIRevolution")
			So(m.Message(), ShouldEqual, "#AIRevolution")
			So(m.View("line one\nline two"), ShouldContainSubstring, "#AIRevolution")
			So(cmd, ShouldNotBeNil)

			Convey("The expiry clears it", func() {
				m.Update(cmd())
				So(m.Message(), ShouldBeEmpty)
			})

			Convey("A stale expiry does not clear a newer message", func() {
				stale := cmd()
				m.Show("Creator Economy")
				m.Update(stale)
				So(m.Message(), ShouldEqual, "Creator Economy")
			})
		})

		Convey("ShowMsg from Notify is handled", func() {
			cmd := m.Update(Notify("Settings")())
			So(cmd, ShouldNotBeNil)
			So(m.Message(), ShouldEqual, "Settings")
		})
	})

	Convey("A non-positive lifetime falls back to the default", t, func() {
		So(New(0).Lifetime(), ShouldEqual, DefaultLifetime)
	})
}
