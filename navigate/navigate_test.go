package navigate

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRouter(t *testing.T) {
	Convey("Given a router over a few routes", t, func() {
		r := NewRouter([]string{Home, "/settings", "/profile", "/trends/creator-economy"})
		var opened []string
		r.External = func(url string) error {
			opened = append(opened, url)
			return nil
		}

		So(r.Current(), ShouldEqual, Home)
		So(r.Known(), ShouldBeTrue)

		Convey("Navigating to a route changes the page and records history", func() {
			r.Navigate("/settings")
			So(r.Current(), ShouldEqual, "/settings")
			So(r.Depth(), ShouldEqual, 1)

			Convey("Back returns to the previous page", func() {
				So(r.Back(), ShouldBeTrue)
				So(r.Current(), ShouldEqual, Home)
				So(r.Back(), ShouldBeFalse)
			})

			Convey("Navigating to the same page does not grow history", func() {
				r.Navigate("/settings")
				So(r.Depth(), ShouldEqual, 1)
			})
		})

		Convey("Absolute URLs are opened externally", func() {
			r.Navigate("https://example.com/report")
			So(opened, ShouldResemble, []string{"https://example.com/report"})
			So(r.Current(), ShouldEqual, Home)
			So(r.Depth(), ShouldEqual, 0)
		})

		Convey("External failures are reported", func() {
			boom := errors.New("no browser")
			var reported error
			r.External = func(string) error { return boom }
			r.OnExternalError = func(err error) { reported = err }

			r.Navigate("https://example.com")
			So(reported, ShouldEqual, boom)
		})

		Convey("Targets are not validated", func() {
			r.Navigate("not a route")
			So(r.Current(), ShouldEqual, "not a route")
			So(r.Known(), ShouldBeFalse)
		})

		Convey("Unknown routes get a close suggestion", func() {
			r.Navigate("/setings")
			s, ok := r.Suggest().Get()
			So(ok, ShouldBeTrue)
			So(s, ShouldEqual, "/settings")
		})

		Convey("Far away routes get none", func() {
			r.Navigate("/completely/unrelated/location")
			So(r.Suggest().IsPresent(), ShouldBeFalse)
		})

		Convey("Known routes get none", func() {
			r.Navigate("/profile")
			So(r.Suggest().IsPresent(), ShouldBeFalse)
		})
	})
}
