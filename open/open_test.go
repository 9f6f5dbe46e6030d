package open

import (
	"errors"
	"os/exec"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsURL(t *testing.T) {
	Convey("IsURL", t, func() {
		So(IsURL("https://example.com/a"), ShouldBeTrue)
		So(IsURL("http://example.com"), ShouldBeTrue)
		So(IsURL("/trends/ai"), ShouldBeFalse)
		So(IsURL("mailto:someone@example.com"), ShouldBeFalse)
		So(IsURL("https://"), ShouldBeFalse)
	})
}

func TestStart(t *testing.T) {
	Convey("Given a stubbed launcher", t, func() {
		original := Launcher
		Reset(func() { Launcher = original })

		var launched []string
		Launcher = func(cmd *exec.Cmd) error {
			launched = cmd.Args
			return nil
		}

		_, supported := command("x")
		So(supported, ShouldBeTrue)

		Convey("The URL is passed to the system handler", func() {
			So(Start("https://example.com"), ShouldBeNil)
			So(launched[len(launched)-1], ShouldEqual, "https://example.com")
		})

		Convey("Launcher failures are wrapped", func() {
			boom := errors.New("boom")
			Launcher = func(*exec.Cmd) error { return boom }
			err := Start("https://example.com")
			So(errors.Is(err, boom), ShouldBeTrue)
		})
	})
}
