package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("ReadOnly rejects writes but sees existing files", func() {
			SetMemMapFs()
			So(API().WriteFile("/catalog.toml", []byte("x"), 0o644), ShouldBeNil)

			ro := ReadOnly()
			data, err := ro.ReadFile("/catalog.toml")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "x")
			So(ro.WriteFile("/other.toml", []byte("y"), 0o644), ShouldNotBeNil)
		})
	})
}
