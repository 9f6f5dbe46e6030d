package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/match"
)

func TestSearch(t *testing.T) {
	Convey("Given the builtin catalog and substring matching", t, func() {
		viper.Set(key.PaletteMatchMode, match.Substring)
		Reset(func() { viper.Set(key.PaletteMatchMode, "") })

		Convey("Surrounding whitespace is ignored like in the palette", func() {
			padded, err := search(catalog.Builtin(), " ai ")
			So(err, ShouldBeNil)
			So(padded.Len(), ShouldEqual, 2)
			So(padded.Query, ShouldEqual, "ai")

			plain, err := search(catalog.Builtin(), "ai")
			So(err, ShouldBeNil)
			So(padded.Hits(), ShouldResemble, plain.Hits())
		})

		Convey("A blank query keeps everything", func() {
			r, err := search(catalog.Builtin(), "   ")
			So(err, ShouldBeNil)
			So(r.Len(), ShouldEqual, catalog.Builtin().Len())
		})

		Convey("An unknown match mode is reported", func() {
			viper.Set(key.PaletteMatchMode, "regex")
			_, err := search(catalog.Builtin(), "ai")
			So(err, ShouldNotBeNil)
		})
	})
}
