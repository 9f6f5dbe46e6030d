package log

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/filesystem"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Nothing is created in the logs directory", func() {
			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldBeEmpty)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("A date-stamped file is created", func() {
			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(len(files), ShouldEqual, 1)
		})

		Convey("Structured fields are written in json mode", func() {
			viper.Set(key.LogsJson, true)
			defer viper.Set(key.LogsJson, false)

			var buf bytes.Buffer
			configure(&buf)
			Debug("palette toggled", Fields{"open": true})

			So(buf.String(), ShouldContainSubstring, `"open":true`)
			So(buf.String(), ShouldContainSubstring, "palette toggled")
		})
	})
}
