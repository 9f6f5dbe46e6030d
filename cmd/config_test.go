package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trendspotter/trendspotter/config"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/where"
)

func TestParseValue(t *testing.T) {
	Convey("Given config fields of different types", t, func() {
		Convey("Booleans should be parsed", func() {
			v, err := parseValue(config.Default[key.PaletteCaseSensitive], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Integers should be parsed", func() {
			v, err := parseValue(config.Default[key.TUINotificationLifetime], []string{"5"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 5)
		})

		Convey("Malformed integers should be rejected", func() {
			_, err := parseValue(config.Default[key.TUINotificationLifetime], []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown match modes should be rejected", func() {
			_, err := parseValue(config.Default[key.PaletteMatchMode], []string{"regex"})
			So(err, ShouldNotBeNil)

			v, err := parseValue(config.Default[key.PaletteMatchMode], []string{"fuzzy"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "fuzzy")
		})

		Convey("Trend filters should be validated", func() {
			_, err := parseValue(config.Default[key.TrendsPlatform], []string{"MySpace"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.TrendsDays], []string{"5"})
			So(err, ShouldNotBeNil)

			v, err := parseValue(config.Default[key.TrendsIndustry], []string{"Fashion"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "Fashion")
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("When a key is misspelled", t, func() {
		err := errUnknownKey("palette.match_mod")

		Convey("The closest key should be suggested", func() {
			So(err.Error(), ShouldContainSubstring, key.PaletteMatchMode)
		})
	})
}

func TestEnvVars(t *testing.T) {
	Convey("The environment listing", t, func() {
		vars := envVars()

		Convey("Should include the config path override", func() {
			So(vars, ShouldContain, where.EnvConfigPath)
		})

		Convey("Should include every exposed config key once", func() {
			So(vars, ShouldContain, "TRENDSPOTTER_PALETTE_MATCH_MODE")
			So(len(vars), ShouldEqual, len(config.EnvExposed)+1)
		})
	})
}
