package config

import (
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
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetString(key.PaletteMatchMode), ShouldEqual, "substring")
			So(viper.GetString(key.PaletteChordKey), ShouldEqual, "k")
		})

		Convey("Should read values from the config file", func() {
			path := where.Config() + "/trendspotter.toml"
			So(filesystem.API().WriteFile(path, []byte("[palette]\nmatch_mode = \"fuzzy\"\n"), 0o644), ShouldBeNil)
			defer func() { _ = filesystem.API().Remove(path) }()

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.PaletteMatchMode), ShouldEqual, "fuzzy")
			viper.Set(key.PaletteMatchMode, "substring")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("palette.match_mode"), ShouldEqual, "palette_match_mode")
		})

		Convey("Env names carry the application prefix", func() {
			f := Default[key.PaletteCaseSensitive]
			So(f.Env(), ShouldEqual, "TRENDSPOTTER_PALETTE_CASE_SENSITIVE")
		})
	})
}
