// Package main is the entry point for trendspotter.
package main

import (
	"github.com/samber/lo"
	"github.com/trendspotter/trendspotter/cmd"
	"github.com/trendspotter/trendspotter/config"
	"github.com/trendspotter/trendspotter/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
