package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/keyboard"
	"github.com/trendspotter/trendspotter/match"
	"github.com/trendspotter/trendspotter/trend"
)

// Options configures the interface.
type Options struct {
	Catalog     *catalog.Catalog
	Matcher     match.Matcher
	Bus         *keyboard.Bus
	ChordKey    string
	OpenOnMount bool

	// Trends backs the dashboard and the trend and hashtag pages.
	// Nil generates the dataset from the trends.* settings.
	Trends *trend.Dataset
	Filter trend.Filter
}

// Run mounts the palette, runs the program and unmounts it however the program ends.
func Run(options *Options) error {
	bubble := newBubble(options)

	bubble.palette.Mount()
	defer bubble.palette.Unmount()
	bubble.keymap.setPaletteOpen(bubble.palette.IsOpen())
	if bubble.palette.IsOpen() {
		bubble.inputC.Focus()
	}

	programOptions := []tea.ProgramOption{tea.WithAltScreen()}
	if viper.GetBool(key.TUIMouse) {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}

	_, err := tea.NewProgram(bubble, programOptions...).Run()
	return err
}
