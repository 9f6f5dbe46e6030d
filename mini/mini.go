// Package mini is a prompt-driven palette for terminals where the full interface is unwanted.
package mini

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/color"
	"github.com/trendspotter/trendspotter/icon"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/navigate"
	"github.com/trendspotter/trendspotter/palette"
	"github.com/trendspotter/trendspotter/style"
)

// ask is survey.AskOne; tests swap it.
var ask = survey.AskOne

// Options configures a mini session.
type Options struct {
	Catalog *catalog.Catalog
	// Once stops after the first selection.
	Once bool
	Out  io.Writer
}

type mini struct {
	out     io.Writer
	router  *navigate.Router
	palette *palette.Controller
}

func newMini(options *Options) (*mini, error) {
	m := &mini{out: options.Out}
	if m.out == nil {
		m.out = os.Stdout
	}

	cat := options.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}

	m.router = navigate.NewRouter(cat.Targets())
	if !viper.GetBool(key.TUIOpenURLs) {
		m.router.External = nil
	}

	navigator := palette.NavigatorFunc(func(target string) {
		m.router.Navigate(target)
		fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Link), style.Fg(color.Purple)(target))
	})
	notifier := palette.NotifierFunc(func(message string) {
		fmt.Fprintf(m.out, "%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), message)
	})

	ctrl, err := palette.FromConfig(cat, navigator, notifier)
	if err != nil {
		return nil, err
	}
	m.palette = ctrl
	return m, nil
}

// Run prompts for a query, lists the matches and selects one, until interrupted.
func Run(options *Options) error {
	m, err := newMini(options)
	if err != nil {
		return err
	}

	for {
		m.palette.RequestOpen()
		if err := m.step(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				m.palette.SetOpen(false)
				return nil
			}
			return err
		}

		if options.Once && !m.palette.IsOpen() {
			return nil
		}
	}
}

// step runs one query and, when something matched, one selection.
func (m *mini) step() error {
	var query string
	if err := ask(&survey.Input{Message: "Search"}, &query); err != nil {
		return err
	}

	result := m.palette.Filter(query)
	if result.Empty() {
		fmt.Fprintln(m.out, style.Faint("No results found."))
		return nil
	}

	hits := result.Hits()
	labels := lo.Map(hits, func(h catalog.Hit, _ int) string {
		return fmt.Sprintf("%s › %s", h.Category, h.Entry.Label)
	})

	var index int
	prompt := &survey.Select{
		Message:  "Open",
		Options:  labels,
		PageSize: viper.GetInt(key.MiniPageSize),
	}
	if err := ask(prompt, &index); err != nil {
		return err
	}

	m.palette.Select(hits[index].Entry)
	return nil
}
