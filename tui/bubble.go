package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/internal/toast"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/keyboard"
	"github.com/trendspotter/trendspotter/navigate"
	"github.com/trendspotter/trendspotter/palette"
	"github.com/trendspotter/trendspotter/trend"
	"github.com/trendspotter/trendspotter/util"
)

// zone is a clickable horizontal span on a rendered line.
type zone struct {
	y, x0, x1 int
	focus     focus
}

func (z zone) contains(x, y int) bool {
	return y == z.y && x >= z.x0 && x < z.x1
}

// statefulBubble is the bubbletea model: navbar, page body and palette overlay.
type statefulBubble struct {
	keymap *statefulKeymap
	bus    *keyboard.Bus

	palette *palette.Controller
	router  *navigate.Router
	toast   *toast.Model

	trends *trend.Dataset
	filter trend.Filter

	inputC textinput.Model
	helpC  help.Model

	focus  focus
	cursor int

	// pending collects commands produced by collaborators during Update.
	pending []tea.Cmd

	// layout of the last render, used for mouse hits
	zones                     []zone
	overlayTop, overlayBottom int

	width, height int
}

func newBubble(options *Options) *statefulBubble {
	cat := options.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}
	bus := options.Bus
	if bus == nil {
		bus = keyboard.Global()
	}

	trends := options.Trends
	if trends == nil {
		trends = trend.FromConfig()
	}

	b := &statefulBubble{
		bus:    bus,
		router: navigate.NewRouter(cat.Targets()),
		toast:  toast.New(time.Duration(viper.GetInt(key.TUINotificationLifetime)) * time.Second),
		trends: trends,
		filter: options.Filter,
	}

	if !viper.GetBool(key.TUIOpenURLs) {
		b.router.External = nil
	}
	b.router.OnExternalError = func(err error) {
		b.pending = append(b.pending, b.toast.Show(err.Error()))
	}

	notifier := palette.NotifierFunc(func(message string) {
		b.pending = append(b.pending, b.toast.Show(message))
	})

	b.palette = palette.New(palette.Options{
		Catalog:     cat,
		Matcher:     options.Matcher,
		Navigator:   b.router,
		Notifier:    notifier,
		Bus:         bus,
		ChordKey:    options.ChordKey,
		OpenOnMount: options.OpenOnMount,
	})

	b.keymap = newStatefulKeymap(b.palette.ChordKey())
	b.helpC = help.New()

	b.inputC = textinput.New()
	b.inputC.Placeholder = "Search trends, hashtags, pages..."
	b.inputC.Prompt = viper.GetString(key.TUISearchPromptString)
	b.inputC.CharLimit = 80

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	return b
}

// flush hands over the commands queued by collaborators.
func (b *statefulBubble) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, b.pending...)
	b.pending = nil
	return tea.Batch(cmds...)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
	b.inputC.Width = util.Max(b.width-8, 10)
}

// surface is the overlay's view of the controller for the current query.
func (b *statefulBubble) surface() palette.Surface {
	return b.palette.Surface(b.inputC.Value())
}

// afterTransition resets the overlay when the controller opened or closed it.
func (b *statefulBubble) afterTransition(wasOpen bool) tea.Cmd {
	isOpen := b.palette.IsOpen()
	b.keymap.setPaletteOpen(isOpen)

	switch {
	case isOpen && !wasOpen:
		b.inputC.SetValue("")
		b.cursor = 0
		return b.inputC.Focus()
	case !isOpen && wasOpen:
		b.inputC.Blur()
	}
	return nil
}
