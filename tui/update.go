package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/keyboard"
	"github.com/trendspotter/trendspotter/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	toastCmd := b.toast.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, toastCmd
	case tea.MouseMsg:
		wasOpen := b.palette.IsOpen()
		b.handleMouse(msg)
		return b, b.flush(toastCmd, b.afterTransition(wasOpen))
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		wasOpen := b.palette.IsOpen()

		event := keyboard.FromTea(msg)
		b.bus.Dispatch(event)
		if event.DefaultPrevented() {
			return b, b.flush(toastCmd, b.afterTransition(wasOpen))
		}

		var cmd tea.Cmd
		if wasOpen {
			cmd = b.updatePalette(msg)
		} else {
			cmd = b.updatePage(msg)
		}
		return b, b.flush(toastCmd, cmd, b.afterTransition(wasOpen))
	}

	if b.palette.IsOpen() {
		var cmd tea.Cmd
		b.inputC, cmd = b.inputC.Update(msg)
		return b, tea.Batch(toastCmd, cmd)
	}

	return b, toastCmd
}

func (b *statefulBubble) updatePalette(msg tea.KeyMsg) tea.Cmd {
	surface := b.surface()
	hits := surface.Results.Hits()

	switch {
	case key.Matches(msg, b.keymap.dismiss):
		surface.OnOpenChange(false)
		return nil
	case key.Matches(msg, b.keymap.up):
		b.moveCursor(-1, len(hits))
		return nil
	case key.Matches(msg, b.keymap.down):
		b.moveCursor(1, len(hits))
		return nil
	case key.Matches(msg, b.keymap.confirm):
		if len(hits) > 0 {
			surface.OnSelect(hits[util.Clamp(b.cursor, 0, len(hits)-1)].Entry)
		}
		return nil
	}

	before := b.inputC.Value()
	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	if b.inputC.Value() != before {
		b.cursor = 0
	}
	b.clampCursor()
	return cmd
}

// clampCursor keeps the cursor on a result of the current query.
func (b *statefulBubble) clampCursor() {
	b.cursor = util.Clamp(b.cursor, 0, util.Max(b.surface().Results.Len()-1, 0))
}

// moveCursor wraps around the flattened result list.
func (b *statefulBubble) moveCursor(delta, n int) {
	if n == 0 {
		b.cursor = 0
		return
	}
	b.cursor = ((b.cursor+delta)%n + n) % n
}

func (b *statefulBubble) updatePage(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.openSearch):
		b.palette.RequestOpen()
	case key.Matches(msg, b.keymap.nextButton):
		b.focus = b.focus.next(1)
	case key.Matches(msg, b.keymap.prevButton):
		b.focus = b.focus.next(-1)
	case key.Matches(msg, b.keymap.confirm):
		b.activate(b.focus)
	case key.Matches(msg, b.keymap.back):
		b.router.Back()
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	case key.Matches(msg, b.keymap.quit):
		return tea.Quit
	}
	return nil
}

// activate presses a navbar control: the search trigger opens the palette,
// icon buttons navigate to their page.
func (b *statefulBubble) activate(f focus) {
	b.focus = f

	switch f {
	case searchFocus:
		b.palette.RequestOpen()
	case notificationsFocus:
		b.router.Navigate(catalog.RouteNotifications)
	case settingsFocus:
		b.router.Navigate(catalog.RouteSettings)
	case profileFocus:
		b.router.Navigate(catalog.RouteProfile)
	}
}

func (b *statefulBubble) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	for _, z := range b.zones {
		if z.contains(msg.X, msg.Y) {
			if b.palette.IsOpen() && z.focus == searchFocus {
				return
			}
			if b.palette.IsOpen() {
				b.surface().OnOpenChange(false)
			}
			b.activate(z.focus)
			return
		}
	}

	// click outside the overlay
	if b.palette.IsOpen() && (msg.Y < b.overlayTop || msg.Y > b.overlayBottom) {
		b.surface().OnOpenChange(false)
	}
}
