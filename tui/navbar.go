package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/trendspotter/trendspotter/constant"
	"github.com/trendspotter/trendspotter/icon"
	"github.com/trendspotter/trendspotter/style"
	"github.com/trendspotter/trendspotter/util"
)

var (
	logoStyle    = lipgloss.NewStyle().Foreground(style.AccentColor).Bold(true)
	triggerStyle = lipgloss.NewStyle().
			Foreground(style.MutedColor).
			Underline(true).
			Padding(0, 1)
	buttonStyle  = lipgloss.NewStyle().Padding(0, 1)
	focusedStyle = lipgloss.NewStyle().Foreground(style.TextColor).Background(style.AccentColor)
)

type navControl struct {
	focus focus
	label string
}

// viewNavbar renders the single navbar line and records click zones.
// originX and originY locate the line on screen.
func (b *statefulBubble) viewNavbar(originX, originY int) string {
	logo := logoStyle.Render(constant.Brand) + " " + style.Badge(constant.BrandBadge)

	controls := []navControl{
		{searchFocus, icon.Get(icon.Search) + " Search...  " + style.Faint("ctrl+"+b.palette.ChordKey())},
		{notificationsFocus, icon.Get(icon.Bell)},
		{settingsFocus, icon.Get(icon.Gear)},
		{profileFocus, icon.Get(icon.User)},
	}

	rendered := make([]string, len(controls))
	for i, c := range controls {
		s := buttonStyle
		if c.focus == searchFocus {
			s = triggerStyle
		}
		if c.focus == b.focus && !b.palette.IsOpen() {
			s = s.Inherit(focusedStyle)
		}
		rendered[i] = s.Render(c.label)
	}

	used := lipgloss.Width(logo) + totalWidth(rendered)
	gap := util.Max((b.width-used)/2, 1)

	var (
		sb    strings.Builder
		zones []zone
	)
	sb.WriteString(logo)
	sb.WriteString(strings.Repeat(" ", gap))

	x := originX + lipgloss.Width(logo) + gap
	for i, r := range rendered {
		if i == 1 {
			sb.WriteString(strings.Repeat(" ", gap))
			x += gap
		}
		w := lipgloss.Width(r)
		zones = append(zones, zone{y: originY, x0: x, x1: x + w, focus: controls[i].focus})
		sb.WriteString(r)
		x += w
	}

	b.zones = zones
	return sb.String()
}

// totalWidth sums the printable widths of parts.
func totalWidth(parts []string) int {
	n := 0
	for _, p := range parts {
		n += lipgloss.Width(p)
	}
	return n
}
