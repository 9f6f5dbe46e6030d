package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/icon"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/navigate"
	"github.com/trendspotter/trendspotter/style"
	"github.com/trendspotter/trendspotter/util"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.AccentColor).
			Padding(0, 1)

	headingStyle  = lipgloss.NewStyle().Foreground(style.MutedColor).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(style.AccentColor).Bold(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(style.FaintColor).Italic(true)
	ruleStyle     = lipgloss.NewStyle().Foreground(style.BorderColor)
)

// Route prefixes of the analytics pages.
const (
	trendsPrefix   = "/trends/"
	hashtagsPrefix = "/hashtags/"
)

func (b *statefulBubble) View() string {
	padTop, padLeft := paddingStyle.GetPaddingTop(), paddingStyle.GetPaddingLeft()

	navbar := b.viewNavbar(padLeft, padTop)
	rule := ruleStyle.Render(strings.Repeat("─", util.Max(b.width, 1)))

	var body string
	if b.palette.IsOpen() {
		body = b.viewPalette()
		b.overlayTop = padTop + lipgloss.Height(navbar) + 1
		b.overlayBottom = b.overlayTop + lipgloss.Height(body) - 1
	} else {
		body = b.viewPage()
	}

	output := lipgloss.JoinVertical(lipgloss.Left, navbar, rule, body, "", b.helpC.View(b.keymap))
	return b.toast.View(paddingStyle.Render(output))
}

func (b *statefulBubble) viewPage() string {
	route := b.router.Current()

	var title, description string
	switch entry, ok := b.palette.Catalog().Lookup(route); {
	case route == navigate.Home:
		title, description = "Dashboard", b.viewDashboard()
	case ok && strings.HasPrefix(route, trendsPrefix):
		title, description = entry.Label, b.viewTrend(strings.TrimPrefix(route, trendsPrefix), entry)
	case ok && strings.HasPrefix(route, hashtagsPrefix):
		title, description = entry.Label, b.viewHashtag(strings.TrimPrefix(route, hashtagsPrefix), entry)
	case ok:
		title, description = entry.Label, fmt.Sprintf("%s for your TrendSpotter account.", entry.Label)
	default:
		title = "Page not found"
		description = fmt.Sprintf("Nothing lives at %s.", route)
		if suggestion, ok := b.router.Suggest().Get(); ok {
			description += fmt.Sprintf(" Did you mean %s?", style.Fg(style.AccentColor)(suggestion))
		}
	}

	lines := []string{
		style.Title(title),
		style.Faint(route),
		"",
		wordwrap.String(description, util.Max(b.width, 20)),
	}
	if b.router.Depth() > 0 {
		lines = append(lines, "", style.Faint("esc to go back"))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) dashboardSummary() string {
	cats := b.palette.Catalog().Categories()
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = fmt.Sprintf("%s %s", util.Quantify(len(c.Items), "entry", "entries"), style.Bold(c.Name))
	}

	return fmt.Sprintf(
		"Analyze emerging trends and get actionable insights for your content strategy. The catalog holds %s. Press %s to search.",
		strings.Join(parts, ", "),
		style.Fg(style.AccentColor)("ctrl+"+b.palette.ChordKey()),
	)
}

func (b *statefulBubble) viewPalette() string {
	surface := b.surface()
	showTargets := viper.GetBool(key.TUIShowTargets)

	lines := []string{b.inputC.View(), ""}

	if surface.Results.Empty() {
		lines = append(lines, emptyStyle.Render("No results found."))
		return overlayStyle.Width(util.Max(b.width-2, 20)).Render(strings.Join(lines, "\n"))
	}

	cursor := util.Clamp(b.cursor, 0, surface.Results.Len()-1)

	var (
		rows      []string
		cursorRow int
		index     int
	)
	for gi, g := range surface.Results.Groups {
		if gi > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, headingStyle.Render(categoryIcon(g.Name)+" "+g.Name))

		for _, e := range g.Items {
			row := "  " + e.Label
			if showTargets {
				row += "  " + style.Faint(e.Target)
			}
			if index == cursor {
				cursorRow = len(rows)
				row = selectedStyle.Render(icon.Get(icon.Cursor) + " " + e.Label)
				if showTargets {
					row += "  " + style.Faint(e.Target)
				}
			}
			rows = append(rows, row)
			index++
		}
	}

	lines = append(lines, window(rows, cursorRow, b.visibleRows())...)
	lines = append(lines, "", style.Faint(util.Quantify(surface.Results.Len(), "result", "results")))

	return overlayStyle.Width(util.Max(b.width-2, 20)).Render(strings.Join(lines, "\n"))
}

// visibleRows is how many result rows fit below the navbar, input and help.
func (b *statefulBubble) visibleRows() int {
	const chrome = 12
	return util.Max(b.height-chrome, 3)
}

// window returns at most size rows around the cursor row.
func window(rows []string, cursor, size int) []string {
	if len(rows) <= size {
		return rows
	}
	start := util.Clamp(cursor-size/2, 0, len(rows)-size)
	return rows[start : start+size]
}

func categoryIcon(name string) string {
	switch name {
	case catalog.Trends:
		return icon.Get(icon.Trend)
	case catalog.Hashtags:
		return icon.Get(icon.Hashtag)
	case catalog.Pages:
		return icon.Get(icon.Page)
	default:
		return icon.Get(icon.Link)
	}
}
