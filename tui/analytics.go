package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/color"
	"github.com/trendspotter/trendspotter/style"
	"github.com/trendspotter/trendspotter/trend"
)

const topN = 5

var (
	sectionStyle = lipgloss.NewStyle().Foreground(style.AccentColor).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(style.MutedColor).Width(12)

	sentimentColors = map[trend.Sentiment]lipgloss.Color{
		trend.Positive: style.SuccessColor,
		trend.Neutral:  style.MutedColor,
		trend.Negative: style.ErrorColor,
	}
)

var sparkBars = []rune("▁▂▃▄▅▆▇█")

// sparkline scales values onto block characters, lowest to highest.
func sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}

	lowest, highest := lo.Min(values), lo.Max(values)
	var b strings.Builder
	for _, v := range values {
		i := len(sparkBars) - 1
		if highest > lowest {
			i = (v - lowest) * (len(sparkBars) - 1) / (highest - lowest)
		}
		b.WriteRune(sparkBars[i])
	}
	return style.Fg(style.AccentColor)(b.String())
}

func signed(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

func field(label, value string) string {
	return labelStyle.Render(label) + value
}

func sentimentLine(shares []trend.Share) string {
	return strings.Join(lo.Map(shares, func(s trend.Share, _ int) string {
		return style.Fg(sentimentColors[s.Sentiment])(fmt.Sprintf("%s %.1f%%", s.Sentiment, s.Percentage))
	}), "  ")
}

// filtered is the dataset narrowed to the configured platform, industry and range.
func (b *statefulBubble) filtered() *trend.Dataset {
	return b.trends.Apply(b.filter)
}

func (b *statefulBubble) viewDashboard() string {
	d := b.filtered()

	lines := []string{
		b.dashboardSummary(),
		"",
		style.Faint(b.filter.Label()),
	}
	if d.Empty() {
		return strings.Join(append(lines, "", emptyStyle.Render("No posts match the current filters.")), "\n")
	}

	lines = append(lines,
		field("Posts", humanize.Comma(int64(d.Len()))),
		field("Volume", sparkline(d.DailyVolume())),
		field("Sentiment", sentimentLine(d.Sentiment())),
		"",
		sectionStyle.Render("Top trends"),
	)

	for i, s := range lo.Slice(d.Scores(), 0, topN) {
		lines = append(lines, fmt.Sprintf(
			"%d. %s  %s  %s  %s",
			i+1,
			style.Bold(s.Trend),
			style.Faint("score "+fmt.Sprint(s.Score)),
			style.Fg(color.Green)(signed(s.Growth)),
			style.Faint(trend.FormatNumber(s.Engagement)+" engagements"),
		))
	}

	lines = append(lines, "", sectionStyle.Render("Top hashtags"))
	for i, h := range lo.Slice(d.Hashtags(), 0, topN) {
		lines = append(lines, fmt.Sprintf(
			"%d. %s  %s  %s",
			i+1,
			style.Bold(h.Hashtag),
			style.Faint(humanize.Comma(int64(h.Engagement))+" engagements"),
			style.Fg(color.Green)(signed(h.Growth)),
		))
	}

	growth := lo.Slice(d.GrowthByIndustry(), 0, 3)
	lines = append(lines, "", sectionStyle.Render("Fastest growing industries"), strings.Join(lo.Map(growth, func(g trend.IndustryGrowth, _ int) string {
		return fmt.Sprintf("%s %s", g.Industry, style.Fg(color.Green)(signed(g.Growth)))
	}), "  "))

	lines = append(lines, "", sectionStyle.Render("Recommended next"))
	for _, group := range d.Recommend() {
		if len(group.Items) > 0 {
			lines = append(lines, fmt.Sprintf("%s %s", style.Faint(group.Category+":"), group.Items[0].Title))
		}
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewTrend(slug string, entry catalog.Entry) string {
	name, ok := trend.FindTrend(slug)
	if !ok {
		name = entry.Label
	}

	d := b.filtered()
	related := field("Related", strings.Join(trend.Related(name, topN), ", "))

	stat, ok := d.Stat(name)
	if !ok {
		return strings.Join([]string{
			style.Faint(b.filter.Label()),
			emptyStyle.Render(fmt.Sprintf("No posts about %s match the current filters.", name)),
			"",
			related,
		}, "\n")
	}

	rank := lo.IndexOf(lo.Map(d.Scores(), func(s trend.TrendStat, _ int) string { return s.Trend }), name) + 1
	posts := d.ByTrend(name)

	lines := []string{
		style.Faint(b.filter.Label()),
		field("Industry", stat.Industry),
		field("Score", fmt.Sprintf("%.1f / 10  %s", stat.Score, style.Faint(fmt.Sprintf("rank %d of %d", rank, len(d.Scores()))))),
		field("Posts", humanize.Comma(int64(stat.Posts))),
		field("Engagement", fmt.Sprintf("%s  %s", humanize.Comma(int64(stat.Engagement)), style.Faint(fmt.Sprintf("%.2f%% rate", stat.EngagementRate)))),
		field("Growth", style.Fg(color.Green)(signed(stat.Growth))),
	}

	if velocity := d.Velocity(name); len(velocity) > 0 {
		last := velocity[len(velocity)-1]
		counts := lo.Map(velocity, func(v trend.VelocityPoint, _ int) int { return v.Count })
		lines = append(lines, field("Velocity", fmt.Sprintf("%s  %s", sparkline(counts), style.Faint(signed(last.Velocity)+" day over day"))))
	}

	lines = append(lines, field("Sentiment", sentimentLine(posts.Sentiment())))

	if f, ok := d.ForecastOf(name, trend.ForecastHorizon); ok {
		points := lo.Map(f.Points, func(p trend.ForecastPoint, _ int) string {
			return trend.FormatNumber(p.Volume)
		})
		lines = append(lines, field("Forecast", fmt.Sprintf(
			"%s → %s  %s",
			trend.FormatNumber(f.Volume),
			strings.Join(points, " → "),
			style.Faint(fmt.Sprintf("next %d days", len(f.Points))),
		)))
	}

	return strings.Join(append(lines, related), "\n")
}

func (b *statefulBubble) viewHashtag(slug string, entry catalog.Entry) string {
	tag, ok := trend.FindHashtag(slug)
	if !ok {
		tag = entry.Label
	}

	d := b.filtered()
	ranked := d.Hashtags()
	index := lo.IndexOf(lo.Map(ranked, func(h trend.HashtagStat, _ int) string { return h.Hashtag }), tag)
	if index < 0 {
		return strings.Join([]string{
			style.Faint(b.filter.Label()),
			emptyStyle.Render(fmt.Sprintf("No posts with %s match the current filters.", tag)),
		}, "\n")
	}

	stat := ranked[index]
	posts := d.ByHashtag(tag)

	lines := []string{
		style.Faint(b.filter.Label()),
		field("Rank", fmt.Sprintf("%d of %d by engagement", index+1, len(ranked))),
		field("Posts", humanize.Comma(int64(stat.Posts))),
		field("Engagement", humanize.Comma(int64(stat.Engagement))),
		field("Growth", style.Fg(color.Green)(signed(stat.Growth))),
		field("Volume", sparkline(posts.DailyVolume())),
		field("Sentiment", sentimentLine(posts.Sentiment())),
		field("Trends", strings.Join(lo.Map(lo.Slice(posts.Topics(), 0, 3), func(s trend.TrendStat, _ int) string {
			return fmt.Sprintf("%s (%d)", s.Trend, s.Posts)
		}), ", ")),
	}
	return strings.Join(lines, "\n")
}
