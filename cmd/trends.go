package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/color"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/style"
	"github.com/trendspotter/trendspotter/trend"
)

func init() {
	rootCmd.AddCommand(trendsCmd)

	trendsCmd.PersistentFlags().StringP("platform", "p", "", "Only count posts from this platform")
	lo.Must0(trendsCmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return trend.Platforms(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.TrendsPlatform, trendsCmd.PersistentFlags().Lookup("platform")))

	trendsCmd.PersistentFlags().StringP("industry", "i", "", "Only count posts from this industry")
	lo.Must0(trendsCmd.RegisterFlagCompletionFunc("industry", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return trend.Industries(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.TrendsIndustry, trendsCmd.PersistentFlags().Lookup("industry")))

	trendsCmd.PersistentFlags().IntP("days", "d", 0, "Date range in days (1, 3, 7, 14 or 30)")
	lo.Must0(viper.BindPFlag(key.TrendsDays, trendsCmd.PersistentFlags().Lookup("days")))

	trendsCmd.PersistentFlags().Int64("seed", 0, "Seed of the generated dataset")
	lo.Must0(viper.BindPFlag(key.TrendsSeed, trendsCmd.PersistentFlags().Lookup("seed")))

	trendsCmd.PersistentFlags().BoolP("json", "j", false, "Print the result as JSON")
	trendsCmd.PersistentFlags().IntP("limit", "n", 10, "Maximum number of rows")
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Rank trends and hashtags, split sentiment and forecast growth",
}

// trendsData is the configured dataset narrowed by the filter flags.
func trendsData() (*trend.Dataset, trend.Filter) {
	filter, err := trend.FilterFromConfig()
	handleErr(err)
	return trend.FromConfig().Apply(filter), filter
}

func limitFlag(cmd *cobra.Command) int {
	return lo.Must(cmd.Flags().GetInt("limit"))
}

// printTrends writes v as JSON with --json, otherwise runs render.
func printTrends(cmd *cobra.Command, filter trend.Filter, v any, render func()) {
	if lo.Must(cmd.Flags().GetBool("json")) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(v))
		return
	}

	cmd.Println(style.Faint(filter.Label()))
	render()
}

func renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(color.HiPurple).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.BorderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func init() {
	trendsCmd.AddCommand(trendsTopCmd)
	trendsTopCmd.Flags().StringP("by", "b", "score", "Ranking: score or posts")
	lo.Must0(trendsTopCmd.RegisterFlagCompletionFunc("by", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"score", "posts"}, cobra.ShellCompDirectiveNoFileComp
	}))
	trendsTopCmd.SetOut(os.Stdout)
}

var trendsTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Rank trends by score or number of posts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, filter := trendsData()

		var stats []trend.TrendStat
		switch by := lo.Must(cmd.Flags().GetString("by")); by {
		case "score":
			stats = d.Scores()
		case "posts":
			stats = d.Topics()
		default:
			handleErr(fmt.Errorf("unknown ranking %q, expected score or posts", by))
		}
		stats = lo.Slice(stats, 0, limitFlag(cmd))

		printTrends(cmd, filter, stats, func() {
			cmd.Println(renderTable(
				[]string{"#", "Trend", "Industry", "Posts", "Engagement", "Rate", "Growth", "Score"},
				lo.Map(stats, func(s trend.TrendStat, i int) []string {
					return []string{
						fmt.Sprint(i + 1),
						s.Trend,
						s.Industry,
						fmt.Sprint(s.Posts),
						humanize.Comma(int64(s.Engagement)),
						fmt.Sprintf("%.2f%%", s.EngagementRate),
						percent(s.Growth),
						fmt.Sprintf("%.1f", s.Score),
					}
				}),
			))
		})
	},
}

func init() {
	trendsCmd.AddCommand(trendsHashtagsCmd)
	trendsHashtagsCmd.SetOut(os.Stdout)
}

var trendsHashtagsCmd = &cobra.Command{
	Use:   "hashtags",
	Short: "Rank hashtags by engagement",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, filter := trendsData()
		hashtags := lo.Slice(d.Hashtags(), 0, limitFlag(cmd))

		printTrends(cmd, filter, hashtags, func() {
			cmd.Println(renderTable(
				[]string{"#", "Hashtag", "Posts", "Engagement", "Growth"},
				lo.Map(hashtags, func(h trend.HashtagStat, i int) []string {
					return []string{fmt.Sprint(i + 1), h.Hashtag, fmt.Sprint(h.Posts), humanize.Comma(int64(h.Engagement)), percent(h.Growth)}
				}),
			))
		})
	},
}

type sentimentOutput struct {
	Distribution []trend.Share                `json:"distribution"`
	ByIndustry   []trend.IndustrySentiment    `json:"by_industry"`
	Keywords     map[trend.Sentiment][]string `json:"keywords"`
	TopPositive  []lo.Entry[string, int]      `json:"top_positive"`
	TopNegative  []lo.Entry[string, int]      `json:"top_negative"`
}

func init() {
	trendsCmd.AddCommand(trendsSentimentCmd)
	trendsSentimentCmd.SetOut(os.Stdout)
}

var trendsSentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Split posts into positive, neutral and negative",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, filter := trendsData()
		limit := limitFlag(cmd)

		out := sentimentOutput{
			Distribution: d.Sentiment(),
			ByIndustry:   d.SentimentByIndustry(),
			Keywords:     d.Keywords(limit),
			TopPositive:  d.TopBySentiment(trend.Positive, limit),
			TopNegative:  d.TopBySentiment(trend.Negative, limit),
		}

		printTrends(cmd, filter, out, func() {
			cmd.Println(renderTable(
				[]string{"Sentiment", "Posts", "Share", "Keywords"},
				lo.Map(out.Distribution, func(s trend.Share, _ int) []string {
					return []string{string(s.Sentiment), fmt.Sprint(s.Count), percent(s.Percentage), strings.Join(out.Keywords[s.Sentiment], ", ")}
				}),
			))

			cmd.Println(renderTable(
				append([]string{"Industry"}, lo.Map(trend.Sentiments(), func(s trend.Sentiment, _ int) string { return string(s) })...),
				lo.Map(out.ByIndustry, func(i trend.IndustrySentiment, _ int) []string {
					return append([]string{i.Industry}, lo.Map(i.Shares, func(s trend.Share, _ int) string { return percent(s.Percentage) })...)
				}),
			))
		})
	},
}

func init() {
	trendsCmd.AddCommand(trendsForecastCmd)
	trendsForecastCmd.Flags().IntP("horizon", "H", trend.ForecastHorizon, "Days to project")
	trendsForecastCmd.SetOut(os.Stdout)
}

var trendsForecastCmd = &cobra.Command{
	Use:   "forecast [trend]",
	Short: "Project trend engagement by compounding its growth rate",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, filter := trendsData()
		horizon := lo.Must(cmd.Flags().GetInt("horizon"))

		forecasts := lo.Slice(d.Forecasts(horizon), 0, limitFlag(cmd))
		if len(args) > 0 {
			f, ok := d.ForecastOf(args[0], horizon)
			if !ok {
				handleErr(fmt.Errorf("no posts about %q match the current filters", args[0]))
			}
			forecasts = []trend.Forecast{f}
		}

		printTrends(cmd, filter, forecasts, func() {
			cmd.Println(renderTable(
				[]string{"Trend", "Industry", "Growth", "Now", fmt.Sprintf("In %d days", horizon)},
				lo.Map(forecasts, func(f trend.Forecast, _ int) []string {
					last := f.Volume
					if len(f.Points) > 0 {
						last = f.Points[len(f.Points)-1].Volume
					}
					return []string{f.Trend, f.Industry, percent(f.Growth), humanize.Comma(int64(f.Volume)), humanize.Comma(int64(last))}
				}),
			))
		})
	},
}

func init() {
	trendsCmd.AddCommand(trendsRecommendCmd)
	trendsRecommendCmd.SetOut(os.Stdout)
}

var trendsRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest content actions derived from the current trends",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, filter := trendsData()

		groups := d.Recommend()
		if custom := d.Custom(filter.Industry, filter.Platform); len(custom) > 0 {
			groups = append(groups, trend.RecommendationGroup{Category: "Custom", Items: custom})
		}

		printTrends(cmd, filter, groups, func() {
			headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

			for _, g := range groups {
				cmd.Println()
				cmd.Println(headerStyle(g.Category))
				for _, r := range g.Items {
					cmd.Println(fmt.Sprintf("  %s %s", style.Bold(r.Title), style.Faint(fmt.Sprintf(
						"relevance %d/10, reach %s, effort %d/10",
						r.Metrics.Relevance, humanize.Comma(int64(r.Metrics.Reach)), r.Metrics.Effort,
					))))
					for _, step := range r.Steps {
						cmd.Println("    - " + step)
					}
				}
			}
		})
	},
}

type relatedOutput struct {
	Trend   string               `json:"trend"`
	Related []string             `json:"related"`
	History []trend.HistoryPoint `json:"history"`
}

func init() {
	trendsCmd.AddCommand(trendsRelatedCmd)
	trendsRelatedCmd.SetOut(os.Stdout)
}

var trendsRelatedCmd = &cobra.Command{
	Use:   "related <trend>",
	Short: "List related trends and the long-range volume of a trend",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := trend.FilterFromConfig()
		handleErr(err)

		out := relatedOutput{
			Trend:   args[0],
			Related: trend.Related(args[0], limitFlag(cmd)),
			History: trend.Historical(args[0], trend.MaxDays, time.Now(), uint64(viper.GetInt64(key.TrendsSeed))),
		}

		printTrends(cmd, filter, out, func() {
			for _, r := range out.Related {
				cmd.Println("  " + r)
			}

			cmd.Println()
			last := lo.Slice(out.History, len(out.History)-filterDays(filter), len(out.History))
			cmd.Println(renderTable(
				[]string{"Date", "Volume"},
				lo.Map(last, func(p trend.HistoryPoint, _ int) []string {
					return []string{p.Date.Format(time.DateOnly), humanize.Comma(int64(p.Volume))}
				}),
			))
		})
	},
}

// filterDays is the filter's range, or a week when unset.
func filterDays(filter trend.Filter) int {
	if filter.Days <= 0 {
		return 7
	}
	return filter.Days
}
