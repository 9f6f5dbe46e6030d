package trend

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/montanaflynn/stats"
)

// FormatNumber abbreviates large counts: 1.2K, 3.4M.
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprint(n)
	}
}

// Slug turns a trend name or hashtag into its route segment:
// "AI Content Creation" becomes "ai-content-creation", "#TechTrends" becomes "techtrends".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case r == '#':
		default:
			dash = true
		}
	}
	return b.String()
}

// EngagementRate is engagement over impressions in percent, two decimals.
func EngagementRate(engagement, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return round(float64(engagement)/float64(impressions)*100, 2)
}

func round(v float64, places int) float64 {
	r, err := stats.Round(v, places)
	if err != nil {
		return v
	}
	return r
}

func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(part)/float64(total)*100, 1)
}

func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.Before(posts[j].Date)
	})
}
