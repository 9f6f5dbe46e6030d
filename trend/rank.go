package trend

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// HashtagStat aggregates the posts carrying one hashtag.
type HashtagStat struct {
	Hashtag    string  `json:"hashtag"`
	Posts      int     `json:"posts"`
	Engagement int     `json:"engagement"`
	Growth     float64 `json:"growth_rate"`
}

// TrendStat aggregates the posts of one trend.
type TrendStat struct {
	Trend          string    `json:"trend"`
	Industry       string    `json:"industry"`
	Posts          int       `json:"posts"`
	Engagement     int       `json:"engagement"`
	Growth         float64   `json:"growth_rate"`
	EngagementRate float64   `json:"engagement_rate"`
	Latest         time.Time `json:"latest"`
	// Score is the composite trend score on a 0-10 scale.
	Score float64 `json:"score"`
}

// Hashtags ranks hashtags by total engagement.
func (d *Dataset) Hashtags() []HashtagStat {
	groups := lo.GroupBy(d.posts, func(p Post) string { return p.Hashtag })

	result := lo.MapToSlice(groups, func(tag string, posts []Post) HashtagStat {
		return HashtagStat{
			Hashtag:    tag,
			Posts:      len(posts),
			Engagement: lo.SumBy(posts, func(p Post) int { return p.Engagement }),
			Growth:     round(mean(lo.Map(posts, func(p Post, _ int) float64 { return p.Growth })), 1),
		}
	})

	sort.Slice(result, func(i, j int) bool {
		if result[i].Engagement != result[j].Engagement {
			return result[i].Engagement > result[j].Engagement
		}
		return result[i].Hashtag < result[j].Hashtag
	})
	return result
}

// Topics ranks trends by number of posts.
func (d *Dataset) Topics() []TrendStat {
	result := d.trendStats()
	sort.Slice(result, func(i, j int) bool {
		if result[i].Posts != result[j].Posts {
			return result[i].Posts > result[j].Posts
		}
		return result[i].Trend < result[j].Trend
	})
	return result
}

// Scores ranks trends by composite score: 40% normalized engagement,
// 40% normalized growth and 20% recency.
func (d *Dataset) Scores() []TrendStat {
	result := d.trendStats()
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Trend < result[j].Trend
	})
	return result
}

// Stat returns the aggregate of one trend.
func (d *Dataset) Stat(name string) (TrendStat, bool) {
	return lo.Find(d.trendStats(), func(s TrendStat) bool { return s.Trend == name })
}

func (d *Dataset) trendStats() []TrendStat {
	if d.Empty() {
		return nil
	}

	groups := lo.GroupBy(d.posts, func(p Post) string { return p.Trend })
	stats := lo.MapToSlice(groups, func(name string, posts []Post) TrendStat {
		engagement := lo.SumBy(posts, func(p Post) int { return p.Engagement })
		impressions := lo.SumBy(posts, func(p Post) int { return p.Impressions })

		return TrendStat{
			Trend:          name,
			Industry:       posts[0].Industry,
			Posts:          len(posts),
			Engagement:     engagement,
			Growth:         round(mean(lo.Map(posts, func(p Post, _ int) float64 { return p.Growth })), 1),
			EngagementRate: EngagementRate(engagement, impressions),
			Latest:         lo.MaxBy(posts, func(a, b Post) bool { return a.Date.After(b.Date) }).Date,
		}
	})

	var (
		latest    = d.Latest()
		maxEng    = lo.MaxBy(stats, func(a, b TrendStat) bool { return a.Engagement > b.Engagement }).Engagement
		minGrowth = lo.MinBy(stats, func(a, b TrendStat) bool { return a.Growth < b.Growth }).Growth
		maxGrowth = lo.MaxBy(stats, func(a, b TrendStat) bool { return a.Growth > b.Growth }).Growth
		maxAge    = 1.0
	)
	for _, s := range stats {
		maxAge = max(maxAge, latest.Sub(s.Latest).Hours()/24)
	}

	for i := range stats {
		s := &stats[i]

		normEng := 0.0
		if maxEng > 0 {
			normEng = float64(s.Engagement) / float64(maxEng)
		}

		normGrowth := 0.5
		if spread := maxGrowth - minGrowth; spread > 0 {
			normGrowth = (s.Growth - minGrowth) / spread
		}

		recency := 1 - latest.Sub(s.Latest).Hours()/24/maxAge

		s.Score = round((normEng*0.4+normGrowth*0.4+recency*0.2)*10, 1)
	}

	return stats
}

// TimelinePoint is the number of posts on a day and platform.
type TimelinePoint struct {
	Date     time.Time `json:"date"`
	Platform string    `json:"platform"`
	Volume   int       `json:"volume"`
}

// Timeline counts posts per day and platform, ordered by day then platform.
func (d *Dataset) Timeline() []TimelinePoint {
	type dayPlatform struct {
		date     time.Time
		platform string
	}

	counts := lo.CountValuesBy(d.posts, func(p Post) dayPlatform {
		return dayPlatform{p.Date, p.Platform}
	})

	result := lo.MapToSlice(counts, func(k dayPlatform, n int) TimelinePoint {
		return TimelinePoint{Date: k.date, Platform: k.platform, Volume: n}
	})
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Platform < result[j].Platform
	})
	return result
}

// DailyVolume counts posts per day, oldest first.
func (d *Dataset) DailyVolume() []int {
	var (
		result []int
		last   time.Time
	)
	for _, p := range d.posts {
		if len(result) == 0 || !p.Date.Equal(last) {
			result = append(result, 0)
			last = p.Date
		}
		result[len(result)-1]++
	}
	return result
}

// VelocityPoint is the day-over-day change in posts about a trend.
type VelocityPoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
	// Velocity is the percent change from the previous day with posts; 0 on the first.
	Velocity float64 `json:"velocity"`
}

// Velocity computes the daily post counts of a trend and their rate of change.
func (d *Dataset) Velocity(name string) []VelocityPoint {
	posts := d.ByTrend(name).posts

	var result []VelocityPoint
	for _, p := range posts {
		if n := len(result); n > 0 && result[n-1].Date.Equal(p.Date) {
			result[n-1].Count++
			continue
		}
		result = append(result, VelocityPoint{Date: p.Date, Count: 1})
	}

	for i := 1; i < len(result); i++ {
		prev := float64(result[i-1].Count)
		result[i].Velocity = round((float64(result[i].Count)-prev)/prev*100, 1)
	}
	return result
}

// FindTrend resolves a route slug to the trend name it was made from.
func FindTrend(slug string) (string, bool) {
	for _, ind := range industries {
		if name, ok := lo.Find(ind.trends, func(t string) bool { return Slug(t) == slug }); ok {
			return name, true
		}
	}
	return "", false
}

// FindHashtag resolves a route slug to its hashtag.
func FindHashtag(slug string) (string, bool) {
	for _, ind := range industries {
		if tag, ok := lo.Find(ind.hashtags, func(t string) bool { return Slug(t) == slug }); ok {
			return tag, true
		}
	}
	return "", false
}
