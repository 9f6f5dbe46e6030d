package trend

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"
)

// ForecastHorizon is the default number of days projected.
const ForecastHorizon = 7

// ForecastPoint is a projected volume on a future day.
type ForecastPoint struct {
	Date   time.Time `json:"date"`
	Volume int       `json:"volume"`
}

// Forecast projects a trend's engagement by compounding its mean growth rate daily.
type Forecast struct {
	Trend    string `json:"trend"`
	Industry string `json:"industry"`
	// Date and Volume are the last observed day and the mean engagement per post.
	Date   time.Time       `json:"date"`
	Volume int             `json:"volume"`
	Growth float64         `json:"growth_forecast"`
	Points []ForecastPoint `json:"points"`
}

// Forecasts projects every trend horizon days ahead, ordered by growth.
func (d *Dataset) Forecasts(horizon int) []Forecast {
	if horizon <= 0 {
		horizon = ForecastHorizon
	}

	groups := lo.GroupBy(d.posts, func(p Post) string { return p.Trend })
	result := lo.MapToSlice(groups, func(name string, posts []Post) Forecast {
		return project(name, posts, horizon)
	})

	sort.Slice(result, func(i, j int) bool {
		if result[i].Growth != result[j].Growth {
			return result[i].Growth > result[j].Growth
		}
		return result[i].Trend < result[j].Trend
	})
	return result
}

// ForecastOf projects one trend. It reports false when the trend has no posts.
func (d *Dataset) ForecastOf(name string, horizon int) (Forecast, bool) {
	posts := d.ByTrend(name).posts
	if len(posts) == 0 {
		return Forecast{}, false
	}
	if horizon <= 0 {
		horizon = ForecastHorizon
	}
	return project(name, posts, horizon), true
}

func project(name string, posts []Post, horizon int) Forecast {
	engagement := mean(lo.Map(posts, func(p Post, _ int) float64 { return float64(p.Engagement) }))
	growth := round(mean(lo.Map(posts, func(p Post, _ int) float64 { return p.Growth })), 1)
	latest := posts[len(posts)-1].Date

	f := Forecast{
		Trend:    name,
		Industry: posts[0].Industry,
		Date:     latest,
		Volume:   int(engagement),
		Growth:   growth,
		Points:   make([]ForecastPoint, horizon),
	}

	factor := 1 + growth/100
	for i := 1; i <= horizon; i++ {
		f.Points[i-1] = ForecastPoint{
			Date:   latest.AddDate(0, 0, i),
			Volume: int(math.Round(engagement * math.Pow(factor, float64(i)))),
		}
	}
	return f
}

// IndustryGrowth is the mean growth forecast of an industry's trends.
type IndustryGrowth struct {
	Industry string  `json:"industry"`
	Growth   float64 `json:"growth_forecast"`
}

// GrowthByIndustry averages the trend forecasts per industry, fastest first.
func (d *Dataset) GrowthByIndustry() []IndustryGrowth {
	groups := lo.GroupBy(d.Forecasts(ForecastHorizon), func(f Forecast) string { return f.Industry })
	result := lo.MapToSlice(groups, func(name string, fs []Forecast) IndustryGrowth {
		return IndustryGrowth{
			Industry: name,
			Growth:   round(mean(lo.Map(fs, func(f Forecast, _ int) float64 { return f.Growth })), 1),
		}
	})

	sort.Slice(result, func(i, j int) bool {
		if result[i].Growth != result[j].Growth {
			return result[i].Growth > result[j].Growth
		}
		return result[i].Industry < result[j].Industry
	})
	return result
}
