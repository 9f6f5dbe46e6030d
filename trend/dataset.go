// Package trend computes the analytics behind the dashboard: rankings,
// velocity, sentiment, growth forecasts and recommendations.
//
// All figures derive from an in-memory dataset of posts. The dataset is
// generated from a seed, so the same seed always yields the same numbers.
package trend

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trendspotter/trendspotter/log"
)

// Filter option values that disable the corresponding filter.
const (
	AllPlatforms  = "All Platforms"
	AllIndustries = "All Industries"
)

// MaxDays is the history length of a generated dataset.
const MaxDays = 30

// Post is a single social media post attributed to a trend.
type Post struct {
	Date        time.Time `json:"date"`
	Platform    string    `json:"platform"`
	Trend       string    `json:"trend"`
	Hashtag     string    `json:"hashtag"`
	Industry    string    `json:"industry"`
	Engagement  int       `json:"engagement"`
	Impressions int       `json:"impressions"`
	Growth      float64   `json:"growth_rate"`
	Content     string    `json:"content"`
}

type industry struct {
	name     string
	trends   []string
	hashtags []string
	growth   [2]float64
}

var industries = []industry{
	{"Technology", []string{"AI Content Creation", "AI Ethics", "Web3", "Quantum Computing", "Green Tech"}, []string{"#AIRevolution", "#TechTrends", "#AI", "#Innovation", "#MachineLearning"}, [2]float64{5, 25}},
	{"Fashion", []string{"Sustainable Fashion", "Y2K Revival", "Gender-Neutral", "Vintage", "Upcycling"}, []string{"#OOTD", "#Fashion", "#Vintage", "#Sustainable", "#StyleTips"}, [2]float64{8, 30}},
	{"Entertainment", []string{"Short-form Video", "Streaming Exclusives", "Interactive Content", "Comeback Tours", "Fan Edits"}, []string{"#ContentStrategy", "#Netflix", "#MovieNight", "#NewMusic", "#MustWatch"}, [2]float64{10, 35}},
	{"Food", []string{"Plant-Based Recipes", "Food Fusion", "Local Sourcing", "Cloud Kitchens", "Food Reels"}, []string{"#Foodie", "#Recipes", "#Cooking", "#Vegan", "#HomeCooking"}, [2]float64{4, 18}},
	{"Travel", []string{"Off-Grid Travel", "Workations", "Sustainable Tourism", "Virtual Tours", "Solo Travel"}, []string{"#Travel", "#Wanderlust", "#Vacation", "#TravelTips", "#Adventure"}, [2]float64{6, 22}},
	{"Fitness", []string{"Home Workouts", "Mental Fitness", "Hybrid Gyms", "Recovery Focus", "Community Challenges"}, []string{"#Fitness", "#Workout", "#HealthyLifestyle", "#FitnessGoals", "#ActiveLife"}, [2]float64{7, 24}},
	{"Beauty", []string{"Clean Beauty", "Skincare Tech", "Inclusive Products", "Male Beauty", "Beauty Subscriptions"}, []string{"#BeautyTips", "#Skincare", "#Makeup", "#SelfCare", "#Cosmetics"}, [2]float64{9, 28}},
	{"Business", []string{"Creator Economy", "Social Commerce", "Remote Work", "ESG Investing", "Direct-to-Consumer"}, []string{"#Marketing2025", "#GrowthHacking", "#Entrepreneur", "#StartUp", "#Leadership"}, [2]float64{3, 15}},
	{"Education", []string{"Microlearning", "EdTech", "Skill Certificates", "Cohort Learning", "Education Pods"}, []string{"#Education", "#Learning", "#StudentLife", "#OnlineLearning", "#Study"}, [2]float64{2, 12}},
}

// generatedPlatforms are the platforms posts are generated for.
var generatedPlatforms = []string{"Twitter", "Instagram", "TikTok"}

// Platforms lists the values accepted by the platform filter.
func Platforms() []string {
	return []string{AllPlatforms, "Twitter", "Instagram", "TikTok", "YouTube", "LinkedIn"}
}

// Industries lists the values accepted by the industry filter.
func Industries() []string {
	return append([]string{AllIndustries}, lo.Map(industries, func(i industry, _ int) string {
		return i.name
	})...)
}

// Ranges maps the date range labels to a number of days.
var Ranges = []lo.Entry[string, int]{
	{Key: "24 Hours", Value: 1},
	{Key: "3 Days", Value: 3},
	{Key: "7 Days", Value: 7},
	{Key: "2 Weeks", Value: 14},
	{Key: "1 Month", Value: MaxDays},
}

var templates = []string{
	"Check out this %s update! %s",
	"I can't believe how fast %s is growing! %s",
	"Anyone else following the latest %s developments? %s",
	"Just shared my thoughts on %s - what do you think? %s",
	"New post about %s is now live! %s",
	"Loving the energy around %s right now %s",
	"The best %s ideas I have seen this week %s",
	"Honestly tired of seeing %s everywhere %s",
	"%s feels overhyped and disappointing %s",
}

// Dataset is an immutable collection of posts.
type Dataset struct {
	posts []Post
}

// NewDataset wraps posts, ordered by date.
func NewDataset(posts []Post) *Dataset {
	cloned := make([]Post, len(posts))
	copy(cloned, posts)
	sortPosts(cloned)
	return &Dataset{posts: cloned}
}

// Options control dataset generation.
type Options struct {
	Seed uint64
	// Now is the last day of the dataset; zero means today.
	Now time.Time
	// Days of history, capped at MaxDays.
	Days int
}

// Generate builds a deterministic dataset: for every day and platform it
// draws between 5 and 15 posts from the industry tables.
func Generate(options Options) *Dataset {
	now := options.Now
	if now.IsZero() {
		now = time.Now()
	}
	end := day(now)

	days := options.Days
	if days <= 0 || days > MaxDays {
		days = MaxDays
	}

	rng := rand.New(rand.NewPCG(options.Seed, options.Seed^0x9e3779b97f4a7c15))
	between := func(a, b float64) float64 {
		return a + rng.Float64()*(b-a)
	}

	var posts []Post
	for d := days - 1; d >= 0; d-- {
		date := end.AddDate(0, 0, -d)

		for _, platform := range generatedPlatforms {
			n := 5 + rng.IntN(11)

			for range n {
				ind := industries[rng.IntN(len(industries))]
				name := ind.trends[rng.IntN(len(ind.trends))]
				hashtag := ind.hashtags[rng.IntN(len(ind.hashtags))]
				engagement := 100 + rng.IntN(9901)

				posts = append(posts, Post{
					Date:        date,
					Platform:    platform,
					Trend:       name,
					Hashtag:     hashtag,
					Industry:    ind.name,
					Engagement:  engagement,
					Impressions: int(float64(engagement) * between(5, 15)),
					Growth:      round(between(ind.growth[0], ind.growth[1]), 1),
					Content:     fmt.Sprintf(templates[rng.IntN(len(templates))], name, hashtag),
				})
			}
		}
	}

	log.Debug("generated trend dataset", log.Fields{"seed": options.Seed, "days": days, "posts": len(posts)})
	return &Dataset{posts: posts}
}

// Posts returns a copy of the posts.
func (d *Dataset) Posts() []Post {
	return append([]Post(nil), d.posts...)
}

// Len is the number of posts.
func (d *Dataset) Len() int {
	return len(d.posts)
}

// Empty reports whether no posts remain.
func (d *Dataset) Empty() bool {
	return len(d.posts) == 0
}

// Latest is the most recent post date, or the zero time for an empty dataset.
func (d *Dataset) Latest() time.Time {
	if len(d.posts) == 0 {
		return time.Time{}
	}
	return d.posts[len(d.posts)-1].Date
}

func (d *Dataset) where(keep func(Post) bool) *Dataset {
	return &Dataset{posts: lo.Filter(d.posts, func(p Post, _ int) bool {
		return keep(p)
	})}
}

// ByPlatform keeps the posts of one platform. AllPlatforms keeps everything.
func (d *Dataset) ByPlatform(platform string) *Dataset {
	if platform == "" || platform == AllPlatforms {
		return d
	}
	return d.where(func(p Post) bool { return p.Platform == platform })
}

// ByIndustry keeps the posts of one industry. AllIndustries keeps everything.
func (d *Dataset) ByIndustry(name string) *Dataset {
	if name == "" || name == AllIndustries {
		return d
	}
	return d.where(func(p Post) bool { return p.Industry == name })
}

// Within keeps the posts of the last days calendar days, counted back from
// the latest post. A non-positive days keeps everything.
func (d *Dataset) Within(days int) *Dataset {
	if days <= 0 || d.Empty() {
		return d
	}
	cutoff := d.Latest().AddDate(0, 0, -days)
	return d.where(func(p Post) bool { return p.Date.After(cutoff) })
}

// ByTrend keeps the posts of one trend.
func (d *Dataset) ByTrend(name string) *Dataset {
	return d.where(func(p Post) bool { return p.Trend == name })
}

// ByHashtag keeps the posts carrying hashtag.
func (d *Dataset) ByHashtag(hashtag string) *Dataset {
	return d.where(func(p Post) bool { return strings.EqualFold(p.Hashtag, hashtag) })
}

// Filter is the combined platform, industry and date range selection.
type Filter struct {
	Platform string `json:"platform"`
	Industry string `json:"industry"`
	Days     int    `json:"days"`
}

// Apply narrows the dataset to the filter. The date range counts back from
// the latest post of the whole dataset, not of the platform or industry.
func (d *Dataset) Apply(f Filter) *Dataset {
	return d.Within(f.Days).ByPlatform(f.Platform).ByIndustry(f.Industry)
}

func day(t time.Time) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}
