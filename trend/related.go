package trend

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

var related = map[string][]string{
	"AI Content Creation": {"Generative Video", "AI Copywriting", "Prompt Engineering", "Synthetic Media", "AI Avatars"},
	"Short-form Video":    {"Reels", "Shorts", "Vertical Storytelling", "Duets", "Micro Vlogs"},
	"Creator Economy":     {"Creator Funds", "Paid Communities", "Brand Deals", "Newsletter Businesses", "Fan Subscriptions"},
	"Social Commerce":     {"Live Shopping", "Shoppable Posts", "Influencer Storefronts", "Group Buying", "In-App Checkout"},
	"AI Ethics":           {"Machine Learning Bias", "Responsible AI", "AI Governance", "Ethical Computing", "AI Transparency"},
	"Web3":                {"Blockchain", "Decentralized Apps", "Crypto", "NFTs", "Metaverse"},
	"Sustainable Fashion": {"Eco Fashion", "Slow Fashion", "Ethical Clothing", "Green Fashion", "Circular Fashion"},
	"Plant-Based Recipes": {"Vegan Cooking", "Meatless Meals", "Vegetarian Options", "Dairy Alternatives", "Whole Foods"},
	"Home Workouts":       {"No-Equipment Exercise", "Living Room Fitness", "Online Training", "Fitness Apps", "Virtual Classes"},
}

// Related lists up to limit trends adjacent to name. Unknown trends get
// numbered variations.
func Related(name string, limit int) []string {
	if known, ok := related[name]; ok {
		return append([]string(nil), known[:min(limit, len(known))]...)
	}

	result := make([]string, limit)
	for i := range result {
		result[i] = fmt.Sprintf("%s - Variation %d", name, i+1)
	}
	return result
}

// HistoryPoint is one day of a trend's long-range volume.
type HistoryPoint struct {
	Date   time.Time `json:"date"`
	Volume int       `json:"volume"`
}

// Historical simulates days+1 points of volume ending at now: a baseline that
// rises linearly over the window, 20% higher on weekends, with noise. The
// series depends only on seed and name.
func Historical(name string, days int, now time.Time, seed uint64) []HistoryPoint {
	if days <= 0 {
		days = MaxDays
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	rng := rand.New(rand.NewPCG(seed, h.Sum64()))

	baseline := float64(500 + rng.IntN(4501))
	start := day(now).AddDate(0, 0, -days)

	result := make([]HistoryPoint, days+1)
	for i := range result {
		date := start.AddDate(0, 0, i)

		weekend := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend = 1.2
		}

		noise := 0.8 + rng.Float64()*0.4
		result[i] = HistoryPoint{
			Date:   date,
			Volume: int(baseline * (1 + float64(i)/float64(days)) * weekend * noise),
		}
	}
	return result
}
