package trend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Recommendation categories, in display order.
const (
	ContentStrategy         = "Content Strategy"
	EngagementOpportunities = "Engagement Opportunities"
	PlatformSpecific        = "Platform-Specific"
)

// Metrics rate a recommendation. Relevance and Effort are on a 1-10 scale.
type Metrics struct {
	Relevance int `json:"relevance"`
	Reach     int `json:"potential_reach"`
	Effort    int `json:"effort"`
}

// Recommendation is an actionable suggestion derived from the dataset.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"action_steps"`
	Metrics     Metrics  `json:"metrics"`
}

// RecommendationGroup holds the recommendations of one category.
type RecommendationGroup struct {
	Category string           `json:"category"`
	Items    []Recommendation `json:"items"`
}

var platformFormats = map[string]string{
	"Twitter":   "short-form text with visuals",
	"Instagram": "high-quality images and carousel posts",
	"TikTok":    "short-form vertical videos",
	"YouTube":   "long-form video with chapters",
	"LinkedIn":  "professional articles and document posts",
}

var platformStrategies = map[string]Recommendation{
	"Twitter": {
		Title:       "Twitter Strategy: Leverage real-time trends",
		Description: "Twitter excels at real-time conversation. Engage with current events and trending hashtags while they peak.",
		Steps: []string{
			"Monitor trending topics daily",
			"Join conversations with thoughtful responses, not just self-promotion",
			"Use threads for in-depth analysis of trending topics",
			"Increase posting frequency during peak trending periods",
		},
	},
	"Instagram": {
		Title:       "Instagram Strategy: Focus on visual storytelling",
		Description: "Aesthetic consistency and storytelling drive engagement with trending content on Instagram.",
		Steps: []string{
			"Create visually cohesive content related to trending topics",
			"Use Stories for behind-the-scenes and time-sensitive trend content",
			"Use Reels to capitalize on short-form video trends",
			"Incorporate trending audio and effects",
		},
	},
	"TikTok": {
		Title:       "TikTok Strategy: Embrace trend participation",
		Description: "TikTok is driven by trends and challenges. Taking part in them increases visibility and follower growth.",
		Steps: []string{
			"Monitor the Discover page for emerging trends",
			"Put your own spin on trending challenges or formats",
			"Use trending sounds and effects",
			"Post consistently to improve algorithm visibility",
		},
	},
}

var industryTips = map[string]Recommendation{
	"Technology": {
		Title:       "Tech Industry: Focus on educational content",
		Description: "Educational content that explains complex concepts performs exceptionally well in technology.",
		Steps: []string{
			"Create how-to guides and tutorials on trending tech topics",
			"Develop infographics that simplify technical concepts",
			"Start conversations about the ethics of new technologies",
		},
	},
	"Fashion": {
		Title:       "Fashion Industry: Emphasize sustainability narratives",
		Description: "Sustainability is a major fashion trend and resonates with conscious consumers.",
		Steps: []string{
			"Showcase sustainable materials and production methods",
			"Highlight the longevity and versatility of pieces",
			"Partner with sustainable brands or initiatives",
		},
	},
	"Entertainment": {
		Title:       "Entertainment Industry: Leverage fan communities",
		Description: "Entertainment trends are driven by passionate fan communities that amplify reach.",
		Steps: []string{
			"Create content analyzing trending shows, movies or music",
			"Develop reaction content to new releases",
			"Collaborate with fan accounts and community leaders",
		},
	},
	"Business": {
		Title:       "Business Industry: Share results, not slogans",
		Description: "Business audiences engage with concrete numbers, case studies and behind-the-scenes decisions.",
		Steps: []string{
			"Publish short case studies with measurable outcomes",
			"Break down trending strategies into repeatable playbooks",
			"Invite peers to comment with their own numbers",
		},
	},
}

func (d *Dataset) topTrendsByEngagement(n int) []TrendStat {
	stats := d.trendStats()
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Engagement != stats[j].Engagement {
			return stats[i].Engagement > stats[j].Engagement
		}
		return stats[i].Trend < stats[j].Trend
	})
	return stats[:min(n, len(stats))]
}

func topCounts(counts map[string]int, n int) []string {
	keys := lo.Keys(counts)
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys[:min(n, len(keys))]
}

// platforms present in the dataset, in generation order.
func (d *Dataset) platforms() []string {
	present := lo.Uniq(lo.Map(d.posts, func(p Post, _ int) string { return p.Platform }))
	sort.SliceStable(present, func(i, j int) bool {
		return lo.IndexOf(Platforms(), present[i]) < lo.IndexOf(Platforms(), present[j])
	})
	return present
}

// Recommend derives the recommendation groups from the dataset.
func (d *Dataset) Recommend() []RecommendationGroup {
	return []RecommendationGroup{
		{Category: ContentStrategy, Items: d.contentRecommendations()},
		{Category: EngagementOpportunities, Items: d.engagementRecommendations()},
		{Category: PlatformSpecific, Items: d.platformRecommendations()},
	}
}

func (d *Dataset) contentRecommendations() []Recommendation {
	var result []Recommendation

	if top := d.topTrendsByEngagement(1); len(top) > 0 {
		t := top[0]
		result = append(result, Recommendation{
			Title:       fmt.Sprintf("Create content around '%s'", t.Trend),
			Description: fmt.Sprintf("'%s' is trending with high engagement. Content on this topic can reach a larger audience.", t.Trend),
			Steps: []string{
				fmt.Sprintf("Develop a series of posts discussing '%s'", t.Trend),
				"Incorporate relevant hashtags in your content",
				"Create visual content related to this topic",
				"Start conversations about this topic in comments or replies",
			},
			Metrics: Metrics{Relevance: 9, Reach: t.Engagement, Effort: 6},
		})
	}

	platforms := d.platforms()
	if len(platforms) == 0 {
		platforms = generatedPlatforms
	}
	result = append(result, Recommendation{
		Title:       "Optimize content formats for each platform",
		Description: "Different platforms favor different formats. Adapting content to each one increases engagement.",
		Steps: append(lo.Map(platforms, func(p string, _ int) string {
			return fmt.Sprintf("For %s, focus on %s", p, lo.ValueOr(platformFormats, p, "platform-specific content"))
		}), "Repurpose content across platforms while adapting to each format"),
		Metrics: Metrics{Relevance: 8, Reach: 25000, Effort: 7},
	})

	result = append(result, Recommendation{
		Title:       "Optimize posting schedule based on trend cycles",
		Description: "Posting when your audience is most active increases engagement and visibility.",
		Steps: []string{
			"Identify the peak engagement times of your audience",
			"Post early in a trend for thought leadership, at its peak for reach",
			"Keep a consistent posting frequency",
			"Test different posting times and compare performance",
		},
		Metrics: Metrics{Relevance: 7, Reach: 15000, Effort: 5},
	})

	busiest := topCounts(lo.CountValuesBy(d.posts, func(p Post) string { return p.Industry }), 1)
	if len(busiest) > 0 {
		result = append(result, Recommendation{
			Title:       fmt.Sprintf("Leverage '%s' industry trends", busiest[0]),
			Description: fmt.Sprintf("The %s industry shows the most activity. Connecting your brand to it taps into an engaged audience.", busiest[0]),
			Steps: []string{
				fmt.Sprintf("Identify connections between your content and %s", busiest[0]),
				"Partner with creators or brands in this industry",
				"Create content that bridges your niche with this industry",
			},
			Metrics: Metrics{Relevance: 8, Reach: 20000, Effort: 6},
		})
	}

	return result
}

func (d *Dataset) engagementRecommendations() []Recommendation {
	hashtags := topCounts(lo.CountValuesBy(d.posts, func(p Post) string { return p.Hashtag }), 3)
	if len(hashtags) == 0 {
		hashtags = []string{"#trending", "#viral", "#popular"}
	}

	return []Recommendation{
		{
			Title:       "Utilize trending hashtags strategically",
			Description: "Trending hashtags increase discoverability when they are relevant to the content.",
			Steps: []string{
				fmt.Sprintf("Include %s in your upcoming posts", strings.Join(hashtags, ", ")),
				"Use a mix of trending and niche hashtags",
				"Focus on the most relevant hashtags rather than many",
			},
			Metrics: Metrics{Relevance: 9, Reach: 30000, Effort: 3},
		},
		{
			Title:       "Join trending conversations authentically",
			Description: "Taking part in trending conversations increases visibility; authenticity keeps it from seeming opportunistic.",
			Steps: []string{
				"Monitor trending topics related to your industry",
				"Contribute meaningful insights to ongoing conversations",
				"Respond promptly to comments and mentions",
			},
			Metrics: Metrics{Relevance: 8, Reach: 15000, Effort: 7},
		},
		{
			Title:       "Leverage collaboration opportunities",
			Description: "Collaborating with other creators or brands opens new audiences.",
			Steps: []string{
				"Identify collaborators in your niche or adjacent niches",
				"Create co-branded content aligned with current trends",
				"Cross-promote content across your platforms",
			},
			Metrics: Metrics{Relevance: 7, Reach: 25000, Effort: 8},
		},
		{
			Title:       "Encourage user-generated content",
			Description: "User-generated content builds community and supplies authentic material.",
			Steps: []string{
				"Create branded hashtags for users to tag their content",
				"Run contests or challenges related to trending topics",
				"Feature user content on your channels with permission",
			},
			Metrics: Metrics{Relevance: 8, Reach: 20000, Effort: 6},
		},
	}
}

func (d *Dataset) platformRecommendations() []Recommendation {
	var result []Recommendation
	for _, p := range d.platforms() {
		if rec, ok := platformStrategies[p]; ok {
			rec.Metrics = Metrics{Relevance: 9, Reach: 30000, Effort: 7}
			result = append(result, rec)
		}
	}

	return append(result,
		Recommendation{
			Title:       "Implement a cross-platform strategy",
			Description: "Different platforms reach different audiences. A coordinated approach maximizes reach.",
			Steps: []string{
				"Keep branding consistent while adapting formats",
				"Coordinate messaging with a shared content calendar",
				"Drive traffic between your platforms",
			},
			Metrics: Metrics{Relevance: 8, Reach: 35000, Effort: 8},
		},
		Recommendation{
			Title:       "Explore emerging platform opportunities",
			Description: "Emerging platforms often offer less competition and higher organic reach.",
			Steps: []string{
				"Research the demographics of emerging platforms",
				"Test content formats on platforms with growing user bases",
				"Balance resources between established and emerging platforms",
			},
			Metrics: Metrics{Relevance: 6, Reach: 15000, Effort: 7},
		},
	)
}

// Custom tailors recommendations to an industry and platform selection.
func (d *Dataset) Custom(industry, platform string) []Recommendation {
	filtered := d.ByIndustry(industry).ByPlatform(platform)

	var result []Recommendation
	if rec, ok := industryTips[industry]; ok {
		rec.Metrics = Metrics{Relevance: 9, Reach: 25000, Effort: 6}
		result = append(result, rec)
	}

	if top := filtered.topTrendsByEngagement(1); len(top) > 0 {
		t := top[0]
		result = append(result, Recommendation{
			Title:       fmt.Sprintf("Capitalize on '%s' trend", t.Trend),
			Description: fmt.Sprintf("'%s' shows the most engagement for the selected filters.", t.Trend),
			Steps: []string{
				fmt.Sprintf("Research the origins and current state of '%s'", t.Trend),
				"Add a unique perspective to the trend",
				"Plan a multi-post series around it",
				"Watch engagement to decide when to pivot",
			},
			Metrics: Metrics{Relevance: 9, Reach: t.Engagement, Effort: 5},
		})
	}

	return result
}
