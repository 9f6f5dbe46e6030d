package trend

import (
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Sentiment is the polarity class of a post.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Neutral  Sentiment = "Neutral"
	Negative Sentiment = "Negative"
)

// Sentiments in display order.
func Sentiments() []Sentiment {
	return []Sentiment{Positive, Neutral, Negative}
}

// compound scores at or beyond this magnitude are not neutral
const polarityThreshold = 0.05

var lexicon = map[string]float64{
	"love":          3.2,
	"loving":        2.9,
	"best":          3.2,
	"great":         3.1,
	"amazing":       2.8,
	"awesome":       3.1,
	"exciting":      2.2,
	"growing":       1.5,
	"impressive":    2.3,
	"inspiring":     2.4,
	"tired":         -1.9,
	"overhyped":     -1.8,
	"disappointed":  -1.9,
	"disappointing": -2.2,
	"boring":        -1.3,
	"worst":         -3.1,
	"hate":          -2.7,
	"annoying":      -1.7,
	"problem":       -1.7,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "isn't": true, "don't": true,
	"doesn't": true, "can't": true, "won't": true, "without": true,
}

var stopwords = map[string]bool{
	"the": true, "and": true, "is": true, "in": true, "to": true, "for": true,
	"of": true, "that": true, "this": true, "a": true, "an": true,
}

func tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r == '\'' || r == '#' || r == '-' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9'))
	})
}

// Score returns a compound polarity in [-1, 1]. Word valences are summed,
// flipped when one of the three preceding words is a negation, and
// normalized as s / sqrt(s*s + 15).
func Score(text string) float64 {
	words := tokens(text)

	var sum float64
	for i, w := range words {
		v, ok := lexicon[w]
		if !ok {
			continue
		}
		for j := max(0, i-3); j < i; j++ {
			if negations[words[j]] {
				v = -v * 0.74
				break
			}
		}
		sum += v
	}

	return sum / math.Sqrt(sum*sum+15)
}

// Classify maps text to a sentiment class. Empty text is neutral.
func Classify(text string) Sentiment {
	switch score := Score(text); {
	case score >= polarityThreshold:
		return Positive
	case score <= -polarityThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Share is the size of one sentiment class.
type Share struct {
	Sentiment  Sentiment `json:"sentiment"`
	Count      int       `json:"count"`
	Percentage float64   `json:"percentage"`
}

func shares(posts []Post) []Share {
	counts := lo.CountValuesBy(posts, func(p Post) Sentiment { return Classify(p.Content) })
	return lo.Map(Sentiments(), func(s Sentiment, _ int) Share {
		return Share{Sentiment: s, Count: counts[s], Percentage: percent(counts[s], len(posts))}
	})
}

// Sentiment returns the distribution over Positive, Neutral and Negative.
func (d *Dataset) Sentiment() []Share {
	return shares(d.posts)
}

// IndustrySentiment is the sentiment distribution within one industry.
type IndustrySentiment struct {
	Industry string  `json:"industry"`
	Shares   []Share `json:"shares"`
}

// SentimentByIndustry breaks the distribution down per industry, by name.
func (d *Dataset) SentimentByIndustry() []IndustrySentiment {
	groups := lo.GroupBy(d.posts, func(p Post) string { return p.Industry })
	result := lo.MapToSlice(groups, func(name string, posts []Post) IndustrySentiment {
		return IndustrySentiment{Industry: name, Shares: shares(posts)}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Industry < result[j].Industry })
	return result
}

// Keywords returns up to limit of the most frequent words per sentiment class.
// Words shorter than four letters and stopwords are skipped; ties are alphabetical.
func (d *Dataset) Keywords(limit int) map[Sentiment][]string {
	counts := map[Sentiment]map[string]int{}
	for _, s := range Sentiments() {
		counts[s] = map[string]int{}
	}

	for _, p := range d.posts {
		s := Classify(p.Content)
		for _, w := range tokens(p.Content) {
			if len(w) > 3 && !stopwords[w] {
				counts[s][w]++
			}
		}
	}

	return lo.MapValues(counts, func(c map[string]int, _ Sentiment) []string {
		words := lo.Keys(c)
		sort.Slice(words, func(i, j int) bool {
			if c[words[i]] != c[words[j]] {
				return c[words[i]] > c[words[j]]
			}
			return words[i] < words[j]
		})
		if len(words) > limit {
			words = words[:limit]
		}
		return words
	})
}

// TopBySentiment ranks trends by the number of posts of one sentiment class.
func (d *Dataset) TopBySentiment(s Sentiment, limit int) []lo.Entry[string, int] {
	counts := lo.CountValuesBy(
		lo.Filter(d.posts, func(p Post, _ int) bool { return Classify(p.Content) == s }),
		func(p Post) string { return p.Trend },
	)

	result := lo.Entries(counts)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Value != result[j].Value {
			return result[i].Value > result[j].Value
		}
		return result[i].Key < result[j].Key
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
