package catalog

import "github.com/trendspotter/trendspotter/match"

// Result is a filtered view of a catalog. Categories without a matching entry are absent.
type Result struct {
	Query  string
	Groups []Category
}

// Hit is one entry of a Result together with its heading.
type Hit struct {
	Category string
	Entry    Entry
}

// Filter keeps, per category, the entries whose label satisfies m.
// Catalog order is preserved at both levels.
func (c *Catalog) Filter(m match.Matcher, query string) Result {
	result := Result{Query: query}

	for _, cat := range c.categories {
		var kept []Entry
		for _, e := range cat.Items {
			if m.Match(query, e.Label) {
				kept = append(kept, e)
			}
		}

		if len(kept) > 0 {
			result.Groups = append(result.Groups, Category{Name: cat.Name, Items: kept})
		}
	}

	return result
}

// Empty reports whether nothing matched; the palette shows its "no results" state then.
func (r Result) Empty() bool {
	return len(r.Groups) == 0
}

// Len is the number of matching entries.
func (r Result) Len() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Items)
	}
	return n
}

// Hits flattens the result in display order.
func (r Result) Hits() []Hit {
	hits := make([]Hit, 0, r.Len())
	for _, g := range r.Groups {
		for _, e := range g.Items {
			hits = append(hits, Hit{Category: g.Name, Entry: e})
		}
	}
	return hits
}
