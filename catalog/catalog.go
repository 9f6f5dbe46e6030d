// Package catalog holds the static, categorized list of entries searchable from the palette.
//
// A Catalog is built once and never mutated afterwards. Accessors hand out
// copies so callers cannot alter the shared snapshot.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Entry is a single searchable item.
type Entry struct {
	Label  string `toml:"label" json:"label" jsonschema:"required,minLength=1,description=Text shown and matched in the palette"`
	Target string `toml:"target" json:"target" jsonschema:"required,description=Route (/path) or absolute URL navigated to on selection"`
}

// Category is a display heading and its ordered entries.
type Category struct {
	Name  string  `toml:"name" json:"name" jsonschema:"required,minLength=1,description=Unique heading"`
	Items []Entry `toml:"item" json:"item"`
}

// Catalog is an ordered sequence of categories with unique names.
type Catalog struct {
	categories []Category
}

// ErrDuplicateCategory is returned when two categories share a name.
var ErrDuplicateCategory = errors.New("duplicate category")

// New validates categories and takes a private copy of them.
func New(categories []Category) (*Catalog, error) {
	seen := make(map[string]struct{}, len(categories))

	for i, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category #%d: empty name", i+1)
		}
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.Name)
		}
		seen[c.Name] = struct{}{}

		for j, e := range c.Items {
			if e.Label == "" {
				return nil, fmt.Errorf("category %s: entry #%d: empty label", c.Name, j+1)
			}
		}
	}

	return &Catalog{categories: clone(categories)}, nil
}

// MustNew is New for catalogs known to be valid.
func MustNew(categories []Category) *Catalog {
	return lo.Must(New(categories))
}

// Categories returns a copy of the categories in order.
func (c *Catalog) Categories() []Category {
	return clone(c.categories)
}

// Category looks up a category by name.
func (c *Catalog) Category(name string) (Category, bool) {
	found, ok := lo.Find(c.categories, func(cat Category) bool {
		return cat.Name == name
	})
	if !ok {
		return Category{}, false
	}
	return clone([]Category{found})[0], true
}

// Len is the total number of entries across every category.
func (c *Catalog) Len() int {
	return lo.SumBy(c.categories, func(cat Category) int {
		return len(cat.Items)
	})
}

// Targets lists every distinct navigation target in catalog order.
func (c *Catalog) Targets() []string {
	return lo.Uniq(lo.FlatMap(c.categories, func(cat Category, _ int) []string {
		return lo.Map(cat.Items, func(e Entry, _ int) string {
			return e.Target
		})
	}))
}

// Lookup returns the first entry whose target equals target.
func (c *Catalog) Lookup(target string) (Entry, bool) {
	for _, cat := range c.categories {
		if e, ok := lo.Find(cat.Items, func(e Entry) bool { return e.Target == target }); ok {
			return e, true
		}
	}
	return Entry{}, false
}

func clone(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Items: append([]Entry(nil), c.Items...)}
	}
	return out
}
