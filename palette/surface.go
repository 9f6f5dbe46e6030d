package palette

import "github.com/trendspotter/trendspotter/catalog"

// Surface is everything the overlay needs from the controller. The overlay
// keeps its own query text and calls back only through OnOpenChange and OnSelect.
type Surface struct {
	IsOpen       bool
	OnOpenChange func(open bool)
	Results      catalog.Result
	OnSelect     func(entry catalog.Entry)
}

// Surface snapshots the controller for an overlay currently showing query.
func (c *Controller) Surface(query string) Surface {
	return Surface{
		IsOpen:       c.IsOpen(),
		OnOpenChange: c.SetOpen,
		Results:      c.Filter(query),
		OnSelect:     c.Select,
	}
}
