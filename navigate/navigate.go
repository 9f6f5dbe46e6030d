// Package navigate is the in-app router behind palette selections and navbar buttons.
package navigate

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/trendspotter/trendspotter/log"
	"github.com/trendspotter/trendspotter/open"
	"github.com/trendspotter/trendspotter/util"
)

// Home is the route the router starts on.
const Home = "/"

// Router tracks the current page. Route targets replace the current page and
// push the previous one on a history stack; absolute URLs are opened
// externally and leave the page unchanged.
type Router struct {
	current string
	history util.Stack[string]
	known   []string

	// External receives absolute URLs. Nil drops them.
	External func(url string) error

	// OnExternalError is told about failures of External.
	OnExternalError func(err error)
}

// NewRouter starts on Home. known lists the routes that render a page.
func NewRouter(known []string) *Router {
	return &Router{
		current:  Home,
		known:    known,
		External: open.Start,
	}
}

// Navigate implements the palette navigation collaborator.
func (r *Router) Navigate(target string) {
	if open.IsURL(target) {
		log.Infof("opening %s externally", target)
		if r.External == nil {
			return
		}
		if err := r.External(target); err != nil {
			log.Error(err)
			if r.OnExternalError != nil {
				r.OnExternalError(err)
			}
		}
		return
	}

	if target == r.current {
		return
	}

	r.history.Push(r.current)
	r.current = target
	log.Infof("navigated to %s", target)
}

// Back returns to the previous page. It reports false when there is none.
func (r *Router) Back() bool {
	if r.history.Len() == 0 {
		return false
	}
	r.current = r.history.Pop()
	return true
}

// Current is the route being displayed.
func (r *Router) Current() string {
	return r.current
}

// Depth is the number of pages Back can return through.
func (r *Router) Depth() int {
	return r.history.Len()
}

// Known reports whether the current route renders a page.
func (r *Router) Known() bool {
	return lo.Contains(r.known, r.current)
}

// Suggest returns the closest known route to the current one when it is unknown.
func (r *Router) Suggest() mo.Option[string] {
	if r.Known() || len(r.known) == 0 {
		return mo.None[string]()
	}

	target := strings.ToLower(r.current)
	closest := lo.MinBy(r.known, func(a, b string) bool {
		return levenshtein.Distance(target, a) < levenshtein.Distance(target, b)
	})

	// Only suggest when at least half of the route survives.
	if levenshtein.Distance(target, closest) > util.Max(len(closest), len(target))/2 {
		return mo.None[string]()
	}
	return mo.Some(closest)
}
