// Package match decides whether a palette query selects an entry label.
//
// Every rule is a pure function of (query, label), so filtering with it is
// deterministic and keeps the input order.
package match

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Supported matching modes.
const (
	Substring = "substring"
	Prefix    = "prefix"
	Word      = "word"
	Fuzzy     = "fuzzy"
)

// Modes lists the accepted values of the palette.match_mode setting.
func Modes() []string {
	return []string{Substring, Prefix, Word, Fuzzy}
}

// Matcher reports whether query selects label.
type Matcher interface {
	Match(query, label string) bool
}

// Func adapts a plain function to Matcher.
type Func func(query, label string) bool

func (f Func) Match(query, label string) bool {
	return f(query, label)
}

// New builds the matcher for mode. An empty query always matches.
func New(mode string, caseSensitive bool) (Matcher, error) {
	var rule Func

	switch mode {
	case Substring, "":
		rule = folded(caseSensitive, strings.Contains)
	case Prefix:
		rule = folded(caseSensitive, strings.HasPrefix)
	case Word:
		rule = folded(caseSensitive, wordPrefix)
	case Fuzzy:
		if caseSensitive {
			rule = fuzzy.Match
		} else {
			rule = fuzzy.MatchFold
		}
	default:
		return nil, fmt.Errorf("unknown match mode %q, expected one of %s", mode, strings.Join(Modes(), ", "))
	}

	return Func(func(query, label string) bool {
		if query == "" {
			return true
		}
		return rule(query, label)
	}), nil
}

// MustNew is New for modes known to be valid.
func MustNew(mode string, caseSensitive bool) Matcher {
	m, err := New(mode, caseSensitive)
	if err != nil {
		panic(err)
	}
	return m
}

// folded turns a (haystack, needle) predicate into a (query, label) rule,
// lower-casing both sides unless caseSensitive is set.
func folded(caseSensitive bool, pred func(s, substr string) bool) Func {
	return func(query, label string) bool {
		if !caseSensitive {
			query, label = strings.ToLower(query), strings.ToLower(label)
		}
		return pred(label, query)
	}
}

func wordPrefix(label, query string) bool {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if strings.HasPrefix(w, query) {
			return true
		}
	}
	return false
}
