package style

import "github.com/trendspotter/trendspotter/color"

// Semantic mappings over the brand colors.
var (
	AccentColor  = color.Brand
	BadgeColor   = color.Badge
	TextColor    = color.Highlight
	FaintColor   = color.Slate500
	MutedColor   = color.Slate400
	BorderColor  = color.Slate200
	SuccessColor = color.Green
	ErrorColor   = color.Red
)
