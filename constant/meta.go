// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "trendspotter"

	// Brand is the product name shown in the navigation bar.
	Brand = "TrendSpotter"

	// BrandBadge is the short tag rendered next to the brand.
	BrandBadge = "AI"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
