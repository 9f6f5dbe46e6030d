// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 20

// Catalog Source - these keys select where the searchable catalog is loaded from.
const (
	CatalogPath = "catalog.path"
)

// Palette Behaviour - these keys govern matching and the global chord.
const (
	PaletteMatchMode     = "palette.match_mode"
	PaletteCaseSensitive = "palette.case_sensitive"
	PaletteChordKey      = "palette.chord_key"
	PaletteOpenOnMount   = "palette.open_on_mount"
)

// Trend Analytics - these keys select the dataset and the dashboard filters.
const (
	TrendsSeed     = "trends.seed"
	TrendsPlatform = "trends.platform"
	TrendsIndustry = "trends.industry"
	TrendsDays     = "trends.days"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling and logic.
const (
	TUISearchPromptString   = "tui.search_prompt"
	TUINotificationLifetime = "tui.notification_lifetime"
	TUIShowTargets          = "tui.show_targets"
	TUIMouse                = "tui.mouse"
	TUIOpenURLs             = "tui.open_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)

// Mini Mode - these keys configure the prompt-driven palette.
const (
	MiniPageSize = "mini.page_size"
)
