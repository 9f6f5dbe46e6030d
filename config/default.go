package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/color"
	"github.com/trendspotter/trendspotter/constant"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/match"
	"github.com/trendspotter/trendspotter/style"
	"github.com/trendspotter/trendspotter/trend"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.CatalogPath, "", "Path to a TOML search catalog.\nEmpty uses catalog.toml in the config directory when present, otherwise the built-in catalog")
	register(key.PaletteMatchMode, match.Substring, "How the palette query is matched against entry labels.\nAvailable options are: "+strings.Join(match.Modes(), ", "))
	register(key.PaletteCaseSensitive, false, "Match the palette query case-sensitively")
	register(key.PaletteChordKey, "k", "Key that toggles the palette together with ctrl or meta")
	register(key.PaletteOpenOnMount, false, "Open the palette as soon as the interface starts")
	register(key.TrendsSeed, 2025, "Seed of the generated trend dataset. The same seed always yields the same figures")
	register(key.TrendsPlatform, trend.AllPlatforms, "Platform shown by the analytics.\nAvailable options are: "+strings.Join(trend.Platforms(), ", "))
	register(key.TrendsIndustry, trend.AllIndustries, "Industry shown by the analytics.\nAvailable options are: "+strings.Join(trend.Industries(), ", "))
	register(key.TrendsDays, 7, "Date range of the analytics in days.\nAvailable options are: 1, 3, 7, 14, 30")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUINotificationLifetime, 3, "Seconds a notification stays visible")
	register(key.TUIShowTargets, true, "Show navigation targets next to palette entries")
	register(key.TUIMouse, true, "Enable mouse support (click the search trigger or navbar buttons)")
	register(key.TUIOpenURLs, true, "Open absolute URLs with the system handler when selected")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.MiniPageSize, 10, "Number of entries shown at once in mini mode")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"blue":     style.Fg(color.Blue),
	"purple":   style.Fg(color.Purple),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
