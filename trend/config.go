package trend

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/key"
)

// Validate checks the filter against the accepted platform, industry and range values.
func (f Filter) Validate() error {
	if f.Platform != "" && !lo.Contains(Platforms(), f.Platform) {
		return fmt.Errorf("unknown platform %q, expected one of: %s", f.Platform, strings.Join(Platforms(), ", "))
	}

	if f.Industry != "" && !lo.Contains(Industries(), f.Industry) {
		return fmt.Errorf("unknown industry %q, expected one of: %s", f.Industry, strings.Join(Industries(), ", "))
	}

	days := lo.Map(Ranges, func(r lo.Entry[string, int], _ int) int { return r.Value })
	if f.Days != 0 && !lo.Contains(days, f.Days) {
		return fmt.Errorf("unsupported date range of %d days, expected one of: %v", f.Days, days)
	}

	return nil
}

// Label describes the filter for headings: "All Platforms · Technology · 7 Days".
func (f Filter) Label() string {
	platform := lo.Ternary(f.Platform == "", AllPlatforms, f.Platform)
	industry := lo.Ternary(f.Industry == "", AllIndustries, f.Industry)

	period := fmt.Sprintf("%d Days", f.Days)
	if f.Days <= 0 {
		period = "All Time"
	} else if r, ok := lo.Find(Ranges, func(r lo.Entry[string, int]) bool { return r.Value == f.Days }); ok {
		period = r.Key
	}
	return strings.Join([]string{platform, industry, period}, " · ")
}

// FilterFromConfig reads the filter from the trends.* settings.
func FilterFromConfig() (Filter, error) {
	f := Filter{
		Platform: viper.GetString(key.TrendsPlatform),
		Industry: viper.GetString(key.TrendsIndustry),
		Days:     viper.GetInt(key.TrendsDays),
	}
	return f, f.Validate()
}

// FromConfig generates the dataset for the configured seed.
func FromConfig() *Dataset {
	return Generate(Options{Seed: uint64(viper.GetInt64(key.TrendsSeed))})
}
