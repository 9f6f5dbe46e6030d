// Package cmd implements the command-line interface for trendspotter.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/color"
	"github.com/trendspotter/trendspotter/constant"
	"github.com/trendspotter/trendspotter/icon"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/log"
	"github.com/trendspotter/trendspotter/match"
	"github.com/trendspotter/trendspotter/style"
	"github.com/trendspotter/trendspotter/trend"
	"github.com/trendspotter/trendspotter/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("catalog", "C", "", "Load the search catalog from this TOML or JSON file")
	lo.Must0(viper.BindPFlag(key.CatalogPath, rootCmd.PersistentFlags().Lookup("catalog")))

	rootCmd.PersistentFlags().StringP("match", "m", "", "Match mode for palette queries")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("match", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return match.Modes(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.PaletteMatchMode, rootCmd.PersistentFlags().Lookup("match")))

	rootCmd.PersistentFlags().Bool("case-sensitive", false, "Match palette queries case-sensitively")
	lo.Must0(viper.BindPFlag(key.PaletteCaseSensitive, rootCmd.PersistentFlags().Lookup("case-sensitive")))

	rootCmd.Flags().BoolP("open", "o", false, "Open the palette on start")
	lo.Must0(viper.BindPFlag(key.PaletteOpenOnMount, rootCmd.Flags().Lookup("open")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Social media trend navigator with a ctrl+k command palette",
	Long: constant.AsciiArtLogo + "\n\n" +
		style.New().Italic(true).Foreground(color.HiBlue).Render("    - Analyze emerging trends and jump anywhere with ctrl+k"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		cat, err := catalog.Resolve()
		handleErr(err)

		matcher, err := match.New(viper.GetString(key.PaletteMatchMode), viper.GetBool(key.PaletteCaseSensitive))
		handleErr(err)

		filter, err := trend.FilterFromConfig()
		handleErr(err)

		handleErr(tui.Run(&tui.Options{
			Catalog:     cat,
			Matcher:     matcher,
			ChordKey:    viper.GetString(key.PaletteChordKey),
			OpenOnMount: viper.GetBool(key.PaletteOpenOnMount),
			Trends:      trend.FromConfig(),
			Filter:      filter,
		}))
	},
}

// Execute wires colored help and runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiBlue + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
