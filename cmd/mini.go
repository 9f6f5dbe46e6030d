package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("once", "1", false, "Exit after the first selection")
}

// miniCmd runs the palette as a sequence of prompts.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Search the catalog with line prompts instead of the full-screen interface",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Resolve()
		handleErr(err)

		handleErr(mini.Run(&mini.Options{
			Catalog: cat,
			Once:    lo.Must(cmd.Flags().GetBool("once")),
			Out:     cmd.OutOrStdout(),
		}))
	},
}
