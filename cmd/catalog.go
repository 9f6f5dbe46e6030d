package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/catalog"
	"github.com/trendspotter/trendspotter/color"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/palette"
	"github.com/trendspotter/trendspotter/style"
	"github.com/trendspotter/trendspotter/util"
	"github.com/trendspotter/trendspotter/where"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and search the catalog behind the palette",
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogListCmd.Flags().BoolP("json", "j", false, "Print the catalog as JSON")
	catalogListCmd.SetOut(os.Stdout)
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every category and entry",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Resolve()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(cat.File()))
			return
		}

		printGroups(cmd, cat.Categories())
	},
}

func init() {
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogSearchCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	catalogSearchCmd.SetOut(os.Stdout)
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Filter the catalog the same way the palette does",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Resolve()
		handleErr(err)

		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		result, err := search(cat, query)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(searchOutput{
				Query:  result.Query,
				Mode:   viper.GetString(key.PaletteMatchMode),
				Result: lo.Ternary(result.Empty(), []catalog.Category{}, result.Groups),
			}))
			return
		}

		if result.Empty() {
			cmd.Println(style.Faint("No results found."))
			return
		}

		printGroups(cmd, result.Groups)
		cmd.Println()
		cmd.Println(style.Faint(util.Quantify(result.Len(), "result", "results")))
	},
}

// search filters cat the way the palette does, with the configured matcher
// and the query trimmed.
func search(cat *catalog.Catalog, query string) (catalog.Result, error) {
	controller, err := palette.FromConfig(cat, nil, nil)
	if err != nil {
		return catalog.Result{}, err
	}
	return controller.Filter(query), nil
}

type searchOutput struct {
	Query  string             `json:"query"`
	Mode   string             `json:"mode"`
	Result []catalog.Category `json:"result"`
}

func init() {
	catalogCmd.AddCommand(catalogSchemaCmd)
	catalogSchemaCmd.SetOut(os.Stdout)
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of a catalog file",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(catalog.Schema()))
	},
}

func init() {
	catalogCmd.AddCommand(catalogPathCmd)
	catalogPathCmd.SetOut(os.Stdout)
}

var catalogPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the catalog file that would be loaded",
	Run: func(cmd *cobra.Command, args []string) {
		if path := viper.GetString(key.CatalogPath); path != "" {
			cmd.Println(path)
			return
		}
		cmd.Println(where.Catalog())
	},
}

func printGroups(cmd *cobra.Command, groups []catalog.Category) {
	headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

	for i, g := range groups {
		cmd.Println(headerStyle(g.Name))
		for _, e := range g.Items {
			cmd.Println(fmt.Sprintf("  %s %s", e.Label, style.Fg(color.Yellow)(e.Target)))
		}
		if i < len(groups)-1 {
			cmd.Println()
		}
	}
}
