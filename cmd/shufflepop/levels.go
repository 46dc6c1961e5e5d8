package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shufflepop/internal/config"
	"github.com/vovakirdan/shufflepop/internal/games/shufflepop"
)

var flagDump bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level catalog",
	Long: `Print every level with its tile odds and example tiles.

With --dump, print the complete configuration in effect as YAML instead;
the output is a valid --config file.

Examples:
  shufflepop levels
  shufflepop levels --dump > my-shufflepop.yaml
  shufflepop levels --config ./my-shufflepop.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagDump {
			data, err := config.Marshal(loadedConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		printCatalog(cmd.OutOrStdout(), shufflepop.New().Catalog())
		return nil
	},
}

func init() {
	levelsCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the configuration as YAML")
}

var kindColumns = []shufflepop.Kind{
	shufflepop.KindSuite,
	shufflepop.KindStar,
	shufflepop.KindMovement,
	shufflepop.KindSpeed,
	shufflepop.KindDie,
}

// printCatalog writes one line per level with the odds of each tile kind.
func printCatalog(w io.Writer, c shufflepop.Catalog) {
	fmt.Fprintf(w, "  %-5s  %-12s", "Level", "Title")
	for _, k := range kindColumns {
		fmt.Fprintf(w, "  %8s", k)
	}
	fmt.Fprintf(w, "  %s\n", "Examples")

	for i := 1; i <= c.LastLevel(); i++ {
		msg := c.Message(i)
		fmt.Fprintf(w, "  %-5d  %-12s", i, msg.Title)
		total := float64(msg.Bag.Total())
		for _, k := range kindColumns {
			fmt.Fprintf(w, "  %7.1f%%", 100*float64(msg.Bag.Weight(k))/total)
		}
		fmt.Fprintf(w, "  %s\n", exampleCodes(msg.Examples))
	}
}

func exampleCodes(row shufflepop.Row) string {
	codes := make([]string, 0, len(row))
	for _, t := range row {
		if t.IsGone() {
			continue
		}
		codes = append(codes, t.Code())
	}
	if len(codes) == 0 {
		return "-"
	}
	return strings.Join(codes, " ")
}
