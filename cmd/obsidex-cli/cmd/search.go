package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"obsidex/internal/application/commands"
	"obsidex/internal/domain"
)

var (
	searchTriggered bool
	searchLimit     int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search vaults and notes",
	Long: `Rank vault names, note titles and note paths against the query.

With --trigger the query behaves like a triggered launcher query: every vault
also offers to create a note named after the query.

Examples:
  obsidex-cli search todo
  obsidex-cli search --trigger "meeting notes"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rt := Runtime()

		query := domain.Query{Text: strings.Join(args, " "), Triggered: searchTriggered}
		search := commands.NewSearchCommand(rt.Catalog, rt.Indexer, query)
		search.Limit = searchLimit

		results, err := search.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%4d  %-30s  %s\n", r.Score, r.Item.Text(), r.Item.Subtext())
			fmt.Printf("      id: %s\n", r.Item.ID())
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&searchTriggered, "trigger", "t", false, "treat the query as triggered and suggest new notes")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of matches (0 for all)")
	rootCmd.AddCommand(searchCmd)
}
