package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"obsidex/internal/adapters/sqlite"
)

var (
	queryDB    string
	queryLimit int
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Search the sqlite mirror written by watch",
	Long: `Search the index mirror without scanning any vault. The mirror is only
as fresh as the last rebuild of a running "obsidex-cli watch --mirror".

Examples:
  obsidex-cli query todo
  obsidex-cli query --db ~/index.db "meeting"`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: map[string]string{annotNoIndex: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := queryDB
		if path == "" {
			path = settings.IndexDB
		}

		idx := sqlite.NewIndex(logger)
		if err := idx.Open(path); err != nil {
			return err
		}
		defer idx.Close()

		gen, err := idx.Generation()
		if err != nil {
			return err
		}
		if gen == 0 {
			return fmt.Errorf("mirror %s is empty: run obsidex-cli watch --mirror first", idx.Path())
		}

		records, err := idx.Search(strings.Join(args, " "), queryLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, r := range records {
			fmt.Printf("[%s] %-30s  %s\n", r.Kind, r.Text, r.Subtext)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryDB, "db", "", "mirror database (default index_db or the data directory)")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 20, "maximum number of results")
	rootCmd.AddCommand(queryCmd)
}
