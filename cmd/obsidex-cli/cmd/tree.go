package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"obsidex/internal/application/commands"
	"obsidex/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the notes of every vault as a tree",
	Long: `Display each vault with its notes nested under their directories.
Only directories holding notes are shown.

Example:
  obsidex-cli tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ix := Runtime().Indexer

		vaults, err := commands.NewListVaultsCommand(ix).Execute(ctx)
		if err != nil {
			return err
		}
		for _, v := range vaults {
			notes, err := commands.NewListNotesCommand(ix, v.ID()).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", v.Name(), v.Path())
			printTree(notes)
		}
		return nil
	},
}

// printTree prints notes sorted by path, emitting each directory once
func printTree(notes []*domain.Note) {
	var open []string
	for _, n := range notes {
		parts := strings.Split(n.RelPath(), "/")
		dirs := parts[:len(parts)-1]

		common := 0
		for common < len(open) && common < len(dirs) && open[common] == dirs[common] {
			common++
		}
		for depth := common; depth < len(dirs); depth++ {
			fmt.Printf("%s%s/\n", strings.Repeat("  ", depth+1), dirs[depth])
		}
		open = dirs

		fmt.Printf("%s%s\n", strings.Repeat("  ", len(dirs)+1), n.Title())
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
