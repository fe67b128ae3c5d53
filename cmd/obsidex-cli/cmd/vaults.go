package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"obsidex/internal/application/commands"
)

var vaultsCmd = &cobra.Command{
	Use:   "vaults",
	Short: "List the vaults registered in obsidian.json",
	Long: `List every vault of the configuration with its identifier and root path.
Vaults whose root does not exist are listed too.

Example:
  obsidex-cli vaults`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		vaults, err := commands.NewListVaultsCommand(Runtime().Indexer).Execute(ctx)
		if err != nil {
			return err
		}

		if len(vaults) == 0 {
			fmt.Println("No vaults configured")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, v := range vaults {
			fmt.Fprintf(w, "%s\t%s\t%s\n", v.ID(), v.Name(), v.Path())
		}
		return w.Flush()
	},
}

var notesVault string

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List indexed notes",
	Long: `List the markdown notes of every vault, or of one vault with --vault.

Examples:
  obsidex-cli notes
  obsidex-cli notes --vault 8f3c2a1b`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notes, err := commands.NewListNotesCommand(Runtime().Indexer, notesVault).Execute(ctx)
		if err != nil {
			return err
		}

		for _, n := range notes {
			fmt.Printf("%s\t%s\n", n.Vault().Name(), n.RelPath())
		}
		return nil
	},
}

func init() {
	notesCmd.Flags().StringVar(&notesVault, "vault", "", "only list notes of this vault id")
	rootCmd.AddCommand(vaultsCmd, notesCmd)
}
