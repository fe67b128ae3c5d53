package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the index current until interrupted",
	Long: `Index every vault, then rebuild whenever a vault directory changes.
Each rebuild re-reads obsidian.json, so vaults added or removed in Obsidian are
picked up on the next change inside any watched directory. Combine with --mirror
(or index_db in the settings file) to keep a sqlite copy of the index for other tools.

Example:
  obsidex-cli watch --mirror`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotWatch: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt := Runtime()
		if rt.Mirror != nil {
			fmt.Printf("mirroring to %s\n", rt.Mirror.Path())
		}
		return rt.Indexer.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
