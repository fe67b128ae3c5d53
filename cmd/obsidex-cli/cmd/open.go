package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"obsidex/internal/application/commands"
	"obsidex/internal/domain"
)

var openAction string

var openCmd = &cobra.Command{
	Use:   "open <item-id>",
	Short: "Run an action of a vault or note",
	Long: `Open a vault or note in Obsidian. Item ids are printed by search.

Vault actions: open, search, openfm (show in file manager).
Note actions: open.

Examples:
  obsidex-cli open /home/u/worknotes/b.md
  obsidex-cli open --action search /home/u/work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rt := Runtime()

		action, err := commands.NewInvokeCommand(rt.Catalog, rt.Opener, args[0], openAction).Execute(ctx)
		if err != nil {
			return err
		}
		printRan(rt.Opener.URI, action)
		return nil
	},
}

var uriCmd = &cobra.Command{
	Use:   "uri <item-id>",
	Short: "Print the obsidian:// URI of an action without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := Runtime()

		item, ok := rt.Catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown item: %s", args[0])
		}
		action, err := commands.ResolveAction(item, openAction)
		if err != nil {
			return err
		}
		uri, err := rt.Opener.URI(action)
		if err != nil {
			return err
		}
		fmt.Println(uri)
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new <vault-id> <name>",
	Short: "Create a note through Obsidian",
	Long: `Ask Obsidian to create <name>.md in a vault and open it.
A trailing ".md" in the name is ignored.

Example:
  obsidex-cli new 8f3c2a1b "meeting notes"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rt := Runtime()

		result, err := commands.NewCreateNoteCommand(rt.Indexer, rt.Opener, args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func printRan(uri func(domain.Action) (string, error), action domain.Action) {
	if action.Kind == domain.ActionReveal {
		fmt.Printf("Revealed %s\n", action.Path)
		return
	}
	if u, err := uri(action); err == nil {
		fmt.Printf("Opened %s\n", u)
	}
}

func init() {
	openCmd.Flags().StringVarP(&openAction, "action", "a", "", "action id (default: the item's first action)")
	uriCmd.Flags().StringVarP(&openAction, "action", "a", "", "action id (default: the item's first action)")
	rootCmd.AddCommand(openCmd, uriCmd, newCmd)
}
