package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"obsidex/internal/application/commands"
	"obsidex/internal/ports"
)

// RegisterWriteTools adds the tools that hand actions to Obsidian.
func RegisterWriteTools(s *server.MCPServer, index ports.IndexReader, vaults ports.VaultLister, opener ports.Opener) {
	s.AddTool(openTool(), openHandler(index, opener))
	s.AddTool(createNoteTool(), createNoteHandler(vaults, opener))
}

// --- open_item ---

func openTool() mcp.Tool {
	return mcp.NewTool("open_item",
		mcp.WithDescription("Run an action of an indexed vault or note. Vaults offer open, search and openfm; notes offer open."),
		mcp.WithString("item_id",
			mcp.Description("Item ID as printed by search"),
			mcp.Required(),
		),
		mcp.WithString("action",
			mcp.Description("Action ID. Omit to run the default action (open)."),
		),
	)
}

func openHandler(index ports.IndexReader, opener ports.Opener) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID := req.GetString("item_id", "")
		actionID := req.GetString("action", "")

		action, err := commands.NewInvokeCommand(index, opener, itemID, actionID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if uri, err := opener.URI(action); err == nil {
			return mcp.NewToolResultText(fmt.Sprintf("Opened %s", uri)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Revealed %s", action.Path)), nil
	}
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Ask Obsidian to create a new note in a vault and open it."),
		mcp.WithString("vault_id",
			mcp.Description("Vault ID from list_vaults"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Note name relative to the vault root, e.g. \"todo\" or \"projects/plan\""),
			mcp.Required(),
		),
	)
}

func createNoteHandler(vaults ports.VaultLister, opener ports.Opener) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		vaultID := req.GetString("vault_id", "")
		name := req.GetString("name", "")

		result, err := commands.NewCreateNoteCommand(vaults, opener, vaultID, name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
