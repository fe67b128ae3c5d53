package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"obsidex/internal/application/commands"
	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// RegisterReadTools adds the query tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, index ports.IndexReader, vaults ports.VaultLister) {
	s.AddTool(listVaultsTool(), listVaultsHandler(vaults))
	s.AddTool(listNotesTool(), listNotesHandler(vaults))
	s.AddTool(searchTool(), searchHandler(index, vaults))
	s.AddTool(suggestTool(), suggestHandler(vaults))
}

// --- list_vaults ---

func listVaultsTool() mcp.Tool {
	return mcp.NewTool("list_vaults",
		mcp.WithDescription("List the Obsidian vaults registered in obsidian.json, with their IDs and root paths."),
	)
}

func listVaultsHandler(vaults ports.VaultLister) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := commands.NewListVaultsCommand(vaults).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(list, func(v *domain.Vault) string {
			return fmt.Sprintf("%s  %s  %s", v.ID(), v.Name(), v.Path())
		})
	}
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List every indexed note, optionally only those of one vault."),
		mcp.WithString("vault_id",
			mcp.Description("Vault ID from list_vaults. Omit to list notes of all vaults."),
		),
	)
}

func listNotesHandler(vaults ports.VaultLister) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		vaultID := req.GetString("vault_id", "")

		notes, err := commands.NewListNotesCommand(vaults, vaultID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(notes, func(n *domain.Note) string {
			return fmt.Sprintf("%s  %s", n.Vault().Name(), n.RelPath())
		})
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search vault names, note titles and note paths. Returns ranked items with their IDs for open_item."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithBoolean("triggered",
			mcp.Description("Treat the query as explicitly triggered: also offer to create a note named after it in every vault."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of index matches (default 20)"),
		),
	)
}

func searchHandler(index ports.IndexReader, vaults ports.VaultLister) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		cmd := commands.NewSearchCommand(index, vaults, domain.Query{
			Text:      query,
			Triggered: req.GetBool("triggered", false),
		})
		cmd.Limit = req.GetInt("limit", 20)

		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		return formatEntities(results, formatRanked)
	}
}

// --- suggest_new ---

func suggestTool() mcp.Tool {
	return mcp.NewTool("suggest_new",
		mcp.WithDescription("Preview the create-note suggestions for a name: one per vault."),
		mcp.WithString("name",
			mcp.Description("Name of the note to create, without .md"),
			mcp.Required(),
		),
	)
}

func suggestHandler(vaults ports.VaultLister) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")

		results, err := commands.NewSuggestCommand(vaults, domain.Query{Text: name, Triggered: true}).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, formatRanked)
	}
}

func formatRanked(r domain.RankedItem) string {
	return fmt.Sprintf("%4d  %s  %s  [%s]", r.Score, r.Item.Text(), r.Item.Subtext(), r.Item.ID())
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
