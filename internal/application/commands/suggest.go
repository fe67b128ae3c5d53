package commands

import (
	"context"

	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// SuggestCommand offers to create a note named after the query in every vault.
// Only triggered queries with non-blank text produce suggestions.
type SuggestCommand struct {
	vaults ports.VaultLister
	Query  domain.Query
}

// NewSuggestCommand creates a new SuggestCommand
func NewSuggestCommand(vaults ports.VaultLister, query domain.Query) *SuggestCommand {
	return &SuggestCommand{
		vaults: vaults,
		Query:  query,
	}
}

// Execute returns one suggestion per vault, all with score 0.
// Suggestions are built per call and never enter the index.
func (c *SuggestCommand) Execute(ctx context.Context) ([]domain.RankedItem, error) {
	name := c.Query.Trimmed()
	if !c.Query.Triggered || name == "" {
		return nil, nil
	}

	vaults := c.vaults.Vaults()
	out := make([]domain.RankedItem, 0, len(vaults))
	for _, v := range vaults {
		out = append(out, domain.RankedItem{
			Item:  &domain.NoteSuggestion{Vault: v, Name: name},
			Score: 0,
		})
	}
	return out, nil
}
