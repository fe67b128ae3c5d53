package commands

import (
	"context"
	"fmt"
	"sort"

	"obsidex/internal/application"
	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// ListVaultsCommand lists the vaults of the last rebuild
type ListVaultsCommand struct {
	vaults ports.VaultLister
}

// NewListVaultsCommand creates a new ListVaultsCommand
func NewListVaultsCommand(vaults ports.VaultLister) *ListVaultsCommand {
	return &ListVaultsCommand{vaults: vaults}
}

// Execute runs the list vaults command
func (c *ListVaultsCommand) Execute(ctx context.Context) ([]*domain.Vault, error) {
	return c.vaults.Vaults(), nil
}

// ListNotesCommand lists notes, optionally restricted to one vault
type ListNotesCommand struct {
	vaults  ports.VaultLister
	VaultID string
}

// NewListNotesCommand creates a new ListNotesCommand
func NewListNotesCommand(vaults ports.VaultLister, vaultID string) *ListNotesCommand {
	return &ListNotesCommand{
		vaults:  vaults,
		VaultID: vaultID,
	}
}

// Execute returns notes sorted by vault name, then relative path
func (c *ListNotesCommand) Execute(ctx context.Context) ([]*domain.Note, error) {
	if c.VaultID != "" && findVault(c.vaults.Vaults(), c.VaultID) == nil {
		return nil, fmt.Errorf("%w: %s", application.ErrUnknownVault, c.VaultID)
	}

	var notes []*domain.Note
	for _, n := range c.vaults.Notes() {
		if c.VaultID == "" || n.Vault().ID() == c.VaultID {
			notes = append(notes, n)
		}
	}

	sort.Slice(notes, func(i, j int) bool {
		vi, vj := notes[i].Vault().Name(), notes[j].Vault().Name()
		if vi != vj {
			return vi < vj
		}
		return notes[i].RelPath() < notes[j].RelPath()
	})
	return notes, nil
}
