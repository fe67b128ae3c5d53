package commands

import (
	"context"
	"fmt"
	"strings"

	"obsidex/internal/application"
	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// CreateNoteResult contains the result of asking Obsidian to create a note
type CreateNoteResult struct {
	Vault   *domain.Vault
	URI     string
	Message string
}

// CreateNoteCommand asks Obsidian to create a note in a known vault
type CreateNoteCommand struct {
	vaults  ports.VaultLister
	opener  ports.Opener
	VaultID string
	Name    string
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(vaults ports.VaultLister, opener ports.Opener, vaultID, name string) *CreateNoteCommand {
	return &CreateNoteCommand{
		vaults:  vaults,
		opener:  opener,
		VaultID: vaultID,
		Name:    name,
	}
}

// Validate checks the command parameters
func (c *CreateNoteCommand) Validate() error {
	if err := application.ValidateRequired("vaultID", c.VaultID); err != nil {
		return err
	}
	return application.ValidateNoteName("name", c.Name)
}

// Execute validates, resolves the vault and runs its create action
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	vault := findVault(c.vaults.Vaults(), c.VaultID)
	if vault == nil {
		return nil, fmt.Errorf("%w: %s", application.ErrUnknownVault, c.VaultID)
	}

	name := strings.TrimSuffix(strings.TrimSpace(c.Name), ".md")
	suggestion := &domain.NoteSuggestion{Vault: vault, Name: name}
	action, err := ResolveAction(suggestion, "create")
	if err != nil {
		return nil, err
	}

	uri, err := c.opener.URI(action)
	if err != nil {
		return nil, err
	}
	if err := c.opener.Run(action); err != nil {
		return nil, &application.ActionError{ItemID: suggestion.ID(), ActionID: action.ID, Err: err}
	}

	return &CreateNoteResult{
		Vault:   vault,
		URI:     uri,
		Message: fmt.Sprintf("Requested %s.md in %s", name, vault.Name()),
	}, nil
}

func findVault(vaults []*domain.Vault, id string) *domain.Vault {
	for _, v := range vaults {
		if v.ID() == id {
			return v
		}
	}
	return nil
}
