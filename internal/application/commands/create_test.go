package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"obsidex/internal/application"
	"obsidex/internal/domain"
)

func TestCreateNoteCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		vaultID  string
		noteName string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid note",
			vaultID:  "w1",
			noteName: "todo",
			wantErr:  false,
		},
		{
			name:     "empty vault ID",
			vaultID:  "",
			noteName: "todo",
			wantErr:  true,
			errMsg:   "vault ID is required",
		},
		{
			name:     "empty name",
			vaultID:  "w1",
			noteName: "  ",
			wantErr:  true,
			errMsg:   "note name is required",
		},
		{
			name:     "escaping the vault",
			vaultID:  "w1",
			noteName: "../secrets",
			wantErr:  true,
			errMsg:   "must stay inside the vault",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateNoteCommand{
				VaultID: tt.vaultID,
				Name:    tt.noteName,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateNoteCommand_Execute(t *testing.T) {
	lister, _ := twoVaults()
	opener := &fakeOpener{}

	res, err := NewCreateNoteCommand(lister, opener, "h2", " groceries.md ").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Vault.ID() != "h2" {
		t.Errorf("expected vault h2, got %s", res.Vault.ID())
	}
	if len(opener.ran) != 1 {
		t.Fatalf("expected 1 run, got %d", len(opener.ran))
	}
	a := opener.ran[0]
	if a.Kind != domain.ActionCreate || a.VaultID != "h2" || a.File != "groceries" {
		t.Errorf("unexpected action %+v", a)
	}
	if !strings.Contains(res.URI, "vault=h2") {
		t.Errorf("unexpected uri %q", res.URI)
	}
}

func TestCreateNoteCommand_UnknownVault(t *testing.T) {
	lister, _ := twoVaults()

	_, err := NewCreateNoteCommand(lister, &fakeOpener{}, "zz", "todo").Execute(context.Background())
	if !errors.Is(err, application.ErrUnknownVault) {
		t.Errorf("expected ErrUnknownVault, got %v", err)
	}
}
