package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Icon references understood by front-ends
const (
	IconVault   = "obsidian-vault"
	IconNote    = "obsidian-note"
	IconNoteAdd = "obsidian-note-add"
)

// Vault represents one note collection registered in Obsidian's configuration.
// Vaults are immutable and recreated on every configuration read.
type Vault struct {
	id   string // Key from the "vaults" object in obsidian.json
	path string // Absolute path to the vault root, may not exist
}

// NewVault creates a vault descriptor
func NewVault(id, path string) *Vault {
	return &Vault{id: id, path: path}
}

func (v *Vault) ID() string   { return v.id }
func (v *Vault) Path() string { return v.path }

// Name returns the final path segment of the vault root
func (v *Vault) Name() string {
	if v.path == "" {
		return ""
	}
	return filepath.Base(filepath.Clean(v.path))
}

func (v *Vault) Text() string    { return v.Name() }
func (v *Vault) Subtext() string { return v.path }
func (v *Vault) Icon() string    { return IconVault }

// Actions returns open, search and open-in-file-manager
func (v *Vault) Actions() []Action {
	return []Action{
		{ID: "open", Label: "Open", Kind: ActionOpen, VaultID: v.id},
		{ID: "search", Label: "Search", Kind: ActionSearch, VaultID: v.id},
		{ID: "openfm", Label: "Open in file manager", Kind: ActionReveal, VaultID: v.id, Path: v.path},
	}
}

// Note represents a markdown file inside a vault.
// The vault is a back-reference; vaults never hold their notes.
type Note struct {
	vault   *Vault
	relPath string // Slash separated, relative to the vault root, includes ".md"
}

// NewNote creates a note descriptor
func NewNote(vault *Vault, relPath string) *Note {
	return &Note{vault: vault, relPath: relPath}
}

func (n *Note) Vault() *Vault    { return n.vault }
func (n *Note) RelPath() string { return n.relPath }

// ID returns the vault root path concatenated with the relative path
func (n *Note) ID() string {
	return n.vault.path + n.relPath
}

// Title returns the file name without directories and without its final extension
func (n *Note) Title() string {
	base := path.Base(n.relPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

func (n *Note) Text() string { return n.Title() }

func (n *Note) Subtext() string {
	return fmt.Sprintf("%s · %s", n.vault.Name(), n.relPath)
}

func (n *Note) Icon() string { return IconNote }

func (n *Note) Actions() []Action {
	return []Action{
		{ID: "open", Label: "Open", Kind: ActionOpen, VaultID: n.vault.id, File: n.relPath},
	}
}

// AbsPath returns the note location on disk
func (n *Note) AbsPath() string {
	return filepath.Join(n.vault.path, filepath.FromSlash(n.relPath))
}

// IsNoteFile reports whether a file name carries the markdown extension (case-insensitive)
func IsNoteFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}
