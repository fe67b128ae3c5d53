package domain

import (
	"fmt"
	"strings"
)

// Item is the capability set shared by everything a front-end can list:
// vaults, notes and ephemeral suggestions.
type Item interface {
	ID() string
	Text() string
	Subtext() string
	Icon() string
	Actions() []Action
}

// ActionKind identifies what an action asks the host to do
type ActionKind int

const (
	ActionOpen   ActionKind = iota // Open a vault, or a note when File is set
	ActionSearch                   // Open the vault's search pane
	ActionCreate                   // Create a note named File in the vault
	ActionReveal                   // Show Path in the file manager
)

// String returns the string representation of the action kind
func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionSearch:
		return "search"
	case ActionCreate:
		return "create"
	case ActionReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Action is an invocable operation on an item. It carries only data;
// adapters turn it into a URI or a file manager request.
type Action struct {
	ID      string
	Label   string
	Kind    ActionKind
	VaultID string
	File    string // Vault relative note path (open) or new note name (create)
	Path    string // Absolute path (reveal)
}

// FindAction returns the action with the given id
func FindAction(item Item, actionID string) (Action, bool) {
	for _, a := range item.Actions() {
		if a.ID == actionID {
			return a, true
		}
	}
	return Action{}, false
}

// Query is a single evaluation request from a front-end
type Query struct {
	Text      string
	Triggered bool // Explicit trigger prefix/keyword, as opposed to passive global matching
}

// Trimmed returns the query text without surrounding whitespace
func (q Query) Trimmed() string {
	return strings.TrimSpace(q.Text)
}

// RankedItem is an item with a relevance score
type RankedItem struct {
	Item  Item
	Score int
}

// NoteSuggestion offers to create a new note in a vault. It is never indexed.
type NoteSuggestion struct {
	Vault *Vault
	Name  string // Trimmed query text
}

func (s *NoteSuggestion) ID() string { return "new:" + s.Vault.ID() }

func (s *NoteSuggestion) Text() string {
	return fmt.Sprintf("Create new note in '%s'", s.Vault.Name())
}

func (s *NoteSuggestion) Subtext() string {
	return fmt.Sprintf("%s · %s.md", s.Vault.Name(), s.Name)
}

func (s *NoteSuggestion) Icon() string { return IconNoteAdd }

func (s *NoteSuggestion) Actions() []Action {
	return []Action{
		{ID: "create", Label: "Create", Kind: ActionCreate, VaultID: s.Vault.ID(), File: s.Name},
	}
}

var (
	_ Item = (*Vault)(nil)
	_ Item = (*Note)(nil)
	_ Item = (*NoteSuggestion)(nil)
)
