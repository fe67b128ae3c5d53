package ports

import "obsidex/internal/domain"

// IndexPublisher receives complete index snapshots.
// Replace must swap the whole index at once; readers never observe a partial index.
type IndexPublisher interface {
	Replace(entries []domain.IndexEntry) error
}

// IndexReader serves the most recently published snapshot
type IndexReader interface {
	Entries() []domain.IndexEntry

	// Lookup resolves an item by its ID within the current snapshot
	Lookup(id string) (domain.Item, bool)
}

// VaultLister exposes the vaults and notes found by the last rebuild
type VaultLister interface {
	Vaults() []*domain.Vault
	Notes() []*domain.Note
}
