package application

import "obsidex/internal/domain"

// Re-export domain types for use by adapters
type (
	Vault        = domain.Vault
	Note         = domain.Note
	Item         = domain.Item
	Action       = domain.Action
	IndexEntry   = domain.IndexEntry
	Query        = domain.Query
	RankedItem   = domain.RankedItem
	ScanResult   = domain.ScanResult
	RebuildStats = domain.RebuildStats
)
