package domain

import "time"

// IndexEntry maps an item under one search key
type IndexEntry struct {
	Item Item
	Key  string
}

// ScanResult is the outcome of walking one vault
type ScanResult struct {
	Dirs  []string // Vault root and every descendant directory
	Notes []*Note
}

// BuildIndex flattens vaults and notes into index entries.
// Each vault is keyed by its name, each note by its title and by its relative path.
func BuildIndex(vaults []*Vault, notes []*Note) []IndexEntry {
	entries := make([]IndexEntry, 0, len(vaults)+2*len(notes))
	for _, v := range vaults {
		entries = append(entries, IndexEntry{Item: v, Key: v.Name()})
	}
	for _, n := range notes {
		entries = append(entries,
			IndexEntry{Item: n, Key: n.Title()},
			IndexEntry{Item: n, Key: n.RelPath()},
		)
	}
	return entries
}

// RebuildStats holds statistics from a rebuild cycle
type RebuildStats struct {
	Vaults   int
	Notes    int
	Dirs     int
	Entries  int
	Duration time.Duration
	Errors   []error // Non-fatal failures (watch replacement, publishing)
}
