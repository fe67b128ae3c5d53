package ports

import "obsidex/internal/domain"

// VaultSource reads the vault list from Obsidian's configuration.
// A missing or malformed configuration yields an empty list, never an error.
type VaultSource interface {
	ReadVaults() []*domain.Vault
}

// TreeScanner enumerates the directories and notes of one vault
type TreeScanner interface {
	// Scan returns the vault root plus every descendant directory, and every
	// markdown file as a note. A missing root yields an empty result.
	Scan(vault *domain.Vault) domain.ScanResult
}

// DirectoryWatcher maintains the set of directories monitored for changes
type DirectoryWatcher interface {
	// Replace removes every current watch, then watches exactly dirs
	Replace(dirs []string) error

	// Changes delivers a notification whenever a watched directory changes.
	// Bursts collapse into a single pending notification.
	Changes() <-chan struct{}

	// Errors delivers failures reported by the OS watch facility
	Errors() <-chan error

	// WatchList returns the currently watched directories
	WatchList() []string

	// Close releases every watch handle
	Close() error
}
