package ports

import "obsidex/internal/domain"

// Opener carries out item actions through Obsidian or the OS
type Opener interface {
	// URI returns the obsidian:// URI for an action.
	// Reveal actions have no URI and return an error.
	URI(action domain.Action) (string, error)

	// Run performs the action: opens its URI, or reveals its path in the file manager
	Run(action domain.Action) error
}
