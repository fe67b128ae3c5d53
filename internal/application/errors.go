package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrConfigNotFound = errors.New("obsidian configuration not found")
	ErrUnknownItem    = errors.New("unknown item")
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownVault   = errors.New("unknown vault")
	ErrClosed         = errors.New("indexer closed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigError reports that no obsidian.json exists in any candidate location
type ConfigError struct {
	Probed []string
}

func (e *ConfigError) Error() string {
	if len(e.Probed) == 0 {
		return "obsidian configuration not found: no candidate locations"
	}
	return fmt.Sprintf("obsidian configuration not found, looked in: %s", strings.Join(e.Probed, ", "))
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// ActionError represents a failure to resolve or run an item action
type ActionError struct {
	ItemID   string
	ActionID string
	Err      error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %q on %s: %v", e.ActionID, e.ItemID, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
