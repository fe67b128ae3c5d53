// Package memory holds the published index in process memory.
package memory

import (
	"sync/atomic"

	"obsidex/internal/domain"
)

type snapshot struct {
	entries []domain.IndexEntry
	byID    map[string]domain.Item
	version uint64
}

// Catalog implements ports.IndexPublisher and ports.IndexReader.
// Each Replace swaps in a new immutable snapshot; readers never lock.
type Catalog struct {
	current atomic.Pointer[snapshot]
	notify  chan struct{}
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	c := &Catalog{notify: make(chan struct{}, 1)}
	c.current.Store(&snapshot{byID: map[string]domain.Item{}})
	return c
}

// Replace publishes a complete index
func (c *Catalog) Replace(entries []domain.IndexEntry) error {
	owned := make([]domain.IndexEntry, len(entries))
	copy(owned, entries)

	byID := make(map[string]domain.Item, len(owned))
	for _, e := range owned {
		byID[e.Item.ID()] = e.Item
	}

	prev := c.current.Load()
	c.current.Store(&snapshot{entries: owned, byID: byID, version: prev.version + 1})

	select {
	case c.notify <- struct{}{}:
	default:
	}
	return nil
}

// Entries returns the current snapshot. Callers must not modify it.
func (c *Catalog) Entries() []domain.IndexEntry {
	return c.current.Load().entries
}

// Lookup resolves an item ID in the current snapshot
func (c *Catalog) Lookup(id string) (domain.Item, bool) {
	item, ok := c.current.Load().byID[id]
	return item, ok
}

// Version counts publications; 0 means nothing was published yet
func (c *Catalog) Version() uint64 {
	return c.current.Load().version
}

// Updated signals after each Replace. Bursts collapse into one signal.
func (c *Catalog) Updated() <-chan struct{} {
	return c.notify
}
