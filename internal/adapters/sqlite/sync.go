package sqlite

import (
	"fmt"
	"time"

	"obsidex/internal/domain"
)

// Replace swaps the stored snapshot for entries in a single transaction.
// Readers see either the old snapshot or the new one.
func (idx *Index) Replace(entries []domain.IndexEntry) error {
	start := time.Now()

	tx, err := idx.beginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := tx.clear(); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	for i, e := range entries {
		if err := tx.insert(i, e); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert entry %q: %w", e.Key, err)
		}
	}
	if err := tx.bumpGeneration(); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update generation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	idx.logger.Debug("index mirrored", "entries", len(entries), "duration", time.Since(start))
	return nil
}
