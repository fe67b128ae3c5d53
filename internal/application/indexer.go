package application

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"obsidex/internal/domain"
	"obsidex/internal/logging"
	"obsidex/internal/ports"
)

// IndexerOptions wires an Indexer
type IndexerOptions struct {
	Source     ports.VaultSource
	Scanner    ports.TreeScanner
	Watcher    ports.DirectoryWatcher // Required by Run only
	Publishers []ports.IndexPublisher

	// MinInterval spaces rebuilds triggered by changes. Zero means no spacing.
	MinInterval time.Duration

	// OnRebuild is called after every rebuild, on the rebuilding goroutine
	OnRebuild func(domain.RebuildStats)

	Logger *slog.Logger
}

// Indexer owns the vault list, the note list and the watch set.
// Every rebuild recomputes all three and publishes a complete index.
type Indexer struct {
	source     ports.VaultSource
	scanner    ports.TreeScanner
	watcher    ports.DirectoryWatcher
	publishers []ports.IndexPublisher
	limiter    *rate.Limiter
	onRebuild  func(domain.RebuildStats)
	logger     *slog.Logger

	mu     sync.Mutex // Held for a whole rebuild
	closed bool

	stateMu sync.RWMutex
	vaults  []*domain.Vault
	notes   []*domain.Note
	last    domain.RebuildStats
}

// NewIndexer validates the options and returns an idle indexer
func NewIndexer(opts IndexerOptions) (*Indexer, error) {
	if opts.Source == nil {
		return nil, &ValidationError{Field: "Source", Message: "vault source is required"}
	}
	if opts.Scanner == nil {
		return nil, &ValidationError{Field: "Scanner", Message: "tree scanner is required"}
	}
	if opts.MinInterval < 0 {
		return nil, &ValidationError{Field: "MinInterval", Message: "must not be negative"}
	}

	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}

	return &Indexer{
		source:     opts.Source,
		scanner:    opts.Scanner,
		watcher:    opts.Watcher,
		publishers: opts.Publishers,
		limiter:    rate.NewLimiter(limit, 1),
		onRebuild:  opts.OnRebuild,
		logger:     logging.ForComponent(opts.Logger, logging.CompIndexer),
	}, nil
}

// Rebuild re-reads the configuration, rescans every vault, replaces the watch set
// and publishes the new index. Watch and publish failures are collected in
// RebuildStats.Errors and do not stop the rebuild.
func (ix *Indexer) Rebuild() (domain.RebuildStats, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.closed {
		return domain.RebuildStats{}, ErrClosed
	}

	start := time.Now()
	vaults := ix.source.ReadVaults()

	var (
		dirs  []string
		notes []*domain.Note
		seen  = make(map[string]struct{})
	)
	for _, v := range vaults {
		res := ix.scanner.Scan(v)
		for _, d := range res.Dirs {
			// Nested or symlinked vaults share directories
			key := d
			if real, err := filepath.EvalSymlinks(d); err == nil {
				key = real
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			dirs = append(dirs, d)
		}
		notes = append(notes, res.Notes...)
	}

	stats := domain.RebuildStats{
		Vaults: len(vaults),
		Notes:  len(notes),
		Dirs:   len(dirs),
	}

	if ix.watcher != nil {
		if err := ix.watcher.Replace(dirs); err != nil {
			stats.Errors = append(stats.Errors, err)
			ix.logger.Warn("watch set incomplete", "error", err)
		}
	}

	entries := domain.BuildIndex(vaults, notes)
	stats.Entries = len(entries)
	for _, p := range ix.publishers {
		if err := p.Replace(entries); err != nil {
			stats.Errors = append(stats.Errors, err)
			ix.logger.Warn("publish failed", "error", err)
		}
	}
	stats.Duration = time.Since(start)

	ix.stateMu.Lock()
	ix.vaults = vaults
	ix.notes = notes
	ix.last = stats
	ix.stateMu.Unlock()

	ix.logger.Info("index rebuilt",
		"vaults", stats.Vaults,
		"notes", stats.Notes,
		"dirs", stats.Dirs,
		"entries", stats.Entries,
		"duration", stats.Duration,
	)

	if ix.onRebuild != nil {
		ix.onRebuild(stats)
	}
	return stats, nil
}

// Run rebuilds once, then rebuilds on every change notification until ctx is done.
// Notifications arriving during a rebuild cause exactly one more rebuild.
func (ix *Indexer) Run(ctx context.Context) error {
	if ix.watcher == nil {
		return &ValidationError{Field: "Watcher", Message: "directory watcher is required to run"}
	}

	if err := ix.rebuildThrottled(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ix.watcher.Changes():
			if err := ix.rebuildThrottled(ctx); err != nil {
				return err
			}
		case err := <-ix.watcher.Errors():
			ix.logger.Warn("watcher error", "error", err)
		}
	}
}

func (ix *Indexer) rebuildThrottled(ctx context.Context) error {
	if err := ix.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	if _, err := ix.Rebuild(); err != nil {
		if errors.Is(err, ErrClosed) {
			return nil
		}
		return err
	}
	return nil
}

// Vaults returns the vaults of the last rebuild
func (ix *Indexer) Vaults() []*domain.Vault {
	ix.stateMu.RLock()
	defer ix.stateMu.RUnlock()
	return append([]*domain.Vault(nil), ix.vaults...)
}

// Notes returns the notes of the last rebuild
func (ix *Indexer) Notes() []*domain.Note {
	ix.stateMu.RLock()
	defer ix.stateMu.RUnlock()
	return append([]*domain.Note(nil), ix.notes...)
}

// LastStats returns the statistics of the last rebuild
func (ix *Indexer) LastStats() domain.RebuildStats {
	ix.stateMu.RLock()
	defer ix.stateMu.RUnlock()
	return ix.last
}

// Vault resolves a vault ID from the last rebuild
func (ix *Indexer) Vault(id string) (*domain.Vault, bool) {
	ix.stateMu.RLock()
	defer ix.stateMu.RUnlock()
	for _, v := range ix.vaults {
		if v.ID() == id {
			return v, true
		}
	}
	return nil, false
}

// Close waits for a running rebuild, then releases the watch subscriptions.
// Later rebuilds fail with ErrClosed.
func (ix *Indexer) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.closed {
		return nil
	}
	ix.closed = true
	if ix.watcher != nil {
		return ix.watcher.Close()
	}
	return nil
}
