// Package bootstrap assembles the adapters behind a live vault index.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"obsidex/internal/adapters/filesystem"
	"obsidex/internal/adapters/fswatch"
	"obsidex/internal/adapters/memory"
	"obsidex/internal/adapters/obsidian"
	"obsidex/internal/adapters/sqlite"
	"obsidex/internal/application"
	"obsidex/internal/config"
	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// Options selects the optional parts of a runtime
type Options struct {
	Settings *config.Settings // Defaults() when nil
	Logger   *slog.Logger

	// Watch starts a directory watcher; Indexer.Run needs one
	Watch bool

	// Mirror publishes to the sqlite index at Settings.IndexDB (default location when empty).
	// A non-empty Settings.IndexDB enables the mirror on its own.
	Mirror bool

	// OnRebuild is forwarded to the indexer
	OnRebuild func(domain.RebuildStats)
}

// Runtime is a wired indexer with its adapters
type Runtime struct {
	Settings   *config.Settings
	ConfigPath string // Located obsidian.json
	Logger     *slog.Logger

	Catalog *memory.Catalog
	Mirror  *sqlite.Index // Nil when disabled
	Opener  *obsidian.Opener
	Indexer *application.Indexer
}

// New locates obsidian.json and wires the indexer. Nothing is scanned until
// Indexer.Rebuild or Indexer.Run is called. Failing to locate the configuration
// is fatal and returns an error matching application.ErrConfigNotFound.
func New(opts Options) (*Runtime, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.Defaults()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interval, err := settings.Interval()
	if err != nil {
		return nil, err
	}

	path, err := obsidian.Locate(settings.ObsidianConfig)
	if err != nil {
		return nil, err
	}
	logger.Info("using obsidian config", "path", path)

	rt := &Runtime{
		Settings:   settings,
		ConfigPath: path,
		Logger:     logger,
		Catalog:    memory.NewCatalog(),
		Opener:     obsidian.NewOpener(settings.Scheme),
	}
	publishers := []ports.IndexPublisher{rt.Catalog}

	if opts.Mirror || settings.IndexDB != "" {
		mirror := sqlite.NewIndex(logger)
		if err := mirror.Open(settings.IndexDB); err != nil {
			return nil, fmt.Errorf("index mirror: %w", err)
		}
		rt.Mirror = mirror
		publishers = append(publishers, mirror)
	}

	ixOpts := application.IndexerOptions{
		Source:      obsidian.NewConfigReader(path, logger),
		Scanner:     filesystem.NewScanner(logger),
		Publishers:  publishers,
		MinInterval: interval,
		OnRebuild:   opts.OnRebuild,
		Logger:      logger,
	}
	if opts.Watch {
		w, err := fswatch.New(logger)
		if err != nil {
			rt.closeMirror()
			return nil, err
		}
		ixOpts.Watcher = w
	}

	rt.Indexer, err = application.NewIndexer(ixOpts)
	if err != nil {
		if ixOpts.Watcher != nil {
			ixOpts.Watcher.Close()
		}
		rt.closeMirror()
		return nil, err
	}
	return rt, nil
}

// Close releases the watch subscriptions and the mirror database
func (rt *Runtime) Close() error {
	return errors.Join(rt.Indexer.Close(), rt.closeMirror())
}

func (rt *Runtime) closeMirror() error {
	if rt.Mirror == nil {
		return nil
	}
	return rt.Mirror.Close()
}
