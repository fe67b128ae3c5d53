package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"obsidex/internal/adapters/editor"
	"obsidex/internal/adapters/tui"
	"obsidex/internal/bootstrap"
	"obsidex/internal/config"
	"obsidex/internal/logging"
)

func main() {
	settingsFlag := flag.String("config", config.Path(), "obsidex settings file")
	obsidianFlag := flag.String("obsidian-config", "", "path to obsidian.json")
	logFlag := flag.String("log", "", "append logs to this file (the terminal belongs to the UI)")
	flag.Parse()

	if err := run(*settingsFlag, *obsidianFlag, *logFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(settingsPath, obsidianConfig, logPath string) error {
	settings, err := config.LoadFrom(settingsPath)
	if err != nil {
		return err
	}
	if obsidianConfig != "" {
		settings.ObsidianConfig = obsidianConfig
	}

	logger := logging.Discard()
	if logPath != "" {
		level, err := logging.ParseLevel(settings.LogLevel)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logging.New(f, level)
	}

	rt, err := bootstrap.New(bootstrap.Options{
		Settings: settings,
		Logger:   logger,
		Watch:    true,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	indexErr := make(chan error, 1)
	go func() { indexErr <- rt.Indexer.Run(ctx) }()

	app := tui.NewApp(tui.Options{
		Index:   rt.Catalog,
		Vaults:  rt.Indexer,
		Opener:  rt.Opener,
		Editor:  editor.NewOpener(),
		Updates: rt.Catalog.Updated(),
		Trigger: settings.Trigger,
		Limit:   50,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	cancel()
	return <-indexErr
}
