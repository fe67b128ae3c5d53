package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"obsidex/internal/bootstrap"
	"obsidex/internal/config"
	"obsidex/internal/domain"
	"obsidex/internal/logging"
)

// Command annotations read by the root hooks
const (
	annotNoIndex = "obsidex/no-index" // Command does not need a vault index
	annotWatch   = "obsidex/watch"    // Command runs the indexer itself
)

var (
	settingsPath   string
	obsidianConfig string
	logLevel       string
	mirror         bool

	settings *config.Settings
	logger   *slog.Logger
	rt       *bootstrap.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "obsidex-cli",
	Short: "Query the notes of your Obsidian vaults",
	Long: `obsidex-cli indexes every vault registered in Obsidian's obsidian.json
and lets you list, search, open and create notes from the shell.

The vault list is read from the first obsidian.json found in the OS config
directory (or its Flatpak and Snap equivalents), unless --obsidian-config is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		if settingsPath == "" {
			settingsPath = config.Path()
		}
		settings, err = config.LoadFrom(settingsPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("obsidian-config") {
			settings.ObsidianConfig = obsidianConfig
		}
		if cmd.Flags().Changed("log-level") || settings.LogLevel == "" {
			settings.LogLevel = logLevel
		}

		level, err := logging.ParseLevel(settings.LogLevel)
		if err != nil {
			return err
		}
		logger = logging.New(os.Stderr, level)

		if cmd.Annotations[annotNoIndex] != "" {
			return nil
		}

		opts := bootstrap.Options{
			Settings: settings,
			Logger:   logger,
			Mirror:   mirror,
		}
		if cmd.Annotations[annotWatch] != "" {
			opts.Watch = true
			opts.OnRebuild = printStats
		}
		rt, err = bootstrap.New(opts)
		if err != nil {
			return err
		}

		if !opts.Watch {
			if _, err := rt.Indexer.Rebuild(); err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if rt == nil {
			return nil
		}
		return rt.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&settingsPath, "config", "c", "", "obsidex settings file (default $OBSIDEX_CONFIG or <config dir>/obsidex/config.toml)")
	flags.StringVar(&obsidianConfig, "obsidian-config", "", "path to obsidian.json, probed before the default locations")
	flags.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.BoolVar(&mirror, "mirror", false, "also publish the index to the sqlite mirror")
}

// Runtime returns the initialized runtime
func Runtime() *bootstrap.Runtime {
	return rt
}

func printStats(stats domain.RebuildStats) {
	fmt.Printf("indexed %d vaults, %d notes, watching %d directories (%s)\n",
		stats.Vaults, stats.Notes, stats.Dirs, stats.Duration.Round(time.Millisecond))
	for _, err := range stats.Errors {
		fmt.Fprintf(os.Stderr, "  warning: %v\n", err)
	}
}
