// Package config loads obsidex settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultScheme  = "obsidian"
	DefaultTrigger = "ob "
	EnvConfigPath  = "OBSIDEX_CONFIG"
)

// Settings is the content of ~/.config/obsidex/config.toml.
// Every key is optional.
type Settings struct {
	// ObsidianConfig is an explicit path to obsidian.json, probed before the OS defaults
	ObsidianConfig string `toml:"obsidian_config"`

	// Scheme is the URI scheme handed to the OS (default "obsidian")
	Scheme string `toml:"scheme"`

	// Trigger is the launcher prefix that turns a query into a triggered query
	Trigger string `toml:"trigger"`

	// RebuildInterval is the minimum spacing between rebuilds, e.g. "500ms". Empty or "0" means none.
	RebuildInterval string `toml:"rebuild_interval"`

	// IndexDB is an optional sqlite file mirroring the published index
	IndexDB string `toml:"index_db"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
}

// Defaults returns settings with every default applied
func Defaults() *Settings {
	return &Settings{
		Scheme:  DefaultScheme,
		Trigger: DefaultTrigger,
	}
}

// Interval parses RebuildInterval
func (s *Settings) Interval() (time.Duration, error) {
	v := strings.TrimSpace(s.RebuildInterval)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid rebuild_interval %q: %w", s.RebuildInterval, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid rebuild_interval %q: must not be negative", s.RebuildInterval)
	}
	return d, nil
}

// Load reads settings from Path(). A missing file yields Defaults().
func Load() (*Settings, error) {
	return LoadFrom(Path())
}

// LoadFrom reads settings from path, filling unset keys with defaults.
// A missing file yields Defaults().
func LoadFrom(path string) (*Settings, error) {
	s := Defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if s.Scheme == "" {
		s.Scheme = DefaultScheme
	}
	if _, err := s.Interval(); err != nil {
		return nil, err
	}

	s.ObsidianConfig = expandHome(s.ObsidianConfig)
	s.IndexDB = expandHome(s.IndexDB)
	return s, nil
}

// Path returns the settings file location from OBSIDEX_CONFIG,
// falling back to <user config dir>/obsidex/config.toml.
func Path() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return expandHome(env)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "obsidex", "config.toml")
	}
	return filepath.Join(".", "obsidex.toml")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
