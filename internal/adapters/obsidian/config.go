package obsidian

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"obsidex/internal/application"
	"obsidex/internal/domain"
	"obsidex/internal/logging"
)

// configFile is obsidian.json relative to a config directory
var configFile = filepath.Join("obsidian", "obsidian.json")

type vaultsFile struct {
	Vaults map[string]json.RawMessage `json:"vaults"`
}

type vaultEntry struct {
	Path string `json:"path"`
}

// ConfigReader implements ports.VaultSource over obsidian.json
type ConfigReader struct {
	path   string
	logger *slog.Logger
}

// NewConfigReader creates a reader for the obsidian.json at path
func NewConfigReader(path string, logger *slog.Logger) *ConfigReader {
	return &ConfigReader{
		path:   path,
		logger: logging.ForComponent(logger, logging.CompConfig),
	}
}

// Path returns the configuration file being read
func (r *ConfigReader) Path() string {
	return r.path
}

// ReadVaults parses the configuration on every call.
// Unreadable or malformed files are logged and yield no vaults.
// A malformed entry is kept with an empty path. Vaults are sorted by ID.
func (r *ConfigReader) ReadVaults() []*domain.Vault {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Warn("cannot read obsidian config", "path", r.path, "error", err)
		return nil
	}

	var cfg vaultsFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.logger.Warn("malformed obsidian config", "path", r.path, "error", err)
		return nil
	}

	ids := make([]string, 0, len(cfg.Vaults))
	for id := range cfg.Vaults {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	vaults := make([]*domain.Vault, 0, len(ids))
	for _, id := range ids {
		var entry vaultEntry
		if err := json.Unmarshal(cfg.Vaults[id], &entry); err != nil {
			r.logger.Warn("malformed vault entry", "path", r.path, "vault", id, "error", err)
		}
		p := entry.Path
		if p != "" {
			p = filepath.Clean(p)
		}
		vaults = append(vaults, domain.NewVault(id, p))
	}
	return vaults
}

// Candidates returns the obsidian.json locations to probe, in order.
// An explicit override comes first, then the OS config directory,
// then the Flatpak and Snap sandboxes on Linux.
func Candidates(override string) []string {
	var paths []string
	if override != "" {
		paths = append(paths, override)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, configFile))
	}
	if runtime.GOOS == "linux" {
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths,
				filepath.Join(home, ".var", "app", "md.obsidian.Obsidian", "config", configFile),
				filepath.Join(home, "snap", "obsidian", "current", ".config", configFile),
			)
		}
	}
	return paths
}

// Locate returns the first candidate from Candidates(override) that exists
func Locate(override string) (string, error) {
	return LocateIn(Candidates(override))
}

// LocateIn returns the first existing regular file among candidates.
// When none exists the error is a *application.ConfigError listing every probed path.
func LocateIn(candidates []string) (string, error) {
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", &application.ConfigError{Probed: candidates}
}
