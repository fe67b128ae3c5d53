package filesystem

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"obsidex/internal/domain"
	"obsidex/internal/logging"
)

// Scanner implements ports.TreeScanner using the filesystem
type Scanner struct {
	logger *slog.Logger
}

// NewScanner creates a new filesystem scanner
func NewScanner(logger *slog.Logger) *Scanner {
	return &Scanner{logger: logging.ForComponent(logger, logging.CompScanner)}
}

// Scan walks the vault tree. Symlinked directories are followed, but each
// real directory is visited once, so link cycles terminate.
func (s *Scanner) Scan(vault *domain.Vault) domain.ScanResult {
	var res domain.ScanResult

	root := vault.Path()
	if root == "" {
		return res
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		s.logger.Debug("vault root unavailable", "vault", vault.ID(), "path", root, "error", err)
		return res
	}

	w := &walk{
		root:    root,
		vault:   vault,
		visited: make(map[string]struct{}),
		logger:  s.logger,
	}
	w.dir(root, &res)

	s.logger.Debug("vault scanned",
		"vault", vault.ID(),
		"dirs", len(res.Dirs),
		"notes", len(res.Notes),
	)
	return res
}

type walk struct {
	root    string
	vault   *domain.Vault
	visited map[string]struct{} // Real paths of directories already walked
	logger  *slog.Logger
}

func (w *walk) dir(dir string, res *domain.ScanResult) {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		w.logger.Debug("cannot resolve directory", "path", dir, "error", err)
		return
	}
	if _, seen := w.visited[real]; seen {
		return
	}
	w.visited[real] = struct{}{}
	res.Dirs = append(res.Dirs, dir)

	// ReadDir never returns "." or ".."; on error it still returns what it read
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Debug("cannot read directory", "path", dir, "error", err)
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		mode := entry.Type()

		if mode&fs.ModeSymlink != 0 {
			target, err := os.Stat(p)
			if err != nil {
				continue // Dangling link
			}
			mode = target.Mode().Type()
		}

		switch {
		case mode.IsDir():
			w.dir(p, res)
		case domain.IsNoteFile(entry.Name()):
			rel, err := filepath.Rel(w.root, p)
			if err != nil {
				continue
			}
			res.Notes = append(res.Notes, domain.NewNote(w.vault, filepath.ToSlash(rel)))
		}
	}
}
