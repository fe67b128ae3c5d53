package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"obsidex/internal/logging"
	"obsidex/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index mirrors the published index into a SQLite file so other processes
// can query it. Implements ports.IndexPublisher.
type Index struct {
	db     *sql.DB
	dbPath string
	logger *slog.Logger
}

// Ensure Index implements IndexPublisher
var _ ports.IndexPublisher = (*Index)(nil)

// Record is one indexed item as stored in the mirror
type Record struct {
	ItemID  string
	Kind    string // "vault" or "note"
	Text    string
	Subtext string
	VaultID string
	RelPath string // Empty for vaults
}

// NewIndex creates a new SQLite index
func NewIndex(logger *slog.Logger) *Index {
	return &Index{logger: logging.ForComponent(logger, logging.CompMirror)}
}

// Open creates or opens the database at dbPath; an empty path selects DefaultPath()
func (idx *Index) Open(dbPath string) error {
	if dbPath == "" {
		dbPath = DefaultPath()
	}
	idx.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL lets readers keep the previous snapshot while a Replace commits
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			item_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			search_key TEXT NOT NULL,
			display_text TEXT NOT NULL,
			subtext TEXT NOT NULL,
			vault_id TEXT NOT NULL,
			rel_path TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_key ON entries(search_key);
		CREATE INDEX IF NOT EXISTS idx_entries_item ON entries(item_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	idx.logger.Debug("index mirror opened", "path", dbPath)
	return nil
}

// Path returns the database file in use
func (idx *Index) Path() string {
	return idx.dbPath
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Generation returns how many snapshots were published into this file
func (idx *Index) Generation() (int, error) {
	var gen int
	err := idx.db.QueryRow(`SELECT CAST(value AS INTEGER) FROM meta WHERE key = 'generation'`).Scan(&gen)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return gen, err
}

// Count returns the number of (item, key) entries in the current snapshot
func (idx *Index) Count() (int, error) {
	var n int
	err := idx.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

// Search returns items with a key containing query (case-insensitive for ASCII).
// Items whose key starts with query come first. Each item appears once.
func (idx *Index) Search(query string, limit int) ([]Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	pattern := escapeLike(query)
	rows, err := idx.db.Query(`
		SELECT item_id, kind, display_text, subtext, vault_id, rel_path,
		       MIN(CASE WHEN search_key LIKE ? ESCAPE '\' THEN 0 ELSE 1 END) AS match_rank,
		       MIN(position) AS first_pos
		FROM entries
		WHERE search_key LIKE ? ESCAPE '\'
		GROUP BY item_id
		ORDER BY match_rank, display_text, first_pos
		LIMIT ?
	`, pattern+"%", "%"+pattern+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var rank, first int
		if err := rows.Scan(&r.ItemID, &r.Kind, &r.Text, &r.Subtext, &r.VaultID, &r.RelPath, &rank, &first); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DefaultPath returns $XDG_DATA_HOME/obsidex/index.db
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "obsidex", "index.db")
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
