package sqlite

import (
	"database/sql"

	"obsidex/internal/domain"
)

// indexTx groups the writes of one snapshot
type indexTx struct {
	tx   *sql.Tx
	stmt *sql.Stmt
}

func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO entries (item_id, kind, search_key, display_text, subtext, vault_id, rel_path, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	return &indexTx{tx: tx, stmt: stmt}, nil
}

// clear removes the previous snapshot
func (t *indexTx) clear() error {
	_, err := t.tx.Exec(`DELETE FROM entries`)
	return err
}

// insert adds one entry at the given position
func (t *indexTx) insert(pos int, e domain.IndexEntry) error {
	r := recordOf(e.Item)
	_, err := t.stmt.Exec(r.ItemID, r.Kind, e.Key, r.Text, r.Subtext, r.VaultID, r.RelPath, pos)
	return err
}

// bumpGeneration increments the snapshot counter
func (t *indexTx) bumpGeneration() error {
	_, err := t.tx.Exec(`
		INSERT INTO meta (key, value) VALUES ('generation', '1')
		ON CONFLICT(key) DO UPDATE SET value = CAST(CAST(value AS INTEGER) + 1 AS TEXT)
	`)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	t.stmt.Close()
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	t.stmt.Close()
	return t.tx.Rollback()
}

func recordOf(item domain.Item) Record {
	r := Record{
		ItemID:  item.ID(),
		Kind:    "item",
		Text:    item.Text(),
		Subtext: item.Subtext(),
	}
	switch v := item.(type) {
	case *domain.Vault:
		r.Kind = "vault"
		r.VaultID = v.ID()
	case *domain.Note:
		r.Kind = "note"
		r.VaultID = v.Vault().ID()
		r.RelPath = v.RelPath()
	}
	return r
}
