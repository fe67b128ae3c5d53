package sqlite

import (
	"fmt"
	"path/filepath"
	"testing"

	"obsidex/internal/domain"
	"obsidex/internal/logging"
)

func openTestIndex(t testing.TB) *Index {
	t.Helper()

	idx := NewIndex(logging.Discard())
	if err := idx.Open(filepath.Join(t.TempDir(), "nested", "index.db")); err != nil {
		t.Fatalf("failed to open index: %v", err)
	}
	t.Cleanup(func() {
		if err := idx.Close(); err != nil {
			t.Errorf("failed to close index: %v", err)
		}
	})
	return idx
}

func workEntries() []domain.IndexEntry {
	work := domain.NewVault("w1", "/home/u/work")
	notes := []*domain.Note{
		domain.NewNote(work, "a.md"),
		domain.NewNote(work, "notes/b.md"),
		domain.NewNote(work, "notes/100%_done.md"),
	}
	return domain.BuildIndex([]*domain.Vault{work}, notes)
}

func TestReplace_StoresSnapshot(t *testing.T) {
	idx := openTestIndex(t)

	if err := idx.Replace(workEntries()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	n, err := idx.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7 entries, got %d", n)
	}

	gen, err := idx.Generation()
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}
	if gen != 1 {
		t.Errorf("expected generation 1, got %d", gen)
	}
}

func TestReplace_IsWholesale(t *testing.T) {
	idx := openTestIndex(t)

	if err := idx.Replace(workEntries()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := idx.Replace(nil); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	n, _ := idx.Count()
	if n != 0 {
		t.Errorf("expected empty snapshot, got %d entries", n)
	}
	gen, _ := idx.Generation()
	if gen != 2 {
		t.Errorf("expected generation 2, got %d", gen)
	}
}

func TestGeneration_BeforeFirstReplace(t *testing.T) {
	idx := openTestIndex(t)

	gen, err := idx.Generation()
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}
	if gen != 0 {
		t.Errorf("expected generation 0, got %d", gen)
	}
}

func TestSearch(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Replace(workEntries()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	tests := []struct {
		name  string
		query string
		want  []string // item ids in order
	}{
		{
			name:  "title prefix",
			query: "b",
			want:  []string{"/home/u/worknotes/b.md"},
		},
		{
			name:  "path fragment matches once per item",
			query: "notes/",
			want:  []string{"/home/u/worknotes/100%_done.md", "/home/u/worknotes/b.md"},
		},
		{
			name:  "case insensitive vault name",
			query: "WORK",
			want:  []string{"w1"},
		},
		{
			name:  "wildcards are literal",
			query: "%_",
			want:  []string{"/home/u/worknotes/100%_done.md"},
		},
		{
			name:  "blank query",
			query: "  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Search(tt.query, 0)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d records, got %d: %+v", len(tt.want), len(got), got)
			}
			for i, id := range tt.want {
				if got[i].ItemID != id {
					t.Errorf("record %d = %s, want %s", i, got[i].ItemID, id)
				}
			}
		})
	}
}

func TestSearch_PrefixRanksFirst(t *testing.T) {
	idx := openTestIndex(t)

	v := domain.NewVault("v", "/v")
	entries := domain.BuildIndex(nil, []*domain.Note{
		domain.NewNote(v, "alpha zeta.md"),
		domain.NewNote(v, "zeta.md"),
	})
	if err := idx.Replace(entries); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := idx.Search("zeta", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Text != "zeta" || got[1].Text != "alpha zeta" {
		t.Errorf("unexpected order: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestSearch_RecordFields(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Replace(workEntries()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := idx.Search("notes/b", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	r := got[0]
	if r.Kind != "note" || r.VaultID != "w1" || r.RelPath != "notes/b.md" || r.Text != "b" {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Subtext != "work · notes/b.md" {
		t.Errorf("unexpected subtext %q", r.Subtext)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultPath(); got != filepath.Join("/data", "obsidex", "index.db") {
		t.Errorf("DefaultPath() = %q", got)
	}
}

// BenchmarkReplace measures publishing a snapshot of a large vault
func BenchmarkReplace(b *testing.B) {
	idx := openTestIndex(b)

	vault := domain.NewVault("bench", "/bench")
	notes := make([]*domain.Note, 0, 5000)
	for i := range 5000 {
		notes = append(notes, domain.NewNote(vault, fmt.Sprintf("dir%02d/note-%04d.md", i%50, i)))
	}
	entries := domain.BuildIndex([]*domain.Vault{vault}, notes)

	b.ResetTimer()
	for b.Loop() {
		if err := idx.Replace(entries); err != nil {
			b.Fatalf("replace failed: %v", err)
		}
	}
}
