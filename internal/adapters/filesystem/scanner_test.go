package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"obsidex/internal/domain"
	"obsidex/internal/logging"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
}

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", f, err)
		}
		if err := os.WriteFile(p, []byte("# "+f), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", f, err)
		}
	}
}

func relPaths(res domain.ScanResult) []string {
	var out []string
	for _, n := range res.Notes {
		out = append(out, n.RelPath())
	}
	sort.Strings(out)
	return out
}

func relDirs(t *testing.T, root string, res domain.ScanResult) []string {
	t.Helper()
	var out []string
	for _, d := range res.Dirs {
		rel, err := filepath.Rel(root, d)
		if err != nil {
			t.Fatalf("dir %s outside root: %v", d, err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScan_WorkVault(t *testing.T) {
	root := filepath.Join(t.TempDir(), "work")
	touch(t, root, "a.md", "notes/b.md", "img.png")

	vault := domain.NewVault("work", root)
	res := NewScanner(logging.Discard()).Scan(vault)

	if got, want := relPaths(res), []string{"a.md", "notes/b.md"}; !equal(got, want) {
		t.Errorf("notes = %v, want %v", got, want)
	}
	if got, want := relDirs(t, root, res), []string{".", "notes"}; !equal(got, want) {
		t.Errorf("dirs = %v, want %v", got, want)
	}
	for _, n := range res.Notes {
		if n.Vault() != vault {
			t.Errorf("note %s does not reference its vault", n.RelPath())
		}
	}
}

func TestScan_RoundTrip(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "sub/dir/file.md")

	res := NewScanner(logging.Discard()).Scan(domain.NewVault("v", root))

	if len(res.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(res.Notes))
	}
	n := res.Notes[0]
	if n.RelPath() != "sub/dir/file.md" {
		t.Errorf("RelPath() = %q, want %q", n.RelPath(), "sub/dir/file.md")
	}
	if n.Title() != "file" {
		t.Errorf("Title() = %q, want %q", n.Title(), "file")
	}
	if n.AbsPath() != filepath.Join(root, "sub", "dir", "file.md") {
		t.Errorf("AbsPath() = %q", n.AbsPath())
	}
}

func TestScan_Filtering(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"upper.MD",
		"mixed.Md",
		".hidden.md",
		".obsidian/workspace.json",
		"draft.md.bak",
		"readme.txt",
	)
	mkdirs(t, root, "empty/deeper", "folder.md")

	res := NewScanner(logging.Discard()).Scan(domain.NewVault("v", root))

	want := []string{".hidden.md", "mixed.Md", "upper.MD"}
	if got := relPaths(res); !equal(got, want) {
		t.Errorf("notes = %v, want %v", got, want)
	}

	wantDirs := []string{".", ".obsidian", "empty", "empty/deeper", "folder.md"}
	if got := relDirs(t, root, res); !equal(got, wantDirs) {
		t.Errorf("dirs = %v, want %v", got, wantDirs)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "empty path", path: func(t *testing.T) string { return "" }},
		{name: "does not exist", path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "gone") }},
		{name: "regular file", path: func(t *testing.T) string {
			dir := t.TempDir()
			touch(t, dir, "file.md")
			return filepath.Join(dir, "file.md")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewScanner(logging.Discard()).Scan(domain.NewVault("v", tt.path(t)))
			if len(res.Dirs) != 0 || len(res.Notes) != 0 {
				t.Errorf("expected empty result, got %d dirs and %d notes", len(res.Dirs), len(res.Notes))
			}
		})
	}
}

func TestScan_FollowsSymlinks(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "vault")
	outside := filepath.Join(base, "outside")
	touch(t, root, "a.md")
	touch(t, outside, "linked.md")

	if err := os.Symlink(outside, filepath.Join(root, "shared")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "linked.md"), filepath.Join(root, "alias.md")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	res := NewScanner(logging.Discard()).Scan(domain.NewVault("v", root))

	want := []string{"a.md", "alias.md", "shared/linked.md"}
	if got := relPaths(res); !equal(got, want) {
		t.Errorf("notes = %v, want %v", got, want)
	}
	if got, want := relDirs(t, root, res), []string{".", "shared"}; !equal(got, want) {
		t.Errorf("dirs = %v, want %v", got, want)
	}
}

func TestScan_SymlinkCycle(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/note.md")

	// a/loop -> root
	if err := os.Symlink(root, filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	res := NewScanner(logging.Discard()).Scan(domain.NewVault("v", root))

	if got, want := relPaths(res), []string{"a/note.md"}; !equal(got, want) {
		t.Errorf("notes = %v, want %v", got, want)
	}
	if got, want := relDirs(t, root, res), []string{".", "a"}; !equal(got, want) {
		t.Errorf("dirs = %v, want %v", got, want)
	}
}

func TestScan_DanglingSymlink(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.md")
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "broken.md")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	res := NewScanner(logging.Discard()).Scan(domain.NewVault("v", root))

	if got, want := relPaths(res), []string{"a.md"}; !equal(got, want) {
		t.Errorf("notes = %v, want %v", got, want)
	}
}
