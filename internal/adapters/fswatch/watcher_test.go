package fswatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"obsidex/internal/logging"
)

const waitFor = 3 * time.Second

func newWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New(logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(d, 0755))
	}
}

func waitChange(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case <-w.Changes():
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for a change notification")
	}
}

func drain(w *Watcher) {
	for {
		select {
		case <-w.Changes():
		default:
			return
		}
	}
}

func TestReplace_ExactSetWithoutDuplicates(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	c := filepath.Join(root, "c")
	mkdirs(t, a, b, c)

	w := newWatcher(t)

	require.NoError(t, w.Replace([]string{a, b, a}))
	require.Equal(t, []string{a, b}, w.WatchList())

	require.NoError(t, w.Replace([]string{c}))
	require.Equal(t, []string{c}, w.WatchList())

	require.NoError(t, w.Replace(nil))
	require.Empty(t, w.WatchList())
}

func TestReplace_MissingDirectory(t *testing.T) {
	root := t.TempDir()
	gone := filepath.Join(root, "gone")

	w := newWatcher(t)

	err := w.Replace([]string{root, gone})
	require.Error(t, err)
	require.Contains(t, err.Error(), gone)
	require.Equal(t, []string{root}, w.WatchList())
}

func TestReplace_AfterDirectoryDeleted(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	mkdirs(t, sub)

	w := newWatcher(t)
	require.NoError(t, w.Replace([]string{root, sub}))

	require.NoError(t, os.Remove(sub))
	waitChange(t, w)

	require.NoError(t, w.Replace([]string{root}))
	require.Equal(t, []string{root}, w.WatchList())
}

func TestChanges_NotifiesOnCreate(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "notes")
	mkdirs(t, sub)

	w := newWatcher(t)
	require.NoError(t, w.Replace([]string{root, sub}))

	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.md"), []byte("b"), 0644))
	waitChange(t, w)
}

func TestChanges_NotifiesOnRenameAndRemove(t *testing.T) {
	root := t.TempDir()
	note := filepath.Join(root, "a.md")
	require.NoError(t, os.WriteFile(note, []byte("a"), 0644))

	w := newWatcher(t)
	require.NoError(t, w.Replace([]string{root}))

	renamed := filepath.Join(root, "renamed.md")
	require.NoError(t, os.Rename(note, renamed))
	waitChange(t, w)

	time.Sleep(100 * time.Millisecond)
	drain(w)

	require.NoError(t, os.Remove(renamed))
	waitChange(t, w)
}

func TestChanges_CoalescesBursts(t *testing.T) {
	root := t.TempDir()

	w := newWatcher(t)
	require.NoError(t, w.Replace([]string{root}))

	for i := 0; i < 20; i++ {
		name := filepath.Join(root, "n"+string(rune('a'+i))+".md")
		require.NoError(t, os.WriteFile(name, nil, 0644))
	}

	// Let the event loop consume the whole burst
	time.Sleep(300 * time.Millisecond)

	waitChange(t, w)
	select {
	case <-w.Changes():
		t.Fatal("expected the burst to collapse into one notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestClose(t *testing.T) {
	root := t.TempDir()

	w, err := New(logging.Discard())
	require.NoError(t, err)
	require.NoError(t, w.Replace([]string{root}))

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.Nil(t, w.WatchList())
	require.Error(t, w.Replace([]string{root}))
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want bool
	}{
		{fsnotify.Create, true},
		{fsnotify.Remove, true},
		{fsnotify.Rename, true},
		{fsnotify.Write, false},
		{fsnotify.Chmod, false},
		{fsnotify.Write | fsnotify.Create, true},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			require.Equal(t, tt.want, relevant(fsnotify.Event{Name: "x", Op: tt.op}))
		})
	}
}
