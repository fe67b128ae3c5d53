package ports

import "os/exec"

// EditorOpener opens notes in an external text editor
type EditorOpener interface {
	// OpenFile opens path in $EDITOR (or $VISUAL, or a common fallback) and waits for it
	OpenFile(path string) error

	// Command returns the editor process without starting it, for tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
