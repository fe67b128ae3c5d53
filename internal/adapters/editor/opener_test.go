package editor

import (
	"errors"
	"os/exec"
	"testing"
)

func newTestOpener(env map[string]string, installed ...string) *Opener {
	return &Opener{
		getenv: func(k string) string { return env[k] },
		lookPath: func(name string) (string, error) {
			for _, i := range installed {
				if i == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", exec.ErrNotFound
		},
	}
}

func TestCommand_EditorResolution(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		installed []string
		wantArgs  []string
	}{
		{
			name:     "EDITOR wins",
			env:      map[string]string{"EDITOR": "hx", "VISUAL": "code"},
			wantArgs: []string{"hx", "/v/a.md"},
		},
		{
			name:     "VISUAL when EDITOR unset",
			env:      map[string]string{"VISUAL": "code --wait"},
			wantArgs: []string{"code", "--wait", "/v/a.md"},
		},
		{
			name:     "blank EDITOR ignored",
			env:      map[string]string{"EDITOR": "  ", "VISUAL": "emacs"},
			wantArgs: []string{"emacs", "/v/a.md"},
		},
		{
			name:      "first installed fallback",
			installed: []string{"nano", "vi"},
			wantArgs:  []string{"/usr/bin/vi", "/v/a.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOpener(tt.env, tt.installed...)
			cmd, err := o.Command("/v/a.md")
			if err != nil {
				t.Fatalf("Command() error = %v", err)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %v, want %v", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args = %v, want %v", cmd.Args, tt.wantArgs)
					break
				}
			}
		})
	}
}

func TestCommand_NoEditor(t *testing.T) {
	o := newTestOpener(nil)

	if _, err := o.Command("/v/a.md"); !errors.Is(err, ErrNoEditor) {
		t.Errorf("expected ErrNoEditor, got %v", err)
	}
	if err := o.OpenFile("/v/a.md"); !errors.Is(err, ErrNoEditor) {
		t.Errorf("expected ErrNoEditor from OpenFile, got %v", err)
	}
}
