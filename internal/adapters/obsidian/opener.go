package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"obsidex/internal/domain"
)

// Opener implements ports.Opener
type Opener struct {
	scheme string
	run    func(name string, args ...string) error
}

// NewOpener creates an opener issuing <scheme>:// URIs
func NewOpener(scheme string) *Opener {
	if scheme == "" {
		scheme = "obsidian"
	}
	return &Opener{
		scheme: scheme,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// URI constructs the URI for an open, search or create action
func (o *Opener) URI(a domain.Action) (string, error) {
	vault := "vault=" + escape(a.VaultID)

	switch a.Kind {
	case domain.ActionOpen:
		if a.File == "" {
			return fmt.Sprintf("%s://open?%s", o.scheme, vault), nil
		}
		return fmt.Sprintf("%s://open?%s&file=%s", o.scheme, vault, escape(a.File)), nil
	case domain.ActionSearch:
		return fmt.Sprintf("%s://search?%s", o.scheme, vault), nil
	case domain.ActionCreate:
		if strings.TrimSpace(a.File) == "" {
			return "", fmt.Errorf("create action without a file name")
		}
		return fmt.Sprintf("%s://new?%s&file=%s", o.scheme, vault, escape(a.File)), nil
	default:
		return "", fmt.Errorf("%s action has no %s URI", a.Kind, o.scheme)
	}
}

// Run opens the action's URI, or reveals its path in the file manager
func (o *Opener) Run(a domain.Action) error {
	if a.Kind == domain.ActionReveal {
		if a.Path == "" {
			return fmt.Errorf("reveal action without a path")
		}
		return o.open(a.Path)
	}

	uri, err := o.URI(a)
	if err != nil {
		return err
	}
	return o.open(uri)
}

func (o *Opener) open(target string) error {
	switch runtime.GOOS {
	case "darwin":
		return o.run("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		return o.run("xdg-open", target)
	case "windows":
		return o.run("cmd", "/c", "start", "", target)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// escape percent-encodes a query value; spaces become %20 rather than "+"
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
