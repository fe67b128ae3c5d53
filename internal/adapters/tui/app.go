package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"obsidex/internal/adapters/tui/views"
	"obsidex/internal/ports"
)

var errNoEditor = errors.New("no editor configured")

// ViewState represents the current view
type ViewState int

const (
	ViewLauncher ViewState = iota
	ViewHelp
)

// Options wires the launcher to a live index
type Options struct {
	Index   ports.IndexReader
	Vaults  ports.VaultLister
	Opener  ports.Opener
	Editor  ports.EditorOpener // Optional; ctrl+e is unavailable without it
	Updates <-chan struct{}
	Trigger string
	Limit   int
}

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state    ViewState
	launcher *views.SearchModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(opts Options) *App {
	return &App{
		editor: opts.Editor,
		state:  ViewLauncher,
		launcher: views.NewSearchModel(views.SearchOptions{
			Index:   opts.Index,
			Vaults:  opts.Vaults,
			Opener:  opts.Opener,
			Updates: opts.Updates,
			Trigger: opts.Trigger,
			Limit:   opts.Limit,
		}),
		help: views.NewHelpModel(opts.Trigger),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.launcher.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.launcher.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToLauncherMsg:
		a.state = ViewLauncher
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewLauncher
		return a, a.openEditor(msg.Path)

	// Index updates must reach the launcher even while help is shown
	case views.IndexUpdatedMsg, views.EditorFinishedMsg:
		_, cmd := a.launcher.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewLauncher:
		_, cmd = a.launcher.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return views.EditorFinishedMsg{Err: errNoEditor}
		}
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return views.EditorFinishedMsg{Err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return views.EditorFinishedMsg{Err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.launcher.View()
	}
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Launcher returns the launcher view model
func (a *App) Launcher() *views.SearchModel {
	return a.launcher
}
