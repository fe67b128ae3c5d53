package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"obsidex/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "f1"),
		key.WithHelp("esc/q/f1", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	trigger string
}

// NewHelpModel creates a new help view model
func NewHelpModel(trigger string) *HelpModel {
	return &HelpModel{trigger: trigger}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToLauncherMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	vb := NewViewBuilder().Title("obsidex help")

	vb.Section("Searching")
	vb.Raw(helpLine("type", "Match vault names, note titles and note paths"))
	if m.trigger != "" {
		vb.Raw(helpLine(strings.TrimSpace(m.trigger)+" <name>", "Also offer to create <name>.md in every vault"))
	}
	vb.BlankLine()

	vb.Section("Results")
	vb.Raw(helpLine("↑ / ↓ / ctrl+p / ctrl+n", "Move up/down"))
	vb.Raw(helpLine("pgup / pgdn", "Scroll a page"))
	vb.Raw(helpLine("tab", "Cycle the actions of the selected item"))
	vb.Raw(helpLine("enter", "Run the selected action"))
	vb.Raw(helpLine("ctrl+y", "Copy the obsidian:// URI of the action"))
	vb.Raw(helpLine("ctrl+e", "Open the selected note in $EDITOR"))
	vb.BlankLine()

	vb.Section("General")
	vb.Raw(helpLine("f1", "Toggle help"))
	vb.Raw(helpLine("esc / ctrl+c", "Quit"))
	vb.BlankLine()

	vb.Muted("The index follows every vault directory while obsidex runs and re-reads obsidian.json on each change.")
	vb.BlankLine()
	vb.Help(HelpKeys.Close)
	return vb.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 26)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
