package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"obsidex/internal/adapters/tui/styles"
	"obsidex/internal/application/commands"
	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// SearchKeyMap defines key bindings for the launcher
type SearchKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Run        key.Binding
	NextAction key.Binding
	CopyURI    key.Binding
	Edit       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Run: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	NextAction: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next action"),
	),
	CopyURI: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy uri"),
	),
	Edit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "edit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// SearchOptions wires a SearchModel
type SearchOptions struct {
	Index  ports.IndexReader
	Vaults ports.VaultLister
	Opener ports.Opener

	// Updates signals index publications; results are re-ranked on each signal
	Updates <-chan struct{}

	// Trigger is the prefix that makes a query triggered
	Trigger string

	// Limit caps indexed matches; zero means unlimited
	Limit int
}

// SearchModel is the launcher: a query line over a live ranked result list
type SearchModel struct {
	ViewState

	index   ports.IndexReader
	vaults  ports.VaultLister
	opener  ports.Opener
	updates <-chan struct{}
	trigger string
	limit   int

	input   textinput.Model
	query   domain.Query
	results []domain.RankedItem
	pager   *Paginator
	action  int // Selected action of the item under the cursor

	clip func(string) error
}

// NewSearchModel creates the launcher view
func NewSearchModel(opts SearchOptions) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search vaults and notes..."
	input.Prompt = "› "
	input.Focus()

	return &SearchModel{
		index:   opts.Index,
		vaults:  opts.Vaults,
		opener:  opts.Opener,
		updates: opts.Updates,
		trigger: opts.Trigger,
		limit:   opts.Limit,
		input:   input,
		pager:   NewPaginator(8),
		clip:    clipboard.WriteAll,
	}
}

// ParseQuery turns raw input into a query. Input starting with trigger is
// triggered and the prefix is removed.
func ParseQuery(raw, trigger string) domain.Query {
	if trigger != "" && strings.HasPrefix(raw, trigger) {
		return domain.Query{Text: strings.TrimPrefix(raw, trigger), Triggered: true}
	}
	return domain.Query{Text: raw}
}

// IndexUpdatedMsg is delivered after the index was republished
type IndexUpdatedMsg struct{}

type actionDoneMsg struct {
	item   string
	action domain.Action
	err    error
}

// Init initializes the launcher
func (m *SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForUpdate())
}

// Update handles messages for the launcher
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case IndexUpdatedMsg:
		m.refresh(true)
		return m, m.waitForUpdate()

	case actionDoneMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		} else if msg.action.Kind == domain.ActionReveal {
			m.SetMessage("Revealed "+msg.action.Path, false)
		} else {
			m.SetMessage(fmt.Sprintf("%s: %s", msg.action.Label, msg.item), false)
		}
		return m, nil

	case EditorFinishedMsg:
		if msg.Err != nil {
			m.SetMessage("Editor: "+msg.Err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, SearchKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			if m.pager.CursorUp() {
				m.action = 0
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.pager.CursorDown() {
				m.action = 0
			}
			return m, nil

		case key.Matches(msg, SearchKeys.PageUp):
			m.pager.PageUp()
			m.action = 0
			return m, nil

		case key.Matches(msg, SearchKeys.PageDown):
			m.pager.PageDown()
			m.action = 0
			return m, nil

		case key.Matches(msg, SearchKeys.NextAction):
			if item, ok := m.Selected(); ok {
				if n := len(item.Actions()); n > 0 {
					m.action = (m.action + 1) % n
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Run):
			return m, m.runSelected()

		case key.Matches(msg, SearchKeys.CopyURI):
			m.copySelected()
			return m, nil

		case key.Matches(msg, SearchKeys.Edit):
			return m, m.editSelected()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.ClearMessage()
		m.refresh(false)
	}
	return m, cmd
}

// refresh re-ranks the current input. With keep set, the cursor stays on the
// same item when it survived the rebuild.
func (m *SearchModel) refresh(keep bool) {
	var selectedID string
	if item, ok := m.Selected(); ok && keep {
		selectedID = item.ID()
	}

	m.query = ParseQuery(m.input.Value(), m.trigger)
	search := commands.NewSearchCommand(m.index, m.vaults, m.query)
	search.Limit = m.limit

	results, err := search.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.results = results
	m.pager.SetTotal(len(results))

	if selectedID == "" {
		m.pager.Reset()
		m.action = 0
		return
	}
	for i, r := range results {
		if r.Item.ID() == selectedID {
			m.pager.SetCursor(i)
			return
		}
	}
	m.pager.Reset()
	m.action = 0
}

func (m *SearchModel) waitForUpdate() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return IndexUpdatedMsg{}
	}
}

// Selected returns the item under the cursor
func (m *SearchModel) Selected() (domain.Item, bool) {
	c := m.pager.Cursor()
	if c < 0 || c >= len(m.results) {
		return nil, false
	}
	return m.results[c].Item, true
}

// SelectedAction returns the action that enter would run
func (m *SearchModel) SelectedAction() (domain.Action, bool) {
	item, ok := m.Selected()
	if !ok {
		return domain.Action{}, false
	}
	actions := item.Actions()
	if m.action >= len(actions) {
		return domain.Action{}, false
	}
	return actions[m.action], true
}

// Results returns the current ranking
func (m *SearchModel) Results() []domain.RankedItem {
	return m.results
}

// Query returns the query the results were ranked for
func (m *SearchModel) Query() domain.Query {
	return m.query
}

func (m *SearchModel) runSelected() tea.Cmd {
	item, ok := m.Selected()
	if !ok {
		return nil
	}
	action, ok := m.SelectedAction()
	if !ok {
		return nil
	}

	opener := m.opener
	return func() tea.Msg {
		ran, err := commands.RunAction(opener, item, action.ID)
		return actionDoneMsg{item: item.Text(), action: ran, err: err}
	}
}

func (m *SearchModel) copySelected() {
	action, ok := m.SelectedAction()
	if !ok {
		return
	}
	uri, err := m.opener.URI(action)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	if err := m.clip(uri); err != nil {
		m.SetMessage("Clipboard: "+err.Error(), true)
		return
	}
	m.SetMessage("Copied "+uri, false)
}

func (m *SearchModel) editSelected() tea.Cmd {
	item, ok := m.Selected()
	if !ok {
		return nil
	}
	note, ok := item.(*domain.Note)
	if !ok {
		m.SetMessage("Only notes open in the editor", true)
		return nil
	}
	path := note.AbsPath()
	return func() tea.Msg { return OpenEditorMsg{Path: path} }
}

// SetSize updates the view dimensions and the number of visible rows
func (m *SearchModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// Title, input, status and help take about ten lines; each result takes two
	m.pager.SetPageSize((height - 10) / 2)
	if width > 8 {
		m.input.Width = width - 8
	}
}

// View renders the launcher
func (m *SearchModel) View() string {
	vb := NewViewBuilder().Title("Obsidian")

	box := styles.InputFocused
	if m.query.Triggered {
		box = styles.InputTriggered
	}
	vb.Line(box.Render(m.input.View())).BlankLine()

	if len(m.results) == 0 {
		if m.query.Trimmed() == "" {
			vb.Line(styles.Subtitle.Render("Type to search vaults and notes"))
		} else {
			vb.Muted("No matches")
		}
	} else {
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			vb.Line(m.renderRow(m.results[i], i == m.pager.Cursor()))
		}
	}

	vb.BlankLine().Line(m.statusLine()).BlankLine().Message(m.Message, m.MessageErr)
	vb.Help(SearchKeys.Run, SearchKeys.NextAction, SearchKeys.CopyURI, SearchKeys.Edit, SearchKeys.Help, SearchKeys.Quit)
	return vb.String()
}

// statusLine shows the index size, the query mode and the visible range
func (m *SearchModel) statusLine() string {
	var parts []string
	if summary := m.summary(); summary != "" {
		parts = append(parts, styles.StatusBar.Render(summary))
	}
	if m.query.Triggered {
		parts = append(parts, styles.Subtitle.Render("new note"))
	}
	if n := len(m.results); n > 0 {
		start, end := m.pager.VisibleRange()
		parts = append(parts, styles.StatusText.Render(fmt.Sprintf("%d-%d of %d", start+1, end, n)))
	}
	return strings.Join(parts, " ")
}

func (m *SearchModel) summary() string {
	if m.vaults == nil {
		return ""
	}
	return fmt.Sprintf("%d vaults · %d notes", len(m.vaults.Vaults()), len(m.vaults.Notes()))
}

func (m *SearchModel) renderRow(r domain.RankedItem, selected bool) string {
	icon := r.Item.Icon()
	glyph := lipgloss.NewStyle().Foreground(styles.IconColor(icon)).Render(styles.IconGlyph(icon))

	if !selected {
		text := styles.ResultText.Render(Highlight(r.Item.Text(), m.query.Trimmed()))
		return fmt.Sprintf("%s %s\n  %s", glyph, text, styles.ResultSubtext.Render(r.Item.Subtext()))
	}

	var chips []string
	for i, a := range r.Item.Actions() {
		if i == m.action {
			chips = append(chips, styles.ActionChipActive.Render(a.Label))
		} else {
			chips = append(chips, styles.ActionChip.Render(a.Label))
		}
	}
	return fmt.Sprintf("%s %s\n  %s  %s",
		glyph,
		styles.ResultSelected.Render(r.Item.Text()),
		styles.ResultSubtext.Render(r.Item.Subtext()),
		strings.Join(chips, ""),
	)
}
