package styles

import (
	"github.com/charmbracelet/lipgloss"

	"obsidex/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Obsidian purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Item colors
	KindVault   = lipgloss.Color("#A78BFA") // Light violet
	KindNote    = lipgloss.Color("#60A5FA") // Blue
	KindNoteAdd = lipgloss.Color("#34D399") // Emerald

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Result rows
	ResultText = lipgloss.NewStyle()

	ResultSubtext = lipgloss.NewStyle().
			Foreground(Muted)

	ResultSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Action chips under the selected row
	ActionChip = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	ActionChipActive = lipgloss.NewStyle().
				Background(Secondary).
				Foreground(Black).
				Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	InputTriggered = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Matched characters in result text
	SearchMatch = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// IconColor returns the color for an item icon reference
func IconColor(icon string) lipgloss.Color {
	switch icon {
	case domain.IconVault:
		return KindVault
	case domain.IconNote:
		return KindNote
	case domain.IconNoteAdd:
		return KindNoteAdd
	default:
		return Primary
	}
}

// IconGlyph returns a one-cell marker for an item icon reference
func IconGlyph(icon string) string {
	switch icon {
	case domain.IconVault:
		return "◆"
	case domain.IconNote:
		return "•"
	case domain.IconNoteAdd:
		return "+"
	default:
		return " "
	}
}
