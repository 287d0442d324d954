package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the application
type Styles struct {
	Colors Colors

	// Panel styles
	PanelFocused   lipgloss.Style
	PanelUnfocused lipgloss.Style
	PanelTitle     lipgloss.Style
	PanelBody      lipgloss.Style

	// Roster styles
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemMuted    lipgloss.Style
	StateOpen        lipgloss.Style
	StateClosed      lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Warning    lipgloss.Style

	// General
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Colors: c,

		// Panel styles
		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused),
		PanelUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderUnfocused),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Header).
			Padding(0, 1),
		PanelBody: lipgloss.NewStyle().
			Foreground(c.Text).
			Padding(0, 1),

		// Roster styles
		ListItem: lipgloss.NewStyle().
			Foreground(c.Text),
		ListItemSelected: lipgloss.NewStyle().
			Foreground(c.Header).
			Bold(true),
		ListItemMuted: lipgloss.NewStyle().
			Foreground(c.Muted),
		StateOpen: lipgloss.NewStyle().
			Foreground(c.Open),
		StateClosed: lipgloss.NewStyle().
			Foreground(c.Closed),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Background(c.StatusBar).
			Foreground(c.StatusBarText).
			Padding(0, 1),

		// Modal
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Header).
			MarginBottom(1),
		Warning: lipgloss.NewStyle().
			Foreground(c.Warning).
			Bold(true),

		// General
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
