package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Colors defines the color palette for the application
type Colors struct {
	Background      lipgloss.Color
	Text            lipgloss.Color
	Muted           lipgloss.Color
	Header          lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Open            lipgloss.Color
	Closed          lipgloss.Color
	Warning         lipgloss.Color
	StatusBar       lipgloss.Color
	StatusBarText   lipgloss.Color
}

// DefaultColors returns the default color palette
var DefaultColors = Colors{
	Background:      lipgloss.Color("#1e1e2e"),
	Text:            lipgloss.Color("#cdd6f4"),
	Muted:           lipgloss.Color("#6c7086"),
	Header:          lipgloss.Color("#89b4fa"),
	BorderFocused:   lipgloss.Color("#89b4fa"),
	BorderUnfocused: lipgloss.Color("#45475a"),
	Open:            lipgloss.Color("#a6e3a1"),
	Closed:          lipgloss.Color("#6c7086"),
	Warning:         lipgloss.Color("#f38ba8"),
	StatusBar:       lipgloss.Color("#313244"),
	StatusBarText:   lipgloss.Color("#cdd6f4"),
}

// Blend mixes fg toward bg so that opacity 1 is fg and 0 is bg.
// Colors that are not hex pass through unchanged.
func Blend(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	f, err := colorful.Hex(string(fg))
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(string(bg))
	if err != nil {
		return fg
	}
	opacity = min(max(opacity, 0), 1)
	return lipgloss.Color(b.BlendRgb(f, opacity).Clamped().Hex())
}
