// Package panel renders windows in the terminal. A Panel is the Visual a
// window fades; its content decides what is drawn inside the frame.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/veil/internal/ui"
	"github.com/kmacinski/veil/internal/window"
)

// Line is one row of panel content
type Line struct {
	Text  string
	Style lipgloss.Style
}

// Content produces the rows drawn inside a panel
type Content interface {
	Lines(width, height int, styles ui.Styles) []Line
}

// Panel is a bordered terminal box with an opacity
type Panel struct {
	name    string
	title   string
	content Content
	styles  ui.Styles

	opacity     float64
	interactive bool
	blocksInput bool
}

var _ window.Visual = (*Panel)(nil)

// New creates a panel
func New(name, title string, content Content, styles ui.Styles) *Panel {
	return &Panel{
		name:    name,
		title:   title,
		content: content,
		styles:  styles,
	}
}

// Name returns the panel name
func (p *Panel) Name() string { return p.name }

// SetName changes the panel name after a rename
func (p *Panel) SetName(name string) { p.name = name }

// Title returns the panel title
func (p *Panel) Title() string { return p.title }

// Content returns the panel content
func (p *Panel) Content() Content { return p.content }

// SetOpacity implements window.Visual
func (p *Panel) SetOpacity(o float64) { p.opacity = o }

// Opacity implements window.Visual
func (p *Panel) Opacity() float64 { return p.opacity }

// SetInteractive implements window.Visual
func (p *Panel) SetInteractive(b bool) { p.interactive = b }

// SetBlocksInput implements window.Visual
func (p *Panel) SetBlocksInput(b bool) { p.blocksInput = b }

// Interactive reports whether the panel accepts input
func (p *Panel) Interactive() bool { return p.interactive }

// BlocksInput reports whether the panel captures input meant for panels behind it
func (p *Panel) BlocksInput() bool { return p.blocksInput }

// Visible reports whether anything would be drawn
func (p *Panel) Visible() bool { return p.opacity > 0 }

// View renders the panel at its current opacity
func (p *Panel) View(width, height int) string {
	if !p.Visible() {
		return ""
	}

	// Calculate content dimensions
	contentWidth := width - 2   // borders
	contentHeight := height - 2 // borders
	if contentWidth < 3 || contentHeight < 1 {
		return ""
	}
	textWidth := contentWidth - 2 // padding

	bg := p.styles.Colors.Background
	style := p.styles.PanelUnfocused
	border := p.styles.Colors.BorderUnfocused
	if p.interactive {
		style = p.styles.PanelFocused
		border = p.styles.Colors.BorderFocused
	}
	style = style.BorderForeground(ui.Blend(border, bg, p.opacity))

	var lines []string
	title := ansi.Truncate(p.title, textWidth, "…")
	lines = append(lines, p.fade(p.styles.PanelTitle).Render(title))

	if p.content != nil {
		for _, l := range p.content.Lines(textWidth, contentHeight-1, p.styles) {
			if len(lines) >= contentHeight {
				break
			}
			text := ansi.Truncate(l.Text, textWidth, "…")
			lines = append(lines, " "+p.fade(l.Style).Render(text))
		}
	}

	// Pad remaining lines
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return style.
		Width(contentWidth).
		Height(contentHeight).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) fade(s lipgloss.Style) lipgloss.Style {
	if p.opacity >= 1 {
		return s
	}
	if c, ok := s.GetForeground().(lipgloss.Color); ok {
		return s.Foreground(ui.Blend(c, p.styles.Colors.Background, p.opacity))
	}
	return s
}
