package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/veil/internal/panel"
)

// Direction represents the split direction
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Slot names
const (
	SlotRoster = "roster"
	SlotPanels = "panels"
)

// Slot represents a named area in the layout
type Slot struct {
	Name string
}

// Layout defines the structure of slots. Panels shown in the panels slot
// are split evenly along PanelDirection.
type Layout struct {
	Name           string
	Direction      Direction
	Slots          []Slot
	Ratios         []int
	PanelDirection Direction
}

// Predefined layouts
var (
	Wide = Layout{
		Name:           "wide",
		Direction:      Horizontal,
		Ratios:         []int{30, 70},
		Slots:          []Slot{{Name: SlotRoster}, {Name: SlotPanels}},
		PanelDirection: Horizontal,
	}

	TwoColumn = Layout{
		Name:           "two-column",
		Direction:      Horizontal,
		Ratios:         []int{35, 65},
		Slots:          []Slot{{Name: SlotRoster}, {Name: SlotPanels}},
		PanelDirection: Vertical,
	}

	Stacked = Layout{
		Name:           "stacked",
		Direction:      Vertical,
		Ratios:         []int{30, 70},
		Slots:          []Slot{{Name: SlotRoster}, {Name: SlotPanels}},
		PanelDirection: Vertical,
	}
)

// Breakpoint defines when to switch layouts
type Breakpoint struct {
	MinWidth int
	Layout   Layout
}

// ResponsiveConfig defines breakpoints for responsive layouts
type ResponsiveConfig struct {
	Breakpoints []Breakpoint
}

// DefaultResponsive is the default responsive configuration
var DefaultResponsive = ResponsiveConfig{
	Breakpoints: []Breakpoint{
		{MinWidth: 140, Layout: Wide},
		{MinWidth: 80, Layout: TwoColumn},
		{MinWidth: 0, Layout: Stacked},
	},
}

// GetLayout returns the appropriate layout for the given width
func (r *ResponsiveConfig) GetLayout(width int) Layout {
	for _, bp := range r.Breakpoints {
		if width >= bp.MinWidth {
			return bp.Layout
		}
	}
	return TwoColumn
}

// Manager handles layout rendering
type Manager struct {
	responsive ResponsiveConfig
	current    Layout
	width      int
	height     int
}

// NewManager creates a new layout manager
func NewManager(responsive ResponsiveConfig) *Manager {
	return &Manager{
		responsive: responsive,
		current:    TwoColumn,
	}
}

// Resize updates the layout dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
	m.current = m.responsive.GetLayout(width)
}

// CurrentLayout returns the current layout
func (m *Manager) CurrentLayout() Layout {
	return m.current
}

// Render draws the roster and every visible panel, followed by the status
// bar. A hidden roster gives its space to the panels.
func (m *Manager) Render(roster *panel.Panel, panels []*panel.Panel, statusBar string) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Reserve space for status bar
	contentHeight := m.height - 1

	var visible []*panel.Panel
	for _, p := range panels {
		if p != roster && p.Visible() {
			visible = append(visible, p)
		}
	}

	var content string
	if roster == nil || !roster.Visible() {
		content = m.renderPanels(visible, m.current.PanelDirection, m.width, contentHeight)
	} else {
		content = m.renderSlots(roster, visible, m.width, contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m *Manager) renderSlots(roster *panel.Panel, visible []*panel.Panel, width, height int) string {
	dir := m.current.Direction
	sizes := calculateSizes(m.current.Ratios, width, height, dir)

	var rendered []string
	for i, slot := range m.current.Slots {
		slotWidth, slotHeight := width, height
		if dir == Horizontal {
			slotWidth = sizes[i]
		} else {
			slotHeight = sizes[i]
		}

		switch slot.Name {
		case SlotRoster:
			rendered = append(rendered, roster.View(slotWidth, slotHeight))
		case SlotPanels:
			rendered = append(rendered, m.renderPanels(visible, m.current.PanelDirection, slotWidth, slotHeight))
		}
	}

	// Join the rendered slots
	if dir == Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m *Manager) renderPanels(visible []*panel.Panel, dir Direction, width, height int) string {
	if len(visible) == 0 {
		return blank(width, height)
	}

	ratios := make([]int, len(visible))
	for i := range ratios {
		ratios[i] = 1
	}
	sizes := calculateSizes(ratios, width, height, dir)

	var rendered []string
	for i, p := range visible {
		if dir == Horizontal {
			rendered = append(rendered, p.View(sizes[i], height))
		} else {
			rendered = append(rendered, p.View(width, sizes[i]))
		}
	}

	if dir == Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func blank(width, height int) string {
	if height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", max(width, 0))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func calculateSizes(ratios []int, width, height int, dir Direction) []int {
	total := 0
	for _, r := range ratios {
		total += r
	}

	var dimension int
	if dir == Horizontal {
		dimension = width
	} else {
		dimension = height
	}

	sizes := make([]int, len(ratios))
	remaining := dimension
	for i, r := range ratios {
		if i == len(ratios)-1 {
			// Last slot gets remaining space to avoid rounding issues
			sizes[i] = remaining
		} else {
			size := (dimension * r) / total
			sizes[i] = size
			remaining -= size
		}
	}

	return sizes
}
