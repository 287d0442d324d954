package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/kmacinski/veil/internal/panel"
	"github.com/kmacinski/veil/internal/ui"
)

func TestGetLayout(t *testing.T) {
	r := DefaultResponsive
	require.Equal(t, "wide", r.GetLayout(200).Name)
	require.Equal(t, "two-column", r.GetLayout(100).Name)
	require.Equal(t, "stacked", r.GetLayout(40).Name)
}

func TestCalculateSizesGivesRemainderToLast(t *testing.T) {
	require.Equal(t, []int{30, 70}, calculateSizes([]int{30, 70}, 100, 10, Horizontal))
	require.Equal(t, []int{3, 3, 4}, calculateSizes([]int{1, 1, 1}, 0, 10, Vertical))
}

func newPanel(name string, opacity float64) *panel.Panel {
	p := panel.New(name, strings.ToUpper(name), panel.Text{Body: name + " body"}, ui.DefaultStyles)
	p.SetOpacity(opacity)
	return p
}

func TestRenderSkipsHiddenPanels(t *testing.T) {
	m := NewManager(DefaultResponsive)
	m.Resize(100, 20)
	require.Equal(t, "two-column", m.CurrentLayout().Name)

	roster := newPanel("roster", 1)
	shown := newPanel("notes", 1)
	hidden := newPanel("secret", 0)

	out := m.Render(roster, []*panel.Panel{roster, shown, hidden}, "status")
	require.Contains(t, out, "ROSTER")
	require.Contains(t, out, "NOTES")
	require.NotContains(t, out, "SECRET")
	require.Equal(t, 20, lipgloss.Height(out))
}

func TestRenderWithoutRosterUsesFullWidth(t *testing.T) {
	m := NewManager(DefaultResponsive)
	m.Resize(100, 12)

	roster := newPanel("roster", 0)
	out := m.Render(roster, []*panel.Panel{roster, newPanel("notes", 1)}, "")
	require.NotContains(t, out, "ROSTER")
	require.Contains(t, out, "NOTES")
}

func TestRenderZeroSize(t *testing.T) {
	m := NewManager(DefaultResponsive)
	require.Empty(t, m.Render(nil, nil, "status"))
}
