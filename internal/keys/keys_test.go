package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestSlotIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"9", 8, true},
		{"0", 0, false},
		{"a", 0, false},
		{"12", 0, false},
	}
	for _, tt := range tests {
		got, ok := SlotIndex(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestBindingsMatchRunes(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}
	require.True(t, key.Matches(msg, DefaultKeyMap.Isolate))
	require.False(t, key.Matches(msg, DefaultKeyMap.IsolateInstant))

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	require.True(t, key.Matches(space, DefaultKeyMap.Toggle))
}

func TestHelpBindingsHaveHelp(t *testing.T) {
	for _, b := range HelpBindings() {
		require.NotEmpty(t, b.Help().Key)
		require.NotEmpty(t, b.Help().Desc)
	}
}
