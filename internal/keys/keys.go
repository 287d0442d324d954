package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	GotoTop key.Binding
	GotoBot key.Binding
	Enter   key.Binding
	Escape  key.Binding

	// Window actions
	Toggle         key.Binding
	Isolate        key.Binding
	IsolateInstant key.Binding
	CloseAll       key.Binding
	Rename         key.Binding
	Slot           key.Binding

	// Actions
	Pause key.Binding
	Yank  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "navigate"),
	),
	GotoTop: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g/G", "top/bottom"),
	),
	GotoBot: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("g/G", "top/bottom"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "t"),
		key.WithHelp("space", "open/close"),
	),
	Isolate: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "isolate"),
	),
	IsolateInstant: key.NewBinding(
		key.WithKeys("I"),
		key.WithHelp("I", "isolate instantly"),
	),
	CloseAll: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close all"),
	),
	Rename: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "rename"),
	),
	Slot: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "toggle window N"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause fades"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy name"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.Up,
		DefaultKeyMap.GotoTop,
		DefaultKeyMap.Toggle,
		DefaultKeyMap.Slot,
		DefaultKeyMap.Isolate,
		DefaultKeyMap.IsolateInstant,
		DefaultKeyMap.CloseAll,
		DefaultKeyMap.Rename,
		DefaultKeyMap.Pause,
		DefaultKeyMap.Yank,
		DefaultKeyMap.Help,
		DefaultKeyMap.Quit,
	}
}

// SlotIndex returns the zero-based window index for a digit key
func SlotIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}
