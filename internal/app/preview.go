package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/veil/internal/config"
)

// Preview renders every configured window once in design preview. Nothing is
// registered and no state is read or written.
func Preview(cfg *config.Config, width, height int) (string, error) {
	a, err := New(Options{Config: cfg, Preview: true})
	if err != nil {
		return "", err
	}
	defer a.Cleanup()

	a.activate()
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return a.View(), nil
}
