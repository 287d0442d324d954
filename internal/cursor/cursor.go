// Package cursor maps window focus onto the terminal cursor and mouse.
package cursor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/veil/internal/window"
)

// Controller records cursor requests and turns them into bubbletea commands
type Controller struct {
	visible bool
	lock    window.LockMode
	pending []tea.Cmd
}

var _ window.CursorController = (*Controller)(nil)

// New creates a controller. The terminal starts with a visible, free cursor.
func New() *Controller {
	return &Controller{visible: true}
}

// SetVisible implements window.CursorController
func (c *Controller) SetVisible(v bool) {
	c.visible = v
	if v {
		c.pending = append(c.pending, tea.ShowCursor)
	} else {
		c.pending = append(c.pending, tea.HideCursor)
	}
}

// SetLockMode implements window.CursorController. A locked cursor stops
// mouse reporting; confined keeps clicks and drags only.
func (c *Controller) SetLockMode(m window.LockMode) {
	c.lock = m
	switch m {
	case window.LockLocked:
		c.pending = append(c.pending, tea.DisableMouse)
	case window.LockConfined:
		c.pending = append(c.pending, tea.EnableMouseCellMotion)
	default:
		c.pending = append(c.pending, tea.EnableMouseAllMotion)
	}
}

// Visible returns the last requested visibility
func (c *Controller) Visible() bool { return c.visible }

// LockMode returns the last requested lock mode
func (c *Controller) LockMode() window.LockMode { return c.lock }

// Flush returns the queued commands as one and clears the queue
func (c *Controller) Flush() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmds := c.pending
	c.pending = nil
	return tea.Sequence(cmds...)
}
