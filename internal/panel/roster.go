package panel

import (
	"fmt"

	"github.com/kmacinski/veil/internal/ui"
	"github.com/kmacinski/veil/internal/window"
)

// RosterEntry is one window as shown in the roster
type RosterEntry struct {
	Name    string
	State   window.State
	Focus   bool
	Opacity float64
}

// Roster lists registered windows with a selection cursor
type Roster struct {
	entries []RosterEntry
	cursor  int
	offset  int
	height  int
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{}
}

// SetEntries updates the listed windows
func (r *Roster) SetEntries(entries []RosterEntry) {
	r.entries = entries
	if r.cursor >= len(entries) {
		r.cursor = max(0, len(entries)-1)
	}
}

// Entries returns the listed windows
func (r *Roster) Entries() []RosterEntry {
	return r.entries
}

// Selected returns the name under the cursor
func (r *Roster) Selected() (string, bool) {
	if r.cursor < 0 || r.cursor >= len(r.entries) {
		return "", false
	}
	return r.entries[r.cursor].Name, true
}

// Cursor returns the cursor index
func (r *Roster) Cursor() int {
	return r.cursor
}

// Select moves the cursor to the named window
func (r *Roster) Select(name string) {
	for i, e := range r.entries {
		if e.Name == name {
			r.cursor = i
			r.ensureVisible()
			return
		}
	}
}

// Up moves the cursor up
func (r *Roster) Up() {
	if r.cursor > 0 {
		r.cursor--
		r.ensureVisible()
	}
}

// Down moves the cursor down
func (r *Roster) Down() {
	if r.cursor < len(r.entries)-1 {
		r.cursor++
		r.ensureVisible()
	}
}

// Top moves the cursor to the first window
func (r *Roster) Top() {
	r.cursor = 0
	r.offset = 0
}

// Bottom moves the cursor to the last window
func (r *Roster) Bottom() {
	r.cursor = max(0, len(r.entries)-1)
	r.ensureVisible()
}

func (r *Roster) ensureVisible() {
	visibleHeight := r.height
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	if r.cursor < r.offset {
		r.offset = r.cursor
	} else if r.cursor >= r.offset+visibleHeight {
		r.offset = r.cursor - visibleHeight + 1
	}
}

// Lines implements Content
func (r *Roster) Lines(width, height int, styles ui.Styles) []Line {
	r.height = height
	r.ensureVisible()

	if len(r.entries) == 0 {
		return []Line{{Text: "No windows", Style: styles.Muted}}
	}

	var out []Line
	for i := r.offset; i < len(r.entries) && i < r.offset+height; i++ {
		out = append(out, r.line(i, styles))
	}
	return out
}

func (r *Roster) line(i int, styles ui.Styles) Line {
	e := r.entries[i]

	cursor := " "
	style := styles.ListItem
	if i == r.cursor {
		cursor = ">"
		style = styles.ListItemSelected
	}

	marker := "○"
	if e.State == window.Open || e.State == window.Opening {
		marker = "●"
	}
	focus := ""
	if e.Focus {
		focus = " *"
	}

	slot := " "
	if i < 9 {
		slot = fmt.Sprint(i + 1)
	}

	return Line{
		Text:  fmt.Sprintf("%s %s %s %s%s  %s %3.0f%%", cursor, slot, marker, e.Name, focus, e.State, e.Opacity*100),
		Style: style,
	}
}
