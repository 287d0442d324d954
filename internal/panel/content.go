package panel

import (
	"fmt"
	"strings"

	"github.com/kmacinski/veil/internal/keys"
	"github.com/kmacinski/veil/internal/ui"
)

// Text shows a fixed body
type Text struct {
	Body string
}

// Lines implements Content
func (t Text) Lines(width, height int, styles ui.Styles) []Line {
	if t.Body == "" {
		return []Line{{Text: "(empty)", Style: styles.Muted}}
	}
	var out []Line
	for _, s := range strings.Split(strings.TrimRight(t.Body, "\n"), "\n") {
		out = append(out, Line{Text: s, Style: styles.ListItem})
	}
	return out
}

// Help lists the keybindings
type Help struct{}

// Lines implements Content
func (Help) Lines(width, height int, styles ui.Styles) []Line {
	var out []Line
	for _, b := range keys.HelpBindings() {
		h := b.Help()
		out = append(out, Line{
			Text:  fmt.Sprintf("%-8s %s", h.Key, h.Desc),
			Style: styles.ListItem,
		})
	}
	out = append(out, Line{})
	out = append(out, Line{Text: "Press ? or Esc to close", Style: styles.Muted})
	return out
}
