package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/kmacinski/veil/internal/config"
	"github.com/kmacinski/veil/internal/frame"
	persist "github.com/kmacinski/veil/internal/state"
	"github.com/kmacinski/veil/internal/window"
)

type harness struct {
	app   *App
	clock *frame.ManualClock
	cfg   *config.Config
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.StateFile = filepath.Join(t.TempDir(), "state.yaml")
	if opts.Config != nil {
		cfg = opts.Config
	}
	opts.Config = cfg
	clock := &frame.ManualClock{}
	opts.Clock = clock

	a, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(a.Cleanup)
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	// First frame applies start modes.
	a.Update(frame.TickMsg{})
	return &harness{app: a, clock: clock, cfg: cfg}
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		h.app.Update(msg)
	}
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
	h.app.Update(frame.TickMsg{})
}

func (h *harness) window(name string) *window.Window {
	for _, w := range h.app.Windows() {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

func TestInitActivatesAndAppliesStartMode(t *testing.T) {
	h := newHarness(t, Options{})

	for _, w := range h.app.Windows() {
		require.True(t, w.Active(), w.Name())
	}
	require.True(t, h.window("windows").IsOpen(), "roster starts shown")
	require.False(t, h.window("notes").IsOpen())
	require.Len(t, h.app.Manager().Windows(), 3)
}

func TestSlotKeyFadesWindow(t *testing.T) {
	h := newHarness(t, Options{})
	notes := h.window("notes")

	h.press("3")
	require.True(t, notes.IsOpen())
	require.Equal(t, window.Opening, notes.State())
	require.Zero(t, notes.Visual().Opacity())

	h.advance(time.Second)
	require.Equal(t, window.Open, notes.State())
	require.Equal(t, 1.0, notes.Visual().Opacity())
	require.Contains(t, h.app.View(), "Notes")
}

func TestIsolateClosesOthers(t *testing.T) {
	h := newHarness(t, Options{})

	h.press("2")
	h.press("j", "j", "I")
	require.True(t, h.window("notes").IsOpen())
	require.False(t, h.window("help").IsOpen())
	require.False(t, h.window("windows").IsOpen())
	require.Zero(t, h.window("help").Visual().Opacity())
}

func TestCloseAll(t *testing.T) {
	h := newHarness(t, Options{})
	h.press("2", "3", "x")
	for _, w := range h.app.Windows() {
		require.False(t, w.IsOpen(), w.Name())
	}
	require.False(t, h.app.Manager().HasFocus())
}

func TestFocusChangesSetStatus(t *testing.T) {
	h := newHarness(t, Options{})

	h.press("3")
	require.Equal(t, "notes took focus", h.app.state.StatusMessage)
	require.True(t, h.app.Manager().HasFocus())
	require.True(t, h.app.cursor.Visible())
}

func TestRenameConflictKeepsModalOpen(t *testing.T) {
	h := newHarness(t, Options{})

	h.press("j", "j", "n")
	require.Equal(t, modalRename, h.app.state.ActiveModal)
	require.Equal(t, "notes", h.app.rename.Value())

	h.app.rename.SetValue("help")
	h.press("enter")
	require.Equal(t, modalRename, h.app.state.ActiveModal)
	require.Equal(t, "name already used by help", h.app.renameErr)
	require.Contains(t, h.app.View(), "name already used by help")
	require.NotNil(t, h.window("notes"))

	h.app.rename.SetValue("scratch pad")
	h.press("enter")
	require.Empty(t, h.app.state.ActiveModal)
	w, ok := h.app.Manager().LookupName("scratchpad")
	require.True(t, ok)
	require.Equal(t, "scratchpad", h.app.panelFor(w).Name())
}

func TestRenameEscapeCancels(t *testing.T) {
	h := newHarness(t, Options{})
	h.press("n")
	h.app.rename.SetValue("other")
	h.press("esc")
	require.Empty(t, h.app.state.ActiveModal)
	require.NotNil(t, h.window("windows"))
}

func TestHelpModal(t *testing.T) {
	h := newHarness(t, Options{})
	h.press("?")
	require.Contains(t, h.app.View(), "Keybindings")
	h.press("3")
	require.False(t, h.window("notes").IsOpen(), "keys go to the modal")
	h.press("esc")
	require.Empty(t, h.app.state.ActiveModal)
}

func TestPauseNeedsScaledClock(t *testing.T) {
	h := newHarness(t, Options{})
	h.press("p")
	require.False(t, h.app.state.Paused)
	require.Contains(t, h.app.state.StatusMessage, "scaled")
}

func TestPauseFreezesFades(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StateFile = filepath.Join(t.TempDir(), "state.yaml")
	wall := time.Unix(0, 0)
	clock := frame.NewScaledClock(func() time.Time { return wall })

	a, err := New(Options{Config: cfg, Clock: clock})
	require.NoError(t, err)
	a.Init()
	a.Update(frame.TickMsg{})

	notes := a.Windows()[2]
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.True(t, a.state.Paused)
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})

	wall = wall.Add(5 * time.Second)
	a.Update(frame.TickMsg{})
	require.Equal(t, window.Opening, notes.State())
	require.Zero(t, notes.Visual().Opacity())

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	wall = wall.Add(time.Second)
	a.Update(frame.TickMsg{})
	require.Equal(t, window.Open, notes.State())
}

func TestQuitSavesStateAndRestores(t *testing.T) {
	h := newHarness(t, Options{})
	h.press("3")

	_, cmd := h.app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	for _, w := range h.app.Windows() {
		require.False(t, w.Active())
	}

	snap, err := persist.Load(h.cfg.StateFile)
	require.NoError(t, err)
	require.True(t, snap["notes"])
	require.False(t, snap["help"])

	next := newHarness(t, Options{Config: h.cfg})
	require.True(t, next.window("notes").IsOpen())
	require.Equal(t, 1.0, next.window("notes").Visual().Opacity())
}

func TestRenamedWindowKeepsSavedState(t *testing.T) {
	h := newHarness(t, Options{})

	h.press("j", "j", "n")
	h.app.rename.SetValue("scratch")
	h.press("enter")
	require.Equal(t, "scratch", h.window("scratch").Name())

	h.press("3", "q")

	snap, err := persist.Load(h.cfg.StateFile)
	require.NoError(t, err)
	require.True(t, snap["notes"])
	require.NotContains(t, snap, "scratch")

	next := newHarness(t, Options{Config: h.cfg})
	require.True(t, next.window("notes").IsOpen())
}

func TestOpenAndIsolateOptions(t *testing.T) {
	h := newHarness(t, Options{Open: []string{"help"}, Isolate: "notes"})
	require.True(t, h.window("notes").IsOpen())
	require.False(t, h.window("help").IsOpen())

	h = newHarness(t, Options{Open: []string{"nope"}})
	require.Contains(t, h.app.state.StatusMessage, `"nope"`)
}

func TestConfigReloadAppliesDurations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[windows]]
name = "notes"
show_duration = "2s"
take_focus = false
`), 0o644))

	h := newHarness(t, Options{ConfigPath: path})
	h.app.Update(ConfigChangedMsg{})

	notes := h.window("notes")
	require.Equal(t, 2*time.Second, notes.Config().ShowDuration)
	require.False(t, notes.Config().TakeFocus)
	require.Contains(t, h.app.state.StatusMessage, "1 windows")
}

func TestConfigReloadFailureKeepsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`frame_interval = "soon"`), 0o644))

	h := newHarness(t, Options{ConfigPath: path})
	before := h.window("notes").Config()
	h.app.Update(ConfigChangedMsg{})
	require.Equal(t, before, h.window("notes").Config())
	require.Contains(t, h.app.state.StatusMessage, "config reload failed")
}

func TestDuplicateConfiguredWindowIsReported(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StateFile = filepath.Join(t.TempDir(), "state.yaml")
	cfg.Windows = []config.WindowConfig{
		{Name: "toast", Content: "text", AllowMultiple: true},
		{Name: "toast", Content: "text", AllowMultiple: true},
	}
	h := newHarness(t, Options{Config: cfg})
	require.Len(t, h.app.Manager().Windows(), 2)
}

func TestPreview(t *testing.T) {
	out, err := Preview(config.DefaultConfig(), 120, 30)
	require.NoError(t, err)
	require.Contains(t, out, "Windows")
	require.Contains(t, out, "Notes")
	require.Contains(t, out, "Keybindings")
}
