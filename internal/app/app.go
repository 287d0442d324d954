// Package app is the terminal host for veil windows.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/veil/internal/config"
	"github.com/kmacinski/veil/internal/cursor"
	"github.com/kmacinski/veil/internal/frame"
	"github.com/kmacinski/veil/internal/keys"
	"github.com/kmacinski/veil/internal/layout"
	"github.com/kmacinski/veil/internal/panel"
	persist "github.com/kmacinski/veil/internal/state"
	"github.com/kmacinski/veil/internal/ui"
	"github.com/kmacinski/veil/internal/watcher"
	"github.com/kmacinski/veil/internal/window"
)

const (
	modalHelp   = "help"
	modalRename = "rename"
)

// Options configure a new App
type Options struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	// Open lists windows opened instantly after activation
	Open []string
	// Isolate names a window isolated instantly after activation
	Isolate string

	// Clock overrides the clock chosen by the config
	Clock frame.Clock
	// Preview builds design-preview windows that are never registered
	Preview bool
}

// App is the main application model
type App struct {
	cfg        *config.Config
	configPath string
	logger     *slog.Logger
	opts       Options

	state  *State
	styles ui.Styles
	layout *layout.Manager

	clock  frame.Clock
	scaled *frame.ScaledClock
	loop   *frame.Loop
	cursor *cursor.Controller
	mgr    *window.Manager

	// Configured windows, in config order. keys[i] is the config key of
	// windows[i] and panels[i] is its visual.
	windows []*window.Window
	panels  []*panel.Panel
	keys    []string

	roster      *panel.Roster
	rosterPanel *panel.Panel
	helpModal   *panel.Panel

	rename       textinput.Model
	renameTarget *window.Window
	renameErr    string

	snapshot    persist.Snapshot
	unsubscribe []func()

	width  int
	height int

	watcher *watcher.Watcher
	program *tea.Program
}

// New creates a new application
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		logger:     logger,
		opts:       opts,
		state:      NewState(),
		styles:     ui.DefaultStyles,
		layout:     layout.NewManager(layout.DefaultResponsive),
		cursor:     cursor.New(),
		roster:     panel.NewRoster(),
		snapshot:   persist.Snapshot{},
	}

	a.clock = opts.Clock
	if a.clock == nil {
		if cfg.Clock == "scaled" {
			a.clock = frame.NewScaledClock(nil)
		} else {
			a.clock = frame.NewMonotonicClock()
		}
	}
	a.scaled, _ = a.clock.(*frame.ScaledClock)
	a.loop = frame.NewLoop(a.clock)

	a.mgr = window.NewManager(window.Options{
		Scheme:       cfg.Scheme(),
		Scheduler:    a.loop,
		Cursor:       a.cursor,
		Playing:      !opts.Preview,
		UnlockedMode: cfg.UnlockedMode(),
		Logger:       logger,
	})

	for _, wc := range cfg.Windows {
		a.addWindow(wc)
	}

	a.helpModal = panel.New(modalHelp, "Keybindings", panel.Help{}, a.styles)
	a.helpModal.SetOpacity(1)
	a.helpModal.SetInteractive(true)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Placeholder = "new name"
	a.rename = ti

	a.unsubscribe = append(a.unsubscribe,
		a.mgr.OnWindowFocusChanged(func(w *window.Window, focused bool) {
			if focused {
				a.state.SetStatus(fmt.Sprintf("%s took focus", w))
			} else {
				a.state.SetStatus(fmt.Sprintf("%s released focus", w))
			}
		}),
		a.mgr.OnGlobalFocusChanged(func(has bool) {
			a.logger.Debug("focus changed", "has_focus", has)
		}),
	)

	if !opts.Preview {
		snap, err := persist.Load(cfg.StateFile)
		if err != nil {
			logger.Warn("ignoring saved window state", "path", cfg.StateFile, "err", err)
		} else {
			a.snapshot = snap
		}
	}

	a.refreshRoster()
	return a, nil
}

func (a *App) addWindow(wc config.WindowConfig) {
	key := a.cfg.Key(wc)

	var id window.Identity
	if a.cfg.Scheme() == window.SchemeKind {
		id = window.KindOf(window.Kind(wc.Kind))
	} else {
		id = window.Named(wc.Name)
	}

	title := wc.Title
	if title == "" {
		title = key
	}

	var content panel.Content
	switch wc.Content {
	case "help":
		content = panel.Help{}
	case "roster":
		content = a.roster
	default:
		content = panel.Text{Body: wc.Body}
	}

	p := panel.New(key, title, content, a.styles)
	if wc.Content == "roster" && a.rosterPanel == nil {
		a.rosterPanel = p
	}

	wcfg := a.cfg.WindowConfig(wc)
	if a.opts.Preview {
		wcfg.Mode = window.ModeDesignPreview
	}

	a.windows = append(a.windows, a.mgr.NewWindow(id, p, wcfg))
	a.panels = append(a.panels, p)
	a.keys = append(a.keys, key)
}

// SetProgram sets the tea.Program reference for sending messages from watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if a.configPath == "" {
		return
	}

	w, err := watcher.New(a.configPath, 300*time.Millisecond, func() {
		if a.program != nil {
			a.program.Send(ConfigChangedMsg{})
		}
	})
	if err != nil {
		a.logger.Warn("config watcher disabled", "path", a.configPath, "err", err)
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher and drops focus listeners
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	for _, unsub := range a.unsubscribe {
		unsub()
	}
	a.unsubscribe = nil
}

// Manager returns the window manager
func (a *App) Manager() *window.Manager {
	return a.mgr
}

// Windows returns the configured windows in config order
func (a *App) Windows() []*window.Window {
	return a.windows
}

// Init activates every window and starts the frame loop
func (a *App) Init() tea.Cmd {
	a.activate()
	return tea.Batch(frame.Tick(a.cfg.FrameInterval.Duration), a.cursor.Flush())
}

func (a *App) activate() {
	a.snapshot.Restore(a.keys, a.windows)

	for _, w := range a.windows {
		if err := w.Activate(); err != nil {
			a.logger.Warn("window not activated", "window", w.String(), "err", err)
			a.state.SetStatus(fmt.Sprintf("%s: %v", w, err))
		}
	}

	for _, name := range a.opts.Open {
		if w, ok := a.mgr.LookupName(name); ok {
			w.SetOpen(true, true)
		} else {
			a.state.SetStatus(fmt.Sprintf("no window %q", name))
		}
	}
	if a.opts.Isolate != "" {
		if w, ok := a.mgr.LookupName(a.opts.Isolate); ok {
			w.Isolate(true)
		} else {
			a.state.SetStatus(fmt.Sprintf("no window %q", a.opts.Isolate))
		}
	}

	a.refreshRoster()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.Resize(msg.Width, msg.Height)
		return a, nil

	case frame.TickMsg:
		a.loop.Step()
		a.refreshRoster()
		return a, tea.Batch(frame.Tick(a.cfg.FrameInterval.Duration), a.cursor.Flush())

	case ConfigChangedMsg:
		a.reloadConfig()
		return a, a.cursor.Flush()

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch a.state.ActiveModal {
		case modalRename:
			cmd = a.handleRenameKey(msg)
		case modalHelp:
			cmd = a.handleModalKey(msg)
		default:
			cmd = a.handleKey(msg)
		}
		a.refreshRoster()
		return a, tea.Batch(cmd, a.cursor.Flush())
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	a.state.SetStatus("")

	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Quit):
		a.shutdown()
		return tea.Quit

	case key.Matches(msg, keys.DefaultKeyMap.Help):
		a.state.ToggleModal(modalHelp)

	case key.Matches(msg, keys.DefaultKeyMap.Up):
		a.roster.Up()

	case key.Matches(msg, keys.DefaultKeyMap.Down):
		a.roster.Down()

	case key.Matches(msg, keys.DefaultKeyMap.GotoTop):
		a.roster.Top()

	case key.Matches(msg, keys.DefaultKeyMap.GotoBot):
		a.roster.Bottom()

	case key.Matches(msg, keys.DefaultKeyMap.Toggle), key.Matches(msg, keys.DefaultKeyMap.Enter):
		if w := a.selected(); w != nil {
			w.Toggle(false)
		}

	case key.Matches(msg, keys.DefaultKeyMap.Isolate):
		if w := a.selected(); w != nil {
			w.Isolate(false)
		}

	case key.Matches(msg, keys.DefaultKeyMap.IsolateInstant):
		if w := a.selected(); w != nil {
			w.Isolate(true)
		}

	case key.Matches(msg, keys.DefaultKeyMap.Slot):
		if i, ok := keys.SlotIndex(msg.String()); ok && i < len(a.windows) {
			a.roster.Select(a.windows[i].Name())
			a.windows[i].Toggle(false)
		}

	case key.Matches(msg, keys.DefaultKeyMap.CloseAll):
		a.mgr.CloseAll(false)

	case key.Matches(msg, keys.DefaultKeyMap.Pause):
		a.togglePause()

	case key.Matches(msg, keys.DefaultKeyMap.Rename):
		return a.startRename()

	case key.Matches(msg, keys.DefaultKeyMap.Yank):
		if w := a.selected(); w != nil {
			if err := clipboard.WriteAll(w.Name()); err == nil {
				a.state.SetStatus(fmt.Sprintf("Copied: %s", w.Name()))
			} else {
				a.logger.Debug("clipboard unavailable", "err", err)
			}
		}
	}
	return nil
}

func (a *App) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	// Always allow quit
	if key.Matches(msg, keys.DefaultKeyMap.Quit) {
		a.shutdown()
		return tea.Quit
	}

	// Close modal on ? or Escape
	if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
		a.state.CloseModal()
	}
	return nil
}

func (a *App) selected() *window.Window {
	i := a.roster.Cursor()
	if i < 0 || i >= len(a.windows) {
		return nil
	}
	return a.windows[i]
}

func (a *App) togglePause() {
	if a.scaled == nil {
		a.state.SetStatus(`pause needs clock = "scaled"`)
		return
	}
	a.state.Paused = !a.state.Paused
	if a.state.Paused {
		a.scaled.SetScale(0)
		a.state.SetStatus("fades paused")
	} else {
		a.scaled.SetScale(1)
		a.state.SetStatus("fades resumed")
	}
}

func (a *App) startRename() tea.Cmd {
	w := a.selected()
	if w == nil {
		return nil
	}
	if a.mgr.Scheme() != window.SchemeName {
		a.state.SetStatus("rename needs identity = \"name\"")
		return nil
	}
	a.renameTarget = w
	a.renameErr = ""
	a.rename.SetValue(w.Name())
	a.rename.CursorEnd()
	a.state.OpenModal(modalRename)
	return a.rename.Focus()
}

func (a *App) handleRenameKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Escape):
		a.closeRename()
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.Enter):
		w := a.renameTarget
		old := w.Name()
		if err := w.Rename(a.rename.Value()); err != nil {
			a.renameErr = renameError(err)
			return nil
		}
		a.panelFor(w).SetName(w.Name())
		a.closeRename()
		a.state.SetStatus(fmt.Sprintf("Renamed %s to %s", old, w.Name()))
		return nil
	}

	var cmd tea.Cmd
	a.rename, cmd = a.rename.Update(msg)
	a.renameErr = ""
	return cmd
}

func renameError(err error) string {
	var dup *window.DuplicateIdentityError
	if errors.As(err, &dup) {
		return fmt.Sprintf("name already used by %v", dup.Existing)
	}
	if errors.Is(err, window.ErrEmptyIdentity) {
		return "name must not be empty"
	}
	return err.Error()
}

func (a *App) closeRename() {
	a.rename.Blur()
	a.renameTarget = nil
	a.renameErr = ""
	a.state.CloseModal()
}

func (a *App) panelFor(w *window.Window) *panel.Panel {
	for i, x := range a.windows {
		if x == w {
			return a.panels[i]
		}
	}
	return nil
}

func (a *App) reloadConfig() {
	cfg, err := config.LoadFromFile(a.configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		a.logger.Warn("config reload failed", "path", a.configPath, "err", err)
		a.state.SetStatus("config reload failed: " + firstLine(err.Error()))
		return
	}

	applied := 0
	for _, wc := range cfg.Windows {
		k := cfg.Key(wc)
		settings := cfg.WindowConfig(wc)
		for i, w := range a.windows {
			if a.keys[i] != k {
				continue
			}
			w.SetDurations(settings.ShowDuration, settings.HideDuration)
			w.SetTakeFocus(settings.TakeFocus)
			applied++
		}
	}
	a.logger.Info("config reloaded", "path", a.configPath, "windows", applied)
	a.state.SetStatus(fmt.Sprintf("config reloaded (%d windows)", applied))
}

// shutdown deactivates every window and persists which were open
func (a *App) shutdown() {
	if a.opts.Preview {
		return
	}
	for _, w := range a.windows {
		w.Deactivate()
	}
	if err := persist.Save(a.cfg.StateFile, persist.Capture(a.keys, a.windows)); err != nil {
		a.logger.Error("saving window state", "path", a.cfg.StateFile, "err", err)
	}
}

func (a *App) refreshRoster() {
	focus := a.mgr.Focus()
	entries := make([]panel.RosterEntry, len(a.windows))
	for i, w := range a.windows {
		entries[i] = panel.RosterEntry{
			Name:    w.Name(),
			State:   w.State(),
			Focus:   focus.Contributes(w),
			Opacity: a.panels[i].Opacity(),
		}
	}
	a.roster.SetEntries(entries)
}

// View renders the application
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	mainView := a.layout.Render(a.rosterPanel, a.panels, a.renderStatusBar())

	switch a.state.ActiveModal {
	case modalHelp:
		return a.renderWithModal(a.helpModal.View(min(50, a.width-4), min(20, a.height-4)))
	case modalRename:
		return a.renderWithModal(a.renderRename())
	}
	return mainView
}

func (a *App) renderStatusBar() string {
	open := 0
	for _, w := range a.windows {
		if w.IsOpen() {
			open++
		}
	}

	focus := "free"
	if a.mgr.HasFocus() {
		focus = "focused"
	}

	left := fmt.Sprintf(" %d/%d open  [%s]  [%s]", open, len(a.windows), a.mgr.Scheme(), focus)
	if a.state.Paused {
		left += "  [paused]"
	}
	if a.state.StatusMessage != "" {
		left += a.styles.Muted.Render(" │ " + a.state.StatusMessage)
	}

	// Pad to full width
	padding := max(a.width-lipgloss.Width(left), 0)

	return a.styles.StatusBar.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding))
}

func (a *App) renderRename() string {
	name := ""
	if a.renameTarget != nil {
		name = a.renameTarget.Name()
	}
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Rename " + name))
	b.WriteString("\n")
	b.WriteString(a.rename.View())
	if a.renameErr != "" {
		b.WriteString("\n\n")
		b.WriteString(a.styles.Warning.Render(a.renameErr))
	}
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("enter to confirm, esc to cancel"))
	return a.styles.Modal.Width(min(50, a.width-4)).Render(b.String())
}

func (a *App) renderWithModal(modal string) string {
	// Center modal on screen
	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
