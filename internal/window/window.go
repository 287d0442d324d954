package window

import (
	"time"

	"github.com/google/uuid"
)

// StartMode is the action applied at a window's first live frame
type StartMode int

const (
	StartNone StartMode = iota
	StartShow
	StartHide
)

// Mode separates live windows from design-time previews
type Mode int

const (
	// ModeLive windows register, take focus and move the cursor
	ModeLive Mode = iota
	// ModeDesignPreview windows render at full opacity with no side effects
	ModeDesignPreview
)

// State is the derived lifecycle state of a window
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// Config holds per-window settings
type Config struct {
	ShowDuration  time.Duration
	HideDuration  time.Duration
	TakeFocus     bool
	AllowMultiple bool
	StartMode     StartMode
	Mode          Mode
}

// Window is an open/closed panel that fades between states
type Window struct {
	id       string
	identity Identity
	cfg      Config

	mgr    *Manager
	visual Visual
	fader  *Fader

	isOpen  bool
	wasOpen bool

	active     bool
	registered bool
	started    bool
	startStep  Handle
}

// NewWindow creates an inactive window bound to visual
func (m *Manager) NewWindow(id Identity, visual Visual, cfg Config) *Window {
	cfg.ShowDuration = max(cfg.ShowDuration, 0)
	cfg.HideDuration = max(cfg.HideDuration, 0)
	return &Window{
		id:       uuid.NewString(),
		identity: id,
		cfg:      cfg,
		mgr:      m,
		visual:   visual,
		fader:    NewFader(m.sched, visual),
	}
}

// ID returns the window's instance id
func (w *Window) ID() string { return w.id }

// Identity returns the identity the window registers under
func (w *Window) Identity() Identity { return w.identity }

// Name returns the identity key
func (w *Window) Name() string { return w.identity.String() }

// String implements fmt.Stringer
func (w *Window) String() string { return w.identity.String() }

// Visual returns the bound visual
func (w *Window) Visual() Visual { return w.visual }

// Config returns the window's settings
func (w *Window) Config() Config { return w.cfg }

// IsOpen returns the logical open state
func (w *Window) IsOpen() bool { return w.isOpen }

// WasOpen returns the open state captured at the last deactivation
func (w *Window) WasOpen() bool { return w.wasOpen }

// Active reports whether the window is between Activate and Deactivate
func (w *Window) Active() bool { return w.active }

// State derives the lifecycle state from the open flag and the fade in flight
func (w *Window) State() State {
	switch {
	case w.isOpen && w.fader.Active():
		return Opening
	case w.isOpen:
		return Open
	case w.fader.Active():
		return Closing
	default:
		return Closed
	}
}

// SetWasOpen seeds the restored state of an inactive window
func (w *Window) SetWasOpen(open bool) {
	if w.active {
		return
	}
	w.wasOpen = open
}

// SetDurations changes the fade durations. Negative values clamp to zero.
func (w *Window) SetDurations(show, hide time.Duration) {
	w.cfg.ShowDuration = max(show, 0)
	w.cfg.HideDuration = max(hide, 0)
}

// SetTakeFocus changes focus participation, keeping the focus set in step
func (w *Window) SetTakeFocus(take bool) {
	if w.cfg.TakeFocus == take {
		return
	}
	w.cfg.TakeFocus = take
	if w.registered && w.cfg.Mode == ModeLive && w.isOpen {
		w.mgr.focus.Focus(w, take)
	}
}

// Activate registers the window and restores its last open state
func (w *Window) Activate() error {
	if w.active {
		return nil
	}

	if w.cfg.Mode == ModeDesignPreview {
		w.active = true
		w.visual.SetOpacity(1)
		return nil
	}

	if err := w.mgr.register(w); err != nil {
		return err
	}
	w.active = true
	w.registered = true

	w.setOpen(w.wasOpen, true)

	if w.cfg.StartMode != StartNone && w.mgr.playing && !w.started {
		// Deferred one frame so the host can finish binding the visual.
		w.startStep = w.mgr.sched.ScheduleRepeating(func() bool {
			w.startStep = 0
			w.started = true
			w.setOpen(w.cfg.StartMode == StartShow, true)
			return false
		})
	}

	w.mgr.logger.Debug("window activated", "window", w.identity.String(), "id", w.id, "open", w.isOpen)
	return nil
}

// Deactivate closes the window instantly, remembering whether it was open,
// and removes it from the registry
func (w *Window) Deactivate() {
	if !w.active {
		return
	}

	if w.cfg.Mode == ModeDesignPreview {
		w.active = false
		if w.isOpen {
			w.visual.SetOpacity(1)
		} else {
			w.visual.SetOpacity(0)
		}
		return
	}

	w.fader.Cancel()
	if w.startStep != 0 {
		w.mgr.sched.Cancel(w.startStep)
		w.startStep = 0
	}

	w.wasOpen = w.isOpen
	w.setOpen(false, true)

	w.mgr.registry.Unregister(w.identity, w)
	w.registered = false
	w.active = false

	w.mgr.logger.Debug("window deactivated", "window", w.identity.String(), "id", w.id, "was_open", w.wasOpen)
}

// Toggle flips the open state
func (w *Window) Toggle(instant bool) {
	w.SetOpen(!w.isOpen, instant)
}

// SetOpen opens or closes the window. Without instant the interactive
// flags and focus change now and the opacity fades.
func (w *Window) SetOpen(open, instant bool) {
	if !w.ready("set open") {
		return
	}
	w.setOpen(open, instant)
}

// Isolate closes every other registered window, then opens this one
func (w *Window) Isolate(instant bool) {
	if !w.ready("isolate") {
		return
	}
	if !w.registered {
		w.setOpen(true, instant)
		return
	}

	w.mgr.focus.Batch(func() {
		for _, other := range w.mgr.Windows() {
			if other == w {
				continue
			}
			other.setOpen(false, instant)
		}
		w.setOpen(true, instant)
	})
}

// CrossFade fades the visual to opacity over d regardless of the open state
func (w *Window) CrossFade(opacity float64, d time.Duration) {
	if !w.ready("cross fade") {
		return
	}
	w.fader.Start(opacity, d)
}

// Rename renames the window through its manager
func (w *Window) Rename(name string) error {
	return w.mgr.Rename(w, name)
}

func (w *Window) ready(op string) bool {
	if w.active {
		return true
	}
	w.mgr.logger.Debug("ignoring operation on inactive window", "op", op, "window", w.identity.String())
	return false
}

func (w *Window) setOpen(open, instant bool) {
	if instant {
		w.fader.Cancel()
		w.isOpen = open
		if open {
			w.visual.SetOpacity(1)
		} else {
			w.visual.SetOpacity(0)
		}
		w.visual.SetInteractive(open)
		w.visual.SetBlocksInput(open)
		w.notifyFocus(open)
		return
	}

	if w.isOpen == open {
		return
	}
	w.isOpen = open
	w.visual.SetInteractive(open)
	w.visual.SetBlocksInput(open)
	if open {
		w.fader.Start(1, w.cfg.ShowDuration)
	} else {
		w.fader.Start(0, w.cfg.HideDuration)
	}
	w.notifyFocus(open)
}

func (w *Window) notifyFocus(open bool) {
	if !w.cfg.TakeFocus || w.cfg.Mode != ModeLive || !w.registered {
		return
	}
	w.mgr.focus.Focus(w, open)
}
