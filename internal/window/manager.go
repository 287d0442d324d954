// Package window implements fading, focus-aware windows: an identity-keyed
// registry, a per-window open/closed state machine with cancellable opacity
// fades, and a focus aggregate that drives the host cursor.
//
// Everything here runs on the host's single UI thread. Hosts plug in through
// the Visual, Scheduler and CursorController interfaces.
package window

import (
	"fmt"
	"io"
	"log/slog"
)

// Options configures a Manager
type Options struct {
	// Scheme is the identity scheme every window must use
	Scheme Scheme
	// Scheduler drives fades and deferred start actions. Required.
	Scheduler Scheduler
	// Cursor receives focus side effects. Optional.
	Cursor CursorController
	// Playing is true when the host runs live rather than at design time
	Playing bool
	// UnlockedMode is the lock mode applied while a window has focus
	UnlockedMode LockMode
	Logger       *slog.Logger
}

// Manager is the process-scoped context that owns the registry, the focus
// tracker and the scheduler shared by its windows
type Manager struct {
	scheme   Scheme
	sched    Scheduler
	playing  bool
	registry *Registry[Identity, *Window]
	focus    *FocusTracker
	logger   *slog.Logger
}

// NewManager creates a manager
func NewManager(opts Options) *Manager {
	if opts.Scheduler == nil {
		panic("window: NewManager requires a Scheduler")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		scheme:   opts.Scheme,
		sched:    opts.Scheduler,
		playing:  opts.Playing,
		registry: NewRegistry[Identity, *Window](normalizeIdentity),
		focus:    NewFocusTracker(opts.Cursor, opts.Playing, opts.UnlockedMode, logger),
		logger:   logger,
	}
}

// Scheme returns the manager's identity scheme
func (m *Manager) Scheme() Scheme {
	return m.scheme
}

// Playing reports whether the host runs live
func (m *Manager) Playing() bool {
	return m.playing
}

// Focus returns the focus tracker
func (m *Manager) Focus() *FocusTracker {
	return m.focus
}

// HasFocus reports whether any focus-taking window is open
func (m *Manager) HasFocus() bool {
	return m.focus.HasFocus()
}

// OnWindowFocusChanged subscribes to focus edges with the causing window
func (m *Manager) OnWindowFocusChanged(fn func(*Window, bool)) func() {
	return m.focus.OnWindowFocusChanged(fn)
}

// OnGlobalFocusChanged subscribes to focus edges
func (m *Manager) OnGlobalFocusChanged(fn func(bool)) func() {
	return m.focus.OnGlobalFocusChanged(fn)
}

// IdentityFor builds an identity in the manager's scheme from a raw key
func (m *Manager) IdentityFor(key string) Identity {
	if m.scheme == SchemeKind {
		return KindOf(Kind(key))
	}
	return Named(key)
}

// Lookup returns the window registered under id
func (m *Manager) Lookup(id Identity) (*Window, bool) {
	return m.registry.Lookup(id)
}

// LookupName returns the window registered under key in the manager's scheme
func (m *Manager) LookupName(key string) (*Window, bool) {
	return m.registry.Lookup(m.IdentityFor(key))
}

// Windows returns the registered windows in registration order. The slice
// is a snapshot.
func (m *Manager) Windows() []*Window {
	entries := m.registry.All()
	out := make([]*Window, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Value)
	}
	return out
}

// Rename moves w to a new name. If the name is taken by another window the
// rename is rejected with a *DuplicateIdentityError and w keeps its name.
func (m *Manager) Rename(w *Window, name string) error {
	if m.scheme != SchemeName {
		return ErrRenameUnsupported
	}
	id := Named(name)
	if id.IsZero() {
		return ErrEmptyIdentity
	}

	if !w.registered {
		if !w.active {
			return ErrNotRegistered
		}
		// Design previews are not registered but must not steal a live name.
		if other, ok := m.registry.Lookup(id); ok && other != w {
			return &DuplicateIdentityError{Identity: id.String(), Existing: other}
		}
		w.identity = id
		return nil
	}

	old, _ := m.registry.IdentityOf(w)
	if err := m.registry.Rename(w, id); err != nil {
		return err
	}
	m.logger.Debug("window renamed", "from", old.String(), "to", id.String())
	w.identity = id
	return nil
}

// CloseAll closes every registered window in one focus pass
func (m *Manager) CloseAll(instant bool) {
	m.focus.Batch(func() {
		for _, w := range m.Windows() {
			w.setOpen(false, instant)
		}
	})
}

func (m *Manager) register(w *Window) error {
	if w.identity.IsZero() {
		return ErrEmptyIdentity
	}
	if w.identity.Scheme() != m.scheme {
		return fmt.Errorf("register %s: %w", w.identity, ErrSchemeMismatch)
	}
	if err := m.registry.Register(w.identity, w, w.cfg.AllowMultiple); err != nil {
		return err
	}
	// The first window of an empty registry resets the cursor.
	if m.registry.Len() == 1 {
		m.focus.ApplyCursorMode(false)
	}
	return nil
}
