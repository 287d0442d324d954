package window

import (
	"io"
	"log/slog"
)

// FocusTracker aggregates the windows that are open and take focus.
// HasFocus is true while that set is non-empty. Edges of HasFocus move the
// cursor and notify listeners.
type FocusTracker struct {
	open     map[*Window]struct{}
	hadFocus bool

	cursor   CursorController
	playing  bool
	unlocked LockMode

	batchDepth int
	batchLast  *Window

	nextID     int
	windowSubs []windowSub
	globalSubs []globalSub
	logger     *slog.Logger
}

type windowSub struct {
	id int
	fn func(*Window, bool)
}

type globalSub struct {
	id int
	fn func(bool)
}

// NewFocusTracker creates a tracker. cursor may be nil.
func NewFocusTracker(cursor CursorController, playing bool, unlocked LockMode, logger *slog.Logger) *FocusTracker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FocusTracker{
		open:     make(map[*Window]struct{}),
		cursor:   cursor,
		playing:  playing,
		unlocked: unlocked,
		logger:   logger,
	}
}

// HasFocus reports whether any focus-taking window is open
func (t *FocusTracker) HasFocus() bool {
	return len(t.open) > 0
}

// Contributes reports whether w is in the focus set
func (t *FocusTracker) Contributes(w *Window) bool {
	_, ok := t.open[w]
	return ok
}

// Focus records that w opened or closed
func (t *FocusTracker) Focus(w *Window, opening bool) {
	if opening {
		t.open[w] = struct{}{}
	} else {
		delete(t.open, w)
	}

	if t.batchDepth > 0 {
		t.batchLast = w
		return
	}
	t.settle(w)
}

// Batch runs fn and evaluates the focus edge once afterwards
func (t *FocusTracker) Batch(fn func()) {
	t.batchDepth++
	defer func() {
		t.batchDepth--
		if t.batchDepth > 0 {
			return
		}
		last := t.batchLast
		t.batchLast = nil
		if last != nil {
			t.settle(last)
		}
	}()
	fn()
}

func (t *FocusTracker) settle(w *Window) {
	hasFocus := t.HasFocus()
	if hasFocus == t.hadFocus {
		return
	}
	// Recorded before dispatch so handlers see the new value.
	t.hadFocus = hasFocus

	t.logger.Debug("focus changed", "has_focus", hasFocus, "window", w)
	t.ApplyCursorMode(hasFocus)

	for _, s := range append([]windowSub(nil), t.windowSubs...) {
		s.fn(w, hasFocus)
	}
	for _, s := range append([]globalSub(nil), t.globalSubs...) {
		s.fn(hasFocus)
	}
}

// ApplyCursorMode shows or hides the cursor for the given focus state.
// Outside of play the cursor is always visible and free.
func (t *FocusTracker) ApplyCursorMode(hasFocus bool) {
	if t.cursor == nil {
		return
	}
	if !t.playing {
		hasFocus = true
	}

	t.cursor.SetVisible(hasFocus)
	if hasFocus {
		if t.playing {
			t.cursor.SetLockMode(t.unlocked)
		} else {
			t.cursor.SetLockMode(LockNone)
		}
		return
	}
	t.cursor.SetLockMode(LockLocked)
}

// OnWindowFocusChanged subscribes fn to focus edges along with the window
// that caused them. The returned func unsubscribes.
func (t *FocusTracker) OnWindowFocusChanged(fn func(*Window, bool)) func() {
	t.nextID++
	id := t.nextID
	t.windowSubs = append(t.windowSubs, windowSub{id: id, fn: fn})
	return func() {
		for i, s := range t.windowSubs {
			if s.id == id {
				t.windowSubs = append(t.windowSubs[:i:i], t.windowSubs[i+1:]...)
				return
			}
		}
	}
}

// OnGlobalFocusChanged subscribes fn to focus edges
func (t *FocusTracker) OnGlobalFocusChanged(fn func(bool)) func() {
	t.nextID++
	id := t.nextID
	t.globalSubs = append(t.globalSubs, globalSub{id: id, fn: fn})
	return func() {
		for i, s := range t.globalSubs {
			if s.id == id {
				t.globalSubs = append(t.globalSubs[:i:i], t.globalSubs[i+1:]...)
				return
			}
		}
	}
}
