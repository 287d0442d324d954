package window_test

import (
	"testing"
	"time"

	"github.com/kmacinski/veil/internal/frame"
	"github.com/kmacinski/veil/internal/window"
)

type fakeVisual struct {
	opacity     float64
	interactive bool
	blocks      bool
	writes      []float64
}

func (v *fakeVisual) SetOpacity(o float64) {
	v.opacity = o
	v.writes = append(v.writes, o)
}
func (v *fakeVisual) Opacity() float64 { return v.opacity }
func (v *fakeVisual) SetInteractive(b bool) { v.interactive = b }
func (v *fakeVisual) SetBlocksInput(b bool) { v.blocks = b }

type fakeCursor struct {
	visible bool
	lock    window.LockMode
	calls   int
}

func (c *fakeCursor) SetVisible(v bool) {
	c.visible = v
	c.calls++
}
func (c *fakeCursor) SetLockMode(m window.LockMode) { c.lock = m }

type harness struct {
	t      *testing.T
	clock  *frame.ManualClock
	loop   *frame.Loop
	cursor *fakeCursor
	mgr    *window.Manager
}

func newHarness(t *testing.T, opts window.Options) *harness {
	t.Helper()
	clock := &frame.ManualClock{}
	loop := frame.NewLoop(clock)
	cursor := &fakeCursor{}
	opts.Scheduler = loop
	opts.Cursor = cursor
	return &harness{
		t:      t,
		clock:  clock,
		loop:   loop,
		cursor: cursor,
		mgr:    window.NewManager(opts),
	}
}

func newLiveHarness(t *testing.T) *harness {
	return newHarness(t, window.Options{Scheme: window.SchemeName, Playing: true})
}

var defaultConfig = window.Config{
	ShowDuration: time.Second,
	HideDuration: time.Second,
	TakeFocus:    true,
}

// open creates and activates a named window
func (h *harness) open(name string, cfg window.Config) (*window.Window, *fakeVisual) {
	h.t.Helper()
	v := &fakeVisual{}
	w := h.mgr.NewWindow(window.Named(name), v, cfg)
	if err := w.Activate(); err != nil {
		h.t.Fatalf("activate %s: %v", name, err)
	}
	return w, v
}

// advance moves the clock and runs one frame
func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
	h.loop.Step()
}
