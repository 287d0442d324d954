package window

import "time"

// Fader drives one opacity transition at a time on a Visual
type Fader struct {
	sched  Scheduler
	visual Visual
	handle Handle
}

// NewFader creates a fader for visual
func NewFader(sched Scheduler, visual Visual) *Fader {
	return &Fader{sched: sched, visual: visual}
}

// Start fades from the current opacity to target over d, replacing any
// fade in flight. Steps begin on the next frame.
func (f *Fader) Start(target float64, d time.Duration) {
	f.Cancel()

	target = clamp01(target)
	if d < 0 {
		d = 0
	}
	from := f.visual.Opacity()
	t0 := f.sched.Now()

	var h Handle
	h = f.sched.ScheduleRepeating(func() bool {
		p := 1.0
		if d > 0 {
			p = float64(f.sched.Now()-t0) / float64(d)
		}
		if p < 1 {
			f.visual.SetOpacity(lerp(from, target, p))
			return true
		}
		f.visual.SetOpacity(target)
		if f.handle == h {
			f.handle = 0
		}
		return false
	})
	f.handle = h
}

// Cancel stops the fade in flight, if any
func (f *Fader) Cancel() {
	if f.handle == 0 {
		return
	}
	f.sched.Cancel(f.handle)
	f.handle = 0
}

// Active reports whether a fade is in flight
func (f *Fader) Active() bool {
	return f.handle != 0
}

func lerp(a, b, t float64) float64 {
	if t < 0 {
		t = 0
	}
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
