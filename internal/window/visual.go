package window

import "time"

// Visual is the rendering side of a window
type Visual interface {
	SetOpacity(float64)
	Opacity() float64
	SetInteractive(bool)
	SetBlocksInput(bool)
}

// Step is one tick of a repeating task. It returns false when the task is done.
type Step func() bool

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

// Scheduler runs repeating tasks once per frame on the host's thread.
// A cancelled task must never run again.
type Scheduler interface {
	ScheduleRepeating(Step) Handle
	Cancel(Handle)
	Now() time.Duration
}

// LockMode controls how the pointer is held by the host
type LockMode int

const (
	LockNone LockMode = iota
	LockLocked
	LockConfined
)

// String returns the config spelling of the lock mode
func (m LockMode) String() string {
	switch m {
	case LockLocked:
		return "locked"
	case LockConfined:
		return "confined"
	default:
		return "none"
	}
}

// CursorController is the platform cursor
type CursorController interface {
	SetVisible(bool)
	SetLockMode(LockMode)
}
