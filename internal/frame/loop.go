// Package frame provides the per-frame scheduler and clocks that drive
// window fades from the host's tick.
package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/veil/internal/window"
)

// TickMsg is delivered once per frame
type TickMsg struct {
	Time time.Time
}

// Tick returns a command that sends a TickMsg after d
func Tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

type task struct {
	handle    window.Handle
	step      window.Step
	cancelled bool
}

// Loop is a window.Scheduler stepped by the host once per frame.
// Tasks scheduled during a step first run on the following step.
type Loop struct {
	clock Clock
	tasks []*task
	next  window.Handle
	steps uint64
}

var _ window.Scheduler = (*Loop)(nil)

// NewLoop creates a loop reading time from clock
func NewLoop(clock Clock) *Loop {
	return &Loop{clock: clock}
}

// ScheduleRepeating adds step to the loop
func (l *Loop) ScheduleRepeating(step window.Step) window.Handle {
	l.next++
	l.tasks = append(l.tasks, &task{handle: l.next, step: step})
	return l.next
}

// Cancel removes a task. It will not run again, even later in the current step.
func (l *Loop) Cancel(h window.Handle) {
	for i, t := range l.tasks {
		if t.handle == h {
			t.cancelled = true
			l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
			return
		}
	}
}

// Now returns the clock's current time
func (l *Loop) Now() time.Duration {
	return l.clock.Now()
}

// Clock returns the loop's clock
func (l *Loop) Clock() Clock {
	return l.clock
}

// Step runs every live task once
func (l *Loop) Step() {
	l.steps++
	pass := append([]*task(nil), l.tasks...)
	for _, t := range pass {
		if t.cancelled {
			continue
		}
		if !t.step() {
			l.Cancel(t.handle)
		}
	}
}

// Pending returns the number of live tasks
func (l *Loop) Pending() int {
	return len(l.tasks)
}

// Steps returns how many times Step has run
func (l *Loop) Steps() uint64 {
	return l.steps
}
