// Package debounce provides a restartable delayed task, decoupled from
// any UI or handler lifecycle.
package debounce

import (
	"sync"
	"time"
)

// Task runs fn once the delay has elapsed without another Restart.
// Restart during the window pushes the deadline out; Cancel discards a
// pending run. A canceled or fired task can be restarted again. The
// zero value is not usable; use New.
type Task struct {
	mu     sync.Mutex
	delay  time.Duration
	fn     func()
	timer  *time.Timer
	closed bool
}

func New(delay time.Duration, fn func()) *Task {
	return &Task{
		delay: delay,
		fn:    fn,
	}
}

// Restart arms the task, replacing any pending run.
func (t *Task) Restart() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, t.fn)
}

// Cancel discards any pending run without closing the task.
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Flush runs a pending task immediately instead of waiting out the
// delay. No-op when nothing is pending.
func (t *Task) Flush() {
	t.mu.Lock()
	timer := t.timer
	t.timer = nil
	t.mu.Unlock()

	if timer != nil && timer.Stop() {
		t.fn()
	}
}

// Close cancels any pending run and rejects further restarts. Used on
// teardown so a stale timer cannot fire against a closed owner.
func (t *Task) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
