// Package debounce provides a cancellable delayed trigger.
//
// Successive Schedule calls replace any pending invocation, so only the last
// scheduled function runs once the delay elapses without a newer call. A
// generation counter guards against a stale timer firing between cancellation
// and rescheduling.
package debounce

import (
	"sync"
	"time"
)

// Trigger coalesces bursts of Schedule calls into a single invocation.
type Trigger struct {
	mu    sync.Mutex
	delay time.Duration
	gen   uint64
	timer *time.Timer
}

// New creates a Trigger with the given delay.
func New(delay time.Duration) *Trigger {
	return &Trigger{delay: delay}
}

// Schedule arranges for fn to run after the configured delay, replacing any
// pending invocation. fn runs on the timer goroutine.
func (t *Trigger) Schedule(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	gen := t.gen
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		if t.gen != gen {
			// A newer Schedule or Stop superseded this invocation.
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

// Stop cancels any pending invocation.
func (t *Trigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Pending reports whether an invocation is currently scheduled.
func (t *Trigger) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
