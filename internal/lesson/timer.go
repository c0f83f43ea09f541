package lesson

import (
	"sync"
	"time"
)

// Stopper cancels a scheduled callback. *time.Timer satisfies it.
type Stopper interface {
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// SystemClock returns the wall clock.
func SystemClock() Clock { return realClock{} }

// FailureTimer holds at most one scheduled callback. Scheduling replaces
// the previous callback; a callback that lost a race with Cancel or a newer
// Schedule does not run.
type FailureTimer struct {
	clock Clock

	mu   sync.Mutex
	gen  uint64
	stop Stopper
}

func NewFailureTimer(clock Clock) *FailureTimer {
	if clock == nil {
		clock = realClock{}
	}
	return &FailureTimer{clock: clock}
}

func (t *FailureTimer) Schedule(after time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	gen := t.gen
	t.stop = t.clock.AfterFunc(after, func() {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.stop = nil
		t.mu.Unlock()
		fire()
	})
}

// Cancel drops the pending callback and reports whether one was pending.
func (t *FailureTimer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelLocked()
}

func (t *FailureTimer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *FailureTimer) cancelLocked() bool {
	t.gen++
	if t.stop == nil {
		return false
	}
	t.stop.Stop()
	t.stop = nil
	return true
}
