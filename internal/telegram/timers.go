package telegram

import (
	"sync"
	"time"
)

// Timers holds the pending credential auto-delete timers, keyed by proof
// id. Submitting evidence cancels the timer so the user keeps the message.
type Timers struct {
	mu     sync.Mutex
	timers map[int64]*time.Timer
}

func NewTimers() *Timers {
	return &Timers{timers: make(map[int64]*time.Timer)}
}

// Schedule arms fn to fire after d. Scheduling again for the same proof id
// replaces the previous timer.
func (t *Timers) Schedule(proofID int64, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.timers[proofID]; ok {
		prev.Stop()
	}
	t.timers[proofID] = time.AfterFunc(d, func() {
		t.mu.Lock()
		delete(t.timers, proofID)
		t.mu.Unlock()
		fn()
	})
}

// Cancel stops the timer for proofID. Returns false when nothing was armed,
// which includes a timer that already fired.
func (t *Timers) Cancel(proofID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	timer, ok := t.timers[proofID]
	if !ok {
		return false
	}
	delete(t.timers, proofID)
	return timer.Stop()
}

// StopAll drops every pending timer. Used on shutdown.
func (t *Timers) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}
