package backend

import (
	"sync"
	"time"
)

// throttle enforces a minimum spacing between reloads so a burst of
// filesystem notifications collapses into a paced series of fetches.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval}
}

// wait reserves the next reload slot and sleeps until it arrives.
func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	t.mu.Lock()
	now := time.Now()
	wait := t.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	t.next = now.Add(wait + t.interval)
	t.mu.Unlock()
	if wait > 0 {
		time.Sleep(wait)
	}
}
