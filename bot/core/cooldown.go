package core

import (
	"math"
	"sync"
	"time"
)

// CooldownGate admits at most one request per user per interval.
// the anchor only moves on admitted requests: a burst of rejected
// attempts never extends a user's wait.
type CooldownGate struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     map[int64]time.Time
}

func NewCooldownGate(interval time.Duration, now func() time.Time) *CooldownGate {
	if now == nil {
		now = time.Now
	}
	return &CooldownGate{
		interval: interval,
		now:      now,
		last:     make(map[int64]time.Time),
	}
}

// Admit returns whether the request may proceed and, when it may
// not, the whole seconds remaining (rounded up).
func (gate *CooldownGate) Admit(userID int64) (bool, int) {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	current := gate.now()
	if previous, ok := gate.last[userID]; ok {
		elapsed := current.Sub(previous)
		if elapsed < gate.interval {
			remaining := int(math.Ceil(
				(gate.interval - elapsed).Seconds(),
			))
			return false, remaining
		}
	}
	gate.last[userID] = current
	return true, 0
}
