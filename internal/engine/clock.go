// Package engine provides the timer-driven simulation loop: a scheduler
// that runs delayed callbacks on a single goroutine, and the Engine that
// keeps the market's periodic passes rescheduling themselves on it.
package engine

import "time"

// Clock abstracts current time so tests can drive the scheduler by hand.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Owned by the ManualScheduler.
type ManualClock struct {
	now time.Time
}

// NewManualClock starts a manual clock at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time { return m.now }
