package engine

import (
	"sync/atomic"
	"time"
)

// Speed settings accepted from the UI. Higher is faster; the mapping to a
// per-step delay is inverse and clamped.
const (
	MinSpeed = 1
	MaxSpeed = 100

	// pauseInterval is how often a suspended step re-checks the pause flag.
	pauseInterval = 100 * time.Millisecond
)

// Pacer converts a speed setting into a per-step delay and blocks steps
// while the shared pause flag is asserted. One pacer belongs to one
// session; the flag is set by the controlling session and read by the run
// currently suspended on it, so an atomic is all the synchronization
// needed.
type Pacer struct {
	paused atomic.Bool
}

// Delay maps a speed setting to the suspension applied after each step.
// Speed 1 is the slowest (500ms per step), speed 100 the fastest (5ms).
func (p *Pacer) Delay(speed int) time.Duration {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return time.Duration(505-5*speed) * time.Millisecond
}

// Wait sleeps the configured delay, then blocks for as long as the pause
// flag stays asserted, polling at a coarse interval. Resuming continues
// exactly where the run left off.
func (p *Pacer) Wait(speed int) {
	time.Sleep(p.Delay(speed))
	for p.paused.Load() {
		time.Sleep(pauseInterval)
	}
}

// Pause asserts the pause flag. Every pending and future suspension blocks
// until Resume.
func (p *Pacer) Pause() {
	p.paused.Store(true)
}

// Resume clears the pause flag.
func (p *Pacer) Resume() {
	p.paused.Store(false)
}

// Paused reports the current state of the pause flag.
func (p *Pacer) Paused() bool {
	return p.paused.Load()
}

// Toggle flips the pause flag and returns the new state.
func (p *Pacer) Toggle() bool {
	for {
		old := p.paused.Load()
		if p.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
