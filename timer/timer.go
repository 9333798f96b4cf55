// Package timer provides the animation timers that drive the tutorials'
// lights. Time is reported in seconds as float32; elapsed time is summed in
// float64 so that small frame steps still register after days of running.
package timer

import (
	"math"
	"time"
)

// Type selects how a timer treats its duration.
type Type int

const (
	// Loop wraps around every duration; Alpha is in [0, 1).
	Loop Type = iota
	// Single runs once; Alpha clamps to [0, 1].
	Single
	// Infinite never ends; only TimeSinceStart is meaningful.
	Infinite
)

func (t Type) String() string {
	switch t {
	case Loop:
		return "loop"
	case Single:
		return "single"
	case Infinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Clock returns the current time in seconds from an arbitrary origin.
type Clock func() float64

// SystemClock returns a Clock backed by the monotonic system time.
func SystemClock() Clock {
	start := time.Now()
	return func() float64 { return time.Since(start).Seconds() }
}

// Timer accumulates elapsed time between Update calls.
type Timer struct {
	typ      Type
	duration float32
	clock    Clock

	hasUpdated bool
	paused     bool
	prevTime   float64
	accum      float64
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(t *Timer) { t.clock = c }
}

// New creates a timer. duration is in seconds and must be positive for Loop
// and Single timers; non-positive values fall back to 1 second.
func New(typ Type, duration float32, opts ...Option) *Timer {
	t := &Timer{typ: typ, duration: duration}
	for _, opt := range opts {
		opt(t)
	}
	if t.clock == nil {
		t.clock = SystemClock()
	}
	if t.typ != Infinite && t.duration <= 0 {
		t.duration = 1
	}
	return t
}

// Update advances the timer to the current clock time. For Single timers it
// returns true once the duration has passed.
func (t *Timer) Update() bool {
	now := t.clock()
	if !t.hasUpdated {
		t.prevTime = now
		t.hasUpdated = true
	}
	if t.paused {
		t.prevTime = now
		return false
	}
	t.accum += now - t.prevTime
	t.prevTime = now

	return t.typ == Single && t.accum > float64(t.duration)
}

// Reset restarts the timer from zero at the next Update.
func (t *Timer) Reset() {
	t.hasUpdated = false
	t.accum = 0
}

// TogglePause flips the paused state and returns the new state.
func (t *Timer) TogglePause() bool {
	t.paused = !t.paused
	return t.paused
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Rewind moves the accumulated time back by secs, stopping at zero.
// Returns true if it was clamped.
func (t *Timer) Rewind(secs float32) bool {
	t.accum -= float64(secs)
	if t.accum < 0 {
		t.accum = 0
		return true
	}
	return false
}

// FastForward moves the accumulated time forward by secs.
// Single timers stop at their duration; returns true if clamped.
func (t *Timer) FastForward(secs float32) bool {
	t.accum += float64(secs)
	if d := float64(t.duration); t.typ == Single && t.accum > d {
		t.accum = d
		return true
	}
	return false
}

// Alpha returns the position within the duration: [0, 1) for Loop timers,
// [0, 1] for Single timers and -1 for Infinite timers.
func (t *Timer) Alpha() float32 {
	switch t.typ {
	case Loop:
		d := float64(t.duration)
		a := float32(math.Mod(t.accum, d) / d)
		if a >= 1 || a < 0 {
			a = 0
		}
		return a
	case Single:
		a := float32(t.accum / float64(t.duration))
		if a > 1 {
			a = 1
		}
		return a
	default:
		return -1
	}
}

// Progression returns the seconds elapsed within the current loop (Loop),
// clamped to the duration (Single) or -1 (Infinite).
func (t *Timer) Progression() float32 {
	switch t.typ {
	case Loop:
		return float32(math.Mod(t.accum, float64(t.duration)))
	case Single:
		if t.accum > float64(t.duration) {
			return t.duration
		}
		return float32(t.accum)
	default:
		return -1
	}
}

// TimeSinceStart returns the total accumulated seconds.
func (t *Timer) TimeSinceStart() float32 {
	return float32(t.accum)
}

// Duration returns the configured duration in seconds.
func (t *Timer) Duration() float32 {
	return t.duration
}

// Type returns the timer type.
func (t *Timer) Type() Type {
	return t.typ
}
