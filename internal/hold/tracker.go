// Package hold disambiguates a tap from a press-and-hold on a delta button.
//
// A press starts in StatePressed. Once the press has lasted Threshold the
// delta is applied once and the tracker moves to StateRepeating, where the
// delta is applied again for every Interval of hold. Releasing from
// StatePressed applies the delta once as a tap; releasing from
// StateRepeating applies nothing beyond the repeats already due.
//
// All counts are derived from timestamps, so a tick that arrives after
// release, or several ticks that arrive late, never change the total.
package hold

import (
	"time"
)

const (
	// DefaultThreshold is how long a press lasts before it repeats
	DefaultThreshold = 2000 * time.Millisecond

	// DefaultInterval is the repeat period once repeating
	DefaultInterval = 500 * time.Millisecond
)

// State is the position of a Tracker in the press state machine
type State string

const (
	StateIdle      State = "idle"
	StatePressed   State = "pressed"
	StateRepeating State = "repeating"
)

// Config tunes hold detection
type Config struct {
	Threshold time.Duration
	Interval  time.Duration
}

// Tracker follows one button press
type Tracker struct {
	threshold time.Duration
	interval  time.Duration

	state   State
	start   time.Time
	delta   int
	applied int
}

// New creates an idle tracker. A nil or zero config uses the defaults.
func New(cfg *Config) *Tracker {
	t := &Tracker{
		threshold: DefaultThreshold,
		interval:  DefaultInterval,
		state:     StateIdle,
	}
	if cfg != nil {
		if cfg.Threshold > 0 {
			t.threshold = cfg.Threshold
		}
		if cfg.Interval > 0 {
			t.interval = cfg.Interval
		}
	}
	return t
}

// State returns the current state
func (t *Tracker) State() State {
	return t.state
}

// Delta returns the delta of the current press
func (t *Tracker) Delta() int {
	return t.delta
}

// Threshold returns the long-press threshold
func (t *Tracker) Threshold() time.Duration {
	return t.threshold
}

// Interval returns the repeat interval
func (t *Tracker) Interval() time.Duration {
	return t.interval
}

// Press starts tracking a press of delta at now. A press while another
// press is active restarts tracking.
func (t *Tracker) Press(now time.Time, delta int) {
	t.state = StatePressed
	t.start = now
	t.delta = delta
	t.applied = 0
}

// Advance returns how many times the delta must be applied now.
// It returns 0 while idle, so late ticks are harmless.
func (t *Tracker) Advance(now time.Time) int {
	if t.state == StateIdle {
		return 0
	}

	due := t.due(now)
	if due == 0 {
		return 0
	}

	t.state = StateRepeating
	n := due - t.applied
	t.applied = due
	return n
}

// Release ends the press and returns how many times the delta must be
// applied: once for a tap, or the outstanding repeats for a long press.
func (t *Tracker) Release(now time.Time) int {
	defer t.clear()

	switch t.state {
	case StatePressed:
		if now.Sub(t.start) < t.threshold {
			return 1
		}
		// long press whose detection tick never ran
		return t.due(now) - t.applied
	case StateRepeating:
		return t.due(now) - t.applied
	default:
		return 0
	}
}

// Cancel drops the press without applying anything
func (t *Tracker) Cancel() {
	t.clear()
}

// due is the total number of applications a hold until now has earned
func (t *Tracker) due(now time.Time) int {
	held := now.Sub(t.start)
	if held < t.threshold {
		return 0
	}
	return 1 + int((held-t.threshold)/t.interval)
}

func (t *Tracker) clear() {
	t.state = StateIdle
	t.start = time.Time{}
	t.delta = 0
	t.applied = 0
}
