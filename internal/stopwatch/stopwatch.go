// Package stopwatch operates the per-player timer stored in models.Timer.
package stopwatch

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/countermtg/internal/models"
)

// Action is a stopwatch control
type Action string

const (
	ActionOpen     Action = "open"
	ActionStart    Action = "start"
	ActionStop     Action = "stop"
	ActionReset    Action = "reset"
	ActionMinimize Action = "minimize"
	ActionClose    Action = "close"
)

// IsValid reports whether a is a known action
func (a Action) IsValid() bool {
	switch a {
	case ActionOpen, ActionStart, ActionStop, ActionReset, ActionMinimize, ActionClose:
		return true
	}
	return false
}

// EasterEggName opens and starts the stopwatch when used as a display name
const EasterEggName = "slowpoke"

// IsEasterEgg reports whether name triggers the auto-started stopwatch
func IsEasterEgg(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), EasterEggName)
}

// Apply runs action against t at now
func Apply(t *models.Timer, action Action, now time.Time) error {
	switch action {
	case ActionOpen:
		t.Open = true
		t.Minimized = false
	case ActionStart:
		Start(t, now)
	case ActionStop:
		Stop(t, now)
	case ActionReset:
		Reset(t)
	case ActionMinimize:
		t.Minimized = !t.Minimized
	case ActionClose:
		Stop(t, now)
		t.Open = false
		t.Minimized = false
	default:
		return fmt.Errorf("unknown stopwatch action %q", action)
	}
	return nil
}

// Start begins counting. Starting a running stopwatch does nothing.
func Start(t *models.Timer, now time.Time) {
	t.Open = true
	if t.Running {
		return
	}
	started := now
	t.StartedAt = &started
	t.Running = true
}

// Stop folds the current run into the accumulated time
func Stop(t *models.Timer, now time.Time) {
	if !t.Running {
		return
	}
	t.ElapsedMs = Elapsed(t, now).Milliseconds()
	t.StartedAt = nil
	t.Running = false
}

// Reset clears the stopwatch, leaving it open but stopped
func Reset(t *models.Timer) {
	t.ElapsedMs = 0
	t.StartedAt = nil
	t.Running = false
}

// Elapsed is accumulated time plus the current run, if any
func Elapsed(t *models.Timer, now time.Time) time.Duration {
	elapsed := time.Duration(t.ElapsedMs) * time.Millisecond
	if t.Running && t.StartedAt != nil && now.After(*t.StartedAt) {
		elapsed += now.Sub(*t.StartedAt)
	}
	return elapsed
}

// Format renders d as M:SS
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Display renders the elapsed time of t at now
func Display(t *models.Timer, now time.Time) string {
	return Format(Elapsed(t, now))
}
