// Package spotlight sequences the random "who starts" highlight.
//
// A Sequence produces one Frame per tick. Consecutive frames never
// highlight the same seat, the sequence lasts at least Duration worth of
// ticks and at least a player-scaled number of switches, and its last
// frame is the chosen starting player.
package spotlight

import (
	"time"

	"github.com/KirkDiggler/countermtg/internal/dice"
)

const (
	DefaultTick              = 120 * time.Millisecond
	DefaultDuration          = 2400 * time.Millisecond
	DefaultMinSwitches       = 8
	DefaultSwitchesPerPlayer = 3
	DefaultMaxRetries        = 8
)

// Config tunes the highlight sequence
type Config struct {
	Tick              time.Duration
	Duration          time.Duration
	MinSwitches       int
	SwitchesPerPlayer int
	MaxRetries        int
}

func (c *Config) withDefaults() Config {
	out := Config{
		Tick:              DefaultTick,
		Duration:          DefaultDuration,
		MinSwitches:       DefaultMinSwitches,
		SwitchesPerPlayer: DefaultSwitchesPerPlayer,
		MaxRetries:        DefaultMaxRetries,
	}
	if c == nil {
		return out
	}
	if c.Tick > 0 {
		out.Tick = c.Tick
	}
	if c.Duration > 0 {
		out.Duration = c.Duration
	}
	if c.MinSwitches > 0 {
		out.MinSwitches = c.MinSwitches
	}
	if c.SwitchesPerPlayer > 0 {
		out.SwitchesPerPlayer = c.SwitchesPerPlayer
	}
	if c.MaxRetries > 0 {
		out.MaxRetries = c.MaxRetries
	}
	return out
}

// Frame is one highlight step
type Frame struct {
	// Index is the highlighted seat
	Index int

	// Step is the 1-based step number
	Step int

	// Final marks the chosen starting player
	Final bool
}

// Sequence yields the frames of one spotlight run
type Sequence struct {
	cfg     Config
	roller  dice.Roller
	players int
	total   int
	step    int
	prev    int
}

// New creates a sequence for players seats
func New(players int, roller dice.Roller, cfg *Config) *Sequence {
	c := cfg.withDefaults()
	if players < 1 {
		players = 1
	}

	total := 1
	if players > 1 {
		total = int((c.Duration + c.Tick - 1) / c.Tick)
		if total < c.MinSwitches {
			total = c.MinSwitches
		}
		if scaled := c.SwitchesPerPlayer * players; total < scaled {
			total = scaled
		}
	}

	return &Sequence{
		cfg:     c,
		roller:  roller,
		players: players,
		total:   total,
		prev:    -1,
	}
}

// Tick is the interval between frames
func (s *Sequence) Tick() time.Duration {
	return s.cfg.Tick
}

// Total is the number of frames the sequence yields
func (s *Sequence) Total() int {
	return s.total
}

// Done reports whether the final frame was produced
func (s *Sequence) Done() bool {
	return s.step >= s.total
}

// Next produces the next frame. After the final frame it keeps
// returning the final frame.
func (s *Sequence) Next() Frame {
	if s.Done() {
		return Frame{Index: s.prev, Step: s.step, Final: true}
	}

	s.step++
	s.prev = s.pick()
	return Frame{Index: s.prev, Step: s.step, Final: s.Done()}
}

// pick draws a seat different from the previous one
func (s *Sequence) pick() int {
	if s.players == 1 {
		return 0
	}

	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		idx := s.roller.Roll(s.players) - 1
		if idx < 0 || idx >= s.players {
			continue
		}
		if idx != s.prev {
			return idx
		}
	}
	// the roller kept repeating itself, step to the neighbour instead
	return (s.prev + 1) % s.players
}
