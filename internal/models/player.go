package models

import (
	"time"
)

const (
	// MaxPoison is the poison count at which a player loses
	MaxPoison = 10

	// MaxNameLength is the maximum display name length in runes
	MaxNameLength = 20

	// MaxColorTags is the maximum number of colors a player can tag
	MaxColorTags = 3

	// RotationStep is the rotation applied per rotate tap, in degrees
	RotationStep = 45
)

// Panel identifies which of the mutually exclusive player panels is open
type Panel string

const (
	// PanelNone indicates no panel is open
	PanelNone Panel = "none"

	// PanelPoison indicates the poison counter is visible
	PanelPoison Panel = "poison"

	// PanelCommanderDamage indicates the commander damage panel is open
	PanelCommanderDamage Panel = "commander_damage"

	// PanelPalette indicates the color palette is open
	PanelPalette Panel = "palette"
)

// IsValid reports whether the panel is a known value
func (p Panel) IsValid() bool {
	switch p {
	case PanelNone, PanelPoison, PanelCommanderDamage, PanelPalette:
		return true
	}
	return false
}

// ColorTags holds the colors a player tagged themselves with
type ColorTags struct {
	// Tags are the selected hex colors, at most MaxColorTags
	Tags []string `json:"tags"`

	// Seed is the default color assigned to the seat
	Seed string `json:"seed"`

	// Seeded indicates Tags holds only the seed color
	Seeded bool `json:"seeded"`
}

// Timer is a per-player stopwatch
type Timer struct {
	// ElapsedMs is the time accumulated before the current run
	ElapsedMs int64 `json:"elapsedMs"`

	// Running indicates the stopwatch is counting
	Running bool `json:"running"`

	// StartedAt is when the current run started, nil when stopped
	StartedAt *time.Time `json:"startedAt,omitempty"`

	// Open indicates the stopwatch is shown
	Open bool `json:"open"`

	// Minimized indicates the stopwatch is shown collapsed
	Minimized bool `json:"minimized"`
}

// Player is one seat's transient match state
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Seat is the zero-based seat index in the match
	Seat int `json:"seat"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Life is the player's life total, it has no floor or ceiling
	Life int `json:"life"`

	// StartingLife is the life total restored on reset
	StartingLife int `json:"startingLife"`

	// Poison is the poison counter, clamped to [0, MaxPoison]
	Poison int `json:"poison"`

	// CommanderDamage is damage received keyed by opponent name
	CommanderDamage map[string]int `json:"commanderDamage"`

	// Colors are the player's color tags
	Colors ColorTags `json:"colors"`

	// Rotation is the display rotation in degrees
	Rotation int `json:"rotation"`

	// ActivePanel is the currently open panel
	ActivePanel Panel `json:"activePanel"`

	// Timer is the player's stopwatch
	Timer Timer `json:"timer"`

	// LastResetVersion is the last match reset signal this player observed
	LastResetVersion uint64 `json:"lastResetVersion"`
}

// Lost reports whether the player has lost on life or poison
func (p *Player) Lost() bool {
	return p.Life <= 0 || p.Poison >= MaxPoison
}
