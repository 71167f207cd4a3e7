package models

import (
	"time"
)

const (
	// MinPlayers is the fewest players a match can have
	MinPlayers = 1

	// MaxPlayers is the most players a match can have
	MaxPlayers = 6
)

// StartingLifeOptions are the starting life totals offered by the menu
var StartingLifeOptions = []int{20, 30, 40}

// IsValidStartingLife reports whether life is one of StartingLifeOptions
func IsValidStartingLife(life int) bool {
	for _, opt := range StartingLifeOptions {
		if opt == life {
			return true
		}
	}
	return false
}

// ClampPlayerCount limits n to [MinPlayers, MaxPlayers]
func ClampPlayerCount(n int) int {
	if n < MinPlayers {
		return MinPlayers
	}
	if n > MaxPlayers {
		return MaxPlayers
	}
	return n
}

// MatchConfig holds the match-wide settings chosen in the menu
type MatchConfig struct {
	// PlayerCount is the number of seats
	PlayerCount int `json:"playerCount"`

	// StartingLife is the life total each player starts with
	StartingLife int `json:"startingLife"`
}

// IsValid reports whether the config only uses offered options
func (c MatchConfig) IsValid() bool {
	return c.PlayerCount >= MinPlayers && c.PlayerCount <= MaxPlayers && IsValidStartingLife(c.StartingLife)
}

// SizeTier is the display size bucket chosen by player count
type SizeTier string

const (
	// SizeSmall is used for five or more players
	SizeSmall SizeTier = "small"

	// SizeMedium is used for three or four players
	SizeMedium SizeTier = "medium"

	// SizeLarge is used for one or two players
	SizeLarge SizeTier = "large"
)

// SizeTierFor returns the size tier for a player count
func SizeTierFor(players int) SizeTier {
	switch {
	case players >= 5:
		return SizeSmall
	case players >= 3:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Layout splits seats into two facing rows
type Layout struct {
	// Top holds seats rendered rotated 180 degrees
	Top []int `json:"top"`

	// Bottom holds seats rendered upright
	Bottom []int `json:"bottom"`

	// Size is the size tier for every seat
	Size SizeTier `json:"size"`
}

// LayoutFor computes the facing-rows layout for a player count
func LayoutFor(players int) Layout {
	n := ClampPlayerCount(players)
	top := (n + 1) / 2

	layout := Layout{
		Top:    make([]int, 0, top),
		Bottom: make([]int, 0, n-top),
		Size:   SizeTierFor(n),
	}
	for seat := 0; seat < n; seat++ {
		if seat < top {
			layout.Top = append(layout.Top, seat)
		} else {
			layout.Bottom = append(layout.Bottom, seat)
		}
	}
	return layout
}

// Spotlight is the state of the starting-player highlight
type Spotlight struct {
	// Version increments on every trigger, the latest trigger wins
	Version uint64 `json:"version"`

	// Running indicates the highlight is cycling
	Running bool `json:"running"`

	// Index is the currently highlighted seat, -1 when none
	Index int `json:"index"`

	// Final indicates Index is the chosen starting player
	Final bool `json:"final"`
}

// Match is a life counter session for one table
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	// ChannelID is the Discord channel hosting the match, empty for web matches
	ChannelID string `json:"channelId,omitempty"`

	// MessageID is the ID of the board message in Discord
	MessageID string `json:"messageId,omitempty"`

	// Config is the applied configuration
	Config MatchConfig `json:"config"`

	// Draft is the pending configuration edited in the settings panel
	Draft MatchConfig `json:"draft"`

	// Players holds one entry per seat
	Players []*Player `json:"players"`

	// ResetVersion is the shared reset signal every player observes
	ResetVersion uint64 `json:"resetVersion"`

	// Spotlight is the starting-player highlight
	Spotlight Spotlight `json:"spotlight"`

	// CreatedAt is when the match was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the match was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlayerAt returns the player in seat, or nil
func (m *Match) PlayerAt(seat int) *Player {
	if seat < 0 || seat >= len(m.Players) {
		return nil
	}
	return m.Players[seat]
}

// PlayerNames returns display names in seat order
func (m *Match) PlayerNames() []string {
	names := make([]string, 0, len(m.Players))
	for _, p := range m.Players {
		names = append(names, p.Name)
	}
	return names
}
