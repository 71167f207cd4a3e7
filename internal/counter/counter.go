// Package counter holds the player state machine: life, poison, commander
// damage, panels, rotation, colors, naming and the reset signal.
//
// Every function mutates only the player it is given. Commander damage is
// tracked per opponent AND mirrored into life; ApplyCommanderDamage is the
// only path that writes it, so the two stay in lockstep.
package counter

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/palette"
	"github.com/KirkDiggler/countermtg/internal/stopwatch"
)

// NewPlayerInput describes a freshly seated player
type NewPlayerInput struct {
	ID           string
	Seat         int
	Name         string
	StartingLife int
	SeedColor    string
	Opponents    []string
	ResetVersion uint64
}

// NewPlayer seats a player at full life with no counters
func NewPlayer(input *NewPlayerInput) *models.Player {
	name := input.Name
	if name == "" {
		name = DefaultName(input.Seat)
	}
	seed := input.SeedColor
	if seed == "" {
		seed = palette.SeatColor(input.Seat)
	}

	p := &models.Player{
		ID:               input.ID,
		Seat:             input.Seat,
		Name:             name,
		Life:             input.StartingLife,
		StartingLife:     input.StartingLife,
		CommanderDamage:  make(map[string]int),
		Colors:           palette.Seed(seed),
		ActivePanel:      models.PanelNone,
		LastResetVersion: input.ResetVersion,
	}
	SyncOpponents(p, input.Opponents)
	return p
}

// DefaultName is the display name of an unnamed seat
func DefaultName(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

// AdjustLife adds delta to life without clamping
func AdjustLife(p *models.Player, delta int) {
	p.Life += delta
}

// AdjustPoison adds delta to poison, clamped to [0, MaxPoison]
func AdjustPoison(p *models.Player, delta int) {
	p.Poison = clamp(p.Poison+delta, 0, models.MaxPoison)
}

// TogglePanel opens panel, closing any other, or closes it if it is open
func TogglePanel(p *models.Player, panel models.Panel) {
	if panel == models.PanelNone || p.ActivePanel == panel {
		p.ActivePanel = models.PanelNone
		return
	}
	p.ActivePanel = panel
}

// ApplyCommanderDamage records delta commander damage from opponent and
// moves life by the inverse of the damage actually applied. Damage never
// drops below zero, so a -1 at zero changes neither counter. It returns
// the applied damage change.
func ApplyCommanderDamage(p *models.Player, opponent string, delta int) int {
	if p.CommanderDamage == nil {
		p.CommanderDamage = make(map[string]int)
	}

	before := p.CommanderDamage[opponent]
	after := before + delta
	if after < 0 {
		after = 0
	}
	p.CommanderDamage[opponent] = after

	applied := after - before
	p.Life -= applied
	return applied
}

// SyncOpponents back-fills a zero entry for every opponent missing from
// the commander damage map. Existing entries are never removed.
func SyncOpponents(p *models.Player, names []string) {
	if p.CommanderDamage == nil {
		p.CommanderDamage = make(map[string]int)
	}
	for _, name := range names {
		if name == p.Name {
			continue
		}
		if _, ok := p.CommanderDamage[name]; !ok {
			p.CommanderDamage[name] = 0
		}
	}
}

// Opponents returns every name in names except the player's own
func Opponents(p *models.Player, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name != p.Name {
			out = append(out, name)
		}
	}
	return out
}

// Rotate turns the player display by RotationStep degrees, wrapping at 360
func Rotate(p *models.Player) {
	p.Rotation = (p.Rotation + models.RotationStep) % 360
}

// Reset restores starting life, clears poison and collapses the poison panel
func Reset(p *models.Player) {
	p.Life = p.StartingLife
	p.Poison = 0
	if p.ActivePanel == models.PanelPoison {
		p.ActivePanel = models.PanelNone
	}
}

// ObserveReset resets p when the match reset signal moved past the last
// version p saw. startingLife becomes the player's new starting life.
// It reports whether a reset happened.
func ObserveReset(p *models.Player, version uint64, startingLife int) bool {
	if version == p.LastResetVersion {
		return false
	}
	p.LastResetVersion = version
	p.StartingLife = startingLife
	Reset(p)
	return true
}

// SelectColor toggles color in the player's tags
func SelectColor(p *models.Player, color string) error {
	tags, err := palette.Toggle(p.Colors, color)
	if err != nil {
		return err
	}
	p.Colors = tags
	return nil
}

// NormalizeName trims name and clamps it to MaxNameLength runes
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= models.MaxNameLength {
		return name
	}
	runes := []rune(name)
	return strings.TrimSpace(string(runes[:models.MaxNameLength]))
}

// Rename commits a new display name. An empty name keeps the old one.
// The easter-egg name opens and starts the stopwatch. It reports whether
// the name changed.
func Rename(p *models.Player, name string, now time.Time) bool {
	next := NormalizeName(name)
	if next == "" {
		return false
	}

	changed := next != p.Name
	p.Name = next
	if stopwatch.IsEasterEgg(next) {
		stopwatch.Start(&p.Timer, now)
	}
	return changed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
