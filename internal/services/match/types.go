package match

import (
	"github.com/KirkDiggler/countermtg/internal/common/clock"
	"github.com/KirkDiggler/countermtg/internal/common/uuid"
	"github.com/KirkDiggler/countermtg/internal/dice"
	"github.com/KirkDiggler/countermtg/internal/hold"
	"github.com/KirkDiggler/countermtg/internal/models"
	matchRepo "github.com/KirkDiggler/countermtg/internal/repositories/match"
	"github.com/KirkDiggler/countermtg/internal/spotlight"
	"github.com/KirkDiggler/countermtg/internal/stopwatch"
	"go.uber.org/zap"
)

const (
	// DefaultPlayerCount is used when a match starts without a count
	DefaultPlayerCount = 2

	// DefaultStartingLife is used when a match starts without a life total
	DefaultStartingLife = 20

	// DefaultEventBuffer is the per-subscriber event queue length
	DefaultEventBuffer = 32
)

// Config holds configuration for the match service
type Config struct {
	// Repository dependencies
	MatchRepo matchRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger

	// Hold tunes long-press detection on life buttons
	Hold *hold.Config

	// Spotlight tunes the starting player highlight
	Spotlight *spotlight.Config

	// AutoSpotlight starts the highlight whenever a match starts
	AutoSpotlight bool

	// EventBuffer is the per-subscriber event queue length
	EventBuffer int
}

// StartMatchInput defines the input for starting a match
type StartMatchInput struct {
	// ChannelID is the Discord channel hosting the match, empty for web
	ChannelID string

	PlayerCount  int
	StartingLife int
}

// StartMatchOutput defines the output of starting a match
type StartMatchOutput struct {
	Match *models.Match

	// Replaced is the ID of a match the new one replaced in the channel
	Replaced string
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchByChannelInput struct {
	ChannelID string
}

type GetMatchOutput struct {
	Match *models.Match
}

type SetMessageIDInput struct {
	MatchID   string
	MessageID string
}

type EndMatchInput struct {
	MatchID string
}

// UpdateDraftInput edits the pending settings. Nil fields are left as is.
type UpdateDraftInput struct {
	MatchID      string
	PlayerCount  *int
	StartingLife *int
}

type ApplySettingsInput struct {
	MatchID string
}

type ResetLivesInput struct {
	MatchID string
}

type StartSpotlightInput struct {
	MatchID string
}

// UpdateMatchOutput is returned by match-wide operations
type UpdateMatchOutput struct {
	Match *models.Match
}

// UpdatePlayerOutput is returned by player operations
type UpdatePlayerOutput struct {
	Match  *models.Match
	Player *models.Player

	// Eliminated is set when this change made the player lose
	Eliminated bool
}

type AdjustLifeInput struct {
	MatchID string
	Seat    int

	// Delta is one of -5, -1, +1, +5
	Delta int
}

type PressDeltaInput struct {
	MatchID string
	Seat    int

	// Delta is one of -5, -1, +1, +5
	Delta int
}

type ReleaseDeltaInput struct {
	MatchID string
	Seat    int
}

// ReleaseDeltaOutput reports how a press resolved
type ReleaseDeltaOutput struct {
	UpdatePlayerOutput

	// Applied is how many times the delta was applied on release
	Applied int
}

type AdjustPoisonInput struct {
	MatchID string
	Seat    int

	// Delta is -1 or +1
	Delta int
}

type TogglePanelInput struct {
	MatchID string
	Seat    int
	Panel   models.Panel
}

type ApplyCommanderDamageInput struct {
	MatchID string
	Seat    int

	// Opponent is the display name of the commander's owner
	Opponent string

	// Delta is -1 or +1
	Delta int
}

type RotatePlayerInput struct {
	MatchID string
	Seat    int
}

type ResetPlayerInput struct {
	MatchID string
	Seat    int
}

type SelectColorInput struct {
	MatchID string
	Seat    int
	Color   string
}

type RenamePlayerInput struct {
	MatchID string
	Seat    int
	Name    string
}

type ControlTimerInput struct {
	MatchID string
	Seat    int
	Action  stopwatch.Action
}

type SubscribeInput struct {
	MatchID string
}
