package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/countermtg/internal/services/match Service

import (
	"context"

	"github.com/KirkDiggler/countermtg/internal/models"
)

// Service defines the interface for life counter matches
type Service interface {
	// StartMatch seats a new match, replacing any match in the same channel
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// GetMatchByChannel retrieves the match hosted in a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchOutput, error)

	// SetMessageID records the board message of a match
	SetMessageID(ctx context.Context, input *SetMessageIDInput) error

	// EndMatch discards a match
	EndMatch(ctx context.Context, input *EndMatchInput) error

	// UpdateDraft edits the pending settings without touching the match
	UpdateDraft(ctx context.Context, input *UpdateDraftInput) (*UpdateMatchOutput, error)

	// ApplySettings commits the pending settings
	ApplySettings(ctx context.Context, input *ApplySettingsInput) (*UpdateMatchOutput, error)

	// ResetLives sends the reset signal to every player
	ResetLives(ctx context.Context, input *ResetLivesInput) (*UpdateMatchOutput, error)

	// StartSpotlight picks a random starting player, superseding any run in progress
	StartSpotlight(ctx context.Context, input *StartSpotlightInput) (*UpdateMatchOutput, error)

	// AdjustLife applies a single life tap
	AdjustLife(ctx context.Context, input *AdjustLifeInput) (*UpdatePlayerOutput, error)

	// PressDelta starts a press on a life button
	PressDelta(ctx context.Context, input *PressDeltaInput) (*UpdatePlayerOutput, error)

	// ReleaseDelta ends a press on a life button
	ReleaseDelta(ctx context.Context, input *ReleaseDeltaInput) (*ReleaseDeltaOutput, error)

	// AdjustPoison changes the poison counter
	AdjustPoison(ctx context.Context, input *AdjustPoisonInput) (*UpdatePlayerOutput, error)

	// TogglePanel opens or closes a player panel
	TogglePanel(ctx context.Context, input *TogglePanelInput) (*UpdatePlayerOutput, error)

	// ApplyCommanderDamage records commander damage from an opponent
	ApplyCommanderDamage(ctx context.Context, input *ApplyCommanderDamageInput) (*UpdatePlayerOutput, error)

	// RotatePlayer turns a player display
	RotatePlayer(ctx context.Context, input *RotatePlayerInput) (*UpdatePlayerOutput, error)

	// ResetPlayer restores one player to starting life
	ResetPlayer(ctx context.Context, input *ResetPlayerInput) (*UpdatePlayerOutput, error)

	// SelectColor toggles a color tag
	SelectColor(ctx context.Context, input *SelectColorInput) (*UpdatePlayerOutput, error)

	// RenamePlayer commits a display name
	RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*UpdatePlayerOutput, error)

	// ControlTimer drives a player stopwatch
	ControlTimer(ctx context.Context, input *ControlTimerInput) (*UpdatePlayerOutput, error)

	// Subscribe streams the events of a match until cancel is called or
	// the match ends
	Subscribe(input *SubscribeInput) (<-chan *models.MatchEvent, func())
}
