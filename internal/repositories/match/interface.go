package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/countermtg/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/countermtg/internal/models"
)

// Repository defines the interface for match persistence
type Repository interface {
	// SaveMatch persists a match
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchByChannel retrieves the match hosted in a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error
}
