package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/countermtg/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetEliminationMessage returns a message for when a player loses
	GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error)

	// GetSpotlightMessage returns a message announcing the starting player
	GetSpotlightMessage(ctx context.Context, input *GetSpotlightMessageInput) (*GetSpotlightMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
