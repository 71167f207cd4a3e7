package cards

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/countermtg/internal/services/cards Client

import (
	"context"

	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/models"
)

// Client is the card database the flows read from
type Client interface {
	LookupImageByName(ctx context.Context, name string, lang mtg.Lang) (string, bool)
	SearchByName(ctx context.Context, name string, lang mtg.Lang) []models.Card
	RulingsForCard(ctx context.Context, cardID string) []models.Ruling
}
