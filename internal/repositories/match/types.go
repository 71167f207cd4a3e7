package match

import "github.com/KirkDiggler/countermtg/internal/models"

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchByChannelInput struct {
	ChannelID string
}

type DeleteMatchInput struct {
	MatchID string
}
