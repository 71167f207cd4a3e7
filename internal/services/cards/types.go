package cards

import (
	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/models"
)

// SearchResult is delivered for the latest search of a session
type SearchResult struct {
	RequestID uint64        `json:"requestId"`
	Query     string        `json:"query"`
	Cards     []models.Card `json:"cards"`

	// NotFound is set when a fetched query matched nothing
	NotFound bool `json:"notFound"`
}

// RulingsResult is delivered for the latest card selection of a session
type RulingsResult struct {
	RequestID uint64          `json:"requestId"`
	CardID    string          `json:"cardId"`
	Rulings   []models.Ruling `json:"rulings"`
}

type ResolveInput struct {
	Format banlist.Format
	Lang   mtg.Lang

	// Scope is the image cache scope, usually the viewing session
	Scope string

	// OnEntry, when set, receives each entry as its image resolves.
	// Calls are serialized.
	OnEntry func(models.BanlistEntry)
}

type ResolveOutput struct {
	Format  banlist.Format        `json:"format"`
	Entries []models.BanlistEntry `json:"entries"`
}
