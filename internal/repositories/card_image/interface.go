package card_image

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/countermtg/internal/repositories/card_image Repository

import (
	"context"
)

// Repository caches card image URLs by card name. Entries live in a
// scope, usually one per viewing session, and only found URLs are cached.
type Repository interface {
	// GetImageURLs returns the cached URLs for the names that have one
	GetImageURLs(ctx context.Context, input *GetImageURLsInput) (map[string]string, error)

	// SaveImageURL caches the URL for a card name
	SaveImageURL(ctx context.Context, input *SaveImageURLInput) error

	// ClearScope drops every entry in a scope
	ClearScope(ctx context.Context, input *ClearScopeInput) error
}
