package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/countermtg/internal/models"
)

// memoryRepository keeps matches in process. Matches are stored encoded
// so callers never share pointers with the store.
type memoryRepository struct {
	mu       sync.RWMutex
	matches  map[string][]byte
	channels map[string]string
}

// NewMemory creates an in-process match repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		matches:  make(map[string][]byte),
		channels: make(map[string]string),
	}
}

// SaveMatch stores a copy of the match
func (r *memoryRepository) SaveMatch(_ context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}
	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	raw, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[input.Match.ID] = raw
	if input.Match.ChannelID != "" {
		r.channels[input.Match.ChannelID] = input.Match.ID
	}
	return nil
}

// GetMatch returns a copy of the stored match
func (r *memoryRepository) GetMatch(_ context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	r.mu.RLock()
	raw, ok := r.matches[input.MatchID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrMatchNotFound
	}

	var match models.Match
	if err := json.Unmarshal(raw, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// GetMatchByChannel returns the match hosted in a channel
func (r *memoryRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	r.mu.RLock()
	matchID, ok := r.channels[input.ChannelID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrMatchNotFound
	}

	return r.GetMatch(ctx, &GetMatchInput{MatchID: matchID})
}

// DeleteMatch removes a match and its channel mapping
func (r *memoryRepository) DeleteMatch(_ context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[input.MatchID]; !ok {
		return ErrMatchNotFound
	}
	delete(r.matches, input.MatchID)
	for channel, id := range r.channels {
		if id == input.MatchID {
			delete(r.channels, channel)
		}
	}
	return nil
}
