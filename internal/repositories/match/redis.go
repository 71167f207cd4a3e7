package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	channelKeyPrefix = "match:channel:"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires idle matches, zero keeps them forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func matchKey(id string) string {
	return matchKeyPrefix + id
}

func channelKey(id string) string {
	return channelKeyPrefix + id
}

// SaveMatch persists a match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}
	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, matchKey(input.Match.ID), matchJSON, r.ttl)

	// a channel hosts one match at a time
	if input.Match.ChannelID != "" {
		pipe.Set(ctx, channelKey(input.Match.ChannelID), input.Match.ID, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKey(input.MatchID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.Match
	if err := json.Unmarshal(matchJSON, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetMatchByChannel retrieves the match hosted in a channel from Redis
func (r *redisRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	matchID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match ID for channel: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: matchID,
	})
}

// DeleteMatch removes a match from Redis
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	match, err := r.GetMatch(ctx, &GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, matchKey(input.MatchID))

	// only drop the channel mapping if it still points at this match
	if match.ChannelID != "" {
		current, err := r.client.Get(ctx, channelKey(match.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get match ID for channel: %w", err)
		}
		if current == input.MatchID {
			pipe.Del(ctx, channelKey(match.ChannelID))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}
