package card_image

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scopeKeyPrefix = "card_image:"

// DefaultTTL is how long an untouched scope is kept
const DefaultTTL = 6 * time.Hour

// Config holds configuration for the Redis card image repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires an untouched scope
	TTL time.Duration
}

type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed card image repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

func scopeKey(scope string) string {
	return scopeKeyPrefix + scope
}

// GetImageURLs reads the cached URLs from the scope hash
func (r *redisRepository) GetImageURLs(ctx context.Context, input *GetImageURLsInput) (map[string]string, error) {
	if input == nil || input.Scope == "" {
		return nil, errors.New("input and scope cannot be empty")
	}

	out := make(map[string]string, len(input.Names))
	if len(input.Names) == 0 {
		return out, nil
	}

	values, err := r.client.HMGet(ctx, scopeKey(input.Scope), input.Names...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get card images: %w", err)
	}

	for i, v := range values {
		if url, ok := v.(string); ok && url != "" {
			out[input.Names[i]] = url
		}
	}
	return out, nil
}

// SaveImageURL writes one URL into the scope hash and refreshes its TTL
func (r *redisRepository) SaveImageURL(ctx context.Context, input *SaveImageURLInput) error {
	if input == nil || input.Scope == "" || input.Name == "" {
		return errors.New("input, scope and name cannot be empty")
	}
	if input.URL == "" {
		return nil
	}

	key := scopeKey(input.Scope)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, input.Name, input.URL)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save card image: %w", err)
	}
	return nil
}

// ClearScope deletes the scope hash
func (r *redisRepository) ClearScope(ctx context.Context, input *ClearScopeInput) error {
	if input == nil || input.Scope == "" {
		return errors.New("input and scope cannot be empty")
	}

	if err := r.client.Del(ctx, scopeKey(input.Scope)).Err(); err != nil {
		return fmt.Errorf("failed to clear card images: %w", err)
	}
	return nil
}
