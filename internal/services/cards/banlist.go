package cards

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/repositories/card_image"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel image lookups per resolve
const DefaultConcurrency = 8

// BanlistConfig holds configuration for the banlist flow
type BanlistConfig struct {
	Client      Client
	Tables      *banlist.Tables
	Cache       card_image.Repository
	Concurrency int
	Logger      *zap.Logger
}

// Banlist resolves banned card names to images
type Banlist struct {
	client      Client
	tables      *banlist.Tables
	cache       card_image.Repository
	concurrency int
	logger      *zap.Logger
}

// NewBanlist creates a banlist flow
func NewBanlist(cfg *BanlistConfig) (*Banlist, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if cfg.Cache == nil {
		return nil, errors.New("cache cannot be nil")
	}

	tables := cfg.Tables
	if tables == nil {
		tables = banlist.Default()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Banlist{
		client:      cfg.Client,
		tables:      tables,
		cache:       cfg.Cache,
		concurrency: concurrency,
		logger:      logger.Named("banlist"),
	}, nil
}

// Formats lists the formats with a banlist
func (b *Banlist) Formats() []banlist.Format {
	return b.tables.Formats()
}

// Names returns the banned names of a format without resolving images
func (b *Banlist) Names(format banlist.Format) ([]string, error) {
	return b.tables.Get(format)
}

// Resolve looks up the image of every banned name missing from the
// scope's cache, in parallel. Cancelling ctx aborts outstanding lookups;
// once ctx is done no result is cached or reported and ctx's error is
// returned.
func (b *Banlist) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Scope == "" {
		return nil, errors.New("scope cannot be empty")
	}

	names, err := b.tables.Get(input.Format)
	if err != nil {
		return nil, err
	}

	cached, err := b.cache.GetImageURLs(ctx, &card_image.GetImageURLsInput{
		Scope: input.Scope,
		Names: names,
	})
	if err != nil {
		b.logger.Warn("failed to read image cache", zap.String("scope", input.Scope), zap.Error(err))
		cached = map[string]string{}
	}

	var (
		mu      sync.Mutex
		found   = make(map[string]string, len(names))
		pending = make(map[string]bool, len(names))
	)
	for name, url := range cached {
		found[name] = url
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for _, name := range names {
		if _, ok := found[name]; ok || pending[name] {
			continue
		}
		pending[name] = true

		g.Go(func() error {
			url, ok := b.client.LookupImageByName(gctx, name, input.Lang)

			mu.Lock()
			defer mu.Unlock()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !ok {
				return nil
			}
			found[name] = url
			if input.OnEntry != nil {
				input.OnEntry(models.BanlistEntry{Name: name, ImageURL: url})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for name := range pending {
		url, ok := found[name]
		if !ok {
			continue
		}
		if err := b.cache.SaveImageURL(ctx, &card_image.SaveImageURLInput{
			Scope: input.Scope,
			Name:  name,
			URL:   url,
		}); err != nil {
			b.logger.Warn("failed to cache image", zap.String("name", name), zap.Error(err))
		}
	}

	out := &ResolveOutput{
		Format:  input.Format,
		Entries: make([]models.BanlistEntry, 0, len(names)),
	}
	for _, name := range names {
		out.Entries = append(out.Entries, models.BanlistEntry{Name: name, ImageURL: found[name]})
	}
	return out, nil
}

// Forget drops the cached images of a scope
func (b *Banlist) Forget(ctx context.Context, scope string) error {
	if err := b.cache.ClearScope(ctx, &card_image.ClearScopeInput{Scope: scope}); err != nil {
		return fmt.Errorf("failed to forget images: %w", err)
	}
	return nil
}
