package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/common/clock"
	"github.com/KirkDiggler/countermtg/internal/common/uuid"
	"github.com/KirkDiggler/countermtg/internal/config"
	"github.com/KirkDiggler/countermtg/internal/dice"
	"github.com/KirkDiggler/countermtg/internal/handlers/discord"
	"github.com/KirkDiggler/countermtg/internal/handlers/web"
	"github.com/KirkDiggler/countermtg/internal/hold"
	"github.com/KirkDiggler/countermtg/internal/repositories/card_image"
	matchRepo "github.com/KirkDiggler/countermtg/internal/repositories/match"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/KirkDiggler/countermtg/internal/services/match"
	"github.com/KirkDiggler/countermtg/internal/services/messaging"
	"github.com/KirkDiggler/countermtg/internal/spotlight"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("life counter stopped", zap.Error(err))
	}
	logger.Info("life counter has been shut down")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize repositories
	var (
		matches matchRepo.Repository
		images  card_image.Repository
	)
	switch cfg.Store {
	case config.StoreRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			return err
		}

		redisMatches, err := matchRepo.NewRedis(&matchRepo.Config{
			RedisClient: redisClient,
			TTL:         cfg.MatchTTL,
		})
		if err != nil {
			return err
		}
		redisImages, err := card_image.NewRedis(&card_image.Config{
			RedisClient: redisClient,
			TTL:         cfg.MatchTTL,
		})
		if err != nil {
			return err
		}
		matches, images = redisMatches, redisImages
	default:
		matches, images = matchRepo.NewMemory(), card_image.NewMemory()
	}
	logger.Info("using store", zap.String("store", string(cfg.Store)))

	// Initialize card services
	cardClient := mtg.New(&mtg.Config{
		BaseURL: cfg.CardAPIBaseURL,
		Logger:  logger.Named("mtg"),
	})

	searcher, err := cards.NewSearcher(&cards.SearcherConfig{
		Client:   cardClient,
		Debounce: cfg.SearchDebounce,
		Logger:   logger.Named("search"),
	})
	if err != nil {
		return err
	}
	defer searcher.Close()

	bans, err := cards.NewBanlist(&cards.BanlistConfig{
		Client: cardClient,
		Cache:  images,
		Logger: logger.Named("banlist"),
	})
	if err != nil {
		return err
	}

	// Initialize match service
	matchSvc, err := match.NewService(&match.Config{
		MatchRepo:     matches,
		DiceRoller:    dice.New(&dice.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger.Named("match"),
		Hold: &hold.Config{
			Threshold: cfg.HoldThreshold,
			Interval:  cfg.HoldInterval,
		},
		Spotlight: &spotlight.Config{
			Tick:     cfg.SpotlightTick,
			Duration: cfg.SpotlightDuration,
		},
		AutoSpotlight: cfg.AutoSpotlight,
	})
	if err != nil {
		return err
	}
	defer matchSvc.Close()

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.DiscordToken != "" {
		bot, err := discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.ApplicationID,
			GuildID:          cfg.GuildID,
			MatchService:     matchSvc,
			Searcher:         searcher,
			Banlist:          bans,
			MessagingService: messagingSvc,
			Logger:           logger,
		})
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
		logger.Info("discord bot started")

		g.Go(func() error {
			<-gctx.Done()
			return bot.Stop()
		})
	}

	if cfg.HTTPEnabled {
		server, err := web.NewServer(&web.Config{
			MatchService:  matchSvc,
			Searcher:      searcher,
			Banlist:       bans,
			UUIDGenerator: uuid.New(),
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		httpServer := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           server.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
