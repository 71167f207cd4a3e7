// Package web serves the life counter over HTTP: a JSON API for matches
// and card lookups, and a websocket per viewer streaming match events and
// running the search and banlist tabs.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/common/uuid"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/KirkDiggler/countermtg/internal/services/match"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// CardSearcher runs card searches, debounced per viewer or one-shot
type CardSearcher interface {
	Submit(key, query string, lang mtg.Lang, deliver func(*cards.SearchResult))
	SelectCard(key, cardID string, deliver func(*cards.RulingsResult))
	Leave(key string)
	Search(ctx context.Context, query string, lang mtg.Lang) *cards.SearchResult
	Rulings(ctx context.Context, cardID string) *cards.RulingsResult
}

// BanlistResolver lists banned cards and resolves their images
type BanlistResolver interface {
	Formats() []banlist.Format
	Resolve(ctx context.Context, input *cards.ResolveInput) (*cards.ResolveOutput, error)
	Forget(ctx context.Context, scope string) error
}

// Config holds the configuration for the web server
type Config struct {
	MatchService  match.Service
	Searcher      CardSearcher
	Banlist       BanlistResolver
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// Server holds the HTTP handlers
type Server struct {
	matchService match.Service
	searcher     CardSearcher
	banlist      BanlistResolver
	uuid         uuid.UUID
	logger       *zap.Logger
	upgrader     websocket.Upgrader
}

// NewServer creates the web handlers
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}
	if cfg.Searcher == nil {
		return nil, errors.New("card searcher cannot be nil")
	}
	if cfg.Banlist == nil {
		return nil, errors.New("banlist resolver cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		matchService: cfg.MatchService,
		searcher:     cfg.Searcher,
		banlist:      cfg.Banlist,
		uuid:         cfg.UUIDGenerator,
		logger:       logger.Named("web"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  2048,
			WriteBufferSize: 2048,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}, nil
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests, validateMatchID)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/matches", s.createMatch).Methods(http.MethodPost)
	r.HandleFunc("/matches/{id}", s.getMatch).Methods(http.MethodGet)
	r.HandleFunc("/matches/{id}", s.endMatch).Methods(http.MethodDelete)
	r.HandleFunc("/matches/{id}/draft", s.updateDraft).Methods(http.MethodPut)
	r.HandleFunc("/matches/{id}/apply", s.applySettings).Methods(http.MethodPost)
	r.HandleFunc("/matches/{id}/reset", s.resetLives).Methods(http.MethodPost)
	r.HandleFunc("/matches/{id}/spotlight", s.startSpotlight).Methods(http.MethodPost)
	r.HandleFunc("/matches/{id}/ws", s.serveSocket).Methods(http.MethodGet)

	players := r.PathPrefix("/matches/{id}/players/{seat:[0-9]+}").Subrouter()
	players.HandleFunc("/life", s.playerAction(s.adjustLife)).Methods(http.MethodPost)
	players.HandleFunc("/press", s.playerAction(s.pressDelta)).Methods(http.MethodPost)
	players.HandleFunc("/release", s.releaseDelta).Methods(http.MethodPost)
	players.HandleFunc("/poison", s.playerAction(s.adjustPoison)).Methods(http.MethodPost)
	players.HandleFunc("/panel", s.playerAction(s.togglePanel)).Methods(http.MethodPost)
	players.HandleFunc("/commander", s.playerAction(s.applyCommanderDamage)).Methods(http.MethodPost)
	players.HandleFunc("/rotate", s.playerAction(s.rotatePlayer)).Methods(http.MethodPost)
	players.HandleFunc("/reset", s.playerAction(s.resetPlayer)).Methods(http.MethodPost)
	players.HandleFunc("/colors", s.playerAction(s.selectColor)).Methods(http.MethodPost)
	players.HandleFunc("/name", s.playerAction(s.renamePlayer)).Methods(http.MethodPut)
	players.HandleFunc("/timer", s.playerAction(s.controlTimer)).Methods(http.MethodPost)

	r.HandleFunc("/cards/search", s.searchCards).Methods(http.MethodGet)
	r.HandleFunc("/cards/{card}/rulings", s.cardRulings).Methods(http.MethodGet)
	r.HandleFunc("/banlists", s.listFormats).Methods(http.MethodGet)
	r.HandleFunc("/banlists/{format}", s.getBanlist).Methods(http.MethodGet)

	return r
}

// validateMatchID answers 404 for match ids that are not UUIDs
func validateMatchID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := mux.Vars(r)["id"]; ok && !uuid.IsValid(id) {
			writeError(w, match.ErrMatchNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}
