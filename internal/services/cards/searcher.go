package cards

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultDebounce       = 400 * time.Millisecond
	DefaultMinQueryLength = 2
)

// SearcherConfig holds configuration for the search flow
type SearcherConfig struct {
	Client         Client
	Debounce       time.Duration
	MinQueryLength int
	Logger         *zap.Logger
}

// session is the search state of one viewer
type session struct {
	// id is the latest request, only its result is delivered
	id     uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

// stop drops the pending debounce and the in-flight fetch
func (s *session) stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Searcher runs debounced card searches and rulings lookups per session
// key. Deliver callbacks run while the searcher lock is held and must not
// call back into the searcher.
type Searcher struct {
	client   Client
	debounce time.Duration
	minLen   int
	logger   *zap.Logger

	mu       sync.Mutex
	seq      uint64
	sessions map[string]*session
	closed   bool
}

// NewSearcher creates a searcher
func NewSearcher(cfg *SearcherConfig) (*Searcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, errors.New("client cannot be nil")
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	minLen := cfg.MinQueryLength
	if minLen <= 0 {
		minLen = DefaultMinQueryLength
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Searcher{
		client:   cfg.Client,
		debounce: debounce,
		minLen:   minLen,
		logger:   logger.Named("searcher"),
		sessions: make(map[string]*session),
	}, nil
}

// next supersedes the pending work of key and returns the id of the new
// request. Ids are unique across sessions. Caller holds mu.
func (s *Searcher) next(key string) uint64 {
	sess, ok := s.sessions[key]
	if !ok {
		sess = &session{}
		s.sessions[key] = sess
	}
	sess.stop()
	s.seq++
	sess.id = s.seq
	return sess.id
}

// Submit schedules a search for query after the debounce delay. A query
// shorter than the minimum length delivers an empty result at once
// without fetching. Any earlier pending or in-flight request of the same
// key is superseded.
func (s *Searcher) Submit(key, query string, lang mtg.Lang, deliver func(*SearchResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	id := s.next(key)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minLen {
		deliver(&SearchResult{RequestID: id, Query: query, Cards: []models.Card{}})
		return
	}

	s.sessions[key].timer = time.AfterFunc(s.debounce, func() {
		s.fetch(key, id, func(ctx context.Context) func() {
			cards := s.client.SearchByName(ctx, query, lang)
			if cards == nil {
				cards = []models.Card{}
			}
			return func() {
				deliver(&SearchResult{
					RequestID: id,
					Query:     query,
					Cards:     cards,
					NotFound:  len(cards) == 0,
				})
			}
		})
	})
}

// SelectCard fetches the rulings of a chosen search result
func (s *Searcher) SelectCard(key, cardID string, deliver func(*RulingsResult)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	id := s.next(key)
	s.mu.Unlock()

	go s.fetch(key, id, func(ctx context.Context) func() {
		rulings := s.client.RulingsForCard(ctx, cardID)
		return func() {
			deliver(&RulingsResult{RequestID: id, CardID: cardID, Rulings: rulings})
		}
	})
}

// fetch runs one request for id and applies its result only if id is
// still the latest request of key
func (s *Searcher) fetch(key string, id uint64, run func(ctx context.Context) func()) {
	s.mu.Lock()
	sess, ok := s.sessions[key]
	if !ok || sess.id != id || s.closed {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	sess.timer = nil
	sess.cancel = cancel
	s.mu.Unlock()

	apply := run(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer cancel()

	sess, ok = s.sessions[key]
	if !ok || sess.id != id || s.closed {
		s.logger.Debug("dropping stale result", zap.String("key", key), zap.Uint64("request_id", id))
		return
	}
	sess.cancel = nil
	apply()
}

// Leave invalidates everything pending for key
func (s *Searcher) Leave(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[key]; ok {
		sess.stop()
		delete(s.sessions, key)
	}
}

// Close leaves every session and rejects further requests
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, sess := range s.sessions {
		sess.stop()
		delete(s.sessions, key)
	}
	s.closed = true
}

// Search runs one search immediately, for callers without a session
func (s *Searcher) Search(ctx context.Context, query string, lang mtg.Lang) *SearchResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minLen {
		return &SearchResult{Query: query, Cards: []models.Card{}}
	}

	cards := s.client.SearchByName(ctx, query, lang)
	if cards == nil {
		cards = []models.Card{}
	}
	return &SearchResult{Query: query, Cards: cards, NotFound: len(cards) == 0}
}

// Rulings fetches the rulings of a card immediately
func (s *Searcher) Rulings(ctx context.Context, cardID string) *RulingsResult {
	return &RulingsResult{CardID: cardID, Rulings: s.client.RulingsForCard(ctx, cardID)}
}
