// Package mtg is a read-only client for the magicthegathering.io card
// database. Every lookup degrades to an empty result: HTTP failures,
// cancellation and malformed bodies are logged, never returned.
package mtg

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/countermtg/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public card API
	DefaultBaseURL = "https://api.magicthegathering.io/v1"

	imagePageSize  = 20
	searchPageSize = 12
)

// Lang selects which name field a lookup matches
type Lang string

const (
	LangEnglish Lang = "en"
	LangSpanish Lang = "es"
)

// ParseLang maps a free-form language code, defaulting to English
func ParseLang(s string) Lang {
	if strings.EqualFold(strings.TrimSpace(s), string(LangSpanish)) {
		return LangSpanish
	}
	return LangEnglish
}

func (l Lang) queryParam() string {
	if l == LangSpanish {
		return "foreignName"
	}
	return "name"
}

// Config holds configuration for the card client
type Config struct {
	// BaseURL overrides DefaultBaseURL
	BaseURL string

	// HTTPClient overrides the default client
	HTTPClient *http.Client

	Logger *zap.Logger
}

// Client looks cards up by name and fetches rulings
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a card client
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		logger:  logger.Named("mtg"),
	}
}

type cardsResponse struct {
	Cards []models.Card `json:"cards"`
}

type rulingsResponse struct {
	Rulings []models.Ruling `json:"rulings"`
}

// LookupImageByName returns the image URL of the first matching card that
// has one
func (c *Client) LookupImageByName(ctx context.Context, name string, lang Lang) (string, bool) {
	cards := c.cards(ctx, name, lang, imagePageSize)
	for _, card := range cards {
		if card.ImageURL != "" {
			return card.ImageURL, true
		}
	}
	return "", false
}

// SearchByName returns the matching cards that carry an id
func (c *Client) SearchByName(ctx context.Context, name string, lang Lang) []models.Card {
	cards := c.cards(ctx, name, lang, searchPageSize)
	out := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if card.ID != "" {
			out = append(out, card)
		}
	}
	return out
}

// RulingsForCard returns the rulings attached to a card id
func (c *Client) RulingsForCard(ctx context.Context, cardID string) []models.Ruling {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return []models.Ruling{}
	}

	var resp rulingsResponse
	if !c.get(ctx, c.baseURL+"/cards/"+url.PathEscape(cardID)+"/rulings", &resp) {
		return []models.Ruling{}
	}
	if resp.Rulings == nil {
		return []models.Ruling{}
	}
	return resp.Rulings
}

func (c *Client) cards(ctx context.Context, name string, lang Lang, pageSize int) []models.Card {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	q := url.Values{}
	q.Set(lang.queryParam(), name)
	q.Set("pageSize", strconv.Itoa(pageSize))

	var resp cardsResponse
	if !c.get(ctx, c.baseURL+"/cards?"+q.Encode(), &resp) {
		return nil
	}
	return resp.Cards
}

// get decodes a JSON body into out and reports success
func (c *Client) get(ctx context.Context, rawURL string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		c.logger.Warn("failed to build request", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			c.logger.Debug("request cancelled", zap.String("url", rawURL))
		} else {
			c.logger.Warn("request failed", zap.String("url", rawURL), zap.Error(err))
		}
		return false
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.Warn("unexpected status", zap.String("url", rawURL), zap.Int("status", res.StatusCode))
		return false
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		c.logger.Warn("failed to decode response", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	return true
}
