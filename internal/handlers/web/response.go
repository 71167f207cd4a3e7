package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/palette"
	"github.com/KirkDiggler/countermtg/internal/services/match"
)

// errBadRequest marks request bodies that could not be decoded
var errBadRequest = errors.New("malformed request body")

type errorResponse struct {
	Error string `json:"error"`
}

// matchView is a match with its seat layout and the background bands of
// every seat, top band first
type matchView struct {
	*models.Match
	Layout      models.Layout `json:"layout"`
	Backgrounds [][]string    `json:"backgrounds"`
}

func newMatchView(m *models.Match) *matchView {
	view := &matchView{
		Match:       m,
		Layout:      models.LayoutFor(len(m.Players)),
		Backgrounds: make([][]string, 0, len(m.Players)),
	}
	for _, p := range m.Players {
		view.Backgrounds = append(view.Backgrounds, background(p))
	}
	return view
}

// playerView is the result of a seat operation
type playerView struct {
	Match      *matchView     `json:"match"`
	Player     *models.Player `json:"player"`
	Background []string       `json:"background"`
	Eliminated bool           `json:"eliminated"`
	Applied    *int           `json:"applied,omitempty"`
}

func newPlayerView(out *match.UpdatePlayerOutput) *playerView {
	return &playerView{
		Match:      newMatchView(out.Match),
		Player:     out.Player,
		Background: background(out.Player),
		Eliminated: out.Eliminated,
	}
}

// background is nil for tags that do not parse
func background(p *models.Player) []string {
	bands, err := palette.BandsFor(p.Colors, palette.DefaultBands)
	if err != nil {
		return nil
	}
	return bands
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, match.ErrMatchNotFound),
		errors.Is(err, match.ErrPlayerNotFound),
		errors.Is(err, banlist.ErrUnknownFormat):
		return http.StatusNotFound
	case errors.Is(err, match.ErrInvalidConfig),
		errors.Is(err, match.ErrInvalidDelta),
		errors.Is(err, match.ErrInvalidPanel),
		errors.Is(err, match.ErrInvalidColor),
		errors.Is(err, match.ErrInvalidTimerAction),
		errors.Is(err, match.ErrUnknownOpponent),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, match.ErrNameTaken):
		return http.StatusConflict
	case errors.Is(err, match.ErrServiceClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body into v
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}
