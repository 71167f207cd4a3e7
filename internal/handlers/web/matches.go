package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/countermtg/internal/models"
	"github.com/KirkDiggler/countermtg/internal/services/match"
	"github.com/KirkDiggler/countermtg/internal/stopwatch"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type createMatchRequest struct {
	Players      int `json:"players"`
	StartingLife int `json:"startingLife"`
}

type draftRequest struct {
	Players      *int `json:"players"`
	StartingLife *int `json:"startingLife"`
}

type deltaRequest struct {
	Delta int `json:"delta"`
}

type panelRequest struct {
	Panel models.Panel `json:"panel"`
}

type commanderRequest struct {
	Opponent string `json:"opponent"`
	Delta    int    `json:"delta"`
}

type colorRequest struct {
	Color string `json:"color"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type timerRequest struct {
	Action stopwatch.Action `json:"action"`
}

// fail writes err, logging the ones the caller could not have caused
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	writeError(w, err)
}

func (s *Server) createMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := s.matchService.StartMatch(r.Context(), &match.StartMatchInput{
		PlayerCount:  req.Players,
		StartingLife: req.StartingLife,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newMatchView(out.Match))
}

func (s *Server) getMatch(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.GetMatch(r.Context(), &match.GetMatchInput{MatchID: mux.Vars(r)["id"]})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newMatchView(out.Match))
}

func (s *Server) endMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.matchService.EndMatch(r.Context(), &match.EndMatchInput{MatchID: mux.Vars(r)["id"]}); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := s.matchService.UpdateDraft(r.Context(), &match.UpdateDraftInput{
		MatchID:      mux.Vars(r)["id"],
		PlayerCount:  req.Players,
		StartingLife: req.StartingLife,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newMatchView(out.Match))
}

func (s *Server) applySettings(w http.ResponseWriter, r *http.Request) {
	s.matchAction(w, r, func(ctx context.Context, matchID string) (*match.UpdateMatchOutput, error) {
		return s.matchService.ApplySettings(ctx, &match.ApplySettingsInput{MatchID: matchID})
	})
}

func (s *Server) resetLives(w http.ResponseWriter, r *http.Request) {
	s.matchAction(w, r, func(ctx context.Context, matchID string) (*match.UpdateMatchOutput, error) {
		return s.matchService.ResetLives(ctx, &match.ResetLivesInput{MatchID: matchID})
	})
}

func (s *Server) startSpotlight(w http.ResponseWriter, r *http.Request) {
	s.matchAction(w, r, func(ctx context.Context, matchID string) (*match.UpdateMatchOutput, error) {
		return s.matchService.StartSpotlight(ctx, &match.StartSpotlightInput{MatchID: matchID})
	})
}

func (s *Server) matchAction(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, matchID string) (*match.UpdateMatchOutput, error)) {
	out, err := op(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newMatchView(out.Match))
}

// playerOp runs one seat operation from a request
type playerOp func(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error)

func (s *Server) playerAction(op playerOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		seat, err := strconv.Atoi(vars["seat"])
		if err != nil {
			s.fail(w, r, match.ErrPlayerNotFound)
			return
		}

		out, err := op(r, vars["id"], seat)
		if err != nil {
			s.fail(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newPlayerView(out))
	}
}

func (s *Server) adjustLife(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req deltaRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.AdjustLife(r.Context(), &match.AdjustLifeInput{MatchID: matchID, Seat: seat, Delta: req.Delta})
}

func (s *Server) pressDelta(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req deltaRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.PressDelta(r.Context(), &match.PressDeltaInput{MatchID: matchID, Seat: seat, Delta: req.Delta})
}

// releaseDelta also reports how many times the held delta applied
func (s *Server) releaseDelta(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	seat, err := strconv.Atoi(vars["seat"])
	if err != nil {
		s.fail(w, r, match.ErrPlayerNotFound)
		return
	}

	out, err := s.matchService.ReleaseDelta(r.Context(), &match.ReleaseDeltaInput{MatchID: vars["id"], Seat: seat})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	view := newPlayerView(&out.UpdatePlayerOutput)
	view.Applied = &out.Applied
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) adjustPoison(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req deltaRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.AdjustPoison(r.Context(), &match.AdjustPoisonInput{MatchID: matchID, Seat: seat, Delta: req.Delta})
}

func (s *Server) togglePanel(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req panelRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.TogglePanel(r.Context(), &match.TogglePanelInput{MatchID: matchID, Seat: seat, Panel: req.Panel})
}

func (s *Server) applyCommanderDamage(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req commanderRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.ApplyCommanderDamage(r.Context(), &match.ApplyCommanderDamageInput{
		MatchID:  matchID,
		Seat:     seat,
		Opponent: req.Opponent,
		Delta:    req.Delta,
	})
}

func (s *Server) rotatePlayer(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	return s.matchService.RotatePlayer(r.Context(), &match.RotatePlayerInput{MatchID: matchID, Seat: seat})
}

func (s *Server) resetPlayer(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	return s.matchService.ResetPlayer(r.Context(), &match.ResetPlayerInput{MatchID: matchID, Seat: seat})
}

func (s *Server) selectColor(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req colorRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.SelectColor(r.Context(), &match.SelectColorInput{MatchID: matchID, Seat: seat, Color: req.Color})
}

func (s *Server) renamePlayer(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.RenamePlayer(r.Context(), &match.RenamePlayerInput{MatchID: matchID, Seat: seat, Name: req.Name})
}

func (s *Server) controlTimer(r *http.Request, matchID string, seat int) (*match.UpdatePlayerOutput, error) {
	var req timerRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return s.matchService.ControlTimer(r.Context(), &match.ControlTimerInput{MatchID: matchID, Seat: seat, Action: req.Action})
}
