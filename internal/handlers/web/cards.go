package web

import (
	"net/http"

	"github.com/KirkDiggler/countermtg/internal/banlist"
	"github.com/KirkDiggler/countermtg/internal/clients/mtg"
	"github.com/KirkDiggler/countermtg/internal/services/cards"
	"github.com/gorilla/mux"
)

// defaultBanlistScope caches images for callers that send no session
const defaultBanlistScope = "http"

type formatsResponse struct {
	Formats []banlist.Format `json:"formats"`
}

func (s *Server) searchCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.searcher.Search(r.Context(), q.Get("q"), mtg.ParseLang(q.Get("lang"))))
}

func (s *Server) cardRulings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.searcher.Rulings(r.Context(), mux.Vars(r)["card"]))
}

func (s *Server) listFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formatsResponse{Formats: s.banlist.Formats()})
}

// getBanlist resolves a format. The session query parameter scopes the
// image cache, so one viewer's lookups are reused on their next visit.
func (s *Server) getBanlist(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope := q.Get("session")
	if scope == "" {
		scope = defaultBanlistScope
	}

	out, err := s.banlist.Resolve(r.Context(), &cards.ResolveInput{
		Format: banlist.Format(mux.Vars(r)["format"]),
		Lang:   mtg.ParseLang(q.Get("lang")),
		Scope:  scope,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
