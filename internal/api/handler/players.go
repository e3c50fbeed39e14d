package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/cartola-scouts/internal/query"
)

// ListPlayers returns the season ranking, optionally filtered.
// @Summary List players
// @Description Season ranking rows ordered by average fantasy points. Name matches a case-insensitive substring.
// @Tags players
// @Produce json
// @Param club query string false "Club name"
// @Param position query string false "Position label" Enums(Goalkeeper, Fullback, Defender, Midfielder, Forward, Coach, Unknown)
// @Param name query string false "Name substring"
// @Param limit query int false "Maximum rows (1-1000)" default(1000)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r, query.DefaultPlayersLimit)
	if !ok {
		return
	}
	f := query.PlayerFilter{
		Club:     queryString(r, "club"),
		Position: queryString(r, "position"),
		Name:     queryString(r, "name"),
		Limit:    limit,
	}
	h.serve(w, r, func() (any, error) {
		return h.svc.ListPlayers(r.Context(), f)
	})
}

// GetPlayer returns one player's season row.
// @Summary Get player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{id} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.serve(w, r, func() (any, error) {
		return h.svc.GetPlayer(r.Context(), id)
	})
}

// GetPlayerRounds returns a player's latest rounds.
// @Summary Player round history
// @Description Most recent rounds first.
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Param limit query int false "Maximum rows (1-1000)" default(5)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /players/{id}/rounds [get]
func (h *Handler) GetPlayerRounds(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	limit, ok := queryLimit(w, r, query.DefaultPlayerRoundsLimit)
	if !ok {
		return
	}
	h.serve(w, r, func() (any, error) {
		return h.svc.PlayerRounds(r.Context(), id, limit)
	})
}

// GetRoundRanking returns the best fantasy scores of a round.
// @Summary Round ranking
// @Tags rankings
// @Produce json
// @Param round query int true "Round number"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /rankings/round [get]
func (h *Handler) GetRoundRanking(w http.ResponseWriter, r *http.Request) {
	round, ok := queryRound(w, r, true)
	if !ok {
		return
	}
	limit, ok := queryLimit(w, r, query.DefaultRankingLimit)
	if !ok {
		return
	}
	position := queryString(r, "position")
	h.serve(w, r, func() (any, error) {
		return h.svc.RoundRanking(r.Context(), round, position, limit)
	})
}

// Compare returns two players' season rows side by side.
// @Summary Compare players
// @Tags players
// @Produce json
// @Param id1 query int true "First player ID"
// @Param id2 query int true "Second player ID"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /compare [get]
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	id1, ok := queryID(w, r, "id1")
	if !ok {
		return
	}
	id2, ok := queryID(w, r, "id2")
	if !ok {
		return
	}
	h.serve(w, r, func() (any, error) {
		return h.svc.Compare(r.Context(), id1, id2)
	})
}

// GetClubStats returns every player of a club.
// @Summary Club stats
// @Description Every player of the club ordered by average fantasy points. The whole squad is returned; there is no limit.
// @Tags clubs
// @Produce json
// @Param club path string true "Club name"
// @Success 200 {array} map[string]interface{}
// @Router /clubs/{club}/stats [get]
func (h *Handler) GetClubStats(w http.ResponseWriter, r *http.Request) {
	club := chi.URLParam(r, "club")
	if unescaped, err := url.PathUnescape(club); err == nil {
		club = unescaped
	}
	h.serve(w, r, func() (any, error) {
		return h.svc.ClubStats(r.Context(), club)
	})
}

// ListClubs returns the club names present in the season ranking.
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Success 200 {array} string
// @Router /clubs [get]
func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func() (any, error) {
		return h.svc.Clubs(r.Context())
	})
}

// GetLatestRound returns the most recent round in the history.
// @Summary Latest round
// @Tags rounds
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 404 {object} respond.ErrorResponse
// @Router /rounds/latest [get]
func (h *Handler) GetLatestRound(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func() (any, error) {
		latest, err := h.svc.LatestRound(r.Context())
		if err != nil {
			return nil, err
		}
		return map[string]int{"latest_round": latest}, nil
	})
}
