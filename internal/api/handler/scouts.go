package handler

import (
	"net/http"

	"github.com/albapepper/cartola-scouts/internal/query"
)

// topScout serves one scout leaderboard. round, club, position and limit
// come from the query string.
func (h *Handler) topScout(w http.ResponseWriter, r *http.Request, cat query.Category) {
	round, ok := queryRound(w, r, false)
	if !ok {
		return
	}
	limit, ok := queryLimit(w, r, query.DefaultScoutLimit)
	if !ok {
		return
	}
	f := query.ScoutFilter{
		Round:    round,
		Club:     queryString(r, "club"),
		Position: queryString(r, "position"),
		Limit:    limit,
	}
	h.serve(w, r, func() (any, error) {
		return h.svc.TopScout(r.Context(), cat, f)
	})
}

// TopAssists ranks players by assists.
// @Summary Top assists
// @Description Season uses the best single-round assist count; with round, that round's assists.
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/offense/top-assists [get]
func (h *Handler) TopAssists(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.Assists)
}

// TopTackles ranks players by tackles.
// @Summary Top tackles
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/defense/top-tackles [get]
func (h *Handler) TopTackles(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.Tackles)
}

// TopGoals ranks players by goals.
// @Summary Top goals
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/offense/top-goals [get]
func (h *Handler) TopGoals(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.Goals)
}

// TopDangerousShots ranks players by dangerous shots.
// @Summary Top dangerous shots
// @Description Shots saved plus shots on the post. Season totals come from the finishers table.
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/offense/top-dangerous-shots [get]
func (h *Handler) TopDangerousShots(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.DangerousShots)
}

// TopFoulsSuffered ranks players by fouls suffered.
// @Summary Top fouls suffered
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/offense/top-fouls-suffered [get]
func (h *Handler) TopFoulsSuffered(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.FoulsSuffered)
}

// TopFoulsCommitted ranks players by fouls committed.
// @Summary Top fouls committed
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/defense/top-fouls-committed [get]
func (h *Handler) TopFoulsCommitted(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.FoulsCommitted)
}

// TopDifficultSaves ranks players by difficult saves.
// @Summary Top difficult saves
// @Description Position defaults to Goalkeeper.
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label" default(Goalkeeper)
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/goalkeepers/top-difficult-saves [get]
func (h *Handler) TopDifficultSaves(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.DifficultSaves)
}

// TopPenaltySaves ranks players by penalty saves.
// @Summary Top penalty saves
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/goalkeepers/top-penalty-saves [get]
func (h *Handler) TopPenaltySaves(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.PenaltySaves)
}

// TopCleanSheets ranks players by clean sheets.
// @Summary Top clean sheets
// @Tags scouts
// @Produce json
// @Param round query int false "Round number; omit for the whole season"
// @Param club query string false "Club name"
// @Param position query string false "Position label"
// @Param limit query int false "Maximum rows (1-1000)" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /scouts/defense/top-clean-sheets [get]
func (h *Handler) TopCleanSheets(w http.ResponseWriter, r *http.Request) {
	h.topScout(w, r, query.CleanSheets)
}
