package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/cartola-scouts/internal/api/respond"
	"github.com/albapepper/cartola-scouts/internal/query"
)

// pathID parses a positive integer path parameter. On failure it writes a
// 400 and returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidID, "ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// queryID parses a required positive integer query parameter.
func queryID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeMissingParam,
			fmt.Sprintf("%s query parameter is required", name))
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidID,
			fmt.Sprintf("%s must be a positive integer", name))
		return 0, false
	}
	return id, true
}

// queryRound parses the round parameter. Absent yields 0 unless required.
func queryRound(w http.ResponseWriter, r *http.Request, required bool) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("round"))
	if raw == "" {
		if required {
			respond.WriteError(w, http.StatusBadRequest, respond.CodeMissingParam, "round query parameter is required")
			return 0, false
		}
		return 0, true
	}
	round, err := strconv.Atoi(raw)
	if err != nil || round < 1 {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidRound, "round must be a positive integer")
		return 0, false
	}
	return round, true
}

// queryLimit parses limit within [1, query.MaxLimit], defaulting to def.
func queryLimit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > query.MaxLimit {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidLimit,
			fmt.Sprintf("limit must be an integer between 1 and %d", query.MaxLimit))
		return 0, false
	}
	return limit, true
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
