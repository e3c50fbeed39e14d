// Package handler provides HTTP handlers for all API endpoints.
// Handlers call the query service and cache the encoded JSON per URL.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/cartola-scouts/internal/api/respond"
	"github.com/albapepper/cartola-scouts/internal/cache"
	"github.com/albapepper/cartola-scouts/internal/config"
	"github.com/albapepper/cartola-scouts/internal/query"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	svc    *query.Service
	cache  *cache.Cache
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(svc *query.Service, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and season.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Cartola Scouts API",
		"version": "1.0.0",
		"status":  "running",
		"season":  h.cfg.Season,
		"docs":    "/docs/index.html",
		"store":   h.cfg.StoreDriver,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies store connectivity.
// @Summary Database health check
// @Description Verifies the backing store answers.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.logger.Error("Store health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"driver":    h.cfg.StoreDriver,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serve answers from the cache when possible, otherwise runs load, encodes
// its result and caches it under the request URL.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, load func() (any, error)) {
	key := r.URL.Path + "?" + r.URL.Query().Encode()
	ttl := h.cfg.CacheTTL

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := load()
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.writeQueryError(w, r, err)
		return
	}

	etag := h.cache.Set(key, data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

func (h *Handler) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, query.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, notFoundMessage(err))
		return
	}
	h.logger.Error("Query failed", "path", r.URL.Path, "error", err)
	respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternalError, "Internal server error")
}

func notFoundMessage(err error) string {
	msg := err.Error()
	if msg == query.ErrNotFound.Error() {
		return "Resource not found"
	}
	return msg
}
