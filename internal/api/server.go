package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/cartola-scouts/internal/api/handler"
	"github.com/albapepper/cartola-scouts/internal/cache"
	"github.com/albapepper/cartola-scouts/internal/config"
	"github.com/albapepper/cartola-scouts/internal/query"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(svc *query.Service, appCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(svc, appCache, cfg, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Players
		r.Get("/players", h.ListPlayers)
		r.Get("/players/{id}", h.GetPlayer)
		r.Get("/players/{id}/rounds", h.GetPlayerRounds)
		r.Get("/compare", h.Compare)

		// Rankings and rounds
		r.Get("/rankings/round", h.GetRoundRanking)
		r.Get("/rounds/latest", h.GetLatestRound)

		// Clubs
		r.Get("/clubs", h.ListClubs)
		r.Get("/clubs/{club}/stats", h.GetClubStats)

		// Scout leaderboards
		r.Route("/scouts", func(r chi.Router) {
			r.Get("/offense/top-assists", h.TopAssists)
			r.Get("/offense/top-goals", h.TopGoals)
			r.Get("/offense/top-dangerous-shots", h.TopDangerousShots)
			r.Get("/offense/top-fouls-suffered", h.TopFoulsSuffered)
			r.Get("/defense/top-tackles", h.TopTackles)
			r.Get("/defense/top-fouls-committed", h.TopFoulsCommitted)
			r.Get("/defense/top-clean-sheets", h.TopCleanSheets)
			r.Get("/goalkeepers/top-difficult-saves", h.TopDifficultSaves)
			r.Get("/goalkeepers/top-penalty-saves", h.TopPenaltySaves)
		})
	})

	return r
}
