package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/cartola-scouts/internal/api"
	"github.com/albapepper/cartola-scouts/internal/api/respond"
	"github.com/albapepper/cartola-scouts/internal/cache"
	"github.com/albapepper/cartola-scouts/internal/config"
	"github.com/albapepper/cartola-scouts/internal/pipeline"
	"github.com/albapepper/cartola-scouts/internal/pipeline/pipelinetest"
	"github.com/albapepper/cartola-scouts/internal/query"
	"github.com/albapepper/cartola-scouts/internal/store/sqlite"
)

func testConfig() *config.Config {
	return &config.Config{
		StoreDriver:       config.DriverSQLite,
		Season:            2025,
		CORSAllowOrigins:  []string{"*"},
		RateLimitEnabled:  false,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		CacheEnabled:      true,
		CacheTTL:          time.Minute,
	}
}

func newServer(t *testing.T, cfg *config.Config, seed bool) *httptest.Server {
	t.Helper()
	st, err := sqlite.Open(filepath.Join(t.TempDir(), "cartola.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	if seed {
		ds, err := pipeline.Build(pipelinetest.Season(), pipeline.DefaultLeaderboards())
		require.NoError(t, err)
		require.NoError(t, st.ReplaceTables(context.Background(), ds.Tables))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := api.NewRouter(query.New(st), cache.New(cfg.CacheEnabled, cfg.CacheTTL), cfg, logger)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func errorCode(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	var body respond.ErrorResponse
	resp := get(t, srv, path, &body)
	return resp.StatusCode, body.Error.Code
}

func TestListPlayers(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	var rows []map[string]any
	resp := get(t, srv, "/api/v1/players?club=Flamengo", &rows)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.Len(t, rows, 2)
	assert.Equal(t, "Striker", rows[0]["name"])
	assert.Equal(t, 13.8, rows[0]["avg_fantasy"])
}

func TestGetPlayer(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	var row map[string]any
	resp := get(t, srv, "/api/v1/players/10", &row)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Keeper", row["name"])
	assert.Equal(t, "Goalkeeper", row["position"])

	status, code := errorCode(t, srv, "/api/v1/players/99999")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, respond.CodeNotFound, code)
}

func TestPlayerRoundsAndRanking(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	var rows []map[string]any
	get(t, srv, "/api/v1/players/20/rounds?limit=2", &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, 3.0, rows[0]["round"])

	rows = nil
	get(t, srv, "/api/v1/rankings/round?round=1&position=Fullback", &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, 30.0, rows[0]["id"])
}

func TestCompareClubsAndLatestRound(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	var rows []map[string]any
	get(t, srv, "/api/v1/compare?id1=10&id2=20", &rows)
	assert.Len(t, rows, 2)

	rows = nil
	get(t, srv, "/api/v1/clubs/Palmeiras/stats", &rows)
	assert.Len(t, rows, 2)

	var clubs []string
	get(t, srv, "/api/v1/clubs", &clubs)
	assert.Equal(t, []string{"Flamengo", "Palmeiras"}, clubs)

	var latest map[string]int
	get(t, srv, "/api/v1/rounds/latest", &latest)
	assert.Equal(t, map[string]int{"latest_round": 3}, latest)
}

func TestClubStatsReturnsWholeSquad(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	var rows []map[string]any
	resp := get(t, srv, "/api/v1/clubs/Flamengo/stats?limit=1", &rows)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, rows, 2, "limit is not a club stats parameter")
	assert.Equal(t, "Striker", rows[0]["name"])
	assert.Equal(t, "Keeper", rows[1]["name"])
}

func TestLatestRound_EmptyStore(t *testing.T) {
	srv := newServer(t, testConfig(), false)

	status, code := errorCode(t, srv, "/api/v1/rounds/latest")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, respond.CodeNotFound, code)
}

func TestScoutRoutes(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	cases := []struct {
		path    string
		wantIDs []float64
	}{
		{"/api/v1/scouts/offense/top-goals", []float64{20}},
		{"/api/v1/scouts/offense/top-goals?round=5", []float64{}},
		{"/api/v1/scouts/offense/top-assists?club=Palmeiras", []float64{30, 40}},
		{"/api/v1/scouts/offense/top-dangerous-shots", []float64{20}},
		{"/api/v1/scouts/offense/top-fouls-suffered", []float64{}},
		{"/api/v1/scouts/defense/top-tackles?round=1", []float64{30}},
		{"/api/v1/scouts/defense/top-fouls-committed", []float64{30}},
		{"/api/v1/scouts/defense/top-clean-sheets", []float64{10}},
		{"/api/v1/scouts/goalkeepers/top-difficult-saves", []float64{10}},
		{"/api/v1/scouts/goalkeepers/top-penalty-saves?round=2", []float64{10}},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			var rows []map[string]any
			resp := get(t, srv, tc.path, &rows)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			got := make([]float64, len(rows))
			for i, r := range rows {
				got[i] = r["id"].(float64)
				assert.Contains(t, r, query.TotalColumn)
			}
			assert.Equal(t, tc.wantIDs, got)
		})
	}
}

func TestBadParameters(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	cases := []struct {
		path string
		code string
	}{
		{"/api/v1/players/abc", respond.CodeInvalidID},
		{"/api/v1/players/20/rounds?limit=x", respond.CodeInvalidLimit},
		{"/api/v1/players?limit=0", respond.CodeInvalidLimit},
		{"/api/v1/players?limit=1001", respond.CodeInvalidLimit},
		{"/api/v1/rankings/round", respond.CodeMissingParam},
		{"/api/v1/rankings/round?round=first", respond.CodeInvalidRound},
		{"/api/v1/compare?id1=10", respond.CodeMissingParam},
		{"/api/v1/compare?id1=10&id2=x", respond.CodeInvalidID},
		{"/api/v1/scouts/offense/top-goals?round=-1", respond.CodeInvalidRound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			status, code := errorCode(t, srv, tc.path)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestCacheAndETag(t *testing.T) {
	srv := newServer(t, testConfig(), true)

	first := get(t, srv, "/api/v1/clubs", nil)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))
	etag := first.Header.Get("ETag")
	require.NotEmpty(t, etag)

	second := get(t, srv, "/api/v1/clubs", nil)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.Equal(t, etag, second.Header.Get("ETag"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/clubs", nil)
	require.NoError(t, err)
	req.Header.Set("If-None-Match", etag)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	var health map[string]any
	get(t, srv, "/health/cache", &health)
	stats := health["cache"].(map[string]any)
	assert.Equal(t, 1.0, stats["active_keys"])
}

func TestHealthAndRoot(t *testing.T) {
	srv := newServer(t, testConfig(), false)

	var body map[string]any
	resp := get(t, srv, "/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Process-Time"))

	body = nil
	resp = get(t, srv, "/health/db", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "connected", body["database"])

	body = nil
	get(t, srv, "/", &body)
	assert.Equal(t, "Cartola Scouts API", body["name"])
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Hour
	srv := newServer(t, cfg, false)

	assert.Equal(t, http.StatusOK, get(t, srv, "/health", nil).StatusCode)
	status, code := errorCode(t, srv, "/health")
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, respond.CodeRateLimited, code)
}
