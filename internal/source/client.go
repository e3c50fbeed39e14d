package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public caRtola raw-data directory for the 2025 season.
const DefaultBaseURL = "https://raw.githubusercontent.com/henriquepgomide/caRtola/master/data/01_raw/2025"

// maxBodyBytes caps a single round download.
const maxBodyBytes = 32 << 20

// Client downloads round datasets over HTTP. One attempt per round; the
// limiter only paces consecutive requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a round client. requestsPerMinute <= 0 disables pacing.
func NewClient(baseURL string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Limit(float64(requestsPerMinute) / 60.0)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// RoundURL returns the dataset location for a round.
func (c *Client) RoundURL(round int) string {
	return fmt.Sprintf("%s/rodada-%d.csv", c.baseURL, round)
}

// FetchRound downloads and decodes one round.
func (c *Client) FetchRound(ctx context.Context, round int) (*RawRound, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.RoundURL(round)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request round %d: %w", round, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("round %d returned %d: %s", round, resp.StatusCode, truncate(body, 200))
	}

	rr, err := DecodeCSV(round, io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Round downloaded", "round", round, "rows", len(rr.Rows), "url", u)
	return rr, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
