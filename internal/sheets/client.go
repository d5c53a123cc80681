// Package sheets fetches spreadsheet tabs as CSV through the gviz export
// endpoint.
package sheets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"teamboard/internal/sheetdata"
)

// Client fetches one spreadsheet tab as a parsed table. Requests are rate
// limited so a burst of concurrent fetches cannot hammer the export endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit sets the request rate limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// NewClient creates a sheet fetch client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTab downloads one tab of the workbook and parses it. The sheet
// identifier is either a numeric tab id or a tab name; the export URL encodes
// them differently.
func (c *Client) FetchTab(ctx context.Context, spreadsheetID, sheetID string) (sheetdata.RawTable, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait for sheet %s: %w", sheetID, err)
	}

	reqURL := c.tabURL(spreadsheetID, sheetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for sheet %s: %w", sheetID, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", sheetID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch sheet %s: unexpected status %d", sheetID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetID, err)
	}

	table := sheetdata.ParseCSV(string(body))
	c.logger.DebugContext(ctx, "fetched sheet",
		slog.String("sheet", sheetID),
		slog.Int("rows", len(table)),
		slog.Duration("duration", time.Since(start)))
	return table, nil
}

// tabURL builds the gviz CSV export URL. Numeric identifiers address a tab by
// gid, anything else addresses it by name.
func (c *Client) tabURL(spreadsheetID, sheetID string) string {
	base := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&headers=0", c.baseURL, spreadsheetID)
	if isNumeric(sheetID) {
		return base + "&gid=" + sheetID
	}
	return base + "&sheet=" + url.QueryEscape(sheetID)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
