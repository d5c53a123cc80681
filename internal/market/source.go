// Package market builds the instrument-level market board by joining the
// customers' ticker universe against an external price source.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Quote is one instrument's price snapshot.
type Quote struct {
	Price  float64
	Change float64
	High   float64
	Low    float64
}

// Source supplies price snapshots for a set of tickers. Tickers absent from
// the returned map are treated as unquoted, not as errors.
type Source interface {
	Snapshots(ctx context.Context, tickers []string) (map[string]Quote, error)
}

// FeedSource reads quotes from an HTTP snapshot endpoint that accepts a
// comma-joined ticker list.
type FeedSource struct {
	feedURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFeedSource creates a quote source backed by feedURL.
func NewFeedSource(feedURL string, timeout time.Duration, logger *slog.Logger) *FeedSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedSource{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type feedQuote struct {
	Symbol    string  `json:"symbol"`
	LastPrice float64 `json:"lastPrice"`
	Change    float64 `json:"change"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
}

// Snapshots fetches quotes for tickers in one request.
func (s *FeedSource) Snapshots(ctx context.Context, tickers []string) (map[string]Quote, error) {
	if len(tickers) == 0 {
		return map[string]Quote{}, nil
	}

	reqURL := fmt.Sprintf("%s?symbols=%s", s.feedURL, url.QueryEscape(strings.Join(tickers, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch quotes: unexpected status %d", resp.StatusCode)
	}

	var rows []feedQuote
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}

	quotes := make(map[string]Quote, len(rows))
	for _, row := range rows {
		ticker := strings.ToUpper(strings.TrimSpace(row.Symbol))
		if ticker == "" {
			continue
		}
		quotes[ticker] = Quote{
			Price:  row.LastPrice,
			Change: row.Change,
			High:   row.High,
			Low:    row.Low,
		}
	}
	return quotes, nil
}
