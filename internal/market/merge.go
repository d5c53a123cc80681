package market

import (
	"context"
	"log/slog"

	"teamboard/internal/infrastructure"
	"teamboard/pkg/contracts/domain"
)

// Merge joins the requested tickers against a quote map. Every requested
// ticker produces exactly one row, in request order; tickers without a quote
// get all-zero numeric fields.
func Merge(tickers []string, quotes map[string]Quote) []domain.MarketItem {
	items := make([]domain.MarketItem, 0, len(tickers))
	for _, ticker := range tickers {
		q := quotes[ticker]
		items = append(items, domain.MarketItem{
			Ticker:       ticker,
			CurrentPrice: q.Price,
			Change:       q.Change,
			High:         q.High,
			Low:          q.Low,
		})
	}
	return items
}

// BuildBoard fetches quotes for tickers and merges them into board rows. A
// source failure degrades the board to all-zero rows instead of blocking the
// view.
func BuildBoard(ctx context.Context, source Source, tickers []string, logger *slog.Logger) []domain.MarketItem {
	if logger == nil {
		logger = slog.Default()
	}

	quotes, err := source.Snapshots(ctx, tickers)
	if err != nil {
		logger.ErrorContext(ctx, "quote source failed, degrading board to zero rows",
			slog.Int("tickers", len(tickers)),
			slog.String("error", err.Error()))
		infrastructure.QuoteSourceFailures.Inc()
		quotes = nil
	}
	return Merge(tickers, quotes)
}
