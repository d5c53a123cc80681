package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"teamboard/internal/infrastructure"
	"teamboard/internal/sheetdata"
)

// maxConcurrentFetches bounds the fan-out of one aggregation call.
const maxConcurrentFetches = 8

// SheetFetcher fetches one spreadsheet tab as a parsed table.
type SheetFetcher interface {
	FetchTab(ctx context.Context, spreadsheetID, sheetID string) (sheetdata.RawTable, error)
}

// fetchAll fetches every sheet concurrently and calls fn with each result.
// A failed fetch is logged, counted, and excluded; it never fails the batch.
// Results are delivered in sheet order, with ok[i] reporting whether sheet i
// was fetched.
func fetchAll(ctx context.Context, fetcher SheetFetcher, logger *slog.Logger, spreadsheetID string, sheetIDs []string) ([]sheetdata.RawTable, []bool) {
	tables := make([]sheetdata.RawTable, len(sheetIDs))
	ok := make([]bool, len(sheetIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, sheetID := range sheetIDs {
		i, sheetID := i, sheetID
		g.Go(func() error {
			table, err := fetcher.FetchTab(gctx, spreadsheetID, sheetID)
			if err != nil {
				logger.WarnContext(gctx, "skipping unreachable sheet",
					slog.String("sheet", sheetID),
					slog.String("error", err.Error()))
				infrastructure.SheetFetchFailures.WithLabelValues(sheetID).Inc()
				return nil
			}
			tables[i] = table
			ok[i] = true
			return nil
		})
	}
	g.Wait()

	return tables, ok
}
