package market

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gsheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"teamboard/internal/sheetdata"
)

// SheetSource reads quotes from a published price sheet with a fixed
// ticker/price/change column layout. High and low are not published there and
// stay zero.
type SheetSource struct {
	service       *gsheets.Service
	spreadsheetID string
	readRange     string
	schema        sheetdata.BoardSchema
	logger        *slog.Logger
}

// NewSheetSource creates a quote source reading readRange of the given
// workbook through the Sheets API.
func NewSheetSource(ctx context.Context, credentialsFile, spreadsheetID, readRange string, logger *slog.Logger) (*SheetSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	service, err := gsheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		schema:        sheetdata.DefaultBoardSchema(),
		logger:        logger,
	}, nil
}

// Snapshots reads the price sheet once and returns quotes for the requested
// tickers. Rows for other instruments are ignored.
func (s *SheetSource) Snapshots(ctx context.Context, tickers []string) (map[string]Quote, error) {
	if len(tickers) == 0 {
		return map[string]Quote{}, nil
	}

	wanted := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		wanted[strings.ToUpper(strings.TrimSpace(t))] = true
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read price sheet: %w", err)
	}

	quotes := make(map[string]Quote, len(tickers))
	for i, row := range resp.Values {
		if i < s.schema.HeaderRows {
			continue
		}
		ticker := sheetdata.CleanTicker(cellString(row, s.schema.Ticker))
		if !wanted[ticker] {
			continue
		}
		quotes[ticker] = Quote{
			Price:  sheetdata.Normalize(cellString(row, s.schema.Price)),
			Change: sheetdata.Normalize(cellString(row, s.schema.Change)),
		}
	}

	s.logger.DebugContext(ctx, "read price sheet",
		slog.Int("rows", len(resp.Values)),
		slog.Int("matched", len(quotes)))
	return quotes, nil
}

func cellString(row []interface{}, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return fmt.Sprint(row[col])
}
