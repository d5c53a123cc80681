package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teamboard/internal/config"
	"teamboard/internal/sheetdata"
	"teamboard/pkg/contracts/domain"
)

// DashboardView is the home-screen payload: team aggregates plus every
// customer's summary row.
type DashboardView struct {
	Team         domain.TeamSummary       `json:"team"`
	IntradayPnl  string                   `json:"intraday_pnl"`
	Distribution []domain.CapitalShare    `json:"distribution"`
	Customers    []domain.CustomerSummary `json:"customers"`
	LastUpdated  time.Time                `json:"last_updated"`
}

// PortfolioService builds customer and team views from account sheets.
type PortfolioService struct {
	fetcher    SheetFetcher
	store      *config.Store
	summarizer *sheetdata.Summarizer
	schema     sheetdata.AccountSchema
	logger     *slog.Logger
}

// NewPortfolioService creates a portfolio service.
func NewPortfolioService(fetcher SheetFetcher, store *config.Store, logger *slog.Logger) *PortfolioService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortfolioService{
		fetcher:    fetcher,
		store:      store,
		summarizer: sheetdata.NewSummarizer(logger),
		schema:     sheetdata.DefaultAccountSchema(),
		logger:     logger,
	}
}

// CustomerSummaries fetches every configured account sheet and extracts one
// summary per reachable sheet. Unreachable sheets are dropped, not fatal.
func (s *PortfolioService) CustomerSummaries(ctx context.Context) ([]domain.CustomerSummary, error) {
	sheetIDs := s.store.CustomerSheets()
	if len(sheetIDs) == 0 {
		return nil, ErrNoCustomers
	}

	tables, ok := fetchAll(ctx, s.fetcher, s.logger, s.store.SpreadsheetID(), sheetIDs)

	summaries := make([]domain.CustomerSummary, 0, len(sheetIDs))
	for i, sheetID := range sheetIDs {
		if !ok[i] {
			continue
		}
		summaries = append(summaries, sheetdata.ExtractCustomerSummary(sheetID, tables[i], s.schema))
	}
	return summaries, nil
}

// Dashboard builds the full home view: customer summaries plus team totals,
// intraday total, and capital distribution derived from them. When every
// account sheet is unreachable the team totals fall back to the legacy
// summary tab so the home view still shows something.
func (s *PortfolioService) Dashboard(ctx context.Context) (*DashboardView, error) {
	summaries, err := s.CustomerSummaries(ctx)
	if err != nil {
		return nil, err
	}

	team := s.summarizer.TeamSummary(summaries)
	if len(summaries) == 0 {
		if legacy, ok := s.legacyTeamSummary(ctx); ok {
			team = legacy
		}
	}

	return &DashboardView{
		Team:         team,
		IntradayPnl:  s.summarizer.IntradayTotal(summaries),
		Distribution: s.summarizer.Distribution(summaries),
		Customers:    summaries,
		LastUpdated:  time.Now(),
	}, nil
}

// legacyTeamSummary reads the retired summary tab's fixed cells. The tab is
// denylisted for customer operations; this read path is the only one allowed
// to touch it.
func (s *PortfolioService) legacyTeamSummary(ctx context.Context) (domain.TeamSummary, bool) {
	table, err := s.fetcher.FetchTab(ctx, s.store.SpreadsheetID(), config.SummarySheetGID)
	if err != nil {
		s.logger.WarnContext(ctx, "legacy summary tab unreachable",
			slog.String("error", err.Error()))
		return domain.TeamSummary{}, false
	}
	return sheetdata.ExtractLegacyTeamSummary(table, sheetdata.DefaultLegacySummarySchema()), true
}

// CustomerDetail fetches one account sheet and extracts its full detail.
// Unlike the aggregations this is a single-entity operation: a fetch failure
// propagates, naming the sheet.
func (s *PortfolioService) CustomerDetail(ctx context.Context, sheetID string) (*domain.CustomerDetail, error) {
	if !s.store.HasSheet(sheetID) {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, sheetID)
	}

	table, err := s.fetcher.FetchTab(ctx, s.store.SpreadsheetID(), sheetID)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrSheetFetch, sheetID, err)
	}

	detail := sheetdata.ExtractCustomerDetail(table, s.schema)
	return &detail, nil
}

// AggregatedTrading flattens same-day trading activity across every
// reachable customer sheet into (customer, ticker) records.
func (s *PortfolioService) AggregatedTrading(ctx context.Context) ([]domain.AggregatedTradingItem, error) {
	sheetIDs := s.store.CustomerSheets()
	if len(sheetIDs) == 0 {
		return nil, ErrNoCustomers
	}

	tables, ok := fetchAll(ctx, s.fetcher, s.logger, s.store.SpreadsheetID(), sheetIDs)

	items := make([]domain.AggregatedTradingItem, 0)
	for i := range sheetIDs {
		if !ok[i] {
			continue
		}
		name := tables[i].CellOr(s.schema.Name.Row, s.schema.Name.Col, "N/A")
		for _, activity := range sheetdata.ExtractTradingActivities(tables[i], s.schema) {
			items = append(items, domain.AggregatedTradingItem{
				CustomerName: name,
				Ticker:       activity.Ticker,
				BuyVol:       activity.Buy0,
				SellVol:      activity.Sell0,
			})
		}
	}
	return items, nil
}

// TickerUniverse collects the distinct valid tickers held by any reachable
// customer, in first-seen order. This bounds the market-board query.
func (s *PortfolioService) TickerUniverse(ctx context.Context) ([]string, error) {
	sheetIDs := s.store.CustomerSheets()
	if len(sheetIDs) == 0 {
		return nil, ErrNoCustomers
	}

	tables, ok := fetchAll(ctx, s.fetcher, s.logger, s.store.SpreadsheetID(), sheetIDs)

	seen := make(map[string]bool)
	universe := make([]string, 0)
	for i := range sheetIDs {
		if !ok[i] {
			continue
		}
		for _, ticker := range sheetdata.ExtractTickers(tables[i], s.schema) {
			if seen[ticker] {
				continue
			}
			seen[ticker] = true
			universe = append(universe, ticker)
		}
	}
	return universe, nil
}
