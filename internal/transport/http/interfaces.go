package http

import (
	"context"

	"teamboard/internal/config"
	"teamboard/internal/services"
	"teamboard/pkg/contracts/domain"
)

// PortfolioReader is the portfolio service surface the handlers need.
type PortfolioReader interface {
	Dashboard(ctx context.Context) (*services.DashboardView, error)
	CustomerSummaries(ctx context.Context) ([]domain.CustomerSummary, error)
	CustomerDetail(ctx context.Context, sheetID string) (*domain.CustomerDetail, error)
	AggregatedTrading(ctx context.Context) ([]domain.AggregatedTradingItem, error)
}

// BoardReader serves market-board snapshots.
type BoardReader interface {
	Snapshot(ctx context.Context) (*services.BoardSnapshot, error)
	Refresh(ctx context.Context) (*services.BoardSnapshot, error)
}

// Authenticator issues and checks session tokens.
type Authenticator interface {
	Login(password string) (string, error)
	Valid(token string) bool
}

// ConfigAdmin reads and updates the dashboard configuration.
type ConfigAdmin interface {
	Current() config.Dashboard
	Update(d config.Dashboard) error
}
