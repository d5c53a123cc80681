package sheetdata

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"teamboard/pkg/contracts/domain"
)

// displayPrinter groups digits the way the dashboard has always shown them
// (Vietnamese convention: dot-grouped thousands, comma decimals).
var displayPrinter = message.NewPrinter(language.Vietnamese)

// FormatNumber renders a derived value as a display string with locale
// grouping. Whole values drop the fraction entirely.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return displayPrinter.Sprintf("%d", int64(v))
	}
	return displayPrinter.Sprintf("%.2f", v)
}

// Summarizer derives team-wide figures from per-customer summaries. The
// sums run over normalized values, never over the display strings.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a team summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// TeamSummary sums capital, market value and current P&L across all
// summaries and derives the growth percent. The percent carries an explicit
// leading sign for non-negative values and is exactly zero when the summed
// capital normalizes to zero.
func (s *Summarizer) TeamSummary(summaries []domain.CustomerSummary) domain.TeamSummary {
	var capital, market, pnl float64
	for _, c := range summaries {
		capital += Normalize(c.TotalCapital)
		market += Normalize(c.MarketValue)
		pnl += Normalize(c.CurrentPnl)
	}

	pct := 0.0
	if capital != 0 {
		pct = (market - capital) / capital * 100
	}

	s.logger.Debug("team summary computed",
		slog.Int("customers", len(summaries)),
		slog.Float64("total_capital", capital),
		slog.Float64("market_value", market))

	return domain.TeamSummary{
		TotalCapital: FormatNumber(capital),
		MarketValue:  FormatNumber(market),
		Pnl:          FormatNumber(pnl),
		PnlPercent:   fmt.Sprintf("%+.2f%%", pct),
	}
}

// IntradayTotal sums normalized same-day P&L across all summaries. It is
// deliberately independent of TeamSummary; the two are combined only at
// presentation time.
func (s *Summarizer) IntradayTotal(summaries []domain.CustomerSummary) string {
	var total float64
	for _, c := range summaries {
		total += Normalize(c.IntradayPnl)
	}
	return FormatNumber(total)
}

// Distribution maps each customer's normalized total capital into a
// (name, value) pair for the capital chart. Non-positive values are
// dropped; the result is sorted descending with ties kept in original
// order.
func (s *Summarizer) Distribution(summaries []domain.CustomerSummary) []domain.CapitalShare {
	shares := make([]domain.CapitalShare, 0, len(summaries))
	for _, c := range summaries {
		v := Normalize(c.TotalCapital)
		if v <= 0 {
			continue
		}
		shares = append(shares, domain.CapitalShare{Name: c.Name, Value: v})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Value > shares[j].Value
	})
	return shares
}
