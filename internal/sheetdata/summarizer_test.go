package sheetdata

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamboard/pkg/contracts/domain"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1000, "1.000"},
		{1234567, "1.234.567"},
		{1234.5, "1.234,50"},
		{-50000, "-50.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestSummarizerTeamSummary(t *testing.T) {
	s := NewSummarizer(slog.Default())

	summaries := []domain.CustomerSummary{
		{Name: "A", TotalCapital: "1,000,000", MarketValue: "1,100,000", CurrentPnl: "100,000"},
		{Name: "B", TotalCapital: "500,000", MarketValue: "400,000", CurrentPnl: "-100,000"},
	}

	got := s.TeamSummary(summaries)

	assert.Equal(t, "1.500.000", got.TotalCapital)
	assert.Equal(t, "1.500.000", got.MarketValue)
	assert.Equal(t, "0", got.Pnl)
	assert.Equal(t, "+0.00%", got.PnlPercent)
}

func TestSummarizerTeamSummaryPercent(t *testing.T) {
	s := NewSummarizer(nil)

	got := s.TeamSummary([]domain.CustomerSummary{
		{TotalCapital: "1,000", MarketValue: "1,100"},
	})
	assert.Equal(t, "+10.00%", got.PnlPercent, "non-negative percent carries an explicit sign")

	got = s.TeamSummary([]domain.CustomerSummary{
		{TotalCapital: "1,000", MarketValue: "900"},
	})
	assert.Equal(t, "-10.00%", got.PnlPercent)
}

func TestSummarizerTeamSummaryZeroCapitalGuard(t *testing.T) {
	s := NewSummarizer(nil)

	// Every capital cell normalizes to zero; the percent must be exactly
	// zero, never NaN or Inf.
	got := s.TeamSummary([]domain.CustomerSummary{
		{TotalCapital: "-", MarketValue: "500"},
		{TotalCapital: "#N/A", MarketValue: "500"},
	})

	assert.Equal(t, "+0.00%", got.PnlPercent)
}

func TestSummarizerTeamSummaryEmpty(t *testing.T) {
	s := NewSummarizer(nil)

	got := s.TeamSummary(nil)

	assert.Equal(t, "0", got.TotalCapital)
	assert.Equal(t, "+0.00%", got.PnlPercent)
}

func TestSummarizerIntradayTotal(t *testing.T) {
	s := NewSummarizer(nil)

	got := s.IntradayTotal([]domain.CustomerSummary{
		{IntradayPnl: "5,000"},
		{IntradayPnl: "-2,000"},
		{IntradayPnl: "-"},
	})

	assert.Equal(t, "3.000", got)
}

func TestSummarizerDistribution(t *testing.T) {
	s := NewSummarizer(nil)

	got := s.Distribution([]domain.CustomerSummary{
		{Name: "small", TotalCapital: "100"},
		{Name: "zero", TotalCapital: "0"},
		{Name: "big", TotalCapital: "1,000"},
		{Name: "negative", TotalCapital: "-50"},
		{Name: "tied-first", TotalCapital: "500"},
		{Name: "tied-second", TotalCapital: "500"},
	})

	require.Len(t, got, 4, "non-positive values are dropped")
	assert.Equal(t, "big", got[0].Name)
	assert.Equal(t, "tied-first", got[1].Name, "ties keep original order")
	assert.Equal(t, "tied-second", got[2].Name)
	assert.Equal(t, "small", got[3].Name)
}
