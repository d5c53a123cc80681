package sheetdata

import (
	"strings"

	"teamboard/pkg/contracts/domain"
)

// ExtractCustomerSummary reads the fixed summary cells of one account sheet.
// Missing cells fall back to "0" (name to "N/A"); the percent cell gains a
// "%" suffix when the sheet omits it.
func ExtractCustomerSummary(id string, t RawTable, sc AccountSchema) domain.CustomerSummary {
	return domain.CustomerSummary{
		ID:           id,
		Name:         t.CellOr(sc.Name.Row, sc.Name.Col, "N/A"),
		TotalCapital: t.CellOr(sc.TotalCapital.Row, sc.TotalCapital.Col, "0"),
		MarketValue:  t.CellOr(sc.MarketValue.Row, sc.MarketValue.Col, "0"),
		CurrentPnl:   t.CellOr(sc.CurrentPnl.Row, sc.CurrentPnl.Col, "0"),
		PnlPercent:   ensurePercent(t.CellOr(sc.GrowthPct.Row, sc.GrowthPct.Col, "0")),
		IntradayPnl:  t.CellOr(sc.IntradayPnl.Row, sc.IntradayPnl.Col, "0"),
	}
}

// ExtractCustomerDetail builds the full detail view from one account sheet:
// summary cells, portfolio holdings, same-day trading and weight
// distribution. Raw display strings are preserved for presentation;
// normalized values drive the inclusion rules and the weight math.
func ExtractCustomerDetail(t RawTable, sc AccountSchema) domain.CustomerDetail {
	detail := domain.CustomerDetail{
		Name:             t.Cell(sc.Name.Row, sc.Name.Col),
		TotalCapital:     t.CellOr(sc.TotalCapital.Row, sc.TotalCapital.Col, "0"),
		MarketValue:      t.CellOr(sc.MarketValue.Row, sc.MarketValue.Col, "0"),
		PortfolioPercent: ensurePercent(t.CellOr(sc.GrowthPct.Row, sc.GrowthPct.Col, "0")),
		IntradayPnl:      t.CellOr(sc.IntradayPnl.Row, sc.IntradayPnl.Col, "0"),
	}

	var (
		totalValue float64
		totalPnl   float64
		rawWeights []domain.StockWeight
	)

	b := sc.Block
	for i := b.StartRow; i <= b.EndRow && i < len(t); i++ {
		ticker := strings.TrimSpace(t.Cell(i, b.Ticker))
		if !ValidTicker(ticker) {
			continue
		}

		qtyRaw := t.CellOr(i, b.Quantity, "0")
		buyRaw := t.CellOr(i, b.BuyT0, "0")
		sellRaw := t.CellOr(i, b.SellT0, "0")
		mktRaw := t.CellOr(i, b.MktPrice, "0")
		pnlRaw := t.CellOr(i, b.PnlValue, "0")

		qty := Normalize(qtyRaw)
		buy := Normalize(buyRaw)
		sell := Normalize(sellRaw)
		mkt := Normalize(mktRaw)

		if buy > 0 || sell > 0 {
			act := domain.TradingActivity{Ticker: ticker}
			if buy > 0 {
				act.Buy0 = buyRaw
			}
			if sell > 0 {
				act.Sell0 = sellRaw
			}
			detail.Trading = append(detail.Trading, act)
		}

		if qty <= 0 {
			continue
		}
		detail.Portfolio = append(detail.Portfolio, domain.PortfolioItem{
			Ticker:      ticker,
			Total:       qtyRaw,
			AvgPrice:    t.CellOr(i, b.AvgPrice, "0"),
			MarketPrice: mktRaw,
			Pnl:         pnlRaw,
			Percent:     ensurePercent(t.CellOr(i, b.PnlPct, "0%")),
		})

		if value := qty * mkt; value > 0 {
			totalValue += value
			rawWeights = append(rawWeights, domain.StockWeight{Ticker: ticker, Value: value})
		}
		totalPnl += Normalize(pnlRaw)
	}

	for _, w := range rawWeights {
		if totalValue > 0 {
			w.Percent = w.Value / totalValue * 100
		}
		detail.Weights = append(detail.Weights, w)
	}
	detail.PortfolioPnl = FormatNumber(totalPnl)

	return detail
}

// ExtractTradingActivities returns only the same-day trading rows of one
// account sheet, for the cross-customer aggregation.
func ExtractTradingActivities(t RawTable, sc AccountSchema) []domain.TradingActivity {
	var acts []domain.TradingActivity
	b := sc.Block
	for i := b.StartRow; i <= b.EndRow && i < len(t); i++ {
		ticker := strings.TrimSpace(t.Cell(i, b.Ticker))
		if !ValidTicker(ticker) {
			continue
		}
		buyRaw := t.CellOr(i, b.BuyT0, "0")
		sellRaw := t.CellOr(i, b.SellT0, "0")
		buy := Normalize(buyRaw)
		sell := Normalize(sellRaw)
		if buy <= 0 && sell <= 0 {
			continue
		}
		act := domain.TradingActivity{Ticker: ticker}
		if buy > 0 {
			act.Buy0 = buyRaw
		}
		if sell > 0 {
			act.Sell0 = sellRaw
		}
		acts = append(acts, act)
	}
	return acts
}

// ExtractTickers returns the cleaned tickers of one account sheet's
// instrument window, in row order, duplicates included.
func ExtractTickers(t RawTable, sc AccountSchema) []string {
	var tickers []string
	b := sc.Block
	for i := b.StartRow; i <= b.EndRow && i < len(t); i++ {
		raw := t.Cell(i, b.Ticker)
		if !ValidTicker(raw) {
			continue
		}
		tickers = append(tickers, CleanTicker(raw))
	}
	return tickers
}

// ExtractLegacyTeamSummary reads the retired summary tab's fixed cells.
func ExtractLegacyTeamSummary(t RawTable, sc LegacySummarySchema) domain.TeamSummary {
	return domain.TeamSummary{
		TotalCapital: t.CellOr(sc.TotalCapital.Row, sc.TotalCapital.Col, "0"),
		MarketValue:  t.CellOr(sc.MarketValue.Row, sc.MarketValue.Col, "0"),
		Pnl:          t.CellOr(sc.Pnl.Row, sc.Pnl.Col, "0"),
		PnlPercent:   t.CellOr(sc.PnlPercent.Row, sc.PnlPercent.Col, "0"),
	}
}

// ensurePercent appends a "%" suffix when the cell lacks one.
func ensurePercent(s string) string {
	if strings.Contains(s, "%") {
		return s
	}
	return s + "%"
}
