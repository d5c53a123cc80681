package domain

// CustomerSummary is the per-customer card shown on the dashboard home view.
// All monetary fields are display strings read verbatim from fixed sheet
// cells; they are normalized only when aggregated.
type CustomerSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TotalCapital string `json:"total_capital"`
	MarketValue  string `json:"market_value"`
	CurrentPnl   string `json:"current_pnl"`
	PnlPercent   string `json:"pnl_percent"`
	IntradayPnl  string `json:"intraday_pnl"`
}

// PortfolioItem is one instrument holding in one customer's account.
// Ticker uniqueness is not enforced: two rows with the same ticker stay two
// line items.
type PortfolioItem struct {
	Ticker      string `json:"ticker"`
	Total       string `json:"total"`
	AvgPrice    string `json:"avg_price"`
	MarketPrice string `json:"market_price"`
	Pnl         string `json:"pnl"`
	Percent     string `json:"percent"`
}

// TradingActivity is same-day buy/sell volume for one instrument in one
// account. A side that saw no activity is the empty string.
type TradingActivity struct {
	Ticker string `json:"ticker"`
	Buy0   string `json:"buy0"`
	Sell0  string `json:"sell0"`
}

// StockWeight is an instrument's share of a portfolio's total market value.
// Recomputed on every extraction, never stored.
type StockWeight struct {
	Ticker  string  `json:"ticker"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// CustomerDetail is the full detail view for one customer account sheet.
// Rebuilt wholesale on every load.
type CustomerDetail struct {
	Name             string            `json:"name"`
	TotalCapital     string            `json:"total_capital"`
	MarketValue      string            `json:"market_value"`
	PortfolioPnl     string            `json:"portfolio_pnl"`
	PortfolioPercent string            `json:"portfolio_percent"`
	IntradayPnl      string            `json:"intraday_pnl"`
	Portfolio        []PortfolioItem   `json:"portfolio"`
	Trading          []TradingActivity `json:"trading"`
	Weights          []StockWeight     `json:"weights"`
}

// TeamSummary aggregates all customer summaries into team-wide totals.
type TeamSummary struct {
	TotalCapital string `json:"total_capital"`
	MarketValue  string `json:"market_value"`
	Pnl          string `json:"pnl"`
	PnlPercent   string `json:"pnl_percent"`
}

// CapitalShare is one slice of the team capital distribution chart.
type CapitalShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AggregatedTradingItem is one (customer, ticker) pair with same-day
// activity, flattened across all customer sheets. Entries are never merged
// across customers.
type AggregatedTradingItem struct {
	CustomerName string `json:"customer_name"`
	Ticker       string `json:"ticker"`
	BuyVol       string `json:"buy_vol"`
	SellVol      string `json:"sell_vol"`
}
