package domain

// MarketItem is one row of the instrument-level market board. Tickers absent
// from the external price source keep all-zero numeric fields rather than
// being omitted, so callers always get one row per requested ticker.
type MarketItem struct {
	Ticker       string  `json:"ticker"`
	CurrentPrice float64 `json:"current_price"`
	Change       float64 `json:"change"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
}
