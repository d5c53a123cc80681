package sheetdata

import "strings"

// MinTickerLen is the shortest cell content accepted as an instrument
// ticker; shorter cells in the ticker column are layout noise.
const MinTickerLen = 3

// CellRef is a zero-based (row, column) coordinate in a RawTable.
type CellRef struct {
	Row int
	Col int
}

// InstrumentBlock bounds the per-instrument region of an account sheet:
// a fixed column group scanned over a fixed row window. Rows outside the
// window are ignored even when populated.
type InstrumentBlock struct {
	StartRow int // first data row, inclusive
	EndRow   int // last data row, inclusive
	Ticker   int
	Quantity int
	BuyT0    int
	SellT0   int
	AvgPrice int
	MktPrice int
	PnlValue int
	PnlPct   int
}

// AccountSchema is the fixed cell layout of one customer account sheet.
// Positions are data, not code: extraction logic never hardcodes a
// coordinate.
type AccountSchema struct {
	Name         CellRef
	TotalCapital CellRef
	MarketValue  CellRef
	CurrentPnl   CellRef
	GrowthPct    CellRef
	IntradayPnl  CellRef
	Block        InstrumentBlock
}

// DefaultAccountSchema returns the layout contract of the account sheets:
// name in A1, the five summary figures in B2..B6, and the instrument block
// in columns S..Z over rows 2..12.
func DefaultAccountSchema() AccountSchema {
	return AccountSchema{
		Name:         CellRef{0, 0},
		TotalCapital: CellRef{1, 1},
		MarketValue:  CellRef{2, 1},
		CurrentPnl:   CellRef{3, 1},
		GrowthPct:    CellRef{4, 1},
		IntradayPnl:  CellRef{5, 1},
		Block: InstrumentBlock{
			StartRow: 1,
			EndRow:   11,
			Ticker:   ColumnIndex("S"),
			Quantity: ColumnIndex("T"),
			BuyT0:    ColumnIndex("U"),
			SellT0:   ColumnIndex("V"),
			AvgPrice: ColumnIndex("W"),
			MktPrice: ColumnIndex("X"),
			PnlValue: ColumnIndex("Y"),
			PnlPct:   ColumnIndex("Z"),
		},
	}
}

// BoardSchema is the fixed column layout of a published market-board sheet:
// ticker, current price and change per data row, after a header row.
type BoardSchema struct {
	HeaderRows int
	Ticker     int
	Price      int
	Change     int
}

// DefaultBoardSchema returns the published price sheet layout.
func DefaultBoardSchema() BoardSchema {
	return BoardSchema{HeaderRows: 1, Ticker: 0, Price: 1, Change: 2}
}

// LegacySummarySchema is the cell layout of the retired team-summary tab.
// Kept for the fallback read path; the tab itself stays denylisted for all
// customer operations.
type LegacySummarySchema struct {
	TotalCapital CellRef
	MarketValue  CellRef
	Pnl          CellRef
	PnlPercent   CellRef
}

// DefaultLegacySummarySchema returns the retired summary tab layout
// (AE2, AF2, AD2, M4).
func DefaultLegacySummarySchema() LegacySummarySchema {
	return LegacySummarySchema{
		TotalCapital: CellRef{1, ColumnIndex("AE")},
		MarketValue:  CellRef{1, ColumnIndex("AF")},
		Pnl:          CellRef{1, ColumnIndex("AD")},
		PnlPercent:   CellRef{3, ColumnIndex("M")},
	}
}

// ColumnIndex converts a spreadsheet column letter ("A", "S", "AE") to a
// zero-based column index.
func ColumnIndex(col string) int {
	idx := 0
	for _, r := range strings.ToUpper(col) {
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}

// ValidTicker reports whether a raw ticker cell addresses a real instrument:
// trimmed, at least MinTickerLen characters and not an error marker.
func ValidTicker(raw string) bool {
	t := strings.TrimSpace(raw)
	return len(t) >= MinTickerLen && !strings.HasPrefix(t, "#")
}

// CleanTicker returns the canonical form of a ticker cell: trimmed and
// upper-cased.
func CleanTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
