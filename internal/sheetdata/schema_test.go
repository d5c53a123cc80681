package sheetdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		col  string
		want int
	}{
		{"A", 0},
		{"B", 1},
		{"M", 12},
		{"S", 18},
		{"Z", 25},
		{"AA", 26},
		{"AD", 29},
		{"AE", 30},
		{"AF", 31},
		{"s", 18}, // case-insensitive
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnIndex(tt.col), "column %s", tt.col)
	}
}

func TestDefaultAccountSchema(t *testing.T) {
	sc := DefaultAccountSchema()

	assert.Equal(t, CellRef{0, 0}, sc.Name)
	assert.Equal(t, CellRef{1, 1}, sc.TotalCapital)
	assert.Equal(t, CellRef{5, 1}, sc.IntradayPnl)
	assert.Equal(t, 1, sc.Block.StartRow)
	assert.Equal(t, 11, sc.Block.EndRow)
	assert.Equal(t, 18, sc.Block.Ticker)
	assert.Equal(t, 25, sc.Block.PnlPct)
}

func TestValidTicker(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"AAA", true},
		{"  VNM  ", true},
		{"HPG1", true},
		{"", false},
		{"AB", false},
		{"  A ", false},
		{"#REF!", false},
		{"#N/A", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTicker(tt.raw), "ticker %q", tt.raw)
	}
}

func TestCleanTicker(t *testing.T) {
	assert.Equal(t, "VNM", CleanTicker("  vnm "))
	assert.Equal(t, "AAA", CleanTicker("AAA"))
}
