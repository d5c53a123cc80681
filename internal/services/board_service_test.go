package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamboard/internal/market"
	"teamboard/internal/sheetdata"
)

type stubSource struct {
	quotes map[string]market.Quote
}

func (s stubSource) Snapshots(context.Context, []string) (map[string]market.Quote, error) {
	return s.quotes, nil
}

func boardFixture(t *testing.T) *BoardService {
	t.Helper()

	holdings := accountTable("Alice", "1,000")
	setInstrument(holdings, 1, "AAA", "100", "", "", "20", "25")
	setInstrument(holdings, 2, "BBB", "50", "", "", "10", "12")

	fetcher := &fakeFetcher{tables: map[string]sheetdata.RawTable{"s1": holdings}}
	portfolio := NewPortfolioService(fetcher, testStore(t, []string{"s1"}), nil)

	source := stubSource{quotes: map[string]market.Quote{
		"AAA": {Price: 25.5, Change: 0.5, High: 26, Low: 25},
	}}
	board := NewBoardService(portfolio, source, time.Hour, time.Hour, nil)
	t.Cleanup(board.Close)
	return board
}

func TestBoardSnapshotActivatesAndFills(t *testing.T) {
	board := boardFixture(t)

	snap, err := board.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Items, 2, "one row per held ticker")
	assert.Equal(t, "AAA", snap.Items[0].Ticker)
	assert.Equal(t, 25.5, snap.Items[0].CurrentPrice)
	assert.Equal(t, "BBB", snap.Items[1].Ticker)
	assert.Zero(t, snap.Items[1].CurrentPrice, "unquoted ticker zero-filled")
	assert.False(t, snap.LastUpdated.IsZero())
}

func TestBoardSnapshotReusesCommitted(t *testing.T) {
	board := boardFixture(t)

	first, err := board.Snapshot(context.Background())
	require.NoError(t, err)
	second, err := board.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second, "no extra fetch between poll ticks")
}

func TestBoardRefreshReplacesSnapshot(t *testing.T) {
	board := boardFixture(t)

	first, err := board.Snapshot(context.Background())
	require.NoError(t, err)
	second, err := board.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Items, second.Items)
}

func TestBoardStaleRefreshDiscarded(t *testing.T) {
	board := boardFixture(t)

	committed, err := board.Snapshot(context.Background())
	require.NoError(t, err)

	// A result carrying a token from a dead generation must not replace
	// the committed snapshot.
	_, err = board.refresh(context.Background(), uuid.New())
	require.NoError(t, err)

	current, err := board.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, committed, current)
}

func TestBoardCloseStopsPoller(t *testing.T) {
	board := boardFixture(t)

	_, err := board.Snapshot(context.Background())
	require.NoError(t, err)

	board.Close()
	board.Close()
}
