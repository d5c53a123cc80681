package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the data plane. Registered on the default registry and
// exposed through /metrics.
var (
	// BoardRefreshCycles counts committed market-board refresh cycles.
	BoardRefreshCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teamboard_board_refresh_cycles_total",
		Help: "Number of committed market board refresh cycles.",
	})

	// BoardStaleDiscards counts refresh results thrown away because the
	// board generation changed while the fetch was in flight.
	BoardStaleDiscards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teamboard_board_stale_discards_total",
		Help: "Number of market board refresh results discarded as stale.",
	})

	// SheetFetchFailures counts failed sheet fetches by sheet identifier.
	SheetFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "teamboard_sheet_fetch_failures_total",
		Help: "Number of failed spreadsheet tab fetches.",
	}, []string{"sheet"})

	// QuoteSourceFailures counts failed quote source calls.
	QuoteSourceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teamboard_quote_source_failures_total",
		Help: "Number of failed external price source calls.",
	})
)
