package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/infrastructure"
	"teamboard/internal/market"
	"teamboard/pkg/contracts/domain"
)

// BoardSnapshot is one committed market-board result set.
type BoardSnapshot struct {
	Items       []domain.MarketItem `json:"items"`
	LastUpdated time.Time           `json:"last_updated"`
}

// BoardService maintains the market-board snapshot. It polls on a fixed
// interval while the board view is active and goes idle once nobody has
// asked for the board within the idle TTL.
//
// Each activation gets a generation token; a refresh result is committed
// only if its token still matches, so responses arriving after a
// deactivate/reactivate cycle are discarded instead of clobbering newer
// state.
type BoardService struct {
	portfolio *PortfolioService
	source    market.Source
	interval  time.Duration
	idleTTL   time.Duration
	logger    *slog.Logger

	mu         sync.Mutex
	generation uuid.UUID
	cancel     context.CancelFunc
	snapshot   *BoardSnapshot
	lastTouch  time.Time

	closeOnce sync.Once
	done      chan struct{}
}

// NewBoardService creates a board service. Polling starts lazily on the
// first Snapshot call.
func NewBoardService(portfolio *PortfolioService, source market.Source, interval, idleTTL time.Duration, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BoardService{
		portfolio: portfolio,
		source:    source,
		interval:  interval,
		idleTTL:   idleTTL,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Snapshot returns the current board, activating the poller if it was idle.
// The first call of an activation refreshes synchronously so the caller
// never sees an empty board from a healthy system.
func (s *BoardService) Snapshot(ctx context.Context) (*BoardSnapshot, error) {
	s.mu.Lock()
	s.lastTouch = time.Now()
	if s.cancel == nil {
		s.activateLocked()
	}
	snap := s.snapshot
	gen := s.generation
	s.mu.Unlock()

	if snap != nil {
		return snap, nil
	}
	return s.refresh(ctx, gen)
}

// Refresh forces one refresh cycle outside the poll schedule.
func (s *BoardService) Refresh(ctx context.Context) (*BoardSnapshot, error) {
	s.mu.Lock()
	s.lastTouch = time.Now()
	if s.cancel == nil {
		s.activateLocked()
	}
	gen := s.generation
	s.mu.Unlock()

	return s.refresh(ctx, gen)
}

// activateLocked starts a new poll loop under a fresh generation. Caller
// holds s.mu.
func (s *BoardService) activateLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	s.generation = uuid.New()
	s.cancel = cancel
	go s.pollLoop(ctx, s.generation)
	s.logger.Info("board poller activated", slog.String("generation", s.generation.String()))
}

// pollLoop runs one refresh per tick. A cycle that outlives its interval
// simply causes the next tick to be dropped; cycles never overlap.
func (s *BoardService) pollLoop(ctx context.Context, gen uuid.UUID) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.expireIfIdle(gen) {
				return
			}
			if _, err := s.refresh(ctx, gen); err != nil {
				s.logger.Warn("board refresh cycle failed", slog.String("error", err.Error()))
			}
		}
	}
}

// expireIfIdle deactivates the poller when the board has not been requested
// within the idle TTL. Returns true when this generation should stop.
func (s *BoardService) expireIfIdle(gen uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return true
	}
	if time.Since(s.lastTouch) < s.idleTTL {
		return false
	}
	s.logger.Info("board poller idle, deactivating")
	s.deactivateLocked()
	return true
}

// deactivateLocked stops the current generation. Caller holds s.mu.
func (s *BoardService) deactivateLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation = uuid.UUID{}
	s.snapshot = nil
}

// refresh runs one full cycle: ticker universe, quote fetch, merge, commit.
// The commit is skipped when gen no longer matches the active generation.
func (s *BoardService) refresh(ctx context.Context, gen uuid.UUID) (*BoardSnapshot, error) {
	tickers, err := s.portfolio.TickerUniverse(ctx)
	if err != nil {
		return nil, err
	}

	items := market.BuildBoard(ctx, s.source, tickers, s.logger)
	snap := &BoardSnapshot{Items: items, LastUpdated: time.Now()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		infrastructure.BoardStaleDiscards.Inc()
		s.logger.Debug("discarding stale board refresh", slog.String("generation", gen.String()))
		if s.snapshot != nil {
			return s.snapshot, nil
		}
		return snap, nil
	}
	s.snapshot = snap
	infrastructure.BoardRefreshCycles.Inc()
	return snap, nil
}

// Close stops the poller. Safe to call more than once.
func (s *BoardService) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.deactivateLocked()
		s.mu.Unlock()
		close(s.done)
	})
}
