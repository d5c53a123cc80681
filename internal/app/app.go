// Package app wires configuration, services, and transport into a runnable
// application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"teamboard/internal/config"
	"teamboard/internal/infrastructure"
	"teamboard/internal/market"
	"teamboard/internal/services"
	"teamboard/internal/sheets"
	transporthttp "teamboard/internal/transport/http"
)

// Application holds the wired service graph and the HTTP server.
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	Server *http.Server

	store     *config.Store
	portfolio *services.PortfolioService
	board     *services.BoardService
	auth      *services.AuthService
}

// NewApplication builds the application from configuration.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	a := &Application{
		Config: cfg,
		Logger: logger,
	}
	if err := a.initializeServices(); err != nil {
		return nil, err
	}
	a.createServer()
	return a, nil
}

func (a *Application) initializeServices() error {
	a.store = config.NewStore(a.Config.Store.Path, a.Logger)

	fetcher := sheets.NewClient(
		a.Config.Sheets.BaseURL,
		a.Config.Sheets.FetchTimeout,
		a.Logger,
		sheets.WithRateLimit(a.Config.Sheets.RateLimit, a.Config.Sheets.RateBurst),
	)

	a.portfolio = services.NewPortfolioService(fetcher, a.store, a.Logger)
	a.auth = services.NewAuthService(a.store)

	source, err := a.quoteSource()
	if err != nil {
		return err
	}
	a.board = services.NewBoardService(
		a.portfolio,
		source,
		a.Config.Board.PollInterval,
		a.Config.Board.IdleTTL,
		a.Logger,
	)
	return nil
}

func (a *Application) quoteSource() (market.Source, error) {
	switch a.Config.Quotes.Mode {
	case "sheet":
		source, err := market.NewSheetSource(
			context.Background(),
			a.Config.Quotes.CredentialsFile,
			a.Config.Quotes.SheetID,
			a.Config.Quotes.ReadRange,
			a.Logger,
		)
		if err != nil {
			return nil, fmt.Errorf("create sheet quote source: %w", err)
		}
		return source, nil
	default:
		return market.NewFeedSource(a.Config.Quotes.FeedURL, a.Config.Sheets.FetchTimeout, a.Logger), nil
	}
}

func (a *Application) router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	authHandler := transporthttp.NewAuthHandler(a.auth, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/", transporthttp.NewPortfolioHandler(a.portfolio, a.Logger).Routes())
		r.Mount("/board", transporthttp.NewBoardHandler(a.board, a.Logger).Routes())

		r.Route("/admin", func(r chi.Router) {
			r.Use(authHandler.RequireAuth)
			r.Mount("/", transporthttp.NewAdminHandler(a.store, a.Logger).Routes())
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.router(),
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown completes.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	return a.Stop()
}

// Stop shuts the server and background workers down gracefully.
func (a *Application) Stop() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	a.board.Close()

	err := a.Server.Shutdown(shutdownCtx)
	if closeErr := infrastructure.CloseLogFile(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
