package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "teamboard/internal/errors"
)

// BoardHandler serves the market-board snapshot.
type BoardHandler struct {
	service BoardReader
	logger  *slog.Logger
}

// NewBoardHandler creates a board handler.
func NewBoardHandler(service BoardReader, logger *slog.Logger) *BoardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BoardHandler{
		service: service,
		logger:  logger.With(slog.String("component", "board_handler")),
	}
}

// Routes returns the board routes.
func (h *BoardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetBoard)
	r.Post("/refresh", h.RefreshBoard)

	return r
}

// GetBoard handles GET /api/board. The request also marks the board view as
// active, keeping the background poller running.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get board snapshot",
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrInternalServer))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   snap,
		"count":  len(snap.Items),
	})
}

// RefreshBoard handles POST /api/board/refresh.
func (h *BoardHandler) RefreshBoard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Refresh(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to refresh board",
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrInternalServer))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   snap,
		"count":  len(snap.Items),
	})
}
