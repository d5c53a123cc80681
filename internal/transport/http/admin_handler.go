package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"teamboard/internal/config"
	apierrors "teamboard/internal/errors"
)

// AdminHandler serves the protected configuration endpoints.
type AdminHandler struct {
	store  ConfigAdmin
	logger *slog.Logger
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(store ConfigAdmin, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		store:  store,
		logger: logger.With(slog.String("component", "admin_handler")),
	}
}

// Routes returns the admin routes. Callers mount them behind RequireAuth.
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/config", h.GetConfig)
	r.Put("/config", h.UpdateConfig)

	return r
}

// configView is the admin-facing shape of the configuration. Passwords are
// write-only: reads report only how many exist.
type configView struct {
	SpreadsheetID  string   `json:"spreadsheet_id"`
	CustomerSheets []string `json:"customer_sheets"`
	PasswordCount  int      `json:"password_count"`
}

// GetConfig handles GET /api/admin/config.
func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	current := h.store.Current()

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data": configView{
			SpreadsheetID:  current.SpreadsheetID,
			CustomerSheets: current.CustomerSheets,
			PasswordCount:  len(current.Passwords),
		},
	})
}

type updateConfigRequest struct {
	SpreadsheetID  string   `json:"spreadsheet_id"`
	CustomerSheets []string `json:"customer_sheets"`
	Passwords      []string `json:"passwords"`
}

// UpdateConfig handles PUT /api/admin/config. An omitted password list keeps
// the existing passwords.
func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrInvalidRequest))
		return
	}

	next := config.Dashboard{
		SpreadsheetID:  req.SpreadsheetID,
		CustomerSheets: req.CustomerSheets,
		Passwords:      req.Passwords,
	}
	if len(next.Passwords) == 0 {
		next.Passwords = h.store.Current().Passwords
	}

	if err := h.store.Update(next); err != nil {
		h.logger.WarnContext(r.Context(), "config update rejected",
			slog.String("error", err.Error()))

		switch {
		case errors.Is(err, config.ErrDenylistedSheet):
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation("customer_sheets", err.Error())))
		case errors.Is(err, config.ErrNoPasswords):
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation("passwords", err.Error())))
		default:
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation("config", err.Error())))
		}
		return
	}

	h.logger.InfoContext(r.Context(), "config updated",
		slog.Int("customer_sheets", len(req.CustomerSheets)))

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
	})
}
