package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "teamboard/internal/errors"
	"teamboard/internal/services"
)

// PortfolioHandler serves the dashboard, customer, and trading views.
type PortfolioHandler struct {
	service PortfolioReader
	logger  *slog.Logger
}

// NewPortfolioHandler creates a portfolio handler.
func NewPortfolioHandler(service PortfolioReader, logger *slog.Logger) *PortfolioHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortfolioHandler{
		service: service,
		logger:  logger.With(slog.String("component", "portfolio_handler")),
	}
}

// Routes returns the portfolio routes.
func (h *PortfolioHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/customers", h.GetCustomers)
	r.Get("/trading", h.GetTrading)

	r.Route("/customers/{sheetID}", func(r chi.Router) {
		r.Use(h.SheetCtx)
		r.Get("/", h.GetCustomerDetail)
	})

	return r
}

// SheetCtx validates the sheet identifier parameter.
func (h *PortfolioHandler) SheetCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "sheetID") == "" {
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation("sheetID", "Sheet identifier is required")))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetDashboard handles GET /api/dashboard.
func (h *PortfolioHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.renderServiceError(w, r, "failed to build dashboard", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
	})
}

// GetCustomers handles GET /api/customers.
func (h *PortfolioHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.CustomerSummaries(r.Context())
	if err != nil {
		h.renderServiceError(w, r, "failed to get customer summaries", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetCustomerDetail handles GET /api/customers/{sheetID}.
func (h *PortfolioHandler) GetCustomerDetail(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetID")

	detail, err := h.service.CustomerDetail(r.Context(), sheetID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get customer detail",
			slog.String("sheet", sheetID),
			slog.String("error", err.Error()))

		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			render.Render(w, r, apierrors.NewErrorResponse(apierrors.NotFoundError("Customer sheet "+sheetID)))
		case errors.Is(err, services.ErrSheetFetch):
			render.Render(w, r, apierrors.NewErrorResponse(apierrors.SheetFetchError(sheetID, err)))
		default:
			render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrInternalServer))
		}
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   detail,
	})
}

// GetTrading handles GET /api/trading.
func (h *PortfolioHandler) GetTrading(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.AggregatedTrading(r.Context())
	if err != nil {
		h.renderServiceError(w, r, "failed to aggregate trading", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   items,
		"count":  len(items),
	})
}

func (h *PortfolioHandler) renderServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.String("error", err.Error()))

	if errors.Is(err, services.ErrNoCustomers) {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.New(
			http.StatusNotFound,
			"NO_CUSTOMERS",
			"No customer sheets configured",
		)))
		return
	}
	render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrInternalServer))
}
