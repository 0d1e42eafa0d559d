package adjustmenthandler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"reajuste/internal/domain/adjustment"
	"reajuste/internal/platform/metrics"
	"reajuste/internal/transport/http/api"
	"reajuste/internal/transport/http/middleware"
	"reajuste/internal/transport/http/render"
	"reajuste/internal/transport/http/shared"
)

type Handler struct {
	Calc    adjustment.Calculator
	Pages   *render.Pages
	Metrics *metrics.Collector
}

func NewHandler(calc adjustment.Calculator, pages *render.Pages, collector *metrics.Collector) *Handler {
	return &Handler{Calc: calc, Pages: pages, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Get("/relatorio.pdf", h.handlePDF)
	r.Get("/api/v1/adjustments", h.handleAPI)
}

func (h *Handler) calculate(r *http.Request) (adjustment.Result, error) {
	res, err := h.Calc.Calculate(shared.RawInputFromQuery(r.URL.Query()))
	h.Metrics.RecordCalculation(err == nil, adjustment.IsBracketError(err))
	if err != nil {
		slog.Debug("calculation rejected", "requestId", middleware.GetRequestID(r.Context()), "err", err)
	}
	return res, err
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if shared.RawInputFromQuery(r.URL.Query()).IsEmpty() {
		h.renderPage(w, r, h.Pages.Instructions(w))
		return
	}

	res, err := h.calculate(r)
	if err != nil {
		var verrs adjustment.ValidationErrors
		if !errors.As(err, &verrs) {
			h.renderPage(w, r, err)
			return
		}
		if adjustment.IsBracketError(err) {
			h.renderPage(w, r, h.Pages.BracketError(w, verrs))
			return
		}
		h.renderPage(w, r, h.Pages.FieldErrors(w, verrs))
		return
	}
	h.renderPage(w, r, h.Pages.Result(w, res, r.URL.RawQuery))
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	slog.Error("render page failed", "requestId", middleware.GetRequestID(r.Context()), "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (h *Handler) handleAPI(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	res, ok := h.calculateOrFail(w, r, reqID)
	if !ok {
		return
	}
	api.Success(w, res, reqID)
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	res, ok := h.calculateOrFail(w, r, reqID)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.PDF(&buf, res); err != nil {
		slog.Error("pdf render failed", "requestId", reqID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "could not render report", reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="relatorio-reajuste.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("pdf write failed", "requestId", reqID, "err", err)
	}
}

// calculateOrFail writes the JSON failure envelope when the calculation does
// not produce a result.
func (h *Handler) calculateOrFail(w http.ResponseWriter, r *http.Request, reqID string) (adjustment.Result, bool) {
	res, err := h.calculate(r)
	if err == nil {
		return res, true
	}

	var verrs adjustment.ValidationErrors
	switch {
	case !errors.As(err, &verrs):
		slog.Error("calculation failed", "requestId", reqID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "calculation failed", reqID)
	case adjustment.IsBracketError(err):
		api.FailWithDetails(
			w,
			http.StatusBadRequest,
			"age_bracket_out_of_range",
			verrs[0].Message,
			map[string]any{"fields": shared.IssuesFrom(verrs)},
			reqID,
		)
	default:
		shared.FailValidation(w, reqID, verrs)
	}
	return adjustment.Result{}, false
}
