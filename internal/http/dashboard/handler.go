package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/payment"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

// Handler exposes the shared dashboard view state: the tenant filter criteria,
// the payment status filter, and the chart mode.
type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/state", h.state)
	r.Put("/filters", h.setFilters)
	r.Put("/payment-filter", h.setPaymentFilter)
	r.Put("/graph-type", h.setGraphType)
}

type stateResponse struct {
	Search        string                 `json:"search"`
	Status        tenant.StatusFilter    `json:"status"`
	Reporting     tenant.ReportingFilter `json:"reporting"`
	PaymentFilter payment.StatusFilter   `json:"payment_filter"`
	GraphType     dashboard.GraphType    `json:"graph_type"`
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	state := h.svc.State()
	crit := state.Filters()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(stateResponse{
		Search:        crit.Search,
		Status:        crit.Status,
		Reporting:     crit.Reporting,
		PaymentFilter: state.PaymentFilter(),
		GraphType:     state.GraphType(),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setFiltersRequest struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	Reporting string `json:"reporting"`
}

// setFilters replaces the criteria wholesale. Omitted fields reset to their
// defaults rather than keeping their previous value.
func (h *Handler) setFilters(w http.ResponseWriter, r *http.Request) {
	var req setFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	crit := tenant.DefaultCriteria()
	crit.Search = req.Search

	if req.Status != "" {
		crit.Status = tenant.StatusFilter(req.Status)
	}

	if req.Reporting != "" {
		crit.Reporting = tenant.ReportingFilter(req.Reporting)
	}

	h.svc.State().SetFilters(crit)

	w.WriteHeader(http.StatusNoContent)
}

type setPaymentFilterRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setPaymentFilter(w http.ResponseWriter, r *http.Request) {
	var req setPaymentFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := payment.FilterAll
	if req.Status != "" {
		filter = payment.StatusFilter(req.Status)
	}

	h.svc.State().SetPaymentFilter(filter)

	w.WriteHeader(http.StatusNoContent)
}

type setGraphTypeRequest struct {
	GraphType string `json:"graph_type"`
}

func (h *Handler) setGraphType(w http.ResponseWriter, r *http.Request) {
	var req setGraphTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.State().SetGraphType(dashboard.GraphType(req.GraphType)); err != nil {
		if errors.Is(err, dashboard.ErrUnknownGraphType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
