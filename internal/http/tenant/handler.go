package tenant

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/{id}/confirm-payment", h.confirmPayment)
}

type createTenantRequest struct {
	Name      string `json:"name"`
	Rent      int64  `json:"rent"`
	DueDate   string `json:"due_date"`
	Reporting bool   `json:"reporting"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		http.Error(w, "invalid due_date", http.StatusBadRequest)
		return
	}

	result, err := h.svc.AddTenant(r.Context(), tenant.CreateParams{
		Name:      req.Name,
		Rent:      req.Rent,
		DueDate:   dueDate,
		Reporting: req.Reporting,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ackResponse{
		Message: result.Ack,
		Tenant:  toResponse(result.Tenant),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// list applies one-off criteria from the query string when present, otherwise
// the dashboard's current filter state.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	crit := h.svc.State().Filters()

	q := r.URL.Query()
	if q.Has("search") || q.Has("status") || q.Has("reporting") {
		crit = tenant.DefaultCriteria()
		crit.Search = q.Get("search")

		if s := q.Get("status"); s != "" {
			crit.Status = tenant.StatusFilter(s)
		}

		if s := q.Get("reporting"); s != "" {
			crit.Reporting = tenant.ReportingFilter(s)
		}
	}

	tenants, err := h.svc.Tenants().List(r.Context(), crit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(tenants)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type ackResponse struct {
	Message string         `json:"message"`
	Tenant  tenantResponse `json:"tenant"`
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.svc.ConfirmPayment(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ackResponse{
		Message: result.Ack,
		Tenant:  toResponse(result.Tenant),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
