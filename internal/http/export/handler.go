package export

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/export"
)

// Handler serves report downloads. Reports are rendered per request from the
// currently visible entity subset; nothing is cached between requests.
type Handler struct {
	svc       *export.Service
	dashboard *dashboard.Service
}

func NewHandler(svc *export.Service, dash *dashboard.Service) *Handler {
	return &Handler{svc: svc, dashboard: dash}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/tenants.csv", h.tenantsCSV)
	r.Get("/tenants.pdf", h.tenantsPDF)
	r.Get("/payments.csv", h.paymentsCSV)
	r.Get("/payments.pdf", h.paymentsPDF)
}

func (h *Handler) tenantsCSV(w http.ResponseWriter, r *http.Request) {
	crit := h.dashboard.State().Filters()

	d, err := h.svc.TenantsCSV(r.Context(), crit, export.TenantReportName(".csv"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	serve(w, d)
}

func (h *Handler) tenantsPDF(w http.ResponseWriter, r *http.Request) {
	crit := h.dashboard.State().Filters()

	d, err := h.svc.TenantsPDF(r.Context(), crit, export.TenantReportName(".pdf"), "Tenant Report")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	serve(w, d)
}

func (h *Handler) paymentsCSV(w http.ResponseWriter, r *http.Request) {
	filter := h.dashboard.State().PaymentFilter()

	d, err := h.svc.PaymentsCSV(r.Context(), filter, export.RentHistoryName("tenant"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	serve(w, d)
}

func (h *Handler) paymentsPDF(w http.ResponseWriter, r *http.Request) {
	filter := h.dashboard.State().PaymentFilter()

	d, err := h.svc.PaymentsPDF(r.Context(), filter, "rent-history.pdf", "Rent Payment History")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	serve(w, d)
}

// serve streams a rendered download. A nil download means the visible subset
// was empty and nothing should be produced.
func serve(w http.ResponseWriter, d *export.Download) {
	if d == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", d.MIME)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", d.Filename))

	if _, err := w.Write(d.Data); err != nil {
		slog.Error("failed to write download", "error", err)
	}
}
