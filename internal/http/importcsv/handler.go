package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/importer"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

// Handler accepts roster CSV uploads and appends the parsed tenants.
type Handler struct {
	importSvc *importer.Service
	dashboard *dashboard.Service
}

func NewHandler(importSvc *importer.Service, dash *dashboard.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		dashboard: dash,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type tenantDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Rent      int64         `json:"rent"`
	DueDate   string        `json:"due_date"`
	Status    tenant.Status `json:"status"`
	Reporting bool          `json:"reporting"`
}

type importSuccessResponse struct {
	Imported int         `json:"imported"`
	Tenants  []tenantDTO `json:"tenants"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	src := importer.Source(r.FormValue("source"))
	if src == "" {
		src = importer.SourceRoster
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(src, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tenants, err := h.dashboard.Tenants().AddBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importSuccessResponse{
		Imported: len(tenants),
		Tenants:  make([]tenantDTO, 0, len(tenants)),
	}
	for _, t := range tenants {
		resp.Tenants = append(resp.Tenants, tenantDTO{
			ID:        t.ID,
			Name:      t.Name,
			Rent:      t.Rent,
			DueDate:   t.DueDate.Format(time.DateOnly),
			Status:    t.Status,
			Reporting: t.Reporting,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
