package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/payment"
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
	r.Post("/pay-next", h.payNext)
	r.Post("/{id}/late", h.markLate)
}

type createPaymentRequest struct {
	Month  string `json:"month"`
	Year   int    `json:"year"`
	Amount int64  `json:"amount"`
	Date   string `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Month == "" {
		http.Error(w, "month is required", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	result, err := h.svc.AddPayment(r.Context(), payment.CreateParams{
		Month:  req.Month,
		Year:   req.Year,
		Amount: req.Amount,
		Date:   date,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(ackResponse{
		Message: result.Ack,
		Payment: toResponse(result.Payment),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := h.svc.State().PaymentFilter()
	if s := r.URL.Query().Get("status"); s != "" {
		filter = payment.StatusFilter(s)
	}

	payments, err := h.svc.Payments().List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(payments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type ackResponse struct {
	Message string          `json:"message"`
	Payment paymentResponse `json:"payment"`
}

// payNext settles the earliest pending payment. With nothing pending the
// dashboard shows an error toast, so this maps to 409 rather than 404.
func (h *Handler) payNext(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.PayNext(r.Context())
	if err != nil {
		if errors.Is(err, payment.ErrNoPending) {
			http.Error(w, "no pending payments", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ackResponse{
		Message: result.Ack,
		Payment: toResponse(result.Payment),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markLate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.Payments().MarkLate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrNotFound):
			http.Error(w, "payment not found", http.StatusNotFound)
		case errors.Is(err, payment.ErrSettled):
			http.Error(w, "payment already settled", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
