package payment

import (
	"time"

	"github.com/rentcredit/rentcredit/internal/payment"
)

type paymentResponse struct {
	ID        string         `json:"id"`
	Month     string         `json:"month"`
	Year      int            `json:"year"`
	Amount    int64          `json:"amount"`
	Status    payment.Status `json:"status"`
	Date      string         `json:"date"`
	CreatedAt time.Time      `json:"created_at"`
}

func toResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		Month:     p.Month,
		Year:      p.Year,
		Amount:    p.Amount,
		Status:    p.Status,
		Date:      p.Date.Format(time.DateOnly),
		CreatedAt: p.CreatedAt,
	}
}

func toResponseList(payments []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toResponse(p)
	}

	return resp
}
