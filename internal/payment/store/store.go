package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rentcredit/rentcredit/internal/payment"
)

// Store holds the payment collection in memory for the lifetime of the
// process. Append-only; nothing is persisted or deleted.
type Store struct {
	mu       sync.Mutex
	payments []*payment.Payment
}

func New() *Store {
	return &Store{}
}

// Seeded returns a store pre-populated with the demo payment history.
func Seeded() *Store {
	s := New()
	now := time.Now()

	s.payments = []*payment.Payment{
		{
			ID:        uuid.NewString(),
			Month:     "May",
			Year:      2024,
			Amount:    15000,
			Status:    payment.StatusPaid,
			Date:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Month:     "June",
			Year:      2024,
			Amount:    15000,
			Status:    payment.StatusPending,
			Date:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			CreatedAt: now,
		},
	}

	return s
}

// CreatePayment appends p with a freshly generated unique id.
func (s *Store) CreatePayment(_ context.Context, p *payment.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()

	clone := *p
	s.payments = append(s.payments, &clone)

	return nil
}

// ListPayments returns a snapshot of the collection in insertion order.
func (s *Store) ListPayments(_ context.Context) ([]*payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*payment.Payment, len(s.payments))
	for i, p := range s.payments {
		clone := *p
		out[i] = &clone
	}

	return out, nil
}

// SetStatus settles the payment with the given id. Only the Pending→Paid and
// Pending→Late transitions are legal; settled payments are immutable.
func (s *Store) SetStatus(_ context.Context, id string, status payment.Status) (*payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.payments {
		if p.ID != id {
			continue
		}

		if p.Status != payment.StatusPending {
			return nil, payment.ErrSettled
		}

		p.Status = status
		clone := *p

		return &clone, nil
	}

	return nil, payment.ErrNotFound
}
