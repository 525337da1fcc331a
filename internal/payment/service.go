package payment

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	CreatePayment(ctx context.Context, p *Payment) error
	ListPayments(ctx context.Context) ([]*Payment, error)
	SetStatus(ctx context.Context, id string, status Status) (*Payment, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Month  string
	Year   int
	Amount int64
	Status Status
	Date   time.Time
}

// Add appends a new payment with a freshly generated unique id.
func (s *Service) Add(ctx context.Context, params CreateParams) (*Payment, error) {
	status := params.Status
	if status == "" {
		status = StatusPending
	}

	p := &Payment{
		Month:  params.Month,
		Year:   params.Year,
		Amount: params.Amount,
		Status: status,
		Date:   params.Date,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns the payments matching the status filter in store order.
func (s *Service) List(ctx context.Context, f StatusFilter) ([]*Payment, error) {
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	return Filter(payments, f), nil
}

// MarkLate settles a pending payment as Late.
func (s *Service) MarkLate(ctx context.Context, id string) (*Payment, error) {
	return s.repo.SetStatus(ctx, id, StatusLate)
}

// PayNext settles the earliest pending payment as Paid and returns it.
// Returns ErrNoPending when every payment is already settled.
func (s *Service) PayNext(ctx context.Context) (*Payment, error) {
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		if p.Status == StatusPending {
			return s.repo.SetStatus(ctx, p.ID, StatusPaid)
		}
	}

	return nil, ErrNoPending
}
