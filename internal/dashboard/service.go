package dashboard

import (
	"context"
	"fmt"

	"github.com/rentcredit/rentcredit/internal/payment"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

// Service is the action surface the presentation layer calls. Each action is a
// single entity mutation, so it either fully applies or has no effect, and
// each produces exactly one acknowledgment: the Ack message on success or the
// returned error.
type Service struct {
	tenants  *tenant.Service
	payments *payment.Service
	state    *State
}

func NewService(tenants *tenant.Service, payments *payment.Service, state *State) *Service {
	return &Service{
		tenants:  tenants,
		payments: payments,
		state:    state,
	}
}

func (s *Service) State() *State { return s.state }

func (s *Service) Tenants() *tenant.Service { return s.tenants }

func (s *Service) Payments() *payment.Service { return s.payments }

type ConfirmPaymentResult struct {
	Tenant *tenant.Tenant
	Ack    string
}

// ConfirmPayment marks the tenant's rent as paid. A missing tenant id surfaces
// tenant.ErrNotFound; the collection stays untouched either way but once.
func (s *Service) ConfirmPayment(ctx context.Context, tenantID string) (*ConfirmPaymentResult, error) {
	t, err := s.tenants.ConfirmPayment(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &ConfirmPaymentResult{
		Tenant: t,
		Ack:    fmt.Sprintf("Payment confirmed for %s", t.Name),
	}, nil
}

type AddTenantResult struct {
	Tenant *tenant.Tenant
	Ack    string
}

func (s *Service) AddTenant(ctx context.Context, params tenant.CreateParams) (*AddTenantResult, error) {
	t, err := s.tenants.Add(ctx, params)
	if err != nil {
		return nil, err
	}

	return &AddTenantResult{Tenant: t, Ack: "Tenant added"}, nil
}

type AddPaymentResult struct {
	Payment *payment.Payment
	Ack     string
}

func (s *Service) AddPayment(ctx context.Context, params payment.CreateParams) (*AddPaymentResult, error) {
	p, err := s.payments.Add(ctx, params)
	if err != nil {
		return nil, err
	}

	return &AddPaymentResult{Payment: p, Ack: "Payment added"}, nil
}

type PayNextResult struct {
	Payment *payment.Payment
	Ack     string
}

// PayNext settles the earliest pending payment. payment.ErrNoPending comes
// back when there is nothing left to pay.
func (s *Service) PayNext(ctx context.Context) (*PayNextResult, error) {
	p, err := s.payments.PayNext(ctx)
	if err != nil {
		return nil, err
	}

	return &PayNextResult{
		Payment: p,
		Ack:     fmt.Sprintf("Payment of ₹%d confirmed", p.Amount),
	}, nil
}

// VisibleTenants applies the current filter criteria to the tenant collection.
func (s *Service) VisibleTenants(ctx context.Context) ([]*tenant.Tenant, error) {
	return s.tenants.List(ctx, s.state.Filters())
}

// VisiblePayments applies the current payment filter to the payment history.
func (s *Service) VisiblePayments(ctx context.Context) ([]*payment.Payment, error) {
	return s.payments.List(ctx, s.state.PaymentFilter())
}
