package tenant

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tenant
type Repository interface {
	CreateTenant(ctx context.Context, t *Tenant) error
	ListTenants(ctx context.Context) ([]*Tenant, error)
	SetStatus(ctx context.Context, id string, status Status) (*Tenant, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name      string
	Rent      int64
	DueDate   time.Time
	Status    Status
	Reporting bool
}

// Add appends a new tenant. The store assigns a fresh unique id; ids are never
// reused for the lifetime of the store.
func (s *Service) Add(ctx context.Context, params CreateParams) (*Tenant, error) {
	status := params.Status
	if status == "" {
		status = StatusPending
	}

	t := &Tenant{
		Name:      params.Name,
		Rent:      params.Rent,
		DueDate:   params.DueDate,
		Status:    status,
		Reporting: params.Reporting,
	}
	if err := s.repo.CreateTenant(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// AddBatch appends tenants in order. Appends are independent, so a failure
// partway leaves the earlier appends in place.
func (s *Service) AddBatch(ctx context.Context, params []CreateParams) ([]*Tenant, error) {
	if len(params) == 0 {
		return nil, nil
	}

	tenants := make([]*Tenant, 0, len(params))

	for i, p := range params {
		t, err := s.Add(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("adding tenant %d: %w", i+1, err)
		}

		tenants = append(tenants, t)
	}

	return tenants, nil
}

// List returns the tenants matching crit in store order. The subset is
// recomputed on every call, never cached.
func (s *Service) List(ctx context.Context, crit FilterCriteria) ([]*Tenant, error) {
	tenants, err := s.repo.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	return Filter(tenants, crit), nil
}

// ConfirmPayment marks the tenant's rent as paid for the current period.
// Returns ErrNotFound when no tenant matches; the collection is left unchanged.
func (s *Service) ConfirmPayment(ctx context.Context, id string) (*Tenant, error) {
	t, err := s.repo.SetStatus(ctx, id, StatusPaid)
	if err != nil {
		return nil, err
	}

	return t, nil
}
