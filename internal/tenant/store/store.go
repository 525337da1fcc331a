package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rentcredit/rentcredit/internal/tenant"
)

// Store holds the tenant collection in memory. Nothing is persisted and
// nothing is ever deleted; the collection lives exactly as long as the process.
//
// Access is serialized with a mutex because the HTTP server is concurrent.
type Store struct {
	mu      sync.Mutex
	tenants []*tenant.Tenant
}

func New() *Store {
	return &Store{}
}

// Seeded returns a store pre-populated with the demo dataset. Seeding happens
// here, at bootstrap, never as a package-load side effect.
func Seeded() *Store {
	s := New()
	now := time.Now()

	s.tenants = []*tenant.Tenant{
		{
			ID:        uuid.NewString(),
			Name:      "Alice",
			Rent:      15000,
			DueDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Status:    tenant.StatusPending,
			Reporting: true,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Bob",
			Rent:      18000,
			DueDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Status:    tenant.StatusPaid,
			Reporting: false,
			CreatedAt: now,
		},
	}

	return s
}

// CreateTenant appends t with a freshly generated unique id. It never fails;
// the error return satisfies the repository contract.
func (s *Store) CreateTenant(_ context.Context, t *tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()

	clone := *t
	s.tenants = append(s.tenants, &clone)

	return nil
}

// ListTenants returns a snapshot of the collection in insertion order.
// Returned tenants are copies, so callers cannot mutate store state.
func (s *Store) ListTenants(_ context.Context) ([]*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*tenant.Tenant, len(s.tenants))
	for i, t := range s.tenants {
		clone := *t
		out[i] = &clone
	}

	return out, nil
}

// SetStatus updates the status of the tenant with the given id and returns the
// updated tenant. When no tenant matches, the collection is left untouched and
// tenant.ErrNotFound is returned.
func (s *Store) SetStatus(_ context.Context, id string, status tenant.Status) (*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tenants {
		if t.ID == id {
			t.Status = status
			clone := *t

			return &clone, nil
		}
	}

	return nil, tenant.ErrNotFound
}
