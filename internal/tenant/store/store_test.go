package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcredit/rentcredit/internal/tenant"
	"github.com/rentcredit/rentcredit/internal/tenant/store"
)

func TestStore_Seeded(t *testing.T) {
	s := store.Seeded()

	tenants, err := s.ListTenants(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 2)

	assert.Equal(t, "Alice", tenants[0].Name)
	assert.Equal(t, tenant.StatusPending, tenants[0].Status)
	assert.True(t, tenants[0].Reporting)

	assert.Equal(t, "Bob", tenants[1].Name)
	assert.Equal(t, tenant.StatusPaid, tenants[1].Status)
	assert.False(t, tenants[1].Reporting)
}

func TestStore_CreateTenant_AppendOnlyUniqueIDs(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	seen := make(map[string]bool)

	for i := 0; i < 5; i++ {
		tn := &tenant.Tenant{Name: "T", Rent: 1000, Status: tenant.StatusPending}
		require.NoError(t, s.CreateTenant(ctx, tn))
		require.NotEmpty(t, tn.ID)
		assert.False(t, seen[tn.ID], "id reused: %s", tn.ID)
		seen[tn.ID] = true

		tenants, err := s.ListTenants(ctx)
		require.NoError(t, err)
		assert.Len(t, tenants, i+1)
	}
}

func TestStore_SetStatus(t *testing.T) {
	s := store.Seeded()
	ctx := context.Background()

	before, err := s.ListTenants(ctx)
	require.NoError(t, err)

	updated, err := s.SetStatus(ctx, before[0].ID, tenant.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusPaid, updated.Status)

	after, err := s.ListTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusPaid, after[0].Status)

	// Only the status of the matched tenant changes.
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, before[0].Name, after[0].Name)
	assert.Equal(t, before[0].Rent, after[0].Rent)
	assert.Equal(t, before[1], after[1])
}

func TestStore_SetStatus_NotFound(t *testing.T) {
	s := store.Seeded()
	ctx := context.Background()

	before, err := s.ListTenants(ctx)
	require.NoError(t, err)

	_, err = s.SetStatus(ctx, "no-such-id", tenant.StatusPaid)
	assert.ErrorIs(t, err, tenant.ErrNotFound)

	after, err := s.ListTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_ListTenants_ReturnsCopies(t *testing.T) {
	s := store.Seeded()
	ctx := context.Background()

	first, err := s.ListTenants(ctx)
	require.NoError(t, err)

	first[0].Status = tenant.StatusLate
	first[0].Name = "mutated"

	second, err := s.ListTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", second[0].Name)
	assert.Equal(t, tenant.StatusPending, second[0].Status)
}
