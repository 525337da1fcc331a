package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/payment"
	paymentStore "github.com/rentcredit/rentcredit/internal/payment/store"
	"github.com/rentcredit/rentcredit/internal/tenant"
	tenantStore "github.com/rentcredit/rentcredit/internal/tenant/store"
)

func seededService() *dashboard.Service {
	return dashboard.NewService(
		tenant.NewService(tenantStore.Seeded()),
		payment.NewService(paymentStore.Seeded()),
		dashboard.NewState(),
	)
}

func TestService_ConfirmPayment(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	tenants, err := svc.Tenants().List(ctx, tenant.DefaultCriteria())
	require.NoError(t, err)

	res, err := svc.ConfirmPayment(ctx, tenants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusPaid, res.Tenant.Status)
	assert.Equal(t, "Payment confirmed for Alice", res.Ack)
}

func TestService_ConfirmPayment_MissingTenant(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	before, err := svc.Tenants().List(ctx, tenant.DefaultCriteria())
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, "no-such-tenant")
	assert.ErrorIs(t, err, tenant.ErrNotFound)

	after, err := svc.Tenants().List(ctx, tenant.DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, before, after, "a lookup miss must not touch the collection")
}

func TestService_AddTenant(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	res, err := svc.AddTenant(ctx, tenant.CreateParams{
		Name:      "Sneha Patel",
		Rent:      18000,
		DueDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Reporting: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tenant added", res.Ack)
	assert.NotEmpty(t, res.Tenant.ID)

	tenants, err := svc.Tenants().List(ctx, tenant.DefaultCriteria())
	require.NoError(t, err)
	assert.Len(t, tenants, 3)
	assert.Equal(t, "Sneha Patel", tenants[2].Name)
}

func TestService_AddPayment(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	res, err := svc.AddPayment(ctx, payment.CreateParams{
		Month:  "July",
		Year:   2024,
		Amount: 15000,
		Date:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Payment added", res.Ack)

	payments, err := svc.Payments().List(ctx, payment.FilterAll)
	require.NoError(t, err)
	assert.Len(t, payments, 3)
}

func TestService_PayNext(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	res, err := svc.PayNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "June", res.Payment.Month)
	assert.Equal(t, payment.StatusPaid, res.Payment.Status)
	assert.Equal(t, "Payment of ₹15000 confirmed", res.Ack)

	// Seed has a single pending payment, so a second call has nothing to do.
	_, err = svc.PayNext(ctx)
	assert.ErrorIs(t, err, payment.ErrNoPending)
}

func TestService_VisibleTenants_TracksState(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	visible, err := svc.VisibleTenants(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	svc.State().SetFilters(tenant.FilterCriteria{
		Status:    tenant.FilterStatusPending,
		Reporting: tenant.FilterReportingAll,
	})

	visible, err = svc.VisibleTenants(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Alice", visible[0].Name)
}

func TestState_SetGraphType(t *testing.T) {
	state := dashboard.NewState()
	assert.Equal(t, dashboard.GraphLine, state.GraphType())

	require.NoError(t, state.SetGraphType(dashboard.GraphPie))
	assert.Equal(t, dashboard.GraphPie, state.GraphType())

	err := state.SetGraphType("Scatter")
	assert.ErrorIs(t, err, dashboard.ErrUnknownGraphType)
	assert.Equal(t, dashboard.GraphPie, state.GraphType(), "invalid mode leaves state untouched")
}
