package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcredit/rentcredit/internal/payment"
	"github.com/rentcredit/rentcredit/internal/payment/store"
)

func TestStore_Seeded(t *testing.T) {
	s := store.Seeded()

	payments, err := s.ListPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)

	assert.Equal(t, "May", payments[0].Month)
	assert.Equal(t, payment.StatusPaid, payments[0].Status)
	assert.Equal(t, "June", payments[1].Month)
	assert.Equal(t, payment.StatusPending, payments[1].Status)
}

func TestStore_CreatePayment_AppendOnlyUniqueIDs(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	seen := make(map[string]bool)

	for i := 0; i < 5; i++ {
		p := &payment.Payment{Month: "July", Year: 2024, Amount: 100, Status: payment.StatusPending}
		require.NoError(t, s.CreatePayment(ctx, p))
		require.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "id reused: %s", p.ID)
		seen[p.ID] = true
	}

	payments, err := s.ListPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 5)
}

func TestStore_SetStatus_Transitions(t *testing.T) {
	s := store.Seeded()
	ctx := context.Background()

	payments, err := s.ListPayments(ctx)
	require.NoError(t, err)

	paid := payments[0].ID    // already settled
	pending := payments[1].ID // Pending

	// Pending -> Late is legal.
	updated, err := s.SetStatus(ctx, pending, payment.StatusLate)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusLate, updated.Status)

	// Settled payments never change again.
	_, err = s.SetStatus(ctx, pending, payment.StatusPaid)
	assert.ErrorIs(t, err, payment.ErrSettled)

	_, err = s.SetStatus(ctx, paid, payment.StatusLate)
	assert.ErrorIs(t, err, payment.ErrSettled)
}

func TestStore_SetStatus_NotFound(t *testing.T) {
	s := store.Seeded()

	_, err := s.SetStatus(context.Background(), "no-such-id", payment.StatusPaid)
	assert.ErrorIs(t, err, payment.ErrNotFound)
}
