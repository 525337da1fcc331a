package payment

import (
	"errors"
	"time"
)

// Status represents the lifecycle state of a rent payment. A payment starts
// Pending and settles to Paid or Late; there is no way back and no
// refund/cancellation state.
type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
	StatusLate    Status = "Late"
)

var (
	// ErrNotFound is returned when no payment matches the requested id.
	ErrNotFound = errors.New("payment not found")

	// ErrSettled is returned when a status change targets a payment that
	// already left the Pending state.
	ErrSettled = errors.New("payment already settled")

	// ErrNoPending is returned by PayNext when every payment is settled.
	ErrNoPending = errors.New("no pending payments")
)

// Payment is a single rent payment tied to a billing period.
type Payment struct {
	ID        string
	Month     string
	Year      int
	Amount    int64 // Amount in whole currency units
	Status    Status
	Date      time.Time // Date paid, or due date while pending
	CreatedAt time.Time
}
