package tenant

import (
	"errors"
	"time"
)

// Status represents the rent status of a tenant for the current period.
type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
	StatusLate    Status = "Late"
)

// ErrNotFound is returned when no tenant matches the requested id.
var ErrNotFound = errors.New("tenant not found")

// Tenant is a renter tracked on the landlord dashboard.
type Tenant struct {
	ID        string
	Name      string
	Rent      int64 // Monthly rent in whole currency units
	DueDate   time.Time
	Status    Status
	Reporting bool // Whether payments are forwarded to a credit bureau
	CreatedAt time.Time
}
