package payment

// StatusFilter narrows payments by status. The zero value and "All" match
// every payment.
type StatusFilter string

const (
	FilterAll     StatusFilter = "All"
	FilterPaid    StatusFilter = "Paid"
	FilterLate    StatusFilter = "Late"
	FilterPending StatusFilter = "Pending"
)

func (f StatusFilter) matches(s Status) bool {
	return f == "" || f == FilterAll || string(f) == string(s)
}

// Filter returns the payments matching f, preserving the original relative
// order. Pure and side-effect free.
func Filter(payments []*Payment, f StatusFilter) []*Payment {
	out := make([]*Payment, 0, len(payments))

	for _, p := range payments {
		if f.matches(p.Status) {
			out = append(out, p)
		}
	}

	return out
}
