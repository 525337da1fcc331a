package tenant

import "strings"

// StatusFilter narrows tenants by rent status. The zero value means no narrowing.
type StatusFilter string

const (
	FilterStatusAll     StatusFilter = "All"
	FilterStatusPaid    StatusFilter = "Paid"
	FilterStatusLate    StatusFilter = "Late"
	FilterStatusPending StatusFilter = "Pending"
)

// ReportingFilter narrows tenants by their credit-bureau reporting flag.
type ReportingFilter string

const (
	FilterReportingAll ReportingFilter = "All"
	FilterReportingYes ReportingFilter = "Yes"
	FilterReportingNo  ReportingFilter = "No"
)

// FilterCriteria is the transient view state driving the visible tenant subset.
// Criteria carry no identity and are replaced wholesale on every update.
type FilterCriteria struct {
	Search    string
	Status    StatusFilter
	Reporting ReportingFilter
}

// DefaultCriteria matches every tenant.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Status: FilterStatusAll, Reporting: FilterReportingAll}
}

func (f StatusFilter) matches(s Status) bool {
	return f == "" || f == FilterStatusAll || string(f) == string(s)
}

func (f ReportingFilter) matches(reporting bool) bool {
	switch f {
	case FilterReportingYes:
		return reporting
	case FilterReportingNo:
		return !reporting
	}

	return true
}

// Filter returns the subsequence of tenants matching all criteria, preserving
// the original relative order. It is pure: the input slice is never mutated and
// identical inputs always yield identical output.
func Filter(tenants []*Tenant, crit FilterCriteria) []*Tenant {
	search := strings.ToLower(strings.TrimSpace(crit.Search))

	out := make([]*Tenant, 0, len(tenants))

	for _, t := range tenants {
		if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
			continue
		}

		if !crit.Status.matches(t.Status) {
			continue
		}

		if !crit.Reporting.matches(t.Reporting) {
			continue
		}

		out = append(out, t)
	}

	return out
}
