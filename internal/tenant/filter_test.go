package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentcredit/rentcredit/internal/tenant"
)

func sampleTenants() []*tenant.Tenant {
	return []*tenant.Tenant{
		{ID: "1", Name: "Priya Sharma", Status: tenant.StatusPaid, Reporting: true},
		{ID: "2", Name: "Rahul Verma", Status: tenant.StatusLate, Reporting: false},
		{ID: "3", Name: "Sneha Patel", Status: tenant.StatusPaid, Reporting: true},
		{ID: "4", Name: "Amit Singh", Status: tenant.StatusPending, Reporting: false},
	}
}

func TestFilter(t *testing.T) {
	type testCase struct {
		name    string
		crit    tenant.FilterCriteria
		wantIDs []string
	}

	tests := []testCase{
		{
			name:    "Default matches everything",
			crit:    tenant.DefaultCriteria(),
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "Zero value matches everything",
			crit:    tenant.FilterCriteria{},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "Status paid",
			crit:    tenant.FilterCriteria{Status: tenant.FilterStatusPaid, Reporting: tenant.FilterReportingAll},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "Reporting yes",
			crit:    tenant.FilterCriteria{Status: tenant.FilterStatusAll, Reporting: tenant.FilterReportingYes},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "Reporting no",
			crit:    tenant.FilterCriteria{Status: tenant.FilterStatusAll, Reporting: tenant.FilterReportingNo},
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "Search is case-insensitive substring",
			crit:    tenant.FilterCriteria{Search: "sHaRma"},
			wantIDs: []string{"1"},
		},
		{
			name:    "Search with surrounding whitespace",
			crit:    tenant.FilterCriteria{Search: "  patel "},
			wantIDs: []string{"3"},
		},
		{
			name: "All predicates are conjunctive",
			crit: tenant.FilterCriteria{
				Search:    "a",
				Status:    tenant.FilterStatusPaid,
				Reporting: tenant.FilterReportingYes,
			},
			wantIDs: []string{"1", "3"},
		},
		{
			name: "Conjunction can be empty",
			crit: tenant.FilterCriteria{
				Search:    "rahul",
				Status:    tenant.FilterStatusPaid,
				Reporting: tenant.FilterReportingAll,
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenants := sampleTenants()

			got := tenant.Filter(tenants, tt.crit)

			gotIDs := make([]string, 0, len(got))
			for _, tn := range got {
				gotIDs = append(gotIDs, tn.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	tenants := sampleTenants()
	crit := tenant.FilterCriteria{Status: tenant.FilterStatusPaid}

	got := tenant.Filter(tenants, crit)

	// Output is a subsequence of the input in original order.
	idx := 0
	for _, tn := range got {
		for idx < len(tenants) && tenants[idx] != tn {
			idx++
		}
		assert.Less(t, idx, len(tenants), "result element not found in input order")
		idx++
	}

	// Input order untouched.
	assert.Equal(t, []string{"1", "2", "3", "4"}, []string{
		tenants[0].ID, tenants[1].ID, tenants[2].ID, tenants[3].ID,
	})
}

func TestFilter_Idempotent(t *testing.T) {
	tenants := sampleTenants()
	crit := tenant.FilterCriteria{
		Search:    "a",
		Status:    tenant.FilterStatusPaid,
		Reporting: tenant.FilterReportingYes,
	}

	first := tenant.Filter(tenants, crit)
	second := tenant.Filter(tenants, crit)

	assert.Equal(t, first, second)
}
