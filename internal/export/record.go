package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rentcredit/rentcredit/internal/payment"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

// Field is a single named value of an exported record.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered field list. The header of a tabular export is derived
// from the first record's field names, in that order; every record of one
// export must therefore carry the same field names in the same order. The
// marshal functions validate this instead of silently misaligning columns.
type Record []Field

func (r Record) names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}

	return names
}

func (r Record) values() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = f.Value
	}

	return values
}

// validateUniform checks the shared-field-set precondition against the first
// record.
func validateUniform(records []Record) error {
	if len(records) == 0 {
		return nil
	}

	first := records[0]

	for i, rec := range records[1:] {
		if len(rec) != len(first) {
			return fmt.Errorf("record %d: %d fields, want %d", i+2, len(rec), len(first))
		}

		for j, f := range rec {
			if f.Name != first[j].Name {
				return fmt.Errorf("record %d: field %q, want %q", i+2, f.Name, first[j].Name)
			}
		}
	}

	return nil
}

// TenantRecords converts tenants to export records in collection order.
func TenantRecords(tenants []*tenant.Tenant) []Record {
	records := make([]Record, 0, len(tenants))

	for _, t := range tenants {
		reporting := "No"
		if t.Reporting {
			reporting = "Yes"
		}

		records = append(records, Record{
			{Name: "name", Value: t.Name},
			{Name: "rent", Value: strconv.FormatInt(t.Rent, 10)},
			{Name: "due_date", Value: t.DueDate.Format(time.DateOnly)},
			{Name: "status", Value: string(t.Status)},
			{Name: "reporting", Value: reporting},
		})
	}

	return records
}

// PaymentRecords converts payments to export records in collection order.
func PaymentRecords(payments []*payment.Payment) []Record {
	records := make([]Record, 0, len(payments))

	for _, p := range payments {
		records = append(records, Record{
			{Name: "month", Value: p.Month},
			{Name: "year", Value: strconv.Itoa(p.Year)},
			{Name: "amount", Value: strconv.FormatInt(p.Amount, 10)},
			{Name: "status", Value: string(p.Status)},
			{Name: "date", Value: p.Date.Format(time.DateOnly)},
		})
	}

	return records
}
