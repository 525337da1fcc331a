package export

import (
	"fmt"
	"strings"
)

// MarshalCSV serializes records as CSV: a header row derived from the first
// record, then one row per record, rows joined by newline. Every value is
// double-quoted, with embedded quotes doubled per RFC 4180.
//
// An empty record sequence produces no bytes and no error; callers treat that
// as "nothing to download". encoding/csv is not used here because it only
// quotes when necessary, and the report format quotes every field.
func MarshalCSV(records []Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}

	if err := validateUniform(records); err != nil {
		return nil, fmt.Errorf("csv export: %w", err)
	}

	rows := make([]string, 0, len(records)+1)
	rows = append(rows, quoteRow(records[0].names()))

	for _, rec := range records {
		rows = append(rows, quoteRow(rec.values()))
	}

	return []byte(strings.Join(rows, "\n")), nil
}

func quoteRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}

	return strings.Join(quoted, ",")
}
