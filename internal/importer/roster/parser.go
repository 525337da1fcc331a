package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rentcredit/rentcredit/internal/tenant"
)

// Recognized header names, lowercased. Name and rent are required; the rest
// default when absent.
const (
	colName      = "name"
	colRent      = "rent"
	colDueDate   = "due_date"
	colStatus    = "status"
	colReporting = "reporting"
)

// headerAliases maps spreadsheet variants to canonical column names.
var headerAliases = map[string]string{
	"tenant":      colName,
	"tenant name": colName,
	"amount":      colRent,
	"due date":    colDueDate,
	"duedate":     colDueDate,
	"cibil":       colReporting,
}

// colIndex maps canonical column names to their index in the row.
type colIndex map[string]int

// detectHeader scans rows for the first one carrying both required columns.
func detectHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if alias, ok := headerAliases[name]; ok {
				name = alias
			}

			if name != "" {
				cols[name] = i
			}
		}

		if _, ok := cols[colName]; !ok {
			continue
		}

		if _, ok := cols[colRent]; !ok {
			continue
		}

		return cols, rowIdx, true
	}

	return nil, 0, false
}

// parseRows extracts tenant params from the data rows below the header.
// headerRowNum is the 0-based index of the header in the original file.
func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]tenant.CreateParams, error) {
	var params []tenant.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		name := cellValue(row, cols[colName])
		rentCell := cellValue(row, cols[colRent])

		// Blank separator or footer row.
		if name == "" && rentCell == "" {
			continue
		}

		if name == "" {
			return nil, fmt.Errorf("row %d: missing tenant name", rowNum)
		}

		rent, err := parseRent(rentCell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		p := tenant.CreateParams{
			Name:   name,
			Rent:   rent,
			Status: tenant.StatusPending,
		}

		if idx, ok := cols[colDueDate]; ok {
			if due, ok := parseDate(cellValue(row, idx)); ok {
				p.DueDate = due
			}
		}

		if idx, ok := cols[colStatus]; ok {
			if status, ok := parseStatus(cellValue(row, idx)); ok {
				p.Status = status
			}
		}

		if idx, ok := cols[colReporting]; ok {
			p.Reporting = parseBool(cellValue(row, idx))
		}

		params = append(params, p)
	}

	return params, nil
}

// parseRent accepts plain integers plus the decorations spreadsheets add:
// currency signs, thousands separators, surrounding whitespace.
func parseRent(s string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '-':
			return r
		default:
			return -1
		}
	}, s)

	if cleaned == "" {
		return 0, fmt.Errorf("missing rent amount %q", s)
	}

	rent, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rent amount %q", s)
	}

	if rent <= 0 {
		return 0, fmt.Errorf("rent must be positive, got %q", s)
	}

	return rent, nil
}

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006"}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseStatus(s string) (tenant.Status, bool) {
	switch strings.ToLower(s) {
	case "paid":
		return tenant.StatusPaid, true
	case "late":
		return tenant.StatusLate, true
	case "pending", "unpaid":
		return tenant.StatusPending, true
	}

	return "", false
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1":
		return true
	}

	return false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
