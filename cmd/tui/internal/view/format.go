package view

import (
	"context"
	"fmt"
	"time"
)

const opTimeout = 5 * time.Second

// FormatAmount renders a whole-rupee amount the way the dashboards show it.
func FormatAmount(amount int64) string {
	return fmt.Sprintf("₹%d", amount)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatReporting renders the credit reporting flag as the dashboard label.
func FormatReporting(reporting bool) string {
	if reporting {
		return "Yes"
	}

	return "No"
}

// OpCtx returns a context with a standard timeout for service operations.
func OpCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}
