package entities

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by quotes, orders and invoices.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCompletion renders the display-only completion date, e.g. "NOV 24, 2023".
func FormatCompletion(t time.Time) string {
	return strings.ToUpper(t.Format("Jan 02, 2006"))
}
