package model

import "fmt"

// TimePeriod selects the window category totals are computed over.
type TimePeriod string

const (
	// PeriodWeek is a trailing seven day window ending at the moment of the
	// call. It is deliberately not aligned to calendar weeks.
	PeriodWeek TimePeriod = "week"
	// PeriodMonth runs from the first of the current calendar month.
	PeriodMonth TimePeriod = "month"
	// PeriodYear runs from January 1st of the current calendar year.
	PeriodYear TimePeriod = "year"
)

// ParseTimePeriod converts a user-supplied string to a TimePeriod.
func ParseTimePeriod(s string) (TimePeriod, error) {
	switch TimePeriod(s) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return TimePeriod(s), nil
	}
	return "", fmt.Errorf("invalid time period %q (want week, month, or year)", s)
}
