// Package budget holds the aggregation engine and the process-wide budget
// state manager.
package budget

import (
	"time"

	"github.com/spendwise/spendwise/internal/model"
)

// PeriodStart returns the inclusive start boundary of the given period
// relative to now. Week is a trailing seven day window preserving the
// time-of-day of now; month and year are calendar-aligned local midnights.
// The asymmetry is intentional.
func PeriodStart(period model.TimePeriod, now time.Time) time.Time {
	switch period {
	case model.PeriodWeek:
		return now.AddDate(0, 0, -7)
	case model.PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// Total sums the amounts of transactions in the given category whose dates
// fall inside the period window ending at now. Both boundaries are
// inclusive. The full history is scanned on every call; at personal scale
// that costs less than keeping an incremental total correct.
func Total(transactions []model.Transaction, categoryID string, period model.TimePeriod, now time.Time) float64 {
	start := PeriodStart(period, now)

	var sum float64
	for _, t := range transactions {
		if t.CategoryID != categoryID {
			continue
		}
		if t.Date.Before(start) || t.Date.After(now) {
			continue
		}
		sum += t.Amount
	}
	return sum
}
