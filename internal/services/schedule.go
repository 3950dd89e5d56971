package services

import (
	"fmt"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// NextDueDate advances a recurring template's due date by one period.
// Monthly and yearly steps clamp to the last day of the target month, so
// a template anchored on the 31st posts on the 28th or 29th in February.
func NextDueDate(frequency core.Frequency, from time.Time) (time.Time, error) {
	switch frequency {
	case core.Daily:
		return from.AddDate(0, 0, 1), nil
	case core.Weekly:
		return from.AddDate(0, 0, 7), nil
	case core.Monthly:
		return addMonthsClamped(from, 1), nil
	case core.Yearly:
		return addMonthsClamped(from, 12), nil
	default:
		return time.Time{}, fmt.Errorf("unknown frequency: %s", frequency)
	}
}

// addMonthsClamped adds whole months without the normalization overflow
// of time.AddDate (Jan 31 + 1 month must not land on Mar 3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())

	lastDay := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
