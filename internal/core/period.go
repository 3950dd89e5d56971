package core

import "time"

// Period tokens accepted by the reporting endpoints. Unknown tokens
// degrade to the unbounded window rather than failing.
const (
	PeriodMonth = "month"
	PeriodWeek  = "week"
	PeriodAll   = "all"
)

// allTimeEpoch is the fixed lower boundary for unbounded queries. No
// ledger data predates it.
var allTimeEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// ResolveWindow maps a period token to the start boundary used for
// timestamp filtering. Queries are always open-ended to "now": no end
// boundary is applied.
//
//	"month" -> first calendar day of the current month
//	"week"  -> now minus 7 days (rolling, not calendar week)
//	other   -> a fixed epoch far in the past, effectively unbounded
func ResolveWindow(period string, now time.Time) time.Time {
	switch period {
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	default:
		return allTimeEpoch
	}
}

// WindowDays returns the smoothing horizon used by trend and prediction
// reads: 30 days for a month window, 7 otherwise.
func WindowDays(period string) int {
	if period == PeriodMonth {
		return 30
	}
	return 7
}
