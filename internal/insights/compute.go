package insights

import (
	"fmt"
	"math"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

// Pure derivations over aggregate rows. Everything here is a function of
// its inputs so the threshold and prediction behavior can be tested
// without a database.

// topCategory scans grouped spend for the single largest total. Ties keep
// the first-encountered category; ok is false when spend is empty.
func topCategory(spend []storage.CategorySpend) (name string, ok bool) {
	var topCents int64
	for _, cs := range spend {
		if cs.TotalCents > topCents {
			topCents = cs.TotalCents
			name = cs.Name
			ok = true
		}
	}
	return name, ok
}

// buildAlerts converts month-to-date utilization into budget alerts.
// Categories with a non-positive limit never alert. The over-budget check
// runs first: at 100% utilization and above only the over_budget alert
// fires, never the warning as well.
func buildAlerts(utilization []storage.CategoryUtilization) []Alert {
	alerts := make([]Alert, 0)
	for _, u := range utilization {
		if u.LimitCents <= 0 {
			continue
		}
		percentage := float64(u.SpentCents) / float64(u.LimitCents) * 100
		switch {
		case percentage >= 100:
			over := core.Money{Cents: u.SpentCents - u.LimitCents}
			alerts = append(alerts, Alert{
				Type:     "over_budget",
				Category: u.Name,
				Message:  fmt.Sprintf("You've exceeded your %s budget by $%s", u.Name, over),
				Severity: "high",
			})
		case percentage >= 80:
			alerts = append(alerts, Alert{
				Type:     "warning",
				Category: u.Name,
				Message:  fmt.Sprintf("You've used %.0f%% of your %s budget", percentage, u.Name),
				Severity: "medium",
			})
		}
	}
	return alerts
}

// predictFromDaily projects a period total from recent daily spend: the
// mean of the last min(7, available) days multiplied by the horizon.
// Fewer than 3 distinct days of history yields a low-confidence zero.
// The estimator assumes recent daily spend is stationary; it does not
// correct for weekday seasonality.
func predictFromDaily(daily []storage.DailyTotal, days int) Prediction {
	if len(daily) < 3 {
		return Prediction{
			Predicted:  core.Money{},
			Confidence: "low",
			Message:    "Need more data for accurate predictions",
		}
	}

	window := len(daily)
	if window > 7 {
		window = 7
	}
	var sum int64
	for _, d := range daily[len(daily)-window:] {
		sum += d.TotalCents
	}
	recentAvg := float64(sum) / float64(window)
	predicted := core.Money{Cents: int64(math.Round(recentAvg * float64(days)))}

	return Prediction{
		Predicted:  predicted,
		Confidence: "medium",
		Message: fmt.Sprintf("Based on recent spending patterns, you might spend around $%s in the next %d days.",
			predicted, days),
	}
}

// savingsRate is savings as a percentage of income, defined as 0 when
// income is 0.
func savingsRate(incomeCents, expenseCents int64) float64 {
	if incomeCents <= 0 {
		return 0
	}
	return float64(incomeCents-expenseCents) / float64(incomeCents) * 100
}

// weekdayNames maps SQLite's strftime('%w') index (0 = Sunday) to a
// display name.
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func weekdayName(w int) string {
	if w < 0 || w > 6 {
		return "Unknown"
	}
	return weekdayNames[w]
}
