package services

import (
	"testing"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name      string
		frequency core.Frequency
		from      time.Time
		want      time.Time
	}{
		{"daily", core.Daily, date(2025, time.March, 15), date(2025, time.March, 16)},
		{"daily across month end", core.Daily, date(2025, time.March, 31), date(2025, time.April, 1)},
		{"weekly", core.Weekly, date(2025, time.March, 15), date(2025, time.March, 22)},
		{"monthly", core.Monthly, date(2025, time.March, 15), date(2025, time.April, 15)},
		{"monthly clamps jan 31 to feb 28", core.Monthly, date(2025, time.January, 31), date(2025, time.February, 28)},
		{"monthly clamps jan 31 to feb 29 in leap year", core.Monthly, date(2024, time.January, 31), date(2024, time.February, 29)},
		{"monthly clamps mar 31 to apr 30", core.Monthly, date(2025, time.March, 31), date(2025, time.April, 30)},
		{"monthly across year end", core.Monthly, date(2025, time.December, 15), date(2026, time.January, 15)},
		{"yearly", core.Yearly, date(2025, time.June, 1), date(2026, time.June, 1)},
		{"yearly clamps feb 29 to feb 28", core.Yearly, date(2024, time.February, 29), date(2025, time.February, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDueDate(tt.frequency, tt.from)
			if err != nil {
				t.Fatalf("NextDueDate() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextDueDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextDueDateUnknownFrequency(t *testing.T) {
	if _, err := NextDueDate(core.Frequency("fortnightly"), date(2025, time.March, 15)); err == nil {
		t.Error("NextDueDate() error = nil, want error for unknown frequency")
	}
}
