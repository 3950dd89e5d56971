package core

import (
	"testing"
	"time"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period string
		want   time.Time
	}{
		{
			name:   "month starts on first calendar day",
			period: "month",
			want:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "week is a rolling seven days",
			period: "week",
			want:   time.Date(2024, 3, 8, 14, 30, 0, 0, time.UTC),
		},
		{
			name:   "all maps to the fixed epoch",
			period: "all",
			want:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "unknown token degrades to unbounded",
			period: "quarter",
			want:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "empty token degrades to unbounded",
			period: "",
			want:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWindow(tt.period, now)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveWindow(%q) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestWindowDays(t *testing.T) {
	if got := WindowDays("month"); got != 30 {
		t.Errorf("WindowDays(month) = %d, want 30", got)
	}
	if got := WindowDays("week"); got != 7 {
		t.Errorf("WindowDays(week) = %d, want 7", got)
	}
	if got := WindowDays("all"); got != 7 {
		t.Errorf("WindowDays(all) = %d, want 7", got)
	}
}
