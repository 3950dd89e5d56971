package insights

import (
	"strings"
	"testing"

	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

func TestBuildAlerts(t *testing.T) {
	tests := []struct {
		name         string
		utilization  []storage.CategoryUtilization
		wantCount    int
		wantType     string
		wantSeverity string
		wantContains string
	}{
		{
			name:        "just under warning threshold",
			utilization: []storage.CategoryUtilization{{Name: "Food", LimitCents: 10000, SpentCents: 7999}},
			wantCount:   0,
		},
		{
			name:         "exactly at warning threshold",
			utilization:  []storage.CategoryUtilization{{Name: "Food", LimitCents: 10000, SpentCents: 8000}},
			wantCount:    1,
			wantType:     "warning",
			wantSeverity: "medium",
			wantContains: "80% of your Food budget",
		},
		{
			name:         "exactly at limit",
			utilization:  []storage.CategoryUtilization{{Name: "Food", LimitCents: 10000, SpentCents: 10000}},
			wantCount:    1,
			wantType:     "over_budget",
			wantSeverity: "high",
			wantContains: "exceeded your Food budget by $0.00",
		},
		{
			name:         "over the limit",
			utilization:  []storage.CategoryUtilization{{Name: "Fun", LimitCents: 15000, SpentCents: 20000}},
			wantCount:    1,
			wantType:     "over_budget",
			wantSeverity: "high",
			wantContains: "exceeded your Fun budget by $50.00",
		},
		{
			name:        "zero limit never alerts",
			utilization: []storage.CategoryUtilization{{Name: "Other", LimitCents: 0, SpentCents: 99999}},
			wantCount:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := buildAlerts(tt.utilization)
			if len(alerts) != tt.wantCount {
				t.Fatalf("buildAlerts() returned %d alerts, want %d", len(alerts), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			a := alerts[0]
			if a.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", a.Type, tt.wantType)
			}
			if a.Severity != tt.wantSeverity {
				t.Errorf("Severity = %v, want %v", a.Severity, tt.wantSeverity)
			}
			if !strings.Contains(a.Message, tt.wantContains) {
				t.Errorf("Message = %q, want it to contain %q", a.Message, tt.wantContains)
			}
		})
	}
}

func TestBuildAlertsNeverEmitsBothForOneCategory(t *testing.T) {
	alerts := buildAlerts([]storage.CategoryUtilization{
		{Name: "Shopping", LimitCents: 10000, SpentCents: 12000},
	})
	if len(alerts) != 1 {
		t.Fatalf("buildAlerts() returned %d alerts, want 1", len(alerts))
	}
	if alerts[0].Type != "over_budget" {
		t.Errorf("Type = %v, want over_budget", alerts[0].Type)
	}
}

func TestTopCategory(t *testing.T) {
	tests := []struct {
		name     string
		spend    []storage.CategorySpend
		wantName string
		wantOK   bool
	}{
		{
			name:   "empty",
			spend:  nil,
			wantOK: false,
		},
		{
			name:     "single category",
			spend:    []storage.CategorySpend{{Name: "Food", TotalCents: 500}},
			wantName: "Food",
			wantOK:   true,
		},
		{
			name: "largest wins",
			spend: []storage.CategorySpend{
				{Name: "Food", TotalCents: 500},
				{Name: "Transport", TotalCents: 900},
				{Name: "Fun", TotalCents: 200},
			},
			wantName: "Transport",
			wantOK:   true,
		},
		{
			name: "tie keeps first",
			spend: []storage.CategorySpend{
				{Name: "Food", TotalCents: 500},
				{Name: "Transport", TotalCents: 500},
			},
			wantName: "Food",
			wantOK:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := topCategory(tt.spend)
			if ok != tt.wantOK {
				t.Fatalf("topCategory() ok = %v, want %v", ok, tt.wantOK)
			}
			if name != tt.wantName {
				t.Errorf("topCategory() = %v, want %v", name, tt.wantName)
			}
		})
	}
}

func TestPredictFromDaily(t *testing.T) {
	t.Run("insufficient history", func(t *testing.T) {
		daily := []storage.DailyTotal{
			{Date: "2025-03-01", TotalCents: 1000},
			{Date: "2025-03-02", TotalCents: 2000},
		}
		got := predictFromDaily(daily, 30)
		if got.Predicted.Cents != 0 {
			t.Errorf("Predicted = %v, want 0", got.Predicted.Cents)
		}
		if got.Confidence != "low" {
			t.Errorf("Confidence = %v, want low", got.Confidence)
		}
		if got.Message != "Need more data for accurate predictions" {
			t.Errorf("Message = %q", got.Message)
		}
	})

	t.Run("mean of recent days times horizon", func(t *testing.T) {
		daily := []storage.DailyTotal{
			{Date: "2025-03-01", TotalCents: 1000},
			{Date: "2025-03-02", TotalCents: 2000},
			{Date: "2025-03-03", TotalCents: 3000},
		}
		got := predictFromDaily(daily, 30)
		if want := int64(60000); got.Predicted.Cents != want {
			t.Errorf("Predicted = %v, want %v", got.Predicted.Cents, want)
		}
		if got.Confidence != "medium" {
			t.Errorf("Confidence = %v, want medium", got.Confidence)
		}
		if !strings.Contains(got.Message, "next 30 days") {
			t.Errorf("Message = %q, want mention of the horizon", got.Message)
		}
	})

	t.Run("only last seven days count", func(t *testing.T) {
		daily := make([]storage.DailyTotal, 0, 10)
		for i := 0; i < 3; i++ {
			daily = append(daily, storage.DailyTotal{Date: "2025-02-0" + string(rune('1'+i)), TotalCents: 99999})
		}
		for i := 0; i < 7; i++ {
			daily = append(daily, storage.DailyTotal{Date: "2025-03-0" + string(rune('1'+i)), TotalCents: 700})
		}
		got := predictFromDaily(daily, 7)
		if want := int64(4900); got.Predicted.Cents != want {
			t.Errorf("Predicted = %v, want %v", got.Predicted.Cents, want)
		}
	})
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name         string
		incomeCents  int64
		expenseCents int64
		want         float64
	}{
		{"zero income", 0, 5000, 0},
		{"half saved", 10000, 5000, 50},
		{"overspent goes negative", 10000, 15000, -50},
		{"nothing spent", 10000, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := savingsRate(tt.incomeCents, tt.expenseCents); got != tt.want {
				t.Errorf("savingsRate(%d, %d) = %v, want %v", tt.incomeCents, tt.expenseCents, got, tt.want)
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	if got := weekdayName(0); got != "Sunday" {
		t.Errorf("weekdayName(0) = %v, want Sunday", got)
	}
	if got := weekdayName(6); got != "Saturday" {
		t.Errorf("weekdayName(6) = %v, want Saturday", got)
	}
	if got := weekdayName(7); got != "Unknown" {
		t.Errorf("weekdayName(7) = %v, want Unknown", got)
	}
}
