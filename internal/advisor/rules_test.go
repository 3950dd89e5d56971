package advisor

import (
	"strings"
	"testing"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

func TestRuleResponseSaving(t *testing.T) {
	snap := Snapshot{TotalIncome: core.Money{Cents: 100000}}
	got := RuleResponse("How can I save money?", snap)
	if !strings.Contains(got, "200.00") {
		t.Errorf("RuleResponse() = %q, want suggested savings of 200.00", got)
	}
	if !strings.Contains(got, "1000.00") {
		t.Errorf("RuleResponse() = %q, want income of 1000.00", got)
	}
}

func TestRuleResponseSavingNoIncome(t *testing.T) {
	got := RuleResponse("how do I start saving", Snapshot{})
	if !strings.Contains(got, "Start with 20% of your income") {
		t.Errorf("RuleResponse() = %q", got)
	}
}

func TestRuleResponseSpending(t *testing.T) {
	snap := Snapshot{
		TotalExpenses: core.Money{Cents: 20000},
		CategorySpending: []CategoryAmount{
			{Name: "Food", Amount: core.Money{Cents: 15000}},
			{Name: "Fun", Amount: core.Money{Cents: 5000}},
		},
	}
	got := RuleResponse("am I spending too much?", snap)
	if !strings.Contains(got, "Food") {
		t.Errorf("RuleResponse() = %q, want biggest category Food", got)
	}
	if !strings.Contains(got, "75.0%") {
		t.Errorf("RuleResponse() = %q, want share of 75.0%%", got)
	}
}

func TestRuleResponseSpendingEmpty(t *testing.T) {
	got := RuleResponse("where does my money go, I spend a lot", Snapshot{})
	if !strings.Contains(got, "Track expenses for a week") {
		t.Errorf("RuleResponse() = %q", got)
	}
}

func TestRuleResponseBudget(t *testing.T) {
	snap := Snapshot{
		TotalIncome:     core.Money{Cents: 50000},
		TotalExpenses:   core.Money{Cents: 12000},
		RemainingBudget: core.Money{Cents: 38000},
	}
	got := RuleResponse("what's my budget?", snap)
	for _, want := range []string{"500.00", "120.00", "380.00", "100.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("RuleResponse() = %q, want it to contain %q", got, want)
		}
	}
}

func TestRuleResponseEatingOut(t *testing.T) {
	snap := Snapshot{
		CategorySpending: []CategoryAmount{{Name: "Food", Amount: core.Money{Cents: 25000}}},
	}
	got := RuleResponse("should I eat out less?", snap)
	if !strings.Contains(got, "250.00") {
		t.Errorf("RuleResponse() = %q, want food spend of 250.00", got)
	}

	got = RuleResponse("should I eat out less?", Snapshot{})
	if !strings.Contains(got, "Eating out adds up fast") {
		t.Errorf("RuleResponse() = %q", got)
	}
}

func TestRuleResponseTips(t *testing.T) {
	got := RuleResponse("any tips?", Snapshot{})
	if !strings.HasPrefix(got, "💡") {
		t.Errorf("RuleResponse() = %q, want a tip", got)
	}
}

func TestRuleResponseGeneric(t *testing.T) {
	got := RuleResponse("lol", Snapshot{})
	if !strings.Contains(got, "I can help with budgeting") {
		t.Errorf("RuleResponse() = %q", got)
	}
}

func TestRuleResponseNeverEmpty(t *testing.T) {
	messages := []string{"", "save", "spend", "budget", "eat out", "help", "??!"}
	for _, m := range messages {
		if got := RuleResponse(m, Snapshot{}); got == "" {
			t.Errorf("RuleResponse(%q) returned empty string", m)
		}
	}
}

func TestFallbackRecommendations(t *testing.T) {
	top := "Food"
	snap := Snapshot{
		TotalIncome:   core.Money{Cents: 100000},
		TotalExpenses: core.Money{Cents: 90000},
		TopCategory:   &top,
		TotalDebts:    core.Money{Cents: 5000},
	}
	recs := FallbackRecommendations(snap)
	if len(recs) != 3 {
		t.Fatalf("FallbackRecommendations() returned %d, want 3", len(recs))
	}
	if recs[0].Title != "Reduce Spending" {
		t.Errorf("recs[0].Title = %v", recs[0].Title)
	}
	if !strings.Contains(recs[0].Description, "90.0%") {
		t.Errorf("recs[0].Description = %q", recs[0].Description)
	}
	if recs[1].Title != "Review Food Spending" {
		t.Errorf("recs[1].Title = %v", recs[1].Title)
	}
	if recs[2].Title != "Pay Down Debt" {
		t.Errorf("recs[2].Title = %v", recs[2].Title)
	}
}

func TestFallbackRecommendationsFreshLedger(t *testing.T) {
	recs := FallbackRecommendations(Snapshot{})
	if len(recs) != 0 {
		t.Errorf("FallbackRecommendations() returned %d, want 0", len(recs))
	}
}
