// Package advisor answers budgeting questions. When an OpenAI key is
// configured it asks the model with the user's finances as context;
// without a key, or whenever the model call fails, it falls back to
// deterministic rule-based answers so the endpoint always responds.
package advisor

import (
	"fmt"
	"strings"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// CategoryAmount is one category's spend within a snapshot, ordered by
// total descending.
type CategoryAmount struct {
	Name   string
	Amount core.Money
}

// GoalProgress is the slice of a savings goal the advisor cares about.
type GoalProgress struct {
	Name    string
	Current core.Money
	Target  core.Money
}

// Snapshot is the financial context handed to the advisor. Handlers
// build it from the month summary plus planning totals; the advisor
// never touches storage itself.
type Snapshot struct {
	TotalIncome      core.Money
	TotalExpenses    core.Money
	RemainingBudget  core.Money
	CategorySpending []CategoryAmount
	TopCategory      *string
	Goals            []GoalProgress
	TotalDebts       core.Money
	NetWorth         core.Money
}

// categoryCents returns the spend recorded for an exact category name,
// or 0 when the snapshot has none.
func (s Snapshot) categoryCents(name string) int64 {
	for _, c := range s.CategorySpending {
		if c.Name == name {
			return c.Amount.Cents
		}
	}
	return 0
}

// contextBlock renders the snapshot as the system message injected
// before the user's question.
func contextBlock(s Snapshot) string {
	var b strings.Builder
	b.WriteString("User's finances:\n")
	fmt.Fprintf(&b, "- Income: $%s\n", s.TotalIncome)
	fmt.Fprintf(&b, "- Expenses: $%s\n", s.TotalExpenses)
	fmt.Fprintf(&b, "- Remaining: $%s\n", s.RemainingBudget)
	b.WriteString("- Spending:\n")
	if len(s.CategorySpending) == 0 {
		b.WriteString("  - No expenses yet\n")
	} else {
		for _, c := range s.CategorySpending {
			fmt.Fprintf(&b, "  - %s: $%s\n", c.Name, c.Amount)
		}
	}
	top := "N/A"
	if s.TopCategory != nil {
		top = *s.TopCategory
	}
	fmt.Fprintf(&b, "- Top Category: %s\n", top)
	goals := make([]string, 0, len(s.Goals))
	for _, g := range s.Goals {
		goals = append(goals, fmt.Sprintf("%s: $%s of $%s", g.Name, g.Current, g.Target))
	}
	fmt.Fprintf(&b, "- Goals: [%s]\n", strings.Join(goals, ", "))
	return b.String()
}
