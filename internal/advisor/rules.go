package advisor

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

var budgetTips = []string{
	"💡 Track every expense, even small ones!",
	"💡 Use 50/30/20: 50% needs, 30% wants, 20% savings",
	"💡 Set weekly limits for fun categories",
	"💡 Review spending weekly",
	"💡 Save before you spend!",
}

// RuleResponse matches the question against known intents in order and
// fills the answer from the snapshot. It always returns a non-empty
// string.
func RuleResponse(message string, snap Snapshot) string {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "save") || strings.Contains(m, "saving"):
		if snap.TotalIncome.Cents > 0 {
			suggested := core.Money{Cents: snap.TotalIncome.Cents / 5}
			return fmt.Sprintf("💡 Try saving 20%% of your income. With $%s income, aim for $%s this month. Even $10-20 a week helps!",
				snap.TotalIncome, suggested)
		}
		return "💡 Start with 20% of your income. Small amounts like $10-20 per week add up fast!"

	case strings.Contains(m, "spend") || strings.Contains(m, "spending") || strings.Contains(m, "too much"):
		if len(snap.CategorySpending) > 0 {
			top := snap.CategorySpending[0]
			for _, c := range snap.CategorySpending[1:] {
				if c.Amount.Cents > top.Amount.Cents {
					top = c
				}
			}
			var pct float64
			if snap.TotalExpenses.Cents > 0 {
				pct = float64(top.Amount.Cents) / float64(snap.TotalExpenses.Cents) * 100
			}
			return fmt.Sprintf("📊 Your biggest expense is %s at $%s (%.1f%% of spending). Try setting a weekly limit!",
				top.Name, top.Amount, pct)
		}
		return "📊 Track expenses for a week to see where your money goes!"

	case strings.Contains(m, "budget") || strings.Contains(m, "how much"):
		if snap.TotalIncome.Cents > 0 {
			suggested := core.Money{Cents: snap.TotalIncome.Cents / 5}
			return fmt.Sprintf("💰 Income: $%s, Expenses: $%s, Left: $%s. Try saving $%s!",
				snap.TotalIncome, snap.TotalExpenses, snap.RemainingBudget, suggested)
		}
		return "💰 Add your income first, then set category budgets. Try 50% needs, 30% wants, 20% savings!"

	case strings.Contains(m, "eat") && strings.Contains(m, "out"):
		if food := snap.categoryCents("Food"); food > 20000 {
			return fmt.Sprintf("🍔 You've spent $%s on food. Try cooking at home more - you could save $50-100/month!",
				core.Money{Cents: food})
		}
		return "🍔 Eating out adds up fast! Limit it to 2-3 times a week and cook more at home."

	case strings.Contains(m, "tip") || strings.Contains(m, "advice") || strings.Contains(m, "help"):
		return budgetTips[rand.Intn(len(budgetTips))]
	}

	return "🤖 I can help with budgeting! Ask about saving, spending habits, or budgeting tips."
}
