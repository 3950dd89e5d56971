package insights

import "github.com/BoyTiger-1/budget-ai/internal/core"

// Response shapes produced by the aggregation engine. Field names match
// what the front end consumes.

type Summary struct {
	TotalIncome      core.Money            `json:"total_income"`
	TotalExpenses    core.Money            `json:"total_expenses"`
	RemainingBudget  core.Money            `json:"remaining_budget"`
	CategorySpending map[string]core.Money `json:"category_spending"`
	CategoryBudgets  map[string]core.Money `json:"category_budgets"`
	TopCategory      *string               `json:"top_category"`
	Period           string                `json:"period"`
}

type Overview struct {
	TotalIncome      core.Money `json:"total_income"`
	TotalExpenses    core.Money `json:"total_expenses"`
	TotalInvestments core.Money `json:"total_investments"`
	TotalSavings     core.Money `json:"total_savings"`
	TotalDebts       core.Money `json:"total_debts"`
	NetWorth         core.Money `json:"net_worth"`
	AvailableCash    core.Money `json:"available_cash"`
}

type Alert struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type DailyPoint struct {
	Date   string     `json:"date"`
	Amount core.Money `json:"amount"`
}

type CategoryTrend struct {
	Name  string     `json:"name"`
	Total core.Money `json:"total"`
	Count int64      `json:"count"`
}

type Trends struct {
	DailyTotals    []DailyPoint    `json:"daily_totals"`
	CategoryTrends []CategoryTrend `json:"category_trends"`
	Period         string          `json:"period"`
}

type MonthlyReport struct {
	Month             string          `json:"month"`
	Income            core.Money      `json:"income"`
	Expenses          core.Money      `json:"expenses"`
	Savings           core.Money      `json:"savings"`
	CategoryBreakdown []CategoryTrend `json:"category_breakdown"`
	SavingsRate       float64         `json:"savings_rate"`
}

type DayPattern struct {
	Day   string     `json:"day"`
	Total core.Money `json:"total"`
	Count int64      `json:"count"`
}

type TopCategory struct {
	Name  string     `json:"name"`
	Total core.Money `json:"total"`
}

type SpendingPatterns struct {
	DayPatterns        []DayPattern `json:"day_patterns"`
	AverageTransaction core.Money   `json:"average_transaction"`
	MinTransaction     core.Money   `json:"min_transaction"`
	MaxTransaction     core.Money   `json:"max_transaction"`
	TopCategory        *TopCategory `json:"top_category"`
}

type Prediction struct {
	Predicted  core.Money `json:"predicted"`
	Confidence string     `json:"confidence"`
	Message    string     `json:"message"`
}
