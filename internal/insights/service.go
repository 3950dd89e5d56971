// Package insights is the aggregation engine: period-windowed, read-only
// derivations over the ledger store. Every figure is computed fresh from
// current store contents; nothing is cached or incrementally maintained.
package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// Summary computes the period-windowed spending summary. Income is
// all-time while expenses honor the window; remaining budget inherits
// that asymmetry and downstream consumers (advice context, overview)
// depend on it.
func (s *Service) Summary(ctx context.Context, period string, now time.Time) (Summary, error) {
	incomeCents, err := s.store.TotalIncomeCents(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summary income: %w", err)
	}

	start := storage.FormatDate(core.ResolveWindow(period, now))
	spend, err := s.store.CategorySpendSince(ctx, start)
	if err != nil {
		return Summary{}, fmt.Errorf("summary spend: %w", err)
	}

	summary := Summary{
		TotalIncome:      core.Money{Cents: incomeCents},
		CategorySpending: make(map[string]core.Money, len(spend)),
		Period:           period,
	}

	var expenseCents int64
	for _, cs := range spend {
		summary.CategorySpending[cs.Name] = core.Money{Cents: cs.TotalCents}
		expenseCents += cs.TotalCents
	}
	summary.TotalExpenses = core.Money{Cents: expenseCents}
	summary.RemainingBudget = core.Money{Cents: incomeCents - expenseCents}

	if name, ok := topCategory(spend); ok {
		summary.TopCategory = &name
	}

	budgets, err := s.store.CategoryBudgets(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summary budgets: %w", err)
	}
	summary.CategoryBudgets = make(map[string]core.Money, len(budgets))
	for name, cents := range budgets {
		summary.CategoryBudgets[name] = core.Money{Cents: cents}
	}

	return summary, nil
}

// Overview computes the net-worth view. Net worth uses all-time totals
// for every component; available cash subtracts only month-to-date
// expenses from all-time income.
func (s *Service) Overview(ctx context.Context, now time.Time) (Overview, error) {
	incomeCents, err := s.store.TotalIncomeCents(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("overview income: %w", err)
	}
	expenseCents, err := s.store.TotalExpensesCents(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("overview expenses: %w", err)
	}

	monthStart := storage.FormatDate(core.ResolveWindow(core.PeriodMonth, now))
	monthExpenseCents, err := s.store.TotalExpensesCentsSince(ctx, monthStart)
	if err != nil {
		return Overview{}, fmt.Errorf("overview month expenses: %w", err)
	}

	investmentCents, err := s.store.SumInvestmentsCurrentCents(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("overview investments: %w", err)
	}
	savingsCents, err := s.store.SumGoalsCurrentCents(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("overview savings: %w", err)
	}
	debtCents, err := s.store.SumDebtsRemainingCents(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("overview debts: %w", err)
	}

	return Overview{
		TotalIncome:      core.Money{Cents: incomeCents},
		TotalExpenses:    core.Money{Cents: expenseCents},
		TotalInvestments: core.Money{Cents: investmentCents},
		TotalSavings:     core.Money{Cents: savingsCents},
		TotalDebts:       core.Money{Cents: debtCents},
		NetWorth:         core.Money{Cents: incomeCents - expenseCents + investmentCents + savingsCents - debtCents},
		AvailableCash:    core.Money{Cents: incomeCents - monthExpenseCents},
	}, nil
}

// BudgetAlerts evaluates every budget-limited category against its
// month-to-date spend. The window is fixed to the current calendar month
// regardless of any period argument elsewhere.
func (s *Service) BudgetAlerts(ctx context.Context, now time.Time) ([]Alert, error) {
	monthStart := storage.FormatDate(core.ResolveWindow(core.PeriodMonth, now))
	utilization, err := s.store.BudgetUtilizationSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("alerts utilization: %w", err)
	}
	return buildAlerts(utilization), nil
}

// Trends returns daily expense totals and per-category totals over the
// period's smoothing window.
func (s *Service) Trends(ctx context.Context, period string, now time.Time) (Trends, error) {
	days := core.WindowDays(period)
	start := storage.FormatDate(now.AddDate(0, 0, -days))

	daily, err := s.store.DailyTotalsSince(ctx, start)
	if err != nil {
		return Trends{}, fmt.Errorf("trends daily totals: %w", err)
	}
	breakdown, err := s.store.CategoryBreakdownSince(ctx, start)
	if err != nil {
		return Trends{}, fmt.Errorf("trends category breakdown: %w", err)
	}

	trends := Trends{
		DailyTotals:    make([]DailyPoint, 0, len(daily)),
		CategoryTrends: make([]CategoryTrend, 0, len(breakdown)),
		Period:         period,
	}
	for _, d := range daily {
		trends.DailyTotals = append(trends.DailyTotals, DailyPoint{
			Date:   d.Date,
			Amount: core.Money{Cents: d.TotalCents},
		})
	}
	for _, cb := range breakdown {
		trends.CategoryTrends = append(trends.CategoryTrends, CategoryTrend{
			Name:  cb.Name,
			Total: core.Money{Cents: cb.TotalCents},
			Count: cb.Count,
		})
	}
	return trends, nil
}

// MonthlyReport aggregates income and expenses for an exact calendar
// month ("2006-01" token). Unlike the rolling windows, this is a closed
// historical range.
func (s *Service) MonthlyReport(ctx context.Context, month string) (MonthlyReport, error) {
	incomeCents, err := s.store.MonthIncomeCents(ctx, month)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("monthly report income: %w", err)
	}
	breakdown, err := s.store.MonthCategoryBreakdown(ctx, month)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("monthly report breakdown: %w", err)
	}

	report := MonthlyReport{
		Month:             month,
		Income:            core.Money{Cents: incomeCents},
		CategoryBreakdown: make([]CategoryTrend, 0, len(breakdown)),
	}
	var expenseCents int64
	for _, cb := range breakdown {
		expenseCents += cb.TotalCents
		report.CategoryBreakdown = append(report.CategoryBreakdown, CategoryTrend{
			Name:  cb.Name,
			Total: core.Money{Cents: cb.TotalCents},
			Count: cb.Count,
		})
	}
	report.Expenses = core.Money{Cents: expenseCents}
	report.Savings = core.Money{Cents: incomeCents - expenseCents}
	report.SavingsRate = savingsRate(incomeCents, expenseCents)

	return report, nil
}

// SpendingPatterns analyzes a fixed trailing 30-day window: day-of-week
// histogram, single-transaction stats, and the top category.
func (s *Service) SpendingPatterns(ctx context.Context, now time.Time) (SpendingPatterns, error) {
	start := storage.FormatDate(now.AddDate(0, 0, -30))

	dayStats, err := s.store.DayOfWeekTotalsSince(ctx, start)
	if err != nil {
		return SpendingPatterns{}, fmt.Errorf("patterns day of week: %w", err)
	}
	txStats, err := s.store.TransactionStatsSince(ctx, start)
	if err != nil {
		return SpendingPatterns{}, fmt.Errorf("patterns transaction stats: %w", err)
	}
	top, err := s.store.TopCategorySince(ctx, start)
	if err != nil {
		return SpendingPatterns{}, fmt.Errorf("patterns top category: %w", err)
	}

	patterns := SpendingPatterns{
		DayPatterns:        make([]DayPattern, 0, len(dayStats)),
		AverageTransaction: core.Money{Cents: txStats.AvgCents},
		MinTransaction:     core.Money{Cents: txStats.MinCents},
		MaxTransaction:     core.Money{Cents: txStats.MaxCents},
	}
	for _, ds := range dayStats {
		patterns.DayPatterns = append(patterns.DayPatterns, DayPattern{
			Day:   weekdayName(ds.Weekday),
			Total: core.Money{Cents: ds.TotalCents},
			Count: ds.Count,
		})
	}
	if top != nil {
		patterns.TopCategory = &TopCategory{
			Name:  top.Name,
			Total: core.Money{Cents: top.TotalCents},
		}
	}
	return patterns, nil
}

// PredictExpenses projects spend for the period's horizon from a doubled
// smoothing window of daily totals.
func (s *Service) PredictExpenses(ctx context.Context, period string, now time.Time) (Prediction, error) {
	days := core.WindowDays(period)
	start := storage.FormatDate(now.AddDate(0, 0, -days*2))

	daily, err := s.store.DailyTotalsSince(ctx, start)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict daily totals: %w", err)
	}
	return predictFromDaily(daily, days), nil
}
