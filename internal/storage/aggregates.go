package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"
)

// Aggregate row shapes consumed by the insights engine. Each mirrors one
// grouped read; the engine never touches raw tables.
type (
	// CategorySpend is a summed spend per category within a window.
	// Only categorized expenses appear (inner join): the summary's
	// per-category view ignores orphaned expenses.
	CategorySpend struct {
		Name       string
		TotalCents int64
	}

	// CategoryBreakdown adds a transaction count, used by trends and
	// the monthly report.
	CategoryBreakdown struct {
		Name       string
		TotalCents int64
		Count      int64
	}

	// CategoryUtilization pairs a category's limit with its
	// month-to-date spend. Every category appears (left join), spend
	// defaulting to zero.
	CategoryUtilization struct {
		Name       string
		LimitCents int64
		SpentCents int64
	}

	// DailyTotal is one calendar day's summed spend.
	DailyTotal struct {
		Date       string
		TotalCents int64
	}

	// DayOfWeekStat buckets spend by weekday (0 = Sunday, SQLite's %w).
	DayOfWeekStat struct {
		Weekday    int
		TotalCents int64
		Count      int64
	}

	// TransactionStats holds single-transaction statistics over a
	// window. Present is false when the window has no expenses.
	TransactionStats struct {
		AvgCents int64
		MinCents int64
		MaxCents int64
		Present  bool
	}
)

// CategorySpendSince groups categorized expense totals by category from
// the start day onward. Order follows category ID, so ties in downstream
// max-scans resolve to the earliest-created category.
func (s *Store) CategorySpendSince(ctx context.Context, start string) ([]CategorySpend, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.name, SUM(e.amount_cents)
		 FROM expenses e
		 JOIN categories c ON e.category_id = c.id
		 WHERE date(e.date_added) >= ?
		 GROUP BY c.id, c.name
		 ORDER BY c.id`, start)
	if err != nil {
		return nil, fmt.Errorf("category spend since %s: %w", start, err)
	}
	defer rows.Close()

	spend := make([]CategorySpend, 0)
	for rows.Next() {
		var cs CategorySpend
		if err := rows.Scan(&cs.Name, &cs.TotalCents); err != nil {
			return nil, fmt.Errorf("scan category spend: %w", err)
		}
		spend = append(spend, cs)
	}
	return spend, rows.Err()
}

// CategoryBreakdownSince groups totals and counts by category, largest
// total first.
func (s *Store) CategoryBreakdownSince(ctx context.Context, start string) ([]CategoryBreakdown, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.name, SUM(e.amount_cents), COUNT(e.id)
		 FROM expenses e
		 JOIN categories c ON e.category_id = c.id
		 WHERE date(e.date_added) >= ?
		 GROUP BY c.id, c.name
		 ORDER BY SUM(e.amount_cents) DESC`, start)
	if err != nil {
		return nil, fmt.Errorf("category breakdown since %s: %w", start, err)
	}
	defer rows.Close()

	return scanBreakdown(rows)
}

// MonthCategoryBreakdown groups totals and counts by category for an
// exact calendar month ("2006-01" token), not a rolling window.
func (s *Store) MonthCategoryBreakdown(ctx context.Context, month string) ([]CategoryBreakdown, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.name, SUM(e.amount_cents), COUNT(e.id)
		 FROM expenses e
		 JOIN categories c ON e.category_id = c.id
		 WHERE strftime('%Y-%m', e.date_added) = ?
		 GROUP BY c.id, c.name`, month)
	if err != nil {
		return nil, fmt.Errorf("month category breakdown %s: %w", month, err)
	}
	defer rows.Close()

	return scanBreakdown(rows)
}

func scanBreakdown(rows *sql.Rows) ([]CategoryBreakdown, error) {
	breakdown := make([]CategoryBreakdown, 0)
	for rows.Next() {
		var cb CategoryBreakdown
		if err := rows.Scan(&cb.Name, &cb.TotalCents, &cb.Count); err != nil {
			return nil, fmt.Errorf("scan category breakdown: %w", err)
		}
		breakdown = append(breakdown, cb)
	}
	return breakdown, rows.Err()
}

// DailyTotalsSince groups expense totals by calendar day, oldest first.
func (s *Store) DailyTotalsSince(ctx context.Context, start string) ([]DailyTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date(date_added), SUM(amount_cents)
		 FROM expenses
		 WHERE date(date_added) >= ?
		 GROUP BY date(date_added)
		 ORDER BY date(date_added)`, start)
	if err != nil {
		return nil, fmt.Errorf("daily totals since %s: %w", start, err)
	}
	defer rows.Close()

	totals := make([]DailyTotal, 0)
	for rows.Next() {
		var dt DailyTotal
		if err := rows.Scan(&dt.Date, &dt.TotalCents); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		totals = append(totals, dt)
	}
	return totals, rows.Err()
}

// BudgetUtilizationSince reports month-to-date spend against every
// category's limit. The left join keeps zero-spend categories in the
// result.
func (s *Store) BudgetUtilizationSince(ctx context.Context, start string) ([]CategoryUtilization, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.name, c.budget_limit_cents, COALESCE(SUM(e.amount_cents), 0)
		 FROM categories c
		 LEFT JOIN expenses e ON c.id = e.category_id AND date(e.date_added) >= ?
		 GROUP BY c.id, c.name, c.budget_limit_cents
		 ORDER BY c.id`, start)
	if err != nil {
		return nil, fmt.Errorf("budget utilization since %s: %w", start, err)
	}
	defer rows.Close()

	utilization := make([]CategoryUtilization, 0)
	for rows.Next() {
		var cu CategoryUtilization
		if err := rows.Scan(&cu.Name, &cu.LimitCents, &cu.SpentCents); err != nil {
			return nil, fmt.Errorf("scan budget utilization: %w", err)
		}
		utilization = append(utilization, cu)
	}
	return utilization, rows.Err()
}

// DayOfWeekTotalsSince buckets spend by weekday over the window.
func (s *Store) DayOfWeekTotalsSince(ctx context.Context, start string) ([]DayOfWeekStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT CAST(strftime('%w', date_added) AS INTEGER), SUM(amount_cents), COUNT(*)
		 FROM expenses
		 WHERE date(date_added) >= ?
		 GROUP BY strftime('%w', date_added)
		 ORDER BY strftime('%w', date_added)`, start)
	if err != nil {
		return nil, fmt.Errorf("day of week totals since %s: %w", start, err)
	}
	defer rows.Close()

	stats := make([]DayOfWeekStat, 0)
	for rows.Next() {
		var ds DayOfWeekStat
		if err := rows.Scan(&ds.Weekday, &ds.TotalCents, &ds.Count); err != nil {
			return nil, fmt.Errorf("scan day of week stat: %w", err)
		}
		stats = append(stats, ds)
	}
	return stats, rows.Err()
}

// TransactionStatsSince computes avg/min/max single-transaction amounts
// over the window.
func (s *Store) TransactionStatsSince(ctx context.Context, start string) (TransactionStats, error) {
	var (
		avg sql.NullFloat64
		min sql.NullInt64
		max sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT AVG(amount_cents), MIN(amount_cents), MAX(amount_cents)
		 FROM expenses
		 WHERE date(date_added) >= ?`, start).Scan(&avg, &min, &max)
	if err != nil {
		return TransactionStats{}, fmt.Errorf("transaction stats since %s: %w", start, err)
	}
	if !avg.Valid {
		return TransactionStats{}, nil
	}
	return TransactionStats{
		AvgCents: int64(math.Round(avg.Float64)),
		MinCents: min.Int64,
		MaxCents: max.Int64,
		Present:  true,
	}, nil
}

// TopCategorySince returns the single highest-spend category over the
// window, or nil when no categorized expenses exist.
func (s *Store) TopCategorySince(ctx context.Context, start string) (*CategorySpend, error) {
	var cs CategorySpend
	err := s.db.QueryRowContext(ctx,
		`SELECT c.name, SUM(e.amount_cents)
		 FROM expenses e
		 JOIN categories c ON e.category_id = c.id
		 WHERE date(e.date_added) >= ?
		 GROUP BY c.id, c.name
		 ORDER BY SUM(e.amount_cents) DESC
		 LIMIT 1`, start).Scan(&cs.Name, &cs.TotalCents)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("top category since %s: %w", start, err)
	}
	return &cs, nil
}

// SumGoalsCurrentCents totals the current amount across savings goals.
func (s *Store) SumGoalsCurrentCents(ctx context.Context) (int64, error) {
	total, err := scanCents(s.db.QueryRowContext(ctx, `SELECT SUM(current_amount_cents) FROM savings_goals`))
	if err != nil {
		return 0, fmt.Errorf("sum goal amounts: %w", err)
	}
	return total, nil
}

// SumInvestmentsCurrentCents totals the current value across investments.
func (s *Store) SumInvestmentsCurrentCents(ctx context.Context) (int64, error) {
	total, err := scanCents(s.db.QueryRowContext(ctx, `SELECT SUM(current_value_cents) FROM investments`))
	if err != nil {
		return 0, fmt.Errorf("sum investment values: %w", err)
	}
	return total, nil
}

// SumDebtsRemainingCents totals the remaining amount across debts.
func (s *Store) SumDebtsRemainingCents(ctx context.Context) (int64, error) {
	total, err := scanCents(s.db.QueryRowContext(ctx, `SELECT SUM(remaining_amount_cents) FROM debts`))
	if err != nil {
		return 0, fmt.Errorf("sum debt amounts: %w", err)
	}
	return total, nil
}
