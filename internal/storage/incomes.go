package storage

import (
	"context"
	"fmt"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// InsertIncome records an income entry and returns it with its assigned ID
// and timestamp.
func (s *Store) InsertIncome(ctx context.Context, in core.Income) (core.Income, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO income (amount_cents, source, period) VALUES (?, ?, ?)`,
		in.Amount.Cents, in.Source, in.Period)
	if err != nil {
		return core.Income{}, fmt.Errorf("insert income: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Income{}, fmt.Errorf("income last insert id: %w", err)
	}

	return s.GetIncome(ctx, id)
}

// GetIncome fetches a single income record by ID.
func (s *Store) GetIncome(ctx context.Context, id int64) (core.Income, error) {
	var (
		in        core.Income
		dateAdded string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, amount_cents, source, period, date_added FROM income WHERE id = ?`, id).
		Scan(&in.ID, &in.Amount.Cents, &in.Source, &in.Period, &dateAdded)
	if err != nil {
		return core.Income{}, fmt.Errorf("get income %d: %w", id, err)
	}
	in.DateAdded = parseTimestamp(dateAdded)
	return in, nil
}

// ListIncome returns all income records, newest first.
func (s *Store) ListIncome(ctx context.Context) ([]core.Income, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount_cents, source, period, date_added FROM income ORDER BY date_added DESC`)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	defer rows.Close()

	records := make([]core.Income, 0)
	for rows.Next() {
		var (
			in        core.Income
			dateAdded string
		)
		if err := rows.Scan(&in.ID, &in.Amount.Cents, &in.Source, &in.Period, &dateAdded); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		in.DateAdded = parseTimestamp(dateAdded)
		records = append(records, in)
	}
	return records, rows.Err()
}

// DeleteIncome removes an income record.
func (s *Store) DeleteIncome(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM income WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete income %d: %w", id, err)
	}
	return nil
}

// TotalIncomeCents sums all income ever recorded. Income is never
// period-filtered: the summary keeps it all-time on purpose.
func (s *Store) TotalIncomeCents(ctx context.Context) (int64, error) {
	total, err := scanCents(s.db.QueryRowContext(ctx, `SELECT SUM(amount_cents) FROM income`))
	if err != nil {
		return 0, fmt.Errorf("total income: %w", err)
	}
	return total, nil
}

// MonthIncomeCents sums income recorded in the given calendar month
// ("2006-01" token).
func (s *Store) MonthIncomeCents(ctx context.Context, month string) (int64, error) {
	total, err := scanCents(s.db.QueryRowContext(ctx,
		`SELECT SUM(amount_cents) FROM income WHERE strftime('%Y-%m', date_added) = ?`, month))
	if err != nil {
		return 0, fmt.Errorf("month income %s: %w", month, err)
	}
	return total, nil
}
