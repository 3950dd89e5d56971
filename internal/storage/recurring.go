package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// RecurringDetail is a recurring template joined with its category, if
// the category still exists.
type RecurringDetail struct {
	core.RecurringExpense
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
}

// ListActiveRecurring returns active templates ordered by next due date.
// Soft-deleted templates (is_active = 0) never appear.
func (s *Store) ListActiveRecurring(ctx context.Context) ([]RecurringDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.name, r.amount_cents, r.category_id, r.frequency, r.next_due_date, r.is_active,
		        c.name, c.color
		 FROM recurring_expenses r
		 LEFT JOIN categories c ON r.category_id = c.id
		 WHERE r.is_active = 1
		 ORDER BY r.next_due_date`)
	if err != nil {
		return nil, fmt.Errorf("list active recurring: %w", err)
	}
	defer rows.Close()

	return scanRecurringDetails(rows)
}

// DueRecurring returns active templates whose next due date is on or
// before the given day.
func (s *Store) DueRecurring(ctx context.Context, day string) ([]RecurringDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.name, r.amount_cents, r.category_id, r.frequency, r.next_due_date, r.is_active,
		        c.name, c.color
		 FROM recurring_expenses r
		 LEFT JOIN categories c ON r.category_id = c.id
		 WHERE r.is_active = 1 AND r.next_due_date IS NOT NULL AND date(r.next_due_date) <= ?
		 ORDER BY r.next_due_date`, day)
	if err != nil {
		return nil, fmt.Errorf("due recurring on %s: %w", day, err)
	}
	defer rows.Close()

	return scanRecurringDetails(rows)
}

func scanRecurringDetails(rows *sql.Rows) ([]RecurringDetail, error) {
	templates := make([]RecurringDetail, 0)
	for rows.Next() {
		var (
			d          RecurringDetail
			categoryID sql.NullInt64
			nextDue    sql.NullString
			active     int64
			name       sql.NullString
			color      sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.Amount.Cents, &categoryID, &d.Frequency,
			&nextDue, &active, &name, &color); err != nil {
			return nil, fmt.Errorf("scan recurring: %w", err)
		}
		if categoryID.Valid {
			id := categoryID.Int64
			d.CategoryID = &id
		}
		if nextDue.Valid {
			if t, err := time.Parse(dateLayout, nextDue.String); err == nil {
				d.NextDue = t
			}
		}
		d.Active = active == 1
		if name.Valid {
			d.CategoryName = &name.String
		}
		if color.Valid {
			d.CategoryColor = &color.String
		}
		templates = append(templates, d)
	}
	return templates, rows.Err()
}

// InsertRecurring creates a recurring template. New templates are active.
func (s *Store) InsertRecurring(ctx context.Context, r core.RecurringExpense) (core.RecurringExpense, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO recurring_expenses (name, amount_cents, category_id, frequency, next_due_date)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Name, r.Amount.Cents, nullableID(r.CategoryID), string(r.Frequency), FormatDate(r.NextDue))
	if err != nil {
		return core.RecurringExpense{}, fmt.Errorf("insert recurring: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.RecurringExpense{}, fmt.Errorf("recurring last insert id: %w", err)
	}
	r.ID = id
	r.Active = true
	return r, nil
}

// DeactivateRecurring soft-deletes a template by clearing its active
// flag. The row stays for history; no hard delete exists.
func (s *Store) DeactivateRecurring(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE recurring_expenses SET is_active = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deactivate recurring %d: %w", id, err)
	}
	return nil
}

// AdvanceNextDue moves a template's next due date after it has been
// posted.
func (s *Store) AdvanceNextDue(ctx context.Context, id int64, next time.Time) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE recurring_expenses SET next_due_date = ? WHERE id = ?`, FormatDate(next), id); err != nil {
		return fmt.Errorf("advance recurring %d: %w", id, err)
	}
	return nil
}
