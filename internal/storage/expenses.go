package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// ExpenseDetail is an expense joined with its category, if the category
// still exists. The reference is weak: a deleted category leaves the name
// and color nil.
type ExpenseDetail struct {
	core.Expense
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
}

// InsertExpense records an expense and returns its assigned ID.
func (s *Store) InsertExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (amount_cents, category_id, description) VALUES (?, ?, ?)`,
		e.Amount.Cents, nullableID(e.CategoryID), e.Description)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense last insert id: %w", err)
	}
	return id, nil
}

// GetExpense loads a single expense joined with its category, or
// core.ErrNotFound.
func (s *Store) GetExpense(ctx context.Context, id int64) (ExpenseDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.amount_cents, e.category_id, e.description, e.date_added,
		        c.name, c.color
		 FROM expenses e
		 LEFT JOIN categories c ON e.category_id = c.id
		 WHERE e.id = ?`, id)
	if err != nil {
		return ExpenseDetail{}, fmt.Errorf("get expense %d: %w", id, err)
	}
	defer rows.Close()

	details, err := scanExpenseDetails(rows)
	if err != nil {
		return ExpenseDetail{}, err
	}
	if len(details) == 0 {
		return ExpenseDetail{}, core.ErrNotFound
	}
	return details[0], nil
}

// DeleteExpense removes an expense record.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return nil
}

// ListExpensesSince returns expenses recorded on or after the start day,
// newest first, joined against categories.
func (s *Store) ListExpensesSince(ctx context.Context, start string) ([]ExpenseDetail, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.amount_cents, e.category_id, e.description, e.date_added,
		        c.name, c.color
		 FROM expenses e
		 LEFT JOIN categories c ON e.category_id = c.id
		 WHERE date(e.date_added) >= ?
		 ORDER BY e.date_added DESC`, start)
	if err != nil {
		return nil, fmt.Errorf("list expenses since %s: %w", start, err)
	}
	defer rows.Close()

	return scanExpenseDetails(rows)
}

func scanExpenseDetails(rows *sql.Rows) ([]ExpenseDetail, error) {
	expenses := make([]ExpenseDetail, 0)
	for rows.Next() {
		var (
			d          ExpenseDetail
			categoryID sql.NullInt64
			dateAdded  string
			name       sql.NullString
			color      sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Amount.Cents, &categoryID, &d.Description, &dateAdded, &name, &color); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if categoryID.Valid {
			id := categoryID.Int64
			d.CategoryID = &id
		}
		d.DateAdded = parseTimestamp(dateAdded)
		if name.Valid {
			d.CategoryName = &name.String
		}
		if color.Valid {
			d.CategoryColor = &color.String
		}
		expenses = append(expenses, d)
	}
	return expenses, rows.Err()
}

// TotalExpensesCentsSince sums expense amounts recorded on or after the
// start day, regardless of categorization.
func (s *Store) TotalExpensesCentsSince(ctx context.Context, start string) (int64, error) {
	total, err := scanCents(s.db.QueryRowContext(ctx,
		`SELECT SUM(amount_cents) FROM expenses WHERE date(date_added) >= ?`, start))
	if err != nil {
		return 0, fmt.Errorf("total expenses since %s: %w", start, err)
	}
	return total, nil
}

// TotalExpensesCents sums all expenses ever recorded.
func (s *Store) TotalExpensesCents(ctx context.Context) (int64, error) {
	total, err := scanCents(s.db.QueryRowContext(ctx, `SELECT SUM(amount_cents) FROM expenses`))
	if err != nil {
		return 0, fmt.Errorf("total expenses: %w", err)
	}
	return total, nil
}
