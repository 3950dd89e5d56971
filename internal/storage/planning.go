package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// Savings goals, investments and debts share the same simple shape:
// list newest first, insert, point-update one mutable column, delete.

func (s *Store) ListGoals(ctx context.Context) ([]core.SavingsGoal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, target_amount_cents, current_amount_cents, deadline, description, created_at
		 FROM savings_goals ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]core.SavingsGoal, 0)
	for rows.Next() {
		var (
			g         core.SavingsGoal
			deadline  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount.Cents, &g.CurrentAmount.Cents,
			&deadline, &g.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g.Deadline = deadline.String
		g.CreatedAt = parseTimestamp(createdAt)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) InsertGoal(ctx context.Context, g core.SavingsGoal) (core.SavingsGoal, error) {
	var deadline any
	if g.Deadline != "" {
		deadline = g.Deadline
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO savings_goals (name, target_amount_cents, current_amount_cents, deadline, description)
		 VALUES (?, ?, ?, ?, ?)`,
		g.Name, g.TargetAmount.Cents, g.CurrentAmount.Cents, deadline, g.Description)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("goal last insert id: %w", err)
	}
	g.ID = id
	return g, nil
}

// UpdateGoalCurrent sets the saved-so-far amount on a goal.
func (s *Store) UpdateGoalCurrent(ctx context.Context, id int64, currentCents int64) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE savings_goals SET current_amount_cents = ? WHERE id = ?`, currentCents, id); err != nil {
		return fmt.Errorf("update goal %d: %w", id, err)
	}
	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	return nil
}

func (s *Store) ListInvestments(ctx context.Context) ([]core.Investment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type, amount_cents, purchase_date, current_value_cents, notes, created_at
		 FROM investments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	investments := make([]core.Investment, 0)
	for rows.Next() {
		var (
			v            core.Investment
			purchaseDate sql.NullString
			createdAt    string
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Amount.Cents,
			&purchaseDate, &v.CurrentValue.Cents, &v.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		v.PurchaseDate = purchaseDate.String
		v.CreatedAt = parseTimestamp(createdAt)
		investments = append(investments, v)
	}
	return investments, rows.Err()
}

func (s *Store) InsertInvestment(ctx context.Context, v core.Investment) (core.Investment, error) {
	var purchaseDate any
	if v.PurchaseDate != "" {
		purchaseDate = v.PurchaseDate
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO investments (name, type, amount_cents, purchase_date, current_value_cents, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		v.Name, v.Type, v.Amount.Cents, purchaseDate, v.CurrentValue.Cents, v.Notes)
	if err != nil {
		return core.Investment{}, fmt.Errorf("insert investment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Investment{}, fmt.Errorf("investment last insert id: %w", err)
	}
	v.ID = id
	return v, nil
}

// UpdateInvestmentValue sets the mark-to-market value on an investment.
func (s *Store) UpdateInvestmentValue(ctx context.Context, id int64, valueCents int64) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE investments SET current_value_cents = ? WHERE id = ?`, valueCents, id); err != nil {
		return fmt.Errorf("update investment %d: %w", id, err)
	}
	return nil
}

func (s *Store) DeleteInvestment(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM investments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete investment %d: %w", id, err)
	}
	return nil
}

func (s *Store) ListDebts(ctx context.Context) ([]core.Debt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, total_amount_cents, remaining_amount_cents, interest_rate, due_date, description, created_at
		 FROM debts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()

	debts := make([]core.Debt, 0)
	for rows.Next() {
		var (
			d         core.Debt
			dueDate   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.TotalAmount.Cents, &d.RemainingAmount.Cents,
			&d.InterestRate, &dueDate, &d.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		d.DueDate = dueDate.String
		d.CreatedAt = parseTimestamp(createdAt)
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

func (s *Store) InsertDebt(ctx context.Context, d core.Debt) (core.Debt, error) {
	var dueDate any
	if d.DueDate != "" {
		dueDate = d.DueDate
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO debts (name, total_amount_cents, remaining_amount_cents, interest_rate, due_date, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.Name, d.TotalAmount.Cents, d.RemainingAmount.Cents, d.InterestRate, dueDate, d.Description)
	if err != nil {
		return core.Debt{}, fmt.Errorf("insert debt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Debt{}, fmt.Errorf("debt last insert id: %w", err)
	}
	d.ID = id
	return d, nil
}

// UpdateDebtRemaining sets the outstanding balance on a debt.
func (s *Store) UpdateDebtRemaining(ctx context.Context, id int64, remainingCents int64) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE debts SET remaining_amount_cents = ? WHERE id = ?`, remainingCents, id); err != nil {
		return fmt.Errorf("update debt %d: %w", id, err)
	}
	return nil
}

func (s *Store) DeleteDebt(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete debt %d: %w", id, err)
	}
	return nil
}
