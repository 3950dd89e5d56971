package storage

import (
	"context"
	"fmt"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, budget_limit_cents, color FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]core.Category, 0)
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.BudgetLimit.Cents, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// InsertCategory creates a category. Names are unique; a duplicate returns
// core.ErrDuplicateName.
func (s *Store) InsertCategory(ctx context.Context, c core.Category) (core.Category, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, budget_limit_cents, color) VALUES (?, ?, ?)`,
		c.Name, c.BudgetLimit.Cents, c.Color)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Category{}, core.ErrDuplicateName
		}
		return core.Category{}, fmt.Errorf("insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Category{}, fmt.Errorf("category last insert id: %w", err)
	}
	c.ID = id
	return c, nil
}

// UpdateCategoryLimit changes a category's budget limit. Names are
// immutable after creation.
func (s *Store) UpdateCategoryLimit(ctx context.Context, id int64, limitCents int64) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE categories SET budget_limit_cents = ? WHERE id = ?`, limitCents, id); err != nil {
		return fmt.Errorf("update category %d limit: %w", id, err)
	}
	return nil
}

// CategoryBudgets returns the all-time budget-limit map keyed by name.
func (s *Store) CategoryBudgets(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, budget_limit_cents FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("category budgets: %w", err)
	}
	defer rows.Close()

	budgets := make(map[string]int64)
	for rows.Next() {
		var (
			name  string
			cents int64
		)
		if err := rows.Scan(&name, &cents); err != nil {
			return nil, fmt.Errorf("scan category budget: %w", err)
		}
		budgets[name] = cents
	}
	return budgets, rows.Err()
}

// CategoryExists reports whether a category with the given ID exists.
func (s *Store) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM categories WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("category exists %d: %w", id, err)
	}
	return n > 0, nil
}
