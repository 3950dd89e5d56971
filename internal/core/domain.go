package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

type (
	// Frequency tags how often a recurring expense template fires.
	Frequency string

	Income struct {
		ID        int64     `json:"id"`
		Amount    Money     `json:"amount"`
		Source    string    `json:"source"`
		Period    string    `json:"period"`
		DateAdded time.Time `json:"date_added"`
	}

	Category struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		BudgetLimit Money  `json:"budget_limit"`
		Color       string `json:"color"`
	}

	// Expense keeps a weak reference to its category: deleting the
	// category leaves the expense in place with a nil CategoryID join.
	Expense struct {
		ID          int64     `json:"id"`
		Amount      Money     `json:"amount"`
		CategoryID  *int64    `json:"category_id"`
		Description string    `json:"description"`
		DateAdded   time.Time `json:"date_added"`
	}

	SavingsGoal struct {
		ID            int64     `json:"id"`
		Name          string    `json:"name"`
		TargetAmount  Money     `json:"target_amount"`
		CurrentAmount Money     `json:"current_amount"`
		Deadline      string    `json:"deadline,omitempty"`
		Description   string    `json:"description"`
		CreatedAt     time.Time `json:"created_at"`
	}

	Investment struct {
		ID           int64     `json:"id"`
		Name         string    `json:"name"`
		Type         string    `json:"type"`
		Amount       Money     `json:"amount"`
		PurchaseDate string    `json:"purchase_date,omitempty"`
		CurrentValue Money     `json:"current_value"`
		Notes        string    `json:"notes"`
		CreatedAt    time.Time `json:"created_at"`
	}

	Debt struct {
		ID              int64     `json:"id"`
		Name            string    `json:"name"`
		TotalAmount     Money     `json:"total_amount"`
		RemainingAmount Money     `json:"remaining_amount"`
		InterestRate    float64   `json:"interest_rate"`
		DueDate         string    `json:"due_date,omitempty"`
		Description     string    `json:"description"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecurringExpense struct {
		ID         int64     `json:"id"`
		Name       string    `json:"name"`
		Amount     Money     `json:"amount"`
		CategoryID *int64    `json:"category_id"`
		Frequency  Frequency `json:"frequency"`
		NextDue    time.Time `json:"next_due_date"`
		Active     bool      `json:"is_active"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty name")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrDuplicateName    = errors.New("name already exists")
	ErrNotFound         = errors.New("not found")
)

// StarterCategories is the seeded category set every fresh ledger starts
// with. The categorizer only ever resolves to one of these names.
var StarterCategories = []Category{
	{Name: "Food", BudgetLimit: Money{Cents: 20000}, Color: "#EF4444"},
	{Name: "Transport", BudgetLimit: Money{Cents: 10000}, Color: "#3B82F6"},
	{Name: "Fun", BudgetLimit: Money{Cents: 15000}, Color: "#10B981"},
	{Name: "Shopping", BudgetLimit: Money{Cents: 10000}, Color: "#F59E0B"},
	{Name: "Other", BudgetLimit: Money{Cents: 5000}, Color: "#8B5CF6"},
}

// IsStarterCategory reports whether name matches one of the seeded
// categories, ignoring case.
func IsStarterCategory(name string) bool {
	for _, c := range StarterCategories {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (f Frequency) Validate() error {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return nil
	default:
		return ErrInvalidFrequency
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (i Income) Validate() error {
	if err := i.Amount.Validate(); err != nil {
		return err
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}
	if c.BudgetLimit.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if err := g.TargetAmount.Validate(); err != nil {
		return err
	}
	if g.CurrentAmount.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (v Investment) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return ErrEmptyName
	}
	if err := v.Amount.Validate(); err != nil {
		return err
	}
	if v.CurrentValue.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (d Debt) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if err := d.TotalAmount.Validate(); err != nil {
		return err
	}
	if d.RemainingAmount.Cents < 0 {
		return ErrInvalidAmount
	}
	if d.InterestRate < 0 {
		return errors.New("negative interest rate")
	}
	return nil
}

func (r RecurringExpense) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if err := r.Frequency.Validate(); err != nil {
		return err
	}
	if r.NextDue.IsZero() {
		return errors.New("next due date cannot be zero")
	}
	return nil
}
