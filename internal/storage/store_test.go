package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

// epoch is a window start far enough back to cover every row a test
// inserts (date_added defaults to CURRENT_TIMESTAMP).
const epoch = "1970-01-01"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func categoryID(t *testing.T, store *Store, name string) int64 {
	t.Helper()
	categories, err := store.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	for _, c := range categories {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("category %q not found", name)
	return 0
}

func TestOpenSeedsStarterCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if len(categories) != len(core.StarterCategories) {
		t.Fatalf("len(categories) = %d, want %d", len(categories), len(core.StarterCategories))
	}

	budgets, err := store.CategoryBudgets(ctx)
	if err != nil {
		t.Fatalf("CategoryBudgets() error = %v", err)
	}
	for _, want := range core.StarterCategories {
		got, ok := budgets[want.Name]
		if !ok {
			t.Errorf("seeded category %q missing", want.Name)
			continue
		}
		if got != want.BudgetLimit.Cents {
			t.Errorf("%s budget = %d, want %d", want.Name, got, want.BudgetLimit.Cents)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer store.Close()

	categories, err := store.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if len(categories) != len(core.StarterCategories) {
		t.Errorf("len(categories) after reopen = %d, want %d", len(categories), len(core.StarterCategories))
	}
}

func TestInsertCategoryDuplicateName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.InsertCategory(context.Background(), core.Category{Name: "Food"})
	if !errors.Is(err, core.ErrDuplicateName) {
		t.Errorf("InsertCategory(Food) error = %v, want ErrDuplicateName", err)
	}
}

func TestIncomeLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in, err := store.InsertIncome(ctx, core.Income{
		Amount: core.Money{Cents: 50000},
		Source: "Allowance",
		Period: "monthly",
	})
	if err != nil {
		t.Fatalf("InsertIncome() error = %v", err)
	}
	if in.ID == 0 {
		t.Fatal("InsertIncome() returned zero ID")
	}

	total, err := store.TotalIncomeCents(ctx)
	if err != nil {
		t.Fatalf("TotalIncomeCents() error = %v", err)
	}
	if total != 50000 {
		t.Errorf("TotalIncomeCents() = %d, want 50000", total)
	}

	if err := store.DeleteIncome(ctx, in.ID); err != nil {
		t.Fatalf("DeleteIncome() error = %v", err)
	}
	total, err = store.TotalIncomeCents(ctx)
	if err != nil {
		t.Fatalf("TotalIncomeCents() error = %v", err)
	}
	if total != 0 {
		t.Errorf("TotalIncomeCents() after delete = %d, want 0", total)
	}
}

func TestExpenseLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	foodID := categoryID(t, store, "Food")

	id, err := store.InsertExpense(ctx, core.Expense{
		Amount:      core.Money{Cents: 1250},
		CategoryID:  &foodID,
		Description: "Pizza",
	})
	if err != nil {
		t.Fatalf("InsertExpense() error = %v", err)
	}

	detail, err := store.GetExpense(ctx, id)
	if err != nil {
		t.Fatalf("GetExpense() error = %v", err)
	}
	if detail.Amount.Cents != 1250 {
		t.Errorf("amount = %d, want 1250", detail.Amount.Cents)
	}
	if detail.CategoryName == nil || *detail.CategoryName != "Food" {
		t.Errorf("category name = %v, want Food", detail.CategoryName)
	}
	if detail.DateAdded.IsZero() {
		t.Error("date added not populated")
	}

	if err := store.DeleteExpense(ctx, id); err != nil {
		t.Fatalf("DeleteExpense() error = %v", err)
	}
	if _, err := store.GetExpense(ctx, id); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetExpense() after delete error = %v, want ErrNotFound", err)
	}
}

func TestUncategorizedExpenseSurvivesJoin(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertExpense(ctx, core.Expense{Amount: core.Money{Cents: 500}})
	if err != nil {
		t.Fatalf("InsertExpense() error = %v", err)
	}

	detail, err := store.GetExpense(ctx, id)
	if err != nil {
		t.Fatalf("GetExpense() error = %v", err)
	}
	if detail.CategoryID != nil || detail.CategoryName != nil {
		t.Errorf("category = (%v, %v), want nil join", detail.CategoryID, detail.CategoryName)
	}

	// Uncategorized spend still counts in the overall total but not in
	// per-category aggregates.
	total, err := store.TotalExpensesCents(ctx)
	if err != nil {
		t.Fatalf("TotalExpensesCents() error = %v", err)
	}
	if total != 500 {
		t.Errorf("TotalExpensesCents() = %d, want 500", total)
	}
	spend, err := store.CategorySpendSince(ctx, epoch)
	if err != nil {
		t.Fatalf("CategorySpendSince() error = %v", err)
	}
	if len(spend) != 0 {
		t.Errorf("CategorySpendSince() = %v, want empty", spend)
	}
}

func TestAggregates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	foodID := categoryID(t, store, "Food")
	funID := categoryID(t, store, "Fun")

	for _, e := range []core.Expense{
		{Amount: core.Money{Cents: 3000}, CategoryID: &foodID, Description: "Groceries"},
		{Amount: core.Money{Cents: 2000}, CategoryID: &foodID, Description: "Takeout"},
		{Amount: core.Money{Cents: 1500}, CategoryID: &funID, Description: "Movie"},
	} {
		if _, err := store.InsertExpense(ctx, e); err != nil {
			t.Fatalf("InsertExpense() error = %v", err)
		}
	}

	spend, err := store.CategorySpendSince(ctx, epoch)
	if err != nil {
		t.Fatalf("CategorySpendSince() error = %v", err)
	}
	got := make(map[string]int64, len(spend))
	for _, cs := range spend {
		got[cs.Name] = cs.TotalCents
	}
	if got["Food"] != 5000 || got["Fun"] != 1500 {
		t.Errorf("category spend = %v, want Food 5000, Fun 1500", got)
	}

	top, err := store.TopCategorySince(ctx, epoch)
	if err != nil {
		t.Fatalf("TopCategorySince() error = %v", err)
	}
	if top == nil || top.Name != "Food" || top.TotalCents != 5000 {
		t.Errorf("TopCategorySince() = %+v, want Food 5000", top)
	}

	utilization, err := store.BudgetUtilizationSince(ctx, epoch)
	if err != nil {
		t.Fatalf("BudgetUtilizationSince() error = %v", err)
	}
	if len(utilization) != len(core.StarterCategories) {
		t.Fatalf("len(utilization) = %d, want %d (zero-spend categories kept)", len(utilization), len(core.StarterCategories))
	}
	for _, u := range utilization {
		switch u.Name {
		case "Food":
			if u.SpentCents != 5000 || u.LimitCents != 20000 {
				t.Errorf("Food utilization = %+v", u)
			}
		case "Transport":
			if u.SpentCents != 0 {
				t.Errorf("Transport spent = %d, want 0", u.SpentCents)
			}
		}
	}

	stats, err := store.TransactionStatsSince(ctx, epoch)
	if err != nil {
		t.Fatalf("TransactionStatsSince() error = %v", err)
	}
	if !stats.Present {
		t.Fatal("TransactionStatsSince() not present with expenses recorded")
	}
	if stats.MinCents != 1500 || stats.MaxCents != 3000 {
		t.Errorf("stats min/max = %d/%d, want 1500/3000", stats.MinCents, stats.MaxCents)
	}
	if stats.AvgCents != 2167 {
		t.Errorf("stats avg = %d, want 2167", stats.AvgCents)
	}

	daily, err := store.DailyTotalsSince(ctx, epoch)
	if err != nil {
		t.Fatalf("DailyTotalsSince() error = %v", err)
	}
	if len(daily) != 1 || daily[0].TotalCents != 6500 {
		t.Errorf("DailyTotalsSince() = %v, want single day totaling 6500", daily)
	}
}

func TestTransactionStatsEmptyWindow(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.TransactionStatsSince(context.Background(), epoch)
	if err != nil {
		t.Fatalf("TransactionStatsSince() error = %v", err)
	}
	if stats.Present {
		t.Errorf("stats = %+v, want not present on empty ledger", stats)
	}
}

func TestRecurringLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	foodID := categoryID(t, store, "Food")

	today := time.Now().UTC()
	tmpl, err := store.InsertRecurring(ctx, core.RecurringExpense{
		Name:       "Streaming",
		Amount:     core.Money{Cents: 999},
		CategoryID: &foodID,
		Frequency:  core.Monthly,
		NextDue:    today,
	})
	if err != nil {
		t.Fatalf("InsertRecurring() error = %v", err)
	}
	if !tmpl.Active {
		t.Error("new template not active")
	}

	due, err := store.DueRecurring(ctx, FormatDate(today))
	if err != nil {
		t.Fatalf("DueRecurring() error = %v", err)
	}
	if len(due) != 1 || due[0].Name != "Streaming" {
		t.Fatalf("DueRecurring() = %v, want the Streaming template", due)
	}

	if err := store.AdvanceNextDue(ctx, tmpl.ID, today.AddDate(0, 1, 0)); err != nil {
		t.Fatalf("AdvanceNextDue() error = %v", err)
	}
	due, err = store.DueRecurring(ctx, FormatDate(today))
	if err != nil {
		t.Fatalf("DueRecurring() error = %v", err)
	}
	if len(due) != 0 {
		t.Errorf("DueRecurring() after advance = %v, want empty", due)
	}

	if err := store.DeactivateRecurring(ctx, tmpl.ID); err != nil {
		t.Fatalf("DeactivateRecurring() error = %v", err)
	}
	active, err := store.ListActiveRecurring(ctx)
	if err != nil {
		t.Fatalf("ListActiveRecurring() error = %v", err)
	}
	if len(active) != 0 {
		t.Errorf("ListActiveRecurring() after deactivate = %v, want empty", active)
	}
}

func TestPlanningSums(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.InsertGoal(ctx, core.SavingsGoal{
		Name:          "Laptop",
		TargetAmount:  core.Money{Cents: 80000},
		CurrentAmount: core.Money{Cents: 25000},
	}); err != nil {
		t.Fatalf("InsertGoal() error = %v", err)
	}
	if _, err := store.InsertInvestment(ctx, core.Investment{
		Name:         "Index fund",
		Type:         "stocks",
		Amount:       core.Money{Cents: 10000},
		CurrentValue: core.Money{Cents: 11000},
	}); err != nil {
		t.Fatalf("InsertInvestment() error = %v", err)
	}
	if _, err := store.InsertDebt(ctx, core.Debt{
		Name:            "Phone loan",
		TotalAmount:     core.Money{Cents: 30000},
		RemainingAmount: core.Money{Cents: 12000},
	}); err != nil {
		t.Fatalf("InsertDebt() error = %v", err)
	}

	goals, err := store.SumGoalsCurrentCents(ctx)
	if err != nil {
		t.Fatalf("SumGoalsCurrentCents() error = %v", err)
	}
	if goals != 25000 {
		t.Errorf("SumGoalsCurrentCents() = %d, want 25000", goals)
	}
	investments, err := store.SumInvestmentsCurrentCents(ctx)
	if err != nil {
		t.Fatalf("SumInvestmentsCurrentCents() error = %v", err)
	}
	if investments != 11000 {
		t.Errorf("SumInvestmentsCurrentCents() = %d, want 11000", investments)
	}
	debts, err := store.SumDebtsRemainingCents(ctx)
	if err != nil {
		t.Fatalf("SumDebtsRemainingCents() error = %v", err)
	}
	if debts != 12000 {
		t.Errorf("SumDebtsRemainingCents() = %d, want 12000", debts)
	}
}
