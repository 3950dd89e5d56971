package http

import (
	"context"
	"net/http"

	"github.com/BoyTiger-1/budget-ai/internal/advisor"
	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

// buildSnapshot assembles the advisor's financial context: the month
// summary plus planning totals and the all-time net worth.
func (s *Server) buildSnapshot(ctx context.Context) (advisor.Snapshot, error) {
	now := timeNow()

	summary, err := s.insights.Summary(ctx, core.PeriodMonth, now)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	start := storage.FormatDate(core.ResolveWindow(core.PeriodMonth, now))
	breakdown, err := s.store.CategoryBreakdownSince(ctx, start)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	goals, err := s.store.ListGoals(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	allExpensesCents, err := s.store.TotalExpensesCents(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}
	investmentCents, err := s.store.SumInvestmentsCurrentCents(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}
	savingsCents, err := s.store.SumGoalsCurrentCents(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}
	debtCents, err := s.store.SumDebtsRemainingCents(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	snap := advisor.Snapshot{
		TotalIncome:     summary.TotalIncome,
		TotalExpenses:   summary.TotalExpenses,
		RemainingBudget: summary.RemainingBudget,
		TopCategory:     summary.TopCategory,
		TotalDebts:      core.Money{Cents: debtCents},
		NetWorth: core.Money{
			Cents: summary.TotalIncome.Cents - allExpensesCents + investmentCents + savingsCents - debtCents,
		},
	}
	for _, cb := range breakdown {
		snap.CategorySpending = append(snap.CategorySpending, advisor.CategoryAmount{
			Name:   cb.Name,
			Amount: core.Money{Cents: cb.TotalCents},
		})
	}
	for _, g := range goals {
		snap.Goals = append(snap.Goals, advisor.GoalProgress{
			Name:    g.Name,
			Current: g.CurrentAmount,
			Target:  g.TargetAmount,
		})
	}
	return snap, nil
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := s.buildSnapshot(r.Context())
	if err != nil {
		s.serverError(w, r, "build snapshot", err)
		return
	}

	response := s.advisor.Respond(r.Context(), req.Message, snap)
	writeJSON(w, http.StatusOK, map[string]string{"response": response})
}

type categorizeRequest struct {
	Description string     `json:"description"`
	Amount      core.Money `json:"amount"`
}

func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category := s.advisor.Categorize(r.Context(), req.Description, req.Amount)
	writeJSON(w, http.StatusOK, map[string]string{"category": category})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	snap, err := s.buildSnapshot(r.Context())
	if err != nil {
		s.serverError(w, r, "build snapshot", err)
		return
	}

	recommendations := s.advisor.Recommend(r.Context(), snap)
	writeJSON(w, http.StatusOK, recommendations)
}
