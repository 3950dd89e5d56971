package http

import (
	"net/http"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/services"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.store.ListGoals(r.Context())
	if err != nil {
		s.serverError(w, r, "list goals", err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

type addGoalRequest struct {
	Name         string     `json:"name"`
	TargetAmount core.Money `json:"target_amount"`
	Deadline     string     `json:"deadline"`
	Description  string     `json:"description"`
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var req addGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	g := core.SavingsGoal{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		Description:  req.Description,
	}
	if err := g.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.InsertGoal(r.Context(), g)
	if err != nil {
		s.serverError(w, r, "add goal", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateGoalRequest struct {
	CurrentAmount core.Money `json:"current_amount"`
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}
	var req updateGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CurrentAmount.Cents < 0 {
		writeError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	if err := s.store.UpdateGoalCurrent(r.Context(), id, req.CurrentAmount.Cents); err != nil {
		s.serverError(w, r, "update goal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal updated"})
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}
	if err := s.store.DeleteGoal(r.Context(), id); err != nil {
		s.serverError(w, r, "delete goal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted"})
}

func (s *Server) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	investments, err := s.store.ListInvestments(r.Context())
	if err != nil {
		s.serverError(w, r, "list investments", err)
		return
	}
	writeJSON(w, http.StatusOK, investments)
}

type addInvestmentRequest struct {
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Amount       core.Money  `json:"amount"`
	PurchaseDate string      `json:"purchase_date"`
	CurrentValue *core.Money `json:"current_value"`
	Notes        string      `json:"notes"`
}

func (s *Server) handleAddInvestment(w http.ResponseWriter, r *http.Request) {
	var req addInvestmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Current value defaults to the purchase amount.
	currentValue := req.Amount
	if req.CurrentValue != nil {
		currentValue = *req.CurrentValue
	}

	v := core.Investment{
		Name:         req.Name,
		Type:         req.Type,
		Amount:       req.Amount,
		PurchaseDate: req.PurchaseDate,
		CurrentValue: currentValue,
		Notes:        req.Notes,
	}
	if err := v.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.InsertInvestment(r.Context(), v)
	if err != nil {
		s.serverError(w, r, "add investment", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateInvestmentRequest struct {
	CurrentValue core.Money `json:"current_value"`
}

func (s *Server) handleUpdateInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid investment ID")
		return
	}
	var req updateInvestmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CurrentValue.Cents < 0 {
		writeError(w, http.StatusBadRequest, "Invalid value")
		return
	}
	if err := s.store.UpdateInvestmentValue(r.Context(), id, req.CurrentValue.Cents); err != nil {
		s.serverError(w, r, "update investment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Investment updated"})
}

func (s *Server) handleDeleteInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid investment ID")
		return
	}
	if err := s.store.DeleteInvestment(r.Context(), id); err != nil {
		s.serverError(w, r, "delete investment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Investment deleted"})
}

func (s *Server) handleListDebts(w http.ResponseWriter, r *http.Request) {
	debts, err := s.store.ListDebts(r.Context())
	if err != nil {
		s.serverError(w, r, "list debts", err)
		return
	}
	writeJSON(w, http.StatusOK, debts)
}

type addDebtRequest struct {
	Name            string      `json:"name"`
	TotalAmount     core.Money  `json:"total_amount"`
	RemainingAmount *core.Money `json:"remaining_amount"`
	InterestRate    float64     `json:"interest_rate"`
	DueDate         string      `json:"due_date"`
	Description     string      `json:"description"`
}

func (s *Server) handleAddDebt(w http.ResponseWriter, r *http.Request) {
	var req addDebtRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Remaining defaults to the full amount for a brand-new debt.
	remaining := req.TotalAmount
	if req.RemainingAmount != nil {
		remaining = *req.RemainingAmount
	}

	d := core.Debt{
		Name:            req.Name,
		TotalAmount:     req.TotalAmount,
		RemainingAmount: remaining,
		InterestRate:    req.InterestRate,
		DueDate:         req.DueDate,
		Description:     req.Description,
	}
	if err := d.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.InsertDebt(r.Context(), d)
	if err != nil {
		s.serverError(w, r, "add debt", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateDebtRequest struct {
	RemainingAmount core.Money `json:"remaining_amount"`
}

func (s *Server) handleUpdateDebt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid debt ID")
		return
	}
	var req updateDebtRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RemainingAmount.Cents < 0 {
		writeError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	if err := s.store.UpdateDebtRemaining(r.Context(), id, req.RemainingAmount.Cents); err != nil {
		s.serverError(w, r, "update debt", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Debt updated"})
}

func (s *Server) handleDeleteDebt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid debt ID")
		return
	}
	if err := s.store.DeleteDebt(r.Context(), id); err != nil {
		s.serverError(w, r, "delete debt", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Debt deleted"})
}

func (s *Server) handleListRecurring(w http.ResponseWriter, r *http.Request) {
	recurring, err := s.store.ListActiveRecurring(r.Context())
	if err != nil {
		s.serverError(w, r, "list recurring", err)
		return
	}
	writeJSON(w, http.StatusOK, recurring)
}

type addRecurringRequest struct {
	Name       string     `json:"name"`
	Amount     core.Money `json:"amount"`
	CategoryID *int64     `json:"category_id"`
	Frequency  string     `json:"frequency"`
	NextDue    string     `json:"next_due_date"`
}

func (s *Server) handleAddRecurring(w http.ResponseWriter, r *http.Request) {
	var req addRecurringRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Frequency == "" {
		req.Frequency = string(core.Monthly)
	}

	nextDue, err := storage.ParseDate(req.NextDue)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid next due date, expected YYYY-MM-DD")
		return
	}

	template := core.RecurringExpense{
		Name:       req.Name,
		Amount:     req.Amount,
		CategoryID: req.CategoryID,
		Frequency:  core.Frequency(req.Frequency),
		NextDue:    nextDue,
	}
	if err := template.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := services.NextDueDate(template.Frequency, template.NextDue); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.InsertRecurring(r.Context(), template)
	if err != nil {
		s.serverError(w, r, "add recurring", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteRecurring(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid recurring ID")
		return
	}
	if err := s.store.DeactivateRecurring(r.Context(), id); err != nil {
		s.serverError(w, r, "delete recurring", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Recurring expense deleted"})
}
