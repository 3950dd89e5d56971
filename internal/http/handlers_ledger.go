package http

import (
	"errors"
	"net/http"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/events"
	"github.com/BoyTiger-1/budget-ai/internal/log"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

func (s *Server) handleListIncome(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListIncome(r.Context())
	if err != nil {
		s.serverError(w, r, "list income", err)
		return
	}
	var totalCents int64
	for _, in := range records {
		totalCents += in.Amount.Cents
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"income": records,
		"total":  core.Money{Cents: totalCents},
	})
}

type addIncomeRequest struct {
	Amount core.Money `json:"amount"`
	Source string     `json:"source"`
	Period string     `json:"period"`
}

func (s *Server) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	var req addIncomeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Source == "" {
		req.Source = "Other"
	}
	if req.Period == "" {
		req.Period = "monthly"
	}

	in := core.Income{Amount: req.Amount, Source: req.Source, Period: req.Period}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.InsertIncome(r.Context(), in)
	if err != nil {
		s.serverError(w, r, "add income", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid income ID")
		return
	}
	if err := s.store.DeleteIncome(r.Context(), id); err != nil {
		s.serverError(w, r, "delete income", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Income deleted"})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.serverError(w, r, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

type addCategoryRequest struct {
	Name        string     `json:"name"`
	BudgetLimit core.Money `json:"budget_limit"`
	Color       string     `json:"color"`
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Color == "" {
		req.Color = "#3B82F6"
	}

	c := core.Category{Name: req.Name, BudgetLimit: req.BudgetLimit, Color: req.Color}
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.InsertCategory(r.Context(), c)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateName) {
			writeError(w, http.StatusBadRequest, "Category already exists")
			return
		}
		s.serverError(w, r, "add category", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateCategoryRequest struct {
	BudgetLimit core.Money `json:"budget_limit"`
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	var req updateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BudgetLimit.Cents < 0 {
		writeError(w, http.StatusBadRequest, "Invalid budget limit")
		return
	}
	if err := s.store.UpdateCategoryLimit(r.Context(), id, req.BudgetLimit.Cents); err != nil {
		s.serverError(w, r, "update category", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category updated"})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	period := parsePeriod(r)
	start := storage.FormatDate(core.ResolveWindow(period, timeNow()))
	expenses, err := s.store.ListExpensesSince(r.Context(), start)
	if err != nil {
		s.serverError(w, r, "list expenses", err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

type addExpenseRequest struct {
	Amount      core.Money `json:"amount"`
	CategoryID  *int64     `json:"category_id"`
	Description string     `json:"description"`
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.CategoryID != nil {
		exists, err := s.store.CategoryExists(r.Context(), *req.CategoryID)
		if err != nil {
			s.serverError(w, r, "check category", err)
			return
		}
		if !exists {
			writeError(w, http.StatusBadRequest, "Category not found")
			return
		}
	}

	e := core.Expense{Amount: req.Amount, CategoryID: req.CategoryID, Description: req.Description}
	if err := e.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.expenses.Create(r.Context(), e, events.SourceManual)
	if err != nil {
		s.serverError(w, r, "add expense", err)
		return
	}
	e.ID = id
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}
	if err := s.expenses.Delete(r.Context(), id); err != nil {
		s.serverError(w, r, "delete expense", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.ErrorContext(r.Context(), op+" failed",
		log.FieldRequestID, log.RequestIDFromContext(r.Context()),
		log.FieldError, err.Error(),
		log.FieldPath, r.URL.Path)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
