package http

import (
	"net/http"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

// handleExportData serves a JSON dump for client-side download. The
// type parameter picks expenses (default), income, or all tables.
func (s *Server) handleExportData(w http.ResponseWriter, r *http.Request) {
	exportType := r.URL.Query().Get("type")
	if exportType == "" {
		exportType = "expenses"
	}

	allTime := storage.FormatDate(core.ResolveWindow(core.PeriodAll, timeNow()))

	switch exportType {
	case "expenses":
		expenses, err := s.store.ListExpensesSince(r.Context(), allTime)
		if err != nil {
			s.serverError(w, r, "export expenses", err)
			return
		}
		writeJSON(w, http.StatusOK, expenses)

	case "income":
		income, err := s.store.ListIncome(r.Context())
		if err != nil {
			s.serverError(w, r, "export income", err)
			return
		}
		writeJSON(w, http.StatusOK, income)

	case "all":
		expenses, err := s.store.ListExpensesSince(r.Context(), allTime)
		if err != nil {
			s.serverError(w, r, "export expenses", err)
			return
		}
		income, err := s.store.ListIncome(r.Context())
		if err != nil {
			s.serverError(w, r, "export income", err)
			return
		}
		goals, err := s.store.ListGoals(r.Context())
		if err != nil {
			s.serverError(w, r, "export goals", err)
			return
		}
		investments, err := s.store.ListInvestments(r.Context())
		if err != nil {
			s.serverError(w, r, "export investments", err)
			return
		}
		debts, err := s.store.ListDebts(r.Context())
		if err != nil {
			s.serverError(w, r, "export debts", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"expenses":    expenses,
			"income":      income,
			"goals":       goals,
			"investments": investments,
			"debts":       debts,
		})

	default:
		writeError(w, http.StatusBadRequest, "Unknown export type")
	}
}

// handleExportSheets mirrors the full expense ledger into the configured
// Google Sheet.
func (s *Server) handleExportSheets(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		writeError(w, http.StatusServiceUnavailable, "Sheets export is not configured")
		return
	}

	allTime := storage.FormatDate(core.ResolveWindow(core.PeriodAll, timeNow()))
	expenses, err := s.store.ListExpensesSince(r.Context(), allTime)
	if err != nil {
		s.serverError(w, r, "load expenses for export", err)
		return
	}

	count, err := s.exporter.ExportExpenses(r.Context(), expenses)
	if err != nil {
		s.serverError(w, r, "export to sheets", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Expenses exported",
		"exported": count,
	})
}
