package http

import (
	"net/http"
	"time"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.insights.Summary(r.Context(), parsePeriod(r), timeNow())
	if err != nil {
		s.serverError(w, r, "summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.insights.Overview(r.Context(), timeNow())
	if err != nil {
		s.serverError(w, r, "overview", err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.insights.BudgetAlerts(r.Context(), timeNow())
	if err != nil {
		s.serverError(w, r, "alerts", err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := s.insights.Trends(r.Context(), parsePeriod(r), timeNow())
	if err != nil {
		s.serverError(w, r, "trends", err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = timeNow().Format("2006-01")
	} else if _, err := time.Parse("2006-01", month); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	report, err := s.insights.MonthlyReport(r.Context(), month)
	if err != nil {
		s.serverError(w, r, "monthly report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSpendingPatterns(w http.ResponseWriter, r *http.Request) {
	patterns, err := s.insights.SpendingPatterns(r.Context(), timeNow())
	if err != nil {
		s.serverError(w, r, "spending patterns", err)
		return
	}
	writeJSON(w, http.StatusOK, patterns)
}

func (s *Server) handlePredictExpenses(w http.ResponseWriter, r *http.Request) {
	prediction, err := s.insights.PredictExpenses(r.Context(), parsePeriod(r), timeNow())
	if err != nil {
		s.serverError(w, r, "predict expenses", err)
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}
