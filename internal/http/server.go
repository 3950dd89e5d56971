// Package http exposes the JSON API. Handlers stay thin: parsing and
// status codes live here, while aggregation, advice and orchestration
// belong to their own packages.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/advisor"
	"github.com/BoyTiger-1/budget-ai/internal/export"
	"github.com/BoyTiger-1/budget-ai/internal/insights"
	"github.com/BoyTiger-1/budget-ai/internal/log"
	"github.com/BoyTiger-1/budget-ai/internal/services"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

type Server struct {
	http.Server

	store    *storage.Store
	insights *insights.Service
	advisor  *advisor.Advisor
	expenses *services.ExpenseService
	exporter *export.Exporter

	corsOrigin   string
	rateLimiter  *rateLimiter
	logger       *log.Logger
	shutdownOnce sync.Once
}

// NewServer wires routes and middleware. The exporter may be nil when
// Sheets credentials are not configured; its endpoint then returns 503.
func NewServer(
	addr string,
	corsOrigin string,
	store *storage.Store,
	insightsService *insights.Service,
	adv *advisor.Advisor,
	expenses *services.ExpenseService,
	exporter *export.Exporter,
	logger *log.Logger,
) *Server {
	mux := http.NewServeMux()

	s := &Server{
		store:       store,
		insights:    insightsService,
		advisor:     adv,
		expenses:    expenses,
		exporter:    exporter,
		corsOrigin:  corsOrigin,
		rateLimiter: newRateLimiter(),
		logger:      logger.WithComponent(log.ComponentHTTP),
	}
	s.Server = http.Server{
		Addr:         addr,
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("GET /api/income", s.handleListIncome)
	mux.HandleFunc("POST /api/income", s.handleAddIncome)
	mux.HandleFunc("DELETE /api/income/{id}", s.handleDeleteIncome)

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleAddCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)

	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("POST /api/expenses", s.handleAddExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	mux.HandleFunc("GET /api/goals", s.handleListGoals)
	mux.HandleFunc("POST /api/goals", s.handleAddGoal)
	mux.HandleFunc("PUT /api/goals/{id}", s.handleUpdateGoal)
	mux.HandleFunc("DELETE /api/goals/{id}", s.handleDeleteGoal)

	mux.HandleFunc("GET /api/investments", s.handleListInvestments)
	mux.HandleFunc("POST /api/investments", s.handleAddInvestment)
	mux.HandleFunc("PUT /api/investments/{id}", s.handleUpdateInvestment)
	mux.HandleFunc("DELETE /api/investments/{id}", s.handleDeleteInvestment)

	mux.HandleFunc("GET /api/debts", s.handleListDebts)
	mux.HandleFunc("POST /api/debts", s.handleAddDebt)
	mux.HandleFunc("PUT /api/debts/{id}", s.handleUpdateDebt)
	mux.HandleFunc("DELETE /api/debts/{id}", s.handleDeleteDebt)

	mux.HandleFunc("GET /api/recurring", s.handleListRecurring)
	mux.HandleFunc("POST /api/recurring", s.handleAddRecurring)
	mux.HandleFunc("DELETE /api/recurring/{id}", s.handleDeleteRecurring)

	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/overview", s.handleOverview)
	mux.HandleFunc("GET /api/alerts", s.handleAlerts)
	mux.HandleFunc("GET /api/trends", s.handleTrends)
	mux.HandleFunc("GET /api/reports/monthly", s.handleMonthlyReport)
	mux.HandleFunc("GET /api/analysis/patterns", s.handleSpendingPatterns)

	mux.HandleFunc("POST /api/ai/chat", s.handleChat)
	mux.HandleFunc("POST /api/ai/categorize", s.handleCategorize)
	mux.HandleFunc("GET /api/ai/budget-recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /api/ai/predict-expenses", s.handlePredictExpenses)

	mux.HandleFunc("GET /api/export", s.handleExportData)
	mux.HandleFunc("POST /api/export/sheets", s.handleExportSheets)

	return s
}

// withMiddleware applies request ID, logging, CORS and write rate
// limiting around every route.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), log.ContextKey(log.FieldRequestID), requestID)
		r = r.WithContext(ctx)

		ip := clientIP(r)

		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.Method == http.MethodPost && !s.rateLimiter.allow(ip) {
			s.logger.WarnContext(ctx, "rate limit exceeded",
				log.FieldClientIP, ip,
				log.FieldMethod, r.Method,
				log.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		s.logger.InfoContext(ctx, "request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds(),
			log.FieldClientIP, ip)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// Shutdown stops the rate limiter cleanup goroutine and drains in-flight
// requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Budget AI Backend API",
		"status":  "running",
		"endpoints": map[string]string{
			"health":     "/api/health",
			"income":     "/api/income",
			"categories": "/api/categories",
			"expenses":   "/api/expenses",
			"summary":    "/api/summary",
			"ai_chat":    "/api/ai/chat",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
