// Package services orchestrates writes that touch more than one
// subsystem: expense creation with event publishing, and posting of due
// recurring templates.
package services

import (
	"context"
	"fmt"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/events"
	"github.com/BoyTiger-1/budget-ai/internal/log"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

// ExpenseService records expenses in the ledger and announces them over
// AMQP. The events client may be nil; publishing is then skipped.
type ExpenseService struct {
	store  *storage.Store
	events *events.Client
	logger *log.Logger
}

func NewExpenseService(store *storage.Store, eventsClient *events.Client, logger *log.Logger) *ExpenseService {
	return &ExpenseService{
		store:  store,
		events: eventsClient,
		logger: logger.WithComponent(log.ComponentStorage),
	}
}

// Create validates and records an expense. The SQLite write is the
// source of truth; a failed publish is logged and never fails the
// request.
func (s *ExpenseService) Create(ctx context.Context, e core.Expense, source string) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	id, err := s.store.InsertExpense(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("save expense: %w", err)
	}

	s.publishCreated(ctx, id, e, source)

	return id, nil
}

// Delete removes an expense from the ledger.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

func (s *ExpenseService) publishCreated(ctx context.Context, id int64, e core.Expense, source string) {
	if s.events == nil {
		return
	}

	msg := events.NewExpenseCreatedMessage(id, e.Amount.Cents, e.CategoryID, source)
	if err := s.events.PublishExpenseCreated(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish expense created message",
			log.FieldRecordID, id,
			log.FieldError, err.Error())
	}
}
