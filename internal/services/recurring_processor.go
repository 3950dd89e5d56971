package services

import (
	"context"
	"fmt"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/events"
	"github.com/BoyTiger-1/budget-ai/internal/log"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

// RecurringProcessor posts expenses from recurring templates that have
// come due and advances their schedules.
type RecurringProcessor struct {
	store          *storage.Store
	expenseService *ExpenseService
	logger         *log.Logger
}

func NewRecurringProcessor(store *storage.Store, expenseService *ExpenseService, logger *log.Logger) *RecurringProcessor {
	return &RecurringProcessor{
		store:          store,
		expenseService: expenseService,
		logger:         logger.WithComponent(log.ComponentWorker),
	}
}

// ProcessDue posts every active template whose next due date is on or
// before now, then moves the due date forward one period. Failures on a
// single template are logged and the rest still run. A template is only
// advanced after its expense was created, so a crashed run retries on
// the next tick rather than skipping a posting.
func (p *RecurringProcessor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	if p.store == nil || p.expenseService == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	day := storage.FormatDate(now)
	due, err := p.store.DueRecurring(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("get due recurring templates: %w", err)
	}

	p.logger.InfoContext(ctx, "processing recurring templates",
		log.FieldCount, len(due),
		"processing_date", day)

	processed := 0
	for _, template := range due {
		expense := core.Expense{
			Amount:      template.Amount,
			CategoryID:  template.CategoryID,
			Description: template.Name,
		}

		id, err := p.expenseService.Create(ctx, expense, events.SourceRecurring)
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to create expense from recurring template",
				log.FieldRecordID, template.ID,
				log.FieldError, err.Error())
			continue
		}

		next, err := NextDueDate(template.Frequency, template.NextDue)
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to compute next due date",
				log.FieldRecordID, template.ID,
				log.FieldError, err.Error())
			continue
		}
		// A long-stopped worker may have a due date several periods in
		// the past. Each period posts once per run until caught up.
		if err := p.store.AdvanceNextDue(ctx, template.ID, next); err != nil {
			p.logger.ErrorContext(ctx, "failed to advance due date",
				log.FieldRecordID, template.ID,
				log.FieldError, err.Error())
			continue
		}

		processed++
		p.logger.InfoContext(ctx, "posted expense from recurring template",
			log.FieldRecordID, template.ID,
			"expense_id", id,
			log.FieldAmountCents, template.Amount.Cents,
			"frequency", string(template.Frequency),
			"next_due", storage.FormatDate(next))
	}

	p.logger.InfoContext(ctx, "recurring processing complete",
		"processed", processed,
		"total_due", len(due))

	return processed, nil
}
