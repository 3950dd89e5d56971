// Package export mirrors the expense ledger into a Google Sheet. The
// sheet is a one-way copy for sharing and charting; nothing is ever read
// back into the database.
package export

import (
	"context"
	"errors"
	"fmt"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/BoyTiger-1/budget-ai/internal/log"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

var expenseHeader = []any{"Date", "Description", "Category", "Amount"}

type Exporter struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	logger        *log.Logger
}

// NewExporter builds a Sheets client from service account credentials,
// either inline JSON or a file path. Inline JSON wins when both are set.
func NewExporter(ctx context.Context, spreadsheetID, sheetName, credentialsJSON, credentialsFile string, logger *log.Logger) (*Exporter, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}

	var opts []goption.ClientOption
	switch {
	case credentialsJSON != "":
		opts = append(opts, goption.WithCredentialsJSON([]byte(credentialsJSON)))
	case credentialsFile != "":
		opts = append(opts, goption.WithCredentialsFile(credentialsFile))
	default:
		return nil, errors.New("missing service account credentials")
	}
	opts = append(opts, goption.WithScopes(gsheet.SpreadsheetsScope))

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Exporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger.WithComponent(log.ComponentExport),
	}, nil
}

// ExportExpenses rewrites the sheet from scratch with a header row plus
// one row per expense. Returns the number of expense rows written.
func (e *Exporter) ExportExpenses(ctx context.Context, expenses []storage.ExpenseDetail) (int, error) {
	clearRange := fmt.Sprintf("%s!A:D", e.sheetName)
	if _, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return 0, fmt.Errorf("clear sheet %s: %w", e.sheetName, err)
	}

	values := make([][]any, 0, len(expenses)+1)
	values = append(values, expenseHeader)
	for _, d := range expenses {
		values = append(values, expenseRow(d))
	}

	writeRange := fmt.Sprintf("%s!A1", e.sheetName)
	vr := &gsheet.ValueRange{Values: values}
	if _, err := e.svc.Spreadsheets.Values.Update(e.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return 0, fmt.Errorf("write sheet %s: %w", e.sheetName, err)
	}

	e.logger.InfoContext(ctx, "exported expenses to sheet",
		log.FieldCount, len(expenses),
		"sheet", e.sheetName)

	return len(expenses), nil
}

// AppendExpense adds a single expense below the last used row and
// returns the written range.
func (e *Exporter) AppendExpense(ctx context.Context, d storage.ExpenseDetail) (string, error) {
	rng := fmt.Sprintf("%s!A:A", e.sheetName)
	resp, err := e.svc.Spreadsheets.Values.Get(e.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get sheet dimensions for %s: %w", e.sheetName, err)
	}
	nextRow := len(resp.Values) + 1

	dataRange := fmt.Sprintf("%s!A%d:D%d", e.sheetName, nextRow, nextRow)
	vr := &gsheet.ValueRange{Values: [][]any{expenseRow(d)}}
	if _, err := e.svc.Spreadsheets.Values.Update(e.spreadsheetID, dataRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("append to sheet %s: %w", e.sheetName, err)
	}

	return dataRange, nil
}

func expenseRow(d storage.ExpenseDetail) []any {
	category := ""
	if d.CategoryName != nil {
		category = *d.CategoryName
	}
	return []any{
		storage.FormatDate(d.DateAdded),
		d.Description,
		category,
		float64(d.Amount.Cents) / 100.0,
	}
}
