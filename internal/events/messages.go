package events

import (
	"encoding/json"
	"time"
)

// ExpenseCreatedMessage announces a newly recorded expense. It carries
// only identifying data; consumers fetch the full row from the ledger.
type ExpenseCreatedMessage struct {
	ID          int64     `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	CategoryID  *int64    `json:"category_id"`
	Source      string    `json:"source"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExpenseCreatedMessage builds a message stamped with the current
// time. Source distinguishes manual entries from recurring postings.
func NewExpenseCreatedMessage(id, amountCents int64, categoryID *int64, source string) *ExpenseCreatedMessage {
	return &ExpenseCreatedMessage{
		ID:          id,
		AmountCents: amountCents,
		CategoryID:  categoryID,
		Source:      source,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseCreatedMessageFromJSON creates a message from JSON bytes
func ExpenseCreatedMessageFromJSON(data []byte) (*ExpenseCreatedMessage, error) {
	var msg ExpenseCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
