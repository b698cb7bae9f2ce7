package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventExpenseCreated       EventType = "expense_created"
	EventExpenseStatusChanged EventType = "expense_status_changed"
	EventExpenseDeleted       EventType = "expense_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ExpenseID string      `json:"expense_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ExpenseCreatedPayload payload.
type ExpenseCreatedPayload struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

// ExpenseStatusChangedPayload payload.
type ExpenseStatusChangedPayload struct {
	OldStatus domain.ExpenseStatus `json:"old_status"`
	NewStatus domain.ExpenseStatus `json:"new_status"`
}

// ExpenseDeletedPayload payload.
type ExpenseDeletedPayload struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
