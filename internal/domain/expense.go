package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus enumerates the review lifecycle of an expense.
type ExpenseStatus string

const (
	StatusPending  ExpenseStatus = "Pending"
	StatusApproved ExpenseStatus = "Approved"
	StatusRejected ExpenseStatus = "Rejected"
)

// Valid reports whether the status is one of the known values.
func (s ExpenseStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// ExpenseOwner carries the display fields joined in for admin listings.
type ExpenseOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Expense is the aggregate for a single submitted expense.
type Expense struct {
	ID          string
	UserID      string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Status      ExpenseStatus
	Owner       *ExpenseOwner
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Editable reports whether the owning employee may still mutate or delete
// the record. Once the status leaves Pending only an admin may touch it.
func (e *Expense) Editable() bool {
	return e.Status == StatusPending
}
