package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

// OwnerResponse carries the owner display fields populated on admin listings.
type OwnerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExpenseResponse is the wire shape of a single expense record.
type ExpenseResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"userId"`
	Category    string               `json:"category"`
	Amount      decimal.Decimal      `json:"amount"`
	Date        string               `json:"date"`
	Description string               `json:"description,omitempty"`
	Status      domain.ExpenseStatus `json:"status"`
	User        *OwnerResponse       `json:"user,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// NewExpenseResponse maps a domain expense to its wire shape.
func NewExpenseResponse(expense *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          expense.ID,
		UserID:      expense.UserID,
		Category:    expense.Category,
		Amount:      expense.Amount,
		Date:        expense.Date.Format(dateLayout),
		Description: expense.Description,
		Status:      expense.Status,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
	if expense.Owner != nil {
		resp.User = &OwnerResponse{Name: expense.Owner.Name, Email: expense.Owner.Email}
	}
	return resp
}

// NewExpenseResponses maps a list of expenses.
func NewExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, NewExpenseResponse(&expenses[i]))
	}
	return items
}
