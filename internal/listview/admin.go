package listview

import (
	"context"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

// AdminAPI is the slice of the REST client the admin views need.
type AdminAPI interface {
	ListAllExpenses(ctx context.Context) ([]domain.Expense, error)
	SetExpenseStatus(ctx context.Context, id string, status domain.ExpenseStatus) (*domain.Expense, error)
	CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error)
	UserTotals(ctx context.Context) ([]domain.UserTotal, error)
}

// AdminStore holds the admin review page state: the full expense list and
// the two dashboard aggregations, all fetched server-side and rendered
// client-side.
type AdminStore struct {
	api AdminAPI

	expenses       []domain.Expense
	categoryTotals []domain.CategoryTotal
	userTotals     []domain.UserTotal

	loading       bool
	errMsg        string
	actionMessage string
}

// NewAdminStore creates the container with empty state.
func NewAdminStore(api AdminAPI) *AdminStore {
	return &AdminStore{api: api}
}

// FetchAll loads every expense with owner fields populated.
func (s *AdminStore) FetchAll(ctx context.Context) error {
	s.loading = true
	s.errMsg = ""
	expenses, err := s.api.ListAllExpenses(ctx)
	s.loading = false
	if err != nil {
		s.errMsg = errMessage(err, "Failed to fetch expenses.")
		return err
	}
	s.expenses = expenses
	return nil
}

// SetStatus transitions a record's review state; on success the matching
// entry is replaced by the canonical record.
func (s *AdminStore) SetStatus(ctx context.Context, id string, status domain.ExpenseStatus) error {
	updated, err := s.api.SetExpenseStatus(ctx, id, status)
	if err != nil {
		s.errMsg = errMessage(err, "Failed to update status.")
		return err
	}
	for i := range s.expenses {
		if s.expenses[i].ID == updated.ID {
			owner := s.expenses[i].Owner
			s.expenses[i] = *updated
			if s.expenses[i].Owner == nil {
				s.expenses[i].Owner = owner
			}
			break
		}
	}
	s.actionMessage = "Status updated!"
	return nil
}

// FetchCategoryTotals loads the category aggregation.
func (s *AdminStore) FetchCategoryTotals(ctx context.Context) error {
	totals, err := s.api.CategoryTotals(ctx)
	if err != nil {
		s.errMsg = errMessage(err, "Failed to fetch category totals.")
		return err
	}
	s.categoryTotals = totals
	return nil
}

// FetchUserTotals loads the per-user aggregation.
func (s *AdminStore) FetchUserTotals(ctx context.Context) error {
	totals, err := s.api.UserTotals(ctx)
	if err != nil {
		s.errMsg = errMessage(err, "Failed to fetch user analytics.")
		return err
	}
	s.userTotals = totals
	return nil
}

// Expenses returns the loaded list.
func (s *AdminStore) Expenses() []domain.Expense {
	return s.expenses
}

// CategoryTotalList returns the loaded category aggregation.
func (s *AdminStore) CategoryTotalList() []domain.CategoryTotal {
	return s.categoryTotals
}

// UserTotalList returns the loaded per-user aggregation.
func (s *AdminStore) UserTotalList() []domain.UserTotal {
	return s.userTotals
}

// Loading reports whether a fetch is in flight.
func (s *AdminStore) Loading() bool {
	return s.loading
}

// Error returns the transient error message.
func (s *AdminStore) Error() string {
	return s.errMsg
}

// ActionMessage returns the transient success message.
func (s *AdminStore) ActionMessage() string {
	return s.actionMessage
}
