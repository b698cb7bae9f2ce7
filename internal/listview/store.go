package listview

import (
	"context"
	"time"

	"github.com/dsikarwar-ops/expense-tracker/internal/client"
	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

// ExpenseAPI is the slice of the REST client the employee view needs.
type ExpenseAPI interface {
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, draft client.ExpenseDraft) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, id string, draft client.ExpenseDraft) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// Store is the view-state container for the expense table. It owns the
// loaded list, the in-progress edit target, the derivation inputs and the
// transient messages. All state transitions happen on the caller's single
// event loop; nothing here is shared across goroutines.
type Store struct {
	api ExpenseAPI

	items   []domain.Expense
	editing *domain.Expense
	query   Query

	loading       bool
	errMsg        string
	actionMessage string

	derived      []domain.Expense
	derivedValid bool
	options      []string
	optionsValid bool
}

// NewStore creates the container with empty state.
func NewStore(api ExpenseAPI) *Store {
	return &Store{api: api}
}

// Fetch replaces the list wholesale on success. Failure sets the transient
// error and leaves prior state intact.
func (s *Store) Fetch(ctx context.Context) error {
	s.loading = true
	s.errMsg = ""
	items, err := s.api.ListExpenses(ctx)
	s.loading = false
	if err != nil {
		s.errMsg = errMessage(err, "Failed to fetch expenses.")
		return err
	}
	s.items = items
	s.invalidate()
	return nil
}

// Add submits a new expense; on success the returned canonical record is
// prepended to the base list.
func (s *Store) Add(ctx context.Context, draft client.ExpenseDraft) error {
	created, err := s.api.CreateExpense(ctx, draft)
	if err != nil {
		s.errMsg = errMessage(err, "Failed to add expense.")
		return err
	}
	s.items = append([]domain.Expense{*created}, s.items...)
	s.actionMessage = "Expense added!"
	s.invalidate()
	return nil
}

// Update applies a full-field edit; on success the matching entry is
// replaced wholesale by the canonical record and the edit target cleared.
func (s *Store) Update(ctx context.Context, id string, draft client.ExpenseDraft) error {
	updated, err := s.api.UpdateExpense(ctx, id, draft)
	if err != nil {
		s.errMsg = errMessage(err, "Failed to update expense.")
		return err
	}
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
			break
		}
	}
	s.editing = nil
	s.actionMessage = "Expense updated!"
	s.invalidate()
	return nil
}

// Delete removes the entry after the server confirms. Attempting to delete
// a non-Pending row is a no-op at this layer.
func (s *Store) Delete(ctx context.Context, id string) error {
	if row := s.find(id); row != nil && !CanDelete(row) {
		return nil
	}
	if err := s.api.DeleteExpense(ctx, id); err != nil {
		s.errMsg = errMessage(err, "Failed to delete expense.")
		return err
	}
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.actionMessage = "Expense deleted!"
	s.invalidate()
	return nil
}

// StartEditing marks a row as the edit target. Non-Pending rows are
// ignored; at most one edit target exists at a time.
func (s *Store) StartEditing(id string) {
	row := s.find(id)
	if row == nil || !CanEdit(row) {
		return
	}
	target := *row
	s.editing = &target
}

// StopEditing clears the edit target.
func (s *Store) StopEditing() {
	s.editing = nil
}

// SetCategoryFilter sets the exact-match category filter; empty clears it.
func (s *Store) SetCategoryFilter(category string) {
	s.query.Category = category
	s.derivedValid = false
}

// SetSearchTerm sets the free-text search term; empty clears it.
func (s *Store) SetSearchTerm(term string) {
	s.query.Search = term
	s.derivedValid = false
}

// SetDateRange sets the inclusive date bounds; zero values clear them.
func (s *Store) SetDateRange(start, end time.Time) {
	s.query.StartDate = start
	s.query.EndDate = end
	s.derivedValid = false
}

// ToggleSort applies the sort-toggle semantics for a column header click.
func (s *Store) ToggleSort(key SortKey) {
	s.query.Sort = s.query.Sort.Toggle(key)
	s.derivedValid = false
}

// Rows returns the derived row sequence, recomputed only when the base
// list or a derivation input changed since the last call.
func (s *Store) Rows() []domain.Expense {
	if !s.derivedValid {
		s.derived = Derive(s.items, s.query)
		s.derivedValid = true
	}
	return s.derived
}

// CategoryOptions returns the filter selector options, recomputed only
// when the base list changed.
func (s *Store) CategoryOptions() []string {
	if !s.optionsValid {
		s.options = CategoryOptions(s.items)
		s.optionsValid = true
	}
	return s.options
}

// Items returns the unfiltered base list.
func (s *Store) Items() []domain.Expense {
	return s.items
}

// Editing returns the current edit target, if any.
func (s *Store) Editing() *domain.Expense {
	return s.editing
}

// Sort returns the active sort spec.
func (s *Store) Sort() SortSpec {
	return s.query.Sort
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	return s.loading
}

// Error returns the transient error message.
func (s *Store) Error() string {
	return s.errMsg
}

// ActionMessage returns the transient success message.
func (s *Store) ActionMessage() string {
	return s.actionMessage
}

// ClearActionMessage dismisses the transient success message.
func (s *Store) ClearActionMessage() {
	s.actionMessage = ""
}

// ClearError dismisses the transient error message.
func (s *Store) ClearError() {
	s.errMsg = ""
}

func (s *Store) find(id string) *domain.Expense {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

func (s *Store) invalidate() {
	s.derivedValid = false
	s.optionsValid = false
}

func errMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
