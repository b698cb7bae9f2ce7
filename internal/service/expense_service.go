package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
	"github.com/dsikarwar-ops/expense-tracker/internal/events"
	"github.com/dsikarwar-ops/expense-tracker/internal/repository"
	"github.com/dsikarwar-ops/expense-tracker/internal/validation"
	apperrors "github.com/dsikarwar-ops/expense-tracker/pkg/util"
)

// dateLayout is the calendar-date wire format; full timestamps are accepted
// as a fallback and truncated to their date part by the DATE column.
const dateLayout = "2006-01-02"

// ExpenseService coordinates expense CRUD, review transitions and the two
// admin aggregations.
type ExpenseService struct {
	expenses   repository.ExpenseRepository
	dispatcher events.Dispatcher
}

// NewExpenseService builds the service.
func NewExpenseService(expenses repository.ExpenseRepository, dispatcher events.Dispatcher) *ExpenseService {
	return &ExpenseService{expenses: expenses, dispatcher: dispatcher}
}

// Create validates and stores a new expense for the owner. Status always
// starts at Pending.
func (s *ExpenseService) Create(ctx context.Context, userID string, input validation.ExpenseInput) (*domain.Expense, error) {
	if errs := validation.ValidateExpense(input); len(errs) > 0 {
		return nil, apperrors.NewValidationError(strings.Join(errs, ", "))
	}

	amount, _ := validation.ParseAmount(input.Amount)
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("Date must be a valid date")
	}

	expense := &domain.Expense{
		UserID:      userID,
		Category:    input.Category,
		Amount:      amount,
		Date:        date,
		Description: input.Description,
		Status:      domain.StatusPending,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventExpenseCreated, expense.ID, userID, events.ExpenseCreatedPayload{
		Category: expense.Category,
		Amount:   expense.Amount,
		Date:     expense.Date,
	})
	return expense, nil
}

// ListMine returns the owner's expenses in persistence order.
func (s *ExpenseService) ListMine(ctx context.Context, userID string) ([]domain.Expense, error) {
	return s.expenses.ListByOwner(ctx, userID)
}

// ListAll returns every expense with owner name and email populated.
// Authorization is enforced at the handler boundary.
func (s *ExpenseService) ListAll(ctx context.Context) ([]domain.Expense, error) {
	return s.expenses.ListAllWithOwner(ctx)
}

// UpdateFields applies a full-field edit on behalf of the owner. The record
// must still be Pending; otherwise it surfaces as not found.
func (s *ExpenseService) UpdateFields(ctx context.Context, id, userID string, input validation.ExpenseInput) (*domain.Expense, error) {
	if errs := validation.ValidateExpense(input); len(errs) > 0 {
		return nil, apperrors.NewValidationError(strings.Join(errs, ", "))
	}

	amount, _ := validation.ParseAmount(input.Amount)
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("Date must be a valid date")
	}

	expense, err := s.expenses.UpdateFields(ctx, id, userID, repository.ExpenseFieldUpdate{
		Category:    input.Category,
		Amount:      amount,
		Date:        date,
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Expense")
		}
		return nil, err
	}
	return expense, nil
}

// SetStatus transitions the review state. It bypasses field validation and
// the ownership check; role gating happens at the handler boundary.
func (s *ExpenseService) SetStatus(ctx context.Context, id, actorID string, status domain.ExpenseStatus) (*domain.Expense, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Status must be Pending, Approved or Rejected")
	}

	previous, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Expense")
		}
		return nil, err
	}

	expense, err := s.expenses.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Expense")
		}
		return nil, err
	}

	if previous.Status != expense.Status {
		s.publish(ctx, events.EventExpenseStatusChanged, expense.ID, actorID, events.ExpenseStatusChangedPayload{
			OldStatus: previous.Status,
			NewStatus: expense.Status,
		})
	}
	return expense, nil
}

// Delete removes an owner's Pending expense. Non-Pending or foreign rows
// surface as not found.
func (s *ExpenseService) Delete(ctx context.Context, id, userID string) error {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if err := s.expenses.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Expense")
		}
		return err
	}

	if expense != nil {
		s.publish(ctx, events.EventExpenseDeleted, id, userID, events.ExpenseDeletedPayload{
			Category: expense.Category,
			Amount:   expense.Amount,
		})
	}
	return nil
}

// CategoryTotals returns the grouped category sums, descending by total.
func (s *ExpenseService) CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error) {
	return s.expenses.CategoryTotals(ctx)
}

// UserTotals returns the grouped per-user sums, descending by total.
func (s *ExpenseService) UserTotals(ctx context.Context) ([]domain.UserTotal, error) {
	return s.expenses.UserTotals(ctx)
}

func (s *ExpenseService) publish(ctx context.Context, eventType events.EventType, expenseID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ExpenseID: expenseID,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
