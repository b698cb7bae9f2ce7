package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

// ExpenseFieldUpdate carries the full-field edit applied by the owner while
// the expense is still Pending.
type ExpenseFieldUpdate struct {
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// ExpenseRepository encapsulates expense persistence.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Expense, error)
	ListAllWithOwner(ctx context.Context) ([]domain.Expense, error)
	UpdateFields(ctx context.Context, id, userID string, update ExpenseFieldUpdate) (*domain.Expense, error)
	SetStatus(ctx context.Context, id string, status domain.ExpenseStatus) (*domain.Expense, error)
	Delete(ctx context.Context, id, userID string) error
	CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error)
	UserTotals(ctx context.Context) ([]domain.UserTotal, error)
}

type expenseRepository struct {
	db DB
}

// NewExpenseRepository instantiates the repository.
func NewExpenseRepository(db DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, user_id, category, amount, date, description, status, created_at, updated_at`

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	const query = `
        INSERT INTO expenses (user_id, category, amount, date, description, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		expense.UserID,
		expense.Category,
		expense.Amount,
		expense.Date,
		expense.Description,
		expense.Status,
	).Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt)
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	const query = `SELECT ` + expenseColumns + ` FROM expenses WHERE id=$1`
	var expense domain.Expense
	if err := scanExpense(r.db.QueryRow(ctx, query, id), &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Expense, error) {
	const query = `
        SELECT ` + expenseColumns + `
        FROM expenses WHERE user_id=$1
        ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var expense domain.Expense
		if err := scanExpense(rows, &expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) ListAllWithOwner(ctx context.Context) ([]domain.Expense, error) {
	const query = `
        SELECT e.id, e.user_id, e.category, e.amount, e.date, e.description, e.status,
               e.created_at, e.updated_at, u.name, u.email
        FROM expenses e
        LEFT JOIN users u ON u.id = e.user_id
        ORDER BY e.created_at, e.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var expense domain.Expense
		var owner domain.ExpenseOwner
		if err := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&expense.Category,
			&expense.Amount,
			&expense.Date,
			&expense.Description,
			&expense.Status,
			&expense.CreatedAt,
			&expense.UpdatedAt,
			&owner.Name,
			&owner.Email,
		); err != nil {
			return nil, err
		}
		expense.Owner = &owner
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// UpdateFields applies a full-field edit. The WHERE clause enforces
// ownership and the Pending-only rule in the same statement; a vanished or
// non-Pending row surfaces as pgx.ErrNoRows.
func (r *expenseRepository) UpdateFields(ctx context.Context, id, userID string, update ExpenseFieldUpdate) (*domain.Expense, error) {
	const query = `
        UPDATE expenses
        SET category=$1, amount=$2, date=$3, description=$4, updated_at=NOW()
        WHERE id=$5 AND user_id=$6 AND status='Pending'
        RETURNING ` + expenseColumns
	var expense domain.Expense
	if err := scanExpense(r.db.QueryRow(ctx, query,
		update.Category,
		update.Amount,
		update.Date,
		update.Description,
		id,
		userID,
	), &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) SetStatus(ctx context.Context, id string, status domain.ExpenseStatus) (*domain.Expense, error) {
	const query = `
        UPDATE expenses SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + expenseColumns
	var expense domain.Expense
	if err := scanExpense(r.db.QueryRow(ctx, query, status, id), &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM expenses WHERE id=$1 AND user_id=$2 AND status='Pending'`
	cmd, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error) {
	const query = `
        SELECT category, SUM(amount) AS total
        FROM expenses
        GROUP BY category
        ORDER BY total DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *expenseRepository) UserTotals(ctx context.Context) ([]domain.UserTotal, error) {
	const query = `
        SELECT e.user_id, SUM(e.amount) AS total, COALESCE(u.name, ''), COALESCE(u.username, '')
        FROM expenses e
        LEFT JOIN users u ON u.id = e.user_id
        GROUP BY e.user_id, u.name, u.username
        ORDER BY total DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []domain.UserTotal{}
	for rows.Next() {
		var t domain.UserTotal
		if err := rows.Scan(&t.UserID, &t.Total, &t.Name, &t.Username); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func scanExpense(row pgx.Row, expense *domain.Expense) error {
	return row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Category,
		&expense.Amount,
		&expense.Date,
		&expense.Description,
		&expense.Status,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
}
