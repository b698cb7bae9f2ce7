// Package client is the typed REST client for the expense API, consumed by
// the view stores. It injects the bearer token from the session context and
// surfaces server error bodies as APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dsikarwar-ops/expense-tracker/internal/api/dto"
	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
	"github.com/dsikarwar-ops/expense-tracker/internal/session"
)

const dateLayout = "2006-01-02"

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ExpenseDraft is the payload for create and full-field update requests.
type ExpenseDraft struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the signup payload.
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
	Email           string `json:"email"`
}

// Client talks to the expense API.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

// New builds a client. The session may be nil until login succeeds.
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
	}
}

// SetSession replaces the session used for authenticated calls.
func (c *Client) SetSession(sess *session.Session) {
	c.session = sess
}

type authEnvelope struct {
	Token string          `json:"token"`
	User  session.Profile `json:"user"`
}

type dataEnvelope struct {
	Data []dto.ExpenseResponse `json:"data"`
}

// Signup registers an account and returns the resulting session.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*session.Session, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/users/signup", req, &env); err != nil {
		return nil, err
	}
	sess := &session.Session{Token: env.Token, User: env.User}
	c.session = sess
	return sess, nil
}

// Login authenticates and returns the resulting session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*session.Session, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/users/login", creds, &env); err != nil {
		return nil, err
	}
	sess := &session.Session{Token: env.Token, User: env.User}
	c.session = sess
	return sess, nil
}

// ListExpenses fetches the caller's expenses.
func (c *Client) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	var env dataEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/expenses", nil, &env); err != nil {
		return nil, err
	}
	return toDomain(env.Data)
}

// ListAllExpenses fetches every expense with owner fields (admin only).
func (c *Client) ListAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	var env dataEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/expenses/all", nil, &env); err != nil {
		return nil, err
	}
	return toDomain(env.Data)
}

// CreateExpense submits a new expense and returns the canonical record.
func (c *Client) CreateExpense(ctx context.Context, draft ExpenseDraft) (*domain.Expense, error) {
	return c.singleExpense(ctx, http.MethodPost, "/api/expenses", draft)
}

// UpdateExpense applies a full-field edit and returns the canonical record.
func (c *Client) UpdateExpense(ctx context.Context, id string, draft ExpenseDraft) (*domain.Expense, error) {
	return c.singleExpense(ctx, http.MethodPut, "/api/expenses/"+id, draft)
}

// SetExpenseStatus transitions review state via a status-only payload.
func (c *Client) SetExpenseStatus(ctx context.Context, id string, status domain.ExpenseStatus) (*domain.Expense, error) {
	payload := map[string]domain.ExpenseStatus{"status": status}
	return c.singleExpense(ctx, http.MethodPut, "/api/expenses/"+id, payload)
}

// DeleteExpense removes a Pending expense.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/expenses/"+id, nil, nil)
}

// CategoryTotals fetches the category aggregation (admin only).
func (c *Client) CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error) {
	var env struct {
		Data []domain.CategoryTotal `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/expenses/admin/analytics/category-totals", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UserTotals fetches the per-user aggregation (admin only).
func (c *Client) UserTotals(ctx context.Context) ([]domain.UserTotal, error) {
	var env struct {
		Data []domain.UserTotal `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/expenses/admin/analytics/users", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) singleExpense(ctx context.Context, method, path string, body any) (*domain.Expense, error) {
	var env dataEnvelope
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return nil, err
	}
	expenses, err := toDomain(env.Data)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("empty data in response")
	}
	return &expenses[0], nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func toDomain(items []dto.ExpenseResponse) ([]domain.Expense, error) {
	expenses := make([]domain.Expense, 0, len(items))
	for _, item := range items {
		date, err := time.Parse(dateLayout, item.Date)
		if err != nil {
			return nil, fmt.Errorf("parse expense date %q: %w", item.Date, err)
		}
		expense := domain.Expense{
			ID:          item.ID,
			UserID:      item.UserID,
			Category:    item.Category,
			Amount:      item.Amount,
			Date:        date,
			Description: item.Description,
			Status:      item.Status,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		}
		if item.User != nil {
			expense.Owner = &domain.ExpenseOwner{Name: item.User.Name, Email: item.User.Email}
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}
