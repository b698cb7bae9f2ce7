package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
	"github.com/dsikarwar-ops/expense-tracker/internal/session"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, nil)
}

func TestLoginStoresSession(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username != "dana" {
			t.Fatalf("unexpected payload %+v (%v)", creds, err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token":   "token-abc",
			"user":    map[string]string{"id": "user-1", "username": "dana", "role": "employee"},
			"status":  200,
			"message": "Login successful",
		})
	})

	sess, err := c.Login(context.Background(), Credentials{Username: "dana", Password: "hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token != "token-abc" || sess.User.Username != "dana" {
		t.Fatalf("unexpected session %+v", sess)
	}
	if c.session != sess {
		t.Fatal("client must adopt the new session")
	}
}

func TestListExpenses(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Fatalf("unexpected auth header %q", got)
		}
		w.Write([]byte(`{"data":[{"id":"exp-1","userId":"user-1","category":"Travel","amount":"42.50","date":"2024-03-15","status":"Pending"}],"status":200}`))
	})
	c.SetSession(&session.Session{Token: "token-abc"})

	expenses, err := c.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("unexpected list %+v", expenses)
	}
	e := expenses[0]
	if e.ID != "exp-1" || !e.Amount.Equal(decimal.RequireFromString("42.50")) {
		t.Fatalf("unexpected expense %+v", e)
	}
	if got := e.Date.Format("2006-01-02"); got != "2024-03-15" {
		t.Fatalf("unexpected date %s", got)
	}
}

func TestListAllExpenses_OwnerFields(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"exp-1","userId":"user-1","category":"Travel","amount":10,"date":"2024-03-15","status":"Approved","user":{"name":"Dana","email":"dana@example.com"}}],"status":200}`))
	})

	expenses, err := c.ListAllExpenses(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if expenses[0].Owner == nil || expenses[0].Owner.Name != "Dana" {
		t.Fatalf("owner not populated: %+v", expenses[0])
	}
}

func TestCreateExpense(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		var draft ExpenseDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil || draft.Category != "Travel" {
			t.Fatalf("unexpected draft %+v (%v)", draft, err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":[{"id":"exp-1","userId":"user-1","category":"Travel","amount":"42.50","date":"2024-03-15","status":"Pending"}],"status":201}`))
	})

	expense, err := c.CreateExpense(context.Background(), ExpenseDraft{
		Category: "Travel",
		Amount:   decimal.RequireFromString("42.50"),
		Date:     "2024-03-15",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if expense.ID != "exp-1" || expense.Status != domain.StatusPending {
		t.Fatalf("unexpected expense %+v", expense)
	}
}

func TestSetExpenseStatus_SendsStatusOnlyBody(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(raw) != 1 {
			t.Fatalf("status transition must send exactly one key, got %v", raw)
		}
		if _, ok := raw["status"]; !ok {
			t.Fatalf("missing status key in %v", raw)
		}
		w.Write([]byte(`{"data":[{"id":"exp-1","userId":"user-1","category":"Travel","amount":"42.50","date":"2024-03-15","status":"Approved"}],"status":200}`))
	})

	expense, err := c.SetExpenseStatus(context.Background(), "exp-1", domain.StatusApproved)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if expense.Status != domain.StatusApproved {
		t.Fatalf("unexpected status %q", expense.Status)
	}
}

func TestErrorBodyDecoding(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":404,"message":"Expense not found"}`))
	})

	err := c.DeleteExpense(context.Background(), "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Expense not found" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestErrorWithoutBody(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListExpenses(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Error() != "request failed with status 502" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestCategoryTotals(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/expenses/admin/analytics/category-totals" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"category":"Travel","total":"120.00"}],"status":200}`))
	})

	totals, err := c.CategoryTotals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 1 || totals[0].Category != "Travel" || !totals[0].Total.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("unexpected totals %+v", totals)
	}
}
