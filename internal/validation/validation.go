// Package validation holds the pure payload checks shared by the API
// handlers. Each function collects human-readable messages instead of
// failing fast; an empty slice means the payload is valid.
package validation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ExpenseInput is the raw shape of an incoming expense payload. Amount is
// left untyped because clients send it as either a JSON number or a string.
type ExpenseInput struct {
	Amount      any    `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// UserInput is the raw shape of signup and login payloads.
type UserInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// ValidateExpense checks an expense payload and returns the ordered list of
// problems found.
func ValidateExpense(input ExpenseInput) []string {
	var errs []string

	amount, ok := ParseAmount(input.Amount)
	switch {
	case input.Amount == nil || input.Amount == "":
		errs = append(errs, "Amount is required")
	case !ok:
		errs = append(errs, "Amount must be a number")
	case amount.Sign() <= 0:
		errs = append(errs, "Amount must be greater than 0")
	}

	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, "Category is required")
	}

	if strings.TrimSpace(input.Date) == "" {
		errs = append(errs, "Date is required")
	}

	return errs
}

// ValidateUser checks a signup or login payload. Login mode only looks at
// username and password; signup additionally requires name, a plausible
// email, and a matching password confirmation.
func ValidateUser(input UserInput, isSignup bool) []string {
	var errs []string

	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, "Username is required")
	}

	if strings.TrimSpace(input.Password) == "" {
		errs = append(errs, "Password is required")
	}

	if isSignup {
		if strings.TrimSpace(input.Name) == "" {
			errs = append(errs, "Name is required")
		}
		if strings.TrimSpace(input.Email) == "" {
			errs = append(errs, "Email is required")
		} else if !emailPattern.MatchString(input.Email) {
			errs = append(errs, "Email is invalid")
		}
		if input.ConfirmPassword == "" || input.ConfirmPassword != input.Password {
			errs = append(errs, "Passwords do not match")
		}
	}

	return errs
}

// ParseAmount converts the loosely typed amount field into a decimal.
// It accepts JSON numbers, numeric strings, and json.Number values.
func ParseAmount(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	default:
		return decimal.Zero, false
	}
}
