package validation

import (
	"strings"
	"testing"
)

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name  string
		input ExpenseInput
		want  []string
	}{
		{
			name:  "valid with numeric amount",
			input: ExpenseInput{Amount: 12.5, Category: "Food", Date: "2024-05-01"},
			want:  nil,
		},
		{
			name:  "valid with string amount",
			input: ExpenseInput{Amount: "42", Category: "Travel", Date: "2024-05-01"},
			want:  nil,
		},
		{
			name:  "missing amount",
			input: ExpenseInput{Category: "Food", Date: "2024-05-01"},
			want:  []string{"Amount is required"},
		},
		{
			name:  "empty string amount",
			input: ExpenseInput{Amount: "", Category: "Food", Date: "2024-05-01"},
			want:  []string{"Amount is required"},
		},
		{
			name:  "non-numeric amount",
			input: ExpenseInput{Amount: "abc", Category: "Food", Date: "2024-05-01"},
			want:  []string{"Amount must be a number"},
		},
		{
			name:  "zero amount",
			input: ExpenseInput{Amount: 0.0, Category: "Food", Date: "2024-05-01"},
			want:  []string{"Amount must be greater than 0"},
		},
		{
			name:  "negative amount",
			input: ExpenseInput{Amount: "-3", Category: "Food", Date: "2024-05-01"},
			want:  []string{"Amount must be greater than 0"},
		},
		{
			name:  "blank category",
			input: ExpenseInput{Amount: 10.0, Category: "   ", Date: "2024-05-01"},
			want:  []string{"Category is required"},
		},
		{
			name:  "blank date",
			input: ExpenseInput{Amount: 10.0, Category: "Food", Date: "  "},
			want:  []string{"Date is required"},
		},
		{
			name:  "everything missing collects in order",
			input: ExpenseInput{},
			want:  []string{"Amount is required", "Category is required", "Date is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateExpense(tt.input)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestValidateUser_Login(t *testing.T) {
	tests := []struct {
		name  string
		input UserInput
		want  []string
	}{
		{
			name:  "valid",
			input: UserInput{Username: "dana", Password: "secret"},
			want:  nil,
		},
		{
			name:  "missing both",
			input: UserInput{},
			want:  []string{"Username is required", "Password is required"},
		},
		{
			name:  "login ignores signup fields",
			input: UserInput{Username: "dana", Password: "secret", Email: "not-an-email"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateUser(tt.input, false)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestValidateUser_Signup(t *testing.T) {
	valid := UserInput{
		Username:        "dana",
		Password:        "secret",
		ConfirmPassword: "secret",
		Name:            "Dana",
		Email:           "dana@example.com",
	}

	if got := ValidateUser(valid, true); len(got) != 0 {
		t.Fatalf("valid signup rejected: %v", got)
	}

	tests := []struct {
		name   string
		mutate func(u UserInput) UserInput
		want   string
	}{
		{
			name:   "missing name",
			mutate: func(u UserInput) UserInput { u.Name = " "; return u },
			want:   "Name is required",
		},
		{
			name:   "missing email",
			mutate: func(u UserInput) UserInput { u.Email = ""; return u },
			want:   "Email is required",
		},
		{
			name:   "malformed email",
			mutate: func(u UserInput) UserInput { u.Email = "dana@nodot"; return u },
			want:   "Email is invalid",
		},
		{
			name:   "mismatched confirmation",
			mutate: func(u UserInput) UserInput { u.ConfirmPassword = "other"; return u },
			want:   "Passwords do not match",
		},
		{
			name:   "missing confirmation",
			mutate: func(u UserInput) UserInput { u.ConfirmPassword = ""; return u },
			want:   "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateUser(tt.mutate(valid), true)
			if len(got) != 1 || got[0] != tt.want {
				t.Fatalf("want [%s], got %v", tt.want, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	if d, ok := ParseAmount("19.99"); !ok || d.String() != "19.99" {
		t.Fatalf("string parse failed: %v %v", d, ok)
	}
	if d, ok := ParseAmount(7.0); !ok || !d.Equal(d.Truncate(0)) {
		t.Fatalf("float parse failed: %v %v", d, ok)
	}
	if _, ok := ParseAmount(nil); ok {
		t.Fatal("nil must not parse")
	}
	if _, ok := ParseAmount(true); ok {
		t.Fatal("bool must not parse")
	}
}
