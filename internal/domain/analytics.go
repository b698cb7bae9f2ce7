package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one row of the category aggregation: the summed amount
// of all expenses sharing a category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// UserTotal is one row of the per-user aggregation: the summed amount of a
// user's expenses joined with their display fields.
type UserTotal struct {
	UserID   string          `json:"userId"`
	Total    decimal.Decimal `json:"total"`
	Name     string          `json:"name"`
	Username string          `json:"username"`
}
