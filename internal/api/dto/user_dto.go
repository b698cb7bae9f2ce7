package dto

import "github.com/dsikarwar-ops/expense-tracker/internal/domain"

// UserResponse is the public account shape returned with session tokens.
type UserResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
}

// NewUserResponse maps a domain user to its wire shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
		Email:    user.Email,
	}
}
