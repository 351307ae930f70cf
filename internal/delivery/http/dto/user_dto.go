package dto

import "stockledger/internal/domain"

// CreateUserRequest represents the create-account request payload.
// Balance is a decimal string, e.g. "1000.00".
type CreateUserRequest struct {
	Username string `json:"username"`
	Balance  string `json:"balance"`
}

// UserOutput represents a ledger account in API responses
type UserOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Balance  string `json:"balance"`
}

// NewUserOutput converts a domain user for the wire.
func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:       u.ID.String(),
		Username: u.Username,
		Balance:  u.Balance.String(),
	}
}
