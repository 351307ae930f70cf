package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stockledger/internal/delivery/http/dto"
	"stockledger/internal/domain"
)

// UserHandler handles ledger account requests
type UserHandler struct {
	users domain.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users domain.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUser creates a ledger account with an opening balance
// POST /api/users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Username == "" {
		return BadRequestResponse(c, "Username is required")
	}

	balance, err := domain.ParseAmount(req.Balance)
	if err != nil {
		return BadRequestResponse(c, "Invalid balance amount")
	}
	if balance < 0 {
		return BadRequestResponse(c, "Balance must not be negative")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New(),
		Username:       req.Username,
		Balance:        balance,
		InitialBalance: balance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.users.Create(ctx, user); err != nil {
		return DomainErrorResponse(c, err)
	}

	return CreatedResponse(c, dto.NewUserOutput(user))
}

// GetUser retrieves a ledger account by username
// GET /api/users/:username
func (h *UserHandler) GetUser(c echo.Context) error {
	username := c.Param("username")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.GetByUsername(ctx, username)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.NewUserOutput(user))
}
