package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a ledger account: a registered identity holding a cash
// balance. Balance is mutated only by order execution, never directly
// by callers. InitialBalance is fixed at creation and anchors the
// balance-conservation audit.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Balance        Cents     `json:"balance"`
	InitialBalance Cents     `json:"initial_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
