package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential is an identity-provider record: login identity and
// password hash, kept separate from the ledger account it may map to.
type Credential struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role constants
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)
