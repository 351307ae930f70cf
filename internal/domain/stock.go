package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stock is a catalog entry: a tradable ticker with its current price.
// The execution path treats it as read-only; the price used for an
// order is a snapshot taken once at execution time.
type Stock struct {
	ID        uuid.UUID `json:"id"`
	Ticker    string    `json:"ticker"`
	Price     Cents     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
