package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType constants
const (
	TypeBuy  = "buy"
	TypeSell = "sell"
)

// Transaction is an immutable record of one executed order. Once
// committed it is never updated or deleted; the transaction log is the
// sole source of truth for historical balance reconstruction.
type Transaction struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Ticker     string    `json:"ticker"`
	Type       string    `json:"type"`
	Volume     int64     `json:"volume"`
	UnitPrice  Cents     `json:"unit_price"`  // price per share at execution time
	TotalPrice Cents     `json:"total_price"` // unit price * volume
	CreatedAt  time.Time `json:"created_at"`
}

// BalanceEffect returns the signed effect of the transaction on the
// user's balance: a sell credits the total, a buy debits it.
func (t *Transaction) BalanceEffect() Cents {
	if t.Type == TypeSell {
		return t.TotalPrice
	}
	return -t.TotalPrice
}
