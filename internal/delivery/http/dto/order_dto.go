package dto

import (
	"time"

	"stockledger/internal/domain"
)

// OrderRequest represents the raw order fields posted by a caller,
// before validation.
type OrderRequest struct {
	User   string `json:"user"`
	Ticker string `json:"ticker"`
	Type   string `json:"type"`
	Volume int64  `json:"volume"`
}

// TransactionOutput represents a committed transaction in API
// responses. Money fields are decimal strings.
type TransactionOutput struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Ticker     string `json:"ticker"`
	Type       string `json:"type"`
	Volume     int64  `json:"volume"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
	CreatedAt  string `json:"created_at"`
}

// NewTransactionOutput converts a domain transaction for the wire.
func NewTransactionOutput(t *domain.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:         t.ID.String(),
		UserID:     t.UserID.String(),
		Ticker:     t.Ticker,
		Type:       t.Type,
		Volume:     t.Volume,
		UnitPrice:  t.UnitPrice.String(),
		TotalPrice: t.TotalPrice.String(),
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// NewTransactionOutputs converts a sequence of domain transactions.
func NewTransactionOutputs(txns []*domain.Transaction) []*TransactionOutput {
	out := make([]*TransactionOutput, 0, len(txns))
	for _, t := range txns {
		out = append(out, NewTransactionOutput(t))
	}
	return out
}
