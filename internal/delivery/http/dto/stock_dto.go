package dto

import "stockledger/internal/domain"

// CreateStockRequest represents the add-stock request payload.
// Price is a decimal string, e.g. "50.00".
type CreateStockRequest struct {
	Ticker string `json:"ticker"`
	Price  string `json:"price"`
}

// StockOutput represents a catalog stock in API responses
type StockOutput struct {
	ID     string `json:"id"`
	Ticker string `json:"ticker"`
	Price  string `json:"price"`
}

// NewStockOutput converts a domain stock for the wire.
func NewStockOutput(s *domain.Stock) *StockOutput {
	return &StockOutput{
		ID:     s.ID.String(),
		Ticker: s.Ticker,
		Price:  s.Price.String(),
	}
}

// NewStockOutputs converts a sequence of domain stocks.
func NewStockOutputs(stocks []*domain.Stock) []*StockOutput {
	out := make([]*StockOutput, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, NewStockOutput(s))
	}
	return out
}
