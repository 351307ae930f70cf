package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stockledger/internal/delivery/http/dto"
	"stockledger/internal/domain"
)

// StockHandler handles stock catalog requests
type StockHandler struct {
	stocks domain.StockRepository
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stocks domain.StockRepository) *StockHandler {
	return &StockHandler{stocks: stocks}
}

// CreateStock adds a stock to the catalog
// POST /api/stocks
func (h *StockHandler) CreateStock(c echo.Context) error {
	var req dto.CreateStockRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Ticker == "" {
		return BadRequestResponse(c, "Ticker is required")
	}

	price, err := domain.ParseAmount(req.Price)
	if err != nil {
		return BadRequestResponse(c, "Invalid price amount")
	}
	if price < 0 {
		return BadRequestResponse(c, "Price must not be negative")
	}

	now := time.Now().UTC()
	stock := &domain.Stock{
		ID:        uuid.New(),
		Ticker:    req.Ticker,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.stocks.Create(ctx, stock); err != nil {
		return DomainErrorResponse(c, err)
	}

	return CreatedResponse(c, dto.NewStockOutput(stock))
}

// GetStock retrieves a stock by ticker
// GET /api/stocks/:ticker
func (h *StockHandler) GetStock(c echo.Context) error {
	ticker := c.Param("ticker")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stock, err := h.stocks.GetByTicker(ctx, ticker)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.NewStockOutput(stock))
}

// ListStocks retrieves the whole catalog
// GET /api/stocks
func (h *StockHandler) ListStocks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stocks, err := h.stocks.GetAll(ctx)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.NewStockOutputs(stocks))
}
