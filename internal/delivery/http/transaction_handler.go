package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"stockledger/internal/delivery/http/dto"
	"stockledger/internal/domain"
	"stockledger/internal/usecase"
)

// TransactionHandler handles order execution and history requests
type TransactionHandler struct {
	execution *usecase.ExecutionService
	queries   *usecase.QueryService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(execution *usecase.ExecutionService, queries *usecase.QueryService) *TransactionHandler {
	return &TransactionHandler{
		execution: execution,
		queries:   queries,
	}
}

// CreateTransaction validates and executes a buy/sell order
// POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.OrderRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	order, err := domain.ValidateOrder(req.User, req.Ticker, req.Type, req.Volume)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	txn, err := h.execution.Execute(ctx, order)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return CreatedResponse(c, dto.NewTransactionOutput(txn))
}

// ListTransactions retrieves all transactions for a user
// GET /api/transactions/:username
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	username := c.Param("username")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	txns, err := h.queries.ListByUser(ctx, username)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.NewTransactionOutputs(txns))
}

// ListTransactionsByRange retrieves a user's transactions between two
// calendar dates, inclusive
// GET /api/transactions/:username/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *TransactionHandler) ListTransactionsByRange(c echo.Context) error {
	username := c.Param("username")
	start := c.QueryParam("start")
	end := c.QueryParam("end")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	txns, err := h.queries.ListByUserAndRange(ctx, username, start, end)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	return SuccessResponse(c, dto.NewTransactionOutputs(txns))
}
