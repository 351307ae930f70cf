package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stockledger/internal/domain"
)

// ExecutionService validates and applies a single order: it resolves
// the user, snapshots the price, computes the monetary effect and
// commits balance mutation plus transaction record as one atomic unit
// through the ledger store.
type ExecutionService struct {
	users  domain.UserRepository
	txns   domain.TransactionRepository
	prices domain.PricingSource
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(
	users domain.UserRepository,
	txns domain.TransactionRepository,
	prices domain.PricingSource,
) *ExecutionService {
	return &ExecutionService{
		users:  users,
		txns:   txns,
		prices: prices,
	}
}

// Execute runs one validated order to commit. On success the returned
// transaction is already durable. Failures are one of the domain
// errors: ErrUserNotFound, ErrStockNotFound, ErrInsufficientBalance,
// or ErrStoreUnavailable. An error return means the ledger is
// unchanged.
func (s *ExecutionService) Execute(ctx context.Context, order *domain.Order) (*domain.Transaction, error) {
	user, err := s.users.GetByUsername(ctx, order.Username)
	if err != nil {
		return nil, asDomainError(err)
	}

	// Price is read exactly once; this snapshot feeds both the
	// balance computation and the persisted record.
	price, err := s.prices.CurrentPrice(ctx, order.Ticker)
	if err != nil {
		return nil, asDomainError(err)
	}

	total := price.MulVolume(order.Volume)

	// Advisory pre-check; the commit re-validates under the per-user
	// lock, which is the authoritative one.
	if order.Type == domain.TypeBuy && user.Balance < total {
		return nil, domain.ErrInsufficientBalance
	}

	txn := &domain.Transaction{
		ID:         uuid.New(),
		UserID:     user.ID,
		Ticker:     order.Ticker,
		Type:       order.Type,
		Volume:     order.Volume,
		UnitPrice:  price,
		TotalPrice: total,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.txns.CommitOrder(ctx, txn); err != nil {
		return nil, asDomainError(err)
	}

	return txn, nil
}

// asDomainError passes known domain errors through untouched and
// wraps everything else (timeouts, connection failures) as
// ErrStoreUnavailable so callers get a stable retry signal.
func asDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrStockNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidDateRange):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
}
