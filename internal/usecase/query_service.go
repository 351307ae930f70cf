package usecase

import (
	"context"
	"fmt"

	"stockledger/internal/domain"
	"stockledger/internal/utils"
)

// QueryService retrieves committed transactions. Read-only; it never
// mutates the ledger.
type QueryService struct {
	users domain.UserRepository
	txns  domain.TransactionRepository
}

// NewQueryService creates a new QueryService
func NewQueryService(users domain.UserRepository, txns domain.TransactionRepository) *QueryService {
	return &QueryService{
		users: users,
		txns:  txns,
	}
}

// ListByUser returns all transactions for the user, newest first. A
// user with no transactions gets an empty sequence, not an error.
func (s *QueryService) ListByUser(ctx context.Context, username string) ([]*domain.Transaction, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, asDomainError(err)
	}

	txns, err := s.txns.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, asDomainError(err)
	}
	if txns == nil {
		txns = []*domain.Transaction{}
	}
	return txns, nil
}

// ListByUserAndRange returns the user's transactions whose creation
// date falls within [start, end], both given as YYYY-MM-DD calendar
// dates, inclusive at day granularity.
func (s *QueryService) ListByUserAndRange(ctx context.Context, username, start, end string) ([]*domain.Transaction, error) {
	startDay, err := utils.ParseDay(start)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start date %q", domain.ErrInvalidDateRange, start)
	}
	endDay, err := utils.ParseDay(end)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end date %q", domain.ErrInvalidDateRange, end)
	}
	if startDay.After(endDay) {
		return nil, fmt.Errorf("%w: start %s after end %s", domain.ErrInvalidDateRange, start, end)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, asDomainError(err)
	}

	from, to := utils.DayRange(startDay, endDay)
	txns, err := s.txns.ListByUserBetween(ctx, user.ID, from, to)
	if err != nil {
		return nil, asDomainError(err)
	}
	if txns == nil {
		txns = []*domain.Transaction{}
	}
	return txns, nil
}
