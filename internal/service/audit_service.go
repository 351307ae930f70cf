package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"stockledger/internal/domain"
)

// BalanceDrift reports a user whose stored balance disagrees with the
// balance reconstructed from the transaction log.
type BalanceDrift struct {
	UserID   uuid.UUID
	Username string
	Expected domain.Cents
	Actual   domain.Cents
}

// AuditService re-derives every user's balance from the append-only
// log and compares it to the stored balance. Any drift means the
// atomic commit discipline was violated somewhere; the audit never
// repairs, it only reports.
type AuditService struct {
	users domain.UserRepository
	txns  domain.TransactionRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(users domain.UserRepository, txns domain.TransactionRepository) *AuditService {
	return &AuditService{
		users: users,
		txns:  txns,
	}
}

// AuditBalances walks all users and checks that
// balance == initial balance + sum of committed effects.
func (s *AuditService) AuditBalances(ctx context.Context) ([]BalanceDrift, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for audit: %w", err)
	}

	var drifts []BalanceDrift
	for _, user := range users {
		txns, err := s.txns.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions for %s: %w", user.Username, err)
		}

		expected := user.InitialBalance
		for _, txn := range txns {
			expected += txn.BalanceEffect()
		}

		if expected != user.Balance {
			drifts = append(drifts, BalanceDrift{
				UserID:   user.ID,
				Username: user.Username,
				Expected: expected,
				Actual:   user.Balance,
			})
		}
	}

	return drifts, nil
}

// Run executes one audit pass and logs the outcome. Used by the cron
// scheduler.
func (s *AuditService) Run(ctx context.Context) error {
	drifts, err := s.AuditBalances(ctx)
	if err != nil {
		return err
	}

	if len(drifts) == 0 {
		log.Println("[OK] Ledger audit: all balances consistent")
		return nil
	}

	for _, d := range drifts {
		log.Printf("ERROR: Ledger audit drift for %s: stored=%s derived=%s",
			d.Username, d.Actual, d.Expected)
	}
	return fmt.Errorf("ledger audit found %d drifted balance(s)", len(drifts))
}
