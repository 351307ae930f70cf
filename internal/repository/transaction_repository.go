package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stockledger/internal/domain"
)

// TransactionRepositoryImpl implements the TransactionRepository interface
type TransactionRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) domain.TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

// CommitOrder applies the balance check, balance mutation and log
// append as one database transaction. The user row is locked with
// FOR UPDATE, so two concurrent orders against the same user serialize
// here and neither can pass the balance check against a stale balance.
// The commit timestamp is assigned under the same lock, clamped past
// the user's latest transaction so created_at order matches commit
// order.
func (r *TransactionRepositoryImpl) CommitOrder(ctx context.Context, txn *domain.Transaction) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`,
		txn.UserID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to lock user row: %w", err)
	}

	newBalance := balance + int64(txn.BalanceEffect())
	if newBalance < 0 {
		return domain.ErrInsufficientBalance
	}

	// The caller's wall-clock stamp can predate a commit that won the
	// row lock first. Clamp it past the user's newest transaction.
	var stamp time.Time
	err = tx.QueryRow(ctx, `
		SELECT GREATEST(
			$1::timestamptz,
			COALESCE(MAX(created_at) + interval '1 microsecond', $1::timestamptz)
		)
		FROM transactions
		WHERE user_id = $2`,
		txn.CreatedAt, txn.UserID,
	).Scan(&stamp)
	if err != nil {
		return fmt.Errorf("failed to assign commit timestamp: %w", err)
	}
	txn.CreatedAt = stamp

	_, err = tx.Exec(ctx,
		`UPDATE users SET balance = $1, updated_at = $2 WHERE id = $3`,
		newBalance, txn.CreatedAt, txn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (
			id, user_id, ticker, type, volume, unit_price, total_price, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`,
		txn.ID,
		txn.UserID,
		txn.Ticker,
		txn.Type,
		txn.Volume,
		int64(txn.UnitPrice),
		int64(txn.TotalPrice),
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetByID retrieves a committed transaction by its ID
func (r *TransactionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT id, user_id, ticker, type, volume, unit_price, total_price, created_at
		FROM transactions
		WHERE id = $1
	`

	txn, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}

	return txn, nil
}

// ListByUser retrieves all transactions for a user, newest first
func (r *TransactionRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	query := `
		SELECT id, user_id, ticker, type, volume, unit_price, total_price, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by user: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListByUserBetween retrieves the user's transactions with created_at
// in [from, to), newest first
func (r *TransactionRepositoryImpl) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.Transaction, error) {
	query := `
		SELECT id, user_id, ticker, type, volume, unit_price, total_price, created_at
		FROM transactions
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by range: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	txn := &domain.Transaction{}
	var unitPrice, totalPrice int64
	err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&txn.Ticker,
		&txn.Type,
		&txn.Volume,
		&unitPrice,
		&totalPrice,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	txn.UnitPrice = domain.Cents(unitPrice)
	txn.TotalPrice = domain.Cents(totalPrice)
	return txn, nil
}
