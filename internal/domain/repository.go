package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines the interface for ledger account operations
type UserRepository interface {
	// Create creates a new ledger account
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetAll retrieves all users (audit walks the whole ledger)
	GetAll(ctx context.Context) ([]*User, error)
}

// TransactionRepository defines the interface for the append-only
// transaction log and the atomic order commit.
type TransactionRepository interface {
	// CommitOrder applies txn as one atomic unit scoped to the user:
	// balance check, balance mutation and log append either all
	// happen or none do. Returns ErrInsufficientBalance when a buy
	// would overdraw; the check here is authoritative even if the
	// caller pre-checked.
	CommitOrder(ctx context.Context, txn *Transaction) error

	// GetByID retrieves a committed transaction by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// ListByUser retrieves all transactions for a user, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)

	// ListByUserBetween retrieves the user's transactions with
	// created_at in [from, to), newest first
	ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*Transaction, error)
}

// StockRepository defines the interface for the stock catalog
type StockRepository interface {
	// Create adds a new stock to the catalog
	Create(ctx context.Context, stock *Stock) error

	// GetByTicker retrieves a stock by its ticker symbol
	GetByTicker(ctx context.Context, ticker string) (*Stock, error)

	// GetAll retrieves all catalog stocks
	GetAll(ctx context.Context) ([]*Stock, error)
}

// CredentialRepository defines the interface for identity records
type CredentialRepository interface {
	// Create creates a new credential
	Create(ctx context.Context, cred *Credential) error

	// GetByUsername retrieves a credential by login name
	GetByUsername(ctx context.Context, username string) (*Credential, error)
}

// PricingSource returns the current price for a ticker. Backed by the
// stock catalog; the price returned for an order is read exactly once
// and used for both the balance computation and the persisted record.
type PricingSource interface {
	CurrentPrice(ctx context.Context, ticker string) (Cents, error)
}
