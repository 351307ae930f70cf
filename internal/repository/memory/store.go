// Package memory provides an in-memory implementation of the
// repository interfaces. Useful for testing and development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"stockledger/internal/domain"
)

// Store holds the shared in-memory state behind the per-entity
// repository views. The order commit takes a per-user lock so that
// balance check, balance mutation and log append form one atomic
// unit; orders against different users proceed in parallel.
type Store struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]*domain.User
	usersByName map[string]uuid.UUID
	stocks      map[string]*domain.Stock
	creds       map[string]*domain.Credential
	txns        map[uuid.UUID]*domain.Transaction
	txnsByUser  map[uuid.UUID][]*domain.Transaction

	userLocks sync.Map // uuid.UUID -> *sync.Mutex
	stampMu   sync.Mutex
	lastStamp time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:       make(map[uuid.UUID]*domain.User),
		usersByName: make(map[string]uuid.UUID),
		stocks:      make(map[string]*domain.Stock),
		creds:       make(map[string]*domain.Credential),
		txns:        make(map[uuid.UUID]*domain.Transaction),
		txnsByUser:  make(map[uuid.UUID][]*domain.Transaction),
	}
}

// Users returns the ledger account view of the store.
func (s *Store) Users() domain.UserRepository { return &userRepo{s} }

// Transactions returns the transaction log view of the store.
func (s *Store) Transactions() domain.TransactionRepository { return &txnRepo{s} }

// Stocks returns the catalog view of the store.
func (s *Store) Stocks() domain.StockRepository { return &stockRepo{s} }

// Credentials returns the identity view of the store.
func (s *Store) Credentials() domain.CredentialRepository { return &credRepo{s} }

func (s *Store) userLock(id uuid.UUID) *sync.Mutex {
	l, _ := s.userLocks.LoadOrStore(id, &sync.Mutex{})
	return l.(*sync.Mutex)
}

// monotonicStamp clamps the given timestamp so commit times never go
// backwards within this store.
func (s *Store) monotonicStamp(t time.Time) time.Time {
	s.stampMu.Lock()
	defer s.stampMu.Unlock()
	if !t.After(s.lastStamp) {
		t = s.lastStamp.Add(time.Nanosecond)
	}
	s.lastStamp = t
	return t
}

// Compile-time checks that the views implement the repository interfaces
var (
	_ domain.UserRepository        = (*userRepo)(nil)
	_ domain.TransactionRepository = (*txnRepo)(nil)
	_ domain.StockRepository       = (*stockRepo)(nil)
	_ domain.CredentialRepository  = (*credRepo)(nil)
)

type userRepo struct{ s *Store }

// Create creates a new ledger account
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.usersByName[user.Username]; ok {
		return domain.ErrUsernameTaken
	}

	copied := *user
	r.s.users[copied.ID] = &copied
	r.s.usersByName[copied.Username] = copied.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// GetByUsername retrieves a user by username
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.usersByName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *r.s.users[id]
	return &copied, nil
}

// GetAll retrieves all users ordered by creation time
func (r *userRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

type txnRepo struct{ s *Store }

// CommitOrder applies the balance mutation and the log append as one
// atomic unit under the target user's lock. The store-wide mutex only
// guards the map touches, so orders against different users proceed
// in parallel.
func (r *txnRepo) CommitOrder(ctx context.Context, txn *domain.Transaction) error {
	lock := r.s.userLock(txn.UserID)
	lock.Lock()
	defer lock.Unlock()

	r.s.mu.RLock()
	user, ok := r.s.users[txn.UserID]
	var balance domain.Cents
	if ok {
		balance = user.Balance
	}
	r.s.mu.RUnlock()
	if !ok {
		return domain.ErrUserNotFound
	}

	// The per-user lock excludes other commits against this user, so
	// the balance read above cannot go stale before the write below.
	effect := txn.BalanceEffect()
	if balance+effect < 0 {
		return domain.ErrInsufficientBalance
	}

	committed := *txn
	committed.CreatedAt = r.s.monotonicStamp(txn.CreatedAt)

	r.s.mu.Lock()
	user.Balance = balance + effect
	user.UpdatedAt = committed.CreatedAt
	r.s.txns[committed.ID] = &committed
	r.s.txnsByUser[txn.UserID] = append(r.s.txnsByUser[txn.UserID], &committed)
	r.s.mu.Unlock()

	// Hand the assigned timestamp back to the caller.
	txn.CreatedAt = committed.CreatedAt
	return nil
}

// GetByID retrieves a committed transaction by its ID
func (r *txnRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.txns[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

// ListByUser retrieves all transactions for a user, newest first
func (r *txnRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored := r.s.txnsByUser[userID]
	txns := make([]*domain.Transaction, 0, len(stored))
	for _, t := range stored {
		copied := *t
		txns = append(txns, &copied)
	}
	sort.Slice(txns, func(i, j int) bool {
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
	return txns, nil
}

// ListByUserBetween retrieves the user's transactions with created_at
// in [from, to), newest first
func (r *txnRepo) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.Transaction, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	txns := make([]*domain.Transaction, 0, len(all))
	for _, t := range all {
		if !t.CreatedAt.Before(from) && t.CreatedAt.Before(to) {
			txns = append(txns, t)
		}
	}
	return txns, nil
}

type stockRepo struct{ s *Store }

// Create adds a new stock to the catalog
func (r *stockRepo) Create(ctx context.Context, stock *domain.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.stocks[stock.Ticker]; ok {
		return domain.ErrTickerExists
	}
	copied := *stock
	r.s.stocks[copied.Ticker] = &copied
	return nil
}

// GetByTicker retrieves a stock by its ticker symbol
func (r *stockRepo) GetByTicker(ctx context.Context, ticker string) (*domain.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.stocks[ticker]
	if !ok {
		return nil, domain.ErrStockNotFound
	}
	copied := *st
	return &copied, nil
}

// GetAll retrieves all catalog stocks ordered by ticker
func (r *stockRepo) GetAll(ctx context.Context) ([]*domain.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stocks := make([]*domain.Stock, 0, len(r.s.stocks))
	for _, st := range r.s.stocks {
		copied := *st
		stocks = append(stocks, &copied)
	}
	sort.Slice(stocks, func(i, j int) bool {
		return stocks[i].Ticker < stocks[j].Ticker
	})
	return stocks, nil
}

type credRepo struct{ s *Store }

// Create creates a new identity record
func (r *credRepo) Create(ctx context.Context, cred *domain.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.creds[cred.Username]; ok {
		return domain.ErrUsernameTaken
	}
	copied := *cred
	r.s.creds[copied.Username] = &copied
	return nil
}

// GetByUsername retrieves a credential by login name
func (r *credRepo) GetByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.creds[username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	copied := *c
	return &copied, nil
}
