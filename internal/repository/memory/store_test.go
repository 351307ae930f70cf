package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"stockledger/internal/domain"
)

func seedUser(t *testing.T, store *Store, username string, balance domain.Cents) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New(),
		Username:       username,
		Balance:        balance,
		InitialBalance: balance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func sellTxn(userID uuid.UUID, total domain.Cents) *domain.Transaction {
	return &domain.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Ticker:     "X",
		Type:       domain.TypeSell,
		Volume:     1,
		UnitPrice:  total,
		TotalPrice: total,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestCommitOrder_AtomicOnOverdraft(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice", 100)
	ctx := context.Background()

	txn := &domain.Transaction{
		ID:         uuid.New(),
		UserID:     user.ID,
		Ticker:     "X",
		Type:       domain.TypeBuy,
		Volume:     1,
		UnitPrice:  200,
		TotalPrice: 200,
		CreatedAt:  time.Now().UTC(),
	}

	err := store.Transactions().CommitOrder(ctx, txn)
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}

	after, _ := store.Users().GetByID(ctx, user.ID)
	if after.Balance != 100 {
		t.Errorf("balance = %d, want 100", after.Balance)
	}
	txns, _ := store.Transactions().ListByUser(ctx, user.ID)
	if len(txns) != 0 {
		t.Errorf("log has %d records, want 0", len(txns))
	}
}

func TestCommitOrder_UnknownUser(t *testing.T) {
	store := NewStore()

	err := store.Transactions().CommitOrder(context.Background(), sellTxn(uuid.New(), 100))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCommitOrder_MonotonicTimestamps(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice", 0)
	ctx := context.Background()

	stale := time.Now().UTC()
	var last time.Time
	for i := 0; i < 5; i++ {
		txn := sellTxn(user.ID, 100)
		txn.CreatedAt = stale // same wall-clock reading every time
		if err := store.Transactions().CommitOrder(ctx, txn); err != nil {
			t.Fatalf("CommitOrder: %v", err)
		}
		if !txn.CreatedAt.After(last) {
			t.Fatalf("timestamp %v not after previous %v", txn.CreatedAt, last)
		}
		last = txn.CreatedAt
	}
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Transactions().GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("err = %v, want ErrTransactionNotFound", err)
	}
}

func TestCommitOrder_ConcurrentAcrossUsers(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	const (
		nUsers  = 8
		nOrders = 10
	)
	users := make([]*domain.User, nUsers)
	for i := range users {
		users[i] = seedUser(t, store, fmt.Sprintf("user%d", i), 0)
	}

	var wg sync.WaitGroup
	errs := make(chan error, nUsers*nOrders)
	for _, user := range users {
		for j := 0; j < nOrders; j++ {
			wg.Add(1)
			go func(id uuid.UUID) {
				defer wg.Done()
				errs <- store.Transactions().CommitOrder(ctx, sellTxn(id, 100))
			}(user.ID)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("CommitOrder: %v", err)
		}
	}

	for _, user := range users {
		after, err := store.Users().GetByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if after.Balance != nOrders*100 {
			t.Errorf("%s balance = %d, want %d", user.Username, after.Balance, nOrders*100)
		}
		txns, _ := store.Transactions().ListByUser(ctx, user.ID)
		if len(txns) != nOrders {
			t.Errorf("%s log has %d records, want %d", user.Username, len(txns), nOrders)
		}
	}
}

func TestTransactionImmutability(t *testing.T) {
	store := NewStore()
	user := seedUser(t, store, "alice", 0)
	ctx := context.Background()

	txn := sellTxn(user.ID, 500)
	if err := store.Transactions().CommitOrder(ctx, txn); err != nil {
		t.Fatalf("CommitOrder: %v", err)
	}

	first, err := store.Transactions().GetByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	// Mutating a returned record must not affect the stored one.
	first.TotalPrice = 9999
	first.Type = domain.TypeBuy

	second, _ := store.Transactions().GetByID(ctx, txn.ID)
	if second.TotalPrice != 500 || second.Type != domain.TypeSell {
		t.Errorf("stored transaction changed: %+v", second)
	}
}

func TestUserCopySemantics(t *testing.T) {
	store := NewStore()
	seedUser(t, store, "alice", 100)
	ctx := context.Background()

	u, _ := store.Users().GetByUsername(ctx, "alice")
	u.Balance = 1 // should not leak into the store

	again, _ := store.Users().GetByUsername(ctx, "alice")
	if again.Balance != 100 {
		t.Errorf("balance = %d, want 100", again.Balance)
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	store := NewStore()
	seedUser(t, store, "alice", 0)

	dup := &domain.User{ID: uuid.New(), Username: "alice"}
	err := store.Users().Create(context.Background(), dup)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestStockCatalog(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	stock := &domain.Stock{ID: uuid.New(), Ticker: "X", Price: 5000}
	if err := store.Stocks().Create(ctx, stock); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Stocks().Create(ctx, &domain.Stock{ID: uuid.New(), Ticker: "X"}); !errors.Is(err, domain.ErrTickerExists) {
		t.Errorf("duplicate ticker err = %v, want ErrTickerExists", err)
	}

	got, err := store.Stocks().GetByTicker(ctx, "X")
	if err != nil {
		t.Fatalf("GetByTicker: %v", err)
	}
	if got.Price != 5000 {
		t.Errorf("price = %d, want 5000", got.Price)
	}

	if _, err := store.Stocks().GetByTicker(ctx, "MISSING"); !errors.Is(err, domain.ErrStockNotFound) {
		t.Errorf("missing ticker err = %v, want ErrStockNotFound", err)
	}
}
