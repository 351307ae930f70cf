package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"stockledger/internal/domain"
	"stockledger/internal/repository/memory"
)

// seedHistory commits one sell per given day for the seeded user.
func seedHistory(t *testing.T, store *memory.Store, userID uuid.UUID, days ...string) []*domain.Transaction {
	t.Helper()

	var txns []*domain.Transaction
	for _, day := range days {
		stamp, err := time.Parse(time.RFC3339, day+"T12:00:00Z")
		if err != nil {
			t.Fatalf("bad seed day %q: %v", day, err)
		}
		txn := &domain.Transaction{
			ID:         uuid.New(),
			UserID:     userID,
			Ticker:     "X",
			Type:       domain.TypeSell,
			Volume:     1,
			UnitPrice:  1000,
			TotalPrice: 1000,
			CreatedAt:  stamp,
		}
		if err := store.Transactions().CommitOrder(context.Background(), txn); err != nil {
			t.Fatalf("seed commit: %v", err)
		}
		txns = append(txns, txn)
	}
	return txns
}

func newQueryFixture(t *testing.T) (*QueryService, *memory.Store, *domain.User) {
	t.Helper()

	store := memory.NewStore()
	user := &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		Balance:        0,
		InitialBalance: 0,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewQueryService(store.Users(), store.Transactions()), store, user
}

func TestListByUser_NewestFirst(t *testing.T) {
	svc, store, user := newQueryFixture(t)
	seedHistory(t, store, user.ID, "2024-03-01", "2024-03-02", "2024-03-03")

	txns, err := svc.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(txns) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txns))
	}
	for i := 1; i < len(txns); i++ {
		if txns[i].CreatedAt.After(txns[i-1].CreatedAt) {
			t.Errorf("transactions not newest-first at index %d", i)
		}
	}
}

func TestListByUser_UserNotFound(t *testing.T) {
	svc, _, _ := newQueryFixture(t)

	_, err := svc.ListByUser(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestListByUser_EmptyHistory(t *testing.T) {
	svc, _, _ := newQueryFixture(t)

	txns, err := svc.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if txns == nil || len(txns) != 0 {
		t.Fatalf("got %v, want empty non-nil sequence", txns)
	}
}

func TestListByUserAndRange_InclusiveBounds(t *testing.T) {
	svc, store, user := newQueryFixture(t)
	seedHistory(t, store, user.ID, "2024-03-01", "2024-03-02", "2024-03-03", "2024-03-05")

	txns, err := svc.ListByUserAndRange(context.Background(), "alice", "2024-03-02", "2024-03-03")
	if err != nil {
		t.Fatalf("ListByUserAndRange: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}
	for _, txn := range txns {
		day := txn.CreatedAt.UTC().Format("2006-01-02")
		if day != "2024-03-02" && day != "2024-03-03" {
			t.Errorf("transaction on %s outside range", day)
		}
	}
}

func TestListByUserAndRange_SingleDay(t *testing.T) {
	svc, store, user := newQueryFixture(t)
	seedHistory(t, store, user.ID, "2024-03-01", "2024-03-02", "2024-03-03")

	txns, err := svc.ListByUserAndRange(context.Background(), "alice", "2024-03-02", "2024-03-02")
	if err != nil {
		t.Fatalf("ListByUserAndRange: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
}

func TestListByUserAndRange_MatchesUnboundedSubset(t *testing.T) {
	svc, store, user := newQueryFixture(t)
	seedHistory(t, store, user.ID, "2024-02-28", "2024-03-01", "2024-03-15", "2024-04-01")

	all, err := svc.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}

	ranged, err := svc.ListByUserAndRange(context.Background(), "alice", "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("ListByUserAndRange: %v", err)
	}

	want := 0
	for _, txn := range all {
		day := txn.CreatedAt.UTC().Format("2006-01-02")
		if day >= "2024-03-01" && day <= "2024-03-31" {
			want++
		}
	}
	if len(ranged) != want {
		t.Errorf("ranged = %d transactions, want %d", len(ranged), want)
	}
}

func TestListByUserAndRange_EmptyResult(t *testing.T) {
	svc, store, user := newQueryFixture(t)
	seedHistory(t, store, user.ID, "2024-03-01")

	txns, err := svc.ListByUserAndRange(context.Background(), "alice", "2020-01-01", "2020-01-31")
	if err != nil {
		t.Fatalf("expected empty sequence, got error: %v", err)
	}
	if len(txns) != 0 {
		t.Fatalf("got %d transactions, want 0", len(txns))
	}
}

func TestListByUserAndRange_InvalidDates(t *testing.T) {
	svc, _, _ := newQueryFixture(t)
	ctx := context.Background()

	cases := []struct{ start, end string }{
		{"not-a-date", "2024-03-01"},
		{"2024-03-01", "bogus"},
		{"2024-03-10", "2024-03-01"}, // inverted
		{"", ""},
	}
	for _, tc := range cases {
		_, err := svc.ListByUserAndRange(ctx, "alice", tc.start, tc.end)
		if !errors.Is(err, domain.ErrInvalidDateRange) {
			t.Errorf("(%q, %q): err = %v, want ErrInvalidDateRange", tc.start, tc.end, err)
		}
	}
}

func TestListByUserAndRange_UserNotFound(t *testing.T) {
	svc, _, _ := newQueryFixture(t)

	_, err := svc.ListByUserAndRange(context.Background(), "nobody", "2024-03-01", "2024-03-02")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
