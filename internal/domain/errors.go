package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the stores and services. Callers match
// them with errors.Is to pick the outward signal: bad input, business
// rejection, or transient store failure.
var (
	// ErrUserNotFound means the user reference did not resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrStockNotFound means the ticker is not in the catalog.
	ErrStockNotFound = errors.New("stock not found")

	// ErrTransactionNotFound means the transaction id did not resolve.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInsufficientBalance is a business-rule rejection of a buy
	// order, not a system fault. No state is mutated.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidDateRange means a query bound is not a well-formed
	// calendar date, or start is after end.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrStoreUnavailable wraps backing-store timeouts and failures.
	// It is the only error worth retrying.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUsernameTaken is returned on a duplicate account or
	// credential handle.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrTickerExists is returned on a duplicate catalog ticker.
	ErrTickerExists = errors.New("ticker already exists")

	// ErrInvalidCredentials covers both unknown login names and bad
	// passwords, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed order field. It is the caller's
// fault and never reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order field %q: %s", e.Field, e.Reason)
}
