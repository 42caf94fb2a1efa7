package entities

import (
	"errors"
	"fmt"
	"time"
)

// Business-rule errors. All are detected before any state is mutated and
// reported to the caller with enough context to render a specific message.
var (
	// ErrInvalidAmount rejects non-positive stakes, transfers and grants
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrSelfTransfer rejects transfers where sender and recipient match
	ErrSelfTransfer = errors.New("cannot transfer to yourself")

	// ErrUnknownItem rejects purchases of items absent from the catalog
	ErrUnknownItem = errors.New("item not found in shop catalog")

	// ErrUnknownCategory rejects purchases against a nonexistent category
	ErrUnknownCategory = errors.New("unknown shop category")

	// ErrQuizAlreadyActive rejects quiz starts while a session is live for the guild
	ErrQuizAlreadyActive = errors.New("a quiz is already active in this server")

	// ErrAccountNotFound marks lookups of accounts that were never created
	ErrAccountNotFound = errors.New("account not found")
)

// InsufficientFundsError reports a balance too low for the requested amount
type InsufficientFundsError struct {
	Have int64
	Need int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: have %d, need %d", e.Have, e.Need)
}

// CooldownActiveError reports an operation attempted before its window elapsed
type CooldownActiveError struct {
	Operation string
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("%s cooldown active: %s remaining", e.Operation, e.Remaining.Round(time.Second))
}

// IsInsufficientFunds reports whether err is an InsufficientFundsError
func IsInsufficientFunds(err error) bool {
	var target *InsufficientFundsError
	return errors.As(err, &target)
}

// IsCooldownActive reports whether err is a CooldownActiveError
func IsCooldownActive(err error) bool {
	var target *CooldownActiveError
	return errors.As(err, &target)
}
