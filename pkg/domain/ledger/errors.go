package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when a source or destination account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when the source balance is below the requested amount.
	// Use InsufficientFundsError to carry the available/required amounts.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount is returned when a transfer names the same account on both sides.
	ErrSameAccount = errors.New("source and destination accounts must differ")

	// ErrLockTimeout is returned when an account lock could not be acquired within the timeout.
	// It signals contention, not infrastructure failure, and is never retried.
	ErrLockTimeout = errors.New("timed out waiting for account lock")

	// ErrAmountNotPositive is returned when a mutation amount is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrAmountTooLarge is returned when a mutation amount exceeds MaxAmount.
	ErrAmountTooLarge = errors.New("amount exceeds the maximum allowed")

	// ErrStoreUnavailable marks transient storage failures (connectivity, operational
	// timeouts). Operations failing with it are safe to retry.
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrConflict is returned when a commit violates a storage constraint
	// (e.g. uniqueness). Non-retryable.
	ErrConflict = errors.New("storage constraint violated")

	// ErrPhoneAlreadyRegistered is returned when creating an account with a phone
	// number that is already in use.
	ErrPhoneAlreadyRegistered = errors.New("phone number is already registered")
)

// InsufficientFundsError reports a rejected debit together with what was
// available and what was required, so callers can surface both.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s, required %s",
		e.Available.StringFixed(2), e.Required.StringFixed(2))
}

// Is makes the error match ErrInsufficientFunds under errors.Is.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LockTimeoutError identifies which account lock could not be acquired.
type LockTimeoutError struct {
	Account string
}

func (e *LockTimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for lock on account %s", e.Account)
}

// Is makes the error match ErrLockTimeout under errors.Is.
func (e *LockTimeoutError) Is(target error) bool {
	return target == ErrLockTimeout
}

// IsBusinessError reports whether err is an expected business-rule rejection.
// Business rejections are final: they are never retried and logged at warn
// level at most.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrSameAccount) ||
		errors.Is(err, ErrLockTimeout) ||
		errors.Is(err, ErrAmountNotPositive) ||
		errors.Is(err, ErrAmountTooLarge) ||
		errors.Is(err, ErrPhoneAlreadyRegistered)
}

// IsTransient reports whether err is a transient infrastructure failure that
// the retry harness may retry.
func IsTransient(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
