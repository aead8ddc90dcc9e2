package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastPolicy keeps backoff waits negligible in tests.
var fastPolicy = Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, fastPolicy, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, fastPolicy, func() error {
		calls++
		if calls < 3 {
			return fmt.Errorf("%w: connection reset", ledger.ErrStoreUnavailable)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustionReturnsLastTransientFailure(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, fastPolicy, func() error {
		calls++
		return fmt.Errorf("%w: attempt %d", ledger.ErrStoreUnavailable, calls)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "attempt 3")
	assert.Equal(t, fastPolicy.MaxAttempts, calls)
}

func TestDo_BusinessErrorsAreNeverRetried(t *testing.T) {
	for _, businessErr := range []error{
		ledger.ErrAccountNotFound,
		ledger.ErrSameAccount,
		&ledger.InsufficientFundsError{},
		&ledger.LockTimeoutError{Account: "1234567890"},
		ledger.ErrConflict,
	} {
		calls := 0
		err := Do(context.Background(), nil, fastPolicy, func() error {
			calls++
			return businessErr
		})
		require.Error(t, err)
		assert.Equal(t, businessErr, err, "error must propagate unchanged")
		assert.Equal(t, 1, calls, "%v must not be retried", businessErr)
	}
}

func TestDo_SingleAttemptPolicy(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, Policy{MaxAttempts: 1, BaseDelay: time.Millisecond}, func() error {
		calls++
		return fmt.Errorf("%w: down", ledger.ErrStoreUnavailable)
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancellationStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, nil, Policy{MaxAttempts: 10, BaseDelay: 10 * time.Millisecond}, func() error {
		calls++
		cancel()
		return fmt.Errorf("%w: down", ledger.ErrStoreUnavailable)
	})
	require.Error(t, err)
	assert.LessOrEqual(t, calls, 2)
}
