// Package retry wraps storage-touching operations with bounded retries and
// exponential backoff. Only transient infrastructure failures (connectivity,
// operational timeouts) are retried; business rejections, constraint
// violations and lock timeouts propagate immediately.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/corebank/ledger/pkg/domain/ledger"
)

// Policy configures a retry loop.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the wait before the first retry; each subsequent retry
	// doubles it.
	BaseDelay time.Duration
}

// DefaultMutation is the policy for balance-changing operations.
var DefaultMutation = Policy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond}

// DefaultRead is the policy for read-only lookups.
var DefaultRead = Policy{MaxAttempts: 2, BaseDelay: 100 * time.Millisecond}

// Do executes op, retrying on transient failures according to the policy.
// Non-transient failures are returned unchanged without further attempts;
// exhausting the attempt budget returns the last transient failure.
func Do(ctx context.Context, logger *slog.Logger, policy Policy, op func() error) error {
	if logger == nil {
		logger = slog.Default()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = policy.BaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = policy.BaseDelay << uint(policy.MaxAttempts)

	attempt := 0
	wrapped := func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if !ledger.IsTransient(err) {
			return backoff.Permanent(err)
		}
		logger.Warn("transient store failure",
			"attempt", attempt, "max_attempts", policy.MaxAttempts, "error", err)
		return err
	}

	retries := policy.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.Retry(wrapped,
		backoff.WithContext(backoff.WithMaxRetries(bo, uint64(retries)), ctx))
}
