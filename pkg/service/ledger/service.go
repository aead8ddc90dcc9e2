// Package ledger implements the concurrent ledger mutation engine: deposits,
// transfers, balance/history queries and read-only diagnostics.
//
// Every mutation runs inside three nested layers, outermost first:
//
//	retry harness -> account lock(s) -> atomic unit of work
//
// The retry harness re-runs the whole attempt on transient store failures.
// The lock manager serializes mutations per account; mutations on disjoint
// account sets proceed in parallel. The unit of work commits or rolls back
// the balance mutation and the transaction-log append as one atomic scope, so
// neither is ever observable without the other.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/corebank/ledger/pkg/config"
	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/events"
	"github.com/corebank/ledger/pkg/locks"
	"github.com/corebank/ledger/pkg/repository"
	"github.com/corebank/ledger/pkg/retry"
)

// Service is the ledger mutation engine.
type Service struct {
	uow       repository.UnitOfWork
	locks     *locks.Manager
	publisher events.Publisher
	logger    *slog.Logger

	lockTimeout    time.Duration
	mutationPolicy retry.Policy
	readPolicy     retry.Policy
}

// NewService wires the engine from its injected collaborators. The lock
// manager must be the process-wide instance: per-account serialization only
// holds when every mutator shares the same lock table.
func NewService(
	uow repository.UnitOfWork,
	lockMgr *locks.Manager,
	publisher events.Publisher,
	logger *slog.Logger,
	cfg config.EngineConfig,
) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:         uow,
		locks:       lockMgr,
		publisher:   publisher,
		logger:      logger,
		lockTimeout: cfg.LockTimeout,
		mutationPolicy: retry.Policy{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   cfg.RetryBaseDelay,
		},
		readPolicy: retry.Policy{
			MaxAttempts: cfg.ReadRetries,
			BaseDelay:   cfg.RetryBaseDelay,
		},
	}
}

// publish emits a post-commit event, best effort. A publish failure never
// affects the already-committed mutation.
func (s *Service) publish(ctx context.Context, event events.TransactionCompleted) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish transaction event",
			"kind", event.Kind, "to_account", event.ToAccount, "error", err)
	}
}

// logOutcome logs a failed operation at the right level: business rejections
// are expected outcomes (warn at most), everything else is an error.
func logOutcome(logger *slog.Logger, msg string, err error) {
	if ledger.IsBusinessError(err) {
		logger.Warn(msg, "error", err)
		return
	}
	logger.Error(msg, "error", err)
}
