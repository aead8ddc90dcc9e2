package ledger

import (
	"context"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/events"
	"github.com/corebank/ledger/pkg/repository"
	"github.com/corebank/ledger/pkg/retry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferResult reports a completed transfer.
type TransferResult struct {
	TransferID  string
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

// orderAccounts returns the two account numbers in their global lock order.
// Locks for any two-account operation are always acquired lexicographically
// smaller first, independent of transfer direction, so two transfers between
// the same pair can never wait on each other in a cycle.
func orderAccounts(a, b string) (first, second string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Transfer debits one account and credits another as a single atomic unit.
//
// Both account locks are held for the whole critical section, acquired in the
// global order from orderAccounts. If the second acquisition times out, the
// deferred release of the first lock runs before the timeout propagates; no
// lock ever leaks. Releases run in reverse acquisition order on every exit
// path, and a failed release is logged by the lock manager, never raised.
//
// The balance check runs inside the locked critical section, which already
// excludes every other mutator of either account: this engine is the only
// writer to the store, so no second re-check before commit is needed.
func (s *Service) Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (*TransferResult, error) {
	logger := s.logger.With("operation", "transfer",
		"from_account", fromAccount, "to_account", toAccount)

	// Same-account transfers are rejected before any lock is attempted;
	// acquiring the same lock twice would deadlock against ourselves.
	if fromAccount == toAccount {
		logger.Warn("transfer rejected", "error", ledger.ErrSameAccount)
		return nil, ledger.ErrSameAccount
	}
	amount, err := ledger.ValidateAmount(amount)
	if err != nil {
		logger.Warn("transfer rejected", "error", err)
		return nil, err
	}

	first, second := orderAccounts(fromAccount, toAccount)

	var result *TransferResult
	err = retry.Do(ctx, logger, s.mutationPolicy, func() error {
		if err := s.locks.Acquire(ctx, first, s.lockTimeout); err != nil {
			return err
		}
		defer s.locks.Release(first)
		if err := s.locks.Acquire(ctx, second, s.lockTimeout); err != nil {
			return err
		}
		defer s.locks.Release(second)

		return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			accounts, err := uow.AccountRepository()
			if err != nil {
				return err
			}
			transactions, err := uow.TransactionRepository()
			if err != nil {
				return err
			}

			// Fresh reads under both locks.
			source, err := accounts.Get(ctx, fromAccount)
			if err != nil {
				return err
			}
			dest, err := accounts.Get(ctx, toAccount)
			if err != nil {
				return err
			}

			// Debit enforces the sufficient-funds rule and fails with the
			// available/required amounts before anything is written.
			if err := source.Debit(amount); err != nil {
				return err
			}
			if err := dest.Credit(amount); err != nil {
				return err
			}

			if err := accounts.Update(ctx, source); err != nil {
				return err
			}
			if err := accounts.Update(ctx, dest); err != nil {
				return err
			}
			if err := transactions.Create(ctx,
				ledger.NewTransferTransaction(fromAccount, toAccount, amount)); err != nil {
				return err
			}

			result = &TransferResult{
				TransferID:  uuid.New().String(),
				FromAccount: fromAccount,
				ToAccount:   toAccount,
				Amount:      amount,
				FromBalance: source.Balance,
				ToBalance:   dest.Balance,
			}
			return nil
		})
	})
	if err != nil {
		logOutcome(logger, "transfer failed", err)
		return nil, err
	}

	logger.Info("transfer completed",
		"transfer_id", result.TransferID,
		"amount", amount.StringFixed(2),
		"from_balance", result.FromBalance.StringFixed(2),
		"to_balance", result.ToBalance.StringFixed(2))
	s.publish(ctx, events.TransactionCompleted{
		TransferID:  result.TransferID,
		Kind:        string(ledger.KindTransfer),
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amount,
		CompletedAt: time.Now(),
	})
	return result, nil
}
