package ledger

import (
	"context"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/events"
	"github.com/corebank/ledger/pkg/repository"
	"github.com/corebank/ledger/pkg/retry"
	"github.com/shopspring/decimal"
)

// DepositResult reports a completed deposit.
type DepositResult struct {
	AccountNumber   string
	NewBalance      decimal.Decimal
	DepositedAmount decimal.Decimal
}

// Deposit credits a single account and appends one deposit record, as one
// atomic unit under the account's lock. The amount arrives range-checked from
// the schema layer; positivity and the upper bound are re-checked here
// defensively before any lock is taken.
func (s *Service) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*DepositResult, error) {
	logger := s.logger.With("operation", "deposit", "account", accountNumber)

	amount, err := ledger.ValidateAmount(amount)
	if err != nil {
		logger.Warn("deposit rejected", "error", err)
		return nil, err
	}

	var result *DepositResult
	err = retry.Do(ctx, logger, s.mutationPolicy, func() error {
		if err := s.locks.Acquire(ctx, accountNumber, s.lockTimeout); err != nil {
			return err
		}
		defer s.locks.Release(accountNumber)

		return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			accounts, err := uow.AccountRepository()
			if err != nil {
				return err
			}
			transactions, err := uow.TransactionRepository()
			if err != nil {
				return err
			}

			acct, err := accounts.Get(ctx, accountNumber)
			if err != nil {
				return err
			}
			if err := acct.Credit(amount); err != nil {
				return err
			}
			if err := accounts.Update(ctx, acct); err != nil {
				return err
			}
			if err := transactions.Create(ctx, ledger.NewDepositTransaction(accountNumber, amount)); err != nil {
				return err
			}

			result = &DepositResult{
				AccountNumber:   accountNumber,
				NewBalance:      acct.Balance,
				DepositedAmount: amount,
			}
			return nil
		})
	})
	if err != nil {
		logOutcome(logger, "deposit failed", err)
		return nil, err
	}

	logger.Info("deposit completed",
		"amount", amount.StringFixed(2), "new_balance", result.NewBalance.StringFixed(2))
	s.publish(ctx, events.TransactionCompleted{
		Kind:        string(ledger.KindDeposit),
		ToAccount:   accountNumber,
		Amount:      amount,
		CompletedAt: time.Now(),
	})
	return result, nil
}
