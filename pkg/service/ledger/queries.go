package ledger

import (
	"context"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/retry"
	"github.com/shopspring/decimal"
)

// MaxHistoryLimit caps the number of records a history query returns.
const MaxHistoryLimit = 100

// DefaultHistoryLimit is used when the caller does not specify one.
const DefaultHistoryLimit = 10

// GetBalance returns the current balance of an account. Reads take no locks
// and tolerate slightly stale values; only the store's own isolation applies.
func (s *Service) GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := retry.Do(ctx, s.logger, s.readPolicy, func() error {
		accounts, err := s.uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.Get(ctx, accountNumber)
		if err != nil {
			return err
		}
		balance = acct.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// GetHistory returns an account's transactions, most recent first. The limit
// is clamped to [1, MaxHistoryLimit]; zero or negative means the default.
// The account must exist.
func (s *Service) GetHistory(ctx context.Context, accountNumber string, limit int) ([]*ledger.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	var history []*ledger.Transaction
	err := retry.Do(ctx, s.logger, s.readPolicy, func() error {
		accounts, err := s.uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := accounts.Get(ctx, accountNumber); err != nil {
			return err
		}
		transactions, err := s.uow.TransactionRepository()
		if err != nil {
			return err
		}
		history, err = transactions.ListByAccount(ctx, accountNumber, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}
