package ledger

import (
	"context"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/retry"
	"github.com/shopspring/decimal"
)

// concurrencyWindow is the lookback for recent-transaction counts.
const concurrencyWindow = time.Minute

// AccountCheck describes one side of a prospective transfer.
type AccountCheck struct {
	AccountNumber string
	Exists        bool
	Balance       decimal.Decimal
	LockHeld      bool
}

// TransferValidation is the advisory pre-flight report for a transfer. It
// reserves nothing: by the time the caller acts on it, the state may have
// moved on.
type TransferValidation struct {
	From            AccountCheck
	To              AccountCheck
	Amount          decimal.Decimal
	SameAccount     bool
	SufficientFunds bool
	Valid           bool
}

// ConcurrencyStatus reports recent mutation volume and the advisory lock flag
// for one account.
type ConcurrencyStatus struct {
	AccountNumber          string
	RecentTransactionCount int64
	LockHeld               bool
}

// ValidateTransfer reports whether a prospective transfer would pass the
// business checks right now, without taking locks or mutating anything.
func (s *Service) ValidateTransfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (*TransferValidation, error) {
	report := &TransferValidation{
		Amount:      ledger.Quantize(amount),
		SameAccount: fromAccount == toAccount,
	}

	err := retry.Do(ctx, s.logger, s.readPolicy, func() error {
		accounts, err := s.uow.AccountRepository()
		if err != nil {
			return err
		}
		report.From, err = s.checkAccount(ctx, accounts, fromAccount)
		if err != nil {
			return err
		}
		report.To, err = s.checkAccount(ctx, accounts, toAccount)
		return err
	})
	if err != nil {
		return nil, err
	}

	report.SufficientFunds = report.From.Exists &&
		!report.From.Balance.LessThan(report.Amount)
	_, amountErr := ledger.ValidateAmount(amount)
	report.Valid = report.From.Exists && report.To.Exists &&
		!report.SameAccount && report.SufficientFunds && amountErr == nil
	return report, nil
}

func (s *Service) checkAccount(ctx context.Context, accounts accountGetter, accountNumber string) (AccountCheck, error) {
	check := AccountCheck{
		AccountNumber: accountNumber,
		LockHeld:      s.locks.IsLocked(accountNumber),
	}
	acct, err := accounts.Get(ctx, accountNumber)
	switch {
	case err == nil:
		check.Exists = true
		check.Balance = acct.Balance
	case ledger.IsBusinessError(err):
		// Absent account: reported, not an error.
	default:
		return check, err
	}
	return check, nil
}

type accountGetter interface {
	Get(ctx context.Context, accountNumber string) (*ledger.Account, error)
}

// GetConcurrencyStatus counts the account's completed transactions within the
// recent window and reports the advisory lock flag. The account must exist.
func (s *Service) GetConcurrencyStatus(ctx context.Context, accountNumber string) (*ConcurrencyStatus, error) {
	status := &ConcurrencyStatus{AccountNumber: accountNumber}
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
		status.RecentTransactionCount, err = transactions.CountSince(
			ctx, accountNumber, time.Now().Add(-concurrencyWindow))
		return err
	})
	if err != nil {
		return nil, err
	}
	status.LockHeld = s.locks.IsLocked(accountNumber)
	return status, nil
}

// CheckHealth probes the store with a trivial read.
func (s *Service) CheckHealth(ctx context.Context) error {
	return s.uow.Ping(ctx)
}
