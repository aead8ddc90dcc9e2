// Package account provides account creation and lookup. Account numbers come
// from the accountnumber generator; new accounts open with a zero balance.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/corebank/ledger/pkg/accountnumber"
	"github.com/corebank/ledger/pkg/config"
	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/repository"
	"github.com/corebank/ledger/pkg/retry"
)

// Service provides account lifecycle operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	policy retry.Policy
}

// NewService creates the account service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger, cfg config.EngineConfig) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:    uow,
		logger: logger,
		policy: retry.Policy{MaxAttempts: cfg.MaxRetries, BaseDelay: cfg.RetryBaseDelay},
	}
}

// CreateAccount registers a new account with a generated unique account
// number and a zero opening balance. The phone number must not already be
// registered. Number generation and the insert run in one unit of work, so a
// losing race on the unique constraints rolls back cleanly.
func (s *Service) CreateAccount(ctx context.Context, name, surname, phone string) (*ledger.Account, error) {
	logger := s.logger.With("operation", "create_account", "phone", phone)

	var created *ledger.Account
	err := retry.Do(ctx, logger, s.policy, func() error {
		return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			accounts, err := uow.AccountRepository()
			if err != nil {
				return err
			}

			_, err = accounts.GetByPhone(ctx, phone)
			switch {
			case err == nil:
				return ledger.ErrPhoneAlreadyRegistered
			case !errors.Is(err, ledger.ErrAccountNotFound):
				return err
			}

			number, err := accountnumber.Generate(ctx, accounts)
			if err != nil {
				return err
			}

			created = ledger.NewAccount(number, name, surname, phone)
			return accounts.Create(ctx, created)
		})
	})
	if err != nil {
		if ledger.IsBusinessError(err) {
			logger.Warn("account creation rejected", "error", err)
		} else {
			logger.Error("account creation failed", "error", err)
		}
		return nil, err
	}

	logger.Info("account created", "account", created.AccountNumber)
	return created, nil
}

// GetAccount returns the account by number, or ledger.ErrAccountNotFound.
func (s *Service) GetAccount(ctx context.Context, accountNumber string) (*ledger.Account, error) {
	var acct *ledger.Account
	err := retry.Do(ctx, s.logger, s.policy, func() error {
		accounts, err := s.uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = accounts.Get(ctx, accountNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}
