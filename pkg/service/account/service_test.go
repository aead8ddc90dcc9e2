package account

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/corebank/ledger/infra/repository/memory"
	"github.com/corebank/ledger/pkg/accountnumber"
	"github.com/corebank/ledger/pkg/config"
	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	store *memory.Store
	svc   *Service
	ctx   context.Context
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.store = memory.NewStore()
	s.svc = NewService(s.store, logger, config.EngineConfig{
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
	})
	s.ctx = context.Background()
}

func (s *AccountServiceTestSuite) TestCreateAccount() {
	created, err := s.svc.CreateAccount(s.ctx, "Ada", "Lovelace", "+15550000001")
	s.Require().NoError(err)

	s.True(accountnumber.IsValid(created.AccountNumber))
	s.Equal("Ada", created.Name)
	s.Equal("Lovelace", created.Surname)
	s.Equal("+15550000001", created.Phone)
	s.True(created.Balance.IsZero(), "accounts open with a zero balance")

	fetched, err := s.svc.GetAccount(s.ctx, created.AccountNumber)
	s.Require().NoError(err)
	s.Equal(created.AccountNumber, fetched.AccountNumber)
	s.True(fetched.Balance.IsZero())
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicatePhone() {
	_, err := s.svc.CreateAccount(s.ctx, "Ada", "Lovelace", "+15550000001")
	s.Require().NoError(err)

	_, err = s.svc.CreateAccount(s.ctx, "Grace", "Hopper", "+15550000001")
	s.Require().ErrorIs(err, ledger.ErrPhoneAlreadyRegistered)
}

func (s *AccountServiceTestSuite) TestCreateAccount_DistinctNumbers() {
	first, err := s.svc.CreateAccount(s.ctx, "Ada", "Lovelace", "+15550000001")
	s.Require().NoError(err)
	second, err := s.svc.CreateAccount(s.ctx, "Grace", "Hopper", "+15550000002")
	s.Require().NoError(err)

	s.NotEqual(first.AccountNumber, second.AccountNumber)
}

func (s *AccountServiceTestSuite) TestGetAccount_Missing() {
	_, err := s.svc.GetAccount(s.ctx, "9999999999")
	s.Require().ErrorIs(err, ledger.ErrAccountNotFound)
}
