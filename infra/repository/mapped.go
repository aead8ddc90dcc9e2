package repository

import (
	"context"
	"time"

	"github.com/corebank/ledger/infra/repository/account"
	"github.com/corebank/ledger/infra/repository/transaction"
	"github.com/corebank/ledger/pkg/domain/ledger"
)

// mappedAccounts applies MapStoreError to every account repository call, so
// lock-free reads used outside a unit of work classify the same way as writes
// inside one.
type mappedAccounts struct {
	inner *account.Repository
}

func (m *mappedAccounts) Get(ctx context.Context, accountNumber string) (*ledger.Account, error) {
	a, err := m.inner.Get(ctx, accountNumber)
	return a, MapStoreError(err)
}

func (m *mappedAccounts) GetByPhone(ctx context.Context, phone string) (*ledger.Account, error) {
	a, err := m.inner.GetByPhone(ctx, phone)
	return a, MapStoreError(err)
}

func (m *mappedAccounts) Exists(ctx context.Context, accountNumber string) (bool, error) {
	ok, err := m.inner.Exists(ctx, accountNumber)
	return ok, MapStoreError(err)
}

func (m *mappedAccounts) Create(ctx context.Context, a *ledger.Account) error {
	return MapStoreError(m.inner.Create(ctx, a))
}

func (m *mappedAccounts) Update(ctx context.Context, a *ledger.Account) error {
	return MapStoreError(m.inner.Update(ctx, a))
}

type mappedTransactions struct {
	inner *transaction.Repository
}

func (m *mappedTransactions) Create(ctx context.Context, tx *ledger.Transaction) error {
	return MapStoreError(m.inner.Create(ctx, tx))
}

func (m *mappedTransactions) ListByAccount(ctx context.Context, accountNumber string, limit int) ([]*ledger.Transaction, error) {
	txs, err := m.inner.ListByAccount(ctx, accountNumber, limit)
	return txs, MapStoreError(err)
}

func (m *mappedTransactions) CountSince(ctx context.Context, accountNumber string, since time.Time) (int64, error) {
	n, err := m.inner.CountSince(ctx, accountNumber, since)
	return n, MapStoreError(err)
}
