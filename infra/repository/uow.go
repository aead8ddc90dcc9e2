// Package repository provides the gorm-backed unit of work and the storage
// error mapping shared by the concrete repositories.
package repository

import (
	"context"

	"github.com/corebank/ledger/infra/repository/account"
	"github.com/corebank/ledger/infra/repository/transaction"
	"github.com/corebank/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW implements repository.UnitOfWork on a gorm transaction. Repositories
// obtained inside Do are bound to the transaction session, so every read and
// write within one unit of work shares the same atomic scope.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work over the given database handle.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a storage transaction: commit on nil return, full rollback
// otherwise. The error fn returned is re-raised unchanged; storage-layer
// failures (including commit failures) are mapped into the domain taxonomy so
// the retry harness can classify them.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
	return MapStoreError(err)
}

// session returns the transaction when inside Do, the plain handle otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AccountRepository returns the account repository bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return &mappedAccounts{inner: account.New(u.session())}, nil
}

// TransactionRepository returns the transaction-log repository bound to the
// current session.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return &mappedTransactions{inner: transaction.New(u.session())}, nil
}

// Ping issues a trivial read against the store.
func (u *UoW) Ping(ctx context.Context) error {
	sqlDB, err := u.db.DB()
	if err != nil {
		return MapStoreError(err)
	}
	return MapStoreError(sqlDB.PingContext(ctx))
}
