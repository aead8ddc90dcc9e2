// Package repository defines the data-access contracts of the ledger. The
// infra layer provides the storage-backed implementations; services depend
// only on these interfaces.
package repository

import (
	"context"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	// Get returns the account by number, or ledger.ErrAccountNotFound.
	Get(ctx context.Context, accountNumber string) (*ledger.Account, error)
	// GetByPhone returns the account registered with the phone number,
	// or ledger.ErrAccountNotFound.
	GetByPhone(ctx context.Context, phone string) (*ledger.Account, error)
	// Exists reports whether an account number is already assigned.
	Exists(ctx context.Context, accountNumber string) (bool, error)
	Create(ctx context.Context, account *ledger.Account) error
	// Update persists a mutated balance. Callers must hold the account's lock.
	Update(ctx context.Context, account *ledger.Account) error
}

// TransactionRepository defines data access for the append-only transaction log.
type TransactionRepository interface {
	// Create appends one transaction record and fills in its generated ID.
	Create(ctx context.Context, tx *ledger.Transaction) error
	// ListByAccount returns transactions where the account is source or
	// destination, most recent first, capped at limit.
	ListByAccount(ctx context.Context, accountNumber string, limit int) ([]*ledger.Transaction, error)
	// CountSince counts transactions touching the account created at or
	// after the given instant.
	CountSince(ctx context.Context, accountNumber string, since time.Time) (int64, error)
}
