package repository

import "context"

// UnitOfWork is the atomic scope around a ledger mutation.
//
// Do opens a transactional boundary against the store, runs fn, commits when
// fn returns nil and rolls back fully otherwise, re-raising fn's error
// unchanged. Repositories obtained from the UnitOfWork passed to fn are bound
// to that transaction, so every read and write inside fn shares one session.
//
// The unit of work is orthogonal to account locking: the lock manager controls
// admission to the critical section, Do controls the storage-transaction
// boundary around it. A mutation is safe only when both are active.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account repository bound to the current
	// transaction (or a plain session outside Do).
	AccountRepository() (AccountRepository, error)
	// TransactionRepository returns the transaction-log repository bound to
	// the current transaction.
	TransactionRepository() (TransactionRepository, error)

	// Ping issues a trivial read against the store and reports its health.
	Ping(ctx context.Context) error
}
