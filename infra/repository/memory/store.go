// Package memory provides an in-memory implementation of the unit of work and
// repositories. It backs local development and tests; semantics mirror the
// gorm implementation, including full rollback of a failed unit of work.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/repository"
)

// Store holds all state behind one mutex: a unit of work is a critical
// section over a snapshot, restored wholesale when the work fails.
type Store struct {
	mu           sync.Mutex
	accounts     map[string]ledger.Account
	transactions []ledger.Transaction
	nextID       int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]ledger.Account),
		nextID:   1,
	}
}

type snapshot struct {
	accounts     map[string]ledger.Account
	transactions []ledger.Transaction
	nextID       int64
}

func (s *Store) snapshot() snapshot {
	accounts := make(map[string]ledger.Account, len(s.accounts))
	for k, v := range s.accounts {
		accounts[k] = v
	}
	transactions := make([]ledger.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	return snapshot{accounts: accounts, transactions: transactions, nextID: s.nextID}
}

func (s *Store) restore(snap snapshot) {
	s.accounts = snap.accounts
	s.transactions = snap.transactions
	s.nextID = snap.nextID
}

// Do runs fn against the store under its mutex. A nil return keeps the
// mutations; any error restores the pre-attempt snapshot, so no partial write
// is ever observable afterward.
func (s *Store) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot()
	if err := fn(&txStore{store: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// AccountRepository returns a session that locks per call.
func (s *Store) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepo{store: s, locking: true}, nil
}

// TransactionRepository returns a session that locks per call.
func (s *Store) TransactionRepository() (repository.TransactionRepository, error) {
	return &transactionRepo{store: s, locking: true}, nil
}

// Ping always succeeds: the store lives in process memory.
func (s *Store) Ping(context.Context) error { return nil }

// txStore is the view handed to a unit of work; its repositories run without
// re-locking because Do already holds the mutex.
type txStore struct {
	store *Store
}

func (t *txStore) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(t)
}

func (t *txStore) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepo{store: t.store}, nil
}

func (t *txStore) TransactionRepository() (repository.TransactionRepository, error) {
	return &transactionRepo{store: t.store}, nil
}

func (t *txStore) Ping(context.Context) error { return nil }

type accountRepo struct {
	store   *Store
	locking bool
}

func (r *accountRepo) withLock(fn func() error) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return fn()
}

func (r *accountRepo) Get(_ context.Context, accountNumber string) (*ledger.Account, error) {
	var out *ledger.Account
	err := r.withLock(func() error {
		a, ok := r.store.accounts[accountNumber]
		if !ok {
			return ledger.ErrAccountNotFound
		}
		copied := a
		out = &copied
		return nil
	})
	return out, err
}

func (r *accountRepo) GetByPhone(_ context.Context, phone string) (*ledger.Account, error) {
	var out *ledger.Account
	err := r.withLock(func() error {
		for _, a := range r.store.accounts {
			if a.Phone == phone {
				copied := a
				out = &copied
				return nil
			}
		}
		return ledger.ErrAccountNotFound
	})
	return out, err
}

func (r *accountRepo) Exists(_ context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := r.withLock(func() error {
		_, exists = r.store.accounts[accountNumber]
		return nil
	})
	return exists, err
}

func (r *accountRepo) Create(_ context.Context, a *ledger.Account) error {
	return r.withLock(func() error {
		if _, ok := r.store.accounts[a.AccountNumber]; ok {
			return ledger.ErrConflict
		}
		for _, existing := range r.store.accounts {
			if existing.Phone == a.Phone {
				return ledger.ErrConflict
			}
		}
		r.store.accounts[a.AccountNumber] = *a
		return nil
	})
}

func (r *accountRepo) Update(_ context.Context, a *ledger.Account) error {
	return r.withLock(func() error {
		if _, ok := r.store.accounts[a.AccountNumber]; !ok {
			return ledger.ErrAccountNotFound
		}
		r.store.accounts[a.AccountNumber] = *a
		return nil
	})
}

type transactionRepo struct {
	store   *Store
	locking bool
}

func (r *transactionRepo) withLock(fn func() error) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return fn()
}

func (r *transactionRepo) Create(_ context.Context, tx *ledger.Transaction) error {
	return r.withLock(func() error {
		tx.ID = r.store.nextID
		r.store.nextID++
		r.store.transactions = append(r.store.transactions, *tx)
		return nil
	})
}

func touches(tx *ledger.Transaction, accountNumber string) bool {
	if tx.ToAccount == accountNumber {
		return true
	}
	return tx.FromAccount != nil && *tx.FromAccount == accountNumber
}

func (r *transactionRepo) ListByAccount(_ context.Context, accountNumber string, limit int) ([]*ledger.Transaction, error) {
	var out []*ledger.Transaction
	err := r.withLock(func() error {
		for i := range r.store.transactions {
			tx := r.store.transactions[i]
			if touches(&tx, accountNumber) {
				copied := tx
				out = append(out, &copied)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
		if len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}

func (r *transactionRepo) CountSince(_ context.Context, accountNumber string, since time.Time) (int64, error) {
	var count int64
	err := r.withLock(func() error {
		for i := range r.store.transactions {
			tx := r.store.transactions[i]
			if touches(&tx, accountNumber) && !tx.CreatedAt.Before(since) {
				count++
			}
		}
		return nil
	})
	return count, err
}
