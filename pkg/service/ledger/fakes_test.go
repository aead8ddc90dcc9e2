package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	domain "github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/corebank/ledger/pkg/repository"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []any
}

func (p *capturePublisher) Publish(_ context.Context, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// flakyUoW fails the first N units of work with a transient store failure,
// then delegates. It simulates connectivity loss that resolves on retry.
type flakyUoW struct {
	repository.UnitOfWork
	remaining int32
}

func (f *flakyUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if atomic.AddInt32(&f.remaining, -1) >= 0 {
		return fmt.Errorf("%w: connection reset", domain.ErrStoreUnavailable)
	}
	return f.UnitOfWork.Do(ctx, fn)
}

// brokenAppendUoW lets balance mutations through but fails the transaction-log
// append, to prove the whole unit of work rolls back.
type brokenAppendUoW struct {
	repository.UnitOfWork
}

func (b *brokenAppendUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return b.UnitOfWork.Do(ctx, func(inner repository.UnitOfWork) error {
		return fn(&brokenAppendUoW{UnitOfWork: inner})
	})
}

func (b *brokenAppendUoW) TransactionRepository() (repository.TransactionRepository, error) {
	inner, err := b.UnitOfWork.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return &brokenAppendRepo{TransactionRepository: inner}, nil
}

type brokenAppendRepo struct {
	repository.TransactionRepository
}

func (r *brokenAppendRepo) Create(context.Context, *domain.Transaction) error {
	return errors.New("simulated append failure")
}
