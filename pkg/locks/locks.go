// Package locks provides per-account mutual exclusion for ledger mutations.
//
// One lock exists per distinct account number, created lazily on first use and
// reused for the life of the process. The manager is independent of whatever
// locking the storage engine offers: it controls admission to the critical
// section, while the unit-of-work controls the storage transaction around it.
//
// The manager is constructed once at service start and injected into the
// operations that need it. Locks are never re-entrant: an operation must not
// re-acquire a lock it already holds.
package locks

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"golang.org/x/sync/semaphore"
)

type entry struct {
	sem *semaphore.Weighted
	// held is advisory state for diagnostics only; the semaphore is the
	// authoritative guard.
	held atomic.Bool
}

// Manager serializes concurrent mutations to the same account number.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  *slog.Logger
}

// NewManager creates an empty lock table.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		entries: make(map[string]*entry),
		logger:  logger,
	}
}

func (m *Manager) entryFor(account string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[account]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		m.entries[account] = e
	}
	return e
}

// Acquire blocks until the account's lock is free or the timeout elapses.
// On timeout it returns a *ledger.LockTimeoutError (matching
// ledger.ErrLockTimeout), which signals contention and is terminal for the
// current attempt; no partial work has been done at that point.
func (m *Manager) Acquire(ctx context.Context, account string, timeout time.Duration) error {
	e := m.entryFor(account)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := e.sem.Acquire(ctx, 1); err != nil {
		m.logger.Warn("account lock acquisition timed out",
			"account", account, "timeout", timeout)
		return &ledger.LockTimeoutError{Account: account}
	}
	e.held.Store(true)
	return nil
}

// Release frees the account's lock. It must only be called by the holder, on
// every exit path of the critical section. Release failures are logged, never
// raised: by the time a lock is released the operation's outcome is already
// decided.
func (m *Manager) Release(account string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("account lock release failed", "account", account, "reason", r)
		}
	}()
	e := m.entryFor(account)
	e.held.Store(false)
	e.sem.Release(1)
}

// IsLocked reports whether a lock is currently held on the account. It exists
// for status reporting only; the answer may be stale by the time the caller
// reads it.
func (m *Manager) IsLocked(account string) bool {
	m.mu.Lock()
	e, ok := m.entries[account]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return e.held.Load()
}
