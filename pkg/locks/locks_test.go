package locks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	require.NoError(t, m.Acquire(ctx, "1234567890", time.Second))
	assert.True(t, m.IsLocked("1234567890"))

	m.Release("1234567890")
	assert.False(t, m.IsLocked("1234567890"))

	// The lock is reusable after release.
	require.NoError(t, m.Acquire(ctx, "1234567890", time.Second))
	m.Release("1234567890")
}

func TestAcquire_TimesOutWhenHeld(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	require.NoError(t, m.Acquire(ctx, "1234567890", time.Second))
	defer m.Release("1234567890")

	err := m.Acquire(ctx, "1234567890", 50*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrLockTimeout)

	var lockErr *ledger.LockTimeoutError
	require.ErrorAs(t, err, &lockErr)
	assert.Equal(t, "1234567890", lockErr.Account)
}

func TestAcquire_DistinctAccountsDoNotBlock(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	require.NoError(t, m.Acquire(ctx, "1111111111", time.Second))
	defer m.Release("1111111111")

	require.NoError(t, m.Acquire(ctx, "2222222222", 50*time.Millisecond))
	m.Release("2222222222")
}

func TestIsLocked_UnknownAccount(t *testing.T) {
	m := NewManager(nil)
	assert.False(t, m.IsLocked("0000000000"))
}

func TestRelease_WithoutHoldDoesNotPanic(t *testing.T) {
	m := NewManager(nil)
	assert.NotPanics(t, func() { m.Release("1234567890") })
}

func TestAcquire_SerializesCriticalSections(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	const goroutines = 20
	var inSection, observedMax int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, m.Acquire(ctx, "1234567890", 5*time.Second))
			defer m.Release("1234567890")

			mu.Lock()
			inSection++
			if inSection > observedMax {
				observedMax = inSection
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inSection--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, observedMax, "at most one holder at a time")
}

func TestAcquire_BlocksUntilReleased(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	require.NoError(t, m.Acquire(ctx, "1234567890", time.Second))

	acquired := make(chan error, 1)
	go func() {
		acquired <- m.Acquire(ctx, "1234567890", 2*time.Second)
	}()

	time.Sleep(20 * time.Millisecond)
	m.Release("1234567890")

	select {
	case err := <-acquired:
		require.NoError(t, err)
		m.Release("1234567890")
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the released lock")
	}
}
