package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockSerializesSameKey(t *testing.T) {
	m := NewKeyedLockManager(zap.NewNop())

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, m.Lock(context.Background(), "user-1"))
			defer m.Unlock("user-1")
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestLockIndependentKeys(t *testing.T) {
	m := NewKeyedLockManager(zap.NewNop())
	require.NoError(t, m.Lock(context.Background(), "a"))
	defer m.Unlock("a")

	// a held lock on one key must not block another
	done := make(chan struct{})
	go func() {
		require.NoError(t, m.Lock(context.Background(), "b"))
		m.Unlock("b")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on independent key blocked")
	}
}

func TestLockRespectsContextCancellation(t *testing.T) {
	m := NewKeyedLockManager(zap.NewNop())
	require.NoError(t, m.Lock(context.Background(), "busy"))
	defer m.Unlock("busy")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := m.Lock(ctx, "busy")
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTryLockDropsDuplicates(t *testing.T) {
	m := NewKeyedLockManager(zap.NewNop())
	key := AITurnKey("game-1", "ai_bot")

	assert.True(t, m.TryLock(key))
	assert.False(t, m.TryLock(key), "second trigger must be suppressed")
	m.Unlock(key)
	assert.True(t, m.TryLock(key))
	m.Unlock(key)
}
