package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// KeyedLockManager serializes work per string key: per-user withdrawal
// processing and per-(game,player) AI turn processing. Mutexes are
// created on first use and kept for the process lifetime.
type KeyedLockManager struct {
	locks  sync.Map // map[string]*sync.Mutex
	logger *zap.Logger
}

func NewKeyedLockManager(logger *zap.Logger) *KeyedLockManager {
	return &KeyedLockManager{logger: logger}
}

// AITurnKey builds the re-entrancy key guarding one AI player's turn in
// one game.
func AITurnKey(gameID, userID string) string {
	return fmt.Sprintf("ai:%s:%s", gameID, userID)
}

// WithdrawKey builds the serialization key for a user's withdrawals.
func WithdrawKey(userID string) string {
	return "withdraw:" + userID
}

// Lock acquires the lock for the given key, giving up when the context
// is cancelled or after five seconds.
func (m *KeyedLockManager) Lock(ctx context.Context, key string) error {
	mu := m.getOrCreateMutex(key)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		m.logger.Debug("Acquired lock", zap.String("key", key))
		return nil
	case <-ctx.Done():
		go func() {
			// the goroutine above will still grab the mutex; release it
			<-lockChan
			mu.Unlock()
		}()
		m.logger.Warn("Failed to acquire lock: context cancelled", zap.String("key", key), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for %s: %w", key, ctx.Err())
	case <-time.After(5 * time.Second):
		go func() {
			<-lockChan
			mu.Unlock()
		}()
		m.logger.Warn("Failed to acquire lock: timeout", zap.String("key", key))
		return fmt.Errorf("failed to acquire lock for %s: timeout", key)
	}
}

// Unlock releases the lock for the given key.
func (m *KeyedLockManager) Unlock(key string) {
	muInterface, ok := m.locks.Load(key)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.String("key", key))
		return
	}
	muInterface.(*sync.Mutex).Unlock()
	m.logger.Debug("Released lock", zap.String("key", key))
}

// TryLock attempts to acquire the lock without blocking. Used to drop,
// not queue, duplicate AI turn triggers.
func (m *KeyedLockManager) TryLock(key string) bool {
	mu := m.getOrCreateMutex(key)
	acquired := mu.TryLock()
	if !acquired {
		m.logger.Debug("Try-lock busy", zap.String("key", key))
	}
	return acquired
}

func (m *KeyedLockManager) getOrCreateMutex(key string) *sync.Mutex {
	mu, ok := m.locks.Load(key)
	if ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
