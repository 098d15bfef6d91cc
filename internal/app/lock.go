package app

import (
	"github.com/saradorri/gameplatform/internal/infrastructure/lock"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
)

func (a *application) InitKeyedLockManager(log *logger.Logger) *lock.KeyedLockManager {
	return lock.NewKeyedLockManager(log.Zap())
}
