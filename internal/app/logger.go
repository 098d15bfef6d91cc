package app

import (
	"github.com/saradorri/gameplatform/internal/config"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment())
}
