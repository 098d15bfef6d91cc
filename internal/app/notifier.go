package app

import (
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/saradorri/gameplatform/internal/infrastructure/notifier"
)

func (a *application) InitNotifierHub(log *logger.Logger) (*notifier.Hub, domain.Notifier) {
	hub := notifier.NewHub(log)
	return hub, hub
}
