package app

import (
	"context"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/saradorri/gameplatform/internal/infrastructure/outbox"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func (a *application) InitOutboxProcessor(
	outboxRepo domain.OutboxRepository,
	ledgerUC domain.LedgerUseCase,
	db *gorm.DB,
	log *logger.Logger,
) domain.OutboxProcessor {
	return outbox.NewProcessor(outboxRepo, ledgerUC, db, log)
}

// RegisterOutboxProcessor ties the background loop to the fx lifecycle
func (a *application) RegisterOutboxProcessor(lc fx.Lifecycle, processor domain.OutboxProcessor) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			processor.StartBackgroundProcessing()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			processor.StopBackgroundProcessing()
			return nil
		},
	})
}
