package app

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/http"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	defaultStaleGameTTL  = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// RegisterServer starts the HTTP server on application start
func (a *application) RegisterServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

// RegisterSweeps schedules the stale-game and invitation-expiry sweeps
func (a *application) RegisterSweeps(lc fx.Lifecycle, gameUC domain.GameUseCase, log *logger.Logger) error {
	staleTTL := a.config.Sweep.StaleGameTTL
	if staleTTL <= 0 {
		staleTTL = defaultStaleGameTTL
	}
	interval := a.config.Sweep.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := gameUC.SweepStaleGames(staleTTL); err != nil {
				log.Error("Stale game sweep failed", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := gameUC.SweepExpiredInvitations(); err != nil {
				log.Error("Invitation sweep failed", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Shutdown()
		},
	})
	return nil
}
