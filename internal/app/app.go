package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/gameplatform/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Game Platform Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitKeyedLockManager,
			a.InitNotifierHub,
			a.InitPayoutRail,
			a.InitRepositories,
			a.InitLedgerUseCase,
			a.InitSettlementService,
			a.InitGameUseCase,
			a.InitYahtzeeUseCase,
			a.InitChessUseCase,
			a.InitTournamentUseCase,
			a.InitUserUseCase,
			a.InitOutboxProcessor,
			a.InitUserHandler,
			a.InitLedgerHandler,
			a.InitGameHandler,
			a.InitYahtzeeHandler,
			a.InitChessHandler,
			a.InitTournamentHandler,
			a.InitNotificationHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(
			a.RegisterServer,
			a.RegisterOutboxProcessor,
			a.RegisterSweeps,
		),
	)

	app.Run()
}
