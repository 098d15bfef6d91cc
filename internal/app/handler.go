package app

import (
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/http/handlers"
	"github.com/saradorri/gameplatform/internal/http/middleware"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/saradorri/gameplatform/internal/infrastructure/notifier"
)

func (a *application) InitUserHandler(uc domain.UserUseCase, jwt auth.JWTService) *handlers.UserHandler {
	return handlers.NewUserHandler(uc, jwt)
}

func (a *application) InitLedgerHandler(uc domain.LedgerUseCase, log *logger.Logger) *handlers.LedgerHandler {
	return handlers.NewLedgerHandler(uc, log)
}

func (a *application) InitGameHandler(uc domain.GameUseCase) *handlers.GameHandler {
	return handlers.NewGameHandler(uc)
}

func (a *application) InitYahtzeeHandler(uc domain.YahtzeeUseCase) *handlers.YahtzeeHandler {
	return handlers.NewYahtzeeHandler(uc)
}

func (a *application) InitChessHandler(uc domain.ChessUseCase) *handlers.ChessHandler {
	return handlers.NewChessHandler(uc)
}

func (a *application) InitTournamentHandler(uc domain.TournamentUseCase) *handlers.TournamentHandler {
	return handlers.NewTournamentHandler(uc)
}

func (a *application) InitNotificationHandler(hub *notifier.Hub, jwt auth.JWTService) *handlers.NotificationHandler {
	return handlers.NewNotificationHandler(hub, jwt)
}

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
