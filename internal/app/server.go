package app

import (
	"github.com/saradorri/gameplatform/internal/http"
	"github.com/saradorri/gameplatform/internal/http/handlers"
	"github.com/saradorri/gameplatform/internal/http/middleware"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	ledgerHandler *handlers.LedgerHandler,
	gameHandler *handlers.GameHandler,
	yahtzeeHandler *handlers.YahtzeeHandler,
	chessHandler *handlers.ChessHandler,
	tournamentHandler *handlers.TournamentHandler,
	notificationHandler *handlers.NotificationHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(
		jwtService,
		userHandler,
		ledgerHandler,
		gameHandler,
		yahtzeeHandler,
		chessHandler,
		tournamentHandler,
		notificationHandler,
		errorHandler,
		log,
		port,
	)
}
