package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/http/handlers"
	"github.com/saradorri/gameplatform/internal/http/middleware"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router              *gin.Engine
	jwtService          auth.JWTService
	userHandler         *handlers.UserHandler
	ledgerHandler       *handlers.LedgerHandler
	gameHandler         *handlers.GameHandler
	yahtzeeHandler      *handlers.YahtzeeHandler
	chessHandler        *handlers.ChessHandler
	tournamentHandler   *handlers.TournamentHandler
	notificationHandler *handlers.NotificationHandler
	errorHandler        *middleware.ErrorHandler
	port                string
}

// NewServer creates a new HTTP server
func NewServer(
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
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:              router,
		jwtService:          jwtService,
		userHandler:         userHandler,
		ledgerHandler:       ledgerHandler,
		gameHandler:         gameHandler,
		yahtzeeHandler:      yahtzeeHandler,
		chessHandler:        chessHandler,
		tournamentHandler:   tournamentHandler,
		notificationHandler: notificationHandler,
		errorHandler:        errorHandler,
		port:                port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/ws", s.notificationHandler.Subscribe)

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", s.userHandler.Login)
		}

		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/payment", s.ledgerHandler.PaymentWebhook)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.GetUserInfo)
			}

			ledgerRoutes := protected.Group("/ledger")
			{
				ledgerRoutes.POST("/withdraw", s.ledgerHandler.Withdraw)
				ledgerRoutes.GET("/history", s.ledgerHandler.History)
			}

			gameRoutes := protected.Group("/games")
			{
				gameRoutes.POST("", s.gameHandler.Create)
				gameRoutes.GET("", s.gameHandler.List)
				gameRoutes.GET("/active", s.gameHandler.Active)
				gameRoutes.GET("/:id", s.gameHandler.Get)
				gameRoutes.POST("/:id/join", s.gameHandler.Join)
				gameRoutes.POST("/:id/leave", s.gameHandler.Leave)
				gameRoutes.GET("/:id/result", s.gameHandler.Result)
				gameRoutes.POST("/:id/invite", s.gameHandler.Invite)

				gameRoutes.GET("/:id/yahtzee", s.yahtzeeHandler.State)
				gameRoutes.POST("/:id/yahtzee/roll", s.yahtzeeHandler.Roll)
				gameRoutes.POST("/:id/yahtzee/hold", s.yahtzeeHandler.Hold)
				gameRoutes.POST("/:id/yahtzee/score", s.yahtzeeHandler.Score)

				gameRoutes.GET("/:id/chess", s.chessHandler.State)
				gameRoutes.POST("/:id/chess/move", s.chessHandler.Move)
				gameRoutes.POST("/:id/chess/resign", s.chessHandler.Resign)
			}

			adminRoutes := protected.Group("/games")
			adminRoutes.Use(middleware.RequireRole(domain.RoleAdmin))
			{
				adminRoutes.POST("/:id/cancel", s.gameHandler.ForceCancel)
			}

			invitationRoutes := protected.Group("/invitations")
			{
				invitationRoutes.GET("", s.gameHandler.ListInvitations)
				invitationRoutes.POST("/:id/accept", s.gameHandler.AcceptInvitation)
				invitationRoutes.POST("/:id/decline", s.gameHandler.DeclineInvitation)
			}

			tournamentRoutes := protected.Group("/tournaments")
			{
				tournamentRoutes.POST("", s.tournamentHandler.Create)
				tournamentRoutes.GET("", s.tournamentHandler.List)
				tournamentRoutes.GET("/:id", s.tournamentHandler.Get)
				tournamentRoutes.POST("/:id/join", s.tournamentHandler.Join)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
