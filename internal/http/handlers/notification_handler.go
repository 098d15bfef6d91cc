package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
	"github.com/saradorri/gameplatform/internal/infrastructure/notifier"
)

// NotificationHandler upgrades clients onto the websocket hub.
type NotificationHandler struct {
	hub        *notifier.Hub
	jwtService auth.JWTService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(hub *notifier.Hub, jwtService auth.JWTService) *NotificationHandler {
	return &NotificationHandler{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Subscribe opens a websocket subscription for the token's user.
// Browsers cannot set headers on websocket upgrades, so the token
// arrives as a query parameter.
// @Summary Subscribe to notifications
// @Description Upgrade to a websocket delivering game, balance and turn events
// @Tags notifications
// @Param token query string true "JWT token"
// @Success 101
// @Failure 401 {object} domain.ErrorResponse
// @Router /ws [get]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenMissing, "Token query parameter required", http.StatusUnauthorized, nil))
		return
	}

	userID, err := h.jwtService.ExtractUserIDFromToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized, err))
		return
	}

	_ = h.hub.HandleConnection(c.Writer, c.Request, userID)
}
