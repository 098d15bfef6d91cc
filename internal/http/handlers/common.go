package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
)

// respondError maps the error to its HTTP status and writes the
// standard envelope.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		if requestID, exists := c.Get("request_id"); exists {
			appErr.RequestID = requestID.(string)
		}
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(
		domain.NewInternalError("Internal server error", err)))
}

// getAuthenticatedUserID extracts the authenticated user ID set by the
// JWT middleware.
func getAuthenticatedUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	return userID.(string), true
}

// parsePagination reads limit/offset query params with sane bounds.
func parsePagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request"`
}
