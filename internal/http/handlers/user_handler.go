package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUseCase domain.UserUseCase
	jwtService  auth.JWTService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase, jwtService auth.JWTService) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		jwtService:  jwtService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  UserInfo `json:"user"`
}

// UserInfo represents user information
type UserInfo struct {
	ID            string `json:"id" example:"alice"`
	Username      string `json:"username" example:"alice"`
	Role          string `json:"role" example:"member"`
	Balance       string `json:"balance" example:"1000.00"`
	GamesPlayed   int    `json:"games_played" example:"12"`
	GamesWon      int    `json:"games_won" example:"4"`
	TotalWinnings string `json:"total_winnings" example:"320.00"`
}

func toUserInfo(user *domain.User) UserInfo {
	return UserInfo{
		ID:            user.ID,
		Username:      user.Username,
		Role:          string(user.Role),
		Balance:       user.Balance.String(),
		GamesPlayed:   user.GamesPlayed,
		GamesWon:      user.GamesWon,
		TotalWinnings: user.TotalWinnings.String(),
	}
}

// Login handles user authentication
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	token, err := h.userUseCase.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		respondError(c, domain.NewInternalError("Failed to process token", err))
		return
	}

	user, err := h.userUseCase.GetUserInfo(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  toUserInfo(user),
	})
}

// GetUserInfo handles getting user information
// @Summary Get user information
// @Description Get current user information from JWT token
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserInfo
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUserInfo(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserInfo(user))
}
