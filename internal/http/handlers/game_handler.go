package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
)

// GameHandler handles HTTP requests for the game lifecycle
type GameHandler struct {
	gameUseCase domain.GameUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase) *GameHandler {
	return &GameHandler{gameUseCase: gameUseCase}
}

// CreateGameRequest represents the game creation request body
type CreateGameRequest struct {
	GameType   string `json:"game_type" binding:"required" example:"yahtzee"`
	EntryFee   string `json:"entry_fee" binding:"required" example:"10.00"`
	MaxPlayers int    `json:"max_players" binding:"required" example:"4"`
}

// InviteRequest represents the invitation request body
type InviteRequest struct {
	UserID string `json:"user_id" binding:"required" example:"bob"`
}

// Create creates a new game
// @Summary Create game
// @Description Create a game; the creator is seated and debited immediately
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGameRequest true "Game parameters"
// @Success 201 {object} domain.Game
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	entryFee, err := domain.ParseMoney(req.EntryFee)
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidAmount, "Invalid entry fee", 400, err))
		return
	}

	game, err := h.gameUseCase.CreateGame(userID, domain.GameType(req.GameType), entryFee, req.MaxPlayers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// List lists joinable games
// @Summary List open games
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} domain.Game
// @Router /games [get]
func (h *GameHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)
	games, err := h.gameUseCase.ListOpenGames(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// Get returns one game
// @Summary Get game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	game, err := h.gameUseCase.GetGame(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Join seats the authenticated user
// @Summary Join game
// @Description Join a joinable game; the entry fee is debited atomically with the seat
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/join [post]
func (h *GameHandler) Join(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	game, err := h.gameUseCase.Join(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Leave removes the authenticated user
// @Summary Leave game
// @Description Leave before start for a refund; leaving a running game forfeits
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/leave [post]
func (h *GameHandler) Leave(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	game, err := h.gameUseCase.Leave(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Active returns the user's current game, if any
// @Summary Active game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Game
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/active [get]
func (h *GameHandler) Active(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	game, err := h.gameUseCase.ActiveGameForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if game == nil {
		respondError(c, domain.NewNotFoundError("Active game"))
		return
	}
	c.JSON(http.StatusOK, game)
}

// Result returns the settlement snapshot of a completed game
// @Summary Match result
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.MatchResult
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id}/result [get]
func (h *GameHandler) Result(c *gin.Context) {
	result, err := h.gameUseCase.GetResult(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ForceCancel is the admin override cancelling a game with refunds
// @Summary Force-cancel game
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id}/cancel [post]
func (h *GameHandler) ForceCancel(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	game, err := h.gameUseCase.ForceCancel(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Invite invites another user to a game
// @Summary Invite user
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param request body InviteRequest true "Invitee"
// @Success 201 {object} domain.GameInvitation
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id}/invite [post]
func (h *GameHandler) Invite(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	inv, err := h.gameUseCase.Invite(c.Param("id"), userID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInvitations lists the user's pending invitations
// @Summary Pending invitations
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.GameInvitation
// @Router /invitations [get]
func (h *GameHandler) ListInvitations(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	invitations, err := h.gameUseCase.ListInvitations(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// AcceptInvitation accepts a pending invitation and joins the game
// @Summary Accept invitation
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} domain.Game
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /invitations/{id}/accept [post]
func (h *GameHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	game, err := h.gameUseCase.AcceptInvitation(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeclineInvitation declines a pending invitation
// @Summary Decline invitation
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} domain.ErrorResponse
// @Router /invitations/{id}/decline [post]
func (h *GameHandler) DeclineInvitation(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	if err := h.gameUseCase.DeclineInvitation(c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}
