package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
)

// ChessHandler handles HTTP requests for chess matches
type ChessHandler struct {
	chessUseCase domain.ChessUseCase
}

// NewChessHandler creates a new chess handler
func NewChessHandler(chessUseCase domain.ChessUseCase) *ChessHandler {
	return &ChessHandler{chessUseCase: chessUseCase}
}

// MoveRequest represents the move request body
type MoveRequest struct {
	From      string `json:"from" binding:"required" example:"e2"`
	To        string `json:"to" binding:"required" example:"e4"`
	Promotion string `json:"promotion,omitempty" example:"Q"`
}

// ChessStateResponse bundles the board record with the move log
type ChessStateResponse struct {
	State *domain.ChessGameState `json:"state"`
	Moves []*domain.ChessMove    `json:"moves"`
}

// Move plays one move
// @Summary Play move
// @Description Apply a move for the player on turn; full legality enforced
// @Tags chess
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param request body MoveRequest true "Move"
// @Success 200 {object} domain.ChessGameState
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/chess/move [post]
func (h *ChessHandler) Move(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	state, err := h.chessUseCase.Move(c.Param("id"), userID, req.From, req.To, req.Promotion)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Resign concedes the match
// @Summary Resign
// @Description Resign the match; the opponent wins immediately
// @Tags chess
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.ChessGameState
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/chess/resign [post]
func (h *ChessHandler) Resign(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	state, err := h.chessUseCase.Resign(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// State returns the board record and move log
// @Summary Chess state
// @Tags chess
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} ChessStateResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id}/chess [get]
func (h *ChessHandler) State(c *gin.Context) {
	state, moves, err := h.chessUseCase.GetState(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ChessStateResponse{State: state, Moves: moves})
}
