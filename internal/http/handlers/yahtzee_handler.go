package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
)

// YahtzeeHandler handles HTTP requests for the yahtzee turn engine
type YahtzeeHandler struct {
	yahtzeeUseCase domain.YahtzeeUseCase
}

// NewYahtzeeHandler creates a new yahtzee handler
func NewYahtzeeHandler(yahtzeeUseCase domain.YahtzeeUseCase) *YahtzeeHandler {
	return &YahtzeeHandler{yahtzeeUseCase: yahtzeeUseCase}
}

// HoldRequest represents the hold toggle request body
type HoldRequest struct {
	DieIndex *int `json:"die_index" binding:"required" example:"2"`
	Hold     bool `json:"hold" example:"true"`
}

// ScoreRequest represents the category commit request body
type ScoreRequest struct {
	Category string `json:"category" binding:"required" example:"fullHouse"`
}

// Roll rolls the dice for the caller's turn
// @Summary Roll dice
// @Description First roll throws all five dice, re-rolls respect holds; three rolls max
// @Tags yahtzee
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} domain.YahtzeeTurn
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/yahtzee/roll [post]
func (h *YahtzeeHandler) Roll(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	turn, err := h.yahtzeeUseCase.Roll(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turn)
}

// Hold toggles a die's hold flag
// @Summary Hold die
// @Tags yahtzee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param request body HoldRequest true "Die index and hold flag"
// @Success 200 {object} domain.YahtzeeTurn
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/yahtzee/hold [post]
func (h *YahtzeeHandler) Hold(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DieIndex == nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	turn, err := h.yahtzeeUseCase.Hold(c.Param("id"), userID, *req.DieIndex, req.Hold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turn)
}

// Score commits the turn's dice into a category
// @Summary Score category
// @Description Commit the current dice to an unused category and end the turn
// @Tags yahtzee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param request body ScoreRequest true "Category"
// @Success 200 {object} domain.YahtzeePlayerState
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/yahtzee/score [post]
func (h *YahtzeeHandler) Score(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	state, err := h.yahtzeeUseCase.ScoreCategory(c.Param("id"), userID, domain.YahtzeeCategory(req.Category))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// State returns every player's sheet
// @Summary Yahtzee state
// @Tags yahtzee
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {array} domain.YahtzeePlayerState
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id}/yahtzee [get]
func (h *YahtzeeHandler) State(c *gin.Context) {
	states, err := h.yahtzeeUseCase.GetState(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, states)
}
