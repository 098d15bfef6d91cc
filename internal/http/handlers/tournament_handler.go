package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
)

// TournamentHandler handles HTTP requests for tournaments
type TournamentHandler struct {
	tournamentUseCase domain.TournamentUseCase
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(tournamentUseCase domain.TournamentUseCase) *TournamentHandler {
	return &TournamentHandler{tournamentUseCase: tournamentUseCase}
}

// CreateTournamentRequest represents the tournament creation request body
type CreateTournamentRequest struct {
	Name            string `json:"name" binding:"required" example:"Friday Night Dice"`
	GameType        string `json:"game_type" binding:"required" example:"yahtzee"`
	EntryFee        string `json:"entry_fee" binding:"required" example:"25.00"`
	MaxParticipants int    `json:"max_participants" binding:"required" example:"4"`
}

// TournamentResponse bundles a tournament with its entrants
type TournamentResponse struct {
	Tournament   *domain.Tournament              `json:"tournament"`
	Participants []*domain.TournamentParticipant `json:"participants"`
}

// Create opens a tournament pool
// @Summary Create tournament
// @Description Open a tournament pool hosted by the caller; joining is free until it fills
// @Tags tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTournamentRequest true "Tournament parameters"
// @Success 201 {object} domain.Tournament
// @Failure 400 {object} domain.ErrorResponse
// @Router /tournaments [post]
func (h *TournamentHandler) Create(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	entryFee, err := domain.ParseMoney(req.EntryFee)
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidAmount, "Invalid entry fee", 400, err))
		return
	}

	t, err := h.tournamentUseCase.Create(userID, req.Name, domain.GameType(req.GameType), entryFee, req.MaxParticipants)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// Join enters the authenticated user
// @Summary Join tournament
// @Description Enter the tournament; the final entrant triggers the atomic start
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} domain.Tournament
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /tournaments/{id}/join [post]
func (h *TournamentHandler) Join(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	t, err := h.tournamentUseCase.Join(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Get returns one tournament with its entrants
// @Summary Get tournament
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} TournamentResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /tournaments/{id} [get]
func (h *TournamentHandler) Get(c *gin.Context) {
	t, participants, err := h.tournamentUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, TournamentResponse{Tournament: t, Participants: participants})
}

// List lists tournaments by status
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" default(active)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} domain.Tournament
// @Router /tournaments [get]
func (h *TournamentHandler) List(c *gin.Context) {
	status := domain.TournamentStatus(c.DefaultQuery("status", string(domain.TournamentStatusActive)))
	limit, offset := parsePagination(c)
	tournaments, err := h.tournamentUseCase.List(status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournaments)
}
