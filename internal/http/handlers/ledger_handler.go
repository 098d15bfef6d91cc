package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LedgerHandler handles HTTP requests for money movement
type LedgerHandler struct {
	ledgerUseCase domain.LedgerUseCase
	logger        *logger.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUseCase domain.LedgerUseCase, logger *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// WithdrawRequest represents the withdrawal request body
type WithdrawRequest struct {
	Amount         string `json:"amount" binding:"required" example:"100.50"`
	IdempotencyKey string `json:"idempotency_key" binding:"required" example:"wd_8f14e45f"`
}

// WithdrawResponse represents the withdrawal response body
type WithdrawResponse struct {
	NewBalance  string              `json:"new_balance" example:"399.50"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionResponse represents one ledger entry
type TransactionResponse struct {
	TransactionID string  `json:"transaction_id" example:"f6c9a9e2"`
	Type          string  `json:"type" example:"withdrawal"`
	Amount        string  `json:"amount" example:"-100.50"`
	Description   string  `json:"description" example:"Withdrawal"`
	GameID        *string `json:"game_id,omitempty"`
	BalanceAfter  string  `json:"balance_after" example:"399.50"`
	CreatedAt     string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount.String(),
		Description:   t.Description,
		GameID:        t.GameID,
		BalanceAfter:  t.BalanceAfter.String(),
		CreatedAt:     t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// Withdraw handles withdrawal requests
// @Summary Withdraw funds
// @Description Debit the authenticated user's balance; idempotent per key
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 200 {object} WithdrawResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /ledger/withdraw [post]
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidAmount, "Invalid amount", 400, err))
		return
	}

	if len(req.IdempotencyKey) > 64 {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidRange, "Idempotency key too long", 400, nil))
		return
	}

	result, err := h.ledgerUseCase.Withdraw(userID, amount, req.IdempotencyKey)
	if err != nil {
		h.logger.Error("Withdraw failed",
			zap.String("user_id", userID),
			zap.String("amount", req.Amount),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, WithdrawResponse{
		NewBalance:  result.NewBalance.String(),
		Transaction: toTransactionResponse(result.Transaction),
	})
}

// History returns the authenticated user's ledger entries
// @Summary Transaction history
// @Description List the authenticated user's ledger entries, newest first
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} TransactionResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /ledger/history [get]
func (h *LedgerHandler) History(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	limit, offset := parsePagination(c)
	transactions, err := h.ledgerUseCase.History(userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// PaymentWebhookRequest represents a payment provider delivery
type PaymentWebhookRequest struct {
	EventID string `json:"event_id" binding:"required" example:"evt_12345"`
	UserID  string `json:"user_id" binding:"required" example:"alice"`
	Amount  string `json:"amount" binding:"required" example:"50.00"`
	Failed  bool   `json:"failed" example:"false"`
}

// PaymentWebhook ingests a payment provider event
// @Summary Payment webhook
// @Description Apply a payment event; duplicate deliveries are acknowledged without reprocessing
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body PaymentWebhookRequest true "Payment event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} domain.ErrorResponse
// @Router /webhooks/payment [post]
func (h *LedgerHandler) PaymentWebhook(c *gin.Context) {
	var req PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidAmount, "Invalid amount", 400, err))
		return
	}

	err = h.ledgerUseCase.HandlePaymentEvent(domain.PaymentEvent{
		EventID: req.EventID,
		UserID:  req.UserID,
		Amount:  amount,
		Failed:  req.Failed,
	})
	if err != nil {
		// A duplicate delivery is a success from the provider's view.
		if appErr, ok := domain.IsAppError(err); ok && appErr.Code == domain.ErrCodeAlreadyProcessed {
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
		h.logger.Error("Payment webhook failed",
			zap.String("event_id", req.EventID),
			zap.String("user_id", req.UserID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
