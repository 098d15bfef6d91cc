package ledger

import (
	"context"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"gorm.io/gorm"
)

// LedgerUseCase owns every balance mutation on the platform: the Apply
// primitive, user withdrawals and payment-webhook deposits.
type LedgerUseCase struct {
	transactionRepo domain.TransactionRepository
	userRepo        domain.UserRepository
	webhookRepo     domain.WebhookRepository
	outboxRepo      domain.OutboxRepository
	payoutRail      domain.PayoutRail
	notifier        domain.Notifier
	lockManager     LockManager
	db              *gorm.DB
	logger          *logger.Logger
}

// LockManager serializes withdrawal processing per user.
type LockManager interface {
	Lock(ctx context.Context, key string) error
	Unlock(key string)
}

// NewLedgerUseCase creates a new ledger usecase
func NewLedgerUseCase(
	transactionRepo domain.TransactionRepository,
	userRepo domain.UserRepository,
	webhookRepo domain.WebhookRepository,
	outboxRepo domain.OutboxRepository,
	payoutRail domain.PayoutRail,
	notifier domain.Notifier,
	lockManager LockManager,
	db *gorm.DB,
	logger *logger.Logger,
) domain.LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		webhookRepo:     webhookRepo,
		outboxRepo:      outboxRepo,
		payoutRail:      payoutRail,
		notifier:        notifier,
		lockManager:     lockManager,
		db:              db,
		logger:          logger,
	}
}

// Withdraw debits the user's balance and records the transaction.
func (uc *LedgerUseCase) Withdraw(userID string, amount domain.Money, idempotencyKey string) (*domain.WithdrawResult, error) {
	return uc.withdraw(userID, amount, idempotencyKey)
}

// HandlePaymentEvent applies a deposit webhook delivery idempotently.
func (uc *LedgerUseCase) HandlePaymentEvent(event domain.PaymentEvent) error {
	return uc.handlePaymentEvent(event)
}

// History returns the user's ledger entries, newest first.
func (uc *LedgerUseCase) History(userID string, limit, offset int) ([]*domain.Transaction, error) {
	return uc.transactionRepo.GetByUserID(userID, limit, offset)
}
