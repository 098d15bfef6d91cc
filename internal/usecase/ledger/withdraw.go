package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/lock"
	"go.uber.org/zap"
)

// withdraw serializes per user: a second concurrent call for the same
// user waits for the first to finish and re-validates against the
// post-commit balance. Different users proceed in parallel.
func (uc *LedgerUseCase) withdraw(userID string, amount domain.Money, idempotencyKey string) (*domain.WithdrawResult, error) {
	if err := uc.validateWithdrawInput(amount, idempotencyKey); err != nil {
		return nil, err
	}

	key := lock.WithdrawKey(userID)
	if err := uc.lockManager.Lock(context.Background(), key); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Withdrawal is busy, try again", 503, err)
	}
	defer uc.lockManager.Unlock(key)

	tx, txTransactionRepo, _, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	existing, err := txTransactionRepo.GetByIdempotencyKey(idempotencyKey)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check idempotency key", 500, err)
	}
	if existing != nil {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeAlreadyProcessed, "Withdrawal with this idempotency key was already processed")
	}

	transaction, err := uc.apply(tx, userID, amount.Neg(), domain.TransactionTypeWithdrawal, nil, "Withdrawal", &idempotencyKey)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	// the debit is committed and authoritative; rail delivery is
	// re-driven through the outbox on failure, never rolled back
	uc.sendToRail(userID, amount, transaction.ID)
	uc.notifyBalance(userID, transaction.BalanceAfter)

	uc.logger.Info("Withdrawal processed",
		zap.String("userID", userID),
		zap.String("amount", amount.String()),
		zap.String("transactionID", transaction.ID))

	return &domain.WithdrawResult{
		NewBalance:  transaction.BalanceAfter,
		Transaction: transaction,
	}, nil
}

func (uc *LedgerUseCase) validateWithdrawInput(amount domain.Money, idempotencyKey string) error {
	if idempotencyKey == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Idempotency key is required", 400, nil)
	}
	if !amount.IsPositive() {
		return domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be greater than 0", 400, nil)
	}
	if amount.LessThan(domain.MinWithdrawal) {
		return domain.NewAppError(domain.ErrCodeBelowMinimum, "Amount is below the minimum withdrawal of "+domain.MinWithdrawal.String(), 400, nil)
	}
	return nil
}

// sendToRail pushes the withdrawal to the payout rail. Failures are an
// operational alert plus an outbox retry entry, not a rollback.
func (uc *LedgerUseCase) sendToRail(userID string, amount domain.Money, reference string) {
	_, err := uc.payoutRail.Send(domain.PayoutRequest{
		UserID:    userID,
		Amount:    amount.String(),
		Reference: reference,
	})
	if err == nil {
		return
	}

	uc.logger.Error("Payout rail delivery failed, queuing retry",
		zap.String("userID", userID),
		zap.String("amount", amount.String()),
		zap.String("reference", reference),
		zap.Error(err))

	event := &domain.OutboxEvent{
		ID:     uuid.NewString(),
		Type:   domain.EventTypePayoutRetry,
		Status: domain.EventStatusPending,
		Data: domain.JSONB{
			"user_id":   userID,
			"amount":    amount.String(),
			"reference": reference,
		},
		CreatedAt: time.Now(),
	}
	if saveErr := uc.outboxRepo.Save(event); saveErr != nil {
		uc.logger.Error("Failed to queue payout retry, manual reconciliation required",
			zap.String("reference", reference),
			zap.Error(saveErr))
	}
}
