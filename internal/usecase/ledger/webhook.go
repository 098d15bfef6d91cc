package ledger

import (
	"errors"

	"github.com/saradorri/gameplatform/internal/domain"
	"go.uber.org/zap"
)

// handlePaymentEvent credits a deposit exactly once per event id. The
// processed-marker insert is a create-if-absent race with one winner;
// losers treat the delivery as a duplicate and succeed without effect.
func (uc *LedgerUseCase) handlePaymentEvent(event domain.PaymentEvent) error {
	if event.EventID == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Event id is required", 400, nil)
	}
	if event.UserID == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "User id is required", 400, nil)
	}
	if !event.Failed && !event.Amount.IsPositive() {
		return domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be greater than 0", 400, nil)
	}

	tx, _, _, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}

	if err := uc.webhookRepo.WithTransaction(tx).MarkProcessed(event.EventID); err != nil {
		tx.Rollback()
		if errors.Is(err, domain.ErrWebhookAlreadyProcessed) {
			uc.logger.Info("Duplicate webhook delivery skipped", zap.String("eventID", event.EventID))
			return nil
		}
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to mark webhook processed", 500, err)
	}

	if event.Failed {
		// record the marker so retries of the failure are absorbed too
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
		}
		uc.logger.Warn("Deposit failed at payment source",
			zap.String("eventID", event.EventID),
			zap.String("userID", event.UserID),
			zap.String("amount", event.Amount.String()))
		return nil
	}

	transaction, err := uc.Apply(tx, event.UserID, event.Amount, domain.TransactionTypeDeposit, nil, "Deposit via payment webhook")
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.notifyBalance(event.UserID, transaction.BalanceAfter)
	uc.logger.Info("Deposit credited",
		zap.String("eventID", event.EventID),
		zap.String("userID", event.UserID),
		zap.String("amount", event.Amount.String()))
	return nil
}
