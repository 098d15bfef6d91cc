package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/gameplatform/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupTransactionDB sets up a database transaction with repositories
func (uc *LedgerUseCase) setupTransactionDB() (*gorm.DB, domain.TransactionRepository, domain.UserRepository, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, nil, nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	txTransactionRepo := uc.transactionRepo.WithTransaction(tx)
	txUserRepo := uc.userRepo.WithTransaction(tx)

	return tx, txTransactionRepo, txUserRepo, nil
}

// Apply is the single balance-mutation primitive: row-lock the user,
// apply the signed delta, reject a negative result, append the paired
// ledger entry. Runs inside the caller's transaction.
func (uc *LedgerUseCase) Apply(dbTx *gorm.DB, userID string, delta domain.Money, txType domain.TransactionType, gameID *string, description string) (*domain.Transaction, error) {
	return uc.apply(dbTx, userID, delta, txType, gameID, description, nil)
}

func (uc *LedgerUseCase) apply(dbTx *gorm.DB, userID string, delta domain.Money, txType domain.TransactionType, gameID *string, description string, idempotencyKey *string) (*domain.Transaction, error) {
	txUserRepo := uc.userRepo.WithTransaction(dbTx)
	txTransactionRepo := uc.transactionRepo.WithTransaction(dbTx)

	user, err := txUserRepo.GetByIDForUpdate(userID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if user == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}

	newBalance := user.Balance.Add(delta)
	if newBalance.IsNegative() {
		return nil, domain.NewInsufficientBalanceError(user.Balance)
	}

	if err := txUserRepo.UpdateBalance(userID, newBalance); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update balance", 500, err)
	}

	transaction := &domain.Transaction{
		ID:             uuid.NewString(),
		UserID:         userID,
		Type:           txType,
		Amount:         delta,
		Description:    description,
		GameID:         gameID,
		IdempotencyKey: idempotencyKey,
		BalanceAfter:   newBalance,
		CreatedAt:      time.Now(),
	}
	if err := txTransactionRepo.Create(transaction); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create transaction", 500, err)
	}

	uc.logger.Debug("Ledger entry applied",
		zap.String("userID", userID),
		zap.String("type", string(txType)),
		zap.String("amount", delta.String()),
		zap.String("balanceAfter", newBalance.String()))
	return transaction, nil
}

// notifyBalance publishes a best-effort balance-update event.
func (uc *LedgerUseCase) notifyBalance(userID string, balance domain.Money) {
	uc.notifier.Publish(domain.Event{
		Type:    domain.EventBalanceUpdate,
		UserIDs: []string{userID},
		Data: map[string]interface{}{
			"user_id": userID,
			"balance": balance.String(),
		},
	})
}
