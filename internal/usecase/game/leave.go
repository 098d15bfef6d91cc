package game

import (
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Leave removes a player. Before the game runs it is a full refund;
// once running it is a forfeit: the fee stays in the pot and the game
// continues without the player.
func (uc *GameUseCase) Leave(gameID, userID string) (*domain.Game, error) {
	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txGameRepo := uc.gameRepo.WithTransaction(tx)

	game, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	if game.Status.IsTerminal() {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeGameNotRunning, "Game already finished")
	}

	participant, err := txGameRepo.GetParticipant(gameID, userID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participant", 500, err)
	}
	if participant == nil {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeNotInGame, "User is not in this game")
	}

	if game.Status == domain.GameStatusRunning {
		return uc.forfeit(tx, game, userID)
	}
	return uc.refundLeave(tx, game, userID)
}

// refundLeave undoes a pre-running join completely: fee back, roster
// row gone, played counter rolled back.
func (uc *GameUseCase) refundLeave(tx *gorm.DB, game *domain.Game, userID string) (*domain.Game, error) {
	txGameRepo := uc.gameRepo.WithTransaction(tx)

	if _, err := uc.ledger.Apply(tx, userID, game.EntryFee, domain.TransactionTypeRefund, &game.ID, "Entry fee refund"); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := txGameRepo.RemoveParticipant(game.ID, userID); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to remove participant", 500, err)
	}
	if err := uc.userRepo.WithTransaction(tx).IncrementStats(userID, -1, 0, 0); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to roll back stats", 500, err)
	}

	game.CurrentPlayers--
	if game.CurrentPlayers == 0 {
		game.Status = domain.GameStatusOpen
	}
	game.UpdatedAt = time.Now()
	if err := txGameRepo.Update(game); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Player left game with refund",
		zap.String("gameID", game.ID),
		zap.String("userID", userID))
	uc.notifyGame(game)
	return game, nil
}

// forfeit removes a player from a running game without a refund. The
// turn pointer is recomputed from the surviving roster in join order;
// one survivor wins immediately, zero survivors force-completes.
func (uc *GameUseCase) forfeit(tx *gorm.DB, game *domain.Game, userID string) (*domain.Game, error) {
	txGameRepo := uc.gameRepo.WithTransaction(tx)

	// roster in join order, read fresh under the game lock
	participants, err := txGameRepo.GetParticipants(game.ID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}
	roster := rosterIDs(participants)

	if err := txGameRepo.RemoveParticipant(game.ID, userID); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to remove participant", 500, err)
	}

	game.CurrentPlayers--
	current := ""
	if game.CurrentTurnPlayerID != nil {
		current = *game.CurrentTurnPlayerID
	}
	if current == userID || current == "" {
		game.CurrentTurnPlayerID = NextActivePlayer(roster, userID, current)
	}
	game.UpdatedAt = time.Now()
	if err := txGameRepo.Update(game); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Player forfeited",
		zap.String("gameID", game.ID),
		zap.String("userID", userID),
		zap.Int("remaining", game.CurrentPlayers))
	uc.notifier.Publish(domain.Event{
		Type: domain.EventForfeit,
		Data: map[string]interface{}{
			"game_id": game.ID,
			"user_id": userID,
		},
	})

	// settlement runs its own transaction; the forfeit above stays
	// committed either way
	switch game.CurrentPlayers {
	case 1:
		var winner string
		for _, id := range roster {
			if id != userID {
				winner = id
			}
		}
		if err := uc.settlement.Settle(game.ID, &winner, nil); err != nil {
			uc.logger.Error("Settlement after forfeit-to-one failed",
				zap.String("gameID", game.ID), zap.Error(err))
			return nil, err
		}
	case 0:
		if err := uc.settlement.Settle(game.ID, nil, nil); err != nil {
			uc.logger.Error("Settlement after last forfeit failed",
				zap.String("gameID", game.ID), zap.Error(err))
			return nil, err
		}
	}

	updated, err := uc.gameRepo.GetByID(game.ID)
	if err != nil || updated == nil {
		return game, nil
	}
	return updated, nil
}
