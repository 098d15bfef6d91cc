package game

import (
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GameUseCase drives the game lifecycle state machine: creation, fill,
// forfeit and cancellation, plus invitations. Terminal scoring is
// delegated to the settlement service.
type GameUseCase struct {
	gameRepo        domain.GameRepository
	userRepo        domain.UserRepository
	invitationRepo  domain.InvitationRepository
	yahtzeeRepo     domain.YahtzeeRepository
	chessRepo       domain.ChessRepository
	matchResultRepo domain.MatchResultRepository
	ledger          domain.LedgerService
	settlement      domain.SettlementService
	notifier        domain.Notifier
	db              *gorm.DB
	logger          *logger.Logger
}

// NewGameUseCase creates a new game usecase
func NewGameUseCase(
	gameRepo domain.GameRepository,
	userRepo domain.UserRepository,
	invitationRepo domain.InvitationRepository,
	yahtzeeRepo domain.YahtzeeRepository,
	chessRepo domain.ChessRepository,
	matchResultRepo domain.MatchResultRepository,
	ledger domain.LedgerService,
	settlement domain.SettlementService,
	notifier domain.Notifier,
	db *gorm.DB,
	logger *logger.Logger,
) domain.GameUseCase {
	return &GameUseCase{
		gameRepo:        gameRepo,
		userRepo:        userRepo,
		invitationRepo:  invitationRepo,
		yahtzeeRepo:     yahtzeeRepo,
		chessRepo:       chessRepo,
		matchResultRepo: matchResultRepo,
		ledger:          ledger,
		settlement:      settlement,
		notifier:        notifier,
		db:              db,
		logger:          logger,
	}
}

// setupTransactionDB sets up a database transaction
func (uc *GameUseCase) setupTransactionDB() (*gorm.DB, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	return tx, nil
}

// GetGame returns the game, repairing partial initialization first.
func (uc *GameUseCase) GetGame(gameID string) (*domain.Game, error) {
	return uc.EnsureInitialized(gameID)
}

// ListOpenGames lists joinable games, newest first.
func (uc *GameUseCase) ListOpenGames(limit, offset int) ([]*domain.Game, error) {
	return uc.gameRepo.ListByStatus([]domain.GameStatus{domain.GameStatusOpen, domain.GameStatusFilling}, limit, offset)
}

// GetResult returns the settlement snapshot for a completed game.
func (uc *GameUseCase) GetResult(gameID string) (*domain.MatchResult, error) {
	result, err := uc.matchResultRepo.GetByGameID(gameID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get match result from DB", 500, err)
	}
	if result == nil {
		return nil, domain.NewNotFoundError("Match result")
	}
	return result, nil
}

// ForceCancel is the admin override: refund every current participant
// and close the game.
func (uc *GameUseCase) ForceCancel(gameID, adminID string) (*domain.Game, error) {
	admin, err := uc.userRepo.GetByID(adminID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if admin == nil || admin.Role != domain.RoleAdmin {
		return nil, domain.NewForbiddenError("Admin role required")
	}

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
		return nil, domain.NewConflictError(domain.ErrCodeGameNotJoinable, "Game already finished")
	}

	participants, err := txGameRepo.GetParticipants(gameID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}

	for _, p := range participants {
		if _, err := uc.ledger.Apply(tx, p.UserID, game.EntryFee, domain.TransactionTypeRefund, &game.ID, "Entry fee refund (game cancelled)"); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := txGameRepo.RemoveParticipant(gameID, p.UserID); err != nil {
			tx.Rollback()
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to remove participant", 500, err)
		}
	}

	game.Status = domain.GameStatusCancelled
	game.CurrentPlayers = 0
	game.CurrentTurnPlayerID = nil
	game.UpdatedAt = time.Now()
	if err := txGameRepo.Update(game); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Warn("Game force-cancelled",
		zap.String("gameID", gameID),
		zap.String("adminID", adminID),
		zap.Int("refunded", len(participants)))
	uc.notifyGame(game)
	return game, nil
}

// SweepStaleGames cancels open games that sat unfilled past the cutoff,
// refunding any early joiners.
func (uc *GameUseCase) SweepStaleGames(olderThan time.Duration) error {
	stale, err := uc.gameRepo.ListStaleOpen(time.Now().Add(-olderThan), 100)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list stale games", 500, err)
	}

	for _, g := range stale {
		if err := uc.cancelStale(g.ID); err != nil {
			uc.logger.Error("Failed to cancel stale game", zap.String("gameID", g.ID), zap.Error(err))
		}
	}
	return nil
}

func (uc *GameUseCase) cancelStale(gameID string) error {
	tx, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}
	txGameRepo := uc.gameRepo.WithTransaction(tx)

	game, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	// re-check under lock; a join may have raced the sweep
	if game == nil || (game.Status != domain.GameStatusOpen && game.Status != domain.GameStatusFilling) {
		tx.Rollback()
		return nil
	}

	participants, err := txGameRepo.GetParticipants(gameID)
	if err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}
	for _, p := range participants {
		if _, err := uc.ledger.Apply(tx, p.UserID, game.EntryFee, domain.TransactionTypeRefund, &game.ID, "Entry fee refund (game expired)"); err != nil {
			tx.Rollback()
			return err
		}
		if err := txGameRepo.RemoveParticipant(gameID, p.UserID); err != nil {
			tx.Rollback()
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to remove participant", 500, err)
		}
		if err := uc.userRepo.WithTransaction(tx).IncrementStats(p.UserID, -1, 0, 0); err != nil {
			tx.Rollback()
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to roll back stats", 500, err)
		}
	}

	game.Status = domain.GameStatusCancelled
	game.CurrentPlayers = 0
	game.UpdatedAt = time.Now()
	if err := txGameRepo.Update(game); err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Stale game cancelled", zap.String("gameID", gameID))
	return nil
}

// notifyGame publishes a best-effort game-update event.
func (uc *GameUseCase) notifyGame(game *domain.Game) {
	uc.notifier.Publish(domain.Event{
		Type: domain.EventGameUpdate,
		Data: map[string]interface{}{
			"game_id": game.ID,
			"status":  string(game.Status),
			"players": game.CurrentPlayers,
		},
	})
}
