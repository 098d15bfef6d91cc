package yahtzee

import (
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/saradorri/gameplatform/internal/yahtzee"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AITurnLocker suppresses duplicate automated-turn triggers: the second
// concurrent trigger for the same key is dropped, not queued.
type AITurnLocker interface {
	TryLock(key string) bool
	Unlock(key string)
}

// YahtzeeUseCase is the turn engine: rolls, holds, scoring, round
// advancement and the automated player. Game lifecycle transitions stay
// with the game usecase; terminal scoring goes through settlement.
type YahtzeeUseCase struct {
	gameUC      domain.GameUseCase
	gameRepo    domain.GameRepository
	yahtzeeRepo domain.YahtzeeRepository
	settlement  domain.SettlementService
	notifier    domain.Notifier
	aiLock      AITurnLocker
	roll        yahtzee.Roller
	db          *gorm.DB
	logger      *logger.Logger
}

// NewYahtzeeUseCase creates a new yahtzee usecase
func NewYahtzeeUseCase(
	gameUC domain.GameUseCase,
	gameRepo domain.GameRepository,
	yahtzeeRepo domain.YahtzeeRepository,
	settlement domain.SettlementService,
	notifier domain.Notifier,
	aiLock AITurnLocker,
	roll yahtzee.Roller,
	db *gorm.DB,
	logger *logger.Logger,
) domain.YahtzeeUseCase {
	return &YahtzeeUseCase{
		gameUC:      gameUC,
		gameRepo:    gameRepo,
		yahtzeeRepo: yahtzeeRepo,
		settlement:  settlement,
		notifier:    notifier,
		aiLock:      aiLock,
		roll:        roll,
		db:          db,
		logger:      logger,
	}
}

// setupTransactionDB sets up a database transaction
func (uc *YahtzeeUseCase) setupTransactionDB() (*gorm.DB, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	return tx, nil
}

// GetState returns every player's sheet for the game, self-healing a
// partially initialized one first.
func (uc *YahtzeeUseCase) GetState(gameID string) ([]*domain.YahtzeePlayerState, error) {
	game, err := uc.gameUC.EnsureInitialized(gameID)
	if err != nil {
		return nil, err
	}
	if game.GameType != domain.GameTypeYahtzee {
		return nil, domain.NewAppError(domain.ErrCodeGameTypeMismatch, "Not a yahtzee game", 400, nil)
	}

	states, err := uc.yahtzeeRepo.GetPlayerStates(gameID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player states", 500, err)
	}
	return states, nil
}

// guardTurn validates that the user may act on the game right now and
// returns the repaired game.
func (uc *YahtzeeUseCase) guardTurn(gameID, userID string) (*domain.Game, error) {
	game, err := uc.gameUC.EnsureInitialized(gameID)
	if err != nil {
		return nil, err
	}
	if game.GameType != domain.GameTypeYahtzee {
		return nil, domain.NewAppError(domain.ErrCodeGameTypeMismatch, "Not a yahtzee game", 400, nil)
	}
	if game.Status != domain.GameStatusRunning {
		return nil, domain.NewConflictError(domain.ErrCodeGameNotRunning, "Game is not running")
	}
	if game.CurrentTurnPlayerID == nil || *game.CurrentTurnPlayerID != userID {
		return nil, domain.NewConflictError(domain.ErrCodeNotYourTurn, "It is not your turn")
	}
	return game, nil
}

func (uc *YahtzeeUseCase) notifyTurn(game *domain.Game, turn *domain.YahtzeeTurn) {
	uc.notifier.Publish(domain.Event{
		Type: domain.EventGameUpdate,
		Data: map[string]interface{}{
			"game_id":    game.ID,
			"user_id":    turn.UserID,
			"round":      turn.Round,
			"dice":       turn.Dice,
			"roll_count": turn.RollCount,
			"completed":  turn.IsCompleted,
		},
	})
}
