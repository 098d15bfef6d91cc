package chess

import (
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChessUseCase drives chess matches: move legality via the engine, the
// persisted board record, the append-only move log and resignation.
type ChessUseCase struct {
	gameUC     domain.GameUseCase
	gameRepo   domain.GameRepository
	chessRepo  domain.ChessRepository
	settlement domain.SettlementService
	notifier   domain.Notifier
	db         *gorm.DB
	logger     *logger.Logger
}

// NewChessUseCase creates a new chess usecase
func NewChessUseCase(
	gameUC domain.GameUseCase,
	gameRepo domain.GameRepository,
	chessRepo domain.ChessRepository,
	settlement domain.SettlementService,
	notifier domain.Notifier,
	db *gorm.DB,
	logger *logger.Logger,
) domain.ChessUseCase {
	return &ChessUseCase{
		gameUC:     gameUC,
		gameRepo:   gameRepo,
		chessRepo:  chessRepo,
		settlement: settlement,
		notifier:   notifier,
		db:         db,
		logger:     logger,
	}
}

// setupTransactionDB sets up a database transaction
func (uc *ChessUseCase) setupTransactionDB() (*gorm.DB, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	return tx, nil
}

// GetState returns the board record and the move log.
func (uc *ChessUseCase) GetState(gameID string) (*domain.ChessGameState, []*domain.ChessMove, error) {
	game, err := uc.gameUC.EnsureInitialized(gameID)
	if err != nil {
		return nil, nil, err
	}
	if game.GameType != domain.GameTypeChess {
		return nil, nil, domain.NewAppError(domain.ErrCodeGameTypeMismatch, "Not a chess game", 400, nil)
	}

	state, err := uc.chessRepo.GetState(gameID)
	if err != nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get chess state", 500, err)
	}
	if state == nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Chess state not found", 404, nil)
	}

	moves, err := uc.chessRepo.GetMoves(gameID)
	if err != nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get moves", 500, err)
	}
	return state, moves, nil
}

func (uc *ChessUseCase) notifyState(state *domain.ChessGameState, notation string) {
	uc.notifier.Publish(domain.Event{
		Type: domain.EventGameUpdate,
		Data: map[string]interface{}{
			"game_id":  state.GameID,
			"board":    state.Board,
			"turn":     string(state.CurrentTurn),
			"status":   string(state.GameStatus),
			"notation": notation,
		},
	})
}
