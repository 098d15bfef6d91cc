package game

import (
	"time"

	"github.com/saradorri/gameplatform/internal/chess"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/yahtzee"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// initializeGame performs the fill-triggered setup inside the join
// transaction: roster snapshot, per-type state records and the first
// turn pointer.
func (uc *GameUseCase) initializeGame(tx *gorm.DB, game *domain.Game) error {
	participants, err := uc.gameRepo.WithTransaction(tx).GetParticipants(game.ID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}
	roster := rosterIDs(participants)
	if len(roster) == 0 {
		return domain.NewInternalError("Game filled with empty roster", nil)
	}

	game.CurrentRound = 1
	first := roster[0]
	game.CurrentTurnPlayerID = &first

	switch game.GameType {
	case domain.GameTypeYahtzee:
		return uc.initYahtzee(tx, game, roster)
	case domain.GameTypeChess:
		return uc.initChess(tx, game, roster)
	}
	return domain.NewAppError(domain.ErrCodeGameTypeMismatch, "Unknown game type", 400, nil)
}

func (uc *GameUseCase) initYahtzee(tx *gorm.DB, game *domain.Game, roster []string) error {
	txYahtzeeRepo := uc.yahtzeeRepo.WithTransaction(tx)
	for _, userID := range roster {
		if err := txYahtzeeRepo.CreatePlayerState(&domain.YahtzeePlayerState{
			GameID:    game.ID,
			UserID:    userID,
			Sheet:     FreshScoreSheet(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}); err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player state", 500, err)
		}
		if err := txYahtzeeRepo.CreateTurn(&domain.YahtzeeTurn{
			GameID:    game.ID,
			UserID:    userID,
			Round:     1,
			Holds:     yahtzee.NewHolds(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}); err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create turn", 500, err)
		}
	}
	return nil
}

func (uc *GameUseCase) initChess(tx *gorm.DB, game *domain.Game, roster []string) error {
	if len(roster) != 2 {
		return domain.NewInternalError("Chess game filled without two players", nil)
	}
	if err := uc.chessRepo.WithTransaction(tx).CreateState(&domain.ChessGameState{
		GameID:         game.ID,
		Board:          chess.InitialBoard().Serialize(),
		WhitePlayerID:  roster[0],
		BlackPlayerID:  roster[1],
		CurrentTurn:    domain.ChessWhite,
		GameStatus:     domain.ChessStatusInProgress,
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create chess state", 500, err)
	}
	// white moves first
	game.CurrentTurnPlayerID = &roster[0]
	return nil
}

// FreshScoreSheet returns a sheet with every category unused.
func FreshScoreSheet() domain.ScoreSheet {
	sheet := make(domain.ScoreSheet, len(domain.YahtzeeCategories))
	for _, cat := range domain.YahtzeeCategories {
		sheet[cat] = domain.ScoreUnused
	}
	return sheet
}

// EnsureInitialized detects a running game whose initialization was cut
// short and recreates exactly the missing pieces from the roster.
func (uc *GameUseCase) EnsureInitialized(gameID string) (*domain.Game, error) {
	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil {
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	if game.Status != domain.GameStatusRunning {
		return game, nil
	}

	healthy, err := uc.initComplete(game)
	if err != nil {
		return nil, err
	}
	if healthy {
		return game, nil
	}

	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txGameRepo := uc.gameRepo.WithTransaction(tx)

	game, err = txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil || game.Status != domain.GameStatusRunning {
		tx.Rollback()
		return game, nil
	}

	if err := uc.repair(tx, game); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := txGameRepo.Update(game); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Warn("Self-healed partially initialized game", zap.String("gameID", gameID))
	return game, nil
}

// initComplete checks the running game's derived records without locks.
func (uc *GameUseCase) initComplete(game *domain.Game) (bool, error) {
	if game.CurrentTurnPlayerID == nil || game.CurrentRound == 0 {
		return false, nil
	}

	participants, err := uc.gameRepo.GetParticipants(game.ID)
	if err != nil {
		return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}

	switch game.GameType {
	case domain.GameTypeYahtzee:
		states, err := uc.yahtzeeRepo.GetPlayerStates(game.ID)
		if err != nil {
			return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player states", 500, err)
		}
		if len(states) < len(participants) {
			return false, nil
		}
		for _, p := range participants {
			turn, err := uc.yahtzeeRepo.GetTurn(game.ID, p.UserID, game.CurrentRound)
			if err != nil {
				return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get turn", 500, err)
			}
			if turn == nil {
				return false, nil
			}
		}
	case domain.GameTypeChess:
		state, err := uc.chessRepo.GetState(game.ID)
		if err != nil {
			return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get chess state", 500, err)
		}
		if state == nil {
			return false, nil
		}
	}
	return true, nil
}

// repair recreates whatever initialization pieces are missing, keyed
// off the authoritative roster.
func (uc *GameUseCase) repair(tx *gorm.DB, game *domain.Game) error {
	participants, err := uc.gameRepo.WithTransaction(tx).GetParticipants(game.ID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}
	roster := rosterIDs(participants)
	if len(roster) == 0 {
		return domain.NewInternalError("Running game has empty roster", nil)
	}

	if game.CurrentRound == 0 {
		game.CurrentRound = 1
	}

	switch game.GameType {
	case domain.GameTypeYahtzee:
		if err := uc.repairYahtzee(tx, game, roster); err != nil {
			return err
		}
	case domain.GameTypeChess:
		txChessRepo := uc.chessRepo.WithTransaction(tx)
		state, err := txChessRepo.GetState(game.ID)
		if err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get chess state", 500, err)
		}
		if state == nil {
			if err := uc.initChess(tx, game, roster); err != nil {
				return err
			}
		}
	}

	if game.CurrentTurnPlayerID == nil {
		first := roster[0]
		game.CurrentTurnPlayerID = &first
	}
	game.UpdatedAt = time.Now()
	return nil
}

func (uc *GameUseCase) repairYahtzee(tx *gorm.DB, game *domain.Game, roster []string) error {
	txYahtzeeRepo := uc.yahtzeeRepo.WithTransaction(tx)
	for _, userID := range roster {
		state, err := txYahtzeeRepo.GetPlayerState(game.ID, userID)
		if err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player state", 500, err)
		}
		if state == nil {
			if err := txYahtzeeRepo.CreatePlayerState(&domain.YahtzeePlayerState{
				GameID:    game.ID,
				UserID:    userID,
				Sheet:     FreshScoreSheet(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}); err != nil {
				return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player state", 500, err)
			}
		}

		turn, err := txYahtzeeRepo.GetTurn(game.ID, userID, game.CurrentRound)
		if err != nil {
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get turn", 500, err)
		}
		if turn == nil {
			if err := txYahtzeeRepo.CreateTurn(&domain.YahtzeeTurn{
				GameID:    game.ID,
				UserID:    userID,
				Round:     game.CurrentRound,
				Holds:     yahtzee.NewHolds(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}); err != nil {
				return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create turn", 500, err)
			}
		}
	}
	return nil
}
