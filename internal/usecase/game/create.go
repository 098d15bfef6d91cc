package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/gameplatform/internal/domain"
	"go.uber.org/zap"
)

const (
	yahtzeeMinPlayers = 2
	yahtzeeMaxPlayers = 4
	chessPlayers      = 2
)

// CreateGame opens a new table. No funds move until players join.
func (uc *GameUseCase) CreateGame(userID string, gameType domain.GameType, entryFee domain.Money, maxPlayers int) (*domain.Game, error) {
	if err := validateGameParams(gameType, entryFee, maxPlayers); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if user == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}

	game := &domain.Game{
		ID:          uuid.NewString(),
		GameType:    gameType,
		Status:      domain.GameStatusOpen,
		MaxPlayers:  maxPlayers,
		EntryFee:    entryFee,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	game.PrizeAmount = game.TotalPot().MulRate(game.PrizeRate())

	if err := uc.gameRepo.Create(game); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create game", 500, err)
	}

	uc.logger.Info("Game created",
		zap.String("gameID", game.ID),
		zap.String("type", string(gameType)),
		zap.String("entryFee", entryFee.String()),
		zap.Int("maxPlayers", maxPlayers))
	uc.notifyGame(game)
	return game, nil
}

func validateGameParams(gameType domain.GameType, entryFee domain.Money, maxPlayers int) error {
	switch gameType {
	case domain.GameTypeYahtzee:
		if maxPlayers < yahtzeeMinPlayers || maxPlayers > yahtzeeMaxPlayers {
			return domain.NewAppError(domain.ErrCodeInvalidRange, "Yahtzee games take 2 to 4 players", 400, nil)
		}
	case domain.GameTypeChess:
		if maxPlayers != chessPlayers {
			return domain.NewAppError(domain.ErrCodeInvalidRange, "Chess games take exactly 2 players", 400, nil)
		}
	default:
		return domain.NewAppError(domain.ErrCodeGameTypeMismatch, "Unknown game type", 400, nil)
	}
	if !entryFee.IsPositive() {
		return domain.NewAppError(domain.ErrCodeInvalidAmount, "Entry fee must be greater than 0", 400, nil)
	}
	return nil
}
