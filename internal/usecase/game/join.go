package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/gameplatform/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Join debits the entry fee, adds the roster row and advances the
// lifecycle, all in one unit. Filling the last slot triggers game
// initialization inside the same transaction.
func (uc *GameUseCase) Join(gameID, userID string) (*domain.Game, error) {
	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	game, err := uc.joinLocked(tx, gameID, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Player joined game",
		zap.String("gameID", gameID),
		zap.String("userID", userID),
		zap.String("status", string(game.Status)))
	uc.notifyGame(game)
	return game, nil
}

// joinLocked runs the join steps inside the supplied transaction. The
// tournament manager reuses it when seating its spawned game.
func (uc *GameUseCase) joinLocked(tx *gorm.DB, gameID, userID string) (*domain.Game, error) {
	txGameRepo := uc.gameRepo.WithTransaction(tx)

	game, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil {
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	if game.Status != domain.GameStatusOpen && game.Status != domain.GameStatusFilling {
		return nil, domain.NewConflictError(domain.ErrCodeGameNotJoinable, "Game is not accepting players")
	}
	if game.CurrentPlayers >= game.MaxPlayers {
		return nil, domain.NewConflictError(domain.ErrCodeGameFull, "Game is full")
	}

	active, err := uc.activeGameForUserTx(txGameRepo, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.NewConflictError(domain.ErrCodeAlreadyInGame, "User already has an active game")
	}

	// the fee debit and the roster row commit or fail together
	if _, err := uc.ledger.Apply(tx, userID, game.EntryFee.Neg(), domain.TransactionTypeEntry, &game.ID, "Entry fee"); err != nil {
		return nil, err
	}

	if err := txGameRepo.AddParticipant(&domain.GameParticipant{
		GameID:   gameID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to add participant", 500, err)
	}

	if err := uc.userRepo.WithTransaction(tx).IncrementStats(userID, 1, 0, 0); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update stats", 500, err)
	}

	game.CurrentPlayers++
	if game.Status == domain.GameStatusOpen {
		game.Status = domain.GameStatusFilling
	}
	if game.CurrentPlayers == game.MaxPlayers {
		game.Status = domain.GameStatusRunning
		if err := uc.initializeGame(tx, game); err != nil {
			return nil, err
		}
	}
	game.UpdatedAt = time.Now()
	if err := txGameRepo.Update(game); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}

	return game, nil
}

// StartTournamentGame creates and fully seats the tournament's game in
// the supplied transaction. Seating reuses the ordinary join path, so
// every participant is debited and the last seat triggers initialization;
// one failed debit rolls the entire start back with the caller.
func (uc *GameUseCase) StartTournamentGame(tx *gorm.DB, t *domain.Tournament, participants []string) (*domain.Game, error) {
	if len(participants) == 0 {
		return nil, domain.NewInternalError("Tournament started with no participants", nil)
	}
	if err := validateGameParams(t.GameType, t.EntryFee, len(participants)); err != nil {
		return nil, err
	}

	game := &domain.Game{
		ID:           uuid.NewString(),
		GameType:     t.GameType,
		Status:       domain.GameStatusOpen,
		MaxPlayers:   len(participants),
		EntryFee:     t.EntryFee,
		TournamentID: &t.ID,
		CreatedBy:    t.HostID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	game.PrizeAmount = game.TotalPot().MulRate(game.PrizeRate())

	if err := uc.gameRepo.WithTransaction(tx).Create(game); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create game", 500, err)
	}

	// the last seat flips the game to running; return that view
	seated := game
	for _, userID := range participants {
		var err error
		seated, err = uc.joinLocked(tx, game.ID, userID)
		if err != nil {
			return nil, err
		}
	}

	uc.logger.Info("Tournament game started",
		zap.String("tournamentID", t.ID),
		zap.String("gameID", game.ID),
		zap.Int("players", len(participants)))
	return seated, nil
}

// activeGameForUserTx reports the user's current non-terminal game, if
// any, using the supplied repository.
func (uc *GameUseCase) activeGameForUserTx(repo domain.GameRepository, userID string) (*domain.Game, error) {
	participations, err := repo.GetParticipationsByUser(userID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participations", 500, err)
	}

	var games []*domain.Game
	for _, p := range participations {
		g, err := repo.GetByID(p.GameID)
		if err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
		}
		if g != nil && !g.Status.IsTerminal() {
			games = append(games, g)
		}
	}
	return PickActiveGame(games), nil
}

// ActiveGameForUser resolves the user's single derived active game.
func (uc *GameUseCase) ActiveGameForUser(userID string) (*domain.Game, error) {
	return uc.activeGameForUserTx(uc.gameRepo, userID)
}
