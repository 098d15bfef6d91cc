package yahtzee

import (
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/yahtzee"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Roll throws the dice. The first roll of a turn throws all five; later
// rolls respect the hold flags. Three rolls per turn, the first included.
func (uc *YahtzeeUseCase) Roll(gameID, userID string) (*domain.YahtzeeTurn, error) {
	game, err := uc.guardTurn(gameID, userID)
	if err != nil {
		return nil, err
	}

	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txRepo := uc.yahtzeeRepo.WithTransaction(tx)

	turn, err := txRepo.GetTurnForUpdate(gameID, userID, game.CurrentRound)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get turn", 500, err)
	}
	if turn == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Turn not found", 404, nil)
	}
	if turn.IsCompleted {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeTurnCompleted, "Turn already completed")
	}
	if turn.RollCount >= yahtzee.MaxRolls {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeNoRollsLeft, "No rolls left this turn")
	}

	if turn.RollCount == 0 {
		turn.Dice = yahtzee.RollAll(uc.roll)
	} else {
		turn.Dice = yahtzee.Reroll(uc.roll, turn.Dice, turn.Holds)
	}
	turn.RollCount++
	turn.UpdatedAt = time.Now()
	if err := txRepo.UpdateTurn(turn); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update turn", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.notifyTurn(game, turn)
	return turn, nil
}

// Hold toggles one die's keep flag between rolls.
func (uc *YahtzeeUseCase) Hold(gameID, userID string, dieIndex int, hold bool) (*domain.YahtzeeTurn, error) {
	if dieIndex < 0 || dieIndex >= yahtzee.DiceCount {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Die index out of range", 400, nil)
	}

	game, err := uc.guardTurn(gameID, userID)
	if err != nil {
		return nil, err
	}

	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txRepo := uc.yahtzeeRepo.WithTransaction(tx)

	turn, err := txRepo.GetTurnForUpdate(gameID, userID, game.CurrentRound)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get turn", 500, err)
	}
	if turn == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Turn not found", 404, nil)
	}
	if turn.IsCompleted {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeTurnCompleted, "Turn already completed")
	}
	if turn.RollCount == 0 {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeNoRollsLeft, "Roll before holding dice")
	}

	if len(turn.Holds) != yahtzee.DiceCount {
		turn.Holds = yahtzee.NewHolds()
	}
	turn.Holds[dieIndex] = hold
	turn.UpdatedAt = time.Now()
	if err := txRepo.UpdateTurn(turn); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update turn", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}
	return turn, nil
}

// ScoreCategory commits the current dice into an open category, closing
// the turn and advancing the round machinery. Completing the final turn
// of round 13 settles the game.
func (uc *YahtzeeUseCase) ScoreCategory(gameID, userID string, category domain.YahtzeeCategory) (*domain.YahtzeePlayerState, error) {
	if !domain.IsValidCategory(category) {
		return nil, domain.NewAppError(domain.ErrCodeInvalidCategory, "Unknown category", 400, nil)
	}

	if _, err := uc.guardTurn(gameID, userID); err != nil {
		return nil, err
	}

	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txGameRepo := uc.gameRepo.WithTransaction(tx)
	txRepo := uc.yahtzeeRepo.WithTransaction(tx)

	// round advancement mutates the game row, so serialize on it
	game, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil || game.Status != domain.GameStatusRunning {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeGameNotRunning, "Game is not running")
	}
	if game.CurrentTurnPlayerID == nil || *game.CurrentTurnPlayerID != userID {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeNotYourTurn, "It is not your turn")
	}

	turn, err := txRepo.GetTurnForUpdate(gameID, userID, game.CurrentRound)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get turn", 500, err)
	}
	if turn == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Turn not found", 404, nil)
	}
	if turn.IsCompleted {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeTurnCompleted, "Turn already completed")
	}
	if turn.RollCount == 0 {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeNoRollsLeft, "Roll before scoring")
	}

	state, err := txRepo.GetPlayerState(gameID, userID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player state", 500, err)
	}
	if state == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Player state not found", 404, nil)
	}
	if state.Sheet.Used(category) {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeCategoryUsed, "Category already scored")
	}

	points := yahtzee.Score(category, turn.Dice)

	// an extra five-of-a-kind after a scored 50 earns the bonus no
	// matter which category absorbs the dice
	if yahtzee.IsYahtzee(turn.Dice) && state.Sheet[domain.CategoryYahtzee] == yahtzee.YahtzeePoints {
		state.YahtzeeBonusCount++
	}

	state.Sheet[category] = points
	if !state.UpperBonus && yahtzee.UpperComplete(state.Sheet) &&
		yahtzee.UpperTotal(state.Sheet) >= yahtzee.UpperBonusThreshold {
		state.UpperBonus = true
	}
	state.TotalScore = yahtzee.SheetTotal(state.Sheet, state.UpperBonus, state.YahtzeeBonusCount)
	state.TurnsCompleted++
	state.UpdatedAt = time.Now()
	if err := txRepo.UpdatePlayerState(state); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player state", 500, err)
	}

	turn.IsCompleted = true
	turn.ScoredCategory = &category
	turn.Points = points
	turn.UpdatedAt = time.Now()
	if err := txRepo.UpdateTurn(turn); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update turn", 500, err)
	}

	finished, err := uc.advance(tx, game, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.notifyTurn(game, turn)

	if finished {
		uc.settleFinished(gameID)
	} else {
		uc.kickAI(game)
	}
	return state, nil
}

// advance moves the turn pointer after a completed turn and rolls the
// round over when everyone has played it. Returns true when the 13th
// round just finished; the caller settles after committing.
func (uc *YahtzeeUseCase) advance(tx *gorm.DB, game *domain.Game, justScored string) (bool, error) {
	txGameRepo := uc.gameRepo.WithTransaction(tx)
	txRepo := uc.yahtzeeRepo.WithTransaction(tx)

	participants, err := txGameRepo.GetParticipants(game.ID)
	if err != nil {
		return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}

	incomplete, err := txRepo.GetIncompleteTurns(game.ID, game.CurrentRound)
	if err != nil {
		return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get incomplete turns", 500, err)
	}
	open := make(map[string]bool, len(incomplete))
	for _, t := range incomplete {
		open[t.UserID] = true
	}

	// next roster member past the scorer, in join order, still owed a
	// turn this round; forfeited players have no roster row and are
	// skipped naturally
	var roster []string
	for _, p := range participants {
		roster = append(roster, p.UserID)
	}
	start := 0
	for i, id := range roster {
		if id == justScored {
			start = i
			break
		}
	}
	for step := 1; step <= len(roster); step++ {
		candidate := roster[(start+step)%len(roster)]
		if open[candidate] {
			game.CurrentTurnPlayerID = &candidate
			game.UpdatedAt = time.Now()
			return false, uc.updateGame(txGameRepo, game)
		}
	}

	// round complete
	if game.CurrentRound >= domain.YahtzeeTotalRounds {
		// terminal; settlement flips the status after this commits
		return true, uc.updateGame(txGameRepo, game)
	}

	game.CurrentRound++
	for _, id := range roster {
		if err := txRepo.CreateTurn(&domain.YahtzeeTurn{
			GameID:    game.ID,
			UserID:    id,
			Round:     game.CurrentRound,
			Holds:     yahtzee.NewHolds(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}); err != nil {
			return false, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create turn", 500, err)
		}
	}
	if len(roster) > 0 {
		game.CurrentTurnPlayerID = &roster[0]
	}
	game.UpdatedAt = time.Now()
	return false, uc.updateGame(txGameRepo, game)
}

func (uc *YahtzeeUseCase) updateGame(repo domain.GameRepository, game *domain.Game) error {
	if err := repo.Update(game); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}
	return nil
}

// settleFinished derives the winner from final totals, earliest joiner
// winning ties, and hands off to settlement.
func (uc *YahtzeeUseCase) settleFinished(gameID string) {
	states, err := uc.yahtzeeRepo.GetPlayerStates(gameID)
	if err != nil {
		uc.logger.Error("Failed to load final sheets", zap.String("gameID", gameID), zap.Error(err))
		return
	}
	participants, err := uc.gameRepo.GetParticipants(gameID)
	if err != nil {
		uc.logger.Error("Failed to load roster", zap.String("gameID", gameID), zap.Error(err))
		return
	}

	totals := make(map[string]int, len(states))
	for _, s := range states {
		totals[s.UserID] = s.TotalScore
	}

	var winner string
	best := -1
	for _, p := range participants {
		if totals[p.UserID] > best {
			winner = p.UserID
			best = totals[p.UserID]
		}
	}

	var winnerID *string
	if winner != "" {
		winnerID = &winner
	}
	if err := uc.settlement.Settle(gameID, winnerID, totals); err != nil {
		uc.logger.Error("Settlement failed", zap.String("gameID", gameID), zap.Error(err))
	}
}

// kickAI fires the automated player when the turn lands on one.
func (uc *YahtzeeUseCase) kickAI(game *domain.Game) {
	if game.CurrentTurnPlayerID == nil {
		return
	}
	if id := *game.CurrentTurnPlayerID; domain.IsAIUser(id) {
		go uc.RunAITurn(game.ID, id)
	}
}
