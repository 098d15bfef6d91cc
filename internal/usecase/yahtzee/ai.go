package yahtzee

import (
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/lock"
	"github.com/saradorri/gameplatform/internal/yahtzee"
	"go.uber.org/zap"
)

// aiStepDelay paces automated actions so human opponents can follow.
const aiStepDelay = 400 * time.Millisecond

// RunAITurn plays a synthetic player's turn to completion. The try-lock
// drops concurrent triggers for the same (game, player); the decision
// function is deterministic, so whichever trigger proceeds plays the
// same turn a suppressed one would have.
func (uc *YahtzeeUseCase) RunAITurn(gameID, aiUserID string) {
	if !domain.IsAIUser(aiUserID) {
		return
	}
	key := lock.AITurnKey(gameID, aiUserID)
	if !uc.aiLock.TryLock(key) {
		return
	}
	defer uc.aiLock.Unlock(key)

	for {
		game, err := uc.gameUC.EnsureInitialized(gameID)
		if err != nil {
			uc.logger.Error("Automated turn aborted", zap.String("gameID", gameID), zap.Error(err))
			return
		}
		if game.Status != domain.GameStatusRunning ||
			game.CurrentTurnPlayerID == nil || *game.CurrentTurnPlayerID != aiUserID {
			return
		}

		turn, err := uc.yahtzeeRepo.GetTurn(gameID, aiUserID, game.CurrentRound)
		if err != nil || turn == nil {
			uc.logger.Error("Automated turn missing record", zap.String("gameID", gameID), zap.Error(err))
			return
		}
		if turn.IsCompleted {
			return
		}

		if turn.RollCount == 0 {
			if _, err := uc.Roll(gameID, aiUserID); err != nil {
				uc.logger.Error("Automated roll failed", zap.String("gameID", gameID), zap.Error(err))
				return
			}
			uc.publishAIAction(game.ID, aiUserID, "roll")
			time.Sleep(aiStepDelay)
			continue
		}

		decision := yahtzee.Decide(turn.Dice, turn.RollCount, uc.sheetFor(gameID, aiUserID))
		if decision.ScoreNow {
			if _, err := uc.ScoreCategory(gameID, aiUserID, decision.Category); err != nil {
				uc.logger.Error("Automated score failed", zap.String("gameID", gameID), zap.Error(err))
				return
			}
			uc.publishAIAction(game.ID, aiUserID, "score")
			return
		}

		if err := uc.applyHolds(game, aiUserID, decision.Holds); err != nil {
			uc.logger.Error("Automated hold failed", zap.String("gameID", gameID), zap.Error(err))
			return
		}
		if _, err := uc.Roll(gameID, aiUserID); err != nil {
			uc.logger.Error("Automated reroll failed", zap.String("gameID", gameID), zap.Error(err))
			return
		}
		uc.publishAIAction(game.ID, aiUserID, "reroll")
		time.Sleep(aiStepDelay)
	}
}

func (uc *YahtzeeUseCase) sheetFor(gameID, userID string) domain.ScoreSheet {
	state, err := uc.yahtzeeRepo.GetPlayerState(gameID, userID)
	if err != nil || state == nil {
		return domain.ScoreSheet{}
	}
	return state.Sheet
}

func (uc *YahtzeeUseCase) applyHolds(game *domain.Game, userID string, holds domain.HoldFlags) error {
	for i, h := range holds {
		if !h {
			continue
		}
		if _, err := uc.Hold(game.ID, userID, i, true); err != nil {
			return err
		}
	}
	return nil
}

func (uc *YahtzeeUseCase) publishAIAction(gameID, userID, action string) {
	uc.notifier.Publish(domain.Event{
		Type: domain.EventAIAction,
		Data: map[string]interface{}{
			"game_id": gameID,
			"user_id": userID,
			"action":  action,
		},
	})
}
