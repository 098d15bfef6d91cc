package chess

import (
	"time"

	"github.com/saradorri/gameplatform/internal/chess"
	"github.com/saradorri/gameplatform/internal/domain"
	"go.uber.org/zap"
)

// Move validates and applies one move. A terminal result (checkmate or
// stalemate) settles the game after the board commit.
func (uc *ChessUseCase) Move(gameID, userID, from, to, promotion string) (*domain.ChessGameState, error) {
	if _, err := uc.guard(gameID, userID); err != nil {
		return nil, err
	}

	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeInvalidSquare, "Invalid source square", 400, err)
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeInvalidSquare, "Invalid target square", 400, err)
	}
	promo, err := parsePromotion(promotion)
	if err != nil {
		return nil, err
	}

	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txChessRepo := uc.chessRepo.WithTransaction(tx)

	state, err := txChessRepo.GetStateForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get chess state", 500, err)
	}
	if state == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Chess state not found", 404, nil)
	}
	if state.GameStatus != domain.ChessStatusInProgress {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeGameNotRunning, "Match already decided")
	}
	if userID != uc.playerOnTurn(state) {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeNotYourTurn, "It is not your turn")
	}

	engine, err := toEngine(state)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	rec, err := engine.Apply(chess.MoveRequest{From: fromSq, To: toSq, Promotion: promo})
	if err != nil {
		tx.Rollback()
		return nil, mapEngineError(err)
	}

	writeBack(state, engine, rec)
	state.UpdatedAt = time.Now()
	if err := txChessRepo.UpdateState(state); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update chess state", 500, err)
	}

	if err := txChessRepo.AppendMove(uc.moveLogEntry(state, userID, rec)); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to append move", 500, err)
	}

	// flip the lifecycle turn pointer alongside the board turn
	txGameRepo := uc.gameRepo.WithTransaction(tx)
	lockedGame, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil || lockedGame == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	next := uc.playerOnTurn(state)
	lockedGame.CurrentTurnPlayerID = &next
	lockedGame.UpdatedAt = time.Now()
	if err := txGameRepo.Update(lockedGame); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Move applied",
		zap.String("gameID", gameID),
		zap.String("userID", userID),
		zap.String("notation", rec.Notation))
	uc.notifyState(state, rec.Notation)

	switch state.GameStatus {
	case domain.ChessStatusCheckmate:
		// the mover delivered mate
		winner := userID
		if err := uc.settlement.Settle(gameID, &winner, nil); err != nil {
			uc.logger.Error("Settlement after checkmate failed", zap.String("gameID", gameID), zap.Error(err))
		}
	case domain.ChessStatusStalemate:
		// drawn game: completed with no payout, fees stay in the pot
		if err := uc.settlement.Settle(gameID, nil, nil); err != nil {
			uc.logger.Error("Settlement after stalemate failed", zap.String("gameID", gameID), zap.Error(err))
		}
	}

	return state, nil
}

// Resign ends the match immediately; the opponent wins the pot.
func (uc *ChessUseCase) Resign(gameID, userID string) (*domain.ChessGameState, error) {
	if _, err := uc.guardParticipant(gameID, userID); err != nil {
		return nil, err
	}

	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txChessRepo := uc.chessRepo.WithTransaction(tx)

	state, err := txChessRepo.GetStateForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get chess state", 500, err)
	}
	if state == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Chess state not found", 404, nil)
	}
	if state.GameStatus != domain.ChessStatusInProgress {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeGameNotRunning, "Match already decided")
	}

	winner := state.WhitePlayerID
	if userID == state.WhitePlayerID {
		winner = state.BlackPlayerID
	}

	state.GameStatus = domain.ChessStatusResigned
	state.UpdatedAt = time.Now()
	if err := txChessRepo.UpdateState(state); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update chess state", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Player resigned",
		zap.String("gameID", gameID),
		zap.String("userID", userID),
		zap.String("winner", winner))
	uc.notifyState(state, "resign")

	if err := uc.settlement.Settle(gameID, &winner, nil); err != nil {
		uc.logger.Error("Settlement after resignation failed", zap.String("gameID", gameID), zap.Error(err))
	}
	return state, nil
}

// guard checks the lifecycle record before touching the board.
func (uc *ChessUseCase) guard(gameID, userID string) (*domain.Game, error) {
	game, err := uc.guardParticipant(gameID, userID)
	if err != nil {
		return nil, err
	}
	if game.CurrentTurnPlayerID == nil || *game.CurrentTurnPlayerID != userID {
		return nil, domain.NewConflictError(domain.ErrCodeNotYourTurn, "It is not your turn")
	}
	return game, nil
}

func (uc *ChessUseCase) guardParticipant(gameID, userID string) (*domain.Game, error) {
	game, err := uc.gameUC.EnsureInitialized(gameID)
	if err != nil {
		return nil, err
	}
	if game.GameType != domain.GameTypeChess {
		return nil, domain.NewAppError(domain.ErrCodeGameTypeMismatch, "Not a chess game", 400, nil)
	}
	if game.Status != domain.GameStatusRunning {
		return nil, domain.NewConflictError(domain.ErrCodeGameNotRunning, "Game is not running")
	}

	participant, err := uc.gameRepo.GetParticipant(gameID, userID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participant", 500, err)
	}
	if participant == nil {
		return nil, domain.NewConflictError(domain.ErrCodeNotInGame, "User is not in this game")
	}
	return game, nil
}

// playerOnTurn resolves the board's side to move to a user id.
func (uc *ChessUseCase) playerOnTurn(state *domain.ChessGameState) string {
	if state.CurrentTurn == domain.ChessWhite {
		return state.WhitePlayerID
	}
	return state.BlackPlayerID
}

// moveLogEntry builds the append-only audit row from an accepted move.
func (uc *ChessUseCase) moveLogEntry(state *domain.ChessGameState, userID string, rec *chess.MoveRecord) *domain.ChessMove {
	move := &domain.ChessMove{
		GameID:      state.GameID,
		MoveNumber:  state.MoveCount,
		PlayerID:    userID,
		FromSquare:  rec.From.String(),
		ToSquare:    rec.To.String(),
		Piece:       string(rec.Piece.Type),
		IsCheck:     rec.IsCheck,
		IsCheckmate: rec.IsCheckmate,
		IsCastling:  rec.IsCastling,
		IsEnPassant: rec.IsEnPassant,
		Notation:    rec.Notation,
		CreatedAt:   time.Now(),
	}
	if rec.Captured != nil {
		captured := string(pieceChar(*rec.Captured))
		move.Captured = &captured
	}
	if rec.Promotion != 0 {
		promo := string(rec.Promotion)
		move.Promotion = &promo
	}
	return move
}
