package game

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Settlement finalizes terminal games. The completion transition and the
// MatchResult snapshot commit first; the prize and commission credits run
// in a second transaction so a payout failure can never resurrect a
// finished game.
type Settlement struct {
	gameRepo        domain.GameRepository
	userRepo        domain.UserRepository
	transactionRepo domain.TransactionRepository
	matchResultRepo domain.MatchResultRepository
	tournamentRepo  domain.TournamentRepository
	ledger          domain.LedgerService
	outboxRepo      domain.OutboxRepository
	notifier        domain.Notifier
	db              *gorm.DB
	logger          *logger.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	gameRepo domain.GameRepository,
	userRepo domain.UserRepository,
	transactionRepo domain.TransactionRepository,
	matchResultRepo domain.MatchResultRepository,
	tournamentRepo domain.TournamentRepository,
	ledger domain.LedgerService,
	outboxRepo domain.OutboxRepository,
	notifier domain.Notifier,
	db *gorm.DB,
	logger *logger.Logger,
) domain.SettlementService {
	return &Settlement{
		gameRepo:        gameRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		matchResultRepo: matchResultRepo,
		tournamentRepo:  tournamentRepo,
		ledger:          ledger,
		outboxRepo:      outboxRepo,
		notifier:        notifier,
		db:              db,
		logger:          logger,
	}
}

// Settle marks the game completed, snapshots the result and credits the
// prize and commission. Safe to call from racing engines: the row lock
// plus the terminal check make the transition exactly-once, losers see a
// no-op.
func (s *Settlement) Settle(gameID string, winnerID *string, scores map[string]int) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		s.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	txGameRepo := s.gameRepo.WithTransaction(tx)

	game, err := txGameRepo.GetByIDForUpdate(gameID)
	if err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	if game.Status.IsTerminal() {
		tx.Rollback()
		return nil
	}

	roster, err := txGameRepo.GetParticipants(gameID)
	if err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}

	players, err := s.buildPlayerRows(tx, game, roster, winnerID, scores)
	if err != nil {
		tx.Rollback()
		return err
	}

	game.Status = domain.GameStatusCompleted
	game.WinnerID = winnerID
	game.CurrentTurnPlayerID = nil
	game.UpdatedAt = time.Now()
	if err := txGameRepo.Update(game); err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update game", 500, err)
	}

	result := &domain.MatchResult{
		ID:          uuid.NewString(),
		GameID:      game.ID,
		GameType:    game.GameType,
		WinnerID:    winnerID,
		PrizeAmount: game.PrizeAmount,
		Commission:  game.Commission(),
		CreatedAt:   time.Now(),
		Players:     players,
	}
	if err := s.matchResultRepo.WithTransaction(tx).Create(result); err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create match result", 500, err)
	}

	if winnerID != nil {
		if err := s.userRepo.WithTransaction(tx).IncrementStats(*winnerID, 0, 1, game.PrizeAmount); err != nil {
			tx.Rollback()
			return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update winner stats", 500, err)
		}
	}

	hostID, err := s.closeTournament(tx, game, winnerID)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	s.logger.Info("Game settled",
		zap.String("gameID", game.ID),
		zap.Stringp("winnerID", winnerID),
		zap.String("prize", game.PrizeAmount.String()))

	// payouts run after the completion commit; a failure here is logged
	// and queued for retry, never rolled back
	s.payOut(game, winnerID, hostID)

	s.notifier.Publish(domain.Event{
		Type: domain.EventWinner,
		Data: map[string]interface{}{
			"game_id":   game.ID,
			"winner_id": winnerID,
			"prize":     game.PrizeAmount.String(),
		},
	})
	return nil
}

// buildPlayerRows reconstructs everyone who paid an entry fee from the
// ledger, since forfeited players no longer hold roster rows. Forfeit is
// inferred from absence: a net fee payer missing from the roster left a
// running game.
func (s *Settlement) buildPlayerRows(tx *gorm.DB, game *domain.Game, roster []*domain.GameParticipant, winnerID *string, scores map[string]int) ([]domain.MatchResultPlayer, error) {
	entries, err := s.transactionRepo.WithTransaction(tx).GetByGameID(game.ID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game transactions", 500, err)
	}

	// entries minus refunds per user; a refunded leaver owes nothing and
	// appears nowhere
	net := map[string]int{}
	for _, t := range entries {
		switch t.Type {
		case domain.TransactionTypeEntry:
			net[t.UserID]++
		case domain.TransactionTypeRefund:
			net[t.UserID]--
		}
	}

	active := map[string]bool{}
	for _, p := range roster {
		active[p.UserID] = true
	}

	var players []domain.MatchResultPlayer
	for userID, n := range net {
		if n <= 0 {
			continue
		}
		p := domain.MatchResultPlayer{
			UserID:    userID,
			Score:     scores[userID],
			EntryFee:  game.EntryFee,
			NetChange: game.EntryFee.Neg(),
			Forfeited: !active[userID],
			CreatedAt: time.Now(),
		}
		if winnerID != nil && userID == *winnerID {
			p.NetChange = game.PrizeAmount.Sub(game.EntryFee)
		}
		players = append(players, p)
	}

	// winner first, then score descending, forfeits last; user id breaks
	// remaining ties so the snapshot is deterministic
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		aWin := winnerID != nil && a.UserID == *winnerID
		bWin := winnerID != nil && b.UserID == *winnerID
		if aWin != bWin {
			return aWin
		}
		if a.Forfeited != b.Forfeited {
			return b.Forfeited
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.UserID < b.UserID
	})
	for i := range players {
		players[i].Rank = i + 1
	}
	return players, nil
}

// closeTournament completes the parent tournament, if any, and returns
// the host id so commission lands with the host instead of the platform.
func (s *Settlement) closeTournament(tx *gorm.DB, game *domain.Game, winnerID *string) (string, error) {
	if game.TournamentID == nil {
		return "", nil
	}
	txTournamentRepo := s.tournamentRepo.WithTransaction(tx)
	t, err := txTournamentRepo.GetByIDForUpdate(*game.TournamentID)
	if err != nil {
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get tournament", 500, err)
	}
	if t == nil {
		return "", nil
	}
	if t.Status == domain.TournamentStatusStarted {
		t.Status = domain.TournamentStatusCompleted
		t.UpdatedAt = time.Now()
		if err := txTournamentRepo.Update(t); err != nil {
			return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update tournament", 500, err)
		}
	}
	return t.HostID, nil
}

// payOut credits the prize and commission in a fresh transaction. The
// game is already completed; any failure is queued on the outbox for the
// retry processor and never propagated.
func (s *Settlement) payOut(game *domain.Game, winnerID *string, hostID string) {
	commissionTo := domain.PlatformAccountID
	if hostID != "" {
		commissionTo = hostID
	}

	if winnerID != nil && game.PrizeAmount.IsPositive() {
		s.credit(game, *winnerID, game.PrizeAmount, domain.TransactionTypeWin, "Prize payout")
	}
	if game.Commission().IsPositive() {
		s.credit(game, commissionTo, game.Commission(), domain.TransactionTypeCommission, "Game commission")
	}
}

func (s *Settlement) credit(game *domain.Game, userID string, amount domain.Money, txType domain.TransactionType, description string) {
	tx := s.db.Begin()
	if tx.Error != nil {
		s.queueRetry(game, userID, amount, txType, tx.Error)
		return
	}
	if _, err := s.ledger.Apply(tx, userID, amount, txType, &game.ID, description); err != nil {
		tx.Rollback()
		s.queueRetry(game, userID, amount, txType, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		s.queueRetry(game, userID, amount, txType, err)
		return
	}

	s.notifier.Publish(domain.Event{
		Type:    domain.EventBalanceUpdate,
		UserIDs: []string{userID},
		Data: map[string]interface{}{
			"game_id": game.ID,
			"amount":  amount.String(),
			"type":    string(txType),
		},
	})
}

func (s *Settlement) queueRetry(game *domain.Game, userID string, amount domain.Money, txType domain.TransactionType, cause error) {
	s.logger.Error("Payout credit failed; queued for retry",
		zap.String("gameID", game.ID),
		zap.String("userID", userID),
		zap.String("amount", amount.String()),
		zap.String("type", string(txType)),
		zap.Error(cause))

	event := &domain.OutboxEvent{
		ID:   uuid.NewString(),
		Type: domain.EventTypePayoutRetry,
		Data: domain.JSONB{
			"game_id": game.ID,
			"user_id": userID,
			"amount":  amount.String(),
			"type":    string(txType),
		},
		Status:    domain.EventStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.outboxRepo.Save(event); err != nil {
		s.logger.Error("Failed to queue payout retry; manual reconciliation required",
			zap.String("gameID", game.ID),
			zap.String("userID", userID),
			zap.Error(err))
	}
}
