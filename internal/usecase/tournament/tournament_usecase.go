package tournament

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TournamentUseCase manages pooled-entry tournaments. Joining is free;
// the final join starts the tournament, debits everyone and spawns the
// game in one transaction.
type TournamentUseCase struct {
	tournamentRepo domain.TournamentRepository
	userRepo       domain.UserRepository
	gameUC         domain.GameUseCase
	notifier       domain.Notifier
	db             *gorm.DB
	logger         *logger.Logger
}

// NewTournamentUseCase creates a new tournament usecase
func NewTournamentUseCase(
	tournamentRepo domain.TournamentRepository,
	userRepo domain.UserRepository,
	gameUC domain.GameUseCase,
	notifier domain.Notifier,
	db *gorm.DB,
	logger *logger.Logger,
) domain.TournamentUseCase {
	return &TournamentUseCase{
		tournamentRepo: tournamentRepo,
		userRepo:       userRepo,
		gameUC:         gameUC,
		notifier:       notifier,
		db:             db,
		logger:         logger,
	}
}

// Create opens a tournament pool.
func (uc *TournamentUseCase) Create(hostID, name string, gameType domain.GameType, entryFee domain.Money, maxParticipants int) (*domain.Tournament, error) {
	if name == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Tournament name is required", 400, nil)
	}
	if err := validateParams(gameType, entryFee, maxParticipants); err != nil {
		return nil, err
	}

	host, err := uc.userRepo.GetByID(hostID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if host == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}

	t := &domain.Tournament{
		ID:              uuid.NewString(),
		Name:            name,
		HostID:          hostID,
		GameType:        gameType,
		EntryFee:        entryFee,
		MaxParticipants: maxParticipants,
		Status:          domain.TournamentStatusActive,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.tournamentRepo.Create(t); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create tournament", 500, err)
	}

	uc.logger.Info("Tournament created",
		zap.String("tournamentID", t.ID),
		zap.String("hostID", hostID),
		zap.String("type", string(gameType)))
	return t, nil
}

// Join registers the user. No money moves here: the participant key
// makes a double join structurally impossible, and filling the last slot
// starts the tournament atomically, entry debits included.
func (uc *TournamentUseCase) Join(tournamentID, userID string) (*domain.Tournament, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if user == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	txRepo := uc.tournamentRepo.WithTransaction(tx)

	t, err := txRepo.GetByIDForUpdate(tournamentID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get tournament", 500, err)
	}
	if t == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeTournamentNotFound, "Tournament not found", 404, nil)
	}
	if t.Status != domain.TournamentStatusActive {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeTournamentClosed, "Tournament is not accepting entries")
	}
	if t.CurrentParticipants >= t.MaxParticipants {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeTournamentFull, "Tournament is full")
	}

	if err := txRepo.AddParticipant(&domain.TournamentParticipant{
		ID:           domain.TournamentParticipantKey(tournamentID, userID),
		TournamentID: tournamentID,
		UserID:       userID,
		JoinedAt:     time.Now(),
	}); err != nil {
		tx.Rollback()
		if errors.Is(err, domain.ErrTournamentDoubleJoin) {
			return nil, domain.ErrTournamentDoubleJoin
		}
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to add participant", 500, err)
	}

	t.CurrentParticipants++
	t.PotAmount = t.PotAmount.Add(t.EntryFee)

	if t.CurrentParticipants == t.MaxParticipants {
		if err := uc.start(tx, txRepo, t); err != nil {
			tx.Rollback()
			return nil, err
		}
	} else {
		t.UpdatedAt = time.Now()
		if err := txRepo.Update(t); err != nil {
			tx.Rollback()
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update tournament", 500, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Tournament joined",
		zap.String("tournamentID", tournamentID),
		zap.String("userID", userID),
		zap.Int("participants", t.CurrentParticipants))
	uc.notifier.Publish(domain.Event{
		Type: domain.EventGameUpdate,
		Data: map[string]interface{}{
			"tournament_id": t.ID,
			"status":        string(t.Status),
			"participants":  t.CurrentParticipants,
			"game_id":       t.GameID,
		},
	})
	return t, nil
}

// start spawns the game and flips the pool to started, all inside the
// caller's transaction.
func (uc *TournamentUseCase) start(tx *gorm.DB, txRepo domain.TournamentRepository, t *domain.Tournament) error {
	participants, err := txRepo.GetParticipants(t.ID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.UserID)
	}

	game, err := uc.gameUC.StartTournamentGame(tx, t, ids)
	if err != nil {
		return err
	}

	t.Status = domain.TournamentStatusStarted
	t.GameID = &game.ID
	t.UpdatedAt = time.Now()
	if err := txRepo.Update(t); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update tournament", 500, err)
	}
	return nil
}

// Get returns the tournament and its participants.
func (uc *TournamentUseCase) Get(tournamentID string) (*domain.Tournament, []*domain.TournamentParticipant, error) {
	t, err := uc.tournamentRepo.GetByID(tournamentID)
	if err != nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get tournament", 500, err)
	}
	if t == nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeTournamentNotFound, "Tournament not found", 404, nil)
	}
	participants, err := uc.tournamentRepo.GetParticipants(tournamentID)
	if err != nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get participants", 500, err)
	}
	return t, participants, nil
}

// List returns tournaments in a given status, newest first.
func (uc *TournamentUseCase) List(status domain.TournamentStatus, limit, offset int) ([]*domain.Tournament, error) {
	return uc.tournamentRepo.ListByStatus(status, limit, offset)
}

func validateParams(gameType domain.GameType, entryFee domain.Money, maxParticipants int) error {
	switch gameType {
	case domain.GameTypeYahtzee:
		if maxParticipants < 2 || maxParticipants > 4 {
			return domain.NewAppError(domain.ErrCodeInvalidRange, "Yahtzee tournaments take 2 to 4 participants", 400, nil)
		}
	case domain.GameTypeChess:
		if maxParticipants != 2 {
			return domain.NewAppError(domain.ErrCodeInvalidRange, "Chess tournaments take exactly 2 participants", 400, nil)
		}
	default:
		return domain.NewAppError(domain.ErrCodeGameTypeMismatch, "Unknown game type", 400, nil)
	}
	if !entryFee.IsPositive() {
		return domain.NewAppError(domain.ErrCodeInvalidAmount, "Entry fee must be greater than 0", 400, nil)
	}
	return nil
}
