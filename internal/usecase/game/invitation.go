package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/gameplatform/internal/domain"
	"go.uber.org/zap"
)

// Invite asks another user into a joinable game the inviter is part of.
func (uc *GameUseCase) Invite(gameID, fromID, toID string) (*domain.GameInvitation, error) {
	if fromID == toID {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Cannot invite yourself", 400, nil)
	}

	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get game from DB", 500, err)
	}
	if game == nil {
		return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found", 404, nil)
	}
	if game.Status != domain.GameStatusOpen && game.Status != domain.GameStatusFilling {
		return nil, domain.NewConflictError(domain.ErrCodeGameNotJoinable, "Game is not accepting players")
	}

	target, err := uc.userRepo.GetByID(toID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if target == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}

	inv := &domain.GameInvitation{
		ID:        uuid.NewString(),
		GameID:    gameID,
		FromID:    fromID,
		ToID:      toID,
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().Add(domain.InvitationTTL),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.invitationRepo.Create(inv); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create invitation", 500, err)
	}

	uc.logger.Info("Invitation sent",
		zap.String("gameID", gameID),
		zap.String("from", fromID),
		zap.String("to", toID))
	uc.notifier.Publish(domain.Event{
		Type:    domain.EventGameUpdate,
		UserIDs: []string{toID},
		Data: map[string]interface{}{
			"invitation_id": inv.ID,
			"game_id":       gameID,
			"from_id":       fromID,
		},
	})
	return inv, nil
}

// AcceptInvitation joins the invited game. Expiry is checked lazily at
// read time; a stale pending row is transitioned here.
func (uc *GameUseCase) AcceptInvitation(invitationID, userID string) (*domain.Game, error) {
	tx, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}
	txInvRepo := uc.invitationRepo.WithTransaction(tx)

	inv, err := txInvRepo.GetByIDForUpdate(invitationID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get invitation", 500, err)
	}
	if inv == nil || inv.ToID != userID {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeInvitationNotFound, "Invitation not found", 404, nil)
	}
	if inv.Status != domain.InvitationStatusPending {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeInvitationNotFound, "Invitation is no longer pending")
	}
	if inv.Expired(time.Now()) {
		inv.Status = domain.InvitationStatusExpired
		inv.UpdatedAt = time.Now()
		if err := txInvRepo.Update(inv); err != nil {
			tx.Rollback()
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to expire invitation", 500, err)
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
		}
		return nil, domain.NewConflictError(domain.ErrCodeInvitationExpired, "Invitation has expired")
	}

	game, err := uc.joinLocked(tx, inv.GameID, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	inv.Status = domain.InvitationStatusAccepted
	inv.UpdatedAt = time.Now()
	if err := txInvRepo.Update(inv); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update invitation", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Invitation accepted",
		zap.String("invitationID", invitationID),
		zap.String("gameID", inv.GameID),
		zap.String("userID", userID))
	uc.notifyGame(game)
	return game, nil
}

// DeclineInvitation marks a pending invitation declined.
func (uc *GameUseCase) DeclineInvitation(invitationID, userID string) error {
	inv, err := uc.invitationRepo.GetByID(invitationID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get invitation", 500, err)
	}
	if inv == nil || inv.ToID != userID {
		return domain.NewAppError(domain.ErrCodeInvitationNotFound, "Invitation not found", 404, nil)
	}
	if inv.Status != domain.InvitationStatusPending {
		return domain.NewConflictError(domain.ErrCodeInvitationNotFound, "Invitation is no longer pending")
	}

	inv.Status = domain.InvitationStatusDeclined
	inv.UpdatedAt = time.Now()
	if err := uc.invitationRepo.Update(inv); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update invitation", 500, err)
	}
	return nil
}

// ListInvitations returns the user's pending invitations, newest first.
func (uc *GameUseCase) ListInvitations(userID string) ([]*domain.GameInvitation, error) {
	invitations, err := uc.invitationRepo.ListPendingForUser(userID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list invitations", 500, err)
	}
	return invitations, nil
}

// SweepExpiredInvitations transitions pending invitations past their
// window. Scheduled periodically; reads also expire lazily.
func (uc *GameUseCase) SweepExpiredInvitations() error {
	n, err := uc.invitationRepo.ExpirePending(time.Now())
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to expire invitations", 500, err)
	}
	if n > 0 {
		uc.logger.Info("Expired stale invitations", zap.Int64("count", n))
	}
	return nil
}
