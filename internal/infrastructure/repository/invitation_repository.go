package repository

import (
	"errors"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvitationRepository implements domain.InvitationRepository
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) domain.InvitationRepository {
	return &InvitationRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *InvitationRepository) WithTransaction(tx *gorm.DB) domain.InvitationRepository {
	return &InvitationRepository{db: tx}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(inv *domain.GameInvitation) error {
	return r.db.Create(inv).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id string) (*domain.GameInvitation, error) {
	var inv domain.GameInvitation
	result := r.db.Where("id = ?", id).First(&inv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &inv, nil
}

// GetByIDForUpdate retrieves an invitation by ID with a row lock
func (r *InvitationRepository) GetByIDForUpdate(id string) (*domain.GameInvitation, error) {
	var inv domain.GameInvitation
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&inv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &inv, nil
}

// Update updates an existing invitation
func (r *InvitationRepository) Update(inv *domain.GameInvitation) error {
	inv.UpdatedAt = time.Now()
	return r.db.Save(inv).Error
}

// ListPendingForUser retrieves a user's pending invitations
func (r *InvitationRepository) ListPendingForUser(userID string) ([]*domain.GameInvitation, error) {
	var invitations []*domain.GameInvitation
	result := r.db.Where("to_id = ? AND status = ?", userID, domain.InvitationStatusPending).
		Order("created_at DESC").
		Find(&invitations)
	if result.Error != nil {
		return nil, result.Error
	}
	return invitations, nil
}

// ExpirePending flips every pending invitation past its window
func (r *InvitationRepository) ExpirePending(cutoff time.Time) (int64, error) {
	result := r.db.Model(&domain.GameInvitation{}).
		Where("status = ? AND expires_at < ?", domain.InvitationStatusPending, cutoff).
		Updates(map[string]interface{}{
			"status":     domain.InvitationStatusExpired,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
