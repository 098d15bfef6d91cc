package repository

import (
	"errors"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TournamentRepository implements domain.TournamentRepository
type TournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *gorm.DB) domain.TournamentRepository {
	return &TournamentRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *TournamentRepository) WithTransaction(tx *gorm.DB) domain.TournamentRepository {
	return &TournamentRepository{db: tx}
}

// Create creates a new tournament
func (r *TournamentRepository) Create(t *domain.Tournament) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
		t.UpdatedAt = time.Now()
	}
	return r.db.Create(t).Error
}

// GetByID retrieves a tournament by ID
func (r *TournamentRepository) GetByID(id string) (*domain.Tournament, error) {
	var t domain.Tournament
	result := r.db.Where("id = ?", id).First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &t, nil
}

// GetByIDForUpdate retrieves a tournament by ID with a row lock
func (r *TournamentRepository) GetByIDForUpdate(id string) (*domain.Tournament, error) {
	var t domain.Tournament
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &t, nil
}

// Update updates an existing tournament
func (r *TournamentRepository) Update(t *domain.Tournament) error {
	t.UpdatedAt = time.Now()
	return r.db.Save(t).Error
}

// ListByStatus retrieves tournaments with the given status, newest first
func (r *TournamentRepository) ListByStatus(status domain.TournamentStatus, limit, offset int) ([]*domain.Tournament, error) {
	var tournaments []*domain.Tournament
	result := r.db.Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}
	return tournaments, nil
}

// AddParticipant inserts the entry row; the composite key makes a second
// entry by the same user a duplicate-key error, never a second row.
func (r *TournamentRepository) AddParticipant(p *domain.TournamentParticipant) error {
	if p.JoinedAt.IsZero() {
		p.JoinedAt = time.Now()
	}
	err := r.db.Create(p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTournamentDoubleJoin
		}
		return err
	}
	return nil
}

// GetParticipants retrieves the entrants in join order
func (r *TournamentRepository) GetParticipants(tournamentID string) ([]*domain.TournamentParticipant, error) {
	var participants []*domain.TournamentParticipant
	result := r.db.Where("tournament_id = ?", tournamentID).
		Order("joined_at ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}
	return participants, nil
}
