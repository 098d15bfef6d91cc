package repository

import (
	"errors"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *GameRepository) WithTransaction(tx *gorm.DB) domain.GameRepository {
	return &GameRepository{db: tx}
}

// Create creates a new game
func (r *GameRepository) Create(game *domain.Game) error {
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now()
		game.UpdatedAt = time.Now()
	}
	return r.db.Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id string) (*domain.Game, error) {
	var game domain.Game
	result := r.db.Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetByIDForUpdate retrieves a game by ID with a row lock
func (r *GameRepository) GetByIDForUpdate(id string) (*domain.Game, error) {
	var game domain.Game
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// Update updates an existing game
func (r *GameRepository) Update(game *domain.Game) error {
	game.UpdatedAt = time.Now()
	return r.db.Save(game).Error
}

// ListByStatus retrieves games in the given statuses, newest first
func (r *GameRepository) ListByStatus(statuses []domain.GameStatus, limit, offset int) ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.Where("status IN ?", statuses).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// ListStaleOpen retrieves joinable games untouched since the cutoff
func (r *GameRepository) ListStaleOpen(olderThan time.Time, limit int) ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.Where("status IN ? AND updated_at < ?",
		[]domain.GameStatus{domain.GameStatusOpen, domain.GameStatusFilling}, olderThan).
		Order("updated_at ASC").
		Limit(limit).
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// AddParticipant creates a roster row
func (r *GameRepository) AddParticipant(p *domain.GameParticipant) error {
	if p.JoinedAt.IsZero() {
		p.JoinedAt = time.Now()
	}
	return r.db.Create(p).Error
}

// RemoveParticipant deletes the roster row for (game, user)
func (r *GameRepository) RemoveParticipant(gameID, userID string) error {
	return r.db.Where("game_id = ? AND user_id = ?", gameID, userID).
		Delete(&domain.GameParticipant{}).Error
}

// GetParticipants retrieves the roster in join order
func (r *GameRepository) GetParticipants(gameID string) ([]*domain.GameParticipant, error) {
	var participants []*domain.GameParticipant
	result := r.db.Where("game_id = ?", gameID).
		Order("joined_at ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}
	return participants, nil
}

// GetParticipant retrieves one roster row
func (r *GameRepository) GetParticipant(gameID, userID string) (*domain.GameParticipant, error) {
	var participant domain.GameParticipant
	result := r.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &participant, nil
}

// GetParticipationsByUser retrieves every roster row for a user
func (r *GameRepository) GetParticipationsByUser(userID string) ([]*domain.GameParticipant, error) {
	var participants []*domain.GameParticipant
	result := r.db.Where("user_id = ?", userID).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}
	return participants, nil
}
