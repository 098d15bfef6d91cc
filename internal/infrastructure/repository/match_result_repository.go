package repository

import (
	"errors"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"gorm.io/gorm"
)

// MatchResultRepository implements domain.MatchResultRepository
type MatchResultRepository struct {
	db *gorm.DB
}

// NewMatchResultRepository creates a new match result repository
func NewMatchResultRepository(db *gorm.DB) domain.MatchResultRepository {
	return &MatchResultRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *MatchResultRepository) WithTransaction(tx *gorm.DB) domain.MatchResultRepository {
	return &MatchResultRepository{db: tx}
}

// Create writes the settlement snapshot and its player rows
func (r *MatchResultRepository) Create(result *domain.MatchResult) error {
	now := time.Now()
	if result.CreatedAt.IsZero() {
		result.CreatedAt = now
	}
	for i := range result.Players {
		if result.Players[i].CreatedAt.IsZero() {
			result.Players[i].CreatedAt = now
		}
	}
	return r.db.Create(result).Error
}

// GetByGameID retrieves the snapshot for a game with its player rows
func (r *MatchResultRepository) GetByGameID(gameID string) (*domain.MatchResult, error) {
	var result domain.MatchResult
	err := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("rank ASC")
	}).Where("game_id = ?", gameID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// GetByUserID retrieves snapshots a user appears in, newest first
func (r *MatchResultRepository) GetByUserID(userID string, limit, offset int) ([]*domain.MatchResult, error) {
	var results []*domain.MatchResult
	err := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("rank ASC")
	}).
		Joins("JOIN match_result_players ON match_result_players.match_result_id = match_results.id").
		Where("match_result_players.user_id = ?", userID).
		Order("match_results.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
