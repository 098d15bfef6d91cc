package repository

import (
	"errors"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// YahtzeeRepository implements domain.YahtzeeRepository
type YahtzeeRepository struct {
	db *gorm.DB
}

// NewYahtzeeRepository creates a new yahtzee repository
func NewYahtzeeRepository(db *gorm.DB) domain.YahtzeeRepository {
	return &YahtzeeRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *YahtzeeRepository) WithTransaction(tx *gorm.DB) domain.YahtzeeRepository {
	return &YahtzeeRepository{db: tx}
}

// CreatePlayerState creates a player's score sheet record
func (r *YahtzeeRepository) CreatePlayerState(state *domain.YahtzeePlayerState) error {
	return r.db.Create(state).Error
}

// GetPlayerState retrieves one player's sheet
func (r *YahtzeeRepository) GetPlayerState(gameID, userID string) (*domain.YahtzeePlayerState, error) {
	var state domain.YahtzeePlayerState
	result := r.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &state, nil
}

// GetPlayerStates retrieves all sheets for a game
func (r *YahtzeeRepository) GetPlayerStates(gameID string) ([]*domain.YahtzeePlayerState, error) {
	var states []*domain.YahtzeePlayerState
	result := r.db.Where("game_id = ?", gameID).Find(&states)
	if result.Error != nil {
		return nil, result.Error
	}
	return states, nil
}

// UpdatePlayerState updates a player's sheet
func (r *YahtzeeRepository) UpdatePlayerState(state *domain.YahtzeePlayerState) error {
	state.UpdatedAt = time.Now()
	return r.db.Save(state).Error
}

// CreateTurn creates a turn record
func (r *YahtzeeRepository) CreateTurn(turn *domain.YahtzeeTurn) error {
	return r.db.Create(turn).Error
}

// GetTurn retrieves the turn for (game, user, round)
func (r *YahtzeeRepository) GetTurn(gameID, userID string, round int) (*domain.YahtzeeTurn, error) {
	var turn domain.YahtzeeTurn
	result := r.db.Where("game_id = ? AND user_id = ? AND round = ?", gameID, userID, round).
		First(&turn)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &turn, nil
}

// GetTurnForUpdate retrieves the turn with a row lock
func (r *YahtzeeRepository) GetTurnForUpdate(gameID, userID string, round int) (*domain.YahtzeeTurn, error) {
	var turn domain.YahtzeeTurn
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("game_id = ? AND user_id = ? AND round = ?", gameID, userID, round).
		First(&turn)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &turn, nil
}

// GetIncompleteTurns retrieves the round's unfinished turns
func (r *YahtzeeRepository) GetIncompleteTurns(gameID string, round int) ([]*domain.YahtzeeTurn, error) {
	var turns []*domain.YahtzeeTurn
	result := r.db.Where("game_id = ? AND round = ? AND is_completed = ?", gameID, round, false).
		Find(&turns)
	if result.Error != nil {
		return nil, result.Error
	}
	return turns, nil
}

// UpdateTurn updates a turn record
func (r *YahtzeeRepository) UpdateTurn(turn *domain.YahtzeeTurn) error {
	turn.UpdatedAt = time.Now()
	return r.db.Save(turn).Error
}
