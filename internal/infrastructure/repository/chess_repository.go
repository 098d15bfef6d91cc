package repository

import (
	"errors"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChessRepository implements domain.ChessRepository
type ChessRepository struct {
	db *gorm.DB
}

// NewChessRepository creates a new chess repository
func NewChessRepository(db *gorm.DB) domain.ChessRepository {
	return &ChessRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *ChessRepository) WithTransaction(tx *gorm.DB) domain.ChessRepository {
	return &ChessRepository{db: tx}
}

// CreateState creates the board record for a game
func (r *ChessRepository) CreateState(state *domain.ChessGameState) error {
	if state.CreatedAt.IsZero() {
		state.CreatedAt = time.Now()
		state.UpdatedAt = time.Now()
	}
	return r.db.Create(state).Error
}

// GetState retrieves the board record for a game
func (r *ChessRepository) GetState(gameID string) (*domain.ChessGameState, error) {
	var state domain.ChessGameState
	result := r.db.Where("game_id = ?", gameID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &state, nil
}

// GetStateForUpdate retrieves the board record with a row lock
func (r *ChessRepository) GetStateForUpdate(gameID string) (*domain.ChessGameState, error) {
	var state domain.ChessGameState
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("game_id = ?", gameID).
		First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &state, nil
}

// UpdateState updates the board record
func (r *ChessRepository) UpdateState(state *domain.ChessGameState) error {
	state.UpdatedAt = time.Now()
	return r.db.Save(state).Error
}

// AppendMove appends one entry to the move log
func (r *ChessRepository) AppendMove(move *domain.ChessMove) error {
	if move.CreatedAt.IsZero() {
		move.CreatedAt = time.Now()
	}
	return r.db.Create(move).Error
}

// GetMoves retrieves a game's move log in play order
func (r *ChessRepository) GetMoves(gameID string) ([]*domain.ChessMove, error) {
	var moves []*domain.ChessMove
	result := r.db.Where("game_id = ?", gameID).
		Order("move_number ASC, created_at ASC").
		Find(&moves)
	if result.Error != nil {
		return nil, result.Error
	}
	return moves, nil
}
