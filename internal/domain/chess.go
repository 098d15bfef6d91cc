package domain

import (
	"time"

	"gorm.io/gorm"
)

// ChessStatus is the in-game status of a chess match record.
type ChessStatus string

const (
	ChessStatusInProgress ChessStatus = "in_progress"
	ChessStatusCheckmate  ChessStatus = "checkmate"
	ChessStatusStalemate  ChessStatus = "stalemate"
	ChessStatusResigned   ChessStatus = "resigned"
)

// ChessColor identifies a side.
type ChessColor string

const (
	ChessWhite ChessColor = "white"
	ChessBlack ChessColor = "black"
)

// ChessGameState is the one-per-game board record. Created when the
// game fills, mutated on every accepted move, immutable once the status
// leaves in_progress. Board is the engine's 64-char serialization.
type ChessGameState struct {
	ID               int64       `json:"-" gorm:"primaryKey;autoIncrement"`
	GameID           string      `json:"game_id" gorm:"type:varchar(64);not null;uniqueIndex"`
	Board            string      `json:"board" gorm:"type:char(64);not null"`
	WhitePlayerID    string      `json:"white_player_id" gorm:"type:varchar(64);not null"`
	BlackPlayerID    string      `json:"black_player_id" gorm:"type:varchar(64);not null"`
	CurrentTurn      ChessColor  `json:"current_turn" gorm:"type:varchar(8);not null"`
	GameStatus       ChessStatus `json:"game_status" gorm:"type:varchar(16);not null;default:'in_progress'"`
	WhiteKingside    bool        `json:"white_kingside" gorm:"not null;default:true"`
	WhiteQueenside   bool        `json:"white_queenside" gorm:"not null;default:true"`
	BlackKingside    bool        `json:"black_kingside" gorm:"not null;default:true"`
	BlackQueenside   bool        `json:"black_queenside" gorm:"not null;default:true"`
	EnPassantTarget  *string     `json:"en_passant_target,omitempty" gorm:"type:varchar(2)"`
	MoveCount        int         `json:"move_count" gorm:"not null;default:0"`
	CapturedPieces   string      `json:"captured_pieces" gorm:"type:varchar(64);not null;default:''"`
	CreatedAt        time.Time   `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time   `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for ChessGameState
func (s ChessGameState) TableName() string {
	return "chess_game_states"
}

// ChessMove is an append-only move-log entry. Never mutated after
// creation; this is the audit trail of the match.
type ChessMove struct {
	ID          int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	GameID      string    `json:"game_id" gorm:"type:varchar(64);not null;index"`
	MoveNumber  int       `json:"move_number" gorm:"not null"`
	PlayerID    string    `json:"player_id" gorm:"type:varchar(64);not null"`
	FromSquare  string    `json:"from_square" gorm:"type:varchar(2);not null"`
	ToSquare    string    `json:"to_square" gorm:"type:varchar(2);not null"`
	Piece       string    `json:"piece" gorm:"type:varchar(1);not null"`
	Captured    *string   `json:"captured,omitempty" gorm:"type:varchar(1)"`
	IsCheck     bool      `json:"is_check" gorm:"not null;default:false"`
	IsCheckmate bool      `json:"is_checkmate" gorm:"not null;default:false"`
	IsCastling  bool      `json:"is_castling" gorm:"not null;default:false"`
	IsEnPassant bool      `json:"is_en_passant" gorm:"not null;default:false"`
	Promotion   *string   `json:"promotion,omitempty" gorm:"type:varchar(1)"`
	Notation    string    `json:"notation" gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for ChessMove
func (m ChessMove) TableName() string {
	return "chess_moves"
}

// ChessRepository defines the interface for chess game state
type ChessRepository interface {
	CreateState(state *ChessGameState) error
	GetState(gameID string) (*ChessGameState, error)
	GetStateForUpdate(gameID string) (*ChessGameState, error)
	UpdateState(state *ChessGameState) error
	AppendMove(move *ChessMove) error
	GetMoves(gameID string) ([]*ChessMove, error)
	WithTransaction(tx *gorm.DB) ChessRepository
}

// ChessUseCase defines the interface for chess match operations
type ChessUseCase interface {
	Move(gameID, userID, from, to, promotion string) (*ChessGameState, error)
	Resign(gameID, userID string) (*ChessGameState, error)
	GetState(gameID string) (*ChessGameState, []*ChessMove, error)
}
