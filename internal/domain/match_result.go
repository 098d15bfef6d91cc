package domain

import (
	"time"

	"gorm.io/gorm"
)

// MatchResult is the immutable settlement snapshot, written once per
// completed game and never updated. It lists every participant who ever
// paid an entry fee, including ones whose roster rows were deleted on
// forfeit, so the historical record survives the roster churn.
type MatchResult struct {
	ID          string    `json:"match_result_id" gorm:"primaryKey;column:id;type:varchar(64)"`
	GameID      string    `json:"game_id" gorm:"type:varchar(64);not null;uniqueIndex"`
	GameType    GameType  `json:"game_type" gorm:"type:varchar(16);not null"`
	WinnerID    *string   `json:"winner_id,omitempty" gorm:"type:varchar(64)"`
	PrizeAmount Money     `json:"prize_amount" gorm:"type:numeric(20,2);not null"`
	Commission  Money     `json:"commission" gorm:"type:numeric(20,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`

	Players []MatchResultPlayer `json:"players" gorm:"foreignKey:MatchResultID"`
}

// TableName specifies the table name for MatchResult
func (r MatchResult) TableName() string {
	return "match_results"
}

// MatchResultPlayer is one participant row of a settlement snapshot.
// Forfeited players rank last with netChange = -entryFee.
type MatchResultPlayer struct {
	ID            int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	MatchResultID string    `json:"-" gorm:"type:varchar(64);not null;index"`
	UserID        string    `json:"user_id" gorm:"type:varchar(64);not null;index"`
	Rank          int       `json:"rank" gorm:"not null"`
	Score         int       `json:"score" gorm:"not null;default:0"`
	EntryFee      Money     `json:"entry_fee" gorm:"type:numeric(20,2);not null"`
	NetChange     Money     `json:"net_change" gorm:"type:numeric(20,2);not null"`
	Forfeited     bool      `json:"forfeited" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for MatchResultPlayer
func (p MatchResultPlayer) TableName() string {
	return "match_result_players"
}

// MatchResultRepository defines the interface for settlement snapshots
type MatchResultRepository interface {
	Create(result *MatchResult) error
	GetByGameID(gameID string) (*MatchResult, error)
	GetByUserID(userID string, limit, offset int) ([]*MatchResult, error)
	WithTransaction(tx *gorm.DB) MatchResultRepository
}
