package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// YahtzeeCategory is one of the 13 scoring slots on a sheet.
type YahtzeeCategory string

const (
	CategoryOnes          YahtzeeCategory = "ones"
	CategoryTwos          YahtzeeCategory = "twos"
	CategoryThrees        YahtzeeCategory = "threes"
	CategoryFours         YahtzeeCategory = "fours"
	CategoryFives         YahtzeeCategory = "fives"
	CategorySixes         YahtzeeCategory = "sixes"
	CategoryThreeOfAKind  YahtzeeCategory = "threeOfAKind"
	CategoryFourOfAKind   YahtzeeCategory = "fourOfAKind"
	CategoryFullHouse     YahtzeeCategory = "fullHouse"
	CategorySmallStraight YahtzeeCategory = "smallStraight"
	CategoryLargeStraight YahtzeeCategory = "largeStraight"
	CategoryYahtzee       YahtzeeCategory = "yahtzee"
	CategoryChance        YahtzeeCategory = "chance"
)

// YahtzeeCategories lists all slots in sheet order.
var YahtzeeCategories = []YahtzeeCategory{
	CategoryOnes, CategoryTwos, CategoryThrees, CategoryFours,
	CategoryFives, CategorySixes, CategoryThreeOfAKind,
	CategoryFourOfAKind, CategoryFullHouse, CategorySmallStraight,
	CategoryLargeStraight, CategoryYahtzee, CategoryChance,
}

// UpperCategories are the face-count slots feeding the +35 bonus.
var UpperCategories = []YahtzeeCategory{
	CategoryOnes, CategoryTwos, CategoryThrees,
	CategoryFours, CategoryFives, CategorySixes,
}

// IsValidCategory reports whether c names a sheet slot.
func IsValidCategory(c YahtzeeCategory) bool {
	for _, v := range YahtzeeCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ScoreUnused is the sentinel for a category not yet committed.
const ScoreUnused = -1

// ScoreSheet maps category to committed score; missing or -1 means
// unused. Stored as JSONB.
type ScoreSheet map[YahtzeeCategory]int

// Scan implements the sql.Scanner interface
func (s *ScoreSheet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, sok := value.(string)
		if !sok {
			return fmt.Errorf("failed to unmarshal ScoreSheet value: %v", value)
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, s)
}

// Value implements the driver.Valuer interface
func (s ScoreSheet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Used reports whether the category has a committed score.
func (s ScoreSheet) Used(c YahtzeeCategory) bool {
	v, ok := s[c]
	return ok && v != ScoreUnused
}

// DiceValues is the five die faces of a turn, stored as JSONB.
type DiceValues []int

// Scan implements the sql.Scanner interface
func (d *DiceValues) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, sok := value.(string)
		if !sok {
			return fmt.Errorf("failed to unmarshal DiceValues value: %v", value)
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, d)
}

// Value implements the driver.Valuer interface
func (d DiceValues) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// HoldFlags marks which dice survive a re-roll, stored as JSONB.
type HoldFlags []bool

// Scan implements the sql.Scanner interface
func (h *HoldFlags) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, sok := value.(string)
		if !sok {
			return fmt.Errorf("failed to unmarshal HoldFlags value: %v", value)
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, h)
}

// Value implements the driver.Valuer interface
func (h HoldFlags) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

// YahtzeePlayerState is a player's scoring sheet for one game. Mutated
// only by the turn engine when a turn completes; scores never decrease.
type YahtzeePlayerState struct {
	ID               int64      `json:"-" gorm:"primaryKey;autoIncrement"`
	GameID           string     `json:"game_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_yz_state_game_user"`
	UserID           string     `json:"user_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_yz_state_game_user"`
	Sheet            ScoreSheet `json:"sheet" gorm:"type:jsonb"`
	UpperBonus       bool       `json:"upper_bonus" gorm:"not null;default:false"`
	YahtzeeBonusCount int       `json:"yahtzee_bonus_count" gorm:"not null;default:0"`
	TotalScore       int        `json:"total_score" gorm:"not null;default:0"`
	TurnsCompleted   int        `json:"turns_completed" gorm:"not null;default:0"`
	CreatedAt        time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for YahtzeePlayerState
func (s YahtzeePlayerState) TableName() string {
	return "yahtzee_player_states"
}

// YahtzeeTurn is the active-turn record for (game, user, round). At
// most one incomplete turn exists per active player; completion is
// terminal for the record.
type YahtzeeTurn struct {
	ID             int64            `json:"-" gorm:"primaryKey;autoIncrement"`
	GameID         string           `json:"game_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_yz_turn_game_user_round"`
	UserID         string           `json:"user_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_yz_turn_game_user_round"`
	Round          int              `json:"round" gorm:"not null;uniqueIndex:idx_yz_turn_game_user_round"`
	Dice           DiceValues       `json:"dice" gorm:"type:jsonb"`
	Holds          HoldFlags        `json:"holds" gorm:"type:jsonb"`
	RollCount      int              `json:"roll_count" gorm:"not null;default:0"`
	IsCompleted    bool             `json:"is_completed" gorm:"not null;default:false"`
	ScoredCategory *YahtzeeCategory `json:"scored_category,omitempty" gorm:"type:varchar(16)"`
	Points         int              `json:"points" gorm:"not null;default:0"`
	CreatedAt      time.Time        `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time        `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for YahtzeeTurn
func (t YahtzeeTurn) TableName() string {
	return "yahtzee_turns"
}

// YahtzeeRepository defines the interface for yahtzee game state
type YahtzeeRepository interface {
	CreatePlayerState(state *YahtzeePlayerState) error
	GetPlayerState(gameID, userID string) (*YahtzeePlayerState, error)
	GetPlayerStates(gameID string) ([]*YahtzeePlayerState, error)
	UpdatePlayerState(state *YahtzeePlayerState) error

	CreateTurn(turn *YahtzeeTurn) error
	GetTurn(gameID, userID string, round int) (*YahtzeeTurn, error)
	GetTurnForUpdate(gameID, userID string, round int) (*YahtzeeTurn, error)
	GetIncompleteTurns(gameID string, round int) ([]*YahtzeeTurn, error)
	UpdateTurn(turn *YahtzeeTurn) error

	WithTransaction(tx *gorm.DB) YahtzeeRepository
}

// YahtzeeUseCase defines the interface for the yahtzee turn engine
type YahtzeeUseCase interface {
	Roll(gameID, userID string) (*YahtzeeTurn, error)
	Hold(gameID, userID string, dieIndex int, hold bool) (*YahtzeeTurn, error)
	ScoreCategory(gameID, userID string, category YahtzeeCategory) (*YahtzeePlayerState, error)
	GetState(gameID string) ([]*YahtzeePlayerState, error)
	// RunAITurn drives a synthetic player's full turn. Concurrent
	// triggers for the same (game, player) pair are dropped.
	RunAITurn(gameID, aiUserID string)
}
