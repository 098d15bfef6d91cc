package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// AIUserPrefix marks synthetic opponents. AI users hold balances and
// participate in games like anyone else; the turn engine auto-plays them.
const AIUserPrefix = "ai_"

// IsAIUser reports whether the id belongs to a synthetic opponent.
func IsAIUser(userID string) bool {
	return strings.HasPrefix(userID, AIUserPrefix)
}

// UserRole is the authorization level attached to a verified identity.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// User represents a player on the platform. Balance is authoritative and
// mutated only through the ledger primitives, never by direct assignment.
type User struct {
	ID            string         `json:"user_id" gorm:"primaryKey;column:id;type:varchar(64)"`
	Username      string         `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Password      string         `json:"-" gorm:"not null;type:varchar(128)"`
	Role          UserRole       `json:"role" gorm:"type:varchar(16);not null;default:'member'"`
	Balance       Money          `json:"balance" gorm:"type:numeric(20,2);not null;default:0"`
	GamesPlayed   int            `json:"games_played" gorm:"not null;default:0"`
	GamesWon      int            `json:"games_won" gorm:"not null;default:0"`
	TotalWinnings Money          `json:"total_winnings" gorm:"type:numeric(20,2);not null;default:0"`
	LastActivity  time.Time      `json:"last_activity" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"not null"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id string) (*User, error)
	GetByIDForUpdate(id string) (*User, error)
	GetByUsername(username string) (*User, error)
	Create(user *User) error
	Update(user *User) error
	UpdateBalance(userID string, newBalance Money) error
	IncrementStats(userID string, playedDelta, wonDelta int, winningsDelta Money) error
	TouchActivity(userID string) error
	WithTransaction(tx *gorm.DB) UserRepository
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	Authenticate(username, password string) (string, error)
	GetUserInfo(userID string) (*User, error)
}
