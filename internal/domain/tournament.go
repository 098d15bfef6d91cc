package domain

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TournamentStatus is the lifecycle state of a tournament pool.
type TournamentStatus string

const (
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusStarted   TournamentStatus = "started"
	TournamentStatusCompleted TournamentStatus = "completed"
	TournamentStatusCancelled TournamentStatus = "cancelled"
)

// Tournament is a pooled-entry structure. Joining moves no money;
// starting debits every participant atomically and spawns exactly one
// game settled at the tournament prize rate.
type Tournament struct {
	ID                  string           `json:"tournament_id" gorm:"primaryKey;column:id;type:varchar(64)"`
	Name                string           `json:"name" gorm:"type:varchar(128);not null"`
	HostID              string           `json:"host_id" gorm:"type:varchar(64);not null"`
	GameType            GameType         `json:"game_type" gorm:"type:varchar(16);not null"`
	EntryFee            Money            `json:"entry_fee" gorm:"type:numeric(20,2);not null"`
	PotAmount           Money            `json:"pot_amount" gorm:"type:numeric(20,2);not null;default:0"`
	MaxParticipants     int              `json:"max_participants" gorm:"not null"`
	CurrentParticipants int              `json:"current_participants" gorm:"not null;default:0"`
	Status              TournamentStatus `json:"status" gorm:"type:varchar(16);not null;index"`
	GameID              *string          `json:"game_id,omitempty" gorm:"type:varchar(64)"`
	CreatedAt           time.Time        `json:"created_at" gorm:"not null"`
	UpdatedAt           time.Time        `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Tournament
func (t Tournament) TableName() string {
	return "tournaments"
}

// TournamentParticipant is keyed tournamentID_userID so a double join
// is structurally impossible, not merely checked.
type TournamentParticipant struct {
	ID           string    `json:"-" gorm:"primaryKey;column:id;type:varchar(130)"`
	TournamentID string    `json:"tournament_id" gorm:"type:varchar(64);not null;index"`
	UserID       string    `json:"user_id" gorm:"type:varchar(64);not null;index"`
	JoinedAt     time.Time `json:"joined_at" gorm:"not null"`
}

// TableName specifies the table name for TournamentParticipant
func (p TournamentParticipant) TableName() string {
	return "tournament_participants"
}

// TournamentParticipantKey builds the deterministic composite key.
func TournamentParticipantKey(tournamentID, userID string) string {
	return fmt.Sprintf("%s_%s", tournamentID, userID)
}

// TournamentRepository defines the interface for tournament data
type TournamentRepository interface {
	Create(t *Tournament) error
	GetByID(id string) (*Tournament, error)
	GetByIDForUpdate(id string) (*Tournament, error)
	Update(t *Tournament) error
	ListByStatus(status TournamentStatus, limit, offset int) ([]*Tournament, error)

	AddParticipant(p *TournamentParticipant) error
	GetParticipants(tournamentID string) ([]*TournamentParticipant, error)

	WithTransaction(tx *gorm.DB) TournamentRepository
}

// ErrTournamentDoubleJoin signals a participant key collision.
var ErrTournamentDoubleJoin = NewConflictError(ErrCodeAlreadyEntered, "Already entered in tournament")

// TournamentUseCase defines the interface for tournament business logic
type TournamentUseCase interface {
	Create(hostID, name string, gameType GameType, entryFee Money, maxParticipants int) (*Tournament, error)
	Join(tournamentID, userID string) (*Tournament, error)
	Get(tournamentID string) (*Tournament, []*TournamentParticipant, error)
	List(status TournamentStatus, limit, offset int) ([]*Tournament, error)
}
