package domain

import (
	"time"

	"gorm.io/gorm"
)

// GameType identifies the rules engine driving a game.
type GameType string

const (
	GameTypeYahtzee GameType = "yahtzee"
	GameTypeChess   GameType = "chess"
)

// GameStatus is the lifecycle state of a game. Completed and cancelled
// are terminal; no further mutation is allowed once reached.
type GameStatus string

const (
	GameStatusOpen      GameStatus = "open"
	GameStatusFilling   GameStatus = "filling"
	GameStatusRunning   GameStatus = "running"
	GameStatusCompleted GameStatus = "completed"
	GameStatusCancelled GameStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further mutation.
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusCompleted || s == GameStatusCancelled
}

// Prize-pool rates: the share of collected entry fees paid out to the
// winner. The remainder is commission.
const (
	StandalonePrizeRate = 0.75
	TournamentPrizeRate = 0.95
)

// YahtzeeTotalRounds is the fixed round count for full play.
const YahtzeeTotalRounds = 13

// Game is a table/match that players pay to enter.
type Game struct {
	ID                  string     `json:"game_id" gorm:"primaryKey;column:id;type:varchar(64)"`
	GameType            GameType   `json:"game_type" gorm:"type:varchar(16);not null;index"`
	Status              GameStatus `json:"status" gorm:"type:varchar(16);not null;index"`
	MaxPlayers          int        `json:"max_players" gorm:"not null"`
	CurrentPlayers      int        `json:"current_players" gorm:"not null;default:0"`
	EntryFee            Money      `json:"entry_fee" gorm:"type:numeric(20,2);not null"`
	PrizeAmount         Money      `json:"prize_amount" gorm:"type:numeric(20,2);not null"`
	CurrentRound        int        `json:"current_round" gorm:"not null;default:0"`
	CurrentTurnPlayerID *string    `json:"current_turn_player_id,omitempty" gorm:"type:varchar(64)"`
	WinnerID            *string    `json:"winner_id,omitempty" gorm:"type:varchar(64)"`
	TournamentID        *string    `json:"tournament_id,omitempty" gorm:"type:varchar(64);index"`
	CreatedBy           string     `json:"created_by" gorm:"type:varchar(64);not null"`
	CreatedAt           time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt           time.Time  `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// PrizeRate returns the pool rate applicable to this game.
func (g Game) PrizeRate() float64 {
	if g.TournamentID != nil {
		return TournamentPrizeRate
	}
	return StandalonePrizeRate
}

// TotalPot is the sum of entry fees at capacity.
func (g Game) TotalPot() Money {
	return g.EntryFee.MulInt(g.MaxPlayers)
}

// Commission is the pot share retained by the platform or host.
func (g Game) Commission() Money {
	return g.TotalPot().Sub(g.PrizeAmount)
}

// GameParticipant is an active (gameID, userID) membership row. Created
// on join, deleted on leave/forfeit; at most one active row per pair.
type GameParticipant struct {
	ID       int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	GameID   string    `json:"game_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_game_user"`
	UserID   string    `json:"user_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_game_user;index"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`
}

// TableName specifies the table name for GameParticipant
func (p GameParticipant) TableName() string {
	return "game_participants"
}

// InvitationStatus is the lifecycle state of a game invitation.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// InvitationTTL is how long a pending invitation stays joinable. Expiry
// is swept lazily; there is no hard real-time visibility guarantee.
const InvitationTTL = 30 * time.Minute

// GameInvitation invites a user into a specific game.
type GameInvitation struct {
	ID        string           `json:"invitation_id" gorm:"primaryKey;column:id;type:varchar(64)"`
	GameID    string           `json:"game_id" gorm:"type:varchar(64);not null;index"`
	FromID    string           `json:"from_id" gorm:"type:varchar(64);not null"`
	ToID      string           `json:"to_id" gorm:"type:varchar(64);not null;index"`
	Status    InvitationStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	ExpiresAt time.Time        `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time        `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for GameInvitation
func (i GameInvitation) TableName() string {
	return "game_invitations"
}

// Expired reports whether the invitation is past its window.
func (i GameInvitation) Expired(now time.Time) bool {
	return i.Status == InvitationStatusPending && now.After(i.ExpiresAt)
}

// GameRepository defines the interface for game and roster data
type GameRepository interface {
	Create(game *Game) error
	GetByID(id string) (*Game, error)
	GetByIDForUpdate(id string) (*Game, error)
	Update(game *Game) error
	ListByStatus(statuses []GameStatus, limit, offset int) ([]*Game, error)
	ListStaleOpen(olderThan time.Time, limit int) ([]*Game, error)

	AddParticipant(p *GameParticipant) error
	RemoveParticipant(gameID, userID string) error
	GetParticipants(gameID string) ([]*GameParticipant, error)
	GetParticipant(gameID, userID string) (*GameParticipant, error)
	GetParticipationsByUser(userID string) ([]*GameParticipant, error)

	WithTransaction(tx *gorm.DB) GameRepository
}

// InvitationRepository defines the interface for invitation data
type InvitationRepository interface {
	Create(inv *GameInvitation) error
	GetByID(id string) (*GameInvitation, error)
	GetByIDForUpdate(id string) (*GameInvitation, error)
	Update(inv *GameInvitation) error
	ListPendingForUser(userID string) ([]*GameInvitation, error)
	ExpirePending(cutoff time.Time) (int64, error)
	WithTransaction(tx *gorm.DB) InvitationRepository
}

// GameUseCase defines the interface for game lifecycle business logic
type GameUseCase interface {
	CreateGame(userID string, gameType GameType, entryFee Money, maxPlayers int) (*Game, error)
	Join(gameID, userID string) (*Game, error)
	Leave(gameID, userID string) (*Game, error)
	GetGame(gameID string) (*Game, error)
	ListOpenGames(limit, offset int) ([]*Game, error)
	ActiveGameForUser(userID string) (*Game, error)
	ForceCancel(gameID, adminID string) (*Game, error)

	// EnsureInitialized repairs a running game whose fill-triggered
	// initialization was interrupted: missing sheets, board or turn
	// pointer are recreated from the authoritative roster. Invoked at
	// the start of any read or write on a running game.
	EnsureInitialized(gameID string) (*Game, error)
	// SweepStaleGames cancels open games that never filled.
	SweepStaleGames(olderThan time.Duration) error

	// StartTournamentGame spawns the tournament's game inside the
	// caller's transaction: one game at the tournament prize rate, every
	// participant seated and debited. Any failure aborts the whole start.
	StartTournamentGame(tx *gorm.DB, t *Tournament, participants []string) (*Game, error)

	Invite(gameID, fromID, toID string) (*GameInvitation, error)
	AcceptInvitation(invitationID, userID string) (*Game, error)
	DeclineInvitation(invitationID, userID string) error
	ListInvitations(userID string) ([]*GameInvitation, error)
	SweepExpiredInvitations() error

	// GetResult returns the settlement snapshot, or a not-found error
	// while the game is still live.
	GetResult(gameID string) (*MatchResult, error)
}
