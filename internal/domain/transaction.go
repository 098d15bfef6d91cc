package domain

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType represents the type of ledger entry
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeEntry      TransactionType = "entry"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeWin        TransactionType = "win"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeCommission TransactionType = "commission"
)

// Transaction is an append-only ledger entry. Every balance mutation is
// paired with exactly one of these in the same atomic unit. BalanceAfter
// is a point-in-time audit snapshot; User.Balance stays authoritative.
type Transaction struct {
	ID             string          `json:"transaction_id" gorm:"primaryKey;column:id;type:varchar(64)"`
	UserID         string          `json:"user_id" gorm:"index;not null;type:varchar(64)"`
	Type           TransactionType `json:"type" gorm:"type:varchar(16);not null"`
	Amount         Money           `json:"amount" gorm:"type:numeric(20,2);not null"` // signed: debits negative
	Description    string          `json:"description" gorm:"type:varchar(256);not null"`
	GameID         *string         `json:"game_id,omitempty" gorm:"type:varchar(64);index"`
	IdempotencyKey *string         `json:"idempotency_key,omitempty" gorm:"uniqueIndex;type:varchar(64)"`
	BalanceAfter   Money           `json:"balance_after" gorm:"type:numeric(20,2);not null"`
	CreatedAt      time.Time       `json:"created_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for Transaction
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionRepository defines the interface for ledger data
type TransactionRepository interface {
	Create(transaction *Transaction) error
	GetByID(id string) (*Transaction, error)
	GetByIdempotencyKey(key string) (*Transaction, error)
	GetByUserID(userID string, limit, offset int) ([]*Transaction, error)
	GetByGameID(gameID string) ([]*Transaction, error)
	WithTransaction(tx *gorm.DB) TransactionRepository
}

// WithdrawResult is the successful outcome of a withdrawal.
type WithdrawResult struct {
	NewBalance  Money        `json:"new_balance"`
	Transaction *Transaction `json:"transaction"`
}

// PaymentEvent is a deposit webhook delivery from the payment source.
type PaymentEvent struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
	Amount  Money  `json:"amount"`
	Failed  bool   `json:"failed"`
}

// LedgerService is the single balance-mutation primitive. Apply runs
// inside the caller's gorm transaction: it row-locks the user, applies
// the signed delta, rejects a negative result, and appends the paired
// Transaction entry. Nothing else writes User.Balance.
type LedgerService interface {
	Apply(dbTx *gorm.DB, userID string, delta Money, txType TransactionType, gameID *string, description string) (*Transaction, error)
}

// LedgerUseCase defines the interface for money-movement business logic
type LedgerUseCase interface {
	LedgerService
	Withdraw(userID string, amount Money, idempotencyKey string) (*WithdrawResult, error)
	HandlePaymentEvent(event PaymentEvent) error
	History(userID string, limit, offset int) ([]*Transaction, error)
}

// ProcessedWebhook is the idempotency record for payment events. Its
// primary key makes MarkProcessed a create-if-absent race with exactly
// one winner.
type ProcessedWebhook struct {
	ID          string    `json:"webhook_id" gorm:"primaryKey;column:id;type:varchar(64)"`
	ProcessedAt time.Time `json:"processed_at" gorm:"not null"`
}

// TableName specifies the table name for ProcessedWebhook
func (w ProcessedWebhook) TableName() string {
	return "processed_webhooks"
}

// ErrWebhookAlreadyProcessed signals the caller lost the create-if-absent race.
var ErrWebhookAlreadyProcessed = NewConflictError(ErrCodeAlreadyProcessed, "Webhook event already processed")

// WebhookRepository defines the create-if-absent idempotency primitive.
type WebhookRepository interface {
	// MarkProcessed atomically records the id; returns
	// ErrWebhookAlreadyProcessed if it already exists.
	MarkProcessed(webhookID string) error
	WithTransaction(tx *gorm.DB) WebhookRepository
}
