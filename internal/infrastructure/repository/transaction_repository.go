package repository

import (
	"errors"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"gorm.io/gorm"
)

// TransactionRepository implements domain.TransactionRepository
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *TransactionRepository) WithTransaction(tx *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: tx}
}

// Create creates a new ledger entry
func (r *TransactionRepository) Create(transaction *domain.Transaction) error {
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	return r.db.Create(transaction).Error
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(id string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	result := r.db.Where("id = ?", id).First(&transaction)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &transaction, nil
}

// GetByIdempotencyKey retrieves a transaction by its idempotency key
func (r *TransactionRepository) GetByIdempotencyKey(key string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	result := r.db.Where("idempotency_key = ?", key).First(&transaction)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &transaction, nil
}

// GetByUserID retrieves transactions for a user with pagination
func (r *TransactionRepository) GetByUserID(userID string, limit, offset int) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactions, nil
}

// GetByGameID retrieves every ledger entry tied to a game
func (r *TransactionRepository) GetByGameID(gameID string) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	result := r.db.Where("game_id = ?", gameID).
		Order("created_at ASC").
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactions, nil
}

// WebhookRepository implements domain.WebhookRepository
type WebhookRepository struct {
	db *gorm.DB
}

// NewWebhookRepository creates a new webhook repository
func NewWebhookRepository(db *gorm.DB) domain.WebhookRepository {
	return &WebhookRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *WebhookRepository) WithTransaction(tx *gorm.DB) domain.WebhookRepository {
	return &WebhookRepository{db: tx}
}

// MarkProcessed inserts the idempotency record; the primary key makes
// the insert a create-if-absent race with exactly one winner.
func (r *WebhookRepository) MarkProcessed(webhookID string) error {
	err := r.db.Create(&domain.ProcessedWebhook{
		ID:          webhookID,
		ProcessedAt: time.Now(),
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrWebhookAlreadyProcessed
		}
		return err
	}
	return nil
}
