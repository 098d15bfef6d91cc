package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Processor implements domain.OutboxProcessor. It re-drives payout
// credits that failed after their game reached a terminal state; the
// game itself is never touched.
type Processor struct {
	outboxRepo domain.OutboxRepository
	ledger     domain.LedgerService
	db         *gorm.DB
	logger     *logger.Logger
	maxRetries int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	outboxRepo domain.OutboxRepository,
	ledger domain.LedgerService,
	db *gorm.DB,
	logger *logger.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo: outboxRepo,
		ledger:     ledger,
		db:         db,
		logger:     logger,
		maxRetries: 5,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// ProcessEvents processes all pending events
func (p *Processor) ProcessEvents() error {
	if err := p.checkCancellation(); err != nil {
		return err
	}

	events, err := p.outboxRepo.GetPendingEvents(100)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	for _, event := range events {
		select {
		case <-p.ctx.Done():
			return fmt.Errorf("processor cancelled")
		default:
		}

		if err := p.ProcessEvent(event); err != nil {
			p.logger.Error("Failed to process event",
				zap.String("eventID", event.ID),
				zap.String("eventType", event.Type),
				zap.Error(err))

			if event.RetryCount < p.maxRetries {
				if retryErr := p.outboxRepo.IncrementRetryCount(event.ID); retryErr != nil {
					p.logger.Error("Failed to increment retry count", zap.Error(retryErr))
				}
			} else {
				if failErr := p.outboxRepo.MarkAsFailed(event.ID, err.Error()); failErr != nil {
					p.logger.Error("Failed to mark event as failed", zap.Error(failErr))
				}
			}
		}
	}

	return nil
}

// ProcessEvent processes a single outbox event
func (p *Processor) ProcessEvent(event *domain.OutboxEvent) error {
	p.logger.Info("Processing outbox event",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))

	if event.Type == domain.EventTypePayoutRetry {
		return p.handlePayoutRetry(event)
	}

	p.logger.Warn("Unknown event type",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))
	return fmt.Errorf("unknown event type: %s", event.Type)
}

// extractPayoutData pulls the credit instruction out of the event data
func (p *Processor) extractPayoutData(event *domain.OutboxEvent) (string, string, domain.Money, domain.TransactionType, error) {
	gameID, ok := event.Data["game_id"].(string)
	if !ok {
		return "", "", 0, "", fmt.Errorf("invalid game_id in event data")
	}

	userID, ok := event.Data["user_id"].(string)
	if !ok {
		return "", "", 0, "", fmt.Errorf("invalid user_id in event data")
	}

	amountStr, ok := event.Data["amount"].(string)
	if !ok {
		return "", "", 0, "", fmt.Errorf("invalid amount in event data")
	}
	amount, err := domain.ParseMoney(amountStr)
	if err != nil {
		return "", "", 0, "", fmt.Errorf("invalid amount in event data: %w", err)
	}

	txType, ok := event.Data["type"].(string)
	if !ok {
		return "", "", 0, "", fmt.Errorf("invalid type in event data")
	}

	return gameID, userID, amount, domain.TransactionType(txType), nil
}

// checkCancellation checks if the processor has been cancelled
func (p *Processor) checkCancellation() error {
	select {
	case <-p.ctx.Done():
		return fmt.Errorf("processor cancelled")
	default:
		return nil
	}
}

// handlePayoutRetry replays a failed settlement credit through the ledger
func (p *Processor) handlePayoutRetry(event *domain.OutboxEvent) error {
	if err := p.checkCancellation(); err != nil {
		return err
	}

	gameID, userID, amount, txType, err := p.extractPayoutData(event)
	if err != nil {
		return err
	}

	if amount.IsZero() {
		p.logger.Info("Payout retry amount is 0, nothing to credit",
			zap.String("eventID", event.ID),
			zap.String("gameID", gameID))
		return p.outboxRepo.MarkAsProcessed(event.ID)
	}

	tx := p.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to start transaction: %w", tx.Error)
	}

	if _, err := p.ledger.Apply(tx, userID, amount, txType, &gameID, "Settlement payout retry"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to replay payout credit: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to commit payout credit: %w", err)
	}

	p.logger.Info("Successfully replayed payout credit",
		zap.String("eventID", event.ID),
		zap.String("gameID", gameID),
		zap.String("userID", userID),
		zap.String("amount", amount.String()))

	return p.outboxRepo.MarkAsProcessed(event.ID)
}

// StartBackgroundProcessing starts the background processing loop
func (p *Processor) StartBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		p.logger.Warn("Outbox processor is already running")
		return
	}

	p.isRunning = true
	p.wg.Add(1)

	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		p.logger.Info("Outbox background processing started")

		for {
			select {
			case <-p.ctx.Done():
				p.logger.Info("Outbox background processing stopped")
				return
			case <-ticker.C:
				if err := p.ProcessEvents(); err != nil {
					p.logger.Error("Background processing failed", zap.Error(err))
				}
			}
		}
	}()
}

// StopBackgroundProcessing stops the background processing loop
func (p *Processor) StopBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		p.logger.Warn("Outbox processor is not running")
		return
	}

	p.logger.Info("Stopping outbox background processing...")
	p.cancel()
	p.wg.Wait()
	p.isRunning = false
	p.logger.Info("Outbox background processing stopped")
}
