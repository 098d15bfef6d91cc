package ledger

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/domain/mocks"
	"github.com/saradorri/gameplatform/internal/infrastructure/lock"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newSQLMockDB opens a gorm connection over sqlmock so the manual
// Begin/Commit/Rollback paths run against expectations.
func newSQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func newTestUseCase(t *testing.T) (*LedgerUseCase, *mocks.MockTransactionRepository, *mocks.MockPayoutRail, *mocks.MockOutboxRepository, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockWebhookRepo := mocks.NewMockWebhookRepository(ctrl)
	mockOutboxRepo := mocks.NewMockOutboxRepository(ctrl)
	mockRail := mocks.NewMockPayoutRail(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	uc := &LedgerUseCase{
		transactionRepo: mockTxRepo,
		userRepo:        mockUserRepo,
		webhookRepo:     mockWebhookRepo,
		outboxRepo:      mockOutboxRepo,
		payoutRail:      mockRail,
		notifier:        mockNotifier,
		lockManager:     lock.NewKeyedLockManager(zap.NewNop()),
		db:              nil,
		logger:          logger.NewNop(),
	}
	return uc, mockTxRepo, mockRail, mockOutboxRepo, mockNotifier
}

func TestValidateWithdrawInput(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase(t)

	tests := []struct {
		name     string
		amount   domain.Money
		key      string
		wantCode string
	}{
		{"missing key", 1000, "", domain.ErrCodeRequiredField},
		{"zero amount", 0, "k1", domain.ErrCodeInvalidAmount},
		{"negative amount", -100, "k1", domain.ErrCodeInvalidAmount},
		{"below minimum", domain.MinWithdrawal - 1, "k1", domain.ErrCodeBelowMinimum},
		{"at minimum", domain.MinWithdrawal, "k1", ""},
		{"above minimum", 10_000, "k1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.validateWithdrawInput(tt.amount, tt.key)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestSendToRailSuccessSkipsOutbox(t *testing.T) {
	uc, _, mockRail, _, _ := newTestUseCase(t)

	mockRail.EXPECT().
		Send(domain.PayoutRequest{UserID: "u1", Amount: "50.00", Reference: "tx-1"}).
		Return(domain.PayoutResponse{TransferID: "tr-1", Status: "ok"}, nil)

	uc.sendToRail("u1", domain.Money(5000), "tx-1")
}

func TestSendToRailFailureQueuesRetry(t *testing.T) {
	uc, _, mockRail, mockOutbox, _ := newTestUseCase(t)

	mockRail.EXPECT().
		Send(gomock.Any()).
		Return(domain.PayoutResponse{}, &domain.PayoutRailError{StatusCode: 502, Message: "bad gateway"})

	mockOutbox.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(event *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventTypePayoutRetry, event.Type)
			assert.Equal(t, domain.EventStatusPending, event.Status)
			assert.Equal(t, "u1", event.Data["user_id"])
			assert.Equal(t, "50.00", event.Data["amount"])
			return nil
		})

	uc.sendToRail("u1", domain.Money(5000), "tx-1")
}

func TestHandlePaymentEventValidation(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase(t)

	err := uc.HandlePaymentEvent(domain.PaymentEvent{UserID: "u1", Amount: 100})
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)

	err = uc.HandlePaymentEvent(domain.PaymentEvent{EventID: "e1", Amount: 100})
	appErr, ok = domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeRequiredField, appErr.Code)

	err = uc.HandlePaymentEvent(domain.PaymentEvent{EventID: "e1", UserID: "u1", Amount: 0})
	appErr, ok = domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidAmount, appErr.Code)
}

func newTestTxUseCase(t *testing.T) (*LedgerUseCase, sqlmock.Sqlmock, *mocks.MockTransactionRepository, *mocks.MockUserRepository, *mocks.MockWebhookRepository, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, mock := newSQLMockDB(t)

	mockTxRepo := mocks.NewMockTransactionRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockWebhookRepo := mocks.NewMockWebhookRepository(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	uc := &LedgerUseCase{
		transactionRepo: mockTxRepo,
		userRepo:        mockUserRepo,
		webhookRepo:     mockWebhookRepo,
		outboxRepo:      mocks.NewMockOutboxRepository(ctrl),
		payoutRail:      mocks.NewMockPayoutRail(ctrl),
		notifier:        mockNotifier,
		lockManager:     lock.NewKeyedLockManager(zap.NewNop()),
		db:              db,
		logger:          logger.NewNop(),
	}
	return uc, mock, mockTxRepo, mockUserRepo, mockWebhookRepo, mockNotifier
}

func TestWithdrawIdempotencyKeyReplay(t *testing.T) {
	uc, mock, mockTxRepo, mockUserRepo, _, _ := newTestTxUseCase(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo)
	mockUserRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockUserRepo)
	mockTxRepo.EXPECT().
		GetByIdempotencyKey("key-1").
		Return(&domain.Transaction{ID: "tx-original", IdempotencyKey: strPtr("key-1")}, nil)

	_, err := uc.Withdraw("u1", domain.MinWithdrawal, "key-1")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeAlreadyProcessed, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandlePaymentEventDuplicateDelivery(t *testing.T) {
	uc, mock, _, _, mockWebhookRepo, _ := newTestTxUseCase(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	mockWebhookRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockWebhookRepo)
	mockWebhookRepo.EXPECT().MarkProcessed("evt-1").Return(domain.ErrWebhookAlreadyProcessed)

	// second delivery of the same event succeeds without crediting
	err := uc.HandlePaymentEvent(domain.PaymentEvent{EventID: "evt-1", UserID: "u1", Amount: domain.Money(2500)})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandlePaymentEventFirstDeliveryCredits(t *testing.T) {
	uc, mock, mockTxRepo, mockUserRepo, mockWebhookRepo, mockNotifier := newTestTxUseCase(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	mockWebhookRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockWebhookRepo)
	mockWebhookRepo.EXPECT().MarkProcessed("evt-2").Return(nil)

	mockTxRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockTxRepo).AnyTimes()
	mockUserRepo.EXPECT().WithTransaction(gomock.Any()).Return(mockUserRepo).AnyTimes()

	mockUserRepo.EXPECT().GetByIDForUpdate("u1").Return(&domain.User{ID: "u1", Balance: domain.Money(1000)}, nil)
	mockUserRepo.EXPECT().UpdateBalance("u1", domain.Money(3500)).Return(nil)
	mockTxRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tr *domain.Transaction) error {
		assert.Equal(t, domain.TransactionTypeDeposit, tr.Type)
		assert.Equal(t, domain.Money(2500), tr.Amount)
		assert.Equal(t, domain.Money(3500), tr.BalanceAfter)
		return nil
	})
	mockNotifier.EXPECT().Publish(gomock.Any())

	err := uc.HandlePaymentEvent(domain.PaymentEvent{EventID: "evt-2", UserID: "u1", Amount: domain.Money(2500)})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(s string) *string { return &s }

func TestHistoryDelegatesToRepository(t *testing.T) {
	uc, mockTxRepo, _, _, _ := newTestUseCase(t)

	rows := []*domain.Transaction{{ID: "t1"}, {ID: "t2"}}
	mockTxRepo.EXPECT().GetByUserID("u1", 20, 0).Return(rows, nil)

	got, err := uc.History("u1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
