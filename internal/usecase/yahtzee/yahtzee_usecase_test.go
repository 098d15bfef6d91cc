package yahtzee

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/domain/mocks"
	"github.com/saradorri/gameplatform/internal/infrastructure/lock"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/saradorri/gameplatform/internal/yahtzee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testDeps struct {
	gameUC      *mocks.MockGameUseCase
	gameRepo    *mocks.MockGameRepository
	yahtzeeRepo *mocks.MockYahtzeeRepository
	settlement  *mocks.MockSettlementService
	notifier    *mocks.MockNotifier
	aiLock      *lock.KeyedLockManager
}

func newTestUseCase(ctrl *gomock.Controller) (*YahtzeeUseCase, *testDeps) {
	deps := &testDeps{
		gameUC:      mocks.NewMockGameUseCase(ctrl),
		gameRepo:    mocks.NewMockGameRepository(ctrl),
		yahtzeeRepo: mocks.NewMockYahtzeeRepository(ctrl),
		settlement:  mocks.NewMockSettlementService(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		aiLock:      lock.NewKeyedLockManager(zap.NewNop()),
	}
	uc := &YahtzeeUseCase{
		gameUC:      deps.gameUC,
		gameRepo:    deps.gameRepo,
		yahtzeeRepo: deps.yahtzeeRepo,
		settlement:  deps.settlement,
		notifier:    deps.notifier,
		aiLock:      deps.aiLock,
		roll:        yahtzee.NewRoller(),
		logger:      logger.NewNop(),
	}
	return uc, deps
}

func runningGame(id, onTurn string) *domain.Game {
	return &domain.Game{
		ID:                  id,
		GameType:            domain.GameTypeYahtzee,
		Status:              domain.GameStatusRunning,
		CurrentRound:        1,
		CurrentTurnPlayerID: &onTurn,
	}
}

func TestGuardTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, deps := newTestUseCase(ctrl)

	t.Run("wrong game type", func(t *testing.T) {
		deps.gameUC.EXPECT().EnsureInitialized("g1").Return(&domain.Game{
			ID: "g1", GameType: domain.GameTypeChess, Status: domain.GameStatusRunning,
		}, nil)
		_, err := uc.guardTurn("g1", "u1")
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeGameTypeMismatch, appErr.Code)
	})

	t.Run("not running", func(t *testing.T) {
		deps.gameUC.EXPECT().EnsureInitialized("g1").Return(&domain.Game{
			ID: "g1", GameType: domain.GameTypeYahtzee, Status: domain.GameStatusFilling,
		}, nil)
		_, err := uc.guardTurn("g1", "u1")
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeGameNotRunning, appErr.Code)
	})

	t.Run("not your turn", func(t *testing.T) {
		deps.gameUC.EXPECT().EnsureInitialized("g1").Return(runningGame("g1", "u2"), nil)
		_, err := uc.guardTurn("g1", "u1")
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotYourTurn, appErr.Code)
	})

	t.Run("on turn", func(t *testing.T) {
		deps.gameUC.EXPECT().EnsureInitialized("g1").Return(runningGame("g1", "u1"), nil)
		game, err := uc.guardTurn("g1", "u1")
		require.NoError(t, err)
		assert.Equal(t, "g1", game.ID)
	})
}

func TestHoldRejectsBadIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestUseCase(ctrl)

	for _, idx := range []int{-1, 5, 100} {
		_, err := uc.Hold("g1", "u1", idx, true)
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidRange, appErr.Code)
	}
}

func TestScoreCategoryRejectsUnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestUseCase(ctrl)

	_, err := uc.ScoreCategory("g1", "u1", domain.YahtzeeCategory("bogus"))
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCategory, appErr.Code)
}

func TestRunAITurnIgnoresHumans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestUseCase(ctrl)

	// no mock expectations: a human id must exit before any lookup
	uc.RunAITurn("g1", "human")
}

func TestRunAITurnDropsConcurrentTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, deps := newTestUseCase(ctrl)

	key := lock.AITurnKey("g1", "ai_bot")
	require.True(t, deps.aiLock.TryLock(key))
	defer deps.aiLock.Unlock(key)

	// lock held elsewhere: the trigger is dropped without touching the
	// game, so again no expectations are set
	uc.RunAITurn("g1", "ai_bot")
}
