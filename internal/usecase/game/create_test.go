package game

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/domain/mocks"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGameUseCase(ctrl *gomock.Controller) (*GameUseCase, *mocks.MockGameRepository, *mocks.MockUserRepository, *mocks.MockNotifier) {
	gameRepo := mocks.NewMockGameRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	uc := &GameUseCase{
		gameRepo: gameRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger.NewNop(),
	}
	return uc, gameRepo, userRepo, notifier
}

func TestValidateGameParams(t *testing.T) {
	tests := []struct {
		name       string
		gameType   domain.GameType
		entryFee   domain.Money
		maxPlayers int
		wantCode   string
	}{
		{"valid yahtzee", domain.GameTypeYahtzee, 1000, 4, ""},
		{"valid chess", domain.GameTypeChess, 1000, 2, ""},
		{"yahtzee too few", domain.GameTypeYahtzee, 1000, 1, domain.ErrCodeInvalidRange},
		{"yahtzee too many", domain.GameTypeYahtzee, 1000, 5, domain.ErrCodeInvalidRange},
		{"chess not two", domain.GameTypeChess, 1000, 3, domain.ErrCodeInvalidRange},
		{"unknown type", domain.GameType("poker"), 1000, 2, domain.ErrCodeGameTypeMismatch},
		{"zero fee", domain.GameTypeChess, 0, 2, domain.ErrCodeInvalidAmount},
		{"negative fee", domain.GameTypeChess, -100, 2, domain.ErrCodeInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGameParams(tt.gameType, tt.entryFee, tt.maxPlayers)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestCreateGameComputesPrize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, gameRepo, userRepo, notifier := newTestGameUseCase(ctrl)

	userRepo.EXPECT().GetByID("u1").Return(&domain.User{ID: "u1"}, nil)
	var created *domain.Game
	gameRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *domain.Game) error {
		created = g
		return nil
	})
	notifier.EXPECT().Publish(gomock.Any())

	game, err := uc.CreateGame("u1", domain.GameTypeYahtzee, domain.Money(1000), 4)
	require.NoError(t, err)
	require.NotNil(t, created)

	// 4 x 10.00 pot at the 75% standalone rate
	assert.Equal(t, domain.Money(3000), game.PrizeAmount)
	assert.Equal(t, domain.Money(1000), game.Commission())
	assert.Equal(t, domain.GameStatusOpen, game.Status)
	assert.Equal(t, 0, game.CurrentPlayers)
}

func TestCreateGameUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, userRepo, _ := newTestGameUseCase(ctrl)

	userRepo.EXPECT().GetByID("ghost").Return(nil, nil)

	_, err := uc.CreateGame("ghost", domain.GameTypeChess, domain.Money(500), 2)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
}
