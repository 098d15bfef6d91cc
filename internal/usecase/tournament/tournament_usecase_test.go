package tournament

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/domain/mocks"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(ctrl *gomock.Controller) (*TournamentUseCase, *mocks.MockTournamentRepository, *mocks.MockUserRepository, *mocks.MockGameUseCase) {
	tournamentRepo := mocks.NewMockTournamentRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	gameUC := mocks.NewMockGameUseCase(ctrl)
	uc := &TournamentUseCase{
		tournamentRepo: tournamentRepo,
		userRepo:       userRepo,
		gameUC:         gameUC,
		notifier:       mocks.NewMockNotifier(ctrl),
		logger:         logger.NewNop(),
	}
	return uc, tournamentRepo, userRepo, gameUC
}

func TestCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(ctrl)

	tests := []struct {
		name            string
		tournamentName  string
		gameType        domain.GameType
		entryFee        domain.Money
		maxParticipants int
		wantCode        string
	}{
		{"missing name", "", domain.GameTypeChess, 500, 2, domain.ErrCodeRequiredField},
		{"chess wrong size", "cup", domain.GameTypeChess, 500, 4, domain.ErrCodeInvalidRange},
		{"yahtzee too big", "cup", domain.GameTypeYahtzee, 500, 5, domain.ErrCodeInvalidRange},
		{"unknown type", "cup", domain.GameType("go"), 500, 2, domain.ErrCodeGameTypeMismatch},
		{"zero fee", "cup", domain.GameTypeChess, 0, 2, domain.ErrCodeInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create("host", tt.tournamentName, tt.gameType, tt.entryFee, tt.maxParticipants)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestCreateTournament(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, tournamentRepo, userRepo, _ := newTestUseCase(ctrl)

	userRepo.EXPECT().GetByID("host").Return(&domain.User{ID: "host"}, nil)
	var created *domain.Tournament
	tournamentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tr *domain.Tournament) error {
		created = tr
		return nil
	})

	got, err := uc.Create("host", "friday cup", domain.GameTypeYahtzee, domain.Money(1000), 4)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.TournamentStatusActive, got.Status)
	assert.Equal(t, 0, got.CurrentParticipants)
	assert.Equal(t, domain.Money(0), got.PotAmount)
	assert.Equal(t, "host", got.HostID)
}

func TestJoinUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, userRepo, _ := newTestUseCase(ctrl)

	userRepo.EXPECT().GetByID("ghost").Return(nil, nil)

	_, err := uc.Join("t1", "ghost")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
}

func TestParticipantKeyIsDeterministic(t *testing.T) {
	assert.Equal(t, "t1_u1", domain.TournamentParticipantKey("t1", "u1"))
	assert.Equal(t,
		domain.TournamentParticipantKey("t1", "u1"),
		domain.TournamentParticipantKey("t1", "u1"))
}
