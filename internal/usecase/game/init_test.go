package game

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/domain/mocks"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newSQLMockDB opens a gorm connection over sqlmock so the self-heal
// transaction runs against Begin/Commit expectations.
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

func newSelfHealUseCase(t *testing.T) (*GameUseCase, sqlmock.Sqlmock, *mocks.MockGameRepository, *mocks.MockYahtzeeRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, mock := newSQLMockDB(t)
	gameRepo := mocks.NewMockGameRepository(ctrl)
	yahtzeeRepo := mocks.NewMockYahtzeeRepository(ctrl)

	uc := &GameUseCase{
		gameRepo:    gameRepo,
		yahtzeeRepo: yahtzeeRepo,
		chessRepo:   mocks.NewMockChessRepository(ctrl),
		db:          db,
		logger:      logger.NewNop(),
	}
	return uc, mock, gameRepo, yahtzeeRepo
}

func runningYahtzeeGame() *domain.Game {
	turn := "alice"
	return &domain.Game{
		ID:                  "g1",
		GameType:            domain.GameTypeYahtzee,
		Status:              domain.GameStatusRunning,
		CurrentRound:        1,
		CurrentTurnPlayerID: &turn,
	}
}

func TestEnsureInitializedNonRunningGamePassesThrough(t *testing.T) {
	uc, mock, gameRepo, _ := newSelfHealUseCase(t)

	open := &domain.Game{ID: "g1", GameType: domain.GameTypeYahtzee, Status: domain.GameStatusOpen}
	gameRepo.EXPECT().GetByID("g1").Return(open, nil)

	got, err := uc.EnsureInitialized("g1")
	require.NoError(t, err)
	assert.Equal(t, open, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureInitializedHealthyGameSkipsRepair(t *testing.T) {
	uc, mock, gameRepo, yahtzeeRepo := newSelfHealUseCase(t)

	game := runningYahtzeeGame()
	gameRepo.EXPECT().GetByID("g1").Return(game, nil)
	gameRepo.EXPECT().GetParticipants("g1").Return([]*domain.GameParticipant{
		{GameID: "g1", UserID: "alice"},
		{GameID: "g1", UserID: "bob"},
	}, nil)
	yahtzeeRepo.EXPECT().GetPlayerStates("g1").Return([]*domain.YahtzeePlayerState{
		{GameID: "g1", UserID: "alice"},
		{GameID: "g1", UserID: "bob"},
	}, nil)
	yahtzeeRepo.EXPECT().GetTurn("g1", "alice", 1).Return(&domain.YahtzeeTurn{}, nil)
	yahtzeeRepo.EXPECT().GetTurn("g1", "bob", 1).Return(&domain.YahtzeeTurn{}, nil)

	got, err := uc.EnsureInitialized("g1")
	require.NoError(t, err)
	assert.Equal(t, game, got)
	// no Begin was expected: a healthy game never opens a transaction
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureInitializedRecreatesMissingRecords(t *testing.T) {
	uc, mock, gameRepo, yahtzeeRepo := newSelfHealUseCase(t)

	game := runningYahtzeeGame()
	roster := []*domain.GameParticipant{
		{GameID: "g1", UserID: "alice"},
		{GameID: "g1", UserID: "bob"},
	}

	gameRepo.EXPECT().GetByID("g1").Return(game, nil)
	gameRepo.EXPECT().GetParticipants("g1").Return(roster, nil)
	// bob's state is missing: the fill-edge initialization was cut short
	yahtzeeRepo.EXPECT().GetPlayerStates("g1").Return([]*domain.YahtzeePlayerState{
		{GameID: "g1", UserID: "alice"},
	}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	gameRepo.EXPECT().WithTransaction(gomock.Any()).Return(gameRepo).AnyTimes()
	yahtzeeRepo.EXPECT().WithTransaction(gomock.Any()).Return(yahtzeeRepo).AnyTimes()

	gameRepo.EXPECT().GetByIDForUpdate("g1").Return(game, nil)
	gameRepo.EXPECT().GetParticipants("g1").Return(roster, nil)

	yahtzeeRepo.EXPECT().GetPlayerState("g1", "alice").Return(&domain.YahtzeePlayerState{GameID: "g1", UserID: "alice"}, nil)
	yahtzeeRepo.EXPECT().GetTurn("g1", "alice", 1).Return(&domain.YahtzeeTurn{}, nil)

	yahtzeeRepo.EXPECT().GetPlayerState("g1", "bob").Return(nil, nil)
	yahtzeeRepo.EXPECT().CreatePlayerState(gomock.Any()).DoAndReturn(func(s *domain.YahtzeePlayerState) error {
		assert.Equal(t, "g1", s.GameID)
		assert.Equal(t, "bob", s.UserID)
		assert.Equal(t, FreshScoreSheet(), s.Sheet)
		return nil
	})
	yahtzeeRepo.EXPECT().GetTurn("g1", "bob", 1).Return(nil, nil)
	yahtzeeRepo.EXPECT().CreateTurn(gomock.Any()).DoAndReturn(func(turn *domain.YahtzeeTurn) error {
		assert.Equal(t, "bob", turn.UserID)
		assert.Equal(t, 1, turn.Round)
		assert.Equal(t, 0, turn.RollCount)
		assert.False(t, turn.IsCompleted)
		return nil
	})

	gameRepo.EXPECT().Update(game).Return(nil)

	got, err := uc.EnsureInitialized("g1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.CurrentRound)
	require.NotNil(t, got.CurrentTurnPlayerID)
	assert.Equal(t, "alice", *got.CurrentTurnPlayerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
