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

func TestBuildPlayerRowsForfeitAndRanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	s := &Settlement{
		transactionRepo: transactionRepo,
		logger:          logger.NewNop(),
	}

	game := &domain.Game{
		ID:          "g1",
		GameType:    domain.GameTypeYahtzee,
		EntryFee:    domain.Money(1000),
		PrizeAmount: domain.Money(2250),
		MaxPlayers:  3,
	}

	// three players paid in; c forfeited so their roster row is gone
	transactionRepo.EXPECT().WithTransaction(gomock.Any()).Return(transactionRepo)
	transactionRepo.EXPECT().GetByGameID("g1").Return([]*domain.Transaction{
		{UserID: "a", Type: domain.TransactionTypeEntry, GameID: &game.ID},
		{UserID: "b", Type: domain.TransactionTypeEntry, GameID: &game.ID},
		{UserID: "c", Type: domain.TransactionTypeEntry, GameID: &game.ID},
	}, nil)

	roster := []*domain.GameParticipant{
		{GameID: "g1", UserID: "a"},
		{GameID: "g1", UserID: "b"},
	}
	winner := "b"
	scores := map[string]int{"a": 180, "b": 210}

	players, err := s.buildPlayerRows(nil, game, roster, &winner, scores)
	require.NoError(t, err)
	require.Len(t, players, 3)

	assert.Equal(t, "b", players[0].UserID)
	assert.Equal(t, 1, players[0].Rank)
	assert.Equal(t, domain.Money(1250), players[0].NetChange) // prize minus fee
	assert.False(t, players[0].Forfeited)

	assert.Equal(t, "a", players[1].UserID)
	assert.Equal(t, 2, players[1].Rank)
	assert.Equal(t, domain.Money(-1000), players[1].NetChange)

	assert.Equal(t, "c", players[2].UserID)
	assert.Equal(t, 3, players[2].Rank)
	assert.True(t, players[2].Forfeited)
	assert.Equal(t, domain.Money(-1000), players[2].NetChange)
}

func TestBuildPlayerRowsRefundedLeaverExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	s := &Settlement{
		transactionRepo: transactionRepo,
		logger:          logger.NewNop(),
	}

	game := &domain.Game{ID: "g2", EntryFee: domain.Money(500), PrizeAmount: domain.Money(750)}

	// b joined pre-start, left with a refund, so owes nothing and
	// appears nowhere in the snapshot
	transactionRepo.EXPECT().WithTransaction(gomock.Any()).Return(transactionRepo)
	transactionRepo.EXPECT().GetByGameID("g2").Return([]*domain.Transaction{
		{UserID: "a", Type: domain.TransactionTypeEntry},
		{UserID: "b", Type: domain.TransactionTypeEntry},
		{UserID: "b", Type: domain.TransactionTypeRefund},
		{UserID: "c", Type: domain.TransactionTypeEntry},
	}, nil)

	roster := []*domain.GameParticipant{
		{GameID: "g2", UserID: "a"},
		{GameID: "g2", UserID: "c"},
	}
	players, err := s.buildPlayerRows(nil, game, roster, nil, nil)
	require.NoError(t, err)
	require.Len(t, players, 2)
	for _, p := range players {
		assert.NotEqual(t, "b", p.UserID)
	}
}
