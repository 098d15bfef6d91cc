package chess

import (
	"testing"

	"github.com/saradorri/gameplatform/internal/chess"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshState() *domain.ChessGameState {
	return &domain.ChessGameState{
		GameID:         "g1",
		Board:          chess.InitialBoard().Serialize(),
		WhitePlayerID:  "white",
		BlackPlayerID:  "black",
		CurrentTurn:    domain.ChessWhite,
		GameStatus:     domain.ChessStatusInProgress,
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

func TestEngineRoundTrip(t *testing.T) {
	record := freshState()

	engine, err := toEngine(record)
	require.NoError(t, err)
	assert.Equal(t, chess.White, engine.Turn)
	assert.Equal(t, chess.AllCastlingRights(), engine.Rights)
	assert.Nil(t, engine.EnPassant)

	// e2e4 opens the en-passant window; the record must carry it
	from, _ := chess.ParseSquare("e2")
	to, _ := chess.ParseSquare("e4")
	rec, err := engine.Apply(chess.MoveRequest{From: from, To: to})
	require.NoError(t, err)

	writeBack(record, engine, rec)
	assert.Equal(t, domain.ChessBlack, record.CurrentTurn)
	assert.Equal(t, 1, record.MoveCount)
	require.NotNil(t, record.EnPassantTarget)
	assert.Equal(t, "e3", *record.EnPassantTarget)
	assert.Empty(t, record.CapturedPieces)

	// and the stored position rebuilds into the same engine state
	again, err := toEngine(record)
	require.NoError(t, err)
	assert.Equal(t, engine.Board.Serialize(), again.Board.Serialize())
	assert.Equal(t, chess.Black, again.Turn)
	require.NotNil(t, again.EnPassant)
	assert.Equal(t, "e3", again.EnPassant.String())
}

func TestWriteBackRecordsCapture(t *testing.T) {
	record := freshState()
	engine, err := toEngine(record)
	require.NoError(t, err)

	moves := [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}}
	var rec *chess.MoveRecord
	for _, m := range moves {
		from, _ := chess.ParseSquare(m[0])
		to, _ := chess.ParseSquare(m[1])
		rec, err = engine.Apply(chess.MoveRequest{From: from, To: to})
		require.NoError(t, err)
		writeBack(record, engine, rec)
	}

	// white pawn took the black d-pawn
	assert.Equal(t, "p", record.CapturedPieces)
	assert.Equal(t, "exd5", rec.Notation)
}

func TestToEngineRejectsCorruptBoard(t *testing.T) {
	record := freshState()
	record.Board = "not a board"
	_, err := toEngine(record)
	assert.Error(t, err)
}

func TestParsePromotion(t *testing.T) {
	for input, want := range map[string]chess.PieceType{
		"": 0, "Q": chess.Queen, "q": chess.Queen,
		"R": chess.Rook, "B": chess.Bishop, "N": chess.Knight,
	} {
		got, err := parsePromotion(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parsePromotion("K")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidMove, appErr.Code)
}

func TestMapEngineError(t *testing.T) {
	tests := []struct {
		in       error
		wantCode string
	}{
		{chess.ErrPromotionRequired, domain.ErrCodePromotionNeeded},
		{chess.ErrGameOver, domain.ErrCodeGameNotRunning},
		{chess.ErrSelfCheck, domain.ErrCodeInvalidMove},
		{chess.ErrIllegalShape, domain.ErrCodeInvalidMove},
		{chess.ErrIllegalCastle, domain.ErrCodeInvalidMove},
	}
	for _, tt := range tests {
		appErr, ok := domain.IsAppError(mapEngineError(tt.in))
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.wantCode, appErr.Code, tt.in)
	}
}

func TestPlayerOnTurn(t *testing.T) {
	uc := &ChessUseCase{}
	record := freshState()
	assert.Equal(t, "white", uc.playerOnTurn(record))
	record.CurrentTurn = domain.ChessBlack
	assert.Equal(t, "black", uc.playerOnTurn(record))
}
