package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustApply(t *testing.T, st *State, from, to string) *MoveRecord {
	t.Helper()
	f, err := ParseSquare(from)
	require.NoError(t, err)
	s, err := ParseSquare(to)
	require.NoError(t, err)
	rec, err := st.Apply(MoveRequest{From: f, To: s})
	require.NoError(t, err, "%s-%s", from, to)
	return rec
}

func place(t *testing.T, st *State, sq string, p Piece) {
	t.Helper()
	s, err := ParseSquare(sq)
	require.NoError(t, err)
	st.Board.set(s, p)
}

func TestBoardSerializeRoundTrip(t *testing.T) {
	b := InitialBoard()
	s := b.Serialize()
	require.Len(t, s, 64)
	assert.Equal(t, "rnbqkbnr", s[:8])
	assert.Equal(t, "RNBQKBNR", s[56:])

	parsed, err := ParseBoard(s)
	require.NoError(t, err)
	assert.Equal(t, *b, *parsed)
}

func TestParseBoardRejectsBadInput(t *testing.T) {
	_, err := ParseBoard("short")
	assert.Error(t, err)

	bad := InitialBoard().Serialize()
	_, err = ParseBoard("x" + bad[1:])
	assert.Error(t, err)
}

func TestApplyRejectsBasics(t *testing.T) {
	st := NewState()

	e4, _ := ParseSquare("e4")
	e5, _ := ParseSquare("e5")
	e2, _ := ParseSquare("e2")
	e7, _ := ParseSquare("e7")
	d1, _ := ParseSquare("d1")

	_, err := st.Apply(MoveRequest{From: e4, To: e5})
	assert.ErrorIs(t, err, ErrNoPiece)

	_, err = st.Apply(MoveRequest{From: e7, To: e5})
	assert.ErrorIs(t, err, ErrWrongColor)

	_, err = st.Apply(MoveRequest{From: e2, To: d1})
	assert.ErrorIs(t, err, ErrOwnPieceOnTarget)

	// knight geometry
	b1, _ := ParseSquare("b1")
	b3, _ := ParseSquare("b3")
	_, err = st.Apply(MoveRequest{From: b1, To: b3})
	assert.ErrorIs(t, err, ErrIllegalShape)

	// sliding piece blocked by own pawn
	a1, _ := ParseSquare("a1")
	a4, _ := ParseSquare("a4")
	_, err = st.Apply(MoveRequest{From: a1, To: a4})
	assert.ErrorIs(t, err, ErrIllegalShape)
}

func TestPawnDoubleStepOpensEnPassantWindow(t *testing.T) {
	st := NewState()
	mustApply(t, st, "e2", "e4")

	require.NotNil(t, st.EnPassant)
	assert.Equal(t, "e3", st.EnPassant.String())
	assert.Equal(t, Black, st.Turn)

	// window closes after the reply
	mustApply(t, st, "g8", "f6")
	assert.Nil(t, st.EnPassant)
}

func TestEnPassantCaptureRemovesPassedPawn(t *testing.T) {
	st := NewState()
	mustApply(t, st, "e2", "e4")
	mustApply(t, st, "a7", "a6")
	mustApply(t, st, "e4", "e5")
	mustApply(t, st, "d7", "d5")

	rec := mustApply(t, st, "e5", "d6")
	assert.True(t, rec.IsEnPassant)
	require.NotNil(t, rec.Captured)
	assert.Equal(t, Piece{Type: Pawn, Color: Black}, *rec.Captured)

	d5, _ := ParseSquare("d5")
	assert.True(t, st.Board.At(d5).Empty(), "passed pawn must be removed")
	assert.Equal(t, "exd6", rec.Notation)
}

func TestSelfCheckRejected(t *testing.T) {
	st := &State{Board: &Board{}, Turn: White}
	place(t, st, "e1", Piece{Type: King, Color: White})
	place(t, st, "e2", Piece{Type: Rook, Color: White})
	place(t, st, "e8", Piece{Type: Rook, Color: Black})
	place(t, st, "a8", Piece{Type: King, Color: Black})

	e2, _ := ParseSquare("e2")
	a2, _ := ParseSquare("a2")
	_, err := st.Apply(MoveRequest{From: e2, To: a2})
	assert.ErrorIs(t, err, ErrSelfCheck)

	// moving along the pin line is fine
	mustApply(t, st, "e2", "e5")
}

func TestCastlingKingside(t *testing.T) {
	st := NewState()
	mustApply(t, st, "g1", "f3")
	mustApply(t, st, "g7", "g6")
	mustApply(t, st, "e2", "e3")
	mustApply(t, st, "f8", "g7")
	mustApply(t, st, "f1", "e2")
	mustApply(t, st, "g8", "f6")

	rec := mustApply(t, st, "e1", "g1")
	assert.True(t, rec.IsCastling)
	assert.Equal(t, "O-O", rec.Notation)

	f1, _ := ParseSquare("f1")
	g1, _ := ParseSquare("g1")
	assert.Equal(t, Piece{Type: Rook, Color: White}, st.Board.At(f1))
	assert.Equal(t, Piece{Type: King, Color: White}, st.Board.At(g1))
	assert.False(t, st.Rights.WhiteKingside)
	assert.False(t, st.Rights.WhiteQueenside)
}

func TestCastlingRejectedThroughAttackedSquare(t *testing.T) {
	st := &State{Board: &Board{}, Turn: White, Rights: AllCastlingRights()}
	place(t, st, "e1", Piece{Type: King, Color: White})
	place(t, st, "h1", Piece{Type: Rook, Color: White})
	place(t, st, "a1", Piece{Type: Rook, Color: White})
	place(t, st, "e8", Piece{Type: King, Color: Black})
	place(t, st, "f8", Piece{Type: Rook, Color: Black}) // covers f1

	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")
	_, err := st.Apply(MoveRequest{From: e1, To: g1})
	assert.ErrorIs(t, err, ErrIllegalCastle)

	// queenside path is not covered
	c1, _ := ParseSquare("c1")
	rec, err := st.Apply(MoveRequest{From: e1, To: c1})
	require.NoError(t, err)
	assert.Equal(t, "O-O-O", rec.Notation)

	d1, _ := ParseSquare("d1")
	assert.Equal(t, Piece{Type: Rook, Color: White}, st.Board.At(d1))
}

func TestCastlingRightLostAfterRookMove(t *testing.T) {
	st := &State{Board: &Board{}, Turn: White, Rights: AllCastlingRights()}
	place(t, st, "e1", Piece{Type: King, Color: White})
	place(t, st, "h1", Piece{Type: Rook, Color: White})
	place(t, st, "e8", Piece{Type: King, Color: Black})
	place(t, st, "h8", Piece{Type: Rook, Color: Black})

	mustApply(t, st, "h1", "h2")
	assert.False(t, st.Rights.WhiteKingside)
	mustApply(t, st, "e8", "d8")
	mustApply(t, st, "h2", "h1")

	// the right does not come back
	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")
	st.Turn = White
	_, err := st.Apply(MoveRequest{From: e1, To: g1})
	assert.ErrorIs(t, err, ErrIllegalCastle)
}

func TestPromotionRequiredAndApplied(t *testing.T) {
	st := &State{Board: &Board{}, Turn: White}
	place(t, st, "a7", Piece{Type: Pawn, Color: White})
	place(t, st, "h1", Piece{Type: King, Color: White})
	place(t, st, "h8", Piece{Type: King, Color: Black})

	a7, _ := ParseSquare("a7")
	a8, _ := ParseSquare("a8")
	_, err := st.Apply(MoveRequest{From: a7, To: a8})
	assert.ErrorIs(t, err, ErrPromotionRequired)

	_, err = st.Apply(MoveRequest{From: a7, To: a8, Promotion: King})
	assert.ErrorIs(t, err, ErrBadPromotion)

	rec, err := st.Apply(MoveRequest{From: a7, To: a8, Promotion: Queen})
	require.NoError(t, err)
	assert.Equal(t, Piece{Type: Queen, Color: White}, st.Board.At(a8))
	assert.True(t, rec.IsCheck)
	assert.Equal(t, "a8=Q+", rec.Notation)
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	st := NewState()
	mustApply(t, st, "f2", "f3")
	mustApply(t, st, "e7", "e5")
	mustApply(t, st, "g2", "g4")

	rec := mustApply(t, st, "d8", "h4")
	assert.True(t, rec.IsCheck)
	assert.True(t, rec.IsCheckmate)
	assert.Equal(t, StatusCheckmate, rec.Status)
	assert.Equal(t, "Qh4#", rec.Notation)
}

func TestStalemateDetected(t *testing.T) {
	st := &State{Board: &Board{}, Turn: White}
	place(t, st, "a8", Piece{Type: King, Color: Black})
	place(t, st, "b6", Piece{Type: King, Color: White})
	place(t, st, "h7", Piece{Type: Queen, Color: White})

	rec := mustApply(t, st, "h7", "c7")
	assert.False(t, rec.IsCheck)
	assert.Equal(t, StatusStalemate, rec.Status)
	assert.Equal(t, "Qc7", rec.Notation)
}
