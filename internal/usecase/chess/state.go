package chess

import (
	"errors"
	"strings"

	"github.com/saradorri/gameplatform/internal/chess"
	"github.com/saradorri/gameplatform/internal/domain"
)

// toEngine rebuilds an engine position from the persisted record.
func toEngine(s *domain.ChessGameState) (*chess.State, error) {
	board, err := chess.ParseBoard(s.Board)
	if err != nil {
		return nil, domain.NewInternalError("Stored board is corrupt", err)
	}

	turn := chess.White
	if s.CurrentTurn == domain.ChessBlack {
		turn = chess.Black
	}

	st := &chess.State{
		Board: board,
		Turn:  turn,
		Rights: chess.CastlingRights{
			WhiteKingside:  s.WhiteKingside,
			WhiteQueenside: s.WhiteQueenside,
			BlackKingside:  s.BlackKingside,
			BlackQueenside: s.BlackQueenside,
		},
		MoveCount: s.MoveCount,
	}
	if s.EnPassantTarget != nil {
		sq, err := chess.ParseSquare(*s.EnPassantTarget)
		if err != nil {
			return nil, domain.NewInternalError("Stored en-passant target is corrupt", err)
		}
		st.EnPassant = &sq
	}
	return st, nil
}

// writeBack copies the mutated engine position into the record.
func writeBack(s *domain.ChessGameState, st *chess.State, rec *chess.MoveRecord) {
	s.Board = st.Board.Serialize()
	s.CurrentTurn = domain.ChessWhite
	if st.Turn == chess.Black {
		s.CurrentTurn = domain.ChessBlack
	}
	s.WhiteKingside = st.Rights.WhiteKingside
	s.WhiteQueenside = st.Rights.WhiteQueenside
	s.BlackKingside = st.Rights.BlackKingside
	s.BlackQueenside = st.Rights.BlackQueenside
	s.MoveCount = st.MoveCount

	s.EnPassantTarget = nil
	if st.EnPassant != nil {
		t := st.EnPassant.String()
		s.EnPassantTarget = &t
	}

	if rec.Captured != nil {
		s.CapturedPieces += string(pieceChar(*rec.Captured))
	}

	switch rec.Status {
	case chess.StatusCheckmate:
		s.GameStatus = domain.ChessStatusCheckmate
	case chess.StatusStalemate:
		s.GameStatus = domain.ChessStatusStalemate
	}
}

// pieceChar is the log letter: uppercase white, lowercase black.
func pieceChar(p chess.Piece) byte {
	c := byte(p.Type)
	if p.Color == chess.Black {
		c += 'a' - 'A'
	}
	return c
}

// parsePromotion maps the request string to an engine piece type.
func parsePromotion(s string) (chess.PieceType, error) {
	switch strings.ToUpper(s) {
	case "":
		return 0, nil
	case "Q":
		return chess.Queen, nil
	case "R":
		return chess.Rook, nil
	case "B":
		return chess.Bishop, nil
	case "N":
		return chess.Knight, nil
	}
	return 0, domain.NewAppError(domain.ErrCodeInvalidMove, "Invalid promotion piece", 400, nil)
}

// mapEngineError converts engine rejections to API errors.
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, chess.ErrPromotionRequired):
		return domain.NewAppError(domain.ErrCodePromotionNeeded, "Pawn reaches last rank; promotion piece required", 400, err)
	case errors.Is(err, chess.ErrGameOver):
		return domain.NewConflictError(domain.ErrCodeGameNotRunning, "Match already decided")
	case errors.Is(err, chess.ErrNoPiece),
		errors.Is(err, chess.ErrWrongColor),
		errors.Is(err, chess.ErrOwnPieceOnTarget),
		errors.Is(err, chess.ErrIllegalShape),
		errors.Is(err, chess.ErrIllegalCastle),
		errors.Is(err, chess.ErrBadPromotion),
		errors.Is(err, chess.ErrSelfCheck):
		return domain.NewAppError(domain.ErrCodeInvalidMove, err.Error(), 400, err)
	}
	return domain.NewInternalError("Move application failed", err)
}
