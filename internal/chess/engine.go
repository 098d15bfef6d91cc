package chess

import (
	"errors"
)

// Validation failures. The match layer maps these onto its error codes.
var (
	ErrNoPiece           = errors.New("no piece on source square")
	ErrWrongColor        = errors.New("piece does not belong to mover")
	ErrOwnPieceOnTarget  = errors.New("destination occupied by own piece")
	ErrIllegalShape      = errors.New("piece cannot move that way")
	ErrIllegalCastle     = errors.New("castling not allowed")
	ErrPromotionRequired = errors.New("promotion piece required")
	ErrBadPromotion      = errors.New("invalid promotion piece")
	ErrSelfCheck         = errors.New("move leaves own king in check")
	ErrGameOver          = errors.New("game is not in progress")
)

// Status of a position after a move.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCheckmate  Status = "checkmate"
	StatusStalemate  Status = "stalemate"
)

// CastlingRights tracks the four permanent flags. A right, once
// revoked, is never re-granted.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the starting set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// State is a full position: board, side to move, castling rights,
// en-passant target and move counter.
type State struct {
	Board     *Board
	Turn      Color
	Rights    CastlingRights
	EnPassant *Square
	MoveCount int
	Captured  []Piece
}

// NewState returns the standard starting position with white to move.
func NewState() *State {
	return &State{
		Board:  InitialBoard(),
		Turn:   White,
		Rights: AllCastlingRights(),
	}
}

// MoveRequest is a proposed move.
type MoveRequest struct {
	From      Square
	To        Square
	Promotion PieceType // zero unless promoting
}

// MoveRecord describes an accepted move after application.
type MoveRecord struct {
	From        Square
	To          Square
	Piece       Piece
	Captured    *Piece
	IsCastling  bool
	IsEnPassant bool
	Promotion   PieceType
	IsCheck     bool
	IsCheckmate bool
	Notation    string
	Status      Status
}

// Apply validates the move against the full pipeline and, on success,
// mutates the state and returns the move record with the resulting
// status for the opponent.
func (st *State) Apply(req MoveRequest) (*MoveRecord, error) {
	mover := st.Board.At(req.From)
	if mover.Empty() {
		return nil, ErrNoPiece
	}
	if mover.Color != st.Turn {
		return nil, ErrWrongColor
	}
	dest := st.Board.At(req.To)
	if !dest.Empty() && dest.Color == mover.Color {
		return nil, ErrOwnPieceOnTarget
	}

	isCastling := mover.Type == King && abs(req.To.File-req.From.File) == 2 && req.To.Rank == req.From.Rank
	isEnPassant := mover.Type == Pawn && dest.Empty() &&
		abs(req.To.File-req.From.File) == 1 && st.EnPassant != nil && *st.EnPassant == req.To

	if isCastling {
		if err := st.validateCastling(req.From, req.To); err != nil {
			return nil, err
		}
	} else if !isEnPassant {
		if !st.Board.pieceMoveShape(req.From, req.To, mover) {
			return nil, ErrIllegalShape
		}
	}

	// promotion bookkeeping
	lastRank := 7
	if mover.Color == Black {
		lastRank = 0
	}
	promoting := mover.Type == Pawn && req.To.Rank == lastRank
	if promoting {
		switch req.Promotion {
		case Queen, Rook, Bishop, Knight:
		case 0:
			return nil, ErrPromotionRequired
		default:
			return nil, ErrBadPromotion
		}
	} else if req.Promotion != 0 {
		return nil, ErrBadPromotion
	}

	// simulate; the mover must not expose their own king
	next := st.clone()
	captured := next.execute(req, mover, isCastling, isEnPassant)
	if next.Board.inCheck(mover.Color) {
		return nil, ErrSelfCheck
	}

	// commit
	*st = *next

	rec := &MoveRecord{
		From:        req.From,
		To:          req.To,
		Piece:       mover,
		Captured:    captured,
		IsCastling:  isCastling,
		IsEnPassant: isEnPassant,
		Promotion:   req.Promotion,
		Status:      StatusInProgress,
	}

	opponent := mover.Color.Opponent()
	inCheck := st.Board.inCheck(opponent)
	hasReply := st.legalReplyExists(opponent)
	rec.IsCheck = inCheck
	switch {
	case inCheck && !hasReply:
		rec.IsCheckmate = true
		rec.Status = StatusCheckmate
	case !inCheck && !hasReply:
		rec.Status = StatusStalemate
	}

	rec.Notation = notate(rec)
	return rec, nil
}

// validateCastling enforces the castling-specific rules: the relevant
// right still held, empty squares between king and rook, king not in
// check and not crossing or landing on an attacked square.
func (st *State) validateCastling(from, to Square) error {
	c := st.Board.At(from).Color
	homeRank := 0
	if c == Black {
		homeRank = 7
	}
	if from.Rank != homeRank || from.File != 4 {
		return ErrIllegalCastle
	}

	kingside := to.File == 6
	if !kingside && to.File != 2 {
		return ErrIllegalCastle
	}

	switch {
	case c == White && kingside && !st.Rights.WhiteKingside,
		c == White && !kingside && !st.Rights.WhiteQueenside,
		c == Black && kingside && !st.Rights.BlackKingside,
		c == Black && !kingside && !st.Rights.BlackQueenside:
		return ErrIllegalCastle
	}

	rookFile := 0
	between := []int{1, 2, 3}
	if kingside {
		rookFile = 7
		between = []int{5, 6}
	}
	rook := st.Board.At(Square{File: rookFile, Rank: homeRank})
	if rook.Type != Rook || rook.Color != c {
		return ErrIllegalCastle
	}
	for _, f := range between {
		if !st.Board.At(Square{File: f, Rank: homeRank}).Empty() {
			return ErrIllegalCastle
		}
	}

	// king path: current, crossed, landing squares all safe
	step := 1
	if !kingside {
		step = -1
	}
	enemy := c.Opponent()
	for _, f := range []int{4, 4 + step, 4 + 2*step} {
		if st.Board.squareAttacked(Square{File: f, Rank: homeRank}, enemy) {
			return ErrIllegalCastle
		}
	}
	return nil
}

// execute applies an already shape-validated move to the state,
// returning the captured piece if any. Handles rook relocation for
// castling, the passed pawn for en passant, promotion substitution,
// rights revocation and the en-passant target window.
func (st *State) execute(req MoveRequest, mover Piece, isCastling, isEnPassant bool) *Piece {
	var captured *Piece

	if dest := st.Board.At(req.To); !dest.Empty() {
		d := dest
		captured = &d
		st.Captured = append(st.Captured, d)
	}

	st.Board.set(req.From, Piece{})
	placed := mover
	if req.Promotion != 0 {
		placed = Piece{Type: req.Promotion, Color: mover.Color}
	}
	st.Board.set(req.To, placed)

	if isCastling {
		homeRank := req.From.Rank
		if req.To.File == 6 {
			rook := st.Board.At(Square{File: 7, Rank: homeRank})
			st.Board.set(Square{File: 7, Rank: homeRank}, Piece{})
			st.Board.set(Square{File: 5, Rank: homeRank}, rook)
		} else {
			rook := st.Board.At(Square{File: 0, Rank: homeRank})
			st.Board.set(Square{File: 0, Rank: homeRank}, Piece{})
			st.Board.set(Square{File: 3, Rank: homeRank}, rook)
		}
	}

	if isEnPassant {
		passedRank := req.To.Rank - 1
		if mover.Color == Black {
			passedRank = req.To.Rank + 1
		}
		passed := Square{File: req.To.File, Rank: passedRank}
		p := st.Board.At(passed)
		if !p.Empty() {
			d := p
			captured = &d
			st.Captured = append(st.Captured, d)
		}
		st.Board.set(passed, Piece{})
	}

	st.revokeRights(req.From, req.To, mover)

	// en-passant window opens only right after a pawn double-step
	st.EnPassant = nil
	if mover.Type == Pawn && abs(req.To.Rank-req.From.Rank) == 2 {
		mid := Square{File: req.From.File, Rank: (req.From.Rank + req.To.Rank) / 2}
		st.EnPassant = &mid
	}

	st.Turn = mover.Color.Opponent()
	st.MoveCount++
	return captured
}

// revokeRights drops castling rights when a king or rook leaves its
// original square, or a rook is captured on one.
func (st *State) revokeRights(from, to Square, mover Piece) {
	if mover.Type == King {
		if mover.Color == White {
			st.Rights.WhiteKingside = false
			st.Rights.WhiteQueenside = false
		} else {
			st.Rights.BlackKingside = false
			st.Rights.BlackQueenside = false
		}
	}
	corners := []struct {
		sq    Square
		right *bool
	}{
		{Square{File: 0, Rank: 0}, &st.Rights.WhiteQueenside},
		{Square{File: 7, Rank: 0}, &st.Rights.WhiteKingside},
		{Square{File: 0, Rank: 7}, &st.Rights.BlackQueenside},
		{Square{File: 7, Rank: 7}, &st.Rights.BlackKingside},
	}
	for _, c := range corners {
		if from == c.sq || to == c.sq {
			*c.right = false
		}
	}
}

// legalReplyExists enumerates every piece of the side and every
// destination, discarding replies that leave that side's own king in
// check. Castling is omitted: whenever castling is legal, the plain
// one-square king move along its path is legal too.
func (st *State) legalReplyExists(side Color) bool {
	for fr := 0; fr < 8; fr++ {
		for ff := 0; ff < 8; ff++ {
			from := Square{File: ff, Rank: fr}
			p := st.Board.At(from)
			if p.Empty() || p.Color != side {
				continue
			}
			for tr := 0; tr < 8; tr++ {
				for tf := 0; tf < 8; tf++ {
					to := Square{File: tf, Rank: tr}
					if to == from {
						continue
					}
					if st.replyLegal(from, to, p) {
						return true
					}
				}
			}
		}
	}
	return false
}

// replyLegal checks one candidate reply without mutating the state.
func (st *State) replyLegal(from, to Square, p Piece) bool {
	dest := st.Board.At(to)
	if !dest.Empty() && dest.Color == p.Color {
		return false
	}
	isEnPassant := p.Type == Pawn && dest.Empty() &&
		abs(to.File-from.File) == 1 && st.EnPassant != nil && *st.EnPassant == to
	if !isEnPassant && !st.Board.pieceMoveShape(from, to, p) {
		return false
	}

	sim := st.clone()
	req := MoveRequest{From: from, To: to}
	lastRank := 7
	if p.Color == Black {
		lastRank = 0
	}
	if p.Type == Pawn && to.Rank == lastRank {
		req.Promotion = Queen // any piece answers the mate question
	}
	sim.execute(req, p, false, isEnPassant)
	return !sim.Board.inCheck(p.Color)
}

// clone deep-copies the state.
func (st *State) clone() *State {
	b := *st.Board
	next := &State{
		Board:     &b,
		Turn:      st.Turn,
		Rights:    st.Rights,
		MoveCount: st.MoveCount,
	}
	if st.EnPassant != nil {
		ep := *st.EnPassant
		next.EnPassant = &ep
	}
	next.Captured = append(next.Captured, st.Captured...)
	return next
}
