package chess

// pieceMoveShape checks the plain movement geometry of a piece from one
// square to another, including sliding-path blockage, ignoring castling
// and en passant (handled by the engine) and ignoring king safety.
func (b *Board) pieceMoveShape(from, to Square, mover Piece) bool {
	df := to.File - from.File
	dr := to.Rank - from.Rank

	switch mover.Type {
	case Knight:
		return (abs(df) == 1 && abs(dr) == 2) || (abs(df) == 2 && abs(dr) == 1)
	case Bishop:
		return abs(df) == abs(dr) && df != 0 && b.pathClear(from, to)
	case Rook:
		return (df == 0) != (dr == 0) && b.pathClear(from, to)
	case Queen:
		if df == 0 && dr == 0 {
			return false
		}
		if df == 0 || dr == 0 || abs(df) == abs(dr) {
			return b.pathClear(from, to)
		}
		return false
	case King:
		return abs(df) <= 1 && abs(dr) <= 1 && (df != 0 || dr != 0)
	case Pawn:
		return b.pawnMoveShape(from, to, mover.Color)
	}
	return false
}

// pawnMoveShape covers forward, double-forward and diagonal capture.
// Diagonal moves onto an empty square are rejected here; the engine
// admits them separately when they hit the en-passant target.
func (b *Board) pawnMoveShape(from, to Square, c Color) bool {
	dir := 1
	startRank := 1
	if c == Black {
		dir = -1
		startRank = 6
	}
	df := to.File - from.File
	dr := to.Rank - from.Rank
	dest := b.At(to)

	// straight push
	if df == 0 {
		if dr == dir && dest.Empty() {
			return true
		}
		if dr == 2*dir && from.Rank == startRank && dest.Empty() {
			mid := Square{File: from.File, Rank: from.Rank + dir}
			return b.At(mid).Empty()
		}
		return false
	}

	// diagonal capture
	if abs(df) == 1 && dr == dir {
		return !dest.Empty() && dest.Color != c
	}
	return false
}

// pathClear walks the squares strictly between from and to along a
// straight or diagonal line.
func (b *Board) pathClear(from, to Square) bool {
	stepF := sign(to.File - from.File)
	stepR := sign(to.Rank - from.Rank)
	cur := Square{File: from.File + stepF, Rank: from.Rank + stepR}
	for cur != to {
		if !b.At(cur).Empty() {
			return false
		}
		cur = Square{File: cur.File + stepF, Rank: cur.Rank + stepR}
	}
	return true
}

// squareAttacked reports whether any piece of the given color attacks
// the square. Pawn attacks differ from pawn moves, so they are handled
// explicitly; everything else reuses the shape rules.
func (b *Board) squareAttacked(target Square, by Color) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			from := Square{File: file, Rank: rank}
			p := b.At(from)
			if p.Empty() || p.Color != by || from == target {
				continue
			}
			if p.Type == Pawn {
				dir := 1
				if by == Black {
					dir = -1
				}
				if target.Rank-from.Rank == dir && abs(target.File-from.File) == 1 {
					return true
				}
				continue
			}
			if b.pieceMoveShape(from, target, p) {
				return true
			}
		}
	}
	return false
}

// inCheck reports whether the given side's king is attacked.
func (b *Board) inCheck(c Color) bool {
	king := b.findKing(c)
	if !king.Valid() {
		return false
	}
	return b.squareAttacked(king, c.Opponent())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
