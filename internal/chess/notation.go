package chess

import "strings"

// notate renders a simplified algebraic form for the move log:
// piece letter (omitted for pawns), "x" on capture, destination square,
// "=Q" style promotion suffix, "+" for check and "#" for checkmate.
// Castling is "O-O" / "O-O-O". Disambiguation by origin square is not
// emitted; the move log keeps exact from/to columns alongside.
func notate(rec *MoveRecord) string {
	var sb strings.Builder

	if rec.IsCastling {
		if rec.To.File == 6 {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	} else {
		if rec.Piece.Type != Pawn {
			sb.WriteByte(byte(rec.Piece.Type))
		} else if rec.Captured != nil {
			sb.WriteByte(byte('a' + rec.From.File))
		}
		if rec.Captured != nil {
			sb.WriteByte('x')
		}
		sb.WriteString(rec.To.String())
		if rec.Promotion != 0 {
			sb.WriteByte('=')
			sb.WriteByte(byte(rec.Promotion))
		}
	}

	if rec.IsCheckmate {
		sb.WriteByte('#')
	} else if rec.IsCheck {
		sb.WriteByte('+')
	}
	return sb.String()
}
