package engine

// IsCheckmate reports whether c is in check with no legal move. A side with
// no legal move that is not in check (stalemate) is not reported.
func IsCheckmate(b *Board, c Color) bool {
	if !IsInCheck(b, c) {
		return false
	}
	return !HasLegalMove(b, c)
}
