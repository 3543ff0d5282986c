package board

import "github.com/daystram/chessboard/position"

// MoveFilter decides whether moving piece to a square leaves its own king safe.
type MoveFilter interface {
	KeepsKingSafe(b *Board, piece Piece, to position.Pos) bool
}

// SimulationFilter plays every candidate on a cloned board and looks for a
// check against the mover's king. It panics if that king is missing.
type SimulationFilter struct{}

func (SimulationFilter) KeepsKingSafe(b *Board, piece Piece, to position.Pos) bool {
	bb := b.Clone()
	delete(bb.pieces, piece.Pos)
	piece.Pos = to
	bb.pieces[to] = piece
	return !bb.IsChecked(bb.mustKing(piece.Side))
}

// ValidMoves returns every legal destination of p in the current position.
// En passant captures are offered without the king safety filter.
func (b *Board) ValidMoves(p Piece) []position.Pos {
	candidates := b.LookingAt(p)
	if p.Kind == KindPawn {
		candidates = append(candidates, b.pawnPushes(p)...)
	}

	var mvs []position.Pos
	for _, to := range candidates {
		if b.filter.KeepsKingSafe(b, p, to) {
			mvs = append(mvs, to)
		}
	}

	if p.Kind == KindKing && !p.Moved && !b.IsChecked(p) {
		mvs = append(mvs, b.castlingMoves(p, mvs)...)
	}
	if p.Kind == KindPawn {
		mvs = append(mvs, b.enPassantMoves(p)...)
	}
	return mvs
}

func (b *Board) pawnPushes(p Piece) []position.Pos {
	var pushes []position.Pos
	forward := p.Side.Forward()
	one := p.Pos.Add(0, forward)
	if _, ok := b.pieces[one]; ok || !one.Valid() {
		return nil
	}
	pushes = append(pushes, one)
	two := one.Add(0, forward)
	if _, ok := b.pieces[two]; !ok && !p.Moved && two.Valid() {
		pushes = append(pushes, two)
	}
	return pushes
}

// castlingMoves requires the adjacent square to already be a legal king move,
// the square two away to be empty and unattacked, and the first piece found
// scanning past it to be an unmoved friendly rook.
func (b *Board) castlingMoves(king Piece, legal []position.Pos) []position.Pos {
	var mvs []position.Pos
	for _, direction := range []int8{-1, 1} {
		if !contains(legal, king.Pos.Add(direction, 0)) {
			continue
		}
		to := king.Pos.Add(direction*2, 0)
		if _, ok := b.pieces[to]; ok {
			continue
		}
		if b.IsChecked(NewPiece(KindKing, king.Side, to)) {
			continue
		}
		if rook, ok := b.firstOccupied(to, direction); ok &&
			rook.Kind == KindRook && rook.Side == king.Side && !rook.Moved {
			mvs = append(mvs, to)
		}
	}
	return mvs
}

// firstOccupied walks along the rank from (exclusive) from in direction.
func (b *Board) firstOccupied(from position.Pos, direction int8) (Piece, bool) {
	for pos := from.Add(direction, 0); pos.Valid(); pos = pos.Add(direction, 0) {
		if p, ok := b.pieces[pos]; ok {
			return p, true
		}
	}
	return Piece{}, false
}

func (b *Board) enPassantMoves(p Piece) []position.Pos {
	if b.enPassantFile == flagNoEnPassant || p.Pos.Rank != p.Side.enPassantRank() {
		return nil
	}
	var mvs []position.Pos
	for _, file := range []int8{-1, 1} {
		if p.Pos.File+file == b.enPassantFile {
			mvs = append(mvs, p.Pos.Add(file, p.Side.Forward()))
		}
	}
	return mvs
}

// HasMoves reports whether any piece of side s has a legal move.
func (b *Board) HasMoves(s Side) bool {
	for _, p := range b.pieces {
		if p.Side != s {
			continue
		}
		if len(b.ValidMoves(p)) != 0 {
			return true
		}
	}
	return false
}
