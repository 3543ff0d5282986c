package board

import (
	"fmt"

	"github.com/daystram/chessboard/position"
)

// MovePiece commits a move the caller has already validated, typically one
// returned by ValidMoves. It relocates the rook on a castle, removes the pawn
// captured en passant and updates en passant eligibility. It panics if from
// is empty.
func (b *Board) MovePiece(from, to position.Pos) {
	p, ok := b.pieces[from]
	if !ok {
		panic(fmt.Errorf("%w: move from %s", ErrEmptySquare, from))
	}
	p.Moved = true
	p.Pos = to
	_, capture := b.pieces[to]
	b.pieces[to] = p
	delete(b.pieces, from)

	distance := to.File - from.File
	if p.Kind == KindKing && position.Abs(distance) > 1 {
		direction := position.Sign(distance)
		if rook, ok := b.firstOccupied(to, direction); ok {
			b.MovePiece(rook.Pos, from.Add(direction, 0))
		}
	}
	if p.Kind == KindPawn && !capture && from.File != to.File {
		delete(b.pieces, position.New(to.File, from.Rank))
	}

	b.enPassantFile = flagNoEnPassant
	if p.Kind == KindPawn && position.Abs(to.Rank-from.Rank) > 1 {
		b.enPassantFile = to.File
	}
}

// FlipOnMove hands the move to the other side and advances the turn counter.
func (b *Board) FlipOnMove() {
	b.turnNumber++
	b.onMove = b.onMove.Opposite()
}
