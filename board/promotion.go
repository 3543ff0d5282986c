package board

import (
	"fmt"

	"github.com/daystram/chessboard/position"
)

// PromotionSquare finds a pawn standing on either back rank, rank 8 first.
func (b *Board) PromotionSquare() (position.Pos, bool) {
	for _, rank := range []int8{Height - 1, 0} {
		for file := int8(0); file < Width; file++ {
			pos := position.New(file, rank)
			if p, ok := b.pieces[pos]; ok && p.Kind == KindPawn {
				return pos, true
			}
		}
	}
	return position.Pos{}, false
}

// TakePromotion removes the pawn found by PromotionSquare and returns it. The
// caller is expected to follow up with Promote on the same square.
func (b *Board) TakePromotion() (Piece, bool) {
	pos, ok := b.PromotionSquare()
	if !ok {
		return Piece{}, false
	}
	return b.Remove(pos)
}

// Promote places a fresh, unmoved piece of kind k for side s on pos.
func (b *Board) Promote(pos position.Pos, s Side, k Kind) error {
	if !isPromotionCandidate(k) {
		return fmt.Errorf("%w: %s", ErrInvalidPromotion, k.Name())
	}
	if s != SideWhite && s != SideBlack {
		return fmt.Errorf("%w: unknown side", ErrInvalidPromotion)
	}
	if !pos.Valid() {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.File, pos.Rank)
	}
	if occupying, ok := b.pieces[pos]; ok {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, occupying)
	}
	b.pieces[pos] = NewPiece(k, s, pos)
	return nil
}

func isPromotionCandidate(k Kind) bool {
	for _, c := range PromotionCandidates {
		if c == k {
			return true
		}
	}
	return false
}
