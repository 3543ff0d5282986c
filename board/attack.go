package board

import "github.com/daystram/chessboard/position"

type delta struct {
	file, rank int8
}

var (
	patternRook   = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	patternBishop = []delta{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	patternQueen  = append(append([]delta{}, patternRook...), patternBishop...)
	patternKnight = []delta{{1, 2}, {2, 1}, {-1, 2}, {2, -1}, {1, -2}, {-2, 1}, {-1, -2}, {-2, -1}}
	patternKing   = []delta{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// LookingAt returns the squares p attacks. Friendly-occupied squares are
// excluded, pawn pushes are not attacks, and king safety is ignored.
func (b *Board) LookingAt(p Piece) []position.Pos {
	switch p.Kind {
	case KindKing:
		return b.lookStep(p, patternKing)
	case KindKnight:
		return b.lookStep(p, patternKnight)
	case KindRook:
		return b.lookSlide(p, patternRook)
	case KindBishop:
		return b.lookSlide(p, patternBishop)
	case KindQueen:
		return b.lookSlide(p, patternQueen)
	case KindPawn:
		return b.lookPawn(p)
	default:
		return nil
	}
}

func (b *Board) lookStep(p Piece, pattern []delta) []position.Pos {
	var look []position.Pos
	for _, d := range pattern {
		to := p.Pos.Add(d.file, d.rank)
		if !to.Valid() {
			continue
		}
		if occupying, ok := b.pieces[to]; ok && occupying.Side == p.Side {
			continue
		}
		look = append(look, to)
	}
	return look
}

func (b *Board) lookSlide(p Piece, pattern []delta) []position.Pos {
	var look []position.Pos
	for _, d := range pattern {
		for to := p.Pos.Add(d.file, d.rank); to.Valid(); to = to.Add(d.file, d.rank) {
			if occupying, ok := b.pieces[to]; ok {
				if occupying.Side != p.Side {
					look = append(look, to)
				}
				break
			}
			look = append(look, to)
		}
	}
	return look
}

func (b *Board) lookPawn(p Piece) []position.Pos {
	var look []position.Pos
	forward := p.Side.Forward()
	for _, file := range []int8{1, -1} {
		to := p.Pos.Add(file, forward)
		if !to.Valid() {
			continue
		}
		if occupying, ok := b.pieces[to]; ok && occupying.Side != p.Side {
			look = append(look, to)
		}
	}
	return look
}

// IsChecked reports whether any opposing piece is looking at p's square.
// p need not be on the board.
func (b *Board) IsChecked(p Piece) bool {
	for _, checking := range b.pieces {
		if checking.Side == p.Side {
			continue
		}
		if contains(b.LookingAt(checking), p.Pos) {
			return true
		}
	}
	return false
}

func contains(squares []position.Pos, pos position.Pos) bool {
	for _, sq := range squares {
		if sq == pos {
			return true
		}
	}
	return false
}
