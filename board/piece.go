package board

import (
	"fmt"

	"github.com/daystram/chessboard/position"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindRook
	KindKnight
	KindBishop
	KindKing
	KindQueen
)

// PromotionCandidates represents the kinds a pawn may be promoted to.
var PromotionCandidates = []Kind{KindQueen, KindRook, KindBishop, KindKnight}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindRook:
		return "Rook"
	case KindKnight:
		return "Knight"
	case KindBishop:
		return "Bishop"
	case KindKing:
		return "King"
	case KindQueen:
		return "Queen"
	default:
		return ""
	}
}

// ParseKind accepts the single letter symbol of a kind, in either case.
func ParseKind(sym string) (Kind, bool) {
	if len(sym) != 1 {
		return KindUnknown, false
	}
	switch sym[0] | 0x20 {
	case 'p':
		return KindPawn, true
	case 'r':
		return KindRook, true
	case 'n':
		return KindKnight, true
	case 'b':
		return KindBishop, true
	case 'k':
		return KindKing, true
	case 'q':
		return KindQueen, true
	default:
		return KindUnknown, false
	}
}

func (k Kind) Symbol(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindRook:
		sym = 'R'
	case KindKnight:
		sym = 'N'
	case KindBishop:
		sym = 'B'
	case KindKing:
		sym = 'K'
	case KindQueen:
		sym = 'Q'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindRook:
			return "♖"
		case KindKnight:
			return "♘"
		case KindBishop:
			return "♗"
		case KindKing:
			return "♔"
		case KindQueen:
			return "♕"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindRook:
			return "♜"
		case KindKnight:
			return "♞"
		case KindBishop:
			return "♝"
		case KindKing:
			return "♚"
		case KindQueen:
			return "♛"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Piece is a value; the copy held by a Board always has Pos equal to its square.
type Piece struct {
	Kind  Kind
	Side  Side
	Pos   position.Pos
	Moved bool
}

func NewPiece(k Kind, s Side, pos position.Pos) Piece {
	return Piece{Kind: k, Side: s, Pos: pos}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Side, p.Kind, p.Pos)
}
