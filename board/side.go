package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the rank delta of a pawn advance.
func (s Side) Forward() int8 {
	if s == SideWhite {
		return 1
	}
	return -1
}

func (s Side) homeRank() int8 {
	if s == SideWhite {
		return 0
	}
	return Height - 1
}

func (s Side) pawnRank() int8 {
	if s == SideWhite {
		return 1
	}
	return Height - 2
}

// enPassantRank is the rank a pawn must stand on to capture en passant.
func (s Side) enPassantRank() int8 {
	if s == SideWhite {
		return 4
	}
	return 3
}
