package position

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a (file, rank) pair. Intermediate values produced during move
// generation may fall off the board; check Valid before storing one.
type Pos struct {
	File int8
	Rank int8
}

func New(file, rank int8) Pos {
	return Pos{File: file, Rank: rank}
}

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return Pos{}, ErrInvalidNotation
	}
	file, err := notationToFile(n[0])
	if err != nil {
		return Pos{}, err
	}
	rank, err := notationToRank(n[1])
	if err != nil {
		return Pos{}, err
	}
	return Pos{File: file, Rank: rank}, nil
}

// Add returns p shifted by the given deltas. The result is not bounds-checked.
func (p Pos) Add(file, rank int8) Pos {
	return Pos{File: p.File + file, Rank: p.Rank + rank}
}

func (p Pos) Valid() bool {
	return 0 <= p.File && p.File < MaxComponentScalar && 0 <= p.Rank && p.Rank < MaxComponentScalar
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return NotationComponentFile(p.File) + NotationComponentRank(p.Rank)
}

func NotationComponentFile(file int8) string {
	if file < 0 || MaxComponentScalar <= file {
		return ""
	}
	return string(rune('a' + file))
}

func NotationComponentRank(rank int8) string {
	if rank < 0 || MaxComponentScalar <= rank {
		return ""
	}
	return string(rune('1' + rank))
}

func notationToFile(x byte) (int8, error) {
	if x < 'a' || x >= 'a'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return int8(x - 'a'), nil
}

func notationToRank(y byte) (int8, error) {
	if y < '1' || y >= '1'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return int8(y - '1'), nil
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Sign[T constraints.Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
