package board

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/daystram/chessboard/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = int(Width) * int(Height)

	flagNoEnPassant int8 = -1
)

var (
	ErrNoKing           = errors.New("no king")
	ErrEmptySquare      = errors.New("empty square")
	ErrSquareOccupied   = errors.New("square occupied")
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrInvalidPromotion = errors.New("invalid promotion")

	backRank = [Width]Kind{KindRook, KindKnight, KindBishop, KindKing, KindQueen, KindBishop, KindKnight, KindRook}
)

// Board is the authoritative game state. It is not safe for concurrent use;
// Clone it to hand a copy to another goroutine.
type Board struct {
	pieces map[position.Pos]Piece

	onMove        Side
	turnNumber    uint32
	enPassantFile int8

	filter MoveFilter
}

type boardConfig struct {
	pieces        []Piece
	custom        bool
	onMove        Side
	enPassantFile int8
	filter        MoveFilter
}

type BoardOption func(*boardConfig)

// WithPieces replaces the standard layout. Pieces keep their Moved flag;
// off-board pieces are dropped and later pieces win a shared square.
func WithPieces(pieces ...Piece) BoardOption {
	return func(cfg *boardConfig) {
		cfg.pieces = append(cfg.pieces, pieces...)
		cfg.custom = true
	}
}

func WithOnMove(s Side) BoardOption {
	return func(cfg *boardConfig) {
		cfg.onMove = s
	}
}

// WithEnPassantFile marks file as having just been double-stepped over.
func WithEnPassantFile(file int8) BoardOption {
	return func(cfg *boardConfig) {
		if 0 <= file && file < Width {
			cfg.enPassantFile = file
		}
	}
}

func WithMoveFilter(f MoveFilter) BoardOption {
	return func(cfg *boardConfig) {
		cfg.filter = f
	}
}

func NewBoard(opts ...BoardOption) *Board {
	cfg := &boardConfig{
		onMove:        SideWhite,
		enPassantFile: flagNoEnPassant,
		filter:        SimulationFilter{},
	}
	for _, f := range opts {
		f(cfg)
	}
	if !cfg.custom {
		cfg.pieces = startingPieces()
	}
	if cfg.filter == nil {
		cfg.filter = SimulationFilter{}
	}

	b := &Board{
		pieces:        make(map[position.Pos]Piece, len(cfg.pieces)),
		onMove:        cfg.onMove,
		enPassantFile: cfg.enPassantFile,
		filter:        cfg.filter,
	}
	for _, p := range cfg.pieces {
		if p.Pos.Valid() {
			b.pieces[p.Pos] = p
		}
	}
	return b
}

func startingPieces() []Piece {
	pieces := make([]Piece, 0, 4*Width)
	for _, s := range []Side{SideWhite, SideBlack} {
		for file, k := range backRank {
			pieces = append(pieces, NewPiece(k, s, position.New(int8(file), s.homeRank())))
		}
		for file := int8(0); file < Width; file++ {
			pieces = append(pieces, NewPiece(KindPawn, s, position.New(file, s.pawnRank())))
		}
	}
	return pieces
}

func (b *Board) OnMove() Side {
	return b.onMove
}

func (b *Board) TurnNumber() uint32 {
	return b.turnNumber
}

// EnPassantFile reports the file of a pawn that double-stepped on the last move.
func (b *Board) EnPassantFile() (int8, bool) {
	if b.enPassantFile == flagNoEnPassant {
		return 0, false
	}
	return b.enPassantFile, true
}

func (b *Board) At(pos position.Pos) (Piece, bool) {
	p, ok := b.pieces[pos]
	return p, ok
}

func (b *Board) Len() int {
	return len(b.pieces)
}

// Pieces returns a snapshot ordered by rank, then file.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		pieces = append(pieces, p)
	}
	sort.Slice(pieces, func(i, j int) bool {
		if pieces[i].Pos.Rank != pieces[j].Pos.Rank {
			return pieces[i].Pos.Rank < pieces[j].Pos.Rank
		}
		return pieces[i].Pos.File < pieces[j].Pos.File
	})
	return pieces
}

// Place puts p on p.Pos, replacing any occupant. Off-board pieces are ignored.
func (b *Board) Place(p Piece) {
	if !p.Pos.Valid() {
		return
	}
	b.pieces[p.Pos] = p
}

func (b *Board) Remove(pos position.Pos) (Piece, bool) {
	p, ok := b.pieces[pos]
	if ok {
		delete(b.pieces, pos)
	}
	return p, ok
}

// King returns the king of side s. With more than one, any of them may be returned.
func (b *Board) King(s Side) (Piece, bool) {
	for _, p := range b.pieces {
		if p.Kind == KindKing && p.Side == s {
			return p, true
		}
	}
	return Piece{}, false
}

func (b *Board) mustKing(s Side) Piece {
	k, ok := b.King(s)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNoKing, s))
	}
	return k
}

func (b *Board) Clone() *Board {
	pieces := make(map[position.Pos]Piece, len(b.pieces))
	for pos, p := range b.pieces {
		pieces[pos] = p
	}
	return &Board{
		pieces:        pieces,
		onMove:        b.onMove,
		turnNumber:    b.turnNumber,
		enPassantFile: b.enPassantFile,
		filter:        b.filter,
	}
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := int8(0); x < Width; x++ {
			sym := " "
			if p, ok := b.pieces[position.New(x, y)]; ok {
				sym = p.Kind.Symbol(p.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := int8(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentFile(x)))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	enp := "-"
	if file, ok := b.EnPassantFile(); ok {
		enp = position.NotationComponentFile(file)
	}
	return fmt.Sprintf("turn: %4d\nmove: %s\nenp:  %s\npcs:  %4d", b.turnNumber, b.onMove, enp, len(b.pieces))
}
