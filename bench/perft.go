package bench

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/position"
)

// Counts tallies the leaves of a perft tree. Captures, EnPassants, Castles,
// Promotions and Checks describe the moves leading into the leaves.
type Counts struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (c *Counts) Add(o Counts) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassants += o.EnPassants
	c.Castles += o.Castles
	c.Promotions += o.Promotions
	c.Checks += o.Checks
}

func (c Counts) String() string {
	return message.NewPrinter(language.English).
		Sprintf("nodes=%d cap=%d enp=%d cas=%d pro=%d chk=%d",
			c.Nodes, c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks)
}

// Move is a committed step of the perft tree. Promote is set when a pawn
// reaches the last rank.
type Move struct {
	From, To position.Pos
	Promote  board.Kind
}

func (mv Move) String() string {
	s := mv.From.Notation() + mv.To.Notation()
	if mv.Promote != board.KindUnknown {
		s += mv.Promote.Symbol(board.SideBlack)
	}
	return s
}

// Branch is the subtree below one root move.
type Branch struct {
	Move   Move
	Counts Counts
}

// Perft counts the leaves depth plies below b. b is left untouched.
func Perft(ctx context.Context, b *board.Board, depth int, parallel bool) (Counts, error) {
	if depth <= 0 {
		return Counts{Nodes: 1}, nil
	}
	branches, err := Divide(ctx, b, depth, parallel)
	if err != nil {
		return Counts{}, err
	}
	var total Counts
	for _, br := range branches {
		total.Add(br.Counts)
	}
	return total, nil
}

// Divide splits Perft by root move, in piece order. With parallel set every
// root move is walked on its own goroutine.
func Divide(ctx context.Context, b *board.Board, depth int, parallel bool) ([]Branch, error) {
	if depth <= 0 {
		return nil, nil
	}
	mvs := LegalMoves(b)
	branches := make([]Branch, len(mvs))
	for i, mv := range mvs {
		branches[i].Move = mv
	}

	if !parallel {
		for i := range branches {
			c, err := walk(ctx, b, branches[i].Move, depth)
			if err != nil {
				return nil, err
			}
			branches[i].Counts = c
		}
		return branches, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range branches {
		i := i
		bb := b.Clone()
		g.Go(func() error {
			c, err := walk(ctx, bb, branches[i].Move, depth)
			if err != nil {
				return err
			}
			branches[i].Counts = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return branches, nil
}

// walk counts the subtree of mv, which is made with depth plies remaining.
func walk(ctx context.Context, b *board.Board, mv Move, depth int) (Counts, error) {
	if err := ctx.Err(); err != nil {
		return Counts{}, err
	}
	bb, err := Apply(b, mv)
	if err != nil {
		return Counts{}, err
	}
	if depth == 1 {
		return leaf(b, bb, mv), nil
	}

	var sum Counts
	for _, child := range LegalMoves(bb) {
		c, err := walk(ctx, bb, child, depth-1)
		if err != nil {
			return Counts{}, err
		}
		sum.Add(c)
	}
	return sum, nil
}

// leaf describes mv, played on before and resulting in after.
func leaf(before, after *board.Board, mv Move) Counts {
	c := Counts{Nodes: 1}
	p, _ := before.At(mv.From)
	_, occupied := before.At(mv.To)
	switch {
	case occupied:
		c.Captures++
	case p.Kind == board.KindPawn && mv.From.File != mv.To.File:
		c.Captures++
		c.EnPassants++
	}
	if p.Kind == board.KindKing && position.Abs(mv.To.File-mv.From.File) > 1 {
		c.Castles++
	}
	if mv.Promote != board.KindUnknown {
		c.Promotions++
	}
	if king, ok := after.King(after.OnMove()); ok && after.IsChecked(king) {
		c.Checks++
	}
	return c
}

// LegalMoves lists every move of the side on move. A pawn reaching the last
// rank yields one move per promotion candidate. En passant captures that leave
// the mover's king attacked are dropped, and a side without a king has no
// moves.
func LegalMoves(b *board.Board) []Move {
	if _, ok := b.King(b.OnMove()); !ok {
		return nil
	}
	var mvs []Move
	for _, p := range b.Pieces() {
		if p.Side != b.OnMove() {
			continue
		}
		for _, to := range b.ValidMoves(p) {
			if p.Kind == board.KindPawn && (to.Rank == 0 || to.Rank == board.Height-1) {
				for _, k := range board.PromotionCandidates {
					mvs = append(mvs, Move{From: p.Pos, To: to, Promote: k})
				}
				continue
			}
			mv := Move{From: p.Pos, To: to}
			if isEnPassant(b, p, to) && exposesKing(b, mv) {
				continue
			}
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

func isEnPassant(b *board.Board, p board.Piece, to position.Pos) bool {
	_, occupied := b.At(to)
	return p.Kind == board.KindPawn && p.Pos.File != to.File && !occupied
}

func exposesKing(b *board.Board, mv Move) bool {
	side := b.OnMove()
	bb := b.Clone()
	bb.MovePiece(mv.From, mv.To)
	king, ok := bb.King(side)
	return !ok || bb.IsChecked(king)
}

// Apply plays mv on a copy of b and hands the move to the other side.
func Apply(b *board.Board, mv Move) (*board.Board, error) {
	bb := b.Clone()
	p, _ := bb.At(mv.From)
	bb.MovePiece(mv.From, mv.To)
	if mv.Promote != board.KindUnknown {
		bb.Remove(mv.To)
		if err := bb.Promote(mv.To, p.Side, mv.Promote); err != nil {
			return nil, err
		}
	}
	bb.FlipOnMove()
	return bb, nil
}
