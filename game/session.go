package game

import (
	"errors"
	"fmt"

	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/position"
)

var (
	ErrPromotionPending = errors.New("promotion pending")
	ErrNoPromotion      = errors.New("no promotion pending")
	ErrGameOver         = errors.New("game over")
	ErrEmptySquare      = errors.New("empty square")
	ErrNotOnMove        = errors.New("side not on move")
	ErrIllegalMove      = errors.New("illegal move")
)

// Session drives a Board through a game: it validates requested moves, commits
// them and holds the game until a promoted pawn is given its new kind.
type Session struct {
	board  *board.Board
	logger func(...any)

	promotion *pendingPromotion
}

type pendingPromotion struct {
	pos  position.Pos
	side board.Side
}

type sessionConfig struct {
	board  *board.Board
	logger func(...any)
}

type SessionOption func(*sessionConfig)

// WithBoard starts the session from b instead of the standard layout. The
// session takes ownership of b.
func WithBoard(b *board.Board) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.board = b
	}
}

// WithLogger receives a line for every committed move and promotion.
func WithLogger(logger func(...any)) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.logger = logger
	}
}

func NewSession(opts ...SessionOption) *Session {
	cfg := &sessionConfig{
		logger: func(...any) {},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.board == nil {
		cfg.board = board.NewBoard()
	}
	if cfg.logger == nil {
		cfg.logger = func(...any) {}
	}

	s := &Session{
		board:  cfg.board,
		logger: cfg.logger,
	}
	s.checkPromotion()
	return s
}

// Board returns the live board. Callers must not mutate it behind the session.
func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Play(from, to position.Pos) error {
	if s.promotion != nil {
		return fmt.Errorf("%w: on %s", ErrPromotionPending, s.promotion.pos)
	}
	switch st := s.Status(); {
	case st == StatusUnknown:
		return fmt.Errorf("%w: %s", board.ErrNoKing, s.board.OnMove())
	case st.IsOver():
		return fmt.Errorf("%w: %s", ErrGameOver, st)
	}

	p, ok := s.board.At(from)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if p.Side != s.board.OnMove() {
		return fmt.Errorf("%w: %s", ErrNotOnMove, p)
	}
	if !containsPos(s.board.ValidMoves(p), to) {
		return fmt.Errorf("%w: %s to %s", ErrIllegalMove, p, to)
	}

	s.board.MovePiece(from, to)
	s.board.FlipOnMove()
	s.logger(fmt.Sprintf("%d: %s %s%s", s.board.TurnNumber(), p.Side, from.Notation(), to.Notation()))
	s.checkPromotion()
	return nil
}

// Promote finishes a pending promotion by placing a new piece of kind k.
func (s *Session) Promote(k board.Kind) error {
	if s.promotion == nil {
		return ErrNoPromotion
	}
	if err := s.board.Promote(s.promotion.pos, s.promotion.side, k); err != nil {
		return err
	}
	s.logger(fmt.Sprintf("%s promoted to %s on %s", s.promotion.side, k.Name(), s.promotion.pos))
	s.promotion = nil
	s.checkPromotion()
	return nil
}

// PromotionSquare reports where a pawn is waiting for Promote.
func (s *Session) PromotionSquare() (position.Pos, bool) {
	if s.promotion == nil {
		return position.Pos{}, false
	}
	return s.promotion.pos, true
}

func (s *Session) Status() Status {
	if s.promotion != nil {
		return StatusPromotion
	}
	side := s.board.OnMove()
	king, ok := s.board.King(side)
	if !ok {
		return StatusUnknown
	}
	checked, movable := s.board.IsChecked(king), s.board.HasMoves(side)
	switch {
	case checked && !movable:
		return StatusCheckmate
	case !movable:
		return StatusStalemate
	case checked:
		return StatusCheck
	default:
		return StatusRunning
	}
}

// Reset discards the current game and starts over from the standard layout.
func (s *Session) Reset() {
	s.board = board.NewBoard()
	s.promotion = nil
	s.logger("session reset")
}

func (s *Session) checkPromotion() {
	pos, ok := s.board.PromotionSquare()
	if !ok {
		return
	}
	pawn, _ := s.board.TakePromotion()
	s.promotion = &pendingPromotion{pos: pos, side: pawn.Side}
}

func containsPos(squares []position.Pos, pos position.Pos) bool {
	for _, sq := range squares {
		if sq == pos {
			return true
		}
	}
	return false
}
