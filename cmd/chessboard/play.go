package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/game"
	"github.com/daystram/chessboard/position"
)

var errQuit = errors.New("quit")

// play runs a two player game over the commands read from in:
//
//	e2e4 | e2 e4    move a piece
//	moves e2        highlight the legal moves of a piece
//	promote q       finish a promotion with q, r, b or n
//	reset           start over
//	quit            leave
func play(in io.Reader, out io.Writer) error {
	s := game.NewSession(game.WithLogger(func(v ...any) {
		fmt.Fprintln(out, v...)
	}))
	fmt.Fprintln(out, draw(s.Board()))
	prompt(out, s)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			prompt(out, s)
			continue
		}
		marked, err := command(s, line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintln(out, "error:", err)
		default:
			fmt.Fprintln(out, draw(s.Board(), marked...))
		}
		prompt(out, s)
	}
	return scanner.Err()
}

func prompt(out io.Writer, s *game.Session) {
	st := s.Status()
	switch st {
	case game.StatusPromotion:
		pos, _ := s.PromotionSquare()
		fmt.Fprintf(out, "promote on %s [q/r/b/n]> ", pos)
	case game.StatusCheckmate:
		fmt.Fprintf(out, "checkmate, %s wins [reset/quit]> ", s.Board().OnMove().Opposite())
	case game.StatusStalemate:
		fmt.Fprint(out, "stalemate [reset/quit]> ")
	case game.StatusUnknown:
		fmt.Fprint(out, "no king [reset/quit]> ")
	case game.StatusCheck:
		fmt.Fprintf(out, "%s to move, in check> ", s.Board().OnMove())
	default:
		fmt.Fprintf(out, "%s to move> ", s.Board().OnMove())
	}
}

// command applies one input line to s and returns the squares to highlight.
func command(s *game.Session, line string) ([]position.Pos, error) {
	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case "quit", "exit":
		return nil, errQuit
	case "reset":
		s.Reset()
		return nil, nil
	case "moves":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: moves <square>")
		}
		pos, err := position.NewPosFromNotation(fields[1])
		if err != nil {
			return nil, err
		}
		p, ok := s.Board().At(pos)
		if !ok {
			return nil, fmt.Errorf("%w: %s", game.ErrEmptySquare, pos)
		}
		return s.Board().ValidMoves(p), nil
	case "promote":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: promote q|r|b|n")
		}
		k, ok := board.ParseKind(fields[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", board.ErrInvalidPromotion, fields[1])
		}
		return nil, s.Promote(k)
	}

	from, to, err := parseMove(fields)
	if err != nil {
		return nil, err
	}
	if err := s.Play(from, to); err != nil {
		return nil, err
	}
	return []position.Pos{from, to}, nil
}

func parseMove(fields []string) (position.Pos, position.Pos, error) {
	var n string
	switch {
	case len(fields) == 1 && len(fields[0]) == 4:
		n = fields[0]
	case len(fields) == 2:
		n = fields[0] + fields[1]
	}
	if len(n) != 4 {
		return position.Pos{}, position.Pos{}, fmt.Errorf("unknown command: %q", strings.Join(fields, " "))
	}
	from, err := position.NewPosFromNotation(n[:2])
	if err != nil {
		return position.Pos{}, position.Pos{}, err
	}
	to, err := position.NewPosFromNotation(n[2:])
	if err != nil {
		return position.Pos{}, position.Pos{}, err
	}
	return from, to, nil
}
