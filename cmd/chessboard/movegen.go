package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/chessboard/bench"
	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/game"
)

func movegen(drawMoves bool) error {
	log.Println("============ movegen")
	b := board.NewBoard()
	fmt.Println("to move:", b.OnMove())
	fmt.Println(b.Dump())
	fmt.Println(draw(b))
	fmt.Println(game.NewSession(game.WithBoard(b.Clone())).Status())
	dumpMoves(b)

	if drawMoves {
		for _, mv := range bench.LegalMoves(b) {
			bb, err := bench.Apply(b, mv)
			if err != nil {
				return err
			}
			fmt.Println(mv)
			fmt.Println(draw(bb, mv.From, mv.To))
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := bench.LegalMoves(b)
	for i, mv := range mvs {
		p, _ := b.At(mv.From)
		_, capture := b.At(mv.To)
		fmt.Printf("option %*d: [%s] %s %s %s => %s (cap=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, p.Side, p.Kind, mv.From.Notation(), mv.To.Notation(), capture, mv.Promote)
	}
}
