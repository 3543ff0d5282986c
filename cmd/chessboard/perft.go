package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessboard/bench"
	"github.com/daystram/chessboard/board"
)

func perft(ctx context.Context, depth int, parallel bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, name)

	start := time.Now()
	branches, err := bench.Divide(ctx, board.NewBoard(), depth, parallel)
	if err != nil {
		return err
	}
	end := time.Now()

	var total bench.Counts
	for _, br := range branches {
		log.Printf("%s: %d\n", br.Move, br.Counts.Nodes)
		total.Add(br.Counts)
	}

	elapsed := end.Sub(start).Seconds()
	log.Println(message.NewPrinter(language.English).
		Sprintf("d=%d %s rate=%dn/s (%.3fs elapsed)", depth, total, int(float64(total.Nodes)/elapsed), elapsed))
	return nil
}
