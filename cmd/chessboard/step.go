package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/chessboard/bench"
	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/game"
)

func step(plies int, seed int64) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesPlay          []time.Duration
		timesStatus        []time.Duration
	)
	s := game.NewSession()
	r := rand.New(rand.NewSource(seed))
	for ply := 0; ply < plies; ply++ {
		b := s.Board()
		t1 := time.Now()
		mvs := bench.LegalMoves(b)
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: status=%s", s.Status())
		}
		mv := mvs[r.Intn(len(mvs))]
		side := b.OnMove()

		t1 = time.Now()
		if err := s.Play(mv.From, mv.To); err != nil {
			return err
		}
		if mv.Promote != board.KindUnknown {
			if err := s.Promote(mv.Promote); err != nil {
				return err
			}
		}
		t2 = time.Now()
		timesPlay = append(timesPlay, t2.Sub(t1))

		t1 = time.Now()
		st := s.Status()
		t2 = time.Now()
		timesStatus = append(timesStatus, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, side, mv)
		fmt.Println(draw(s.Board(), mv.From, mv.To))
		fmt.Println(s.Board().DebugString())
		if !st.IsRunning() {
			break
		}
	}

	fmt.Println()
	fmt.Println(s.Status())
	fmt.Println("genmv:", average(timesGenerateMoves))
	fmt.Println("play: ", average(timesPlay))
	fmt.Println("stat: ", average(timesStatus))
	return nil
}

func average(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var s time.Duration
	for _, d := range ds {
		s += d
	}
	return s / time.Duration(len(ds))
}
