package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", getenb("CHESSBOARD_PROFILE", false), "serve pprof endpoint")
	noColor = flag.Bool("nocolor", getenb("CHESSBOARD_NOCOLOR", false), "disable colored board output")

	movegenRun  = flag.Bool("movegen", getenb("CHESSBOARD_MOVEGEN", false), "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", getenb("CHESSBOARD_MOVEGEN_DRAW", false), "draw applied moves in movegen mode")

	stepRun   = flag.Bool("step", getenb("CHESSBOARD_STEP", false), "run step mode")
	stepPlies = flag.Int("step.plies", getenvInt("CHESSBOARD_STEP_PLIES", 500), "maximum plies in step mode")
	stepSeed  = flag.Int64("step.seed", int64(getenvInt("CHESSBOARD_STEP_SEED", 1)), "random seed in step mode")

	perftDepth    = flag.Int("perft", getenvInt("CHESSBOARD_PERFT", 0), "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", getenb("CHESSBOARD_PERFT_PARALLEL", true), "walk root moves in parallel in perft mode")

	playRun = flag.Bool("play", getenb("CHESSBOARD_PLAY", false), "run interactive play mode on stdin")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}
	if *noColor {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := realMain(ctx)
	stop()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(ctx context.Context) error {
	if *movegenRun {
		return movegen(*movegenDraw)
	}
	if *stepRun {
		return step(*stepPlies, *stepSeed)
	}
	if *perftDepth > 0 {
		return perft(ctx, *perftDepth, *perftParallel)
	}
	if *playRun {
		return play(os.Stdin, os.Stdout)
	}

	flag.Usage()
	return nil
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
