package main

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/sheikhrachel/glconway/utils"
)

func TestCheckStopConditions(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.MaxGenerations = 10
	cfg.StopOnStagnation = true
	cfg.StagnationThreshold = 3

	if done, _ := checkStopConditions(0, 9, cfg); done {
		t.Fatal("should keep running below the limit")
	}
	if done, reason := checkStopConditions(0, 10, cfg); !done || reason == "" {
		t.Fatal("should stop at the generation limit")
	}
	if done, _ := checkStopConditions(3, 1, cfg); !done {
		t.Fatal("should stop once stagnation reaches the threshold")
	}

	cfg.MaxGenerations = 0
	cfg.StopOnStagnation = false
	if done, _ := checkStopConditions(100, 1_000_000, cfg); done {
		t.Fatal("no limit and no stagnation stop should run forever")
	}
}

func TestGameStatus(t *testing.T) {
	if got := gameStatus(0, 4); got != "Extinct" {
		t.Fatalf("got %q, want Extinct", got)
	}
	if got := gameStatus(5, 2); got != "Stagnant (2)" {
		t.Fatalf("got %q, want Stagnant (2)", got)
	}
	if got := gameStatus(5, 0); got != "Active" {
		t.Fatalf("got %q, want Active", got)
	}
}

func TestAdvanceParallelMatchesSequential(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Pattern = utils.PatternRandom

	seq, _, _, err := initializeGame(cfg)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	cfg.UseParallel = true
	par, _, _, err := initializeGame(cfg)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	for i := 0; i < 4; i++ {
		if err = advance(context.Background(), seq, utils.DefaultConfig()); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if err = advance(context.Background(), par, cfg); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if !slices.Equal(seq.Cells(), par.Cells()) {
		t.Fatal("parallel and sequential runs diverged")
	}
}

func TestWaitFrame(t *testing.T) {
	if !waitFrame(context.Background(), time.Millisecond) {
		t.Fatal("waitFrame should return true after the delay")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if waitFrame(ctx, time.Hour) {
		t.Fatal("waitFrame should return false once ctx is done")
	}
	if waitFrame(ctx, 0) {
		t.Fatal("waitFrame with no delay should still report a done ctx")
	}
}
