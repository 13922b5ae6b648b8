package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/glconway/model"
	"github.com/sheikhrachel/glconway/utils"
)

func main() {
	config, err := utils.FromArgs("glconway", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}

	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer grid.Destroy()
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		history       = model.NewHistory(0)
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for generation := 0; ; generation++ {
		frameStart := time.Now()
		if config.ClearScreen {
			if err = renderer.Clear(); err != nil {
				log.Printf("%v", err)
				config.ClearScreen = false
			}
		}

		population := grid.Population()
		stats.Update(generation, population, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		// Update history for stagnation detection
		hash := grid.Hash()
		if history.Stagnant(hash) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		history.Record(hash)

		displayGameStatus(generation, population, gameStatus(population, stagnantCount), grid, stats)
		if err = renderer.Display(grid); err != nil {
			log.Fatalf("%+v", err)
		}
		fmt.Println()

		if done, reason := checkStopConditions(stagnantCount, generation, config); done {
			fmt.Printf("🏁 Stopping: %s\n", reason)
			return
		}

		if err = advance(ctx, grid, config); err != nil {
			if ctx.Err() == nil {
				log.Fatalf("%+v", err)
			}
		}

		if !waitFrame(ctx, config.FrameRate) {
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				stats.TotalGenerations, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		}
	}
}
