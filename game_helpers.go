package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/glconway/model"
	"github.com/sheikhrachel/glconway/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := config.NewGrid()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build board")
	}

	renderer := model.NewTerminalRenderer(os.Stdout, config.LiveChar[0], config.DeadChar[0])
	stats := utils.NewStats()

	return grid, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	topology := "bounded"
	if grid.Wrap() {
		topology = "toroidal"
	}
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v\n", config.UseMemoryPool, config.UseParallel)
	fmt.Printf("Grid: %dx%d %s | Initial living cells: %d\n",
		grid.Width(), grid.Height(), topology, grid.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// gameStatus summarises the board before it is displayed
func gameStatus(population, stagnantCount int) string {
	switch {
	case population == 0:
		return "Extinct"
	case stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", stagnantCount)
	}
	return "Active"
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, population int,
	status string,
	grid *model.Grid,
	stats *utils.Stats,
) {
	density := 0.0
	if cells := grid.Width() * grid.Height(); cells > 0 {
		density = float64(population) / float64(cells) * 100
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, population, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Runtime().Seconds())
}

// checkStopConditions determines if the run should end
func checkStopConditions(
	stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// advance computes the next generation, on all CPUs when configured
func advance(ctx context.Context, grid *model.Grid, config utils.Config) error {
	if config.UseParallel {
		return grid.StepParallel(ctx, 0)
	}
	return grid.Step()
}

// waitFrame sleeps for one frame or until ctx is done
func waitFrame(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
