//go:build ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/glconway/model"
	"github.com/sheikhrachel/glconway/utils"
)

func main() {
	config, err := utils.FromArgs("viewer", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if config.Rows == 0 || config.Cols == 0 {
		log.Fatalf("viewer needs a non-empty board, got %dx%d", config.Rows, config.Cols)
	}
	config.Scale = max(config.Scale, 1)

	grid, err := config.NewGrid()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer grid.Destroy()

	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)

	game := NewGame(ctx, model.NewSharedGrid(grid), config)
	eg.Go(func() error { return game.Run(ctx) })

	ebiten.SetWindowTitle("glconway")
	ebiten.SetWindowSize(config.Cols*config.Scale, config.Rows*config.Scale)

	runErr := ebiten.RunGame(game)
	cancel()
	if err = eg.Wait(); err != nil {
		log.Printf("%+v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
