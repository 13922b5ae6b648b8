//go:build ebiten

package main

import (
	"context"
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/glconway/model"
	"github.com/sheikhrachel/glconway/render"
	"github.com/sheikhrachel/glconway/utils"
)

// Game draws a SharedGrid that is advanced by Run on its own goroutine.
type Game struct {
	ctx     context.Context
	shared  *model.SharedGrid
	config  utils.Config
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	paused     atomic.Bool
	generation atomic.Int64
	stepOnce   chan struct{}
}

// NewGame constructs a Game for the provided board. Update stops the window once ctx is done.
func NewGame(ctx context.Context, shared *model.SharedGrid, config utils.Config) *Game {
	return &Game{
		ctx:      ctx,
		shared:   shared,
		config:   config,
		painter:  render.NewGridPainter(config.Rows, config.Cols),
		onColor:  color.White,
		offColor: color.Black,
		stepOnce: make(chan struct{}, 1),
	}
}

// Run advances the board at config.TPS generations per second until ctx is done.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(max(g.config.TPS, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-g.stepOnce:
		case <-ticker.C:
			if g.paused.Load() {
				continue
			}
		}
		if err := g.shared.Step(); err != nil {
			return errors.Wrap(err, "[Run] simulation stopped")
		}
		g.generation.Add(1)
	}
}

// Reset reseeds the board with the configured pattern and the provided seed.
func (g *Game) Reset(seed int64) error {
	cfg := g.config
	cfg.Seed = seed
	if err := g.shared.Update(cfg.SeedGrid); err != nil {
		return errors.Wrap(err, "[Reset] failed to reseed board")
	}
	g.generation.Store(0)
	return nil
}

// Update handles input; the simulation itself runs in Run.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused.Store(!g.paused.Load())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		select {
		case g.stepOnce <- struct{}{}:
		default:
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.Reset(g.config.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		return g.Reset(time.Now().UnixNano())
	}
	return nil
}

// Draw uploads the current board and prints the generation counter.
func (g *Game) Draw(screen *ebiten.Image) {
	population := 0
	g.shared.View(func(cells []uint8) {
		g.painter.Blit(screen, cells, g.onColor, g.offColor, g.config.Scale)
		for _, c := range cells {
			population += int(c)
		}
	})

	status := ""
	if g.paused.Load() {
		status = " (paused)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  pop %d%s", g.generation.Load(), population, status))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Cols * g.config.Scale, g.config.Rows * g.config.Scale
}
