package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/glconway/rules"
)

// Grid is a fixed-size Game of Life board.
//
// width counts rows and height counts columns; cells are stored row-major with
// index row*height + col, one byte per cell holding 0 or 1. The zero value is an
// uninitialized grid: every operation except Init reports ErrNotReady on it.
type Grid struct {
	width  int
	height int
	wrap   bool
	cells  []uint8

	pool *BoardPool
}

// Option configures a Grid built by NewGrid.
type Option func(*Grid)

// WithPool makes the grid take its scratch boards from pool and return retired ones to it.
func WithPool(pool *BoardPool) Option {
	return func(g *Grid) { g.pool = pool }
}

// NewGrid creates a grid of width rows by height columns with all cells dead.
// wrap selects toroidal topology; otherwise the board is surrounded by dead cells.
func NewGrid(wrap bool, width, height int, opts ...Option) (*Grid, error) {
	g := &Grid{}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Init(wrap, width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Init allocates zeroed storage, replacing any storage the grid already owns.
// On a negative dimension the grid is left untouched.
func (g *Grid) Init(wrap bool, width, height int) error {
	if width < 0 || height < 0 {
		return errors.Wrapf(ErrInvalidDimension, "[Init] %dx%d", width, height)
	}
	g.pool.Put(g.cells)

	g.wrap = wrap
	g.width = width
	g.height = height
	g.cells = make([]uint8, width*height)
	return nil
}

// Destroy releases the cell storage. Calling it again is a no-op.
func (g *Grid) Destroy() {
	if g.cells == nil {
		return
	}
	g.pool.Put(g.cells)
	g.cells = nil
	g.width = 0
	g.height = 0
}

// Ready reports whether the grid owns valid storage.
func (g *Grid) Ready() bool {
	return g != nil && g.cells != nil
}

// Width returns the number of rows
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of columns
func (g *Grid) Height() int {
	return g.height
}

// Wrap reports whether the board is toroidal.
func (g *Grid) Wrap() bool {
	return g.wrap
}

// Cells exposes the current board without copying. The slice stays valid and
// unchanged until the next step, seed, or Destroy.
func (g *Grid) Cells() []uint8 {
	return g.cells
}

// CellAt returns the state of a cell. Wrapping grids reduce both coordinates with
// a floored modulo; bounded grids read dead outside the board.
func (g *Grid) CellAt(row, col int) (uint8, error) {
	if !g.Ready() {
		return rules.Dead, errors.Wrap(ErrNotReady, "[CellAt]")
	}
	return g.cell(row, col), nil
}

func (g *Grid) cell(row, col int) uint8 {
	if g.wrap {
		if g.width == 0 || g.height == 0 {
			return rules.Dead
		}
		row, col = mod(row, g.width), mod(col, g.height)
	} else if row < 0 || row >= g.width || col < 0 || col >= g.height {
		return rules.Dead
	}
	return g.cells[row*g.height+col]
}

// mod is a floored modulo, always in [0, d) for d > 0.
func mod(n, d int) int {
	return (n%d + d) % d
}

// Set changes a single cell. Wrapping grids normalise the coordinates; on a
// bounded grid writes outside the board are dropped.
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[Set]")
	}
	if g.wrap {
		if g.width == 0 || g.height == 0 {
			return nil
		}
		row, col = mod(row, g.width), mod(col, g.height)
	} else if row < 0 || row >= g.width || col < 0 || col >= g.height {
		return nil
	}
	g.cells[row*g.height+col] = state(alive)
	return nil
}

func state(alive bool) uint8 {
	if alive {
		return rules.Live
	}
	return rules.Dead
}

// Clear kills every cell.
func (g *Grid) Clear() error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[Clear]")
	}
	clear(g.cells)
	return nil
}

// Seed overwrites the board from a flat row-major sequence: every element that
// differs from empty becomes a live cell.
func (g *Grid) Seed(data []byte, empty byte) error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[Seed]")
	}
	if len(data) < len(g.cells) {
		return errors.Wrapf(ErrInvalidInput, "[Seed] got %d cells, need %d", len(data), len(g.cells))
	}
	for i := range g.cells {
		g.cells[i] = state(data[i] != empty)
	}
	return nil
}

// SeedRows overwrites the board from one string per row. Every row must hold at
// least Height bytes; nothing is written unless the whole input is valid.
func (g *Grid) SeedRows(rows []string, empty byte) error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[SeedRows]")
	}
	if len(rows) < g.width {
		return errors.Wrapf(ErrInvalidInput, "[SeedRows] got %d rows, need %d", len(rows), g.width)
	}
	for r := 0; r < g.width; r++ {
		if len(rows[r]) < g.height {
			return errors.Wrapf(ErrInvalidInput, "[SeedRows] row %d has %d cells, need %d", r, len(rows[r]), g.height)
		}
	}

	for r := 0; r < g.width; r++ {
		line := rows[r]
		for c := 0; c < g.height; c++ {
			g.cells[r*g.height+c] = state(line[c] != empty)
		}
	}
	return nil
}

// Randomize fills the board deterministically from seed, each cell live with
// probability density.
func (g *Grid) Randomize(seed int64, density float64) error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[Randomize]")
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		g.cells[i] = state(rng.Float64() < density)
	}
	return nil
}

// neighbours counts live cells in the 3x3 neighbourhood around (row, col),
// excluding the cell itself.
func (g *Grid) neighbours(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			count += int(g.cell(row+dr, col+dc))
		}
	}
	return count
}

// stepRows writes the next state of rows [start, end) into next.
// It only reads g.cells, so disjoint row ranges may run concurrently.
func (g *Grid) stepRows(next []uint8, start, end int) {
	for row := start; row < end; row++ {
		for col := 0; col < g.height; col++ {
			i := row*g.height + col
			next[i] = rules.Next(g.cells[i], g.neighbours(row, col))
		}
	}
}

// swap installs next as the current board and retires the old one.
func (g *Grid) swap(next []uint8) {
	prev := g.cells
	g.cells = next
	g.pool.Put(prev)
}

// Step advances the board by one generation. The new board is computed from the
// current one into separate storage and swapped in when complete.
func (g *Grid) Step() error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[Step]")
	}
	next := g.pool.Get(len(g.cells))
	g.stepRows(next, 0, g.width)
	g.swap(next)
	return nil
}

// StepN applies Step n times.
func (g *Grid) StepN(n int) error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[StepN]")
	}
	if n < 0 {
		return errors.Wrapf(ErrInvalidInput, "[StepN] negative generation count %d", n)
	}
	for range n {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// StepParallel computes one generation with the rows split into bands across
// workers goroutines (runtime.NumCPU when workers <= 0). The result is identical
// to Step. If ctx is cancelled the board is left unchanged.
func (g *Grid) StepParallel(ctx context.Context, workers int) error {
	if !g.Ready() {
		return errors.Wrap(ErrNotReady, "[StepParallel]")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		next          = g.pool.Get(len(g.cells))
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (g.width + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.width)
		)
		if startRow >= g.width {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.pool.Put(next)
		return errors.Wrap(err, "[StepParallel] generation aborted")
	}
	if err := ctx.Err(); err != nil {
		g.pool.Put(next)
		return errors.Wrap(err, "[StepParallel] generation aborted")
	}

	g.swap(next)
	return nil
}

// Population returns the number of live cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Render writes the board as text, one row of Height bytes per board row. buf is
// overwritten and returned when it already has that shape; otherwise a new
// buffer is allocated.
func (g *Grid) Render(live, dead byte, buf [][]byte) ([][]byte, error) {
	if !g.Ready() {
		return nil, errors.Wrap(ErrNotReady, "[Render]")
	}
	if !g.fits(buf) {
		buf = make([][]byte, g.width)
		for r := range buf {
			buf[r] = make([]byte, g.height)
		}
	}

	for r, line := range buf {
		for c := range line {
			if g.cells[r*g.height+c] == rules.Live {
				line[c] = live
			} else {
				line[c] = dead
			}
		}
	}
	return buf, nil
}

func (g *Grid) fits(buf [][]byte) bool {
	if buf == nil || len(buf) != g.width {
		return false
	}
	for _, line := range buf {
		if len(line) != g.height {
			return false
		}
	}
	return true
}

// Text renders the board with every row terminated by a newline.
func (g *Grid) Text(live, dead byte) (string, error) {
	rows, err := g.Render(live, dead, nil)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(g.width * (g.height + 1))
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Hash returns an MD5 digest of the board shape and contents.
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	h.Write(g.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}
