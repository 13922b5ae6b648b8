package model

import "sync"

// SharedGrid guards a Grid for use from several goroutines. Mutations take the
// write lock; readers get the board under the read lock or as a copy.
type SharedGrid struct {
	mu   sync.RWMutex
	grid *Grid
}

func NewSharedGrid(g *Grid) *SharedGrid {
	return &SharedGrid{grid: g}
}

// Update runs fn with exclusive access to the grid.
func (s *SharedGrid) Update(fn func(g *Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.grid)
}

// View runs fn with the current board. fn must not retain cells.
func (s *SharedGrid) View(fn func(cells []uint8)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.grid.Cells())
}

// Step advances the board by one generation.
func (s *SharedGrid) Step() error {
	return s.Update((*Grid).Step)
}

// StepN advances the board by n generations while holding the lock.
func (s *SharedGrid) StepN(n int) error {
	return s.Update(func(g *Grid) error { return g.StepN(n) })
}

// Snapshot returns a copy of the board that later steps do not touch.
func (s *SharedGrid) Snapshot() []uint8 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.grid.Ready() {
		return nil
	}
	cells := make([]uint8, len(s.grid.Cells()))
	copy(cells, s.grid.Cells())
	return cells
}

// Render renders the board under the read lock; see Grid.Render.
func (s *SharedGrid) Render(live, dead byte, buf [][]byte) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Render(live, dead, buf)
}

// Population returns the number of live cells.
func (s *SharedGrid) Population() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Population()
}
