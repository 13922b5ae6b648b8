package utils

import (
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/glconway/model"
	"github.com/sheikhrachel/glconway/patterns"
)

// PatternRandom selects a random board instead of a named pattern.
const PatternRandom = "random"

// NewGrid creates the configured board and seeds it.
func (c Config) NewGrid() (*model.Grid, error) {
	var opts []model.Option
	if c.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewBoardPool()))
	}

	grid, err := model.NewGrid(c.Wrap, c.Rows, c.Cols, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGrid] failed to create grid")
	}
	if err = c.SeedGrid(grid); err != nil {
		grid.Destroy()
		return nil, err
	}
	return grid, nil
}

// SeedGrid clears the board and fills it from the pattern file, the named
// pattern, or random noise, in that order of preference.
func (c Config) SeedGrid(grid *model.Grid) error {
	if err := grid.Clear(); err != nil {
		return errors.Wrap(err, "[SeedGrid] failed to clear grid")
	}

	switch {
	case c.PatternFile != "":
		f, err := os.Open(c.PatternFile)
		if err != nil {
			return errors.Wrapf(err, "[SeedGrid] failed to open pattern file: %+v", c.PatternFile)
		}
		defer f.Close()

		p, err := patterns.Parse(f)
		if err != nil {
			return errors.Wrapf(err, "[SeedGrid] failed to parse pattern file: %+v", c.PatternFile)
		}
		return patterns.Place(grid, p, c.PatternRow, c.PatternCol)
	case c.Pattern == PatternRandom:
		return grid.Randomize(c.Seed, c.RandomDensity)
	case c.Pattern == "":
		return nil
	}

	p, err := patterns.ByName(c.Pattern)
	if err != nil {
		return errors.Wrapf(err, "[SeedGrid] choose one of %v or %q", patterns.Names(), PatternRandom)
	}
	return patterns.Place(grid, p, c.PatternRow, c.PatternCol)
}
