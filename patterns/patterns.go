// Package patterns holds well-known Game of Life seeds and reads plaintext
// (.cells) pattern files.
package patterns

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/glconway/model"
)

// Dead marks a dead cell in pattern rows. Any other byte is live.
const Dead = '.'

// ErrUnknownPattern is returned by ByName for names not in the catalogue.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a rectangle of cells, one string per row.
type Pattern struct {
	Name string
	Rows []string
}

var (
	Block = Pattern{Name: "block", Rows: []string{
		"OO",
		"OO",
	}}

	Blinker = Pattern{Name: "blinker", Rows: []string{
		"OOO",
	}}

	Glider = Pattern{Name: "glider", Rows: []string{
		".O.",
		"..O",
		"OOO",
	}}

	GosperGliderGun = Pattern{Name: "gosper-glider-gun", Rows: []string{
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	}}
)

var catalogue = map[string]Pattern{
	Block.Name:           Block,
	Blinker.Name:         Blinker,
	Glider.Name:          Glider,
	GosperGliderGun.Name: GosperGliderGun,
}

// ByName looks a pattern up in the built-in catalogue.
func ByName(name string) (Pattern, error) {
	p, ok := catalogue[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[ByName] %q", name)
	}
	return p, nil
}

// Names lists the catalogue in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the pattern's bounding box.
func (p Pattern) Size() (rows, cols int) {
	for _, r := range p.Rows {
		cols = max(cols, len(r))
	}
	return len(p.Rows), cols
}

// Place stamps p onto g with its top-left corner at (row, col). Cells the
// pattern covers are overwritten, dead ones included; short rows are padded dead.
func Place(g *model.Grid, p Pattern, row, col int) error {
	_, cols := p.Size()
	for r, line := range p.Rows {
		for c := 0; c < cols; c++ {
			alive := c < len(line) && line[c] != Dead
			if err := g.Set(row+r, col+c, alive); err != nil {
				return errors.Wrapf(err, "[Place] failed to place %s", p.Name)
			}
		}
	}
	return nil
}

// Parse reads a plaintext pattern. Lines starting with '!' are comments, and
// "!Name: x" names the pattern. Rows are padded to the widest row.
func Parse(r io.Reader) (Pattern, error) {
	var (
		p       Pattern
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		p.Rows = append(p.Rows, line)
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, errors.Wrap(err, "[Parse] failed to read pattern")
	}

	for len(p.Rows) > 0 && p.Rows[len(p.Rows)-1] == "" {
		p.Rows = p.Rows[:len(p.Rows)-1]
	}
	if len(p.Rows) == 0 {
		return Pattern{}, errors.Wrap(model.ErrInvalidInput, "[Parse] pattern has no rows")
	}

	_, cols := p.Size()
	for i, row := range p.Rows {
		if len(row) < cols {
			p.Rows[i] = row + strings.Repeat(string(Dead), cols-len(row))
		}
	}
	return p, nil
}
