package patterns

import (
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/glconway/model"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if p.Name != name {
			t.Fatalf("ByName(%q) returned %q", name, p.Name)
		}
	}
	if _, err := ByName("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestGosperGliderGunSize(t *testing.T) {
	rows, cols := GosperGliderGun.Size()
	if rows != 9 || cols != 36 {
		t.Fatalf("size = %dx%d, want 9x36", rows, cols)
	}
	live := 0
	for _, row := range GosperGliderGun.Rows {
		live += strings.Count(row, "O")
	}
	if live != 36 {
		t.Fatalf("gun has %d live cells, want 36", live)
	}
}

func TestPlace(t *testing.T) {
	g, err := model.NewGrid(false, 5, 5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = Place(g, Glider, 1, 2); err != nil {
		t.Fatalf("Place: %v", err)
	}

	text, err := g.Text('O', '.')
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := ".....\n...O.\n....O\n..OOO\n.....\n"
	if text != want {
		t.Fatalf("board =\n%s\nwant\n%s", text, want)
	}
}

func TestPlaceClipsOnBoundedGrid(t *testing.T) {
	g, err := model.NewGrid(false, 3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = Place(g, Block, 2, 2); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if g.Population() != 1 {
		t.Fatalf("Population = %d, want 1 after clipping", g.Population())
	}
}

func TestPlaceWrapsOnTorus(t *testing.T) {
	g, err := model.NewGrid(true, 4, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = Place(g, Block, 3, 3); err != nil {
		t.Fatalf("Place: %v", err)
	}
	want := []uint8{
		1, 0, 0, 1,
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 0, 0, 1,
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
}

func TestGliderGunEmitsGliders(t *testing.T) {
	g, err := model.NewGrid(false, 30, 60)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = Place(g, GosperGliderGun, 2, 2); err != nil {
		t.Fatalf("Place: %v", err)
	}
	start := g.Population()

	// The gun has period 30 and releases one 5-cell glider per period.
	if err = g.StepN(30); err != nil {
		t.Fatalf("StepN: %v", err)
	}
	if got := g.Population(); got != start+5 {
		t.Fatalf("population after one period = %d, want %d", got, start+5)
	}
}

func TestParse(t *testing.T) {
	src := `!Name: Beehive
! a still life
.OO.
O..O
.OO

`
	p, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Name != "Beehive" {
		t.Fatalf("Name = %q, want Beehive", p.Name)
	}
	want := []string{".OO.", "O..O", ".OO."}
	if !slices.Equal(p.Rows, want) {
		t.Fatalf("Rows = %q, want %q", p.Rows, want)
	}

	g, err := model.NewGrid(false, 5, 6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = Place(g, p, 1, 1); err != nil {
		t.Fatalf("Place: %v", err)
	}
	before := slices.Clone(g.Cells())
	if err = g.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("beehive should be a still life")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader("!only comments\n\n")); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
