package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosLive = 'O'
	gridPosDead = '.'

	clearCmd = "clear"
)

// TerminalRenderer writes the board as text lines, reusing one row buffer
// across generations.
type TerminalRenderer struct {
	out  io.Writer
	live byte
	dead byte
	rows [][]byte
}

// NewTerminalRenderer renders to out (stdout when nil). Zero glyphs fall back to 'O' and '.'.
func NewTerminalRenderer(out io.Writer, live, dead byte) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	if live == 0 {
		live = gridPosLive
	}
	if dead == 0 {
		dead = gridPosDead
	}
	return &TerminalRenderer{out: out, live: live, dead: dead}
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	rows, err := g.Render(r.live, r.dead, r.rows)
	if err != nil {
		return errors.Wrap(err, "[Display] failed to render grid")
	}
	r.rows = rows

	w := bufio.NewWriter(r.out)
	for _, row := range rows {
		w.Write(row)
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
