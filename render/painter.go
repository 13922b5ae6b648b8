//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a board into a single image, one pixel per cell.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a board of rows x cols cells.
func NewGridPainter(rows, cols int) *GridPainter {
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
	}
}

// Blit uploads cells into the painter image and draws it scaled onto dst.
// Boards of the wrong size are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
