package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 200, B: 10, A: 255}
	off := color.RGBA{A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		255, 200, 10, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
		255, 200, 10, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBAOverwrites(t *testing.T) {
	cells := []uint8{0, 0}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}

	fillBinaryRGBA(buf, cells, color.White, color.Transparent)

	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("dead cells should be transparent, got %v", buf)
	}
}
