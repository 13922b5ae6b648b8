// Package render turns the engine's byte-per-cell board into RGBA pixels.
package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold 4 bytes per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var (
		onPx  = rgba(on)
		offPx = rgba(off)
	)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
