// Package render turns cell buffers into pixels for the GUI build.
package render

import "image/color"

// pixel packs a color into 8-bit RGBA bytes, the layout ebiten images expect.
func pixel(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA writes one pixel per cell into buf: on for live cells and
// off for dead ones.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off [4]byte) {
	for i, c := range cells {
		px := off
		if c != 0 {
			px = on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
