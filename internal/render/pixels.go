package render

import (
	"image/color"

	"wrapsnake/internal/core"
)

// DefaultPalette maps the cell classes to the classic board colors: black
// background, green snake with a lighter head, red food.
var DefaultPalette = []color.RGBA{
	core.ClassEmpty: {A: 0xff},
	core.ClassBody:  {G: 0xc8, A: 0xff},
	core.ClassHead:  {R: 0x50, G: 0xff, B: 0x50, A: 0xff},
	core.ClassFood:  {R: 0xff, A: 0xff},
}

// fillPaletteRGBA converts cell-class values into RGBA pixels using a
// palette. Out-of-range classes clamp to the last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
