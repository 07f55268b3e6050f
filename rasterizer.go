package tiletxt

import "github.com/tinne26/tiletxt/tile"

// Rasterizes a single glyph into the given tile buffer with the
// given 4-bit color index. Every set bit of the glyph's bitmap
// becomes a pixel write; unset bits leave the destination alone,
// so glyphs draw transparently over whatever is already there.
//
// Unprintable and fully clipped glyphs are no-ops. The glyph's
// position and visible extents are trusted as produced by the
// feed: the rasterizer does no clipping of its own, and glyphs
// positioned outside the buffer's backing data will make the
// buffer panic.
func DrawGlyph(dst *tile.Buffer, glyph Glyph, colorIndex uint8) {
	if dst == nil { panic("can't rasterize into a nil tile buffer") }
	if !glyph.Printable() { return }
	if glyph.SizeX <= 0 || glyph.SizeY <= 0 { return }

	for row := 0; row < glyph.SizeY; row++ {
		var rowBits uint16
		if glyph.Wide {
			rowBits = uint16(glyph.Bitmap[row*2]) | (uint16(glyph.Bitmap[row*2 + 1]) << 8)
		} else {
			rowBits = uint16(glyph.Bitmap[row])
		}
		if rowBits == 0 { continue }
		for col := 0; col < glyph.SizeX; col++ {
			if rowBits & (1 << col) != 0 {
				dst.SetPixel(glyph.X + col, glyph.Y + row, colorIndex)
			}
		}
	}
}
