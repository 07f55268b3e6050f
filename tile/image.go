package tile

import "image"
import "image/color"

// Converts the given pixel area of the buffer into a paletted
// image, mostly useful for previews and debugging on the host.
// The palette must have at least 16 entries so every 4-bit color
// index maps to a color; shorter palettes make the function panic.
//
// The area must fit within the buffer's backing data, like any
// other pixel access.
func (self *Buffer) Image(width, height int, palette color.Palette) *image.Paletted {
	if len(palette) < 16 { panic("palette needs at least 16 entries") }
	img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetColorIndex(x, y, self.Pixel(x, y))
		}
	}
	return img
}

// A simple 16-entry grayscale palette with a transparent entry at
// index 0, handy as a default for [Buffer.Image]().
func GrayPalette() color.Palette {
	palette := make(color.Palette, 16)
	palette[0] = color.RGBA{}
	for index := 1; index < 16; index++ {
		level := uint8(index*17) // 15*17 = 255
		palette[index] = color.RGBA{level, level, level, 255}
	}
	return palette
}
