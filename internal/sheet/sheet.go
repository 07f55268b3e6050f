// sheet scans glyph cells out of font sprite sheet images, turning
// each fixed-size cell into a trimmed [charset.Glyph] ready for
// encoding. It backs the tiletxtpack tool and is not part of the
// public API.
package sheet

import "fmt"
import "image"

import "github.com/tinne26/tiletxt/charset"

// The packer's glyph size limit. The packed header fields could
// hold up to 15, but the engine's cell arithmetic assumes glyphs
// never exceed 12x12 pixels.
const MaxGlyphSide = 12

// Scans a grid of glyph cells from the given image region, row by
// row, left to right. The region is divided into as many whole
// cells of the given size as fit; partial cells at the edges are
// ignored, matching the original asset pipeline.
func Scan(img image.Image, cellWidth, cellHeight int, region image.Rectangle) ([]charset.Glyph, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("invalid cell size %dx%d", cellWidth, cellHeight)
	}
	cellsPerRow := region.Dx()/cellWidth
	cellRows := region.Dy()/cellHeight
	glyphs := make([]charset.Glyph, 0, cellsPerRow*cellRows)
	for cellY := 0; cellY < cellRows; cellY++ {
		for cellX := 0; cellX < cellsPerRow; cellX++ {
			cell := image.Rect(0, 0, cellWidth, cellHeight).Add(image.Point{
				X: region.Min.X + cellX*cellWidth,
				Y: region.Min.Y + cellY*cellHeight,
			})
			glyph, err := ScanCell(img, cell)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", cellX, cellY, err)
			}
			glyphs = append(glyphs, glyph)
		}
	}
	return glyphs, nil
}

// Scans a single glyph cell. The glyph is trimmed to the tight
// bounding box of its set pixels; fully empty cells yield a blank
// glyph. Glyphs over 12x12 pixels are an error.
//
// A pixel is considered set when it's neither transparent nor
// black, so both white-on-black and color-on-transparent sheets
// scan correctly.
func ScanCell(img image.Image, cell image.Rectangle) (charset.Glyph, error) {
	// find the tight bounding box of the glyph's pixels
	xMin, xMax := cell.Max.X, cell.Min.X
	yMin, yMax := cell.Max.Y, cell.Min.Y
	for x := cell.Min.X; x < cell.Max.X; x++ {
		for y := cell.Min.Y; y < cell.Max.Y; y++ {
			if !pixelSet(img, x, y) { continue }
			if x < xMin { xMin = x }
			if x + 1 > xMax { xMax = x + 1 }
			if y < yMin { yMin = y }
			if y + 1 > yMax { yMax = y + 1 }
		}
	}
	if xMin >= xMax { return charset.Glyph{}, nil } // blank cell

	sizeX, sizeY := xMax - xMin, yMax - yMin
	if sizeX > MaxGlyphSide || sizeY > MaxGlyphSide {
		return charset.Glyph{}, fmt.Errorf(
			"maximum allowed glyph size is %dx%d pixels, found %dx%d",
			MaxGlyphSide, MaxGlyphSide, sizeX, sizeY,
		)
	}
	if yMin - cell.Min.Y > 15 {
		return charset.Glyph{}, fmt.Errorf("glyph starts %d pixels below the cell top, field limit is 15", yMin - cell.Min.Y)
	}

	// vertical extents of the first and last columns, used to
	// derive the kerning and gap flags
	firstMin, firstMax := columnExtent(img, xMin, cell)
	lastMin, lastMax := columnExtent(img, xMax - 1, cell)

	var flags uint8
	if lastMin - cell.Min.Y <= 5 && lastMin == lastMax - 1 {
		flags |= charset.FlagKernAscender // lone high stroke on the right, like 'f' or 'r'
	}
	if firstMin - cell.Min.Y > 5 {
		flags |= charset.FlagTightTop
	}
	if firstMin - cell.Min.Y >= 9 && firstMin == firstMax - 1 {
		flags |= charset.FlagKernDescender // lone low stroke on the left, like 'j'
	}
	if lastMax - cell.Min.Y < 9 {
		flags |= charset.FlagTightBottom
	}

	// pack the bitmap rows, bit 0 = leftmost pixel
	rows := make([]uint16, 0, sizeY)
	for y := yMin; y < yMax; y++ {
		var row uint16
		for x := xMin; x < xMax; x++ {
			if pixelSet(img, x, y) {
				row |= 1 << (x - xMin)
			}
		}
		rows = append(rows, row)
	}

	return charset.Glyph{
		SizeX: uint8(sizeX),
		SizeY: uint8(sizeY),
		OffsetY: uint8(yMin - cell.Min.Y),
		Flags: flags,
		Rows: rows,
	}, nil
}

// Returns the [min, max) vertical extent of the set pixels in the
// given image column, restricted to the cell.
func columnExtent(img image.Image, x int, cell image.Rectangle) (int, int) {
	yMin, yMax := cell.Max.Y, cell.Min.Y
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		if !pixelSet(img, x, y) { continue }
		if y < yMin { yMin = y }
		if y + 1 > yMax { yMax = y + 1 }
	}
	return yMin, yMax
}

func pixelSet(img image.Image, x, y int) bool {
	r, g, b, a := img.At(x, y).RGBA()
	return a != 0 && (r | g | b) != 0
}
