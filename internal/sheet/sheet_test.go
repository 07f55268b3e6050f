package sheet

import "image"
import "image/color"
import "testing"

import "github.com/tinne26/tiletxt/charset"

func setPixels(img *image.Gray, pixels [][2]int) {
	for _, pixel := range pixels {
		img.SetGray(pixel[0], pixel[1], color.Gray{255})
	}
}

func TestScanCell(t *testing.T) {
	// a 3x3 plus sign drawn at (2, 3) inside an 8x12 cell
	img := image.NewGray(image.Rect(0, 0, 8, 12))
	setPixels(img, [][2]int{ {3, 3}, {2, 4}, {3, 4}, {4, 4}, {3, 5} })

	glyph, err := ScanCell(img, image.Rect(0, 0, 8, 12))
	if err != nil { t.Fatal(err) }
	if glyph.Blank() { t.Fatal("expected a non-blank glyph") }
	if glyph.SizeX != 3 || glyph.SizeY != 3 {
		t.Fatalf("expected a 3x3 glyph, got %dx%d", glyph.SizeX, glyph.SizeY)
	}
	if glyph.OffsetY != 3 { t.Fatalf("expected vertical offset 3, got %d", glyph.OffsetY) }
	expectedRows := []uint16{ 0b010, 0b111, 0b010 }
	for index, expected := range expectedRows {
		if glyph.Rows[index] != expected {
			t.Fatalf("row %d: expected %03b, got %03b", index, expected, glyph.Rows[index])
		}
	}
}

func TestScanCellBlank(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 12))
	glyph, err := ScanCell(img, image.Rect(0, 0, 8, 12))
	if err != nil { t.Fatal(err) }
	if !glyph.Blank() { t.Fatal("expected a blank glyph from an empty cell") }
}

func TestScanCellTooBig(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	setPixels(img, [][2]int{ {0, 0}, {13, 0} }) // 14 pixels across
	_, err := ScanCell(img, image.Rect(0, 0, 16, 16))
	if err == nil { t.Fatal("expected an error for an oversized glyph") }
}

func TestScanCellFlags(t *testing.T) {
	// a lone high stroke on the right edge, like the arm of 'f'
	img := image.NewGray(image.Rect(0, 0, 8, 12))
	setPixels(img, [][2]int{ {2, 2}, {2, 3}, {2, 4}, {2, 5}, {3, 2} })
	glyph, err := ScanCell(img, image.Rect(0, 0, 8, 12))
	if err != nil { t.Fatal(err) }
	if glyph.Flags & charset.FlagKernAscender == 0 {
		t.Fatalf("expected the kern ascender flag, got %#x", glyph.Flags)
	}
	if glyph.Flags & charset.FlagTightBottom == 0 {
		t.Fatalf("expected the tight bottom flag, got %#x", glyph.Flags)
	}
	if glyph.Flags & charset.FlagTightTop != 0 {
		t.Fatalf("glyph starts at row 2, tight top shouldn't be set: %#x", glyph.Flags)
	}

	// a lone low stroke on the left edge, like the tail of 'j'
	img = image.NewGray(image.Rect(0, 0, 8, 12))
	setPixels(img, [][2]int{ {2, 9}, {3, 9}, {3, 8}, {3, 7} })
	glyph, err = ScanCell(img, image.Rect(0, 0, 8, 12))
	if err != nil { t.Fatal(err) }
	if glyph.Flags & charset.FlagKernDescender == 0 {
		t.Fatalf("expected the kern descender flag, got %#x", glyph.Flags)
	}
	if glyph.Flags & charset.FlagTightTop == 0 {
		t.Fatalf("glyph starts at row 9, expected the tight top flag: %#x", glyph.Flags)
	}
}

func TestScanGrid(t *testing.T) {
	// two cells side by side: a dot in the first, nothing in the second
	img := image.NewGray(image.Rect(0, 0, 16, 12))
	setPixels(img, [][2]int{ {1, 1} })

	glyphs, err := Scan(img, 8, 12, image.Rect(0, 0, 16, 12))
	if err != nil { t.Fatal(err) }
	if len(glyphs) != 2 { t.Fatalf("expected 2 glyphs, got %d", len(glyphs)) }
	if glyphs[0].Blank() { t.Fatal("the first cell has a pixel") }
	if glyphs[0].SizeX != 1 || glyphs[0].SizeY != 1 || glyphs[0].OffsetY != 1 {
		t.Fatalf("unexpected first glyph %+v", glyphs[0])
	}
	if !glyphs[1].Blank() { t.Fatal("the second cell is empty") }
}

func TestScanEncodesCleanly(t *testing.T) {
	// scanned glyphs must always be valid encoder input
	img := image.NewGray(image.Rect(0, 0, 24, 12))
	setPixels(img, [][2]int{ {0, 0}, {7, 11}, {9, 5}, {10, 6}, {17, 3} })
	glyphs, err := Scan(img, 8, 12, image.Rect(0, 0, 24, 12))
	if err != nil { t.Fatal(err) }
	_, err = charset.Encode(glyphs)
	if err != nil { t.Fatal(err) }
}
