package tiletxt

import "bytes"
import "testing"

import "github.com/tinne26/tiletxt/tile"

func TestRendererDraw(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetCharsets(testLatinCharset(t))
	renderer.SetColorIndex(4)

	buffer := tile.NewBufferForArea(32, 16, 2)
	renderer.Draw(buffer, "AB", 1, 0)

	// middle bar of 'A' (row 3, 0b11111) sits at y = offsetY + 3
	for col := 0; col < 5; col++ {
		if got := buffer.Pixel(1 + col, 5); got != 4 {
			t.Fatalf("pixel (%d, 5): expected 4, got %d", 1 + col, got)
		}
	}
	// 'B' must start at x = 1 + 5 + 1; its top row is 0b0111
	if got := buffer.Pixel(7, 2); got != 4 {
		t.Fatalf("expected bit 0 of 'B' set, got %d", got)
	}
	if got := buffer.Pixel(7 + 3, 2); got != 0 {
		t.Fatalf("expected bit 3 of 'B' unset, got %d", got)
	}
}

func TestRendererDrawEmptyText(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetCharsets(testLatinCharset(t))
	buffer := tile.NewBufferForArea(8, 8, 1)
	reference := make([]byte, len(buffer.Data()))
	copy(reference, buffer.Data())
	renderer.Draw(buffer, "", 0, 0)
	if !bytes.Equal(buffer.Data(), reference) { t.Fatal("empty text must not draw") }
}

func TestRendererDrawNilBuffer(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("expected a panic on nil destination") }
	}()
	NewRenderer().Draw(nil, "A", 0, 0)
}

func TestRendererColorIndexLimit(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("expected a panic on a 5-bit color index") }
	}()
	NewRenderer().SetColorIndex(16)
}

func TestRendererMeasure(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetCharsets(testLatinCharset(t))

	width, height := renderer.Measure("AB", 0)
	if width != 10 { // 'A' cell (6) plus the 4px of 'B'
		t.Fatalf("expected width 10, got %d", width)
	}
	if height != DefaultLineHeight { t.Fatalf("expected height %d, got %d", DefaultLineHeight, height) }

	width, height = renderer.Measure("A\nB", 0)
	if width != 5 { t.Fatalf("expected width 5, got %d", width) }
	if height != 2*DefaultLineHeight { t.Fatalf("expected two lines, got height %d", height) }

	width, height = renderer.Measure("", 0)
	if width != 0 || height != 0 { t.Fatalf("expected zero size, got %dx%d", width, height) }
}

func TestRendererMeasureWithWrap(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetCharsets(testLatinCharset(t))
	renderer.SetWrap(WrapSimple)

	_, flatHeight := renderer.Measure("AB", 0)
	_, wrappedHeight := renderer.Measure("AB", 8)
	if wrappedHeight != flatHeight + DefaultLineHeight {
		t.Fatalf("expected the wrap to add one line: %d vs %d", wrappedHeight, flatHeight)
	}
}

func TestRendererDrawInBoxWraps(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetCharsets(testLatinCharset(t))
	renderer.SetWrap(WrapSimple)

	buffer := tile.NewBufferForArea(16, 32, 1)
	renderer.DrawInBox(buffer, "AB", 0, 0, 8, 0)

	// 'B' wrapped to the second line: its top row (0b0111) has
	// bit 1 set at (1, lineHeight + offsetY)
	if got := buffer.Pixel(1, DefaultLineHeight + 2); got == 0 {
		t.Fatal("expected 'B' on the second line")
	}
	// and nothing of 'B' on the first line after 'A'
	if got := buffer.Pixel(7, 2); got != 0 {
		t.Fatal("expected the first line to end after 'A'")
	}
}
