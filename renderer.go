package tiletxt

import "fmt"

import "github.com/tinne26/tiletxt/charset"
import "github.com/tinne26/tiletxt/tile"

// The [Renderer] is the main entry point of tiletxt.
//
// Renderers hold the text layout configuration (charsets, line
// height, spacing, padding, wrapping, color) and expose simple
// functions to draw and measure text. For glyph-by-glyph control,
// see [Feed] instead; renderers are a thin convenience layer over
// feeds and the [DrawGlyph]() rasterizer.
//
// The zero value is usable, but you must set at least one charset
// before anything visible can be drawn.
type Renderer struct {
	charsets []*charset.Charset
	lineHeight int
	spaceWidth int
	padWidth int
	wrap WrapMode
	colorIndex uint8
}

// Creates a new [Renderer] with the default configuration: color
// index 1, [DefaultLineHeight], [DefaultSpaceWidth], no padding,
// no wrapping and no charsets.
func NewRenderer() *Renderer {
	return &Renderer{
		lineHeight: DefaultLineHeight,
		spaceWidth: DefaultSpaceWidth,
		colorIndex: 1,
	}
}

// Sets the charsets used to look up glyphs, in priority order:
// when multiple charsets claim the same code point, the first one
// given here wins. Replaces any previously set charsets.
func (self *Renderer) SetCharsets(charsets ...*charset.Charset) {
	self.charsets = charsets
}

// Returns the renderer's current charsets. The returned slice
// must not be modified.
func (self *Renderer) GetCharsets() []*charset.Charset { return self.charsets }

// Sets the 4-bit palette color index used to rasterize glyphs.
// Values above 15 are a contract violation and panic.
func (self *Renderer) SetColorIndex(colorIndex uint8) {
	if colorIndex > 15 { panic(fmt.Sprintf("color index %d exceeds 4 bits", colorIndex)) }
	self.colorIndex = colorIndex
}

// Returns the renderer's current color index.
func (self *Renderer) GetColorIndex() uint8 { return self.colorIndex }

// Sets the vertical advance of line breaks, in pixels.
// Non-positive values reset it to [DefaultLineHeight].
func (self *Renderer) SetLineHeight(lineHeight int) {
	if lineHeight <= 0 { lineHeight = DefaultLineHeight }
	self.lineHeight = lineHeight
}

// Sets the horizontal advance of spaces, in pixels. Non-positive
// values reset it to [DefaultSpaceWidth].
func (self *Renderer) SetSpaceWidth(spaceWidth int) {
	if spaceWidth <= 0 { spaceWidth = DefaultSpaceWidth }
	self.spaceWidth = spaceWidth
}

// Sets the minimum advance width for charset glyphs, in pixels.
// Glyphs narrower than this are centered within the padded cell.
// Mostly useful to fake monospaced output from a proportional
// charset. Zero disables padding.
func (self *Renderer) SetPadWidth(padWidth int) {
	if padWidth < 0 { padWidth = 0 }
	self.padWidth = padWidth
}

// Sets the line wrapping behavior. Wrapping only has an effect on
// draws with explicit bounds, see [Renderer.DrawInBox]().
func (self *Renderer) SetWrap(wrap WrapMode) { self.wrap = wrap }

// Draws the given text into the tile buffer with the current
// configuration, starting at (x, y) and without clip bounds.
func (self *Renderer) Draw(dst *tile.Buffer, text string, x, y int) {
	self.DrawInBox(dst, text, x, y, 0, 0)
}

// Same as [Renderer.Draw](), but with clip bounds: glyphs beyond
// maxWidth or maxHeight pixels from the starting position are
// truncated or, with wrapping enabled, moved to the next line.
// Zero bounds mean unlimited.
func (self *Renderer) DrawInBox(dst *tile.Buffer, text string, x, y, maxWidth, maxHeight int) {
	if dst == nil { panic("can't draw on a nil tile buffer") }
	if text == "" { return }

	feed := NewFeed([]byte(text), self.charsets, self.options(x, y, maxWidth, maxHeight))
	for {
		glyph := feed.Next()
		if glyph.EndOfText() { return }
		DrawGlyph(dst, glyph, self.colorIndex)
	}
}

// Measures the text with the current configuration, returning the
// width and height in pixels of its bounding box, with wrapping
// applied against maxWidth when enabled. No drawing takes place;
// measuring only runs the layout.
func (self *Renderer) Measure(text string, maxWidth int) (width, height int) {
	if text == "" { return 0, 0 }

	feed := NewFeed([]byte(text), self.charsets, self.options(0, 0, maxWidth, 0))
	for {
		glyph := feed.Next()
		if glyph.EndOfText() { break }
		if glyph.Printable() {
			right := glyph.X + glyph.SizeX
			if right > width { width = right }
		}
	}
	_, endY := feed.Position()
	return width, endY + self.lineHeight
}

func (self *Renderer) options(x, y, maxWidth, maxHeight int) Options {
	return Options{
		X: x, Y: y,
		MaxWidth: maxWidth, MaxHeight: maxHeight,
		LineHeight: self.lineHeight,
		SpaceWidth: self.spaceWidth,
		PadWidth: self.padWidth,
		Wrap: self.wrap,
	}
}
