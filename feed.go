package tiletxt

import "github.com/tinne26/tiletxt/charset"

// Feeds are the lowest level mechanism to lay out text in tiletxt:
// each call to [Feed.Next]() decodes one code point from the text
// and turns it into a positioned [Glyph], advancing the feed's
// cursor as a side effect.
//
// As a rule of thumb, you should only resort to feeds if
// [Renderer.Draw]() and [Renderer.Measure]() don't give you
// enough control to do what you want, e.g. per-glyph coloring or
// custom pauses in a dialogue box.
//
// A feed is a one-shot object: create it, pull glyphs until the
// end-of-text sentinel shows up, discard it. It can't be rewound
// or reused, and it must not be shared between goroutines. The
// charset registry behind it, on the other hand, is immutable and
// can back any number of simultaneous feeds.
type Feed struct {
	text []byte
	decoder codePointDecoder
	charsets []*charset.Charset

	x, y int // working cursor
	lineBreakX int // x coordinate restored after a line break
	maxX, maxY int
	lineHeight int
	spaceWidth int
	padWidth int
	wrap WrapMode
	endOfText bool
}

// Creates a [Feed] over the given utf8 text.
//
// The charsets form the glyph lookup registry: for each code
// point, the first charset claiming it wins, so declaration order
// sets priority. The slice and the charsets themselves are
// borrowed and must not be modified while the feed is in use.
//
// Text with malformed utf8 won't cause any failure, only garbage
// code points; see the package documentation for details.
func NewFeed(text []byte, charsets []*charset.Charset, opts Options) *Feed {
	return &Feed{
		text: text,
		charsets: charsets,
		x: opts.X,
		y: opts.Y,
		lineBreakX: opts.X,
		maxX: opts.maxX(),
		maxY: opts.maxY(),
		lineHeight: opts.lineHeight(),
		spaceWidth: opts.spaceWidth(),
		padWidth: opts.PadWidth,
		wrap: opts.Wrap,
	}
}

// Returns the feed's working cursor position.
func (self *Feed) Position() (x, y int) { return self.x, self.y }

// Lays out the next glyph. Once the text is exhausted, or the
// cursor has moved below the bottom clip bound, the returned
// glyph is the end-of-text sentinel ([Glyph.EndOfText]); from
// that point on every further call returns the sentinel too.
func (self *Feed) Next() Glyph {
	if self.endOfText || self.y >= self.maxY {
		self.endOfText = true
		return Glyph{ CodePoint: -1, X: self.x, Y: self.y, NextX: self.x }
	}
	codePoint := self.decoder.Next(self.text)
	if codePoint < 0 {
		self.endOfText = true
		return Glyph{ CodePoint: -1, X: self.x, Y: self.y, NextX: self.x }
	}

	switch codePoint {
	case ' ', '\u00A0':
		return self.advanceBy(codePoint, self.spaceWidth)
	case '\t': // advance to the next multiple-of-16 pixel stop
		return self.advanceTo(codePoint, (self.x &^ 0xF) + 16)
	case '\n':
		glyph := Glyph{ CodePoint: codePoint, X: self.x, Y: self.y, NextX: self.lineBreakX }
		self.x = self.lineBreakX
		self.y += self.lineHeight
		return glyph
	case '\u00AD': // soft hyphen, always invisible
		return self.advanceBy(codePoint, 0)
	}

	advance, isSpaceVariant := spaceVariantAdvance(codePoint)
	if isSpaceVariant {
		return self.advanceBy(codePoint, advance)
	}

	// regular glyph, first claiming charset wins
	for _, charset := range self.charsets {
		if charset.Contains(codePoint) {
			return self.layoutGlyph(codePoint, charset)
		}
	}
	return self.advanceBy(codePoint, 0) // unmapped, no advance
}

// Emits an unprintable glyph advancing the cursor by the given
// amount.
func (self *Feed) advanceBy(codePoint rune, advance int) Glyph {
	return self.advanceTo(codePoint, self.x + advance)
}

func (self *Feed) advanceTo(codePoint rune, newX int) Glyph {
	glyph := Glyph{ CodePoint: codePoint, X: self.x, Y: self.y, NextX: newX }
	self.x = newX
	return glyph
}

// Lays out a charset glyph at the current cursor, applying the
// wrap retry if needed, and commits the resulting advance.
func (self *Feed) layoutGlyph(codePoint rune, cs *charset.Charset) Glyph {
	header := cs.Glyph(codePoint)
	glyph := self.computeLayout(codePoint, cs, header)

	// a clipped glyph that isn't the first on its line gets one
	// chance to restart on a fresh line
	if self.wrap != WrapNone && glyph.TruncatedX && self.x > self.lineBreakX {
		self.x = self.lineBreakX
		self.y += self.lineHeight
		glyph = self.computeLayout(codePoint, cs, header)
	}
	self.x = glyph.NextX
	return glyph
}

// Computes a glyph's position, advance and clipping at the current
// cursor, without committing any cursor change.
func (self *Feed) computeLayout(codePoint rune, cs *charset.Charset, header charset.GlyphHeader) Glyph {
	sizeX := int(header.SizeX)
	sizeY := int(header.SizeY)
	x := self.x
	y := self.y + int(header.OffsetY)

	effWidth := sizeX
	if self.padWidth > effWidth { effWidth = self.padWidth }

	var nextX int
	align := GetCellAlign(codePoint)
	if effWidth >= FullCellWidth || align == CellNormal {
		nextX = self.x + effWidth + 1
		if effWidth > sizeX { x += (effWidth - sizeX) >> 1 }
	} else {
		// narrow glyph in a full-width cell
		switch align {
		case CellLeft: // x stays at the cell's left edge
		case CellRight: x += FullCellWidth - sizeX
		case CellCenter: x += (FullCellWidth - sizeX) >> 1
		default:
			panic(align)
		}
		nextX = self.x + FullCellWidth
	}

	glyph := Glyph{
		CodePoint: codePoint,
		X: x, Y: y, NextX: nextX,
		SizeX: sizeX, SizeY: sizeY,
	}
	if !header.Blank() && sizeY > 0 {
		glyph.Bitmap = cs.GlyphRows(header)
		glyph.Wide = header.Wide()
	}

	// clamp against the clip bounds
	if x > self.maxX - sizeX {
		glyph.TruncatedX = true
		glyph.SizeX = max(self.maxX - x, 0)
	}
	if y > self.maxY - sizeY {
		glyph.TruncatedY = true
		glyph.SizeY = max(self.maxY - y, 0)
	}
	return glyph
}
