package charset

import "fmt"

// The number of bytes each glyph header occupies within a
// packed charset blob. See [GlyphHeader] for the exact layout.
const HeaderSize = 4

// Glyph bitmap dimensions are stored in 4-bit fields, so neither
// side of a glyph can exceed 15 pixels. In practice the packer is
// even stricter and refuses anything above 12x12.
const MaxGlyphSide = 15

// A Charset owns the glyph bitmap data for a contiguous, inclusive
// range of unicode code points. Charsets are created once through
// [New]() and never mutated afterwards, which makes them safe to
// share between any number of independent text layout operations.
//
// The backing data follows the packed binary format produced by
// the tiletxtpack tool (and originally by the upstream asset
// pipeline): a table of 4-byte glyph headers, one per code point
// in the claimed range, followed by the concatenated glyph bitmap
// rows. Data offsets within headers are absolute offsets into the
// blob, with zero reserved to mean "blank glyph, no bitmap".
type Charset struct {
	name string
	minCodePoint rune
	maxCodePoint rune
	data []byte
}

// Creates a [Charset] claiming the inclusive code point range
// [minCodePoint, maxCodePoint], backed by the given packed data.
//
// The data is validated on creation: every glyph header must
// describe a bitmap that falls fully within the blob. Malformed
// data is the only way this function can fail; the returned error
// describes the first offending header.
//
// The data slice is stored directly and must not be modified while
// the charset is in use.
func New(name string, minCodePoint, maxCodePoint rune, data []byte) (*Charset, error) {
	if minCodePoint < 0 {
		return nil, fmt.Errorf("charset %q: negative min code point %d", name, minCodePoint)
	}
	if maxCodePoint < minCodePoint {
		return nil, fmt.Errorf("charset %q: empty code point range", name)
	}

	charset := &Charset{
		name: name,
		minCodePoint: minCodePoint,
		maxCodePoint: maxCodePoint,
		data: data,
	}
	headersLen := charset.GlyphCount()*HeaderSize
	if len(data) < headersLen {
		return nil, fmt.Errorf(
			"charset %q: %d code points require %d header bytes, data only has %d",
			name, charset.GlyphCount(), headersLen, len(data),
		)
	}

	// validate each header against the blob bounds
	for index := 0; index < charset.GlyphCount(); index++ {
		header := charset.headerAt(index)
		if header.DataOffset == 0 { continue } // blank glyph
		if int(header.DataOffset) < headersLen {
			return nil, fmt.Errorf(
				"charset %q: glyph %d data offset %d points into the header table",
				name, index, header.DataOffset,
			)
		}
		end := int(header.DataOffset) + int(header.SizeY)*header.RowBytes()
		if end > len(data) {
			return nil, fmt.Errorf(
				"charset %q: glyph %d bitmap ends at %d, past data end %d",
				name, index, end, len(data),
			)
		}
	}
	return charset, nil
}

// Returns the charset's name.
func (self *Charset) Name() string { return self.name }

// Returns the first code point claimed by the charset.
func (self *Charset) MinCodePoint() rune { return self.minCodePoint }

// Returns the last code point claimed by the charset (inclusive).
func (self *Charset) MaxCodePoint() rune { return self.maxCodePoint }

// Returns the number of code points claimed by the charset. Every
// claimed code point has a glyph header, though it may describe a
// blank glyph.
func (self *Charset) GlyphCount() int {
	return int(self.maxCodePoint - self.minCodePoint) + 1
}

// Returns whether the given code point falls within the charset's
// claimed range. Negative code points are never claimed.
func (self *Charset) Contains(codePoint rune) bool {
	return codePoint >= self.minCodePoint && codePoint <= self.maxCodePoint
}

// Returns the glyph header for the given code point.
//
// The code point must be claimed by the charset; this is a
// precondition, and violating it will make the method panic.
// Use [Charset.Contains]() first when unsure.
func (self *Charset) Glyph(codePoint rune) GlyphHeader {
	if !self.Contains(codePoint) {
		panic(fmt.Sprintf(
			"code point %d outside charset %q range [%d, %d]",
			codePoint, self.name, self.minCodePoint, self.maxCodePoint,
		))
	}
	return self.headerAt(int(codePoint - self.minCodePoint))
}

// Returns the bitmap rows for the given glyph header, as a direct
// slice into the charset's backing data. Each row occupies
// [GlyphHeader.RowBytes]() bytes; wide rows are little-endian.
//
// Blank glyphs (zero data offset) yield a nil slice.
func (self *Charset) GlyphRows(header GlyphHeader) []byte {
	if header.DataOffset == 0 { return nil }
	start := int(header.DataOffset)
	end := start + int(header.SizeY)*header.RowBytes()
	return self.data[start : end : end]
}

func (self *Charset) headerAt(index int) GlyphHeader {
	offset := index*HeaderSize
	return GlyphHeader{
		SizeX: self.data[offset] & 0x0F,
		SizeY: self.data[offset] >> 4,
		OffsetY: self.data[offset + 1] & 0x0F,
		Flags: self.data[offset + 1] >> 4,
		DataOffset: uint16(self.data[offset + 2]) | (uint16(self.data[offset + 3]) << 8),
	}
}

// Per-glyph metadata decoded from a packed charset header entry.
//
// The wire layout is 4 bytes:
//   - byte 0: sizeX in the low nibble, sizeY in the high nibble
//   - byte 1: offsetY in the low nibble, kerning flags in the high nibble
//   - bytes 2-3: little-endian absolute data offset (0 = blank glyph)
type GlyphHeader struct {
	SizeX uint8 // glyph bitmap width in pixels (0..15)
	SizeY uint8 // glyph bitmap height in pixels (0..15)
	OffsetY uint8 // vertical offset from the line top (0..15)
	Flags uint8 // kerning and vertical gap flags (see Flag* constants)
	DataOffset uint16 // absolute offset of the first bitmap row, 0 for blank
}

// Kerning and vertical gap flags stored in the high nibble of the
// second header byte. They are derived by the packer from glyph
// edge profiles and are carried through for layout refinements;
// the basic layout engine does not consume them.
const (
	FlagKernAscender uint8 = 1 << 0 // right edge is a lone high stroke ('f', 'r')
	FlagTightTop uint8 = 1 << 1 // glyph starts low, gap above can shrink
	FlagKernDescender uint8 = 1 << 2 // left edge is a lone low stroke ('j')
	FlagTightBottom uint8 = 1 << 3 // glyph ends high, gap below can shrink
)

// Returns whether the glyph's bitmap rows occupy two bytes each
// instead of one. Rows become wide when the glyph is more than
// 8 pixels across.
func (self GlyphHeader) Wide() bool { return self.SizeX > 8 }

// Returns the number of bytes each bitmap row occupies (1 or 2).
func (self GlyphHeader) RowBytes() int {
	if self.Wide() { return 2 }
	return 1
}

// Returns whether the header describes a blank glyph, one with no
// bitmap data at all. Blank glyphs still claim their code point
// and advance the layout cursor like any other glyph.
func (self GlyphHeader) Blank() bool { return self.DataOffset == 0 }
