package charset

import "fmt"

// An unpacked glyph, as produced while scanning a font sheet and
// before encoding into the packed charset format. The zero value
// is a valid blank glyph.
//
// Rows hold one entry per bitmap row, top to bottom. Within a row,
// bit 0 is the leftmost pixel. Rows of glyphs up to 8 pixels wide
// are encoded as a single byte; wider glyphs use two bytes in
// little-endian order.
type Glyph struct {
	SizeX uint8
	SizeY uint8
	OffsetY uint8
	Flags uint8
	Rows []uint16
}

// Returns whether the glyph has no pixels at all. Blank glyphs
// are encoded as a header with a zero data offset and contribute
// no bitmap rows to the packed blob.
func (self Glyph) Blank() bool { return self.SizeX == 0 || self.SizeY == 0 }

// Encodes the given glyphs into the packed charset binary format:
// a 4-byte header per glyph followed by the concatenated bitmap
// rows. The result can be fed back to [New]() or written to a
// .bin file for embedding.
//
// The glyph at index i maps to code point (minCodePoint + i) of
// the charset that the blob will back; [Encode] itself doesn't
// need to know the range.
func Encode(glyphs []Glyph) ([]byte, error) {
	headersLen := len(glyphs)*HeaderSize
	headers := make([]byte, 0, headersLen)
	rows := make([]byte, 0, 256)
	for index, glyph := range glyphs {
		err := glyph.validate()
		if err != nil { return nil, fmt.Errorf("glyph %d: %w", index, err) }

		dataOffset := 0
		if !glyph.Blank() {
			dataOffset = headersLen + len(rows)
			if dataOffset > 0xFFFF {
				return nil, fmt.Errorf("glyph %d: data offset %d overflows 16 bits", index, dataOffset)
			}
			wide := glyph.SizeX > 8
			for _, row := range glyph.Rows {
				if wide {
					rows = append(rows, byte(row), byte(row >> 8))
				} else {
					rows = append(rows, byte(row))
				}
			}
		}
		headers = append(headers,
			glyph.SizeX | (glyph.SizeY << 4),
			glyph.OffsetY | (glyph.Flags << 4),
			byte(dataOffset),
			byte(dataOffset >> 8),
		)
	}
	return append(headers, rows...), nil
}

func (self Glyph) validate() error {
	if self.SizeX > MaxGlyphSide || self.SizeY > MaxGlyphSide {
		return fmt.Errorf("size %dx%d exceeds the %d pixel field limit", self.SizeX, self.SizeY, MaxGlyphSide)
	}
	if self.OffsetY > MaxGlyphSide {
		return fmt.Errorf("vertical offset %d exceeds the %d pixel field limit", self.OffsetY, MaxGlyphSide)
	}
	if self.Flags > 0x0F {
		return fmt.Errorf("flags %#x exceed the 4-bit field", self.Flags)
	}
	if self.Blank() { return nil }
	if len(self.Rows) != int(self.SizeY) {
		return fmt.Errorf("%d rows for a %d pixel tall glyph", len(self.Rows), self.SizeY)
	}
	for rowIndex, row := range self.Rows {
		if row >> self.SizeX != 0 {
			return fmt.Errorf("row %d has pixels beyond the %d pixel width", rowIndex, self.SizeX)
		}
	}
	return nil
}
