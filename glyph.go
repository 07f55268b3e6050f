package tiletxt

// A positioned glyph, as produced by [Feed.Next](). Glyph values
// are plain descriptors: they borrow their bitmap from the owning
// charset and are not retained by the feed after being returned.
type Glyph struct {
	// The decoded code point this glyph stands for. Negative
	// values mean the feed has reached the end of the text; no
	// further glyphs will follow.
	CodePoint rune

	// The glyph's 1-bit bitmap rows, sliced directly from the
	// charset data. Nil for glyphs with nothing to draw: spaces,
	// line breaks, blank or unmapped code points. Each row spans
	// one byte, or two bytes in little-endian order when Wide is
	// set; bit 0 is the leftmost pixel. The slice always covers
	// the glyph's natural height, even if SizeY was clipped.
	Bitmap []byte
	Wide bool

	// Top-left corner of the bitmap, in destination pixels, and
	// the cursor position the feed advanced to after this glyph.
	X, Y int
	NextX int

	// Visible bitmap extents. These start as the glyph's natural
	// size and are reduced when the glyph crosses the feed's clip
	// bounds, in which case the matching Truncated flag is set.
	// Either size can reach zero for fully clipped glyphs.
	SizeX, SizeY int
	TruncatedX bool
	TruncatedY bool
}

// Returns whether the glyph has bitmap data to rasterize. Spaces,
// control characters and unmapped code points are unprintable but
// may still have advanced the feed's cursor.
func (self Glyph) Printable() bool { return self.Bitmap != nil }

// Returns whether the glyph is the end-of-text sentinel.
func (self Glyph) EndOfText() bool { return self.CodePoint < 0 }
