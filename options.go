package tiletxt

// Layout options for a [Feed]. The zero value is valid: it lays
// out text at (0, 0) with no clipping, no padding, no wrapping,
// [DefaultLineHeight] and [DefaultSpaceWidth].
type Options struct {
	// Starting position of the text, in destination pixels. X is
	// also the column the cursor returns to on each line break.
	X, Y int

	// Clip bounds in pixels, measured from the starting position.
	// Zero means unlimited. Glyphs crossing the right or bottom
	// bound are truncated; once the cursor moves past the bottom
	// bound the feed ends.
	MaxWidth, MaxHeight int

	// Vertical advance of a line break. Zero selects
	// [DefaultLineHeight].
	LineHeight int

	// Horizontal advance of the space and no-break space
	// characters. Zero selects [DefaultSpaceWidth].
	SpaceWidth int

	// Minimum advance width for charset glyphs. Glyphs narrower
	// than this are centered within the padded cell. Zero
	// disables padding.
	PadWidth int

	// Line wrapping behavior. Defaults to [WrapNone].
	Wrap WrapMode
}

// Upper bound used in place of explicit clip limits when the
// options leave them at zero.
const unbounded = 0x7FFFFFFF

func (self *Options) maxX() int {
	if self.MaxWidth <= 0 { return unbounded }
	return self.X + self.MaxWidth
}

func (self *Options) maxY() int {
	if self.MaxHeight <= 0 { return unbounded }
	return self.Y + self.MaxHeight
}

func (self *Options) lineHeight() int {
	if self.LineHeight <= 0 { return DefaultLineHeight }
	return self.LineHeight
}

func (self *Options) spaceWidth() int {
	if self.SpaceWidth <= 0 { return DefaultSpaceWidth }
	return self.SpaceWidth
}
