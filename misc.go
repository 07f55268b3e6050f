package tiletxt

// Helper types, constants and small lookup tables.

// The nominal width of a full character cell in pixels. Fullwidth
// glyphs always advance the cursor by exactly this much, and it's
// also the threshold at which a glyph stops being eligible for
// cell alignment.
const FullCellWidth = 10

// Defaults applied by [NewFeed]() and [NewRenderer]() when the
// corresponding option is left at zero.
const (
	DefaultLineHeight = 12
	DefaultSpaceWidth = 3
)

// Feeds can have their line wrapping behavior configured as
// disabled or simple greedy wrapping. See [Options].
type WrapMode uint8

const (
	WrapNone WrapMode = iota // glyphs past the right bound are clipped
	WrapSimple // glyphs past the right bound restart on the next line
)

func (self WrapMode) String() string {
	switch self {
	case WrapNone: return "WrapNone"
	case WrapSimple: return "WrapSimple"
	default:
		return "UnknownWrapMode"
	}
}

// Fixed advances for the unicode space variants, expressed in
// pixels as fractions of [FullCellWidth]. Anything not listed here
// (and not one of the explicit control cases in [Feed.Next]) goes
// through regular charset lookup instead.
func spaceVariantAdvance(codePoint rune) (int, bool) {
	switch codePoint {
	case 0x2002: return FullCellWidth / 2, true // en space
	case 0x2003: return FullCellWidth, true // em space
	case 0x2004: return FullCellWidth / 3, true // three-per-em space
	case 0x2005: return FullCellWidth / 4, true // four-per-em space
	case 0x2006: return FullCellWidth / 6, true // six-per-em space
	case 0x2007: return FullCellWidth/2 + 1, true // figure space
	case 0x2008: return FullCellWidth / 3, true // punctuation space
	case 0x2009: return FullCellWidth / 5, true // thin space
	case 0x200A: return 1, true // hair space
	case 0x3000: return FullCellWidth, true // ideographic space
	default:
		return 0, false
	}
}
