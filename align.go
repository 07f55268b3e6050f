package tiletxt

// Glyphs narrower than the full cell can be placed in different
// ways within it depending on their code point. East asian scripts
// draw most characters centered in a double-wide cell, but paired
// punctuation hugs the text it wraps: opening brackets stick to
// the right of their cell, closing brackets to the left.
//
// See [GetCellAlign]().
type CellAlign uint8

const (
	CellNormal CellAlign = iota // plain left-to-right advance, no cell
	CellLeft // glyph at the left edge of a full-width cell
	CellRight // glyph at the right edge of a full-width cell
	CellCenter // glyph centered in a full-width cell
)

func (self CellAlign) String() string {
	switch self {
	case CellNormal: return "CellNormal"
	case CellLeft: return "CellLeft"
	case CellRight: return "CellRight"
	case CellCenter: return "CellCenter"
	default:
		return "UnknownCellAlign"
	}
}

// Classifies a code point into its [CellAlign]. The classification
// is total: any value outside the explicitly handled east asian
// ranges, including the negative end-of-text sentinel, comes back
// as [CellNormal].
//
// The handled ranges are CJK symbols and punctuation (U+3000..303E),
// hiragana and katakana (U+3040..30FF) and the fullwidth forms
// (U+FF00..FF60). Within those, paired brackets and quotes get the
// directional alignment matching their open/close role; everything
// else is centered.
func GetCellAlign(codePoint rune) CellAlign {
	switch {
	case codePoint < 0x3000:
		return CellNormal
	case codePoint <= 0x303E: // cjk symbols and punctuation
		// (U+303F, the ideographic half fill space, is a narrow
		// character despite living in this block)
		switch codePoint {
		case 0x3008, 0x300A, 0x300C, 0x300E, 0x3010, 0x3014, 0x3016, 0x3018, 0x301A, 0x301D:
			return CellRight // opening brackets and quotes
		case 0x3009, 0x300B, 0x300D, 0x300F, 0x3011, 0x3015, 0x3017, 0x3019, 0x301B, 0x301E, 0x301F:
			return CellLeft // closing brackets and quotes
		default:
			return CellCenter
		}
	case codePoint == 0x303F:
		return CellNormal
	case codePoint <= 0x30FF: // hiragana and katakana
		return CellCenter
	case codePoint < 0xFF00:
		return CellNormal
	case codePoint <= 0xFF60: // fullwidth forms
		switch codePoint {
		case 0xFF08, 0xFF3B, 0xFF5B, 0xFF5F:
			return CellRight // fullwidth opening brackets
		case 0xFF09, 0xFF3D, 0xFF5D, 0xFF60:
			return CellLeft // fullwidth closing brackets
		default:
			return CellCenter
		}
	default:
		return CellNormal
	}
}
