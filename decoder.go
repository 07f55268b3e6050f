package tiletxt

// Definition of the private type used to iterate the text buffer
// as a sequence of unicode code points. Decoding is done by hand
// instead of going through unicode/utf8: the engine must accept
// malformed input without ever reading past the buffer end, and
// the fallback values for truncated sequences must stay stable.

type codePointDecoder struct{ index int }

// Decodes the next code point and advances the decoder. Returns -1
// once the end of the text has been reached; the decoder stays at
// the end afterwards, so further calls keep returning -1.
func (self *codePointDecoder) Next(text []byte) rune {
	codePoint, newIndex := decodeCodePoint(text, self.index)
	self.index = newIndex
	return codePoint
}

// Like [codePointDecoder.Next], but without advancing the decoder.
func (self *codePointDecoder) PeekNext(text []byte) rune {
	codePoint, _ := decodeCodePoint(text, self.index)
	return codePoint
}

// Decodes one code point at the given index and returns it along
// with the index right after it. Indices at or past the end of the
// text yield -1 and leave the index untouched.
//
// There's no well-formedness validation: each expected continuation
// byte that's actually present contributes its low 6 bits, and a
// sequence cut short by the end of the buffer simply stops there.
// Whatever comes out is deterministic, which is all the layout
// engine needs from garbage input.
func decodeCodePoint(text []byte, index int) (rune, int) {
	if index >= len(text) { return -1, index }
	lead := text[index]
	index += 1

	var codePoint rune
	var continuations int
	switch {
	case lead&0b1000_0000 == 0: // ascii
		return rune(lead), index
	case lead&0b1110_0000 == 0b1100_0000: // 2-byte sequence
		codePoint, continuations = rune(lead & 0b0001_1111), 1
	case lead&0b1111_0000 == 0b1110_0000: // 3-byte sequence
		codePoint, continuations = rune(lead & 0b0000_1111), 2
	case lead&0b1111_1000 == 0b1111_0000: // 4-byte sequence
		codePoint, continuations = rune(lead & 0b0000_0111), 3
	default: // stray continuation or invalid lead byte
		return rune(lead & 0b0011_1111), index
	}

	for i := 0; i < continuations; i++ {
		if index >= len(text) { break } // missing bytes contribute nothing
		codePoint = (codePoint << 6) | rune(text[index] & 0b0011_1111)
		index += 1
	}
	return codePoint, index
}
