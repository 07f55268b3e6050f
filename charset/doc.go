// charset defines the immutable glyph data sources consumed by the
// tiletxt layout engine: each [Charset] claims a contiguous range of
// unicode code points and owns a packed blob of glyph headers and
// 1-bit bitmap rows.
//
// Charsets are typically produced by the tiletxtpack tool from font
// sprite sheets, loaded in bulk through a [Library], and passed to
// the layout engine as an ordered registry where declaration order
// sets lookup priority.
package charset
