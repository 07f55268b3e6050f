// tiletxt is a package for laying out and rasterizing bitmap text
// into 4-bits-per-pixel tile buffers, the background format used
// by retro handheld hardware. It's the host-side counterpart of a
// small console text engine: the same packed charset files that
// get embedded in a ROM can be loaded, laid out and previewed
// with it.
//
// Common usage depends only on a couple types. First, load your
// packed charsets:
//
//	lib := charset.NewLibrary()
//	_, err := lib.ParseCharsetFrom("font_latin.bin", 0x20, 0x7F)
//	if err != nil { ... }
//
// Then create a [Renderer], give it the charsets and draw into a
// [tile.Buffer]:
//
//	renderer := tiletxt.NewRenderer()
//	renderer.SetCharsets(lib.All()...)
//	renderer.Draw(buffer, "Hello world!", x, y)
//
// Text is consumed as utf8. Malformed input never fails: the
// decoder produces a deterministic garbage code point from the
// bytes available and moves on, and code points no charset claims
// simply don't render. The engine is strictly single-pass and
// single-threaded; charsets are immutable and can be shared
// freely between renderers and feeds.
package tiletxt
