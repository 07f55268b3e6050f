// tile provides the packed 4-bits-per-pixel, 8x8-tile destination
// buffer that tiletxt rasterizes glyphs into. The byte layout of a
// [Buffer] matches the target hardware's background tile format,
// so the backing data can be block-copied to tile memory as is.
package tile
