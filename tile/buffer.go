package tile

import "fmt"

// Each tile is 8x8 pixels at 4 bits per pixel, 32 bytes.
const BytesPerTile = 32

// The pitch shift used by [NewBuffer]() when 0 is given,
// equivalent to 32 tiles per row.
const DefaultPitchShift = 5

// A Buffer is a 4-bit-per-pixel destination organized as a grid of
// 8x8 pixel tiles, the native background format of the target
// hardware. Pixels are addressed in screen coordinates and routed
// to the right tile internally: tile (x>>3, y>>3), then sub-tile
// pixel (x&7, y&7), two pixels per byte with the even-x pixel in
// the low nibble.
//
// The row pitch is expressed as a shift, so that tiles per row is
// always a power of two (1 << pitchShift). A buffer never grows:
// the caller supplies the backing bytes and is responsible for
// keeping every draw within them. Coordinates that fall outside
// the backing data are a contract violation and will panic.
type Buffer struct {
	data []byte
	pitchShift uint8
}

// Creates a [Buffer] over the given backing bytes. A pitchShift of
// 0 selects [DefaultPitchShift]. The length of data must be a
// multiple of [BytesPerTile]; anything else indicates a broken
// destination geometry and makes the function panic.
func NewBuffer(data []byte, pitchShift uint8) *Buffer {
	if len(data) == 0 { panic("can't create a tile buffer without backing data") }
	if len(data)%BytesPerTile != 0 {
		panic(fmt.Sprintf("tile buffer data length %d is not a multiple of %d", len(data), BytesPerTile))
	}
	if pitchShift == 0 { pitchShift = DefaultPitchShift }
	return &Buffer{ data: data, pitchShift: pitchShift }
}

// Creates a [Buffer] with fresh backing data able to hold at least
// the given pixel area. The width is rounded up to the buffer's
// power-of-two tile pitch, the height to the next tile boundary.
func NewBufferForArea(width, height int, pitchShift uint8) *Buffer {
	if pitchShift == 0 { pitchShift = DefaultPitchShift }
	tilesPerRow := 1 << pitchShift
	if width > tilesPerRow*8 {
		panic(fmt.Sprintf("width %d exceeds the %d pixels addressable at pitch shift %d", width, tilesPerRow*8, pitchShift))
	}
	tileRows := (height + 7) >> 3
	if tileRows == 0 { tileRows = 1 }
	data := make([]byte, tileRows*tilesPerRow*BytesPerTile)
	return &Buffer{ data: data, pitchShift: pitchShift }
}

// Returns the buffer's backing bytes. The layout is ready for
// direct upload as hardware tile data.
func (self *Buffer) Data() []byte { return self.data }

// Returns the number of tiles per row (1 << pitchShift).
func (self *Buffer) TilesPerRow() int { return 1 << self.pitchShift }

// Returns the number of tile rows the backing data can hold.
func (self *Buffer) TileRows() int {
	return len(self.data)/(self.TilesPerRow()*BytesPerTile)
}

// Writes the given 4-bit color index at pixel (x, y). Only the low
// 4 bits of colorIndex are used. The other pixel sharing the byte
// is preserved.
//
// Passing coordinates outside the backing data is a contract
// violation; the method panics rather than corrupt memory.
func (self *Buffer) SetPixel(x, y int, colorIndex uint8) {
	offset := self.pixelOffset(x, y)
	if x&1 == 0 {
		self.data[offset] = (self.data[offset] & 0xF0) | (colorIndex & 0x0F)
	} else {
		self.data[offset] = (self.data[offset] & 0x0F) | (colorIndex << 4)
	}
}

// Returns the 4-bit color index stored at pixel (x, y).
func (self *Buffer) Pixel(x, y int) uint8 {
	offset := self.pixelOffset(x, y)
	if x&1 == 0 { return self.data[offset] & 0x0F }
	return self.data[offset] >> 4
}

func (self *Buffer) pixelOffset(x, y int) int {
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("negative pixel coordinates (%d, %d)", x, y))
	}
	tileIndex := ((y >> 3) << self.pitchShift) | (x >> 3)
	offset := tileIndex*BytesPerTile + (y&0b111)*4 + ((x & 0b111) >> 1)
	if (x>>3) >= self.TilesPerRow() || offset >= len(self.data) {
		panic(fmt.Sprintf("pixel (%d, %d) outside the tile buffer", x, y))
	}
	return offset
}
