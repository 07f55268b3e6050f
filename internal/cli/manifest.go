package cli

import "fmt"
import "image"
import "strconv"
import "strings"

import "github.com/BurntSushi/toml"

// A packing manifest, the TOML file listing the charsets to build.
// Example:
//
//	[[charset]]
//	name = "latin"
//	image = "font_latin.png"
//	cell_width = 8
//	cell_height = 12
//	rect = [0, 24, 128, 72]
//	output = "font_latin.bin"
//	min_code_point = "0x0020"
type Manifest struct {
	Charsets []ManifestCharset `toml:"charset"`
}

type ManifestCharset struct {
	Name string `toml:"name"`
	Image string `toml:"image"`
	CellWidth int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
	Rect []int `toml:"rect"` // x, y, width, height within the sheet
	Output string `toml:"output"`
	MinCodePoint string `toml:"min_code_point"` // e.g. "0x0020"; informational for packing, required by preview
}

// Reads and validates a packing manifest.
func LoadManifest(path string) (*Manifest, error) {
	var manifest Manifest
	_, err := toml.DecodeFile(path, &manifest)
	if err != nil { return nil, fmt.Errorf("reading manifest: %w", err) }
	if len(manifest.Charsets) == 0 {
		return nil, fmt.Errorf("manifest %q declares no charsets", path)
	}
	for index, entry := range manifest.Charsets {
		err := entry.validate()
		if err != nil { return nil, fmt.Errorf("manifest charset %d: %w", index, err) }
	}
	return &manifest, nil
}

func (self *ManifestCharset) validate() error {
	if self.Name == "" { return fmt.Errorf("missing name") }
	if self.Image == "" { return fmt.Errorf("missing image") }
	if self.Output == "" { return fmt.Errorf("missing output") }
	if self.CellWidth <= 0 || self.CellHeight <= 0 {
		return fmt.Errorf("invalid cell size %dx%d", self.CellWidth, self.CellHeight)
	}
	if len(self.Rect) != 4 {
		return fmt.Errorf("rect needs exactly 4 values (x, y, width, height)")
	}
	if self.MinCodePoint != "" {
		_, err := parseCodePoint(self.MinCodePoint)
		if err != nil { return err }
	}
	return nil
}

// Returns the sheet region declared by the manifest entry.
func (self *ManifestCharset) Region() image.Rectangle {
	x, y, w, h := self.Rect[0], self.Rect[1], self.Rect[2], self.Rect[3]
	return image.Rect(x, y, x + w, y + h)
}

// Parses a code point given as a decimal or 0x-prefixed string.
func parseCodePoint(str string) (rune, error) {
	value, err := strconv.ParseUint(str, 0, 21)
	if err != nil { return 0, fmt.Errorf("invalid code point %q: %w", str, err) }
	return rune(value), nil
}

// Parses a comma separated code point list. A single value is
// replicated to the expected count; otherwise the counts must
// match.
func parseCodePointList(list string, count int) ([]rune, error) {
	parts := strings.Split(list, ",")
	if len(parts) == 1 && count > 1 {
		repeated := make([]string, count)
		for index := range repeated { repeated[index] = parts[0] }
		parts = repeated
	}
	if len(parts) != count {
		return nil, fmt.Errorf("%d code points given for %d charsets", len(parts), count)
	}
	codePoints := make([]rune, len(parts))
	for index, part := range parts {
		codePoint, err := parseCodePoint(strings.TrimSpace(part))
		if err != nil { return nil, err }
		codePoints[index] = codePoint
	}
	return codePoints, nil
}
