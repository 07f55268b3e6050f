package cli

import "fmt"
import "image"
import "image/png"
import "os"

import "github.com/spf13/cobra"
import "golang.org/x/image/draw"

import "github.com/tinne26/tiletxt"
import "github.com/tinne26/tiletxt/charset"
import "github.com/tinne26/tiletxt/tile"

func (self *CLI) previewCommand() *cobra.Command {
	var text string
	var minCodePoint string
	var maxCodePoint string
	var outPath string
	var scale int
	var wrap bool
	var padWidth int

	cmd := &cobra.Command{
		Use: "preview <charset.bin> [more-charsets.bin...]",
		Short: "Render a text sample from packed charsets to a PNG",
		Long: "Preview loads one or more packed charset binaries, lays out the\n" +
			"sample text exactly like the engine would, and writes the resulting\n" +
			"tile buffer as a zoomed PNG. Since packed charsets don't record\n" +
			"their code point ranges, pass one --min/--max pair per charset,\n" +
			"comma separated when loading several.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return self.runPreview(args, text, minCodePoint, maxCodePoint, outPath, scale, wrap, padWidth)
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "Hello, world!", "sample text to render")
	cmd.Flags().StringVar(&minCodePoint, "min", "0x0020", "first claimed code point per charset, comma separated")
	cmd.Flags().StringVar(&maxCodePoint, "max", "0x007F", "last claimed code point per charset, comma separated")
	cmd.Flags().StringVarP(&outPath, "out", "o", "preview.png", "output PNG path")
	cmd.Flags().IntVarP(&scale, "scale", "s", 4, "integer zoom factor")
	cmd.Flags().BoolVarP(&wrap, "wrap", "w", false, "enable simple line wrapping")
	cmd.Flags().IntVar(&padWidth, "pad", 0, "minimum glyph advance width")
	return cmd
}

func (self *CLI) runPreview(paths []string, text, minList, maxList, outPath string, scale int, wrap bool, padWidth int) error {
	if scale < 1 { return fmt.Errorf("scale must be at least 1, got %d", scale) }

	minima, err := parseCodePointList(minList, len(paths))
	if err != nil { return err }
	maxima, err := parseCodePointList(maxList, len(paths))
	if err != nil { return err }

	library := charset.NewLibrary()
	for index, path := range paths {
		name, err := library.ParseCharsetFrom(path, minima[index], maxima[index])
		if err != nil { return err }
		loaded := library.GetCharset(name)
		self.logger.Debug("loaded charset",
			"name", name,
			"glyphs", loaded.GlyphCount(),
			"range", fmt.Sprintf("U+%04X..U+%04X", loaded.MinCodePoint(), loaded.MaxCodePoint()),
		)
	}

	renderer := tiletxt.NewRenderer()
	renderer.SetCharsets(library.All()...)
	renderer.SetPadWidth(padWidth)
	if wrap { renderer.SetWrap(tiletxt.WrapSimple) }

	const margin = 2
	const maxPreviewWidth = 240
	var width, height int
	if wrap {
		_, height = renderer.Measure(text, maxPreviewWidth)
		width = maxPreviewWidth
	} else {
		width, height = renderer.Measure(text, 0)
	}
	width += margin*2
	height += margin*2

	// lay the text out in a buffer just big enough for it
	pitchShift := uint8(1)
	for (1 << pitchShift)*8 < width { pitchShift++ }
	buffer := tile.NewBufferForArea(width, height, pitchShift)
	if wrap {
		renderer.DrawInBox(buffer, text, margin, margin, maxPreviewWidth, 0)
	} else {
		renderer.Draw(buffer, text, margin, margin)
	}

	// zoom with a nearest neighbor scale so pixels stay crisp
	tracker := newProgress(self.logger)
	src := buffer.Image(width, height, tile.GrayPalette())
	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	file, err := os.Create(outPath)
	if err != nil { return err }
	defer file.Close()
	err = png.Encode(file, dst)
	if err != nil { return fmt.Errorf("encoding %q: %w", outPath, err) }
	tracker.done("wrote preview", "output", outPath, "size", fmt.Sprintf("%dx%d", width*scale, height*scale))
	return nil
}
