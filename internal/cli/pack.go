package cli

import "fmt"
import "image"
import "os"
import "path/filepath"

import _ "image/png"

import "github.com/spf13/cobra"

import "github.com/tinne26/tiletxt/charset"
import "github.com/tinne26/tiletxt/internal/sheet"

func (self *CLI) packCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use: "pack <manifest.toml>",
		Short: "Pack the charsets declared in a manifest",
		Long: "Pack reads a TOML manifest declaring font sprite sheets and\n" +
			"writes one packed charset binary per entry, ready both for\n" +
			"embedding in a ROM build and for loading with charset.Library.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return self.runPack(args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "directory for the output binaries (default: manifest directory)")
	return cmd
}

func (self *CLI) runPack(manifestPath, outDir string) error {
	manifest, err := LoadManifest(manifestPath)
	if err != nil { return err }
	baseDir := filepath.Dir(manifestPath)
	if outDir == "" { outDir = baseDir }

	for _, entry := range manifest.Charsets {
		tracker := newProgress(self.logger)
		imagePath := filepath.Join(baseDir, entry.Image)
		self.logger.Debug("reading image", "charset", entry.Name, "path", imagePath)
		img, err := loadImage(imagePath)
		if err != nil { return fmt.Errorf("charset %q: %w", entry.Name, err) }

		glyphs, err := sheet.Scan(img, entry.CellWidth, entry.CellHeight, entry.Region())
		if err != nil { return fmt.Errorf("charset %q: %w", entry.Name, err) }

		data, err := charset.Encode(glyphs)
		if err != nil { return fmt.Errorf("charset %q: %w", entry.Name, err) }

		outPath := filepath.Join(outDir, entry.Output)
		err = os.WriteFile(outPath, data, 0o644)
		if err != nil { return fmt.Errorf("charset %q: %w", entry.Name, err) }

		headerBytes := len(glyphs)*charset.HeaderSize
		tracker.done("packed charset",
			"charset", entry.Name,
			"glyphs", len(glyphs),
			"headerBytes", headerBytes,
			"bitmapBytes", len(data) - headerBytes,
			"output", outPath,
		)
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil { return nil, fmt.Errorf("decoding %q: %w", path, err) }
	return img, nil
}
