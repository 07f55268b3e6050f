package cli

import "os"
import "image"
import "path/filepath"
import "testing"

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charsets.toml")
	contents := `
[[charset]]
name = "latin"
image = "font_latin.png"
cell_width = 8
cell_height = 12
rect = [0, 24, 128, 72]
output = "font_latin.bin"
min_code_point = "0x0020"

[[charset]]
name = "kana"
image = "font_kana.png"
cell_width = 12
cell_height = 12
rect = [0, 0, 160, 176]
output = "font_kana.bin"
`
	err := os.WriteFile(path, []byte(contents), 0o644)
	if err != nil { t.Fatal(err) }

	manifest, err := LoadManifest(path)
	if err != nil { t.Fatal(err) }
	if len(manifest.Charsets) != 2 { t.Fatalf("expected 2 charsets, got %d", len(manifest.Charsets)) }

	latin := manifest.Charsets[0]
	if latin.Name != "latin" || latin.CellWidth != 8 || latin.CellHeight != 12 {
		t.Fatalf("unexpected entry %+v", latin)
	}
	if latin.Region() != image.Rect(0, 24, 128, 96) {
		t.Fatalf("unexpected region %v", latin.Region())
	}
}

func TestLoadManifestRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		contents string
	}{
		{"empty", ``},
		{"missing name", "[[charset]]\nimage = \"a.png\"\noutput = \"a.bin\"\ncell_width = 8\ncell_height = 8\nrect = [0, 0, 8, 8]\n"},
		{"bad rect", "[[charset]]\nname = \"a\"\nimage = \"a.png\"\noutput = \"a.bin\"\ncell_width = 8\ncell_height = 8\nrect = [0, 0]\n"},
		{"bad code point", "[[charset]]\nname = \"a\"\nimage = \"a.png\"\noutput = \"a.bin\"\ncell_width = 8\ncell_height = 8\nrect = [0, 0, 8, 8]\nmin_code_point = \"xyz\"\n"},
	}
	for _, test := range tests {
		path := filepath.Join(t.TempDir(), "charsets.toml")
		err := os.WriteFile(path, []byte(test.contents), 0o644)
		if err != nil { t.Fatal(err) }
		_, err = LoadManifest(path)
		if err == nil { t.Fatalf("%s: expected an error", test.name) }
	}
}

func TestParseCodePointList(t *testing.T) {
	codePoints, err := parseCodePointList("0x20", 3)
	if err != nil { t.Fatal(err) }
	if len(codePoints) != 3 || codePoints[0] != 0x20 || codePoints[2] != 0x20 {
		t.Fatalf("expected a replicated single value, got %v", codePoints)
	}

	codePoints, err = parseCodePointList("0x3041, 0xFF01, 65", 3)
	if err != nil { t.Fatal(err) }
	if codePoints[0] != 0x3041 || codePoints[1] != 0xFF01 || codePoints[2] != 'A' {
		t.Fatalf("unexpected values %v", codePoints)
	}

	_, err = parseCodePointList("0x20, 0x30", 3)
	if err == nil { t.Fatal("expected a count mismatch error") }
}
