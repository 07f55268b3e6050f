package charset

import "os"
import "errors"
import "path/filepath"
import "testing"

func TestLibraryBasics(t *testing.T) {
	lib := NewLibrary()
	if lib.Size() != 0 { t.Fatal("new libraries start empty") }

	data := encodeOrFail(t, []Glyph{{ SizeX: 1, SizeY: 1, Rows: []uint16{1} }})
	err := lib.ParseCharsetBytes("latin", 'a', 'a', data)
	if err != nil { t.Fatal(err) }
	if !lib.HasCharset("latin") { t.Fatal("expected the charset to be registered") }
	if lib.GetCharset("latin") == nil { t.Fatal("expected to retrieve the charset") }
	if lib.GetCharset("missing") != nil { t.Fatal("expected nil for unknown names") }

	err = lib.ParseCharsetBytes("latin", 'a', 'a', data)
	if !errors.Is(err, ErrAlreadyLoaded) { t.Fatalf("expected ErrAlreadyLoaded, got %v", err) }
}

func TestLibraryOrder(t *testing.T) {
	lib := NewLibrary()
	data := encodeOrFail(t, []Glyph{{}})
	for _, name := range []string{"first", "second", "third"} {
		err := lib.ParseCharsetBytes(name, 'a', 'a', data)
		if err != nil { t.Fatal(err) }
	}
	all := lib.All()
	if len(all) != 3 { t.Fatalf("expected 3 charsets, got %d", len(all)) }
	for index, name := range []string{"first", "second", "third"} {
		if all[index].Name() != name {
			t.Fatalf("expected %q at position %d, got %q", name, index, all[index].Name())
		}
	}

	visited := []string{}
	err := lib.EachCharset(func(cs *Charset) error {
		visited = append(visited, cs.Name())
		return nil
	})
	if err != nil { t.Fatal(err) }
	if len(visited) != 3 || visited[0] != "first" || visited[2] != "third" {
		t.Fatalf("unexpected iteration order %v", visited)
	}
}

func TestLibraryParseFromFile(t *testing.T) {
	data := encodeOrFail(t, []Glyph{{ SizeX: 2, SizeY: 1, Rows: []uint16{0b11} }})
	path := filepath.Join(t.TempDir(), "tiny_latin.bin")
	err := os.WriteFile(path, data, 0o644)
	if err != nil { t.Fatal(err) }

	lib := NewLibrary()
	name, err := lib.ParseCharsetFrom(path, 'a', 'a')
	if err != nil { t.Fatal(err) }
	if name != "tiny_latin" { t.Fatalf("expected name derived from the file, got %q", name) }
	cs := lib.GetCharset("tiny_latin")
	if cs == nil { t.Fatal("expected the charset to be loaded") }
	if cs.Glyph('a').SizeX != 2 { t.Fatal("unexpected glyph data after the file round trip") }
}
