package charset

import "os"
import "errors"
import "strings"
import "path/filepath"

// Returned by [Library.AddCharset]() and the Parse* methods when
// a charset with the same name is already present.
var ErrAlreadyLoaded = errors.New("charset already loaded")

// A collection of charsets accessible by name.
//
// The goal of a Library is to make it easy to load packed charset
// files in bulk and keep them all in a single place. Insertion
// order is preserved: [Library.All]() returns the charsets in the
// order they were added, which is also the priority order expected
// by the layout engine (first claimed range wins).
type Library struct {
	charsets map[string]*Charset
	order []*Charset
}

// Creates a new, empty charset library.
func NewLibrary() *Library {
	return &Library{
		charsets: make(map[string]*Charset),
	}
}

// Returns the current number of charsets in the library.
func (self *Library) Size() int { return len(self.order) }

// Finds out whether a charset with the given name exists in the library.
func (self *Library) HasCharset(name string) bool {
	_, found := self.charsets[name]
	return found
}

// Returns the charset with the given name, or nil if not found.
func (self *Library) GetCharset(name string) *Charset {
	charset, found := self.charsets[name]
	if found { return charset }
	return nil
}

// Returns the library's charsets in insertion order. The result
// can be passed directly to the layout engine as its registry.
// The returned slice must not be modified.
func (self *Library) All() []*Charset { return self.order }

// Adds an already constructed charset to the library, keyed by
// its name. If a charset with the same name has already been
// loaded, [ErrAlreadyLoaded] will be returned.
func (self *Library) AddCharset(charset *Charset) error {
	_, found := self.charsets[charset.Name()]
	if found { return ErrAlreadyLoaded }
	self.charsets[charset.Name()] = charset
	self.order = append(self.order, charset)
	return nil
}

// Returns the name of the added charset and any possible error.
// If error == nil, the charset name will be non-empty.
//
// The name is derived from the file name, without directories or
// the .bin extension. Since packed charset files don't record the
// code point range they cover, the claimed range must be supplied
// by the caller, matching the packing manifest.
func (self *Library) ParseCharsetFrom(path string, minCodePoint, maxCodePoint rune) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil { return "", err }
	name := strings.TrimSuffix(filepath.Base(path), ".bin")
	charset, err := New(name, minCodePoint, maxCodePoint, data)
	if err != nil { return name, err }
	return name, self.AddCharset(charset)
}

// Similar to [Library.ParseCharsetFrom], but taking the charset
// name and packed bytes directly. The bytes must not be modified
// while the charset is in use.
func (self *Library) ParseCharsetBytes(name string, minCodePoint, maxCodePoint rune, data []byte) error {
	charset, err := New(name, minCodePoint, maxCodePoint, data)
	if err != nil { return err }
	return self.AddCharset(charset)
}

// Calls the given function for each charset in the library, in
// insertion order. Stops and returns the first non-nil error.
func (self *Library) EachCharset(fn func(*Charset) error) error {
	for _, charset := range self.order {
		err := fn(charset)
		if err != nil { return err }
	}
	return nil
}
