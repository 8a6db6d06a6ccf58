package hexiter

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/SLASH2NL/hexiter/arrays"
	"github.com/SLASH2NL/hexiter/internal/lexer"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Key names a value in a Table.
type Key string

// Table holds byte strings read from a YAML mapping of keys to hex text.
// Values may use the separators the CLI accepts, e.g. "de:ad be-ef" or "0xdead".
type Table struct {
	Name    string
	entries map[Key][]byte
}

// TableFromFs reads a single table file from the fs.
func TableFromFs(fs afero.Fs, file string, opts ...DecoderOption) (*Table, error) {
	name, err := defaultMatcher.TableName(filepath.Base(file))
	if err != nil {
		return nil, fmt.Errorf("unable to name table %q: %w", file, err)
	}

	return readTableFile(fs, name, file, opts...)
}

// TablesFromFs reads all table files that match the default FileMatcher from the fs.
func TablesFromFs(fs afero.Fs, opts ...DecoderOption) (map[string]*Table, error) {
	return TablesFromFsAndMatcher(fs, defaultMatcher, opts...)
}

func TablesFromFsAndMatcher(fs afero.Fs, matcher FileMatcher, opts ...DecoderOption) (map[string]*Table, error) {
	// Read all files from the directory.
	entries, err := afero.ReadDir(fs, ".")
	if err != nil {
		return nil, fmt.Errorf("unable to read fs: %w", err)
	}

	files := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !matcher.IsMatch(entry.Name()) {
			continue
		}

		name, err := matcher.TableName(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("unable to name table %q: %w", entry.Name(), err)
		}

		if _, ok := files[name]; ok {
			return nil, fmt.Errorf("duplicate table file %q for table %s", entry.Name(), name)
		}

		files[name] = entry.Name()
	}

	tables := make(map[string]*Table, len(files))
	for name, file := range files {
		t, err := readTableFile(fs, name, file, opts...)
		if err != nil {
			return nil, err
		}

		tables[name] = t
	}

	return tables, nil
}

func readTableFile(fs afero.Fs, name, file string, opts ...DecoderOption) (*Table, error) {
	f, err := fs.Open(file)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %q: %w", file, err)
	}
	defer f.Close()

	t, err := readTable(name, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to read table %q: %w", file, err)
	}

	return t, nil
}

func readTable(name string, content io.Reader, opts ...DecoderOption) (*Table, error) {
	var rawValues map[string]string

	err := yaml.NewDecoder(content).Decode(&rawValues)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode yaml: %w", err)
	}

	t := &Table{
		Name:    name,
		entries: make(map[Key][]byte, len(rawValues)),
	}

	for key, raw := range rawValues {
		compacted, err := lexer.Compact(raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		value, err := DecodeString(compacted.Digits, opts...)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		t.entries[Key(key)] = value
	}

	return t, nil
}

// Bytes returns the value stored under key.
func (t *Table) Bytes(key Key) ([]byte, bool) {
	b, ok := t.entries[key]
	return b, ok
}

// Cursor returns a fresh cursor over the value stored under key.
func (t *Table) Cursor(key Key) (*SliceCursor[byte], bool) {
	b, ok := t.entries[key]
	if !ok {
		return nil, false
	}

	return NewSliceCursor(b), true
}

// Keys returns the keys of the table in sorted order.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Raw returns the values as lower-case hex without separators.
func (t *Table) Raw() map[string]string {
	raw := make(map[string]string, len(t.entries))
	for key, value := range t.entries {
		raw[string(key)] = arrays.HexString(value)
	}

	return raw
}
