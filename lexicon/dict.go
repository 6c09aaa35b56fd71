package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dictionary maps a word, as written in the annotation, to its phone
// sequence serialized space-joined. Keys are unique; the last Set wins.
type Dictionary struct {
	Entries map[string]string
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string]string),
	}
}

// Set stores the pronunciation of key, replacing any earlier one.
func (d *Dictionary) Set(key, phones string) {
	d.Entries[key] = phones
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.Entries)
}

// Lookup returns the pronunciation of key.
func (d *Dictionary) Lookup(key string) (string, bool) {
	v, ok := d.Entries[key]
	return v, ok
}

// Phones returns the phone sequence of key.
func (d *Dictionary) Phones(key string) ([]string, bool) {
	v, ok := d.Entries[key]
	if !ok {
		return nil, false
	}
	return strings.Fields(v), true
}

// Keys returns all keys in byte order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads a pronunciation dictionary from a tab-separated file.
// Format: word<TAB>phone1 phone2 phone3 ...
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 tab-separated fields, got %d", lineNum, len(parts))
		}
		d.Set(parts[0], strings.Join(strings.Fields(parts[1]), " "))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// WriteTo writes the dictionary as TSV sorted by key.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, k := range d.Keys() {
		c, err := fmt.Fprintf(bw, "%s\t%s\n", k, d.Entries[k])
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// WriteFile writes the dictionary to path.
func (d *Dictionary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
