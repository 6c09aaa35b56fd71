package lexicon

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/layaalk/PVI-AU/phonetic"
)

// TagFunc returns the ARPAbet code of a phone.
type TagFunc func(phone string) (string, error)

// IdentityTag treats the phone as its own code. It is the TagFunc for
// dictionaries that are already in ARPAbet.
func IdentityTag(phone string) (string, error) {
	return phone, nil
}

// PhoneSet is the set of distinct phones produced by a dictionary.
type PhoneSet map[string]struct{}

// Add inserts every whitespace-separated phone of seq.
func (s PhoneSet) Add(seq []string) {
	for _, p := range seq {
		s[p] = struct{}{}
	}
}

// Sorted returns the phones in byte order.
func (s PhoneSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Missing returns the phones not in inv, sorted.
func (s PhoneSet) Missing(inv phonetic.Inventory) []string {
	var out []string
	for _, p := range s.Sorted() {
		if !inv.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Vowels returns the sorted subset of phones whose tag names a vowel.
// Phones without a tag are not vowels.
func (s PhoneSet) Vowels(tag TagFunc) []string {
	out := []string{}
	for _, p := range s.Sorted() {
		code, err := tag(p)
		if err != nil {
			continue
		}
		if phonetic.IsVowelTag(code) {
			out = append(out, p)
		}
	}
	return out
}

// WriteVowelList writes phones as a JSON array.
func WriteVowelList(w io.Writer, phones []string) error {
	if phones == nil {
		phones = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(phones)
}

// WriteVowelFile writes phones as a JSON array to path.
func WriteVowelFile(path string, phones []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteVowelList(f, phones); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadVowelList reads a JSON array of phones.
func ReadVowelList(r io.Reader) ([]string, error) {
	var phones []string
	if err := json.NewDecoder(r).Decode(&phones); err != nil {
		return nil, fmt.Errorf("decode vowel list: %w", err)
	}
	return phones, nil
}

// ReadVowelFile reads a JSON array of phones from path.
func ReadVowelFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVowelList(f)
}
