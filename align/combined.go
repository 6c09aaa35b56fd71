package align

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/layaalk/PVI-AU/internal/apperr"
)

// Record holds the word and phoneme intervals of one annotation file.
type Record struct {
	Words    []Interval `validate:"dive"`
	Phonemes []Interval `validate:"dive"`
}

// Align aligns the record's phonemes to its words.
func (r Record) Align() []Word {
	return Align(r.Words, r.Phonemes)
}

// Combined maps an annotation file path to its intervals.
type Combined map[string]Record

// Keys returns the file paths in byte order.
func (c Combined) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type wordJSON struct {
	MinTime float64 `json:"min_time"`
	MaxTime float64 `json:"max_time"`
	Word    string  `json:"word"`
}

type phonemeJSON struct {
	MinTime float64 `json:"min_time"`
	MaxTime float64 `json:"max_time"`
	Phoneme string  `json:"phoneme"`
}

type recordJSON struct {
	Words    []wordJSON    `json:"words"`
	Phonemes []phonemeJSON `json:"phonemes"`
}

// MarshalJSON writes the record with "word" and "phoneme" label keys.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		Words:    make([]wordJSON, len(r.Words)),
		Phonemes: make([]phonemeJSON, len(r.Phonemes)),
	}
	for i, w := range r.Words {
		out.Words[i] = wordJSON{MinTime: w.MinTime, MaxTime: w.MaxTime, Word: w.Label}
	}
	for i, p := range r.Phonemes {
		out.Phonemes[i] = phonemeJSON{MinTime: p.MinTime, MaxTime: p.MaxTime, Phoneme: p.Label}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the layout written by MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Words = make([]Interval, len(in.Words))
	for i, w := range in.Words {
		r.Words[i] = Interval{MinTime: w.MinTime, MaxTime: w.MaxTime, Label: w.Word}
	}
	r.Phonemes = make([]Interval, len(in.Phonemes))
	for i, p := range in.Phonemes {
		r.Phonemes[i] = Interval{MinTime: p.MinTime, MaxTime: p.MaxTime, Label: p.Phoneme}
	}
	return nil
}

var validate = validator.New()

// Validate checks that every interval has 0 <= MinTime <= MaxTime.
func (c Combined) Validate() error {
	for _, k := range c.Keys() {
		if err := validate.Struct(c[k]); err != nil {
			return apperr.ErrInvalidInput("invalid interval", err).WithDetail("file", k)
		}
	}
	return nil
}

// WriteCombined writes c as indented JSON.
func WriteCombined(w io.Writer, c Combined) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

// ReadCombined decodes and validates a combined-intervals file.
func ReadCombined(r io.Reader) (Combined, error) {
	var c Combined
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, apperr.ErrInvalidInput("malformed combined intervals", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveCombined writes c to path.
func SaveCombined(path string, c Combined) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCombined(f, c); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// LoadCombined reads the combined-intervals file at path.
func LoadCombined(path string) (Combined, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := ReadCombined(f)
	if err != nil {
		return nil, apperr.InFile(err, path)
	}
	return c, nil
}
