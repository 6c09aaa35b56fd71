package lexicon

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/phonetic"
)

// TranscribeFunc turns a transcription into a space-joined phone sequence.
type TranscribeFunc func(transcription string) (string, error)

// Failure records an entry the builder had to skip.
type Failure struct {
	Key string
	Err error
}

// Builder accumulates dictionary entries. A transcription that fails is
// skipped and recorded; it never stops the batch.
type Builder struct {
	transcribe TranscribeFunc
	dict       *Dictionary
	failures   []Failure
}

// NewBuilder returns a builder that transcribes every entry with transcribe.
func NewBuilder(transcribe TranscribeFunc) *Builder {
	return &Builder{
		transcribe: transcribe,
		dict:       NewDictionary(),
	}
}

// Add transcribes transcription and stores it under key. Blank keys are
// silences and are ignored. The returned error is also recorded.
func (b *Builder) Add(key, transcription string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	phones, err := b.transcribe(transcription)
	if err != nil {
		b.failures = append(b.failures, Failure{Key: key, Err: err})
		return err
	}
	b.dict.Set(key, phones)
	return nil
}

// AddWord stores word under itself, the common case of a words tier whose
// labels are transcriptions.
func (b *Builder) AddWord(word string) error {
	return b.Add(word, word)
}

// Failures returns the skipped entries in the order they were added.
func (b *Builder) Failures() []Failure {
	return b.failures
}

// Err combines the errors of all skipped entries, or returns nil.
func (b *Builder) Err() error {
	var err error
	for _, f := range b.failures {
		err = multierr.Append(err, fmt.Errorf("entry %q: %w", f.Key, f.Err))
	}
	return err
}

// Dictionary returns the entries built so far.
func (b *Builder) Dictionary() *Dictionary {
	return b.dict
}

// PhoneSet returns the union of phones across all entries.
func (b *Builder) PhoneSet() PhoneSet {
	set := make(PhoneSet)
	for _, v := range b.dict.Entries {
		set.Add(strings.Fields(v))
	}
	return set
}

// Validate checks every produced phone against inv. The error lists each
// phone outside inv together with the closest phone inside it.
func (b *Builder) Validate(inv phonetic.Inventory) error {
	missing := b.PhoneSet().Missing(inv)
	if len(missing) == 0 {
		return nil
	}
	hints := make([]string, len(missing))
	for i, p := range missing {
		hints[i] = p + "~" + suggest(p, inv)
	}
	return apperr.ErrInventoryViolation(missing).WithDetail("nearest", strings.Join(hints, " "))
}

// suggest prefers another spelling of the same ARPAbet code and falls back
// to edit distance.
func suggest(phone string, inv phonetic.Inventory) string {
	if tag, err := phonetic.ARPAbetTag(phone); err == nil {
		for _, alt := range phonetic.ARPAbetToIPA[tag] {
			if alt != "" && inv.Contains(alt) {
				return alt
			}
		}
	}
	return Nearest(phone, inv)
}

// Vowels returns the sorted vowel phones of the dictionary.
func (b *Builder) Vowels(tag TagFunc) []string {
	return b.PhoneSet().Vowels(tag)
}
