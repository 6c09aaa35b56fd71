// Package align groups phoneme intervals under the word intervals that
// contain them.
package align

import "strings"

// Interval is a labeled time span [MinTime, MaxTime) in seconds.
type Interval struct {
	MinTime float64 `validate:"gte=0"`
	MaxTime float64 `validate:"gtefield=MinTime"`
	Label   string
}

// Duration returns MaxTime - MinTime.
func (iv Interval) Duration() float64 {
	return iv.MaxTime - iv.MinTime
}

// Contains reports whether other lies fully inside iv. Shared bounds count
// as inside.
func (iv Interval) Contains(other Interval) bool {
	return other.MinTime >= iv.MinTime && other.MaxTime <= iv.MaxTime
}

// Word is a word interval with the phoneme intervals it contains, in
// their original order.
type Word struct {
	Interval
	Phonemes []Interval
}

// Align attaches every phoneme to each word containing it. Words and
// phonemes with blank labels are silences and are skipped.
func Align(words, phonemes []Interval) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.Label) == "" {
			continue
		}
		word := Word{Interval: w}
		for _, p := range phonemes {
			if strings.TrimSpace(p.Label) == "" {
				continue
			}
			if w.Contains(p) {
				word.Phonemes = append(word.Phonemes, p)
			}
		}
		out = append(out, word)
	}
	return out
}
