// Package prosody selects vowel pairs from aligned words and computes their
// pairwise variability index (PVI).
package prosody

import (
	"github.com/layaalk/PVI-AU/align"
	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/lexicon"
	"github.com/layaalk/PVI-AU/phonetic"
)

// VowelSet is the set of phoneme labels counted as vowels.
type VowelSet = phonetic.Inventory

// DefaultVowels returns the standard IPA vowel set.
func DefaultVowels() VowelSet {
	return phonetic.IPAVowels
}

// LoadVowelSet reads a JSON list of vowels, such as the vowels.json written
// during data preparation. Entries are mapped back to IPA.
func LoadVowelSet(path string) (VowelSet, error) {
	list, err := lexicon.ReadVowelFile(path)
	if err != nil {
		return nil, err
	}
	set := make([]string, len(list))
	for i, v := range list {
		set[i] = phonetic.ToIPA(v)
	}
	return phonetic.NewInventory(set...), nil
}

// VowelInfo is one vowel occurrence.
type VowelInfo struct {
	Phoneme  string
	Min      float64
	Max      float64
	Duration float64
}

func newVowelInfo(iv align.Interval) VowelInfo {
	return VowelInfo{
		Phoneme:  iv.Label,
		Min:      iv.MinTime,
		Max:      iv.MaxTime,
		Duration: iv.Duration(),
	}
}

// VowelPair is the first two vowels of a word, in order.
type VowelPair struct {
	First  VowelInfo
	Second VowelInfo
}

// PVI returns the pairwise variability index of the pair.
func (p VowelPair) PVI() (float64, error) {
	return PVI(p.First.Duration, p.Second.Duration)
}

// FindVowelPair returns the first two phonemes of w whose label is in
// vowels. Words with more vowels use the first two.
func FindVowelPair(w align.Word, vowels VowelSet) (VowelPair, error) {
	var found []VowelInfo
	for _, p := range w.Phonemes {
		if !vowels.Contains(p.Label) {
			continue
		}
		found = append(found, newVowelInfo(p))
		if len(found) == 2 {
			return VowelPair{First: found[0], Second: found[1]}, nil
		}
	}
	return VowelPair{}, apperr.ErrInsufficientVowels(len(found)).WithDetail("word", w.Label)
}

// PVI computes 100 * (d1 - d2) / (0.5 * (d1 + d2)). It is positive when
// the first duration is longer and undefined when both are zero.
func PVI(d1, d2 float64) (float64, error) {
	if d1+d2 == 0 {
		return 0, apperr.ErrZeroDuration()
	}
	return 100 * (d1 - d2) / (0.5 * (d1 + d2)), nil
}
