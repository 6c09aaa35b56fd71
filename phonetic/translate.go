package phonetic

import (
	"strings"

	"github.com/layaalk/PVI-AU/internal/apperr"
)

// Translate tokenizes input and maps every symbol through the direct table.
// The result is the target symbols joined by single spaces.
func (t *Tokenizer) Translate(input string) (string, error) {
	syms, err := t.Tokenize(input)
	if err != nil {
		return "", err
	}
	out := make([]string, len(syms))
	for i, s := range syms {
		target, ok := t.table[string(s)]
		if !ok {
			return "", apperr.ErrMissingMapping(string(s), input)
		}
		out[i] = target
	}
	return strings.Join(out, " "), nil
}

// IPAToARPA translates an IPA transcription with the default tokenizer.
func IPAToARPA(ipa string) (string, error) {
	return defaultTokenizer.Translate(ipa)
}

// ToIPA maps an aligner output label back to IPA. ARPAbet codes may carry a
// stress digit. Labels without an entry in MapBack are returned unchanged.
func ToIPA(label string) string {
	if ipa, ok := MapBack[label]; ok {
		return ipa
	}
	if base := strings.TrimRight(label, "012"); base != label && base != "" {
		if ipa, ok := MapBack[base]; ok {
			return ipa
		}
	}
	return label
}

// ARPAbetTag returns the ARPAbet code of a single IPA phone.
func ARPAbetTag(phone string) (string, error) {
	return defaultTokenizer.Translate(phone)
}

// IsVowelTag reports whether an ARPAbet code names a vowel, i.e. starts
// with one of VowelLetters.
func IsVowelTag(tag string) bool {
	return tag != "" && strings.IndexByte(VowelLetters, tag[0]) >= 0
}
