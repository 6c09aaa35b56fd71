// Package pviau prepares phonetically transcribed recordings for forced
// alignment and measures vowel duration contrast in the aligned result.
//
// The three pipelines run in order:
//
//	Preparer       annotations + recordings -> aligner corpus, dictionary, vowel list
//	Extractor      aligned annotations      -> combined-intervals file
//	VowelAnalyzer  combined-intervals file  -> vowel-pair report
package pviau

import (
	"regexp"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/layaalk/PVI-AU/audio"
	"github.com/layaalk/PVI-AU/prosody"
)

// Defaults for the pipeline settings.
const (
	DefaultTier     = "production"
	DefaultDropTier = "vowels"

	DictionaryFile = "dictionary.txt"
	VowelsFile     = "vowels.json"
)

// DefaultWordTiers and DefaultPhoneTiers name the tiers read by the
// Extractor.
var (
	DefaultWordTiers  = []string{"words", "production"}
	DefaultPhoneTiers = []string{"phones", "vowels"}
)

type settings struct {
	logger *zap.Logger

	// preparation
	tier        string
	dropTier    string
	arpabet     bool
	plainText   bool
	stripStress bool
	pattern     *regexp.Regexp
	normalizer  *audio.Normalizer
	workers     int

	// extraction
	wordTiers  []string
	phoneTiers []string

	// analysis
	vowels prosody.VowelSet
	strict bool
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:     zap.NewNop(),
		tier:       DefaultTier,
		dropTier:   DefaultDropTier,
		workers:    1,
		wordTiers:  DefaultWordTiers,
		phoneTiers: DefaultPhoneTiers,
		vowels:     prosody.DefaultVowels(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures a pipeline. Options that do not concern a pipeline are
// ignored by it.
type Option func(*settings)

// WithLogger sets the logger. Pipelines log nothing by default.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTier sets the tier holding the transcribed words.
func WithTier(name string) Option {
	return func(s *settings) {
		s.tier = name
	}
}

// WithDropTier sets the tier removed from prepared annotations. An empty
// name keeps every tier.
func WithDropTier(name string) Option {
	return func(s *settings) {
		s.dropTier = name
	}
}

// WithARPAbet builds an ARPAbet dictionary instead of an IPA one.
func WithARPAbet(enabled bool) Option {
	return func(s *settings) {
		s.arpabet = enabled
	}
}

// WithPlainText writes transcripts as plain text instead of TextGrids.
func WithPlainText(enabled bool) Option {
	return func(s *settings) {
		s.plainText = enabled
	}
}

// WithStripStress drops stress marks from transcriptions.
func WithStripStress(enabled bool) Option {
	return func(s *settings) {
		s.stripStress = enabled
	}
}

// WithPattern sets the pattern annotation paths must match. Its first
// group is the sample id.
func WithPattern(re *regexp.Regexp) Option {
	return func(s *settings) {
		s.pattern = re
	}
}

// WithNormalizer normalizes recordings with n, running up to workers jobs
// at once. A nil normalizer skips audio.
func WithNormalizer(n *audio.Normalizer, workers int) Option {
	return func(s *settings) {
		s.normalizer = n
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithWordTiers sets the tiers read as words.
func WithWordTiers(names ...string) Option {
	return func(s *settings) {
		s.wordTiers = names
	}
}

// WithPhoneTiers sets the tiers read as phonemes.
func WithPhoneTiers(names ...string) Option {
	return func(s *settings) {
		s.phoneTiers = names
	}
}

// WithVowelSet sets the labels counted as vowels.
func WithVowelSet(v prosody.VowelSet) Option {
	return func(s *settings) {
		if len(v) > 0 {
			s.vowels = v
		}
	}
}

// WithStrict stops the analysis at the first word without a vowel pair.
func WithStrict(enabled bool) Option {
	return func(s *settings) {
		s.strict = enabled
	}
}

// FileErrors returns the individual errors of a combined per-file error.
func FileErrors(err error) []error {
	return multierr.Errors(err)
}
