package pviau

import (
	"context"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/layaalk/PVI-AU/align"
	"github.com/layaalk/PVI-AU/corpus"
	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/phonetic"
	"github.com/layaalk/PVI-AU/textgrid"
)

// Extractor collects the word and phoneme intervals of aligned annotation
// files.
type Extractor struct {
	cfg settings
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{cfg: newSettings(opts)}
}

// ExtractSummary reports an extraction run.
type ExtractSummary struct {
	Files      int   // annotation files extracted
	FileErrors error // per-file failures, combined
}

// tierMatches reports whether a tier name selects one of names. Aligners
// may prefix tier names with the speaker, as in "S01 - words".
func tierMatches(tier string, names []string) bool {
	for _, n := range names {
		if tier == n || strings.HasSuffix(tier, " - "+n) {
			return true
		}
	}
	return false
}

// ExtractFile reads the word and phoneme intervals of one annotation file.
// Phoneme labels are mapped back to IPA and blank phonemes are dropped.
func (e *Extractor) ExtractFile(path string) (align.Record, error) {
	rec := align.Record{Words: []align.Interval{}, Phonemes: []align.Interval{}}
	tg, err := textgrid.ReadFile(path)
	if err != nil {
		return rec, apperr.ErrInvalidInput("unreadable annotation file", err)
	}

	for _, tier := range tg.Tiers {
		if tier.Class != textgrid.IntervalTier {
			continue
		}
		switch {
		case tierMatches(tier.Name, e.cfg.wordTiers):
			for _, iv := range tier.Intervals {
				rec.Words = append(rec.Words, align.Interval{
					MinTime: iv.XMin,
					MaxTime: iv.XMax,
					Label:   strings.TrimSpace(iv.Text),
				})
			}
		case tierMatches(tier.Name, e.cfg.phoneTiers):
			for _, iv := range tier.Intervals {
				label := strings.TrimSpace(iv.Text)
				if label == "" {
					continue
				}
				rec.Phonemes = append(rec.Phonemes, align.Interval{
					MinTime: iv.XMin,
					MaxTime: iv.XMax,
					Label:   phonetic.ToIPA(label),
				})
			}
		}
	}
	return rec, nil
}

// Extract reads every annotation file under dir. Files that cannot be read
// are skipped and reported in the summary.
func (e *Extractor) Extract(ctx context.Context, dir string) (align.Combined, *ExtractSummary, error) {
	log := e.cfg.logger
	summary := &ExtractSummary{}

	files, err := corpus.Find(dir, ".TextGrid")
	if err != nil {
		return nil, summary, apperr.ErrInvalidInput("cannot search input directory", err)
	}
	if len(files) == 0 {
		return nil, summary, apperr.ErrNoInput(absPath(dir))
	}

	combined := make(align.Combined, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, summary, err
		}
		rec, err := e.ExtractFile(path)
		if err != nil {
			err = apperr.InFile(err, path)
			log.Warn("skipping file", zap.Error(err))
			summary.FileErrors = multierr.Append(summary.FileErrors, err)
			continue
		}
		if len(rec.Words) == 0 {
			log.Warn("no word tier", zap.String("file", path), zap.Strings("word_tiers", e.cfg.wordTiers))
		}
		combined[path] = rec
		summary.Files++
		log.Debug("extracted", zap.String("file", path), zap.Int("words", len(rec.Words)), zap.Int("phonemes", len(rec.Phonemes)))
	}
	if summary.Files == 0 {
		return nil, summary, multierr.Append(apperr.ErrNoInput(absPath(dir)), summary.FileErrors)
	}
	return combined, summary, nil
}
