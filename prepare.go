package pviau

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/layaalk/PVI-AU/corpus"
	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/lexicon"
	"github.com/layaalk/PVI-AU/phonetic"
	"github.com/layaalk/PVI-AU/textgrid"
)

// Acoustic models matching the two dictionary notations.
const (
	ModelIPA     = "english_mfa"
	ModelARPAbet = "us_english_arpa"
)

// Preparer turns annotated recordings into a corpus for the aligner.
type Preparer struct {
	cfg settings
}

// NewPreparer creates a Preparer.
func NewPreparer(opts ...Option) *Preparer {
	return &Preparer{cfg: newSettings(opts)}
}

// PrepareSummary reports a preparation run.
type PrepareSummary struct {
	Samples        int      // annotation files written
	Normalized     int      // recordings normalized
	MissingAudio   []string // recordings that were expected but not found
	EntryFailures  []lexicon.Failure
	FileErrors     error // per-file failures, combined
	Vowels         []string
	DictionaryPath string
	VowelsPath     string
	AcousticModel  string
}

// AudioErrors returns one error per recording that was expected but not
// found. They are warnings: the run still succeeds.
func (s *PrepareSummary) AudioErrors() []error {
	errs := make([]error, len(s.MissingAudio))
	for i, path := range s.MissingAudio {
		errs[i] = apperr.ErrMissingAudio(path)
	}
	return errs
}

// AlignCommand returns the aligner invocation for the prepared corpus.
func (s *PrepareSummary) AlignCommand(outDir string) string {
	return fmt.Sprintf("mfa align %s %s %s [alignments_dir] [--clean]", outDir, s.DictionaryPath, s.AcousticModel)
}

func (p *Preparer) transcriber() lexicon.TranscribeFunc {
	var opts []phonetic.Option
	if p.cfg.stripStress {
		opts = append(opts, phonetic.WithoutStress())
	}
	tok := phonetic.NewIPATokenizer(opts...)
	if p.cfg.arpabet {
		return tok.Translate
	}
	return tok.Transcribe
}

// Prepare searches baseDir for annotation files, writes the rewritten
// annotations, normalized recordings, dictionary and vowel list under
// outDir, and validates the phones against the aligner's inventory.
//
// A file that cannot be read is skipped and reported in the summary. Zero
// input files, an inventory violation and a failing audio tool are errors.
func (p *Preparer) Prepare(ctx context.Context, baseDir, outDir string) (*PrepareSummary, error) {
	log := p.cfg.logger
	summary := &PrepareSummary{AcousticModel: ModelIPA}
	if p.cfg.arpabet {
		summary.AcousticModel = ModelARPAbet
	}

	samples, err := corpus.Search(baseDir, p.cfg.pattern)
	if err != nil {
		return summary, apperr.ErrInvalidInput("cannot search input directory", err)
	}
	if len(samples) == 0 {
		return summary, apperr.ErrNoInput(absPath(baseDir))
	}
	log.Info("preparing samples", zap.Int("found", len(samples)), zap.String("base_dir", baseDir))

	builder := lexicon.NewBuilder(p.transcriber())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.workers)
	var normalized atomic.Int64

	for _, s := range samples {
		if gctx.Err() != nil {
			break
		}
		marks, err := p.prepareSample(s, outDir)
		if err != nil {
			err = apperr.InFile(err, s.Path)
			log.Warn("skipping sample", zap.Error(err))
			summary.FileErrors = multierr.Append(summary.FileErrors, err)
			continue
		}
		for _, mark := range marks {
			builder.AddWord(mark)
		}
		summary.Samples++
		log.Debug("prepared sample", zap.String("id", s.ID), zap.Int("marks", len(marks)))

		if p.cfg.normalizer == nil {
			continue
		}
		if !s.HasAudio() {
			log.Warn("skipping recording", zap.Error(apperr.ErrMissingAudio(s.AudioPath())))
			summary.MissingAudio = append(summary.MissingAudio, s.AudioPath())
			continue
		}
		src, dst := s.AudioPath(), s.OutputPath(outDir, "wav")
		g.Go(func() error {
			if err := p.cfg.normalizer.Normalize(gctx, src, dst); err != nil {
				return err
			}
			normalized.Add(1)
			return nil
		})
	}
	err = g.Wait()
	summary.Normalized = int(normalized.Load())
	if err != nil {
		return summary, err
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	summary.EntryFailures = builder.Failures()
	for _, f := range summary.EntryFailures {
		log.Info("skipped dictionary entry", zap.String("key", f.Key), zap.Error(f.Err))
	}

	if summary.Samples == 0 {
		return summary, multierr.Append(apperr.ErrNoInput(absPath(baseDir)), summary.FileErrors)
	}
	log.Info("prepared samples", zap.Int("samples", summary.Samples), zap.String("out_dir", outDir))

	inventory, tag := phonetic.MFAInventory, lexicon.TagFunc(phonetic.ARPAbetTag)
	if p.cfg.arpabet {
		inventory, tag = phonetic.ARPAbetInventory, lexicon.IdentityTag
	}
	if err := builder.Validate(inventory); err != nil {
		return summary, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return summary, err
	}
	summary.Vowels = builder.Vowels(tag)
	summary.VowelsPath = filepath.Join(outDir, VowelsFile)
	if err := lexicon.WriteVowelFile(summary.VowelsPath, summary.Vowels); err != nil {
		return summary, err
	}
	log.Info("wrote vowel list", zap.String("path", summary.VowelsPath), zap.Strings("vowels", summary.Vowels))

	summary.DictionaryPath = filepath.Join(outDir, DictionaryFile)
	if err := builder.Dictionary().WriteFile(summary.DictionaryPath); err != nil {
		return summary, err
	}
	log.Info("wrote dictionary", zap.String("path", summary.DictionaryPath), zap.Int("entries", builder.Dictionary().Len()))

	return summary, nil
}

// prepareSample writes the prepared copy of one annotation file and returns
// the marks of its words tier. The marks go into the dictionary only once
// the copy is written.
func (p *Preparer) prepareSample(s corpus.Sample, outDir string) ([]string, error) {
	tg, err := textgrid.ReadFile(s.Path)
	if err != nil {
		return nil, apperr.ErrInvalidInput("unreadable annotation file", err)
	}
	tier := tg.Tier(p.cfg.tier)
	if tier == nil {
		return nil, apperr.ErrInvalidInput(fmt.Sprintf("no tier %q", p.cfg.tier), nil).
			WithDetail("tiers", strings.Join(tg.TierNames(), ","))
	}

	marks := tier.Marks()
	var words []string
	for _, mark := range marks {
		if w := strings.TrimSpace(mark); w != "" {
			words = append(words, w)
		}
	}

	ext := "TextGrid"
	if p.cfg.plainText {
		ext = "txt"
	}
	out := s.OutputPath(outDir, ext)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return nil, err
	}

	if p.cfg.plainText {
		if err := os.WriteFile(out, []byte(strings.Join(words, " ")+"\n"), 0o644); err != nil {
			return nil, err
		}
		return marks, nil
	}
	if p.cfg.dropTier != "" {
		tg.RemoveTier(p.cfg.dropTier)
	}
	if err := tg.RenameTier(p.cfg.tier, speakerName(s.ID)); err != nil {
		return nil, err
	}
	if err := tg.WriteFile(out); err != nil {
		return nil, err
	}
	return marks, nil
}

// speakerName is the tier name the aligner uses as speaker for a sample.
func speakerName(id string) string {
	return strings.ReplaceAll(id, "chain", "")
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
