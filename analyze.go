package pviau

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/layaalk/PVI-AU/align"
	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/prosody"
)

// VowelAnalyzer computes the vowel-pair report of a combined-intervals
// file.
type VowelAnalyzer struct {
	cfg settings
}

// NewVowelAnalyzer creates a VowelAnalyzer.
func NewVowelAnalyzer(opts ...Option) *VowelAnalyzer {
	return &VowelAnalyzer{cfg: newSettings(opts)}
}

// AnalyzeResult holds the report rows of a run.
type AnalyzeResult struct {
	Rows       []prosody.Row
	Summary    prosody.Summary
	Files      int   // files analyzed
	Failed     int   // words without a usable vowel pair
	FileErrors error // those words' errors, combined
}

// Analyze finds the vowel pair of every word in c, in file order. A word
// without a pair is recorded as a failure of its file; in strict mode it
// ends the run.
func (a *VowelAnalyzer) Analyze(ctx context.Context, c align.Combined) (*AnalyzeResult, error) {
	log := a.cfg.logger
	res := &AnalyzeResult{}
	if len(c) == 0 {
		return res, apperr.ErrNoRecords()
	}

	for _, file := range c.Keys() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Files++
		words := c[file].Align()
		if len(words) == 0 {
			log.Warn("no words", zap.String("file", file))
		}
		for _, w := range words {
			row, err := a.analyzeWord(file, w)
			if err != nil {
				err = apperr.InFile(err, file)
				if a.cfg.strict {
					return res, err
				}
				log.Warn("no vowel pair", zap.String("word", w.Label), zap.Error(err))
				res.Failed++
				res.FileErrors = multierr.Append(res.FileErrors, err)
				continue
			}
			res.Rows = append(res.Rows, row)
		}
	}

	res.Summary = prosody.Summarize(res.Rows)
	log.Info("analyzed vowel pairs",
		zap.Int("files", res.Files),
		zap.Int("pairs", res.Summary.Count),
		zap.Int("failed", res.Failed),
		zap.Float64("mean_pvi", res.Summary.MeanPVI),
		zap.Float64("stddev_pvi", res.Summary.StdDevPVI),
		zap.Float64("mean_abs_pvi", res.Summary.MeanAbsPVI),
	)
	return res, nil
}

func (a *VowelAnalyzer) analyzeWord(file string, w align.Word) (prosody.Row, error) {
	pair, err := prosody.FindVowelPair(w, a.cfg.vowels)
	if err != nil {
		return prosody.Row{}, err
	}
	return prosody.NewRow(file, w.Label, pair)
}

// AnalyzeFile reads the combined-intervals file at combinedPath, analyzes
// it and writes the report to reportPath. The report holds every word that
// has a vowel pair, even when other words failed.
func (a *VowelAnalyzer) AnalyzeFile(ctx context.Context, combinedPath, reportPath string) (*AnalyzeResult, error) {
	c, err := align.LoadCombined(combinedPath)
	if err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return &AnalyzeResult{}, apperr.ErrNoRecords().WithDetail("file", combinedPath)
	}
	res, err := a.Analyze(ctx, c)
	if err != nil {
		return res, err
	}
	if err := prosody.WriteReportFile(reportPath, res.Rows); err != nil {
		return res, err
	}
	a.cfg.logger.Info("wrote report", zap.String("path", reportPath), zap.Int("rows", len(res.Rows)))
	return res, nil
}
