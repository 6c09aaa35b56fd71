package prosody

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

var reportHeader = []string{
	"Filename",
	"Vowel 1", "Vowel 1 min", "Vowel 1 max", "Vowel 1 Duration",
	"Vowel 2", "Vowel 2 min", "Vowel 2 max", "Vowel 2 Duration",
	"PVI",
}

// Row is one line of the vowel-pair report.
type Row struct {
	Filename string
	Word     string
	Pair     VowelPair
	PVI      float64
}

// NewRow computes the PVI of pair.
func NewRow(filename, word string, pair VowelPair) (Row, error) {
	pvi, err := pair.PVI()
	if err != nil {
		return Row{}, err
	}
	return Row{Filename: filename, Word: word, Pair: pair, PVI: pvi}, nil
}

func formatTime(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (r Row) record() []string {
	v1, v2 := r.Pair.First, r.Pair.Second
	return []string{
		r.Filename,
		v1.Phoneme, formatTime(v1.Min), formatTime(v1.Max), fmt.Sprintf("%.3f", v1.Duration),
		v2.Phoneme, formatTime(v2.Min), formatTime(v2.Max), fmt.Sprintf("%.3f", v2.Duration),
		fmt.Sprintf("%.5f", r.PVI),
	}
}

// WriteReport writes rows as CSV with a header line.
func WriteReport(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportFile writes the report to path.
func WriteReportFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReport(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Summary describes the PVI values of a report.
type Summary struct {
	Count      int
	MeanPVI    float64
	StdDevPVI  float64
	MeanAbsPVI float64
}

// Summarize computes summary statistics over rows. The standard deviation
// is zero for fewer than two rows.
func Summarize(rows []Row) Summary {
	s := Summary{Count: len(rows)}
	if len(rows) == 0 {
		return s
	}
	pvi := make([]float64, len(rows))
	abs := make([]float64, len(rows))
	for i, r := range rows {
		pvi[i] = r.PVI
		abs[i] = math.Abs(r.PVI)
	}
	s.MeanPVI = stat.Mean(pvi, nil)
	s.MeanAbsPVI = stat.Mean(abs, nil)
	if len(rows) > 1 {
		s.StdDevPVI = stat.StdDev(pvi, nil)
	}
	return s
}
