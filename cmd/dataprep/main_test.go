package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layaalk/PVI-AU/textgrid"
)

func writeSample(t *testing.T, path string, words ...string) {
	t.Helper()
	tier := &textgrid.Tier{Class: textgrid.IntervalTier, Name: "production", XMax: float64(len(words))}
	for i, w := range words {
		tier.Intervals = append(tier.Intervals, textgrid.Interval{XMin: float64(i), XMax: float64(i + 1), Text: w})
	}
	tg := &textgrid.TextGrid{XMax: tier.XMax, Tiers: []*textgrid.Tier{tier}}
	if err := tg.WriteFile(path); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeSample(t, filepath.Join(in, "S01chain.TextGrid"), "kæt", "", "haʊs")

	tests := []struct {
		name  string
		args  []string
		model string
	}{
		{"ipa", []string{"-no-audio", in, out}, "english_mfa"},
		{"arpabet", []string{"-no-audio", "-arpabet", in, out}, "us_english_arpa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
			}
			if !strings.Contains(stdout.String(), "Prepared 1 samples") {
				t.Errorf("stdout = %q", stdout.String())
			}
			if !strings.Contains(stdout.String(), "mfa align "+out) || !strings.Contains(stdout.String(), tt.model) {
				t.Errorf("stdout lacks the align command for %s: %q", tt.model, stdout.String())
			}
			if _, err := os.Stat(filepath.Join(out, "dictionary.txt")); err != nil {
				t.Errorf("dictionary not written: %v", err)
			}
		})
	}
}

func TestRunExitCodes(t *testing.T) {
	in := t.TempDir()
	writeSample(t, filepath.Join(in, "S01.TextGrid"), "tʃɪp")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no_args", nil, 3},
		{"one_arg", []string{in}, 3},
		{"bad_flag", []string{"-bogus", in, t.TempDir()}, 3},
		{"bad_workers", []string{"-workers", "1000", in, t.TempDir()}, 3},
		{"no_input", []string{"-no-audio", t.TempDir(), t.TempDir()}, 2},
		{"inventory_violation", []string{"-no-audio", in, t.TempDir()}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.want {
				t.Errorf("exit = %d, want %d (stderr %s)", code, tt.want, stderr.String())
			}
		})
	}
}
