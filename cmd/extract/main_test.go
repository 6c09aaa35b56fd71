package main

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/layaalk/PVI-AU/align"
	"github.com/layaalk/PVI-AU/textgrid"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"words", []string{"words"}},
		{" words , production ", []string{"words", "production"}},
		{",,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	tg := &textgrid.TextGrid{XMax: 0.3, Tiers: []*textgrid.Tier{
		{Class: textgrid.IntervalTier, Name: "S01 - words", XMax: 0.3, Intervals: []textgrid.Interval{
			{XMin: 0, XMax: 0.3, Text: "cat"},
		}},
		{Class: textgrid.IntervalTier, Name: "S01 - phones", XMax: 0.3, Intervals: []textgrid.Interval{
			{XMin: 0, XMax: 0.1, Text: "K"},
			{XMin: 0.1, XMax: 0.25, Text: "AE1"},
			{XMin: 0.25, XMax: 0.3, Text: "T"},
		}},
	}}
	grid := filepath.Join(dir, "S01.TextGrid")
	if err := tg.WriteFile(grid); err != nil {
		t.Fatal(err)
	}

	outFile := filepath.Join(t.TempDir(), "combined.json")
	var stdout, stderr bytes.Buffer
	if code := run([]string{dir, outFile}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}

	c, err := align.LoadCombined(outFile)
	if err != nil {
		t.Fatal(err)
	}
	words := c[grid].Align()
	if len(words) != 1 || len(words[0].Phonemes) != 3 {
		t.Fatalf("aligned = %+v, want cat with 3 phonemes", words)
	}
	if got := words[0].Phonemes[1].Label; got != "æ" {
		t.Errorf("vowel = %q, want %q", got, "æ")
	}
}

func TestRunExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{t.TempDir()}, &stdout, &stderr); code != 3 {
		t.Errorf("one arg exit = %d, want 3", code)
	}
	if code := run([]string{t.TempDir(), filepath.Join(t.TempDir(), "c.json")}, &stdout, &stderr); code != 2 {
		t.Errorf("empty dir exit = %d, want 2", code)
	}
}
