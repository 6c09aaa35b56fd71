package corpus

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "S01chain.TextGrid"))
	touch(t, filepath.Join(dir, "S01chain.wav"))
	touch(t, filepath.Join(dir, "session2", "B07.TextGrid"))
	touch(t, filepath.Join(dir, "session2", "bad-name.TextGrid"))
	touch(t, filepath.Join(dir, "session2", "C01.TextGrid.bak"))
	touch(t, filepath.Join(dir, "session2", "C02.textgrid"))
	touch(t, filepath.Join(dir, "notes.txt"))

	samples, err := Search(dir, nil)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("found %d samples (%+v), want 2", len(samples), samples)
	}

	tests := []struct {
		id     string
		relDir string
		audio  bool
	}{
		{"S01chain", "", true},
		{"B07", "session2", false},
	}
	for i, tt := range tests {
		s := samples[i]
		if s.ID != tt.id {
			t.Errorf("samples[%d].ID = %q, want %q", i, s.ID, tt.id)
		}
		if s.RelDir != tt.relDir {
			t.Errorf("samples[%d].RelDir = %q, want %q", i, s.RelDir, tt.relDir)
		}
		if s.HasAudio() != tt.audio {
			t.Errorf("samples[%d].HasAudio() = %v, want %v", i, s.HasAudio(), tt.audio)
		}
	}

	if got, want := samples[0].AudioPath(), filepath.Join(dir, "S01chain.wav"); got != want {
		t.Errorf("AudioPath = %q, want %q", got, want)
	}
	if got, want := samples[1].OutputPath("out", "txt"), filepath.Join("out", "session2", "B07.txt"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestSearchCustomPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a", "x1.TextGrid"))
	touch(t, filepath.Join(dir, "b", "x2.TextGrid"))

	samples, err := Search(dir, regexp.MustCompile(`^a/([a-z0-9]+)\.TextGrid$`))
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(samples) != 1 || samples[0].ID != "x1" {
		t.Errorf("samples = %+v, want only x1", samples)
	}
}

func TestSearchMissingDir(t *testing.T) {
	if _, err := Search(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Fatal("Search should fail for a missing directory")
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b", "two.TextGrid"))
	touch(t, filepath.Join(dir, "a", "one.TextGrid"))
	touch(t, filepath.Join(dir, "a", "one.wav"))

	files, err := Find(dir, ".TextGrid")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	want := []string{filepath.Join(dir, "a", "one.TextGrid"), filepath.Join(dir, "b", "two.TextGrid")}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}
