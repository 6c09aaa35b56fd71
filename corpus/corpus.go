// Package corpus finds annotation files and their paired recordings.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// SamplePattern matches annotation files named after a sample id. The
// first group is the id.
var SamplePattern = regexp.MustCompile(`(?:^|/)([A-Za-z0-9]+)\.TextGrid$`)

// Sample is one annotation file found under a base directory.
type Sample struct {
	Path   string // path of the annotation file
	ID     string // sample id captured by the pattern
	RelDir string // directory relative to the base directory
}

// AudioPath returns the recording expected next to the annotation file.
func (s Sample) AudioPath() string {
	return filepath.Join(filepath.Dir(s.Path), s.ID+".wav")
}

// HasAudio reports whether the paired recording exists.
func (s Sample) HasAudio() bool {
	info, err := os.Stat(s.AudioPath())
	return err == nil && info.Mode().IsRegular()
}

// OutputPath returns where a derived file with extension ext goes under
// outDir, mirroring the sample's relative directory.
func (s Sample) OutputPath(outDir, ext string) string {
	return filepath.Join(outDir, s.RelDir, s.ID+"."+ext)
}

// Search walks dir and returns the files whose slash-separated relative
// path matches pattern, sorted by path. A nil pattern means SamplePattern.
func Search(dir string, pattern *regexp.Regexp) ([]Sample, error) {
	if pattern == nil {
		pattern = SamplePattern
	}
	var found []Sample
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		m := pattern.FindStringSubmatch(filepath.ToSlash(rel))
		if m == nil {
			return nil
		}
		id := m[0]
		if len(m) > 1 {
			id = m[1]
		}
		relDir := filepath.Dir(rel)
		if relDir == "." {
			relDir = ""
		}
		found = append(found, Sample{Path: path, ID: id, RelDir: relDir})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", dir, err)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found, nil
}

// Find returns every file under dir with the given extension, sorted.
func Find(dir, ext string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", dir, err)
	}
	sort.Strings(found)
	return found, nil
}
