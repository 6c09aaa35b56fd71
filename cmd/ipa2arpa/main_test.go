package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunArgs(t *testing.T) {
	var out, errb bytes.Buffer
	code := run([]string{"kæt", "ðə"}, nil, &out, &errb)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errb.String())
	}
	if got, want := out.String(), "K AE T\nDH AH0\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunStdin(t *testing.T) {
	var out, errb bytes.Buffer
	code := run(nil, strings.NewReader("kæt\n\nkXt\nˈkæt\n"), &out, &errb)
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if got, want := out.String(), "K AE T\n1 K AE T\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(errb.String(), "line 3") {
		t.Errorf("stderr = %q, want a line 3 failure", errb.String())
	}
}

func TestRunStripStress(t *testing.T) {
	var out, errb bytes.Buffer
	if code := run([]string{"-strip-stress", "ˈkæt"}, nil, &out, &errb); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errb.String())
	}
	if got, want := out.String(), "K AE T\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	if err := os.WriteFile(path, []byte("kæt\tk æ t\nhaʊs\th aw s\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errb bytes.Buffer
	if code := run([]string{"-check", path}, nil, &out, &errb); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errb.String())
	}
	if got, want := out.String(), "haʊs\tHH AW S\nkæt\tK AE T\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"-check", empty}, nil, &out, &errb); code != 2 {
		t.Errorf("empty dictionary exit = %d, want 2", code)
	}
}

func TestRunBadFlag(t *testing.T) {
	var out, errb bytes.Buffer
	if code := run([]string{"-nope"}, nil, &out, &errb); code != 3 {
		t.Errorf("exit = %d, want 3", code)
	}
}
