// ABOUTME: Tests for plain (non-interactive) output mode
// ABOUTME: Verifies gutter layout, wrapping, and the truncation notice

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrllama123/stu/config"
)

func writeTestFile(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunPlain(t *testing.T) {
	path := writeTestFile(t, "first\nsecond\nthird\n")

	var out strings.Builder
	if err := RunPlain(&out, path, config.DefaultConfig(), 40); err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	want := "1 first\n2 second\n3 third\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunPlainWraps(t *testing.T) {
	path := writeTestFile(t, "aaa bbb ccc ddd\n")

	var out strings.Builder

	// Width 16 leaves 12 columns of text after the gutter and padding,
	// forcing a wrap after "ccc".
	if err := RunPlain(&out, path, config.DefaultConfig(), 16); err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d output lines %q, want 2", len(lines), lines)
	}

	if strings.TrimRight(lines[0], " ") != "1 aaa bbb ccc" {
		t.Errorf("line 0 = %q, want %q", lines[0], "1 aaa bbb ccc")
	}

	// Continuation row carries a blank gutter slot.
	if strings.TrimRight(lines[1], " ") != "  ddd" {
		t.Errorf("line 1 = %q, want blank gutter then %q", lines[1], "ddd")
	}
}

func TestRunPlainNoNumbers(t *testing.T) {
	path := writeTestFile(t, "only line\n")

	cfg := config.DefaultConfig()
	cfg.Number = false

	var out strings.Builder
	if err := RunPlain(&out, path, cfg, 40); err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	if out.String() != "only line\n" {
		t.Errorf("output = %q, want the bare line", out.String())
	}
}

func TestRunPlainTruncationNotice(t *testing.T) {
	path := writeTestFile(t, strings.Repeat("data\n", 100))

	cfg := config.DefaultConfig()
	cfg.MaxPreviewBytes = 20

	var out strings.Builder
	if err := RunPlain(&out, path, cfg, 40); err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	if !strings.Contains(out.String(), "[truncated at 20 bytes") {
		t.Errorf("output %q missing the truncation notice", out.String())
	}
}

func TestRunPlainMissingFile(t *testing.T) {
	var out strings.Builder
	if err := RunPlain(&out, "/nonexistent/file", config.DefaultConfig(), 40); err == nil {
		t.Error("expected error for missing file")
	}
}
