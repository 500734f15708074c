// ABOUTME: Tests for text line processing helpers
// ABOUTME: Covers tab expansion, cell-width truncation, and parallel splitting

package preview

import (
	"strings"
	"testing"
)

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		tabWidth int
		want     string
	}{
		{"no tabs", "plain text", 4, "plain text"},
		{"leading tab", "\tindented", 4, "    indented"},
		{"mid-line stop", "ab\tcd", 4, "ab  cd"},
		{"at stop boundary", "abcd\tef", 4, "abcd    ef"},
		{"consecutive tabs", "\t\tx", 4, "        x"},
		{"width eight", "a\tb", 8, "a       b"},
		{"wide rune before tab", "日\tx", 4, "日  x"},
		{"zero width ignored", "a\tb", 0, "a\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandTabs(tt.line, tt.tabWidth); got != tt.want {
				t.Errorf("expandTabs(%q, %d) = %q, want %q", tt.line, tt.tabWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact fit", "exact", 5, "exact"},
		{"truncated", "a long file name.txt", 10, "a long fi…"},
		{"zero width", "anything", 0, ""},
		{"width one", "anything", 1, "…"},
		{"wide runes", "日本語のファイル", 7, "日本語…"},
		{"wide rune not split", "ab日cd", 4, "ab…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateToWidth(tt.text, tt.width); got != tt.want {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestTextLinesParallel(t *testing.T) {
	// Enough lines to cross the worker pool threshold; content must come
	// out identical to serial processing, in order.
	var builder strings.Builder
	for range parallelThreshold {
		builder.WriteString("col1\tcol2\r\n")
	}

	styled, plain := textLines([]byte(builder.String()), 4)

	if len(plain) != parallelThreshold {
		t.Fatalf("got %d lines, want %d", len(plain), parallelThreshold)
	}

	for i, line := range plain {
		if line != "col1    col2" {
			t.Fatalf("line %d = %q, want %q", i, line, "col1    col2")
		}

		if styled[i] != line {
			t.Fatalf("styled line %d differs from plain", i)
		}
	}
}
