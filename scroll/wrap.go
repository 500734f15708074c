// ABOUTME: Word-wrap and width helpers shared by gutter and body layout
// ABOUTME: Single wrap implementation so both regions agree on line heights

package scroll

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// wrapRows word-wraps a single display line to the given width and returns
// the resulting rows. Words longer than the width are broken. ANSI escape
// sequences are zero-width and preserved, so styled and plain renditions of
// the same text wrap identically.
func wrapRows(line string, width int) []string {
	if width < 1 {
		width = 1
	}

	return strings.Split(ansi.Wrap(line, width, ""), "\n")
}

// wrappedHeight returns the number of rows a line occupies when wrapped at
// the given width. An empty line still occupies one row.
func wrappedHeight(line string, width int) int {
	return len(wrapRows(line, width))
}

// lineWidth measures the rendered cell width of a line, ignoring ANSI
// escape sequences.
func lineWidth(line string) int {
	return ansi.StringWidth(line)
}

// digits returns the number of decimal digits needed to print n.
func digits(n int) int {
	if n == 0 {
		return 1
	}

	count := 0
	for n > 0 {
		count++
		n /= 10
	}

	return count
}
