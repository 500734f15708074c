// ABOUTME: Text preview construction: line splitting, tab expansion, truncation
// ABOUTME: Large files are processed in parallel chunks across the worker pool

package preview

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mrllama123/stu/pool"
)

// parallelThreshold is the line count above which text processing fans out
// across the worker pool instead of running inline.
const parallelThreshold = 2048

// textLines splits the data into display lines, strips trailing carriage
// returns, and expands tabs to the given width. Styled and plain lines are
// identical for text content.
func textLines(data []byte, tabWidth int) (styled, plain []string) {
	raw := strings.Split(string(data), "\n")

	// A trailing newline produces a phantom empty last line; drop it.
	if len(raw) > 1 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, len(raw))

	process := func(start, end int) {
		for i := start; i < end; i++ {
			lines[i] = expandTabs(strings.TrimSuffix(raw[i], "\r"), tabWidth)
		}
	}

	if len(raw) >= parallelThreshold {
		p := pool.New(64)
		defer p.Close()

		p.ForEachChunk(len(raw), 512, process)
	} else {
		process(0, len(raw))
	}

	return lines, lines
}

// expandTabs replaces tabs with spaces up to the next tab stop, tracking
// display cells so stops line up after wide runes.
func expandTabs(line string, tabWidth int) string {
	if tabWidth < 1 || !strings.ContainsRune(line, '\t') {
		return line
	}

	var builder strings.Builder
	builder.Grow(len(line))

	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			builder.WriteString(strings.Repeat(" ", n))
			col += n

			continue
		}

		builder.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}

	return builder.String()
}

// TruncateToWidth fits text into width display cells, appending an ellipsis
// when anything was cut. Widths are measured in cells, not bytes, so wide
// runes are never split.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	if width <= 1 {
		return ellipsis
	}

	target := width - 1

	var builder strings.Builder
	current := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if current+w > target {
			break
		}

		builder.WriteRune(r)
		current += w
	}

	builder.WriteString(ellipsis)

	return builder.String()
}
