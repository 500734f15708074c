// ABOUTME: Hex dump rendering for binary file previews
// ABOUTME: Classic 16-bytes-per-row layout with offset, hex and ASCII columns

package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// hexBytesPerRow is the number of bytes shown on one hex dump row.
const hexBytesPerRow = 16

var hexOffsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// hexLines renders data as hex dump rows. The plain lines carry the same
// text with the offset column unstyled, keeping both slices index-aligned
// and equal in rendered width.
func hexLines(data []byte) (styled, plain []string) {
	rows := (len(data) + hexBytesPerRow - 1) / hexBytesPerRow
	styled = make([]string, 0, rows)
	plain = make([]string, 0, rows)

	for start := 0; start < len(data); start += hexBytesPerRow {
		end := min(start+hexBytesPerRow, len(data))

		offset := fmt.Sprintf("%08x", start)
		rest := hexRowBody(data[start:end])

		styled = append(styled, hexOffsetStyle.Render(offset)+rest)
		plain = append(plain, offset+rest)
	}

	return styled, plain
}

// hexRowBody formats the hex and ASCII columns for one row of bytes,
// padded so every row is the same width.
func hexRowBody(chunk []byte) string {
	var builder strings.Builder
	builder.Grow(64)

	builder.WriteString("  ")

	for i := range hexBytesPerRow {
		if i < len(chunk) {
			fmt.Fprintf(&builder, "%02x ", chunk[i])
		} else {
			builder.WriteString("   ")
		}

		// Extra gap between the two 8-byte groups.
		if i == 7 {
			builder.WriteString(" ")
		}
	}

	builder.WriteString(" |")
	for _, b := range chunk {
		builder.WriteByte(printableASCII(b))
	}
	for i := len(chunk); i < hexBytesPerRow; i++ {
		builder.WriteByte(' ')
	}
	builder.WriteString("|")

	return builder.String()
}

// printableASCII maps non-printable bytes to a dot for the ASCII column.
func printableASCII(b byte) byte {
	if b >= 32 && b <= 126 {
		return b
	}

	return '.'
}
