// ABOUTME: Metadata summary rendering for audio file previews
// ABOUTME: Shows standard tags first, then the raw tag table sorted by key

package preview

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhowden/tag"
)

var audioLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// rawValueWidth caps how many cells a raw tag value occupies; embedded
// artwork and lyrics blobs would otherwise dominate the preview.
const rawValueWidth = 120

// audioLines renders an audio file's tag metadata as display lines: a
// summary of the standard tags followed by every raw tag the container
// carries. Styled lines dim the labels; plain lines are the same text
// unstyled.
func audioLines(metadata tag.Metadata, size int64) (styled, plain []string) {
	type field struct {
		label string
		value string
	}

	track, trackTotal := metadata.Track()
	disc, discTotal := metadata.Disc()

	fields := []field{
		{"Format", fmt.Sprintf("%s (%s)", metadata.Format(), metadata.FileType())},
		{"Title", metadata.Title()},
		{"Artist", metadata.Artist()},
		{"Album", metadata.Album()},
		{"Album artist", metadata.AlbumArtist()},
		{"Composer", metadata.Composer()},
		{"Genre", metadata.Genre()},
		{"Year", nonZero(metadata.Year())},
		{"Track", position(track, trackTotal)},
		{"Disc", position(disc, discTotal)},
		{"Size", FormatSize(size)},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}

		styled = append(styled, audioLabelStyle.Render(f.label+":")+" "+f.value)
		plain = append(plain, f.label+": "+f.value)
	}

	raw := metadata.Raw()
	if len(raw) == 0 {
		return styled, plain
	}

	styled = append(styled, "", audioLabelStyle.Render("Raw tags:"))
	plain = append(plain, "", "Raw tags:")

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := TruncateToWidth(fmt.Sprintf("%v", raw[key]), rawValueWidth)

		styled = append(styled, "  "+audioLabelStyle.Render(key+":")+" "+value)
		plain = append(plain, "  "+key+": "+value)
	}

	return styled, plain
}

// nonZero formats an int, hiding the zero value.
func nonZero(n int) string {
	if n == 0 {
		return ""
	}

	return fmt.Sprintf("%d", n)
}

// position formats "n of total" tag pairs like track and disc numbers.
func position(n, total int) string {
	if n == 0 {
		return ""
	}

	if total == 0 {
		return fmt.Sprintf("%d", n)
	}

	return fmt.Sprintf("%d/%d", n, total)
}

// FormatSize renders a byte count in a compact human unit.
func FormatSize(size int64) string {
	const unit = 1024

	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
