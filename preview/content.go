// ABOUTME: Builds preview content from local files for the viewer
// ABOUTME: Classifies files as text, binary or audio and produces display lines

// Package preview turns a file on disk into index-aligned styled and plain
// display lines ready for the scroll viewport. Text files are previewed
// as-is with tabs expanded, binary files as a hex dump, and audio files as
// a metadata summary.
package preview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhowden/tag"

	"github.com/mrllama123/stu/config"
)

// Kind classifies how a file is rendered.
type Kind int

const (
	KindText Kind = iota
	KindBinary
	KindAudio
)

// String returns the status bar label for the kind.
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindAudio:
		return "audio"
	default:
		return "text"
	}
}

// nulProbeSize is how much of the head of a file is scanned for NUL bytes
// when deciding whether it is binary.
const nulProbeSize = 8 * 1024

// Content is a fully built preview: styled lines for painting and their
// escape-free plain counterparts for width and wrap math, index-aligned.
type Content struct {
	Title     string
	Path      string
	Lines     []string
	Plain     []string
	Kind      Kind
	Size      int64 // Full file size, not the previewed portion
	Truncated bool  // True when the file exceeded the preview byte cap
}

// Load reads at most cfg.MaxPreviewBytes of the file and builds its preview.
// Audio recognition runs first because audio containers are full of NUL
// bytes and would otherwise always classify as binary.
func Load(path string, cfg config.Config) (*Content, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, truncated, err := readCapped(path, cfg.MaxPreviewBytes)
	if err != nil {
		return nil, err
	}

	content := &Content{
		Title:     filepath.Base(path),
		Path:      path,
		Size:      info.Size(),
		Truncated: truncated,
	}

	if metadata, err := tag.ReadFrom(bytes.NewReader(data)); err == nil {
		content.Kind = KindAudio
		content.Lines, content.Plain = audioLines(metadata, info.Size())

		return content, nil
	}

	if isBinary(data) {
		content.Kind = KindBinary
		content.Lines, content.Plain = hexLines(data)

		return content, nil
	}

	content.Kind = KindText
	content.Lines, content.Plain = textLines(data, cfg.TabWidth)

	return content, nil
}

// readCapped reads at most limit bytes of the file and reports whether the
// file had more.
func readCapped(path string, limit int64) ([]byte, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Read one byte past the cap to detect truncation without a second stat.
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read file: %w", err)
	}

	if int64(len(data)) > limit {
		return data[:limit], true, nil
	}

	return data, false, nil
}

// isBinary reports whether the head of the data contains a NUL byte.
func isBinary(data []byte) bool {
	probe := data
	if len(probe) > nulProbeSize {
		probe = probe[:nulProbeSize]
	}

	return bytes.IndexByte(probe, 0) >= 0
}
