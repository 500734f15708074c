// ABOUTME: Per-frame layout of the gutter and body content blocks
// ABOUTME: Produces row-oriented text ready for terminal painting

package scroll

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// bodyPadding is the blank column kept on each side of the body text.
const bodyPadding = 1

// Frame is the laid-out output of one render pass: the title, the line
// number gutter (one row per display row, empty when numbers are off) and
// the body rows. Rows are plain or ANSI-styled strings for direct painting.
type Frame struct {
	Title  string
	Gutter []string
	Body   []string
}

// Render resolves the pending scroll command against the content area and
// assembles the gutter and body blocks. Width is the full content area in
// columns (gutter included, frame borders excluded); height is the number
// of display rows. Aside from consuming the one-shot command, it is a pure
// function of the state and the dimensions, and is safe to call on every
// frame: wrap-derived heights are recomputed for the window of interest
// only, so the cost is bounded by the window, not the document.
func (s *State) Render(width, height int) Frame {
	if height < 0 {
		height = 0
	}

	textWidth := width - s.GutterWidth() - 2*bodyPadding
	if textWidth < 1 {
		textWidth = 1
	}

	s.resolve(textWidth, height)

	frame := Frame{
		Title: s.title,
		Body:  s.bodyRows(textWidth, height),
	}
	if s.options.Number {
		frame.Gutter = s.gutterRows(textWidth, height)
	}

	return frame
}

// RenderAll lays out the entire document at the given width, ignoring the
// window and any pending command. In wrap mode lines wrap exactly as they
// would on screen; with wrap off each line is emitted whole. Used by the
// non-interactive print mode.
func (s *State) RenderAll(width int) Frame {
	textWidth := width - s.GutterWidth() - 2*bodyPadding
	if textWidth < 1 {
		textWidth = 1
	}

	frame := Frame{Title: s.title}

	for i, line := range s.lines {
		rows := []string{line}
		if s.options.Wrap {
			rows = wrapRows(line, textWidth)
		}

		frame.Body = append(frame.Body, rows...)

		if s.options.Number {
			frame.Gutter = append(frame.Gutter, fmt.Sprintf("%*d", s.maxDigits, i+1))
			for range len(rows) - 1 {
				frame.Gutter = append(frame.Gutter, "")
			}
		}
	}

	return frame
}

// gutterRows builds exactly height rows of right-justified 1-based line
// numbers. Continuation rows of a wrapped line and rows past the last line
// are blank, so wrapped rows visually group under one number. Heights come
// from the same walk the body uses.
func (s *State) gutterRows(textWidth, height int) []string {
	rows := make([]string, 0, height)

	for i := s.vOffset; len(rows) < height; i++ {
		if i >= len(s.plain) {
			rows = append(rows, "")

			continue
		}

		rows = append(rows, fmt.Sprintf("%*d", s.maxDigits, i+1))

		for h := s.lineHeight(i, textWidth); h > 1 && len(rows) < height; h-- {
			rows = append(rows, "")
		}
	}

	return rows
}

// bodyRows builds the visible body rows. In wrap mode each logical line
// contributes its wrapped rows until the window is full; rows past the
// window are simply not shown this frame. In unwrapped mode each line is
// one row, cut to the visible column range starting at the horizontal
// offset.
func (s *State) bodyRows(textWidth, height int) []string {
	rows := make([]string, 0, height)

	for i := s.vOffset; i < len(s.lines) && len(rows) < height; i++ {
		if !s.options.Wrap {
			rows = append(rows, ansi.Cut(s.lines[i], s.hOffset, s.hOffset+textWidth))

			continue
		}

		for _, row := range wrapRows(s.lines[i], textWidth) {
			if len(rows) >= height {
				break
			}

			rows = append(rows, row)
		}
	}

	return rows
}
