// ABOUTME: Scroll state and one-shot command resolution for the preview viewport
// ABOUTME: Owns vertical/horizontal offsets and interprets pending scroll commands per render

// Package scroll implements the viewport engine behind the file preview:
// a window over a fixed list of display lines with optional word wrap,
// optional line numbers, and forward/backward line, page and column scrolling.
package scroll

import "fmt"

// Command is a pending scroll request, consumed exactly once per render.
type Command int

// Scroll commands set by input handling and resolved against the viewport
// dimensions during Render. Last writer wins; commands are never queued.
const (
	CommandNone Command = iota
	CommandForward
	CommandBackward
	CommandPageForward
	CommandPageBackward
	CommandTop
	CommandEnd
	CommandRight
	CommandLeft
)

// Options controls the two display toggles of the viewport.
type Options struct {
	Number bool // Show the line number gutter
	Wrap   bool // Word-wrap lines instead of horizontal panning
}

// DefaultOptions returns the viewport defaults: numbered and wrapped.
func DefaultOptions() Options {
	return Options{Number: true, Wrap: true}
}

// State holds the scroll position and content for one previewed document.
// It is owned by a single view and mutated only by the command setters and
// by Render; there is no internal locking.
type State struct {
	lines        []string // Styled (ANSI-escaped) display lines
	plain        []string // Escape-free text, index-aligned with lines
	maxDigits    int      // Digits needed for the largest line number
	maxLineWidth int      // Widest rendered line, bounds horizontal panning
	vOffset      int      // First logical line at the top of the window
	hOffset      int      // Leftmost visible column when wrap is off
	options      Options
	title        string
	command      Command
}

// New creates scroll state for a document. The styled and plain slices must
// be the same length and index-aligned; a mismatch is a programming error,
// not a runtime condition, so it panics.
func New(lines, plain []string, title string, options Options) *State {
	if len(lines) != len(plain) {
		panic(fmt.Sprintf("scroll: styled/plain line count mismatch: %d != %d", len(lines), len(plain)))
	}

	maxWidth := 0
	for _, line := range lines {
		if w := lineWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	return &State{
		lines:        lines,
		plain:        plain,
		maxDigits:    digits(len(lines)),
		maxLineWidth: maxWidth,
		options:      options,
		title:        title,
	}
}

// ScrollForward requests a one-line scroll towards the end.
func (s *State) ScrollForward() {
	s.command = CommandForward
}

// ScrollBackward requests a one-line scroll towards the top.
func (s *State) ScrollBackward() {
	s.command = CommandBackward
}

// ScrollPageForward requests a full-page scroll towards the end.
func (s *State) ScrollPageForward() {
	s.command = CommandPageForward
}

// ScrollPageBackward requests a full-page scroll towards the top.
func (s *State) ScrollPageBackward() {
	s.command = CommandPageBackward
}

// ScrollToTop requests a jump to the first line.
func (s *State) ScrollToTop() {
	s.command = CommandTop
}

// ScrollToEnd requests a jump to the last line.
func (s *State) ScrollToEnd() {
	s.command = CommandEnd
}

// ScrollRight requests a one-column pan to the right (unwrapped mode).
func (s *State) ScrollRight() {
	s.command = CommandRight
}

// ScrollLeft requests a one-column pan to the left (unwrapped mode).
func (s *State) ScrollLeft() {
	s.command = CommandLeft
}

// ToggleWrap flips word wrapping. The horizontal offset is reset in both
// directions: it is meaningless while wrapping, and must not come back
// stale when wrapping is turned off again.
func (s *State) ToggleWrap() {
	s.options.Wrap = !s.options.Wrap
	s.hOffset = 0
}

// ToggleNumber flips the line number gutter. Offsets are untouched.
func (s *State) ToggleNumber() {
	s.options.Number = !s.options.Number
}

// Title returns the display label for the surrounding frame.
func (s *State) Title() string {
	return s.title
}

// LineCount returns the number of logical lines.
func (s *State) LineCount() int {
	return len(s.lines)
}

// VerticalOffset returns the index of the line at the top of the window.
func (s *State) VerticalOffset() int {
	return s.vOffset
}

// HorizontalOffset returns the leftmost visible column in unwrapped mode.
func (s *State) HorizontalOffset() int {
	return s.hOffset
}

// MaxLineWidth returns the rendered width of the widest line.
func (s *State) MaxLineWidth() int {
	return s.maxLineWidth
}

// Options returns the current display toggles.
func (s *State) Options() Options {
	return s.options
}

// GutterWidth returns the columns taken by the line number gutter
// (number digits plus one padding column), or 0 when numbers are off.
func (s *State) GutterWidth() int {
	if !s.options.Number {
		return 0
	}

	return s.maxDigits + 1
}

// resolve applies the pending command against the body text width and the
// window height, then clears it. Offsets saturate at the content bounds;
// every command is a no-op on empty content.
func (s *State) resolve(textWidth, height int) {
	defer func() { s.command = CommandNone }()

	if len(s.lines) == 0 {
		return
	}

	switch s.command {
	case CommandNone:

	case CommandForward:
		if s.vOffset < len(s.lines)-1 {
			s.vOffset++
		}

	case CommandBackward:
		if s.vOffset > 0 {
			s.vOffset--
		}

	case CommandPageForward:
		s.pageForward(textWidth, height)

	case CommandPageBackward:
		s.pageBackward(textWidth, height)

	case CommandTop:
		s.vOffset = 0

	case CommandEnd:
		s.vOffset = len(s.lines) - 1

	case CommandRight:
		if s.hOffset < s.maxLineWidth-1 {
			s.hOffset++
		}

	case CommandLeft:
		if s.hOffset > 0 {
			s.hOffset--
		}
	}
}

// pageForward walks forward from the current top, accumulating rendered
// line heights until the window height is filled. A line that only fits
// partially is not skipped over: it becomes the new top so the next frame
// shows it in full. Walking off the end jumps to the last line instead of
// overshooting.
func (s *State) pageForward(textWidth, height int) {
	total := 0
	consumed := 0

	for i := s.vOffset; i < len(s.lines) && consumed < height; i++ {
		consumed++
		total += s.lineHeight(i, textWidth)

		if total >= height {
			s.vOffset += consumed
			if total > height {
				// The last counted line is only partially visible;
				// keep it as the new top.
				s.vOffset--
			}

			return
		}
	}

	// Not enough content left to fill a page: scroll to the end.
	s.vOffset = len(s.lines) - 1
}

// pageBackward is the symmetric walk from the line above the current top,
// with the same partial-fit correction so the landed-on top line is shown
// in full.
func (s *State) pageBackward(textWidth, height int) {
	total := 0
	consumed := 0

	for i := s.vOffset - 1; i >= 0 && consumed < height; i-- {
		consumed++
		total += s.lineHeight(i, textWidth)

		if total >= height {
			s.vOffset -= consumed
			if total > height {
				s.vOffset++
			}

			return
		}
	}

	// Ran out of content above: scroll to the top.
	s.vOffset = 0
}

// lineHeight returns the number of rows line i occupies at the given body
// width: always 1 when wrap is off, otherwise the wrapped row count of the
// plain text. The gutter and the body both go through this so they can
// never disagree about where a logical line starts.
func (s *State) lineHeight(i, textWidth int) int {
	if !s.options.Wrap {
		return 1
	}

	return wrappedHeight(s.plain[i], textWidth)
}
