// ABOUTME: Tests for TUI message handling and key dispatch
// ABOUTME: Verifies keys map to scroll commands, reload, and the help overlay

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrllama123/stu/preview"
	"github.com/mrllama123/stu/scroll"
)

func TestKeyScrolling(t *testing.T) {
	tests := []struct {
		name  string
		msgs  []tea.KeyMsg
		wantV int
	}{
		{"down", []tea.KeyMsg{keyPress('j')}, 1},
		{"down arrow", []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
		{"down then up", []tea.KeyMsg{keyPress('j'), keyPress('k')}, 0},
		{"up at top clamps", []tea.KeyMsg{keyPress('k')}, 0},
		{"bottom", []tea.KeyMsg{keyPress('G')}, 19},
		{"bottom then top", []tea.KeyMsg{keyPress('G'), keyPress('g')}, 0},
		{"page down", []tea.KeyMsg{keyPress('f')}, 7},
		{"page down space", []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}}, 7},
	}

	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createTestModel(t, testContent(lines...))

			for _, msg := range tt.msgs {
				updated, _ := m.Update(msg)
				m = settle(updated.(model))
			}

			if got := m.engine.VerticalOffset(); got != tt.wantV {
				t.Errorf("VerticalOffset() = %d, want %d", got, tt.wantV)
			}
		})
	}
}

func TestKeyQuit(t *testing.T) {
	m := createTestModel(t, testContent("x"))

	updated, cmd := m.Update(keyPress('q'))

	if !updated.(model).quitting {
		t.Error("quitting not set")
	}

	if cmd == nil {
		t.Fatal("expected a quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestKeyToggleWrap(t *testing.T) {
	m := createTestModel(t, testContent("some text"))

	updated, _ := m.Update(keyPress('w'))
	m = updated.(model)

	if m.engine.Options().Wrap {
		t.Error("wrap still on after toggle")
	}

	if m.statusMsg != "Wrap off" {
		t.Errorf("statusMsg = %q, want %q", m.statusMsg, "Wrap off")
	}
}

func TestKeyToggleWrapRefusedForBinary(t *testing.T) {
	content := testContent("00000000  00 01")
	content.Kind = preview.KindBinary

	m := createTestModel(t, content)

	updated, _ := m.Update(keyPress('w'))
	m = updated.(model)

	if m.engine.Options().Wrap {
		t.Error("hex view must not wrap")
	}
}

func TestKeyToggleNumbers(t *testing.T) {
	m := createTestModel(t, testContent("some text"))

	updated, _ := m.Update(keyPress('n'))
	m = updated.(model)

	if m.engine.Options().Number {
		t.Error("numbers still on after toggle")
	}
}

func TestKeyPanningNeedsWrapOff(t *testing.T) {
	m := createTestModel(t, testContent("a very long line that could pan"))

	// With wrap on, panning is refused with a hint.
	updated, _ := m.Update(keyPress('l'))
	m = settle(updated.(model))

	if got := m.engine.HorizontalOffset(); got != 0 {
		t.Errorf("HorizontalOffset() = %d, want 0 while wrapping", got)
	}

	if m.statusMsg == "" {
		t.Error("expected a status hint about wrap")
	}

	// Wrap off, panning works.
	updated, _ = m.Update(keyPress('w'))
	m = updated.(model)
	updated, _ = m.Update(keyPress('l'))
	m = settle(updated.(model))

	if got := m.engine.HorizontalOffset(); got != 1 {
		t.Errorf("HorizontalOffset() = %d, want 1 with wrap off", got)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := createTestModel(t, testContent("a", "b", "c"))

	updated, _ := m.Update(keyPress('?'))
	m = updated.(model)

	if !m.showHelp {
		t.Fatal("help overlay not shown")
	}

	// Keys scroll the overlay, not the content.
	updated, _ = m.Update(keyPress('j'))
	m = settle(updated.(model))

	if got := m.engine.VerticalOffset(); got != 0 {
		t.Errorf("content scrolled under the help overlay: offset %d", got)
	}

	updated, _ = m.Update(keyPress('?'))
	m = updated.(model)

	if m.showHelp {
		t.Error("help overlay still shown after second toggle")
	}
}

func TestReloadComplete(t *testing.T) {
	m := createTestModel(t, testContent("old line one", "old line two"))

	// Scroll away and turn numbers off, then reload.
	updated, _ := m.Update(keyPress('j'))
	m = settle(updated.(model))
	updated, _ = m.Update(keyPress('n'))
	m = updated.(model)

	updated, _ = m.Update(reloadCompleteMsg{content: testContent("new line")})
	m = updated.(model)

	if got := m.engine.LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want 1 after reload", got)
	}

	if got := m.engine.VerticalOffset(); got != 0 {
		t.Errorf("VerticalOffset() = %d, want 0 after reload", got)
	}

	if m.engine.Options().Number {
		t.Error("numbers toggle should survive the reload")
	}
}

func TestReloadError(t *testing.T) {
	m := createTestModel(t, testContent("x"))

	updated, _ := m.Update(reloadCompleteMsg{err: errors.New("boom")})
	m = updated.(model)

	if m.errorMsg == "" {
		t.Error("errorMsg not set on reload failure")
	}

	// The old content stays on screen.
	if got := m.engine.LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want the previous content intact", got)
	}
}

func TestFileChangeTriggersReload(t *testing.T) {
	m := createTestModel(t, testContent("x"))
	m.fileWatcher = nil

	// The message must produce a command batch (reload + rewatch) without
	// touching the engine.
	_, cmd := m.Update(fileChangeMsg{})

	if cmd == nil {
		t.Error("expected reload commands for fileChangeMsg")
	}
}

func TestNewEngineForcesPanForBinary(t *testing.T) {
	content := testContent("row")
	content.Kind = preview.KindBinary

	engine := newEngine(content, scroll.Options{Number: true, Wrap: true})

	if engine.Options().Wrap {
		t.Error("binary engine should have wrap off")
	}
}
