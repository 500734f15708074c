// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and message handlers

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrllama123/stu/preview"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.helpView = viewport.New(m.contentWidth(), m.contentHeight())
			m.helpView.SetContent(helpContent())
			m.ready = true
		} else {
			m.helpView.Width = m.contentWidth()
			m.helpView.Height = m.contentHeight()
		}

		return m, nil

	case fileChangeMsg:
		m.deps.Debugf("[TUI] File changed on disk, reloading %s", m.path)

		return m, tea.Batch(
			m.reloadContent(),
			waitForFileChange(m.fileWatcher, m.deps.Debugf), // Continue watching
		)

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Reload failed: %v", msg.err)

			return m, nil
		}

		// Reloading rebuilds the engine, which resets both offsets. The
		// display toggles survive the reload.
		m.content = msg.content
		m.engine = newEngine(msg.content, m.engine.Options())
		m.lastReload = time.Now()
		m.errorMsg = ""
		m.setStatusMsg("Reloaded")

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a key press. While the help overlay is open, every
// key other than quit either closes it or scrolls it.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.quitting = true

		return m, tea.Quit
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, keys.Help):
			m.showHelp = false
		default:
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)

			return m, cmd
		}

		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		m.helpView.GotoTop()

	case key.Matches(msg, keys.Up):
		m.engine.ScrollBackward()

	case key.Matches(msg, keys.Down):
		m.engine.ScrollForward()

	case key.Matches(msg, keys.PageUp):
		m.engine.ScrollPageBackward()

	case key.Matches(msg, keys.PageDown):
		m.engine.ScrollPageForward()

	case key.Matches(msg, keys.Top):
		m.engine.ScrollToTop()

	case key.Matches(msg, keys.Bottom):
		m.engine.ScrollToEnd()

	case key.Matches(msg, keys.Left):
		if m.engine.Options().Wrap {
			m.setStatusMsg("Panning needs wrap off (w)")
		} else {
			m.engine.ScrollLeft()
		}

	case key.Matches(msg, keys.Right):
		if m.engine.Options().Wrap {
			m.setStatusMsg("Panning needs wrap off (w)")
		} else {
			m.engine.ScrollRight()
		}

	case key.Matches(msg, keys.Wrap):
		if m.content.Kind == preview.KindBinary {
			m.setStatusMsg("Hex view does not wrap")
		} else {
			m.engine.ToggleWrap()
			m.setStatusMsg(toggleLabel("Wrap", m.engine.Options().Wrap))
		}

	case key.Matches(msg, keys.Number):
		m.engine.ToggleNumber()
		m.setStatusMsg(toggleLabel("Line numbers", m.engine.Options().Number))

	case key.Matches(msg, keys.Reload):
		return m, m.reloadContent()
	}

	return m, nil
}

// toggleLabel formats a "Wrap on" style status message
func toggleLabel(name string, enabled bool) string {
	if enabled {
		return name + " on"
	}

	return name + " off"
}
