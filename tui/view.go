// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function and all render helpers

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrllama123/stu/preview"
)

// View renders the TUI
func (m model) View() string {
	if m.quitting {
		return "Saving config and exiting...\n"
	}

	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render(m.engine.Title())

	var inner string
	if m.showHelp {
		inner = m.helpView.View()
	} else {
		inner = m.renderContent()
	}

	framed := m.borderStyle.
		Width(m.contentWidth()).
		Height(m.contentHeight()).
		Render(inner)

	return title + "\n" + framed + "\n" + m.renderStatus() + "\n" + m.renderHelp()
}

// renderContent lays out the gutter and body for the current frame
func (m model) renderContent() string {
	frame := m.engine.Render(m.contentWidth(), m.contentHeight())

	body := lipgloss.NewStyle().
		Padding(0, 1).
		Render(strings.Join(frame.Body, "\n"))

	if frame.Gutter == nil {
		return body
	}

	gutter := m.gutterStyle.Render(strings.Join(frame.Gutter, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, gutter, body)
}

// renderStatus renders the bottom status bar
func (m model) renderStatus() string {
	if m.errorMsg != "" {
		return errorStyle.Render(m.errorMsg)
	}

	parts := []string{
		m.content.Kind.String(),
		preview.FormatSize(m.content.Size),
		m.positionLabel(),
	}

	options := m.engine.Options()
	if options.Wrap {
		parts = append(parts, "wrap")
	} else if m.engine.HorizontalOffset() > 0 {
		parts = append(parts, fmt.Sprintf("col %d", m.engine.HorizontalOffset()+1))
	}

	if m.content.Truncated {
		parts = append(parts, "truncated")
	}

	// Transient message takes the last slot until it expires
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		parts = append(parts, m.statusMsg)
	}

	status := strings.Join(parts, " · ")

	return statusStyle.Render(preview.TruncateToWidth(status, m.width-2))
}

// positionLabel formats the "line x/N (p%)" status segment
func (m model) positionLabel() string {
	total := m.engine.LineCount()
	if total == 0 {
		return "empty"
	}

	current := m.engine.VerticalOffset() + 1

	return fmt.Sprintf("line %d/%d (%d%%)", current, total, current*100/total)
}

// renderHelp renders the one-line key hint below the status bar
func (m model) renderHelp() string {
	if m.showHelp {
		return helpStyle.Render("?: close help • ↑/↓: scroll")
	}

	return helpStyle.Render("↑/↓: scroll • pgup/pgdn: page • w: wrap • n: numbers • ?: help • q: quit")
}

// helpContent builds the full key reference shown in the help overlay
func helpContent() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{
			"Scrolling",
			[][2]string{
				{"↑/k, ↓/j", "line up / down"},
				{"pgup/b/ctrl+u", "page up"},
				{"pgdn/f/space/ctrl+d", "page down"},
				{"g/home, G/end", "top / bottom"},
				{"←/h, →/l", "pan left / right (wrap off)"},
			},
		},
		{
			"Display",
			[][2]string{
				{"w", "toggle word wrap"},
				{"n", "toggle line numbers"},
			},
		},
		{
			"File",
			[][2]string{
				{"r", "reload from disk"},
			},
		},
		{
			"Other",
			[][2]string{
				{"?", "toggle this help"},
				{"q, ctrl+c", "quit"},
			},
		},
	}

	var builder strings.Builder
	for _, section := range sections {
		builder.WriteString(titleStyle.Render(section.title))
		builder.WriteString("\n")

		for _, row := range section.rows {
			fmt.Fprintf(&builder, "  %-22s %s\n", row[0], row[1])
		}

		builder.WriteString("\n")
	}

	builder.WriteString(helpStyle.Render("Changed toggles are saved to the config file on quit."))

	return builder.String()
}
