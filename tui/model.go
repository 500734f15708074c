// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model for the file previewer with live reload

// Package tui provides the interactive terminal viewer around the scroll
// engine: key handling, live reload of the previewed file, and the frame
// chrome (title, border, status bar, help).
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/mrllama123/stu/preview"
	"github.com/mrllama123/stu/scroll"
)

// Layout constants for UI dimensions
const (
	titleHeight     = 1 // File name line above the content frame
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	borderHeight    = 2 // Top and bottom border of the content frame
	borderWidth     = 2 // Left and right border of the content frame
	totalUIChrome   = titleHeight + statusBarHeight + helpHeight + borderHeight

	// Minimum content dimensions to ensure usability
	minContentWidth  = 10
	minContentHeight = 3
)

// Interaction constants
const (
	statusMessageDuration = 5 * time.Second        // How long to show transient status messages
	reloadDebounce        = 100 * time.Millisecond // Wait for atomic writes to complete
)

// Options contains configuration for running the TUI
type Options struct {
	Path     string // File to preview
	DebugLog bool   // Enable debug logging to file
}

// model holds the TUI state
type model struct {
	deps Deps
	path string

	// Content and scroll state
	content *preview.Content
	engine  *scroll.State

	// File watching
	fileWatcher *fsnotify.Watcher
	lastReload  time.Time

	// UI state
	width        int
	height       int
	ready        bool
	quitting     bool
	statusMsg    string
	statusMsgAge time.Time
	errorMsg     string
	showHelp     bool
	helpView     viewport.Model

	// Styles carrying the configured colors
	gutterStyle lipgloss.Style
	borderStyle lipgloss.Style
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Wrap     key.Binding
	Number   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "pan left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "pan right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b", "ctrl+u"),
		key.WithHelp("pgup/b", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "f", " ", "ctrl+d"),
		key.WithHelp("pgdn/f", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Wrap: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "toggle wrap"),
	),
	Number: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "toggle numbers"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// fileChangeMsg is sent when the previewed file changes on disk
type fileChangeMsg struct{}

// reloadCompleteMsg is sent after a content reload completes
type reloadCompleteMsg struct {
	content *preview.Content
	err     error
}

// Run starts the TUI with injected dependencies
func Run(opts Options, deps Deps) error {
	cfg := deps.Shared.Get()

	content, err := deps.Loader.Load(opts.Path, cfg)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(opts.Path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch file: %w", err)
	}

	m := initModel(opts, deps, content, watcher)

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	watcher.Close()

	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Persist the display toggles the session ended with
	if m, ok := finalModel.(model); ok && m.engine != nil {
		cfg := deps.Shared.Get()
		options := m.engine.Options()
		cfg.Wrap = options.Wrap
		cfg.Number = options.Number
		deps.Shared.Update(cfg)

		if err := deps.Store.Save(cfg); err != nil {
			deps.Debugf("[TUI] Failed to save config: %v", err)
		}
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(opts Options, deps Deps, content *preview.Content, watcher *fsnotify.Watcher) model {
	cfg := deps.Shared.Get()

	return model{
		deps:        deps,
		path:        opts.Path,
		content:     content,
		engine:      newEngine(content, scroll.Options{Number: cfg.Number, Wrap: cfg.Wrap}),
		fileWatcher: watcher,
		lastReload:  time.Now(),
		gutterStyle: gutterStyle.Foreground(lipgloss.Color(cfg.GutterColor)),
		borderStyle: borderStyle.BorderForeground(lipgloss.Color(cfg.BorderColor)),
	}
}

// newEngine builds scroll state for the content. Binary previews pan
// instead of wrapping: hex rows are fixed-width and wrapping them would
// tear the columns apart.
func newEngine(content *preview.Content, options scroll.Options) *scroll.State {
	if content.Kind == preview.KindBinary {
		options.Wrap = false
	}

	return scroll.New(content.Lines, content.Plain, content.Title, options)
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return tea.Batch(
		waitForFileChange(m.fileWatcher, m.deps.Debugf),
		tea.EnterAltScreen,
	)
}

// waitForFileChange returns a command that waits for file system events
func waitForFileChange(watcher *fsnotify.Watcher, debugf func(string, ...interface{})) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				// Only react to content changes
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(reloadDebounce)
					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}

				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// reloadContent rebuilds the preview in the background
func (m model) reloadContent() tea.Cmd {
	return func() tea.Msg {
		content, err := m.deps.Loader.Load(m.path, m.deps.Shared.Get())
		if err != nil {
			return reloadCompleteMsg{err: err}
		}

		return reloadCompleteMsg{content: content}
	}
}

// setStatusMsg sets a transient status message with current timestamp
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// contentWidth returns the inner width of the content frame
func (m model) contentWidth() int {
	w := m.width - borderWidth
	if w < minContentWidth {
		w = minContentWidth
	}

	return w
}

// contentHeight returns the inner height of the content frame
func (m model) contentHeight() int {
	h := m.height - totalUIChrome
	if h < minContentHeight {
		h = minContentHeight
	}

	return h
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)
