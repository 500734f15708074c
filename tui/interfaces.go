// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with mocks

package tui

import (
	"github.com/mrllama123/stu/config"
	"github.com/mrllama123/stu/preview"
)

// ContentLoader builds preview content from a file on disk
type ContentLoader interface {
	Load(path string, cfg config.Config) (*preview.Content, error)
}

// ConfigStore persists previewer configuration
type ConfigStore interface {
	Save(cfg config.Config) error
}

// Deps bundles the injected dependencies for the TUI
type Deps struct {
	Loader ContentLoader
	Store  ConfigStore
	Shared *config.SharedConfig
	Debugf func(format string, args ...interface{})
}
