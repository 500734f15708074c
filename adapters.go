// ABOUTME: Adapter implementations for TUI interfaces
// ABOUTME: Bridges package-level functions to the TUI dependency contracts

package main

import (
	"github.com/mrllama123/stu/config"
	"github.com/mrllama123/stu/preview"
)

// contentLoader adapts preview.Load to the tui.ContentLoader interface
type contentLoader struct{}

func (contentLoader) Load(path string, cfg config.Config) (*preview.Content, error) {
	return preview.Load(path, cfg)
}

// configStore adapts config.SaveConfig to the tui.ConfigStore interface
type configStore struct {
	path string
}

func (s configStore) Save(cfg config.Config) error {
	return config.SaveConfig(s.path, cfg)
}
