// ABOUTME: Configuration management for previewer display settings
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable previewer settings
type Config struct {
	// Display toggles applied when a preview opens
	Wrap   bool `toml:"wrap"`
	Number bool `toml:"number"`

	// TabWidth is the number of spaces a tab expands to in text previews
	TabWidth int `toml:"tab_width"`

	// MaxPreviewBytes caps how much of a file is read into a preview
	MaxPreviewBytes int64 `toml:"max_preview_bytes"`

	// UI colors (ANSI 256 or hex, lipgloss syntax)
	GutterColor string `toml:"gutter_color"`
	BorderColor string `toml:"border_color"`
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/stu/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./stu.toml"); err == nil {
		return "./stu.toml"
	}

	// Then try ~/.config/stu/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./stu.toml"
	}

	return filepath.Join(home, ".config", "stu", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return normalize(config), nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default previewer configuration
func DefaultConfig() Config {
	return Config{
		Wrap:            true,
		Number:          true,
		TabWidth:        4,
		MaxPreviewBytes: 1 << 20, // 1 MiB
		GutterColor:     "240",
		BorderColor:     "62",
	}
}

// normalize replaces out-of-range values from a hand-edited file with the
// corresponding defaults
func normalize(config Config) Config {
	defaults := DefaultConfig()

	if config.TabWidth < 1 || config.TabWidth > 16 {
		config.TabWidth = defaults.TabWidth
	}

	if config.MaxPreviewBytes < 1 {
		config.MaxPreviewBytes = defaults.MaxPreviewBytes
	}

	if config.GutterColor == "" {
		config.GutterColor = defaults.GutterColor
	}

	if config.BorderColor == "" {
		config.BorderColor = defaults.BorderColor
	}

	return config
}

// SharedConfig wraps Config with a mutex for thread-safe access between the
// TUI and the file watcher goroutine
type SharedConfig struct {
	mu     sync.RWMutex
	config Config
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SharedConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Update updates the config (thread-safe write)
func (sc *SharedConfig) Update(config Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = config
}
