package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"filmrec/internal/store"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = "filmrec.toml"

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	UI      UISettings     `toml:"ui"`
	Search  SearchSettings `toml:"search"`
	Log     LogSettings    `toml:"log"`
}

// UISettings holds the labels shown by the shell
type UISettings struct {
	Title        string `toml:"title"`
	SearchLabel  string `toml:"search_label"`
	SearchButton string `toml:"search_button"`
	EmptyMessage string `toml:"empty_message"`
}

// SearchSettings controls how the store filters
type SearchSettings struct {
	Mode string `toml:"mode"` // "narrow" or "seed"
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct{}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// LoadFromPath loads configuration from path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to path, creating parent directories
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports values the application cannot use
func (c *Config) Validate() error {
	if _, err := c.SearchMode(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// SearchMode returns the store mode named by the search settings
func (c *Config) SearchMode() (store.Mode, error) {
	return store.ParseMode(c.Search.Mode)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			Title:        "Rekomendasi Film Terkini",
			SearchLabel:  "Cari Film",
			SearchButton: "Cari",
			EmptyMessage: "Tidak ada film ditemukan",
		},
		Search: SearchSettings{
			Mode: store.ModeNarrow.String(),
		},
		Log: LogSettings{
			File:  "filmrec.log",
			Level: "info",
		},
	}
}
