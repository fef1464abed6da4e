// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolo configuration.
type Config struct {
	Book  Book  `yaml:"book"`
	Shell Shell `yaml:"shell"`
	UI    UI    `yaml:"ui"`
}

// Book holds address book storage settings.
type Book struct {
	Path string `yaml:"path"`
}

// Shell holds interactive session settings.
type Shell struct {
	BatchSize int `yaml:"batch_size"` // Page size for the contact list in the TUI
}

// UI holds presentation settings.
type UI struct {
	Plain bool `yaml:"plain"` // Refuse the TUI even on a terminal
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Book: Book{
			Path: defaultBookPath(),
		},
		Shell: Shell{
			BatchSize: 5,
		},
	}
}

// defaultBookPath resolves the XDG data location for the address book.
func defaultBookPath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "rolo", "contacts.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "contacts.json"
	}
	return filepath.Join(home, ".local", "share", "rolo", "contacts.json")
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Book.Path == "" {
		return errors.New("config: book.path cannot be empty")
	}
	if c.Shell.BatchSize < 1 {
		return fmt.Errorf("config: shell.batch_size must be at least 1, got %d", c.Shell.BatchSize)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLO_BOOK_PATH, ROLO_BATCH_SIZE, ROLO_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLO_BOOK_PATH"); v != "" {
		c.Book.Path = v
	}
	if v := os.Getenv("ROLO_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_BATCH_SIZE %q: %w", v, err)
		}
		c.Shell.BatchSize = n
	}
	if v := os.Getenv("ROLO_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Book  *rawBook  `yaml:"book"`
	Shell *rawShell `yaml:"shell"`
	UI    *rawUI    `yaml:"ui"`
}

type rawBook struct {
	Path *string `yaml:"path"`
}

type rawShell struct {
	BatchSize *int `yaml:"batch_size"`
}

type rawUI struct {
	Plain *bool `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Book != nil {
		if layer.Book.Path != nil {
			c.Book.Path = *layer.Book.Path
		}
	}
	if layer.Shell != nil {
		if layer.Shell.BatchSize != nil {
			c.Shell.BatchSize = *layer.Shell.BatchSize
		}
	}
	if layer.UI != nil {
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
}
