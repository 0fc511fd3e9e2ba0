package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SCRAPDIARY_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SCRAPDIARY_OUTPUT_PATH -> output_path,
	// SCRAPDIARY_PREVIEW__PORT -> preview.port.
	if err := k.Load(env.Provider("SCRAPDIARY_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SCRAPDIARY_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validSources is the set of recognized source values.
var validSources = map[SourceType]bool{
	SourceDatabase: true,
	SourceFile:     true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if !validSources[c.Source] {
		return fmt.Errorf("invalid source %q: must be one of database, file", c.Source)
	}

	switch c.Source {
	case SourceDatabase:
		if c.DatabasePath == "" {
			return fmt.Errorf("database_path is required when source is database")
		}
	case SourceFile:
		if c.SnapshotPath == "" {
			return fmt.Errorf("snapshot_path is required when source is file")
		}
	}

	if c.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative")
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}

	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return fmt.Errorf("preview.port %d out of range", c.Preview.Port)
	}

	return nil
}
