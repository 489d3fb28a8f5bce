package options

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root of a configuration file.
type Config struct {
	Version         string       `yaml:"version"`
	Seed            *uint64      `yaml:"seed,omitempty"`
	LogLevel        string       `yaml:"log_level,omitempty"`
	StringLength    Range        `yaml:"string_length"`
	CollectionCount Range        `yaml:"collection_count"`
	Types           []TypeConfig `yaml:"types,omitempty"`
}

// TypeConfig customizes the direct fields of one struct type, named as reflect prints it ("store.Order").
type TypeConfig struct {
	Name string `yaml:"name"`
	// Fields assigns fixed values, coerced to the field's type.
	Fields map[string]any `yaml:"fields,omitempty"`
	// Generators selects a named generator per field.
	Generators map[string]string `yaml:"generators,omitempty"`
	// Skip lists fields left at their zero value.
	Skip []string `yaml:"skip,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:         "1",
		LogLevel:        "warning",
		StringLength:    DefaultStringLength,
		CollectionCount: DefaultCollectionCount,
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	for i := range cfg.Types {
		tc := &cfg.Types[i]
		if tc.Fields == nil {
			tc.Fields = map[string]any{}
		}

		if tc.Generators == nil {
			tc.Generators = map[string]string{}
		}
	}
}

// Validate checks both ranges and that every type entry is named once.
func (c *Config) Validate() error {
	if err := c.StringLength.Validate(); err != nil {
		return fmt.Errorf("%w: string_length: %w", ErrInvalidConfig, err)
	}

	if err := c.CollectionCount.Validate(); err != nil {
		return fmt.Errorf("%w: collection_count: %w", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Types))
	for i, tc := range c.Types {
		if tc.Name == "" {
			return fmt.Errorf("%w: types[%d] has no name", ErrInvalidConfig, i)
		}

		if _, dup := seen[tc.Name]; dup {
			return fmt.Errorf("%w: type %s is configured twice", ErrInvalidConfig, tc.Name)
		}
		seen[tc.Name] = struct{}{}
	}

	return nil
}

// Type returns the settings for the named type, or nil.
func (c *Config) Type(name string) *TypeConfig {
	if c == nil {
		return nil
	}

	for i := range c.Types {
		if c.Types[i].Name == name {
			return &c.Types[i]
		}
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
