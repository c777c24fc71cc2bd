// Package config loads optional emitter settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when none is given explicitly.
const DefaultPath = ".errnogen.yaml"

// Config holds the identifier names used in generated output.
type Config struct {
	// Type is the error type name in declarations and definitions.
	Type string `yaml:"type"`

	// Entry is the initializer name used in table entries.
	Entry string `yaml:"entry"`
}

// Load reads the config at path and overlays it on defaults. When explicit
// is false the path is the implicit default location and a missing file is
// not an error.
func Load(path string, explicit bool, defaults Config) (Config, error) {
	cfg := defaults

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var over Config
	if err := yaml.Unmarshal(data, &over); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if over.Type != "" {
		cfg.Type = over.Type
	}
	if over.Entry != "" {
		cfg.Entry = over.Entry
	}
	return cfg, nil
}
