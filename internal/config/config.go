package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds operator-level rolecall settings.
type Config struct {
	// RolesDir overrides the role storage directory.
	RolesDir string `yaml:"roles_dir"`
	// OSDescriptor overrides the detected operating system descriptor
	// substituted into the built-in role templates.
	OSDescriptor string `yaml:"os_descriptor"`
	// ShellDescriptor overrides the detected shell name.
	ShellDescriptor string `yaml:"shell_descriptor"`
}

// Load loads rolecall config from the given path. If path is empty,
// tries the ROLECALL_CONFIG env var, then ~/.rolecall/config.yaml.
// Returns a zero-value config (not an error) if no file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("ROLECALL_CONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, ".rolecall", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read rolecall config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse rolecall config: %w", err)
	}
	return &cfg, nil
}
