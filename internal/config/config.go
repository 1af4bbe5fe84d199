package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for Sigscan. Fields are
// pointers so unset keys defer to the next precedence level: CLI flag over
// local file over global file over built-in default.
type FileConfig struct {
	Include     *string `yaml:"include"`
	Exclude     *string `yaml:"exclude"`
	MaxBytes    *int64  `yaml:"max_bytes"`
	Threads     *int    `yaml:"threads"`
	MinSeverity *string `yaml:"min_severity"`
	NoColor     *bool   `yaml:"no_color"`
	NoCache     *bool   `yaml:"no_cache"`
	Baseline    *string `yaml:"baseline"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .sigscan.yml/.yaml and sigscan.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".sigscan.yml", ".sigscan.yaml", "sigscan.yml", "sigscan.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "sigscan", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
