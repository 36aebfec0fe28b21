// Package config loads optional run configuration from a YAML file.
// Command-line flags always win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the vif2csv option surface. Pointer fields distinguish
// "unset" from an explicit false so flag overrides compose cleanly.
type Config struct {
	Header   *bool  `yaml:"header"`
	Counter  *bool  `yaml:"counter"`
	Today    *bool  `yaml:"today"`
	Day      string `yaml:"day"`
	Long     *bool  `yaml:"long"`
	Stats    *bool  `yaml:"stats"`
	Database string `yaml:"database"`
	Output   string `yaml:"output"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
