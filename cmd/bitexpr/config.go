package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the command settings. Flags override values read from the
// config file.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Backend  string `yaml:"backend"`
	NoResult string `yaml:"no_result"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Backend:  "native",
		NoResult: "none",
	}
}

// LoadConfig reads a YAML config file on top of the defaults. Keys missing
// from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
