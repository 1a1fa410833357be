// Package config loads the serve command's configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RedisConfig holds connection settings for the Redis history backend.
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
	// TTL is a Go duration string such as "24h". Empty means no expiry.
	TTL string `yaml:"ttl" json:"ttl"`
}

// HistoryConfig selects and tunes the calculation history backend.
type HistoryConfig struct {
	// Backend is one of "", "memory", "file" or "redis". Empty disables
	// history entirely.
	Backend string `yaml:"backend" json:"backend"`
	Limit   int    `yaml:"limit" json:"limit"`
	// Path is the tape file for the file backend.
	Path string `yaml:"path" json:"path"`
	// Record is "all" or "ok". With "ok" only successful calculations
	// are persisted.
	Record string `yaml:"record" json:"record"`
	// EncryptionKey enables at-rest encryption of recorded inputs when
	// set. Hex encoded, 64 characters (32 bytes).
	EncryptionKey string      `yaml:"encryption_key" json:"encryption_key"`
	Redis         RedisConfig `yaml:"redis" json:"redis"`
}

// Config is the root configuration for the serving surfaces.
type Config struct {
	Listen   string        `yaml:"listen" json:"listen"`
	LogLevel string        `yaml:"log_level" json:"log_level"`
	History  HistoryConfig `yaml:"history" json:"history"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		History: HistoryConfig{
			Backend: "",
			Limit:   100,
			Record:  "all",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "tancalc:",
			},
		},
	}
}

// Load reads a configuration file (YAML or JSON, chosen by extension).
// A missing file is not an error: the defaults come back unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config yaml: %w", err)
		}
	}

	return cfg, nil
}
