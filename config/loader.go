package config

// loader.go - configuration loading from a YAML file and environment
// variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables
//   3. Config file (--config or SHIFTCRACK_CONFIG)
//   4. Defaults   (defaults.go)

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"shiftcrack/internal/errors"
)

// FileConfig is the on-disk YAML shape.  Pointer fields distinguish
// "unset" from an explicit zero or false.
type FileConfig struct {
	Dictionary string `yaml:"dictionary"`
	SoftCap    *int   `yaml:"soft_cap"`
	Parallel   *bool  `yaml:"parallel"`
	Workers    *int   `yaml:"workers"`
	Verbose    *int   `yaml:"verbose"`
	Stats      *bool  `yaml:"stats"`
}

// LoadFile overlays the YAML file at path onto cfg.  Unknown keys are
// rejected so typos do not pass silently.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapResource("read", path, err)
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return &errors.ConfigError{
			Field:   "config",
			Value:   path,
			Message: err.Error(),
		}
	}

	fc.apply(cfg)
	cfg.ConfigFile = path
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.Dictionary != "" {
		cfg.DictionaryPath = fc.Dictionary
	}
	if fc.SoftCap != nil {
		cfg.SoftCap = *fc.SoftCap
	}
	if fc.Parallel != nil {
		cfg.Parallel = *fc.Parallel
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Stats != nil {
		cfg.Stats = *fc.Stats
	}
}

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the SHIFTCRACK_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// ConfigFileFromEnv returns SHIFTCRACK_CONFIG, if set.
func ConfigFileFromEnv() string {
	return os.Getenv(EnvPrefix + "CONFIG")
}

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "DICTIONARY"); v != "" {
		cfg.DictionaryPath = v
	}
	if v, ok := envInt(EnvPrefix + "SOFT_CAP"); ok && v > 0 {
		cfg.SoftCap = v
	}
	if envBool(EnvPrefix + "PARALLEL") {
		cfg.Parallel = true
	}
	if v, ok := envInt(EnvPrefix + "WORKERS"); ok && v >= 0 {
		cfg.Workers = v
	}
	if v, ok := envInt(EnvPrefix + "VERBOSE"); ok && v >= 0 {
		cfg.Verbose = v
	}
	if envBool(EnvPrefix + "STATS") {
		cfg.Stats = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
