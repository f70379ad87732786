// Package config defines the runtime configuration for shiftcrack and
// provides helpers for parsing the key argument and validating a run.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"shiftcrack/internal/errors"
)

// Operation is what a single run does.
type Operation string

const (
	OpNone       Operation = ""
	OpEncrypt    Operation = "encrypt"
	OpDecrypt    Operation = "decrypt"
	OpCrack      Operation = "crack"
	OpCorpusInfo Operation = "corpus-info"
)

// Config holds every tuneable for a single shiftcrack run.
type Config struct {
	// ── Operation ────────────────────────────────────────────────────
	Operation  Operation
	InputPath  string
	OutputPath string // crack: empty means stdout
	Key        int
	KeySet     bool

	// ── Recovery ─────────────────────────────────────────────────────
	DictionaryPath string
	SoftCap        int
	Parallel       bool
	Workers        int

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Stats   bool
	DryRun  bool

	ConfigFile string
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		DictionaryPath: DefaultDictionaryPath,
		SoftCap:        DefaultSoftCap,
		Workers:        DefaultWorkers,
		Verbose:        DefaultVerbosity,
	}
}

// ── Key parsing ──────────────────────────────────────────────────────

// ParseKey parses a decimal integer key.  Any integer is accepted; the
// cipher reduces it into [0, 25].
func ParseKey(s string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &errors.ConfigError{
			Field:   "key",
			Value:   s,
			Message: "could not set key - expecting an integer argument",
			Hint:    "pass negative keys as --key=-3 or after --",
			Err:     errors.ErrInvalidKey,
		}
	}
	return key, nil
}

// SetKey records a parsed key.
func (c *Config) SetKey(key int) {
	c.Key = key
	c.KeySet = true
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Operation {
	case OpEncrypt, OpDecrypt:
		if c.InputPath == "" || c.OutputPath == "" {
			return &errors.ConfigError{
				Field:   string(c.Operation),
				Message: "expecting <input file> <key> <output file>",
				Hint:    fmt.Sprintf("shiftcrack -%c in.txt 13 out.txt", c.Operation[0]),
			}
		}
		if !c.KeySet {
			return &errors.ConfigError{
				Field:   "key",
				Message: "a key is required to " + string(c.Operation),
				Err:     errors.ErrInvalidKey,
			}
		}
	case OpCrack:
		if c.InputPath == "" {
			return &errors.ConfigError{
				Field:   "crack",
				Message: "expecting <input file> [output file]",
				Hint:    "shiftcrack -c out.txt",
			}
		}
	case OpCorpusInfo:
	case OpNone:
		return &errors.ConfigError{
			Field:   "mode",
			Message: "one of -e, -d, -c or --corpus-info is required",
			Hint:    "use --help for usage",
		}
	default:
		return &errors.ConfigError{Field: "mode", Value: c.Operation, Message: "unknown operation"}
	}

	if c.Operation == OpCrack || c.Operation == OpCorpusInfo {
		if c.DictionaryPath == "" {
			return &errors.ConfigError{
				Field:   "dictionary",
				Message: "a word list is required",
				Hint:    "default is " + DefaultDictionaryPath,
			}
		}
	}
	if c.SoftCap < 1 {
		return &errors.ConfigError{
			Field:   "soft-cap",
			Value:   c.SoftCap,
			Message: "must be at least 1",
		}
	}
	if c.Workers < 0 {
		return &errors.ConfigError{
			Field:   "workers",
			Value:   c.Workers,
			Message: "must not be negative",
			Hint:    "0 runs every key at once",
		}
	}
	return nil
}
