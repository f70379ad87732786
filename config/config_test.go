package config

import (
	"testing"

	"shiftcrack/internal/errors"
)

// ── ParseKey ─────────────────────────────────────────────────────────

func TestParseKey(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"13", 13, false},
		{"0", 0, false},
		{"-1", -1, false},
		{"27", 27, false},
		{" 5 ", 5, false},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
		{"0x10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrInvalidKey) {
					t.Errorf("error should wrap ErrInvalidKey: %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

// ── Default ──────────────────────────────────────────────────────────

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DictionaryPath != DefaultDictionaryPath {
		t.Errorf("DictionaryPath = %q", cfg.DictionaryPath)
	}
	if cfg.SoftCap != 100 {
		t.Errorf("SoftCap = %d, want 100", cfg.SoftCap)
	}
	if cfg.KeySet {
		t.Error("no key should be set by default")
	}
}

// ── Config.Validate ──────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	withKey := func(c Config) Config {
		c.SetKey(13)
		return c
	}
	base := *Default()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid encrypt",
			cfg:     withKey(with(base, func(c *Config) { c.Operation, c.InputPath, c.OutputPath = OpEncrypt, "in", "out" })),
			wantErr: false,
		},
		{
			name:    "valid decrypt",
			cfg:     withKey(with(base, func(c *Config) { c.Operation, c.InputPath, c.OutputPath = OpDecrypt, "in", "out" })),
			wantErr: false,
		},
		{
			name:    "encrypt without key",
			cfg:     with(base, func(c *Config) { c.Operation, c.InputPath, c.OutputPath = OpEncrypt, "in", "out" }),
			wantErr: true,
		},
		{
			name:    "encrypt without output",
			cfg:     withKey(with(base, func(c *Config) { c.Operation, c.InputPath = OpEncrypt, "in" })),
			wantErr: true,
		},
		{
			name:    "valid crack to stdout",
			cfg:     with(base, func(c *Config) { c.Operation, c.InputPath = OpCrack, "in" }),
			wantErr: false,
		},
		{
			name:    "crack without input",
			cfg:     with(base, func(c *Config) { c.Operation = OpCrack }),
			wantErr: true,
		},
		{
			name:    "crack without dictionary",
			cfg:     with(base, func(c *Config) { c.Operation, c.InputPath, c.DictionaryPath = OpCrack, "in", "" }),
			wantErr: true,
		},
		{
			name:    "corpus info",
			cfg:     with(base, func(c *Config) { c.Operation = OpCorpusInfo }),
			wantErr: false,
		},
		{
			name:    "no operation",
			cfg:     base,
			wantErr: true,
		},
		{
			name:    "zero soft cap",
			cfg:     with(base, func(c *Config) { c.Operation, c.InputPath, c.SoftCap = OpCrack, "in", 0 }),
			wantErr: true,
		},
		{
			name:    "negative workers",
			cfg:     with(base, func(c *Config) { c.Operation, c.InputPath, c.Workers = OpCrack, "in", -1 }),
			wantErr: true,
		},
		{
			name:    "unknown operation",
			cfg:     with(base, func(c *Config) { c.Operation = "rotate" }),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func with(c Config, fn func(*Config)) Config {
	fn(&c)
	return c
}
