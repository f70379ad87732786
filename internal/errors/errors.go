// Package errors provides domain-specific error types for shiftcrack.
//
// These types carry structured context (operation, path, config field)
// that helps callers decide how to handle failures and provides better
// diagnostics than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrNotFound            = errors.New("no key found")
	ErrInvalidKey          = errors.New("invalid key")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrNoInput             = errors.New("no input lines")
	ErrUnknownMode         = errors.New("unknown shift mode")
)

// ── Structured error types ───────────────────────────────────────────

// ResourceError represents a failure to read or write a file.
type ResourceError struct {
	Op   string // "open", "read", "write", "decompress", "hash"
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrResourceUnavailable) match any ResourceError.
func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceUnavailable
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // sentinel to match with errors.Is (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapResource creates a ResourceError.
func WrapResource(op, path string, err error) *ResourceError {
	return &ResourceError{Op: op, Path: path, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsNotFound reports whether err means key recovery gave up.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsResource reports whether err came from file I/O.
func IsResource(err error) bool {
	var re *ResourceError
	return errors.As(err, &re)
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
