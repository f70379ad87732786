// Package core is the orchestration layer.  It composes the cipher,
// corpus and recovery packages into complete operational modes and
// provides a builder that selects the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	cipher, text  →  corpus  →  crack  →  core  →  cmd (CLI)
//
// File reading and writing happen here and nowhere below, so the
// lower packages stay pure.
package core

import "context"

// Mode represents a complete operational mode of shiftcrack (transform,
// crack, or corpus info).  Each mode owns its full lifecycle from
// reading input to writing results.
type Mode interface {
	Run(ctx context.Context) error
}
