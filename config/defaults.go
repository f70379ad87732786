package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, config file parsing, and environment variable
// loading.

const (
	// DefaultDictionaryPath is the word list looked up in the working
	// directory when --dictionary is not given.
	DefaultDictionaryPath = "dictionary.txt"

	// DefaultSoftCap is how many candidate words a crack attempt
	// collects before it stops scanning input.
	DefaultSoftCap = 100

	// DefaultWorkers limits concurrent key trials with --parallel.
	DefaultWorkers = 8

	// DefaultVerbosity prints warnings and the final status line.
	DefaultVerbosity = 1

	// EnvPrefix prefixes every supported environment variable.
	EnvPrefix = "SHIFTCRACK_"
)
