// Package cmd wires up the CLI flags and dispatches to the cipher core.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"shiftcrack/config"
	"shiftcrack/internal/core"
	"shiftcrack/internal/metrics"
	"shiftcrack/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X shiftcrack/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the appropriate shiftcrack mode.
func Execute(ctx context.Context, args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("shiftcrack", flag.ContinueOnError)

	// ── operation ────────────────────────────────────────────────
	var encrypt, decrypt, crack, corpusInfo bool
	fs.BoolVarP(&encrypt, "encrypt", "e", false, "Encrypt <input> with <key> into <output>")
	fs.BoolVarP(&decrypt, "decrypt", "d", false, "Decrypt <input> with <key> into <output>")
	fs.BoolVarP(&crack, "crack", "c", false, "Recover the key of <input> and print the plaintext")
	fs.BoolVar(&corpusInfo, "corpus-info", false, "Print word-list statistics and exit")

	var keyArg string
	fs.StringVarP(&keyArg, "key", "k", "", "Shift key (any integer; replaces the positional key)")

	// ── recovery ─────────────────────────────────────────────────
	fs.StringVarP(&cfg.DictionaryPath, "dictionary", "D", cfg.DictionaryPath, "Word list (.gz, .zst, .lz4 accepted)")
	fs.IntVar(&cfg.SoftCap, "soft-cap", cfg.SoftCap, "Maximum candidate words collected per crack")
	fs.BoolVarP(&cfg.Parallel, "parallel", "P", cfg.Parallel, "Try keys concurrently")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent key trials with --parallel (0 = all)")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print run metrics as JSON to stderr")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate arguments and exit")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("shiftcrack %s\n", version)
		return nil
	}

	// ── file + env layers under the flags ────────────────────────
	if err := applyLayers(fs, cfg); err != nil {
		return err
	}

	// ── operation + positional arguments ─────────────────────────
	op, err := selectOperation(encrypt, decrypt, crack, corpusInfo)
	if err != nil {
		return err
	}
	cfg.Operation = op

	if fs.Changed("key") {
		key, err := config.ParseKey(keyArg)
		if err != nil {
			return err
		}
		cfg.SetKey(key)
	}
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	if cfg.ConfigFile != "" {
		logger.Debug("config file %s", cfg.ConfigFile)
	}
	if cfg.DryRun {
		logger.Info("%s: configuration valid", cfg.Operation)
		return nil
	}

	// ── build + run ──────────────────────────────────────────────
	collector := metrics.New()
	mode, err := core.Build(cfg, logger, collector)
	if err != nil {
		return err
	}

	runErr := mode.Run(ctx)
	if cfg.Stats {
		fmt.Fprintln(os.Stderr, collector.JSON())
	}
	return runErr
}

// ── helpers ──────────────────────────────────────────────────────────

// applyLayers loads the config file and environment into a fresh
// default config, then copies every value whose flag was not given.
func applyLayers(fs *flag.FlagSet, cfg *config.Config) error {
	base := config.Default()

	path := cfg.ConfigFile
	if path == "" {
		path = config.ConfigFileFromEnv()
	}
	if path != "" {
		if err := config.LoadFile(path, base); err != nil {
			return err
		}
		cfg.ConfigFile = path
	}
	config.LoadFromEnv(base)

	if !fs.Changed("dictionary") {
		cfg.DictionaryPath = base.DictionaryPath
	}
	if !fs.Changed("soft-cap") {
		cfg.SoftCap = base.SoftCap
	}
	if !fs.Changed("parallel") {
		cfg.Parallel = base.Parallel
	}
	if !fs.Changed("workers") {
		cfg.Workers = base.Workers
	}
	if !fs.Changed("verbose") {
		cfg.Verbose = base.Verbose
	} else {
		cfg.Verbose += base.Verbose
	}
	if !fs.Changed("stats") {
		cfg.Stats = base.Stats
	}
	return nil
}

func selectOperation(encrypt, decrypt, crack, corpusInfo bool) (config.Operation, error) {
	var ops []config.Operation
	if encrypt {
		ops = append(ops, config.OpEncrypt)
	}
	if decrypt {
		ops = append(ops, config.OpDecrypt)
	}
	if crack {
		ops = append(ops, config.OpCrack)
	}
	if corpusInfo {
		ops = append(ops, config.OpCorpusInfo)
	}
	switch len(ops) {
	case 0:
		return config.OpNone, nil
	case 1:
		return ops[0], nil
	default:
		return config.OpNone, fmt.Errorf("-e, -d, -c and --corpus-info are mutually exclusive")
	}
}

func parsePositional(cfg *config.Config, remaining []string) error {
	switch cfg.Operation {
	case config.OpEncrypt, config.OpDecrypt:
		// shiftcrack -e in.txt 13 out.txt
		// shiftcrack -e --key 13 in.txt out.txt
		if cfg.KeySet && len(remaining) == 2 {
			cfg.InputPath, cfg.OutputPath = remaining[0], remaining[1]
			return nil
		}
		if len(remaining) != 3 {
			return fmt.Errorf("expecting four arguments: -%c <input file> <key> <output file>", cfg.Operation[0])
		}
		key, err := config.ParseKey(remaining[1])
		if err != nil {
			return err
		}
		cfg.InputPath, cfg.OutputPath = remaining[0], remaining[2]
		cfg.SetKey(key)

	case config.OpCrack:
		switch len(remaining) {
		case 1:
			cfg.InputPath = remaining[0]
		case 2:
			cfg.InputPath, cfg.OutputPath = remaining[0], remaining[1]
		default:
			return fmt.Errorf("expecting two arguments: -c <input file> [output file]")
		}

	case config.OpCorpusInfo:
		switch len(remaining) {
		case 0:
		case 1:
			cfg.DictionaryPath = remaining[0]
		default:
			return fmt.Errorf("too many arguments for --corpus-info")
		}

	default:
		if len(remaining) > 0 {
			return fmt.Errorf("unexpected argument %q (use --help for usage)", remaining[0])
		}
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `shiftcrack – Shift Cipher Tool v%s

Encrypts, decrypts and cracks Caesar-shifted text files.

Usage:
  shiftcrack -e <input file> <key> <output file>   Encrypt
  shiftcrack -d <input file> <key> <output file>   Decrypt
  shiftcrack -c <input file> [output file]         Crack (stdout by default)
  shiftcrack --corpus-info [word list]             Inspect the word list

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  shiftcrack -e testInput.txt 13 testOutput.txt
  shiftcrack -c testOutput.txt
  shiftcrack -d --key=-3 secret.txt plain.txt    Negative keys need --key
  shiftcrack -c -P -D words.txt.zst secret.txt   Parallel crack, compressed list

Environment:
  SHIFTCRACK_CONFIG, SHIFTCRACK_DICTIONARY, SHIFTCRACK_SOFT_CAP,
  SHIFTCRACK_PARALLEL, SHIFTCRACK_WORKERS, SHIFTCRACK_VERBOSE, SHIFTCRACK_STATS
`)
}
