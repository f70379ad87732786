package core

import (
	"fmt"
	"os"

	"shiftcrack/cipher"
	"shiftcrack/config"
	"shiftcrack/corpus"
	"shiftcrack/crack"
	"shiftcrack/internal/metrics"
	"shiftcrack/util"
)

// Build constructs the appropriate Mode from the given configuration.
// collector may be nil.
func Build(cfg *config.Config, logger *util.Logger, collector *metrics.Collector) (Mode, error) {
	switch cfg.Operation {
	case config.OpEncrypt:
		return buildTransform(cfg, cipher.Encrypt, logger, collector)
	case config.OpDecrypt:
		return buildTransform(cfg, cipher.Decrypt, logger, collector)
	case config.OpCrack:
		return buildCrack(cfg, logger, collector), nil
	case config.OpCorpusInfo:
		return &CorpusInfoMode{
			Corpus: buildCorpus(cfg, logger),
			Stdout: os.Stdout,
		}, nil
	default:
		return nil, fmt.Errorf("no mode for operation %q", cfg.Operation)
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildTransform(cfg *config.Config, mode cipher.Mode, logger *util.Logger, collector *metrics.Collector) (Mode, error) {
	c := cipher.New(cfg.Key)
	if err := c.SetMode(mode); err != nil {
		return nil, err
	}
	return &TransformMode{
		Cipher:     c,
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Logger:     logger.With("transform"),
		Metrics:    collector,
	}, nil
}

func buildCrack(cfg *config.Config, logger *util.Logger, collector *metrics.Collector) Mode {
	return &CrackMode{
		Recoverer: &crack.Recoverer{
			Dict:    buildCorpus(cfg, logger),
			SoftCap: cfg.SoftCap,
			Metrics: collector,
			Logger:  logger.With("crack"),
		},
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Parallel:   cfg.Parallel,
		Workers:    cfg.Workers,
		Stdout:     os.Stdout,
		Logger:     logger.With("crack"),
	}
}

// ── shared helpers ───────────────────────────────────────────────────

func buildCorpus(cfg *config.Config, logger *util.Logger) *corpus.Corpus {
	return corpus.New(cfg.DictionaryPath, logger)
}
