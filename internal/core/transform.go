package core

import (
	"context"
	"fmt"

	"shiftcrack/cipher"
	"shiftcrack/internal/errors"
	"shiftcrack/internal/metrics"
	"shiftcrack/util"
)

// TransformMode encrypts or decrypts a file line by line with a known
// key and writes the result to another file.
type TransformMode struct {
	Cipher     *cipher.Cipher
	InputPath  string
	OutputPath string
	Logger     *util.Logger
	Metrics    *metrics.Collector
}

// Run reads the input, transforms every line and writes the output.
// An empty input writes nothing.
func (m *TransformMode) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines, err := util.ReadLines(m.InputPath)
	if err != nil {
		m.Metrics.RecordError(err.Error())
		return err
	}
	m.Metrics.LinesRead(len(lines))
	m.Logger.Debug("%s: %d line(s) with %s", m.InputPath, len(lines), m.Cipher)

	if len(lines) == 0 {
		noInput(m.InputPath, m.Metrics, m.Logger)
		return nil
	}

	out := m.Cipher.UpdateLines(lines)
	if err := util.WriteLines(m.OutputPath, out); err != nil {
		m.Metrics.RecordError(err.Error())
		return err
	}
	m.Metrics.LinesWritten(len(out))

	m.Logger.Info("finished %s of %s with key %d; saved to file %s",
		m.Cipher.Mode(), m.InputPath, m.Cipher.Key(), m.OutputPath)
	return nil
}

// noInput records an empty input file.  It is a warning, not a failure:
// the run still succeeds with nothing written.
func noInput(path string, mc *metrics.Collector, logger *util.Logger) {
	err := fmt.Errorf("%s: %w", path, errors.ErrNoInput)
	mc.RecordError(err.Error())
	logger.Warn("%v; nothing to do", err)
}
