package core

import (
	"context"
	"fmt"
	"io"

	"shiftcrack/cipher"
	"shiftcrack/crack"
	"shiftcrack/internal/errors"
	"shiftcrack/util"
)

// CrackMode recovers the key of an enciphered file and emits the
// decrypted lines, to OutputPath when set and to Stdout otherwise.
type CrackMode struct {
	Recoverer  *crack.Recoverer
	InputPath  string
	OutputPath string
	Parallel   bool
	Workers    int
	Stdout     io.Writer
	Logger     *util.Logger
}

// Run returns an error wrapping errors.ErrNotFound when no key reaches
// the hit threshold.  Metrics go to the recoverer's collector.
func (m *CrackMode) Run(ctx context.Context) error {
	mc := m.Recoverer.Metrics
	lines, err := util.ReadLines(m.InputPath)
	if err != nil {
		mc.RecordError(err.Error())
		return err
	}
	mc.LinesRead(len(lines))

	if len(lines) == 0 {
		noInput(m.InputPath, mc, m.Logger)
		return nil
	}

	res, err := m.findKey(ctx, lines)
	if err != nil {
		return err
	}
	if !res.Found {
		err := fmt.Errorf("unable to crack file %s: %w", m.InputPath, errors.ErrNotFound)
		mc.RecordError(err.Error())
		return err
	}

	c := cipher.New(res.Key)
	if err := c.SetMode(cipher.Decrypt); err != nil {
		return err
	}
	plain := c.UpdateLines(lines)

	if m.OutputPath != "" {
		if err := util.WriteLines(m.OutputPath, plain); err != nil {
			mc.RecordError(err.Error())
			return err
		}
		mc.LinesWritten(len(plain))
		m.Logger.Info("cracked file %s with key %d; saved to file %s", m.InputPath, res.Key, m.OutputPath)
		return nil
	}

	if err := util.WriteLinesTo(m.Stdout, plain); err != nil {
		return fmt.Errorf("write decrypted lines: %w", err)
	}
	mc.LinesWritten(len(plain))

	// The banner only goes to an interactive stdout so piped output is
	// exactly the plaintext.
	if util.IsTerminal(m.Stdout) {
		fmt.Fprintf(m.Stdout, "\nCracked file %s with key %d.\n", m.InputPath, res.Key)
	} else {
		m.Logger.Info("cracked file %s with key %d", m.InputPath, res.Key)
	}
	return nil
}

func (m *CrackMode) findKey(ctx context.Context, lines []string) (crack.Result, error) {
	if m.Parallel {
		m.Logger.Debug("trying keys in parallel, %d worker(s)", m.Workers)
		return m.Recoverer.RecoverParallel(ctx, lines, m.Workers)
	}
	if err := ctx.Err(); err != nil {
		return crack.Result{}, err
	}
	return m.Recoverer.Recover(lines), nil
}
