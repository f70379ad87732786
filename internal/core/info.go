package core

import (
	"context"
	"fmt"
	"io"

	"shiftcrack/corpus"
)

// CorpusInfoMode loads the word list and prints what recovery will see.
type CorpusInfoMode struct {
	Corpus *corpus.Corpus
	Stdout io.Writer
}

// Run prints path, size, length bounds and fingerprint.  A word list
// that fails to load is reported and returned as the error.
func (m *CorpusInfoMode) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.Corpus.Load(); err != nil {
		fmt.Fprintf(m.Stdout, "path:        %s\nwords:       0\n", m.Corpus.Path())
		return err
	}
	fmt.Fprintf(m.Stdout, "path:        %s\n", m.Corpus.Path())
	fmt.Fprintf(m.Stdout, "compression: %s\n", corpus.DetectCompression(m.Corpus.Path()))
	fmt.Fprintf(m.Stdout, "words:       %d\n", m.Corpus.Len())
	if m.Corpus.Len() > 0 {
		fmt.Fprintf(m.Stdout, "lengths:     %d-%d\n", m.Corpus.MinLength(), m.Corpus.MaxLength())
	}
	fmt.Fprintf(m.Stdout, "blake2b-256: %s\n", m.Corpus.Fingerprint())
	return nil
}
