package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"shiftcrack/internal/errors"
)

// DefaultBufSize is the read buffer behind ScanLines (64 KiB).  Longer
// lines are still read whole.
const DefaultBufSize = 64 * 1024

// readers recycles line readers across the files read in one run.
var readers = sync.Pool{
	New: func() interface{} {
		return bufio.NewReaderSize(nil, DefaultBufSize)
	},
}

// ReadLines returns every line of the file at path without line
// terminators.  Open and read failures come back as *errors.ResourceError.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapResource("open", path, err)
	}
	defer f.Close()

	lines, err := ScanLines(f)
	if err != nil {
		return nil, errors.WrapResource("read", path, err)
	}
	return lines, nil
}

// ScanLines reads r to EOF and splits it on "\n", dropping a trailing
// "\r" from each line.  Lines have no length limit.
func ScanLines(r io.Reader) ([]string, error) {
	br := readers.Get().(*bufio.Reader)
	br.Reset(r)
	defer func() {
		br.Reset(nil)
		readers.Put(br)
	}()

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteLines creates (or truncates) path and writes each line followed
// by "\n".
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapResource("create", path, err)
	}
	if err := WriteLinesTo(f, lines); err != nil {
		f.Close()
		return errors.WrapResource("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapResource("close", path, err)
	}
	return nil
}

// WriteLinesTo writes each line followed by "\n" to w.
func WriteLinesTo(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// IsTerminal reports whether w is a file descriptor attached to a
// terminal.  Buffers, pipes and redirected files report false.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
