package corpus

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"shiftcrack/internal/errors"
)

// Compression identifies how a word list is stored on disk, by file
// extension.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// DetectCompression maps a path's extension to its compression.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// readCloser closes the decoder before the underlying file.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var errs []error
	for _, fn := range r.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openWordList opens path and wraps it in the decoder its extension
// calls for.
func openWordList(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapResource("open", path, err)
	}

	switch DetectCompression(path) {
	case CompressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.WrapResource("decompress", path, err)
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil

	case CompressionZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.WrapResource("decompress", path, err)
		}
		return &readCloser{Reader: zr, closers: []func() error{
			func() error { zr.Close(); return nil },
			f.Close,
		}}, nil

	case CompressionLZ4:
		return &readCloser{Reader: lz4.NewReader(f), closers: []func() error{f.Close}}, nil

	default:
		return f, nil
	}
}
