// Package corpus holds the reference word list that key recovery votes
// against.
//
// A Corpus is loaded lazily on first use and at most once.  A word list
// that is missing or unreadable never surfaces as an error from the
// queries: the corpus simply becomes empty, admits nothing, and keeps
// its length bounds at their sentinels.  Err reports what went wrong.
package corpus

import (
	"encoding/hex"
	"hash"
	"io"
	"math"
	"os"
	"sync"

	"golang.org/x/crypto/blake2b"

	"shiftcrack/internal/errors"
	"shiftcrack/util"
)

// Sentinel bounds reported before a successful, non-empty load.
const (
	UnboundedMin = math.MaxInt
	UnboundedMax = math.MinInt
)

// newHash builds the fingerprint hasher.  Tests replace it.
var newHash = func() (hash.Hash, error) { return blake2b.New256(nil) } //nolint:gochecknoglobals

// Corpus is an immutable-after-load set of words plus the shortest and
// longest word lengths.  All methods are safe for concurrent use.
type Corpus struct {
	path   string
	logger *util.Logger

	once        sync.Once
	words       map[string]struct{}
	minLen      int
	maxLen      int
	fingerprint string
	err         error
}

// New returns an unloaded corpus backed by the word list at path.
// Files ending in .gz, .zst or .lz4 are decompressed transparently.
func New(path string, logger *util.Logger) *Corpus {
	return &Corpus{
		path:   path,
		logger: logger.With("corpus"),
		minLen: UnboundedMin,
		maxLen: UnboundedMax,
	}
}

// FromWords returns an already-loaded in-memory corpus.  Empty strings
// are ignored.
func FromWords(words ...string) *Corpus {
	c := &Corpus{path: "<memory>", minLen: UnboundedMin, maxLen: UnboundedMax}
	c.once.Do(func() {
		set, lo, hi := build(words)
		c.commit(set, lo, hi, "")
	})
	return c
}

// Load reads the word list if it has not been read yet.  Repeated calls
// never touch the file again and return the same result.
func (c *Corpus) Load() error {
	c.once.Do(c.load)
	return c.err
}

// Contains reports whether word is in the corpus.  word is expected to
// be normalized already.
func (c *Corpus) Contains(word string) bool {
	c.Load() //nolint:errcheck // failure degrades to an empty corpus
	_, ok := c.words[word]
	return ok
}

// MinLength returns the length of the shortest word, or UnboundedMin
// when nothing was loaded.
func (c *Corpus) MinLength() int {
	c.Load() //nolint:errcheck
	return c.minLen
}

// MaxLength returns the length of the longest word, or UnboundedMax
// when nothing was loaded.
func (c *Corpus) MaxLength() int {
	c.Load() //nolint:errcheck
	return c.maxLen
}

// Len returns the number of distinct words.
func (c *Corpus) Len() int {
	c.Load() //nolint:errcheck
	return len(c.words)
}

// Path returns the backing word-list path.
func (c *Corpus) Path() string { return c.path }

// Fingerprint returns the hex BLAKE2b-256 digest of the decompressed
// word-list bytes, or "" if the list was not read from a file.
func (c *Corpus) Fingerprint() string {
	c.Load() //nolint:errcheck
	return c.fingerprint
}

// Err returns the load failure, if any.  It triggers the load.
func (c *Corpus) Err() error {
	return c.Load()
}

func (c *Corpus) load() {
	set, lo, hi, sum, err := c.read()
	if err != nil {
		c.err = err
		c.words = map[string]struct{}{}
		if errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("word list %s could not be found", c.path)
		} else {
			c.logger.Warn("could not read word list %s: %v", c.path, err)
		}
		return
	}
	c.commit(set, lo, hi, sum)
	c.logger.Verbose("loaded %d words from %s (lengths %d-%d)", len(set), c.path, lo, hi)
	c.logger.Debug("word list fingerprint %s", sum)
}

func (c *Corpus) read() (set map[string]struct{}, lo, hi int, sum string, err error) {
	rc, err := openWordList(c.path)
	if err != nil {
		return nil, 0, 0, "", err
	}
	defer rc.Close()

	h, err := newHash()
	if err != nil {
		return nil, 0, 0, "", errors.WrapResource("hash", c.path, err)
	}
	lines, err := util.ScanLines(io.TeeReader(rc, h))
	if err != nil {
		return nil, 0, 0, "", errors.WrapResource("read", c.path, err)
	}

	set, lo, hi = build(lines)
	return set, lo, hi, hex.EncodeToString(h.Sum(nil)), nil
}

func (c *Corpus) commit(set map[string]struct{}, lo, hi int, sum string) {
	c.words = set
	c.minLen = lo
	c.maxLen = hi
	c.fingerprint = sum
}

// build collects non-empty words and their length bounds.  With no
// words the bounds stay at their sentinels.
func build(words []string) (set map[string]struct{}, lo, hi int) {
	set = make(map[string]struct{}, len(words))
	lo, hi = UnboundedMin, UnboundedMax
	for _, w := range words {
		if w == "" {
			continue
		}
		set[w] = struct{}{}
		lo = min(lo, len(w))
		hi = max(hi, len(w))
	}
	return set, lo, hi
}
