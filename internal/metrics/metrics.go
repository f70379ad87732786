// Package metrics provides lightweight, lock-free counters for tracking
// the work done by a shiftcrack run.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a shiftcrack run.
// A nil Collector is safe to use: all methods become no-ops.
type Collector struct {
	linesIn     atomic.Int64
	linesOut    atomic.Int64
	candidates  atomic.Int64
	keysTried   atomic.Int64
	wordsTested atomic.Int64
	hits        atomic.Int64
	misses      atomic.Int64
	errorsTotal atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	crackedKey   int
	cracked      bool
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Line metrics ─────────────────────────────────────────────────────

// LinesRead records n input lines.
func (c *Collector) LinesRead(n int) {
	if c == nil {
		return
	}
	c.linesIn.Add(int64(n))
}

// LinesWritten records n output lines.
func (c *Collector) LinesWritten(n int) {
	if c == nil {
		return
	}
	c.linesOut.Add(int64(n))
}

// TotalLinesIn returns total lines read.
func (c *Collector) TotalLinesIn() int64 {
	if c == nil {
		return 0
	}
	return c.linesIn.Load()
}

// TotalLinesOut returns total lines written.
func (c *Collector) TotalLinesOut() int64 {
	if c == nil {
		return 0
	}
	return c.linesOut.Load()
}

// ── Recovery metrics ─────────────────────────────────────────────────

// CandidatesCollected records the size of a candidate word list.
func (c *Collector) CandidatesCollected(n int) {
	if c == nil {
		return
	}
	c.candidates.Add(int64(n))
}

// KeyTried records one key trial.
func (c *Collector) KeyTried() {
	if c == nil {
		return
	}
	c.keysTried.Add(1)
}

// Hit records a decrypted candidate found in the corpus.
func (c *Collector) Hit() {
	if c == nil {
		return
	}
	c.wordsTested.Add(1)
	c.hits.Add(1)
}

// Miss records a decrypted candidate absent from the corpus.
func (c *Collector) Miss() {
	if c == nil {
		return
	}
	c.wordsTested.Add(1)
	c.misses.Add(1)
}

// KeysTried returns the number of key trials started.
func (c *Collector) KeysTried() int64 {
	if c == nil {
		return 0
	}
	return c.keysTried.Load()
}

// WordsTested returns the number of corpus lookups.
func (c *Collector) WordsTested() int64 {
	if c == nil {
		return 0
	}
	return c.wordsTested.Load()
}

// Hits returns the number of corpus hits.
func (c *Collector) Hits() int64 {
	if c == nil {
		return 0
	}
	return c.hits.Load()
}

// Misses returns the number of corpus misses.
func (c *Collector) Misses() int64 {
	if c == nil {
		return 0
	}
	return c.misses.Load()
}

// RecordCracked stores the recovered key.
func (c *Collector) RecordCracked(key int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.crackedKey = key
	c.cracked = true
	c.mu.Unlock()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Elapsed          string `json:"elapsed"`
	LinesIn          int64  `json:"lines_in"`
	LinesOut         int64  `json:"lines_out"`
	Candidates       int64  `json:"candidates"`
	KeysTried        int64  `json:"keys_tried"`
	WordsTested      int64  `json:"words_tested"`
	Hits             int64  `json:"hits"`
	Misses           int64  `json:"misses"`
	CrackedKey       *int   `json:"cracked_key,omitempty"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Elapsed:     time.Since(c.startTime).Truncate(time.Microsecond).String(),
		LinesIn:     c.linesIn.Load(),
		LinesOut:    c.linesOut.Load(),
		Candidates:  c.candidates.Load(),
		KeysTried:   c.keysTried.Load(),
		WordsTested: c.wordsTested.Load(),
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		ErrorsTotal: c.errorsTotal.Load(),
	}
	if c.cracked {
		key := c.crackedKey
		s.CrackedKey = &key
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
