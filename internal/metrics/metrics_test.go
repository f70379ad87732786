package metrics

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestCollector_Lines(t *testing.T) {
	c := New()

	c.LinesRead(10)
	c.LinesRead(5)
	c.LinesWritten(15)

	if c.TotalLinesIn() != 15 {
		t.Errorf("lines in = %d, want 15", c.TotalLinesIn())
	}
	if c.TotalLinesOut() != 15 {
		t.Errorf("lines out = %d, want 15", c.TotalLinesOut())
	}
}

func TestCollector_HitsAndMisses(t *testing.T) {
	c := New()

	c.KeyTried()
	c.Hit()
	c.Hit()
	c.Miss()

	if c.KeysTried() != 1 {
		t.Errorf("keys = %d, want 1", c.KeysTried())
	}
	if c.Hits() != 2 || c.Misses() != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", c.Hits(), c.Misses())
	}
	if c.WordsTested() != 3 {
		t.Errorf("words tested = %d, want 3", c.WordsTested())
	}
}

func TestCollector_Concurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 26; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.KeyTried()
			c.Miss()
		}()
	}
	wg.Wait()
	if c.KeysTried() != 26 || c.Misses() != 26 {
		t.Errorf("keys/misses = %d/%d, want 26/26", c.KeysTried(), c.Misses())
	}
}

func TestCollector_Errors(t *testing.T) {
	c := New()

	c.RecordError("first error")
	c.RecordError("second error")

	if c.ErrorCount() != 2 {
		t.Errorf("errors = %d, want 2", c.ErrorCount())
	}
	if got := c.Snapshot().LastErrorMessage; got != "second error" {
		t.Errorf("last error = %q", got)
	}
}

func TestCollector_Snapshot(t *testing.T) {
	c := New()
	c.LinesRead(3)
	c.CandidatesCollected(9)
	c.Hit()

	snap := c.Snapshot()
	if snap.LinesIn != 3 {
		t.Errorf("snap lines in = %d", snap.LinesIn)
	}
	if snap.Candidates != 9 {
		t.Errorf("snap candidates = %d", snap.Candidates)
	}
	if snap.CrackedKey != nil {
		t.Errorf("cracked key should be unset, got %d", *snap.CrackedKey)
	}

	c.RecordCracked(0)
	snap = c.Snapshot()
	if snap.CrackedKey == nil || *snap.CrackedKey != 0 {
		t.Errorf("cracked key = %v, want 0", snap.CrackedKey)
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.KeyTried()
	c.RecordCracked(5)

	raw := c.JSON()
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if snap.KeysTried != 1 {
		t.Errorf("JSON keys tried = %d", snap.KeysTried)
	}
	if snap.CrackedKey == nil || *snap.CrackedKey != 5 {
		t.Errorf("JSON cracked key = %v", snap.CrackedKey)
	}
}

func TestNilCollector_NoOps(t *testing.T) {
	var c *Collector

	// None of these should panic.
	c.LinesRead(1)
	c.LinesWritten(1)
	c.CandidatesCollected(1)
	c.KeyTried()
	c.Hit()
	c.Miss()
	c.RecordCracked(3)
	c.RecordError("test")

	if c.KeysTried() != 0 || c.Hits() != 0 || c.ErrorCount() != 0 {
		t.Error("nil collector should return 0")
	}

	snap := c.Snapshot()
	if snap.KeysTried != 0 {
		t.Error("nil snapshot should be zero")
	}

	if c.JSON() == "" {
		t.Error("nil JSON should return valid JSON")
	}
}
