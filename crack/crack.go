// Package crack recovers the key of a shift-enciphered text by voting
// candidate words against a reference corpus.
//
// Every key from 0 to 25 is tried in ascending order.  Under each key
// the candidates are decrypted one at a time and looked up: enough hits
// accept the key on the spot, enough misses abandon it.  The first key
// accepted wins, so ties go to the lowest key.
package crack

import (
	"shiftcrack/cipher"
	"shiftcrack/internal/metrics"
	"shiftcrack/text"
	"shiftcrack/util"
)

// DefaultSoftCap bounds how many candidate words one attempt collects.
const DefaultSoftCap = 100

// Dictionary is the membership oracle recovery votes against.
// *corpus.Corpus satisfies it.
type Dictionary interface {
	Contains(word string) bool
	MinLength() int
	MaxLength() int
}

// Result describes one recovery attempt.
type Result struct {
	Key          int
	Found        bool
	Candidates   int
	HitsNeeded   int
	MissesNeeded int
	KeysTried    int
}

// RecoverKey runs a default Recoverer over lines.  ok is false when no
// key could be recovered.
func RecoverKey(lines []string, dict Dictionary) (key int, ok bool) {
	res := (&Recoverer{Dict: dict}).Recover(lines)
	return res.Key, res.Found
}

// Candidates collects, in input order, the normalized tokens whose
// length lies within the dictionary's bounds.  Scanning stops as soon
// as softCap words are held.
func Candidates(lines []string, dict Dictionary, softCap int) []string {
	lo, hi := dict.MinLength(), dict.MaxLength()
	var words []string
	for _, line := range lines {
		for _, tok := range text.Tokens(line) {
			if len(words) >= softCap {
				return words
			}
			w, ok := text.NormalizeWord(tok)
			if ok && len(w) >= lo && len(w) <= hi {
				words = append(words, w)
			}
		}
	}
	return words
}

// Thresholds returns how many hits accept a key and how many misses
// abandon it for a candidate list of n words.
func Thresholds(n int) (hitsNeeded, missesNeeded int) {
	hitsNeeded = max(1, n/2)
	missesNeeded = max(1, n-hitsNeeded)
	return hitsNeeded, missesNeeded
}

// Recoverer carries the dictionary and the optional instrumentation
// for recovery attempts.  Metrics and Logger may be nil.
type Recoverer struct {
	Dict    Dictionary
	SoftCap int // 0 means DefaultSoftCap
	Metrics *metrics.Collector
	Logger  *util.Logger
}

// Recover tries keys 0 through 25 in order and reports the first one
// whose decryption of the candidate words reaches the hit threshold.
func (r *Recoverer) Recover(lines []string) Result {
	words, res := r.prepare(lines)
	if len(words) == 0 {
		return res
	}

	for key := 0; key < cipher.AlphabetLen; key++ {
		res.KeysTried++
		if r.tryKey(words, key, res.HitsNeeded, res.MissesNeeded) == accepted {
			return r.accept(res, key)
		}
	}
	r.Logger.Verbose("no key reached %d hits", res.HitsNeeded)
	return res
}

func (r *Recoverer) prepare(lines []string) ([]string, Result) {
	softCap := r.SoftCap
	if softCap <= 0 {
		softCap = DefaultSoftCap
	}
	words := Candidates(lines, r.Dict, softCap)
	r.Metrics.CandidatesCollected(len(words))

	res := Result{Candidates: len(words)}
	if len(words) == 0 {
		r.Logger.Verbose("no candidate words; nothing to vote on")
		return nil, res
	}
	res.HitsNeeded, res.MissesNeeded = Thresholds(len(words))
	r.Logger.Verbose("%d candidate words; %d hits accept, %d misses abandon",
		len(words), res.HitsNeeded, res.MissesNeeded)
	return words, res
}

func (r *Recoverer) accept(res Result, key int) Result {
	res.Key, res.Found = key, true
	r.Metrics.RecordCracked(key)
	r.Logger.Verbose("accepted key %d", key)
	return res
}

type verdict int

const (
	abandoned verdict = iota
	accepted
	exhausted
)

// tryKey votes the candidates under one key.  It depends only on its
// arguments and the read-only dictionary, so keys can run concurrently.
func (r *Recoverer) tryKey(words []string, key, hitsNeeded, missesNeeded int) verdict {
	r.Metrics.KeyTried()
	hitsLeft, missesLeft := hitsNeeded, missesNeeded
	for i, w := range words {
		if r.Dict.Contains(cipher.Shift(w, key, cipher.Decrypt)) {
			r.Metrics.Hit()
			hitsLeft--
			if hitsLeft == 0 {
				r.Logger.Debug("key %d: accepted after %d words", key, i+1)
				return accepted
			}
		} else {
			r.Metrics.Miss()
			missesLeft--
			if missesLeft == 0 {
				r.Logger.Debug("key %d: abandoned after %d words", key, i+1)
				return abandoned
			}
		}
	}
	return exhausted
}
