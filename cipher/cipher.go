// Package cipher implements the shift (Caesar) substitution transform.
//
// Each ASCII letter is rotated a fixed number of places through the
// 26-letter alphabet, wrapping at either end, while case is preserved
// and every other byte passes through unchanged.  'Y' shifted forward
// by 2 becomes 'A'.
package cipher

import (
	"fmt"
	"strings"

	"shiftcrack/internal/errors"
)

// AlphabetLen is the number of letters a key can rotate through.
const AlphabetLen = 26

// Mode selects the direction of a shift.
type Mode int

const (
	Idle Mode = iota
	Encrypt
	Decrypt
)

// Multiplier is the sign applied to the key: 0, +1 or -1.
func (m Mode) Multiplier() int {
	switch m {
	case Encrypt:
		return 1
	case Decrypt:
		return -1
	default:
		return 0
	}
}

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	return m == Idle || m == Encrypt || m == Decrypt
}

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "idle", "encrypt" or "decrypt" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "idle":
		return Idle, nil
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	}
	return Idle, fmt.Errorf("%w %q", errors.ErrUnknownMode, s)
}

// NormalizeKey reduces key into [0, AlphabetLen) with floor semantics,
// so negative keys wrap rather than truncate: -1 becomes 25.
func NormalizeKey(key int) int {
	return floorMod(key, AlphabetLen)
}

// EffectiveShift is the signed rotation a (key, mode) pair applies.
func EffectiveShift(key int, mode Mode) int {
	return NormalizeKey(key) * mode.Multiplier()
}

// Shift returns text with every ASCII letter rotated by key in the
// direction given by mode.  It allocates a fresh result on every call
// and is safe for concurrent use.
func Shift(text string, key int, mode Mode) string {
	shift := EffectiveShift(key, mode)
	if shift == 0 {
		return text
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		base := letterBase(ch)
		if base == 0 {
			out[i] = ch
			continue
		}
		out[i] = base + byte(floorMod(int(ch-base)+shift, AlphabetLen))
	}
	return string(out)
}

// letterBase returns 'A' or 'a' for letters and 0 for everything else.
func letterBase(ch byte) byte {
	switch {
	case 'a' <= ch && ch <= 'z':
		return 'a'
	case 'A' <= ch && ch <= 'Z':
		return 'A'
	default:
		return 0
	}
}

func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// ── Cipher ───────────────────────────────────────────────────────────

// Cipher pairs a normalized key with a mode.  The zero value is an
// idle cipher with key 0.
type Cipher struct {
	key  int
	mode Mode
}

// New returns an idle Cipher holding the normalized key.
func New(key int) *Cipher {
	c := &Cipher{}
	c.SetKey(key)
	return c
}

// Key returns the normalized key in [0, 25].
func (c *Cipher) Key() int { return c.key }

// SetKey stores key reduced into [0, 25].
func (c *Cipher) SetKey(key int) { c.key = NormalizeKey(key) }

// Mode returns the current shift mode.
func (c *Cipher) Mode() Mode { return c.mode }

// SetMode switches between idle, encrypt and decrypt.
func (c *Cipher) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", errors.ErrUnknownMode, int(m))
	}
	c.mode = m
	return nil
}

// Update transforms a single string with the cipher's key and mode.
func (c *Cipher) Update(text string) string {
	return Shift(text, c.key, c.mode)
}

// UpdateLines transforms every line, preserving order.
func (c *Cipher) UpdateLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = c.Update(line)
	}
	return out
}

func (c *Cipher) String() string {
	return fmt.Sprintf("ShiftCipher[mode=%s, key=%d]", c.mode, c.key)
}
