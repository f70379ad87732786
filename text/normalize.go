// Package text turns raw input tokens into dictionary-comparable words.
package text

import "strings"

// NormalizeWord lower-cases token if it consists only of ASCII letters.
// A single non-letter anywhere rejects the whole token and ok is false.
// The empty token is trivially a word.
func NormalizeWord(token string) (word string, ok bool) {
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		ch := token[i]
		switch {
		case 'a' <= ch && ch <= 'z':
			b.WriteByte(ch)
		case 'A' <= ch && ch <= 'Z':
			b.WriteByte(ch + ('a' - 'A'))
		default:
			return "", false
		}
	}
	return b.String(), true
}

// Tokens splits a line on runs of whitespace.
func Tokens(line string) []string {
	return strings.Fields(line)
}
