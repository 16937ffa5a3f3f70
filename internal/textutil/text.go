// Package textutil holds the small text helpers shared by the store back-ends,
// the normalizers and the serializer.
package textutil

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Lossy decodes b as UTF-8, replacing invalid sequences with U+FFFD.
// It never fails.
func Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	s, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		// The UTF-8 decoder only replaces, so this is unreachable in practice.
		return string([]rune(string(b)))
	}
	return string(s)
}

// Clean returns s with any invalid UTF-8 replaced.
func Clean(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return Lossy([]byte(s))
}

// Truncate returns the first n characters (runes) of s.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
