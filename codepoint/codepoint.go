package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrEmptyToken is returned for code-point strings containing an empty
// token, e.g. "1f646--2642".
var ErrEmptyToken = errors.New("empty code-point token")

// ToPointsString converts a Unicode string to its code-point string, e.g.
// "❤" → "2764".
func ToPointsString(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(utf8.RuneCountInString(s) * 6)
	for i, r := range s {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return b.String()
}

// FromPointsString converts a code-point string back to Unicode text, e.g.
// "1f646-1f3ff-2642" → "🙆🏿‍♂". Hex digits may be given in either case.
// The empty string decodes to the empty string.
//
// Tokens which are not hexadecimal numbers or which are outside the Unicode
// code-point range result in an error.
func FromPointsString(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, token := range strings.Split(s, "-") {
		if token == "" {
			return "", fmt.Errorf("code-point string %q: %w", s, ErrEmptyToken)
		}
		n, err := strconv.ParseUint(token, 16, 32)
		if err != nil {
			return "", fmt.Errorf("code-point string %q: %w", s, err)
		}
		if n > unicode.MaxRune {
			return "", fmt.Errorf("code-point string %q: %s exceeds maximum code-point", s, token)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}

// MustFromPointsString is like FromPointsString, but panics if s is not a
// valid code-point string.
func MustFromPointsString(s string) string {
	u, err := FromPointsString(s)
	if err != nil {
		tracer().Errorf("codepoint: %v", err)
		panic(err)
	}
	return u
}
