// Package testdata provides Unicode emoji data files for tests.
package testdata

import (
	"bytes"
	_ "embed" // for emoji test data
	"io"
)

//go:generate go run download.go

// EmojiTest is an excerpt of emoji-test.txt of Unicode Emoji 15.1.
//
//go:embed emoji-test.txt
var EmojiTest []byte

// EmojiTestReader returns a reader for the emoji test data.
func EmojiTestReader() io.Reader {
	return bytes.NewReader(EmojiTest)
}
