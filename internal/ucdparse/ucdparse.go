/*
Package ucdparse provides a parser for line-oriented data files in the
format of the Unicode Character Database.

The format is defined in http://www.unicode.org/reports/tr44/: every
non-empty line holds a data item of semicolon-separated fields, optionally
followed by a '#' and a comment. Lines starting with '#' are comments.
Code-points are written as hexadecimal numbers; sequences of code-points
are separated by spaces:

   1F646 1F3FF 200D 2642 ; fully-qualified # 🙆🏿‍♂ man gesturing OK

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token holds the content of a single data line.
type Token struct {
	LineNo  int      // line number within the input source, starting at 1
	Fields  []string // trimmed fields of the line
	Comment string   // rest-of-line comment of the data item, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#v]", token.LineNo, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
// Will return the empty string for non-existent fields.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// CodePoints interprets field #i (1…n) as a sequence of code-points. Code-points
// may be separated by spaces (UCD style) or by hyphens (code-point string
// style). An empty field results in an empty sequence.
func (token *Token) CodePoints(i int) ([]rune, error) {
	f := token.Field(i)
	hexes := strings.FieldsFunc(f, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	runes := make([]rune, 0, len(hexes))
	for _, hex := range hexes {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: hex decoding error: %w", token.LineNo, err)
		}
		if n > unicode.MaxRune {
			return nil, fmt.Errorf("line %d: %s is not a code-point", token.LineNo, hex)
		}
		runes = append(runes, rune(n))
	}
	return runes, nil
}

// Parser reads data lines from an input reader.
//
//    p, err := ucdparse.New(reader)
//    for p.Next() {
//        … p.Token.Field(1) …
//    }
//    err = p.Err()
//
type Parser struct {
	Token   *Token // most recent data item
	scanner *bufio.Scanner
	lineNo  int
	err     error
}

// New creates a parser for an input reader.
func New(inputReader io.Reader) (*Parser, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Parser{scanner: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	p, err := New(r)
	if err != nil {
		return err
	}
	for p.Next() {
		f(p.Token)
	}
	return p.Err()
}

// Next advances to the next data line, skipping empty lines and comment lines.
// It returns false at the end of input or if reading the input failed.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.lineNo++
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		p.Token = &Token{LineNo: p.lineNo}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			p.Token.Comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}
		for _, f := range strings.Split(line, ";") {
			p.Token.Fields = append(p.Token.Fields, strings.TrimSpace(f))
		}
		return true
	}
	p.err = p.scanner.Err()
	return false
}

// Err returns the first non-EOF error encountered by the parser.
func (p *Parser) Err() error {
	return p.err
}
