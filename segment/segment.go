package segment

import (
	"unicode/utf8"
)

// A Matcher recognizes matches at the start of a string. Match returns the
// length of the match in bytes, or 0 if s does not start with a match.
type Matcher interface {
	Match(s string) int
}

// MatcherFunc lets ordinary functions act as Matchers.
type MatcherFunc func(string) int

// Match calls f(s).
func (f MatcherFunc) Match(s string) int {
	return f(s)
}

// A Segmenter splits a string into segments: matches of a Matcher and runs
// of unmatched text in between.
type Segmenter struct {
	matcher Matcher
	input   string
	pos     int  // position of the next segment
	start   int  // start of the most recent segment
	end     int  // end of the most recent segment
	matched bool // is the most recent segment a match?
	pending int  // length of a match found at pos while reading a run, or 0
}

// NewSegmenter creates a new Segmenter for a Matcher. A nil matcher results
// in a segmenter for shortcode tokens.
//
// Before using newly created segmenters, clients will have to call Init(…)
// on them.
func NewSegmenter(m Matcher) *Segmenter {
	if m == nil {
		m = Shortcodes
	}
	return &Segmenter{matcher: m}
}

// Init initializes a Segmenter with a string to segment.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(input string) {
	s.input = input
	s.pos, s.start, s.end = 0, 0, 0
	s.matched = false
	s.pending = 0
}

// Next advances the Segmenter to the next segment, which will then be available
// through the Text() method. It returns false when the end of the input has
// been reached.
func (s *Segmenter) Next() bool {
	if s.pos >= len(s.input) {
		return false
	}
	s.start = s.pos
	n := s.pending
	if n == 0 {
		n = s.matcher.Match(s.input[s.pos:])
	}
	s.pending = 0
	if n > 0 {
		s.matched = true
		s.pos += n
		s.end = s.pos
		CT().Debugf("segment: match %q at %d", s.input[s.start:s.end], s.start)
		return true
	}
	s.matched = false
	_, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	for s.pos < len(s.input) {
		if n = s.matcher.Match(s.input[s.pos:]); n > 0 {
			s.pending = n
			break
		}
		_, size = utf8.DecodeRuneInString(s.input[s.pos:])
		s.pos += size
	}
	s.end = s.pos
	return true
}

// Text returns the most recent segment generated by a call to Next().
func (s *Segmenter) Text() string {
	return s.input[s.start:s.end]
}

// Matched is true if the most recent segment is a match of the Matcher.
func (s *Segmenter) Matched() bool {
	return s.matched
}

// Pos returns the byte position of the most recent segment within the input.
func (s *Segmenter) Pos() int {
	return s.start
}
