package table

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/emojicode/source"
	"github.com/npillmayer/emojicode/trie"
)

// Tables are the frozen lookup tables for emoji transcoding.
// Shortcodes are stored as given by the sources, i.e. lookups are
// case-sensitive.
type Tables struct {
	unicodeOf map[string]string
	canonical map[string]string
	names     map[string]string
	records   map[string]source.Record
	glyphs    *trie.Trie
	index     *treemap.Map // sorted shortcodes and aliases
	heads     *unicode.RangeTable
}

// Len returns the number of emoji, i.e. the number of canonical shortcodes.
func (t *Tables) Len() int {
	return len(t.records)
}

// Unicode returns the glyph for a shortcode or alias.
// Emoji without a glyph are reported as not found.
func (t *Tables) Unicode(shortcode string) (string, bool) {
	u, ok := t.unicodeOf[shortcode]
	return u, ok
}

// Canonical returns the canonical shortcode for a shortcode or alias.
func (t *Tables) Canonical(shortcode string) (string, bool) {
	c, ok := t.canonical[shortcode]
	return c, ok
}

// Name returns the display name for a canonical shortcode.
func (t *Tables) Name(canonical string) (string, bool) {
	n, ok := t.names[canonical]
	return n, ok
}

// Record returns the source record for a canonical shortcode.
func (t *Tables) Record(canonical string) (source.Record, bool) {
	rec, ok := t.records[canonical]
	return rec, ok
}

// ShortcodeFor returns the canonical shortcode for a glyph. The glyph has to
// match exactly.
func (t *Tables) ShortcodeFor(glyph string) (string, bool) {
	return t.glyphs.Lookup(glyph)
}

// MatchGlyph returns the length in bytes of the longest known glyph at the
// start of s, or 0 if s does not start with a known glyph.
func (t *Tables) MatchGlyph(s string) int {
	_, n := t.glyphs.LongestPrefix(s)
	return n
}

// Match is an alias for MatchGlyph, letting tables act as a segment.Matcher.
func (t *Tables) Match(s string) int {
	return t.MatchGlyph(s)
}

// Heads returns a range table containing the first code-point of every known
// glyph. Clients may use it to quickly check if a rune may start a glyph:
//
//    if unicode.Is(tables.Heads(), r) { … }
//
func (t *Tables) Heads() *unicode.RangeTable {
	return t.heads
}

// Complete returns all shortcodes and aliases starting with prefix, in
// lexical order. An empty prefix returns all shortcodes and aliases.
func (t *Tables) Complete(prefix string) []string {
	var codes []string
	key, _ := t.index.Ceiling(prefix)
	for key != nil {
		code := key.(string)
		if !strings.HasPrefix(code, prefix) {
			break
		}
		codes = append(codes, code)
		key, _ = t.index.Ceiling(code + "\x00")
	}
	return codes
}
