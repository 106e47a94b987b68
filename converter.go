package emojicode

import (
	"strings"

	"github.com/npillmayer/emojicode/codepoint"
	"github.com/npillmayer/emojicode/segment"
	"github.com/npillmayer/emojicode/source"
	"github.com/npillmayer/emojicode/table"
	"go.mau.fi/util/variationselector"
)

// Replacer is a function type for custom substitution of emoji. It receives
// the glyph of an emoji (or "" if it has none or is unknown), its shortcode
// as found in the text (lower-cased), its display name (or "") and its
// source record (or the zero Record). It returns the replacement text.
//
// Replacers are called in left-to-right order of the emoji within a text and
// should be free of side effects.
type Replacer func(unicode, shortcode, name string, rec source.Record) string

// Config configures a Converter.
type Config struct {
	// Sources are merged in order, later sources taking precedence.
	// If Sources is nil, the standard dataset source.Default() is used.
	// A non-nil, empty list results in a converter which knows no emoji at all.
	Sources []source.Source
	// If AbsorbVariationSelectors is set, an emoji variation selector
	// (U+FE0F) directly following a known glyph is treated as part of the
	// glyph. Otherwise it is left in the text.
	AbsorbVariationSelectors bool
}

// Converter transcodes between emoji glyphs and shortcodes.
// Converters are immutable and safe for concurrent use.
type Converter struct {
	tables *table.Tables
	glyphs segment.Matcher
	absorb bool
}

// New creates a Converter from emoji sources, merged in order.
// Calling New without arguments uses the standard dataset source.Default().
// Calling it with an empty, non-nil slice
//
//    emojicode.New([]source.Source{}...)
//
// results in a Converter which leaves all text untouched.
func New(sources ...source.Source) *Converter {
	return NewWithConfig(&Config{Sources: sources})
}

// NewWithConfig creates a Converter from a configuration. A nil configuration
// is equivalent to New().
func NewWithConfig(conf *Config) *Converter {
	if conf == nil {
		conf = &Config{}
	}
	sources := conf.Sources
	if sources == nil {
		sources = []source.Source{source.Default()}
	}
	tables := table.Build(sources...)
	CT().Debugf("emojicode: new converter for %d emoji from %d sources", tables.Len(), len(sources))
	return FromTables(tables, conf.AbsorbVariationSelectors)
}

// FromTables creates a Converter from pre-built tables. Tables may be shared
// between converters.
func FromTables(tables *table.Tables, absorbVariationSelectors bool) *Converter {
	c := &Converter{tables: tables, absorb: absorbVariationSelectors}
	c.glyphs = tables
	if absorbVariationSelectors {
		c.glyphs = absorbingMatcher{tables}
	}
	return c
}

// Tables returns the lookup tables of the converter.
func (c *Converter) Tables() *table.Tables {
	return c.tables
}

// --- Unicode → shortcode ---------------------------------------------------

// ReplaceUnicode replaces all known emoji glyphs in str with their canonical
// shortcodes.
//
//    conv.ReplaceUnicode("❤ ~~🐧~~ ❤")   // ":heart: ~~:penguin:~~ :heart:"
//
func (c *Converter) ReplaceUnicode(str string) string {
	return transcode(str, c.glyphs, func(glyph string) string {
		if _, sc, ok := c.lookupGlyph(glyph); ok {
			return sc
		}
		return glyph
	})
}

// ReplaceUnicodeWith replaces all known emoji glyphs in str with the
// result of calling replacer on them. Unknown characters are left untouched
// and replacer will not be called for them.
func (c *Converter) ReplaceUnicodeWith(str string, replacer Replacer) string {
	return transcode(str, c.glyphs, func(glyph string) string {
		registered, sc, ok := c.lookupGlyph(glyph)
		if !ok {
			return glyph
		}
		name, _ := c.tables.Name(sc)
		rec, _ := c.tables.Record(sc)
		return replacer(registered, sc, name, rec)
	})
}

// --- Shortcode → unicode ---------------------------------------------------

// ReplaceShortcodes replaces all shortcodes in str with their glyphs.
// Shortcodes are matched case-insensitively. Unknown shortcodes and shortcodes
// of emoji without a glyph are left untouched.
//
//    conv.ReplaceShortcodes("I:HEART:NY")   // "I❤NY"
//
func (c *Converter) ReplaceShortcodes(str string) string {
	return transcode(str, segment.Shortcodes, func(token string) string {
		if u, ok := c.tables.Unicode(strings.ToLower(token)); ok {
			return u
		}
		return token
	})
}

// NormalizeShortcodes replaces all aliases in str with their canonical
// shortcodes. Glyphs are not touched.
//
//    conv.NormalizeShortcodes(":latin_cross:")   // ":cross:"
//
func (c *Converter) NormalizeShortcodes(str string) string {
	return transcode(str, segment.Shortcodes, func(token string) string {
		if canonical, ok := c.tables.Canonical(strings.ToLower(token)); ok {
			return canonical
		}
		return token
	})
}

// ReplaceShortcodesWith replaces every shortcode token in str with the result
// of calling replacer on it. Other than ReplaceUnicodeWith, replacer is called
// for unknown shortcodes as well, with empty glyph, name and record.
func (c *Converter) ReplaceShortcodesWith(str string, replacer Replacer) string {
	return transcode(str, segment.Shortcodes, func(token string) string {
		sc := strings.ToLower(token)
		u, _ := c.tables.Unicode(sc)
		var name string
		var rec source.Record
		if canonical, ok := c.tables.Canonical(sc); ok {
			name, _ = c.tables.Name(canonical)
			rec, _ = c.tables.Record(canonical)
		}
		return replacer(u, sc, name, rec)
	})
}

// ReplaceWith replaces glyphs and shortcodes in str with the result of
// calling replacer on them. Glyphs are converted to shortcodes first, then
// all shortcodes are handed to replacer. replacer therefore sees every emoji
// as a shortcode token, regardless of its form in str.
func (c *Converter) ReplaceWith(str string, replacer Replacer) string {
	return c.ReplaceShortcodesWith(c.ReplaceUnicode(str), replacer)
}

// --- Spelling variants -----------------------------------------------------

// ReplaceShortCodes is the same as ReplaceShortcodes.
func (c *Converter) ReplaceShortCodes(str string) string {
	return c.ReplaceShortcodes(str)
}

// ReplaceShortCodesWith is the same as ReplaceShortcodesWith.
func (c *Converter) ReplaceShortCodesWith(str string, replacer Replacer) string {
	return c.ReplaceShortcodesWith(str, replacer)
}

// NormalizeShortCodes is the same as NormalizeShortcodes.
func (c *Converter) NormalizeShortCodes(str string) string {
	return c.NormalizeShortcodes(str)
}

// ReplaceAllWith is the same as ReplaceWith.
func (c *Converter) ReplaceAllWith(str string, replacer Replacer) string {
	return c.ReplaceWith(str, replacer)
}

// --- Code-point strings ----------------------------------------------------

// UnicodeToPointsString converts a glyph to a code-point string, e.g.
// "🙆🏿‍♂" → "1f646-1f3ff-200d-2642". See package codepoint.
func UnicodeToPointsString(str string) string {
	return codepoint.ToPointsString(str)
}

// PointsStringToUnicode converts a code-point string to a glyph, e.g.
// "1f646-1f3ff-2642" → "🙆🏿♂". See package codepoint.
func PointsStringToUnicode(str string) (string, error) {
	return codepoint.FromPointsString(str)
}

// ---------------------------------------------------------------------------

// transcode segments str with matcher m and replaces every match by f(match).
// If there is no match, str is returned as is.
func transcode(str string, m segment.Matcher, f func(string) string) string {
	seg := segment.NewSegmenter(m)
	seg.Init(str)
	var b *strings.Builder
	for seg.Next() {
		if !seg.Matched() {
			if b != nil {
				b.WriteString(seg.Text())
			}
			continue
		}
		if b == nil {
			b = &strings.Builder{}
			b.Grow(len(str) + len(str)/2)
			b.WriteString(str[:seg.Pos()])
		}
		b.WriteString(f(seg.Text()))
	}
	if b == nil {
		return str
	}
	return b.String()
}

// lookupGlyph finds the shortcode for a matched glyph. Registered glyphs may
// end in a variation selector themselves, so an absorbed selector is only
// dropped if the glyph as matched is unknown. Returns the registered form of
// the glyph.
func (c *Converter) lookupGlyph(glyph string) (string, string, bool) {
	if sc, ok := c.tables.ShortcodeFor(glyph); ok {
		return glyph, sc, true
	}
	if c.absorb && strings.HasSuffix(glyph, variationselector.VS16) {
		glyph = strings.TrimSuffix(glyph, variationselector.VS16)
		if sc, ok := c.tables.ShortcodeFor(glyph); ok {
			return glyph, sc, true
		}
	}
	CT().Errorf("emojicode: no shortcode for matched glyph %+q", glyph)
	return glyph, "", false
}

// absorbingMatcher extends glyph matches by a trailing variation selector.
type absorbingMatcher struct {
	m segment.Matcher
}

func (am absorbingMatcher) Match(s string) int {
	n := am.m.Match(s)
	if n > 0 && strings.HasPrefix(s[n:], variationselector.VS16) {
		n += len(variationselector.VS16)
	}
	return n
}
