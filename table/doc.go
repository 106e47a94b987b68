/*
Package table builds the lookup tables for transcoding between emoji glyphs
and shortcodes.

Tables are built from an ordered list of sources (see package source). Sources
are merged in order, with entries of later sources overwriting earlier ones
for the same shortcode, alias or glyph (last write wins; there is no merging of
fields across sources). The result is a frozen Tables value:

   tables := table.Build(source.Default(), myCustomEmoji)
   glyph, ok := tables.Unicode(":heart:")                   // "❤"
   canonical, ok := tables.Canonical(":latin_cross:")       // ":cross:"
   n := tables.MatchGlyph("🙆🏿‍♂ hello")                    // length of longest glyph

Glyphs are indexed by their first code-point in a trie (see package trie);
glyphs consisting of more than one code-point are matched literally, always
preferring the longest glyph.

Frozen tables are read-only and may be shared between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package table

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
