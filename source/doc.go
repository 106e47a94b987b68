/*
Package source provides emoji data sources for building shortcode tables.

Emoji data comes in two incompatible shapes:

(a) a list of records, each carrying a canonical shortcode, optional
alternate shortcodes, an optional glyph (Unicode text), an optional display
name and arbitrary additional fields. Records without a glyph are legal;
they describe custom emoji which are rendered by other means, e.g. an image
URL kept with the record.

   [ { "shortname": ":charizard:", "url": "https://example.com/charizard.png" } ]

(b) a mapping keyed by a code-point string, as used by emoji-toolkit's
emoji_strategy.json:

   { "1f646-1f3ff-2642": { "shortname": ":man_gesturing_ok_tone5:",
                           "shortname_alternates": [],
                           "name": "man gesturing OK: dark skin tone" } }

Both shapes are represented by types implementing interface Source
(ListSource and KeyedSource, respectively). Each of them normalizes its
entries to a common Record type; consumers of sources never have to care
about the shape.

Data sources are not validated. Missing or mistyped fields are treated as
absent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package source

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
