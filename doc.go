/*
Package emojicode transcodes between emoji glyphs and “:shortcode:” tokens.

Description

Chat systems, issue trackers and many other text-oriented applications let
users write emoji either as Unicode glyphs (❤) or as human-readable
shortcodes (:heart:). Package emojicode converts between both forms, in
both directions, and lets clients plug in custom rendering:

   conv := emojicode.New()                      // standard emoji dataset
   conv.ReplaceUnicode("I ❤ NY")               // "I :heart: NY"
   conv.ReplaceShortcodes("I :HEART: NY")      // "I ❤ NY"
   conv.NormalizeShortcodes(":latin_cross:")   // ":cross:"

A Converter is built from an ordered list of emoji data sources (see
package source). Later sources take precedence over earlier ones, which lets
clients override glyphs or add custom emoji without a glyph, e.g. emoji
rendered as images:

   custom := source.ListSource{
       {Shortcode: ":charizard:", Extra: map[string]interface{}{"url": "https://…/charizard.png"}},
   }
   conv := emojicode.New(source.Default(), custom)
   html := conv.ReplaceShortcodesWith(text, func(u, sc, name string, rec source.Record) string {
       if u != "" {
           return u
       } else if url, ok := rec.Extra["url"]; ok {
           return fmt.Sprintf(`<img src="%s" alt="%s"/>`, url, name)
       }
       return sc
   })

Shortcode tokens are a colon, followed by letters, digits, '_', '+' or '-',
followed by a colon. They are matched case-insensitively. Glyphs are
matched code-point by code-point, always preferring the longest known glyph,
so that multi-code-point glyphs such as 🙆🏿‍♂ are recognized as a whole.

Unknown glyphs and unknown shortcodes are left untouched. None of the
operations ever fails.

Concurrency

Converters are immutable after construction and may be used by any number
of goroutines.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package emojicode

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
