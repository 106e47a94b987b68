/*
Package codepoint converts between Unicode text and code-point strings.

A code-point string is a hyphen-joined sequence of lowercase hexadecimal
code-point values, as used by emoji datasets to key their entries:

   🙆🏿‍♂  ⇔  "1f646-1f3ff-2642"

Both conversions iterate by code-point (rune), never by byte or UTF-16 unit,
and are exact inverses for any sequence of valid code-points.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package codepoint

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
