/*
Package segment is about splitting text into matched and unmatched segments.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner. Successive calls to
a segmenter's Next() method will step through the segments of a string, left
to right. A segment is either a match of the segmenter's Matcher or a
maximal run of text in between matches.

   segmenter := segment.NewSegmenter(segment.Shortcodes)
   segmenter.Init("I :heart: NY")
   for segmenter.Next() {
       if segmenter.Matched() {
           // do something with segmenter.Text()
       }
   }

Concatenating the text of all segments reproduces the input exactly.

Matching is leftmost-first: at every position the matcher is asked for a
match; after a match, matching resumes directly behind it, otherwise it
resumes at the next code-point.

Recognizers

Matchers may be implemented by any means. For matching shortcode tokens
this package uses small non-deterministic automata: every step within a rule
is performed by executing a function. This function recognizes a single
code-point and returns another function, representing the expectation for the
next code-point. Matching is continued until a rule is accepted or aborted.
The shortcode grammar

   ':' [A-Za-z0-9_+-]+ ':'

is therefore matched by three functions in sequence:

      ruleColon( … )        // match ':'
   -> ruleFirstName( … )    // match a name character
   -> ruleNameOrColon( … )  // match more name characters or the closing ':'

Recognizers are short-lived and pooled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
