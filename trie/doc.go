/*
Package trie implements a trie for sequences of code-points.

The trie is suitable for write-once-read-many-times situations: it is filled
once, then frozen and used for lookups only. Keys are sequences of runes,
values are strings. Every first rune of a key is called the head of the key;
heads are indexed directly, the remaining runes of a key are organized in
families of children linked by siblings, similar to the trie described by
Donald E Knuth in “Programming Pearls” (Communications of the ACM,
Vol. 29, No. 6, June 1986).

The main operation on a frozen trie is finding the longest key which is a
prefix of a given string:

   value, n := trie.LongestPrefix(text[pos:])

A frozen trie is read-only and may be used by multiple goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trie

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
