package trie

import (
	"errors"
	"sort"
	"unicode/utf8"
	"unsafe"
)

// ErrFrozen is returned when inserting into a frozen trie.
var ErrFrozen = errors.New("trie is frozen")

// ErrEmptyKey is returned when inserting an empty key.
var ErrEmptyKey = errors.New("trie keys must not be empty")

type pointer int32

const none pointer = -1 // denotes the absence of a child or sibling

// Trie is a trie keyed by sequences of runes. Create it with New, fill it
// with Insert and make it read-only with Freeze.
type Trie struct {
	frozen  bool
	heads   map[rune]pointer // position of first runes of keys
	ch      []rune           // rune at position p
	link    []pointer        // first child of position p
	sibling []pointer        // next sibling of position p
	value   []string         // value stored at position p
	final   []bool           // is position p the end of a key?
	keys    int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{heads: make(map[rune]pointer)}
}

// Insert stores value for key. A value already stored for key will be
// overwritten. Inserting into a frozen trie results in ErrFrozen.
func (trie *Trie) Insert(key []rune, value string) error {
	if trie.frozen {
		return ErrFrozen
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}
	p, ok := trie.heads[key[0]]
	if !ok {
		p = trie.alloc(key[0])
		trie.heads[key[0]] = p
	}
	for _, r := range key[1:] {
		p = trie.advanceToChild(p, r)
	}
	if !trie.final[p] {
		trie.keys++
	} else {
		tracer().Debugf("trie: overwriting value %q with %q", trie.value[p], value)
	}
	trie.final[p] = true
	trie.value[p] = value
	return nil
}

// alloc appends a new position for rune r.
func (trie *Trie) alloc(r rune) pointer {
	p := pointer(len(trie.ch))
	trie.ch = append(trie.ch, r)
	trie.link = append(trie.link, none)
	trie.sibling = append(trie.sibling, none)
	trie.value = append(trie.value, "")
	trie.final = append(trie.final, false)
	return p
}

// advanceToChild finds or inserts the child of p for rune r.
// Families are kept sorted by rune.
func (trie *Trie) advanceToChild(p pointer, r rune) pointer {
	if q := trie.child(p, r); q != none {
		return q
	}
	q := trie.alloc(r)
	prev, c := none, trie.link[p]
	for c != none && trie.ch[c] < r {
		prev, c = c, trie.sibling[c]
	}
	trie.sibling[q] = c
	if prev == none {
		trie.link[p] = q
	} else {
		trie.sibling[prev] = q
	}
	return q
}

// child returns the child of p for rune r, or none.
func (trie *Trie) child(p pointer, r rune) pointer {
	for c := trie.link[p]; c != none; c = trie.sibling[c] {
		if trie.ch[c] == r {
			return c
		} else if trie.ch[c] > r {
			break
		}
	}
	return none
}

// Freeze makes the trie read-only.
func (trie *Trie) Freeze() {
	trie.frozen = true
}

// Frozen is true if the trie has been frozen.
func (trie *Trie) Frozen() bool {
	return trie.frozen
}

// Size returns the number of keys stored in the trie.
func (trie *Trie) Size() int {
	return trie.keys
}

// Lookup returns the value stored for the runes of key.
func (trie *Trie) Lookup(key string) (string, bool) {
	it := trie.Iterator()
	for _, r := range key {
		if !it.Next(r) {
			return "", false
		}
	}
	return it.Value()
}

// LongestPrefix finds the longest key which is a prefix of s. It returns the
// value stored for this key and the length of the key in bytes. If no key is a
// prefix of s, n will be 0.
func (trie *Trie) LongestPrefix(s string) (value string, n int) {
	it := trie.Iterator()
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !it.Next(r) {
			break
		}
		i += size
		if v, ok := it.Value(); ok {
			value, n = v, i
		}
	}
	return
}

// Heads returns all the first runes of keys, in ascending order.
func (trie *Trie) Heads() []rune {
	heads := make([]rune, 0, len(trie.heads))
	for r := range trie.heads {
		heads = append(heads, r)
	}
	sort.Slice(heads, func(i, j int) bool { return heads[i] < heads[j] })
	return heads
}

// --- Iterator --------------------------------------------------------------

// Iterator is a one-off iterator to find an entry in the trie, rune by rune.
type Iterator struct {
	trie     *Trie
	position pointer
	n        int
}

// Iterator returns an iterator to advance over prefixes of keys to find
// in the trie.
func (trie *Trie) Iterator() *Iterator {
	return &Iterator{trie: trie, position: none}
}

// Next advances the iterator by rune r. It returns false if the prefix
// read so far is not contained in the trie; the iterator is then exhausted.
func (it *Iterator) Next(r rune) bool {
	if it.trie == nil {
		return false
	}
	var p pointer = none
	if it.n == 0 {
		if q, ok := it.trie.heads[r]; ok {
			p = q
		}
	} else {
		p = it.trie.child(it.position, r)
	}
	if p == none {
		it.trie = nil // end of iteration
		return false
	}
	it.position = p
	it.n++
	return true
}

// Value returns the value stored for the prefix read so far, if the prefix
// is a complete key.
func (it *Iterator) Value() (string, bool) {
	if it.trie == nil || it.n == 0 || !it.trie.final[it.position] {
		return "", false
	}
	return it.trie.value[it.position], true
}

// ---------------------------------------------------------------------------

// Stats prints some useful information about the trie on the Info log channel.
func (trie *Trie) Stats() {
	leaves, depth := 0, 0
	for p := range trie.ch {
		if trie.link[p] == none {
			leaves++
		}
	}
	for _, h := range trie.heads {
		if d := trie.depth(h); d > depth {
			depth = d
		}
	}
	tracer().Infof("Trie Statistics:")
	tracer().Infof("  Keys:     %d", trie.keys)
	tracer().Infof("  Heads:    %d", len(trie.heads))
	tracer().Infof("  Nodes:    %d (%d leaves)", len(trie.ch), leaves)
	tracer().Infof("  Depth:    %d", depth)
	var memory uint64
	memory = uint64(unsafe.Sizeof(*trie))
	word := int(unsafe.Sizeof(none))
	memory += uint64(len(trie.ch) * (3*word + 4 + 1))
	tracer().Infof("  Memory:   %d bytes (without values)", memory)
}

func (trie *Trie) depth(p pointer) int {
	d := 0
	for c := trie.link[p]; c != none; c = trie.sibling[c] {
		if cd := trie.depth(c); cd > d {
			d = cd
		}
	}
	return d + 1
}
