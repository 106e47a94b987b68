package table

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/emojicode/source"
	"github.com/npillmayer/emojicode/trie"
	"golang.org/x/text/unicode/rangetable"
)

// Builder collects emoji records from sources. It is a one-off object:
// after Freeze it may not be used any more.
type Builder struct {
	unicodeOf map[string]string // shortcode or alias → glyph
	canonical map[string]string // shortcode or alias → canonical shortcode
	names     map[string]string // canonical shortcode → display name
	records   map[string]source.Record
	glyphs    *trie.Trie // glyph → canonical shortcode
	frozen    bool
}

// NewBuilder creates a builder with empty tables.
func NewBuilder() *Builder {
	return &Builder{
		unicodeOf: make(map[string]string),
		canonical: make(map[string]string),
		names:     make(map[string]string),
		records:   make(map[string]source.Record),
		glyphs:    trie.New(),
	}
}

// Build merges sources, in order, and returns the frozen tables.
// Calling Build without sources results in empty tables.
func Build(sources ...source.Source) *Tables {
	b := NewBuilder()
	for _, src := range sources {
		b.Add(src)
	}
	return b.Freeze()
}

// Add merges all the records of a source into the tables. Records without a
// shortcode are skipped. Add panics if called after Freeze.
func (b *Builder) Add(src source.Source) *Builder {
	if b.frozen {
		panic("table.Builder: cannot add sources to frozen tables")
	}
	if src == nil {
		return b
	}
	n := 0
	for _, rec := range src.Records() {
		if b.addRecord(rec) {
			n++
		}
	}
	tracer().Debugf("table: merged %d emoji records from source", n)
	return b
}

func (b *Builder) addRecord(rec source.Record) bool {
	canonical := rec.Shortcode
	if canonical == "" {
		tracer().Errorf("table: skipping emoji record without shortcode (%+q)", rec.Unicode)
		return false
	}
	for _, code := range rec.Shortcodes() {
		if rec.Unicode != "" {
			b.unicodeOf[code] = rec.Unicode
		}
		b.canonical[code] = canonical
	}
	if rec.Unicode != "" {
		if err := b.glyphs.Insert([]rune(rec.Unicode), canonical); err != nil {
			tracer().Errorf("table: cannot index glyph of %s: %v", canonical, err)
		}
	}
	b.names[canonical] = rec.DisplayName()
	b.records[canonical] = rec
	return true
}

// Freeze finishes building and returns read-only tables.
func (b *Builder) Freeze() *Tables {
	if b.frozen {
		panic("table.Builder: tables already frozen")
	}
	b.frozen = true
	b.glyphs.Freeze()
	index := treemap.NewWithStringComparator()
	for code, canonical := range b.canonical {
		index.Put(code, canonical)
	}
	t := &Tables{
		unicodeOf: b.unicodeOf,
		canonical: b.canonical,
		names:     b.names,
		records:   b.records,
		glyphs:    b.glyphs,
		index:     index,
		heads:     rangetable.New(b.glyphs.Heads()...),
	}
	tracer().Infof("table: %d emoji, %d shortcodes, %d glyphs", len(t.records), len(t.canonical), t.glyphs.Size())
	return t
}
