package source

import (
	"sort"

	"github.com/kyokomi/emoji/v2"
	"go.mau.fi/util/variationselector"
)

// Kyokomi returns the emoji dataset of package github.com/kyokomi/emoji as
// a list source. The dataset knows glyphs and shortcodes only; shortcodes
// sharing the same glyph are grouped into a single record, the canonical one
// being the first in lexical order.
//
// Glyphs are stripped of emoji variation selectors (U+FE0F), so that
// “❤” as well as “❤️” are recognized when scanning text. Records are ordered
// by canonical shortcode.
func Kyokomi() ListSource {
	byGlyph := make(map[string][]string)
	for glyph, codes := range emoji.RevCodeMap() {
		g := variationselector.Remove(glyph)
		if g == "" {
			continue
		}
		byGlyph[g] = append(byGlyph[g], codes...)
	}
	ls := make(ListSource, 0, len(byGlyph))
	for glyph, codes := range byGlyph {
		codes = uniqueSorted(codes)
		if len(codes) == 0 {
			continue
		}
		ls = append(ls, Record{
			Shortcode:  codes[0],
			Alternates: codes[1:],
			Unicode:    glyph,
		})
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i].Shortcode < ls[j].Shortcode })
	tracer().Debugf("kyokomi emoji source has %d records", len(ls))
	return ls
}

func uniqueSorted(codes []string) []string {
	sort.Strings(codes)
	u := codes[:0]
	for i, c := range codes {
		if c == "" || (i > 0 && c == codes[i-1]) {
			continue
		}
		u = append(u, c)
	}
	return u
}
