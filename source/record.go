package source

import (
	"errors"
	"sort"
	"strings"

	"github.com/npillmayer/emojicode/codepoint"
)

// Record is an emoji entry, normalized from any of the source shapes.
// Records are handed out to clients by value; clients must not modify
// Alternates or Extra.
type Record struct {
	Shortcode  string                 // canonical shortcode, e.g. ":heart:"
	Alternates []string               // alias shortcodes, e.g. ":latin_cross:" for ":cross:"
	Unicode    string                 // glyph, may be empty for metadata-only records
	Name       string                 // display name, may be empty
	Extra      map[string]interface{} // additional fields, opaque
}

// DisplayName returns the name of an emoji. If no name is set, the canonical
// shortcode with colons removed is used.
func (rec Record) DisplayName() string {
	if rec.Name != "" {
		return rec.Name
	}
	return strings.ReplaceAll(rec.Shortcode, ":", "")
}

// Shortcodes returns the canonical shortcode followed by all alternates.
func (rec Record) Shortcodes() []string {
	codes := make([]string, 0, len(rec.Alternates)+1)
	codes = append(codes, rec.Shortcode)
	return append(codes, rec.Alternates...)
}

// IsZero is true for the empty record.
func (rec Record) IsZero() bool {
	return rec.Shortcode == "" && rec.Unicode == "" && rec.Name == "" &&
		len(rec.Alternates) == 0 && len(rec.Extra) == 0
}

// Source is a source of emoji records. There are exactly two implementations,
// ListSource and KeyedSource.
type Source interface {
	Records() []Record // entries of the source, in source order
	isSource()
}

// --- List shape ------------------------------------------------------------

// ListSource is a sequence of emoji records. Records may lack a glyph.
type ListSource []Record

// Records returns the records of the list, in list order.
func (ls ListSource) Records() []Record {
	return []Record(ls)
}

func (ls ListSource) isSource() {}

// --- Keyed shape -----------------------------------------------------------

// KeyedEntry is an entry of a KeyedSource. The glyph of the entry is
// given by its key.
type KeyedEntry struct {
	Shortname           string
	ShortnameAlternates []string
	Name                string
	Extra               map[string]interface{}
}

var errEmptyKey = errors.New("empty code-point string")

// KeyedSource maps code-point strings (e.g., "1f646-1f3ff-2642") to entries.
type KeyedSource map[string]KeyedEntry

// Records returns the entries of the source as records, ordered by key.
// The glyph of each record is decoded from the key. Entries with keys which
// are not valid code-point strings are skipped.
func (ks KeyedSource) Records() []Record {
	keys := make([]string, 0, len(ks))
	for k := range ks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	records := make([]Record, 0, len(keys))
	for _, k := range keys {
		unicode, err := codepoint.FromPointsString(k)
		if err == nil && unicode == "" {
			err = errEmptyKey
		}
		if err != nil {
			tracer().Errorf("skipping emoji entry %q: %v", k, err)
			continue
		}
		entry := ks[k]
		records = append(records, Record{
			Shortcode:  entry.Shortname,
			Alternates: entry.ShortnameAlternates,
			Unicode:    unicode,
			Name:       entry.Name,
			Extra:      entry.Extra,
		})
	}
	return records
}

func (ks KeyedSource) isSource() {}
