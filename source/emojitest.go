package source

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/npillmayer/emojicode/internal/ucdparse"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ReadEmojiTest reads the Unicode emoji test data file (emoji-test.txt, see
// https://unicode.org/Public/emoji/) and creates a record for every
// fully-qualified emoji and every emoji component:
//
//    1F468 200D 1F4BB ; fully-qualified # 👨‍💻 E4.0 man technologist
//
// becomes an emoji with shortcode :man_technologist: and name "man technologist".
// Shortcodes are derived from the CLDR short name of an emoji. The Unicode
// version and the qualification status are stored as Extra fields "version"
// and "status".
//
// Different names may yield the same shortcode. As with any source, the
// later record wins.
func ReadEmojiTest(r io.Reader) (ListSource, error) {
	p, err := ucdparse.New(r)
	if err != nil {
		return nil, err
	}
	var ls ListSource
	for p.Next() {
		token := p.Token
		status := token.Field(2)
		if status != "fully-qualified" && status != "component" {
			continue
		}
		cps, err := token.CodePoints(1)
		if err != nil {
			return nil, fmt.Errorf("reading emoji test data: %w", err)
		}
		version, name := splitTestComment(token.Comment)
		if name == "" {
			tracer().Errorf("line %d: emoji without name", token.LineNo)
			continue
		}
		rec := Record{
			Shortcode: ShortcodeFromName(name),
			Unicode:   string(cps),
			Name:      name,
		}
		rec.Extra = setExtra(rec.Extra, "status", status)
		if version != "" {
			rec.Extra = setExtra(rec.Extra, "version", version)
		}
		ls = append(ls, rec)
	}
	if err = p.Err(); err != nil {
		return nil, fmt.Errorf("reading emoji test data: %w", err)
	}
	tracer().Debugf("read %d emoji from test data", len(ls))
	return ls, nil
}

var emojiVersion = regexp.MustCompile(`^E\d+\.\d+$`)

// splitTestComment splits "👨‍💻 E4.0 man technologist" into version and name.
func splitTestComment(comment string) (version, name string) {
	fields := strings.Fields(comment)
	for i, f := range fields {
		if emojiVersion.MatchString(f) {
			return f, strings.Join(fields[i+1:], " ")
		}
	}
	if len(fields) > 1 { // older files carry no version
		return "", strings.Join(fields[1:], " ")
	}
	return "", ""
}

var nameSymbols = strings.NewReplacer("#", " hash ", "*", " asterisk ", "&", " and ")

// ShortcodeFromName derives a shortcode from an emoji name, e.g.
//
//    "man gesturing OK: dark skin tone"  →  ":man_gesturing_ok_dark_skin_tone:"
//    "piñata"                            →  ":pinata:"
//
// Diacritics are removed and every run of characters not allowed in a
// shortcode is replaced by a single underscore. Returns "" if nothing
// is left of the name.
func ShortcodeFromName(name string) string {
	name = nameSymbols.Replace(name)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, name); err == nil {
		name = stripped
	}
	var b strings.Builder
	b.WriteByte(':')
	underscore := false
	for _, r := range strings.ToLower(name) {
		if r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '-') {
			if underscore && b.Len() > 1 {
				b.WriteByte('_')
			}
			underscore = false
			b.WriteRune(r)
			continue
		}
		underscore = true
	}
	if b.Len() == 1 {
		return ""
	}
	b.WriteByte(':')
	return b.String()
}
